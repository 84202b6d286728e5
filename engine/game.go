package engine

// Game bundles the embedder's hook functions. Every field is optional; the
// lifecycle controller invokes whatever is set, at the documented point of
// the frame.
type Game struct {
	Config *ApplicationConfig
	State  interface{}

	// FnInitialize runs during Start, between the system registry's
	// Initialize and PostInitialize phases.
	FnInitialize Initialize
	// FnUpdate runs every simulated frame with the scaled delta.
	FnUpdate Update
	// FnRender runs inside the render pass, after hierarchy sync and before
	// the layer composition is drawn.
	FnRender Render
	// FnOnResize runs when the window client size changes.
	FnOnResize OnResize
	// FnShutdown runs during Destroy, after the destroy event fires.
	FnShutdown Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
