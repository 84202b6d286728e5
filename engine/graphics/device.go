// Package graphics defines the rendering device the application drives.
// The device is an external collaborator: the lifecycle core only needs its
// canvas geometry, its resize primitive and its context-loss signal.
package graphics

// Device is the rendering device backing one application. Exactly one
// application drives a device at a time.
type Device interface {
	// Width and Height are the current canvas resolution in pixels.
	Width() uint32
	Height() uint32

	// Resize sets the canvas resolution. The device clamps or rounds as its
	// backing API requires.
	Resize(width, height uint32)

	// ClientSize is the cached client rect of the canvas, refreshed once per
	// frame update via UpdateClientRect.
	ClientSize() (uint32, uint32)
	UpdateClientRect(width, height uint32)

	// ContextLost reports whether the rendering context is currently lost.
	// While lost, the scheduler keeps re-arming but skips update and render;
	// operation resumes automatically once the context is restored.
	ContextLost() bool

	// Destroy releases the device. Idempotent.
	Destroy() error
}
