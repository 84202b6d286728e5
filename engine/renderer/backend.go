package renderer

// Backend is the rendering implementation the frontend drives. Rendering
// algorithms live entirely behind this interface; the lifecycle core only
// sequences the calls.
type Backend interface {
	BeginFrame(deltaTime float64) error
	DrawLayer(layer *Layer, deltaTime float64) error
	EndFrame(deltaTime float64) error
	Resized(width, height uint32) error
	Destroy() error
}
