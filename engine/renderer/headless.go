package renderer

// HeadlessBackend counts frontend calls without touching a graphics API.
type HeadlessBackend struct {
	BeginCount int
	DrawCount  int
	EndCount   int
	Destroyed  bool
}

func NewHeadlessBackend() *HeadlessBackend {
	return &HeadlessBackend{}
}

func (b *HeadlessBackend) BeginFrame(deltaTime float64) error {
	b.BeginCount++
	return nil
}

func (b *HeadlessBackend) DrawLayer(layer *Layer, deltaTime float64) error {
	b.DrawCount++
	return nil
}

func (b *HeadlessBackend) EndFrame(deltaTime float64) error {
	b.EndCount++
	return nil
}

func (b *HeadlessBackend) Resized(width, height uint32) error {
	return nil
}

func (b *HeadlessBackend) Destroy() error {
	b.Destroyed = true
	return nil
}
