package platform

// Headless is a windowless surface for servers and tests. It has no frame
// primitive: RequestFrame returns 0 and the embedder drives ticks itself.
type Headless struct {
	id     uint64
	width  uint32
	height uint32

	onVisibility func(visible bool)
	onResize     func(width, height uint32)
}

func NewHeadless(width, height uint32) *Headless {
	return &Headless{
		id:     newSurfaceID(),
		width:  width,
		height: height,
	}
}

func (h *Headless) ID() uint64 {
	return h.id
}

func (h *Headless) RequestFrame(fn FrameFunc) uint64 {
	return 0
}

func (h *Headless) CancelFrame(id uint64) {}

func (h *Headless) WindowSize() (uint32, uint32) {
	return h.width, h.height
}

func (h *Headless) FramebufferSize() (uint32, uint32) {
	return h.width, h.height
}

// Resize changes the reported window size and notifies the listener, the
// way a real windowing system would.
func (h *Headless) Resize(width, height uint32) {
	h.width = width
	h.height = height
	if h.onResize != nil {
		h.onResize(width, height)
	}
}

// SetVisible reports a visibility change to the listener.
func (h *Headless) SetVisible(visible bool) {
	if h.onVisibility != nil {
		h.onVisibility(visible)
	}
}

func (h *Headless) SetVisibilityCallback(fn func(visible bool)) {
	h.onVisibility = fn
}

func (h *Headless) SetResizeCallback(fn func(width, height uint32)) {
	h.onResize = fn
}

func (h *Headless) Destroy() error {
	h.onVisibility = nil
	h.onResize = nil
	return nil
}
