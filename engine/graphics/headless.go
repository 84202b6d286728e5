package graphics

// HeadlessDevice is a device with no backing API. It records geometry and
// context state, which is all the lifecycle core consumes. Used by servers,
// tooling and tests.
type HeadlessDevice struct {
	width, height    uint32
	clientW, clientH uint32
	contextLost      bool
	destroyed        bool
}

func NewHeadlessDevice(width, height uint32) *HeadlessDevice {
	return &HeadlessDevice{
		width:   width,
		height:  height,
		clientW: width,
		clientH: height,
	}
}

func (d *HeadlessDevice) Width() uint32 {
	return d.width
}

func (d *HeadlessDevice) Height() uint32 {
	return d.height
}

func (d *HeadlessDevice) Resize(width, height uint32) {
	d.width = width
	d.height = height
}

func (d *HeadlessDevice) ClientSize() (uint32, uint32) {
	return d.clientW, d.clientH
}

func (d *HeadlessDevice) UpdateClientRect(width, height uint32) {
	d.clientW = width
	d.clientH = height
}

func (d *HeadlessDevice) ContextLost() bool {
	return d.contextLost
}

// SetContextLost simulates losing or restoring the rendering context.
func (d *HeadlessDevice) SetContextLost(lost bool) {
	d.contextLost = lost
}

func (d *HeadlessDevice) Destroyed() bool {
	return d.destroyed
}

func (d *HeadlessDevice) Destroy() error {
	d.destroyed = true
	return nil
}
