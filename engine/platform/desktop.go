package platform

import (
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lumen3d/lumen/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type queuedFrame struct {
	id uint64
	fn FrameFunc
}

// Desktop is a GLFW-backed surface. Frame callbacks are scheduled on timers
// and delivered on the main thread by Pump, which keeps the whole engine on
// one cooperative thread of control.
type Desktop struct {
	Window *glfw.Window

	id            uint64
	frameInterval time.Duration

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*time.Timer
	due     chan queuedFrame

	onVisibility func(visible bool)
	onResize     func(width, height uint32)
}

// NewDesktop creates a surface without a window. Call Startup before use.
func NewDesktop() *Desktop {
	return &Desktop{
		id:            newSurfaceID(),
		frameInterval: time.Second / 60,
		pending:       make(map[uint64]*time.Timer),
		due:           make(chan queuedFrame, 8),
	}
}

func (d *Desktop) Startup(applicationName string, x, y, width, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		return err
	}
	d.Window = window

	d.Window.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		if d.onVisibility != nil {
			d.onVisibility(!iconified)
		}
	})
	d.Window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		if d.onResize != nil {
			d.onResize(uint32(width), uint32(height))
		}
	})
	d.Window.SetPos(int(x), int(y))
	d.Window.Show()

	return nil
}

func (d *Desktop) ID() uint64 {
	return d.id
}

// SetFrameInterval overrides the default 60Hz frame pacing.
func (d *Desktop) SetFrameInterval(interval time.Duration) {
	d.frameInterval = interval
}

func (d *Desktop) RequestFrame(fn FrameFunc) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.pending[id] = time.AfterFunc(d.frameInterval, func() {
		d.due <- queuedFrame{id: id, fn: fn}
	})
	return id
}

func (d *Desktop) CancelFrame(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.pending[id]; ok {
		timer.Stop()
		delete(d.pending, id)
	}
}

// Pump processes window events and runs any due frame callback. Returns
// false once the window has been asked to close. Must run on the thread
// that called Startup.
func (d *Desktop) Pump() bool {
	glfw.PollEvents()

	select {
	case qf := <-d.due:
		d.mu.Lock()
		_, live := d.pending[qf.id]
		delete(d.pending, qf.id)
		d.mu.Unlock()
		// A cancelled frame may still be in flight on the channel; drop it.
		if live {
			qf.fn(glfw.GetTime() * 1000.0)
		}
	default:
	}

	if d.Window != nil && d.Window.ShouldClose() {
		return false
	}
	return true
}

func (d *Desktop) WindowSize() (uint32, uint32) {
	if d.Window == nil {
		return 0, 0
	}
	w, h := d.Window.GetSize()
	return uint32(w), uint32(h)
}

func (d *Desktop) FramebufferSize() (uint32, uint32) {
	if d.Window == nil {
		return 0, 0
	}
	w, h := d.Window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

func (d *Desktop) SetVisibilityCallback(fn func(visible bool)) {
	d.onVisibility = fn
}

func (d *Desktop) SetResizeCallback(fn func(width, height uint32)) {
	d.onResize = fn
}

func (d *Desktop) Destroy() error {
	d.mu.Lock()
	for id, timer := range d.pending {
		timer.Stop()
		delete(d.pending, id)
	}
	d.mu.Unlock()

	// Pump checks the window pointer, so clear it before Terminate frees it.
	d.Window = nil
	glfw.Terminate()
	return nil
}
