package platform

import "sync/atomic"

// FrameFunc is the callback invoked for one scheduled frame. The timestamp
// is in milliseconds on the surface's clock.
type FrameFunc func(timestamp float64)

// Surface is the platform window (or lack of one) an application renders
// into. It supplies the frame-callback primitive the scheduler re-arms
// itself with, the window geometry the canvas policy reads, and the
// visibility/resize notifications the application reacts to.
//
// A surface that cannot schedule frames (headless) returns 0 from
// RequestFrame; the embedder then pumps ticks manually.
type Surface interface {
	ID() uint64

	// RequestFrame schedules fn for the next frame and returns an opaque
	// handle, or 0 if the surface has no frame primitive.
	RequestFrame(fn FrameFunc) uint64
	// CancelFrame cancels a previously scheduled frame. Cancelling an
	// unknown or already-fired handle is a no-op.
	CancelFrame(id uint64)

	// WindowSize is the client size of the window in screen coordinates.
	WindowSize() (uint32, uint32)
	// FramebufferSize is the size of the backing store in pixels.
	FramebufferSize() (uint32, uint32)

	// SetVisibilityCallback installs the listener invoked when the surface
	// is hidden or shown. Passing nil detaches the listener.
	SetVisibilityCallback(fn func(visible bool))
	// SetResizeCallback installs the listener invoked when the window
	// client size changes. Passing nil detaches the listener.
	SetResizeCallback(fn func(width, height uint32))

	Destroy() error
}

var nextSurfaceID uint64

func newSurfaceID() uint64 {
	return atomic.AddUint64(&nextSurfaceID, 1)
}
