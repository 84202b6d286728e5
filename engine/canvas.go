package engine

import (
	"github.com/lumen3d/lumen/engine/core"
)

// FillMode controls how the canvas tracks the window client area.
type FillMode int

const (
	// FillModeNone keeps the explicitly requested canvas size.
	FillModeNone FillMode = iota
	// FillModeFillWindow stretches the canvas over the whole window,
	// ignoring aspect ratio.
	FillModeFillWindow
	// FillModeKeepAspect fits the canvas inside the window while preserving
	// its aspect ratio.
	FillModeKeepAspect
)

// ResolutionMode controls whether the device resolution tracks the canvas
// client size.
type ResolutionMode int

const (
	// ResolutionAuto resizes the device to the canvas client size every
	// time the canvas size updates.
	ResolutionAuto ResolutionMode = iota
	// ResolutionFixed keeps the resolution set explicitly via
	// SetCanvasResolution.
	ResolutionFixed
)

// FitToWindow computes the canvas target size for the given fill mode. Pure:
// it touches no device state.
func FitToWindow(mode FillMode, winWidth, winHeight uint32, aspect float64, reqWidth, reqHeight uint32) (uint32, uint32) {
	switch mode {
	case FillModeFillWindow:
		return winWidth, winHeight
	case FillModeKeepAspect:
		if winHeight == 0 || aspect <= 0 {
			return reqWidth, reqHeight
		}
		winAspect := float64(winWidth) / float64(winHeight)
		if aspect > winAspect {
			// Wider than the window: fit to window width.
			return winWidth, uint32(float64(winWidth) / aspect)
		}
		// Taller than the window: fit to window height.
		return uint32(float64(winHeight) * aspect), winHeight
	default:
		return reqWidth, reqHeight
	}
}

// SetCanvasFillMode changes how the canvas tracks the window and applies the
// new policy immediately. Width and height are only meaningful for
// FillModeNone.
func (a *Application) SetCanvasFillMode(mode FillMode, width, height uint32) {
	a.fillMode = mode
	if width != 0 {
		a.requestedWidth = width
	}
	if height != 0 {
		a.requestedHeight = height
	}
	a.UpdateCanvasSize()
}

// SetCanvasResolution changes how the device resolution tracks the canvas.
// For ResolutionFixed the given width/height become the resolution; for
// ResolutionAuto the current canvas client size does.
func (a *Application) SetCanvasResolution(mode ResolutionMode, width, height uint32) {
	a.resolutionMode = mode
	switch mode {
	case ResolutionFixed:
		if width == 0 || height == 0 {
			core.LogWarn("fixed canvas resolution requires a non-zero size")
			return
		}
		a.device.Resize(width, height)
	case ResolutionAuto:
		w, h := a.device.ClientSize()
		a.device.Resize(w, h)
	}
	if err := a.renderer.OnResize(a.device.Width(), a.device.Height()); err != nil {
		core.LogError(err.Error())
	}
}

// UpdateCanvasSize reapplies the fill and resolution policy against the
// current window size. A no-op while resizing is disallowed or an XR
// session is presenting (the session owns the framebuffer then). Returns
// the resulting canvas size.
func (a *Application) UpdateCanvasSize() (uint32, uint32) {
	if !a.allowResize || a.xrManager.Active() {
		return a.device.Width(), a.device.Height()
	}

	winW, winH := a.surface.WindowSize()
	aspect := float64(0)
	if a.device.Height() != 0 {
		aspect = float64(a.device.Width()) / float64(a.device.Height())
	}

	width, height := FitToWindow(a.fillMode, winW, winH, aspect, a.requestedWidth, a.requestedHeight)
	a.device.UpdateClientRect(width, height)

	if a.resolutionMode == ResolutionAuto {
		a.device.Resize(width, height)
		if err := a.renderer.OnResize(width, height); err != nil {
			core.LogError(err.Error())
		}
	}
	return width, height
}
