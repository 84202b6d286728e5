package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitToWindowNoneKeepsRequestedSize(t *testing.T) {
	w, h := FitToWindow(FillModeNone, 1920, 1080, 16.0/9.0, 640, 480)

	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)
}

func TestFitToWindowFillIgnoresAspect(t *testing.T) {
	w, h := FitToWindow(FillModeFillWindow, 1920, 1080, 4.0/3.0, 640, 480)

	assert.Equal(t, uint32(1920), w)
	assert.Equal(t, uint32(1080), h)
}

func TestFitToWindowKeepAspectFitsWiderContentToWidth(t *testing.T) {
	// Content wider than the window: width binds, height derives.
	w, h := FitToWindow(FillModeKeepAspect, 1000, 1000, 2.0, 640, 320)

	assert.Equal(t, uint32(1000), w)
	assert.Equal(t, uint32(500), h)
}

func TestFitToWindowKeepAspectFitsTallerContentToHeight(t *testing.T) {
	// Content taller than the window: height binds, width derives.
	w, h := FitToWindow(FillModeKeepAspect, 1000, 500, 1.0, 640, 640)

	assert.Equal(t, uint32(500), w)
	assert.Equal(t, uint32(500), h)
}

func TestFitToWindowKeepAspectNeverExceedsWindow(t *testing.T) {
	cases := []struct {
		winW, winH uint32
		aspect     float64
	}{
		{1920, 1080, 16.0 / 9.0},
		{800, 600, 21.0 / 9.0},
		{600, 800, 1.0},
		{1024, 768, 0.5},
	}
	for _, tc := range cases {
		w, h := FitToWindow(FillModeKeepAspect, tc.winW, tc.winH, tc.aspect, 640, 480)
		assert.LessOrEqual(t, w, tc.winW)
		assert.LessOrEqual(t, h, tc.winH)
	}
}

func TestFitToWindowKeepAspectDegenerateWindow(t *testing.T) {
	w, h := FitToWindow(FillModeKeepAspect, 1000, 0, 16.0/9.0, 640, 480)

	assert.Equal(t, uint32(640), w)
	assert.Equal(t, uint32(480), h)
}

func TestUpdateCanvasSizeAutoResolutionTracksWindow(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.app.SetCanvasFillMode(FillModeFillWindow, 0, 0)

	ta.surface.Resize(1024, 768)
	w, h := ta.app.UpdateCanvasSize()

	assert.Equal(t, uint32(1024), w)
	assert.Equal(t, uint32(768), h)
	assert.Equal(t, uint32(1024), ta.device.Width())
	assert.Equal(t, uint32(768), ta.device.Height())
}

func TestUpdateCanvasSizeFixedResolutionDoesNotTrack(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.app.SetCanvasResolution(ResolutionFixed, 320, 240)
	ta.app.SetCanvasFillMode(FillModeFillWindow, 0, 0)

	ta.surface.Resize(1024, 768)
	ta.app.UpdateCanvasSize()

	// The client rect tracks the window; the device resolution stays put.
	cw, ch := ta.device.ClientSize()
	assert.Equal(t, uint32(1024), cw)
	assert.Equal(t, uint32(768), ch)
	assert.Equal(t, uint32(320), ta.device.Width())
	assert.Equal(t, uint32(240), ta.device.Height())
}

func TestSetCanvasResolutionRejectsZeroFixedSize(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.app.SetCanvasResolution(ResolutionFixed, 0, 240)

	assert.Equal(t, uint32(800), ta.device.Width())
	assert.Equal(t, uint32(600), ta.device.Height())
}

func TestUpdateCanvasSizeIsNoOpDuringXRSession(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.app.SetCanvasFillMode(FillModeFillWindow, 0, 0)
	ta.app.XR().StartSession(&fakeSession{render: true})

	ta.surface.Resize(1024, 768)
	w, h := ta.app.UpdateCanvasSize()

	require.Equal(t, uint32(800), w)
	require.Equal(t, uint32(600), h)
	assert.Equal(t, uint32(800), ta.device.Width())
}

func TestUpdateCanvasSizeIsNoOpWhenResizeDisallowed(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.app.SetCanvasFillMode(FillModeFillWindow, 0, 0)
	ta.app.allowResize = false

	ta.surface.Resize(1024, 768)
	w, h := ta.app.UpdateCanvasSize()

	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(600), h)
}
