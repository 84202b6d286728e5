package engine

import (
	"github.com/lumen3d/lumen/engine/core"
)

// tick runs one frame: sample the clock, re-arm the next frame, then
// update and render. xrFrame is non-nil only when an XR session delivered
// the frame.
//
// The next frame is requested before any user code runs, so a panic
// recovered by the embedder does not stall the loop, and cancellation in
// Destroy always sees the current request id. Frames delivered after
// teardown see a nil device and abort.
func (a *Application) tick(timestamp float64, xrFrame interface{}) {
	if a.device == nil {
		return
	}

	a.inFrameUpdate = true
	setCurrent(a)

	sample := a.frameClock.Sample(timestamp)

	a.frameRequestID = 0
	if a.xrManager.Active() {
		a.frameRequestID = a.xrManager.RequestFrame(a.tickXR)
	} else {
		a.frameRequestID = a.surface.RequestFrame(a.tickFn)
	}

	// A lost device context skips the whole frame body. The loop keeps
	// re-arming so work resumes the moment the context is restored.
	if !a.device.ContextLost() {
		a.bus.Fire(core.EventContext{Type: core.EventFrameUpdate, Ms: sample.Ms})

		// An XR session can signal that this frame should be skipped, for
		// example during tracking loss.
		if a.xrManager.ShouldRender(xrFrame) {
			a.update(sample.Dt)
			a.bus.Fire(core.EventContext{Type: core.EventFrameRender, Timestamp: sample.Timestamp})

			if a.autoRender || a.renderNextFrame {
				a.UpdateCanvasSize()
				if err := a.renderer.FrameStart(sample.Dt); err != nil {
					core.LogError(err.Error())
				}
				a.render(sample.Dt)
				if err := a.renderer.FrameEnd(sample.Dt); err != nil {
					core.LogError(err.Error())
				}
				a.renderNextFrame = false
			}

			a.bus.Fire(core.EventContext{Type: core.EventFrameEnd, Timestamp: sample.Timestamp})
		}
		a.stats.Update(sample.Ms / 1000.0)
	}

	a.inFrameUpdate = false

	a.drainDeferred()
	if a.destroyRequested {
		if err := a.Destroy(); err != nil {
			core.LogError(err.Error())
		}
	}
}

func (a *Application) tickXR(timestamp float64, frame interface{}) {
	a.tick(timestamp, frame)
}
