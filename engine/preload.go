package engine

import (
	"github.com/lumen3d/lumen/engine/assets"
	"github.com/lumen3d/lumen/engine/core"
)

// Preload loads every asset marked for preloading and calls done exactly
// once when the whole batch has settled. Failed loads are logged and still
// count toward completion, so a bad asset can never wedge startup. An empty
// batch completes synchronously before Preload returns.
func (a *Application) Preload(done func()) {
	a.bus.Fire(core.EventContext{Type: core.EventPreloadStart})

	batch := a.assetRegistry.List(true)
	progress := core.NewProgress(len(batch))
	fired := false

	finish := func() {
		if fired || a.stage == StageDestroyed || a.stage == StageShuttingDown {
			return
		}
		fired = true
		a.bus.Fire(core.EventContext{Type: core.EventPreloadEnd})
		if done != nil {
			done()
		}
	}

	settle := func() {
		a.bus.Fire(core.EventContext{Type: core.EventPreloadProgress, Fraction: progress.Fraction()})
		if progress.Done() {
			finish()
		}
	}

	if len(batch) == 0 {
		finish()
		return
	}

	for _, asset := range batch {
		if asset.Loaded() {
			progress.Inc()
			settle()
			continue
		}
		a.loader.LoadAsync(asset, nil, func(loaded *assets.Asset, err error) {
			// Loader goroutine; settle on the frame thread between ticks.
			a.Defer(func() {
				if err != nil {
					core.LogError("failed to preload asset '%s': %s", loaded.Name, err.Error())
				}
				progress.Inc()
				settle()
			})
		})
	}
}
