// Package engine owns the application lifecycle and the frame loop: the
// start/stop/destroy state machine, the per-frame scheduler, asset
// preloading and the canvas sizing policy. Everything heavier — rendering,
// asset decoding, gameplay — hangs off it behind narrow interfaces.
package engine

import (
	"fmt"
	"sync"

	"github.com/lumen3d/lumen/engine/assets"
	"github.com/lumen3d/lumen/engine/assets/loaders"
	"github.com/lumen3d/lumen/engine/core"
	"github.com/lumen3d/lumen/engine/graphics"
	"github.com/lumen3d/lumen/engine/platform"
	"github.com/lumen3d/lumen/engine/renderer"
	"github.com/lumen3d/lumen/engine/scene"
	"github.com/lumen3d/lumen/engine/systems"
	"github.com/lumen3d/lumen/engine/xr"
)

type Stage uint8

const (
	// Application has been constructed but not configured
	StageConstructed Stage = iota
	// Configure completed; subsystems are wired
	StageInitialized
	// Start completed; the frame loop is live
	StageRunning
	// Teardown is in progress
	StageShuttingDown
	// Teardown finished; the instance is inert
	StageDestroyed
)

// Options enumerates the collaborators handed to Configure. Device is the
// only required field; everything else has a headless or empty default.
type Options struct {
	Device  graphics.Device
	Surface platform.Surface
	Backend renderer.Backend
	Sound   *systems.SoundSystem
	XR      *xr.Manager
	Game    *Game

	// AssetDir is the base path resolved against relative asset paths.
	AssetDir string
	// WatchAssets starts the hot-reload watcher over AssetDir.
	WatchAssets bool

	// ResourceHandlers override or extend the built-in asset handlers.
	ResourceHandlers map[assets.Type]assets.Handler
	// ComponentSystems are registered after the built-in sound system, in
	// slice order.
	ComponentSystems []systems.System
	// InputDevices are polled at the end of every frame update.
	InputDevices []core.InputDevice
}

// Application is the lifecycle controller for one surface. At most one
// application drives a given surface at a time. All state below is mutated
// on the frame thread only; the deferred queue is the single cross-thread
// entry point.
type Application struct {
	config *ApplicationConfig
	stage  Stage

	frame           uint64
	autoRender      bool
	renderNextFrame bool

	inFrameUpdate    bool
	destroyRequested bool
	frameRequestID   uint64
	librariesLoaded  bool

	surface        platform.Surface
	device         graphics.Device
	soundSystem    *systems.SoundSystem
	systemRegistry *systems.Registry
	assetRegistry  *assets.Registry
	loader         *assets.Loader
	scene          *scene.Scene
	renderer       *renderer.Renderer
	layers         *renderer.Composition
	xrManager      *xr.Manager
	game           *Game

	bus        *core.EventBus
	clock      *core.Clock
	frameClock *core.FrameClock
	stats      *core.FrameStats
	input      *core.InputState

	fillMode        FillMode
	resolutionMode  ResolutionMode
	requestedWidth  uint32
	requestedHeight uint32
	allowResize     bool

	updateMode UpdateMode

	deferredMu sync.Mutex
	deferred   []func()

	tickFn platform.FrameFunc
}

func New(config *ApplicationConfig) *Application {
	if config == nil {
		config = DefaultConfig("lumen")
	}
	config.applyDefaults()

	a := &Application{
		config:          config,
		stage:           StageConstructed,
		autoRender:      true,
		allowResize:     true,
		requestedWidth:  config.StartWidth,
		requestedHeight: config.StartHeight,
		updateMode:      config.Mode(),
		bus:             core.NewEventBus(),
		clock:           core.NewClock(),
		frameClock:      core.NewFrameClock(),
		stats:           core.NewFrameStats(),
		input:           core.NewInputState(),
	}
	a.frameClock.MaxDeltaTime = config.MaxDeltaTime
	a.frameClock.TimeScale = config.TimeScale
	a.tickFn = func(timestamp float64) { a.tick(timestamp, nil) }
	return a
}

// Configure wires every owned subsystem in a fixed dependency order:
// device, surface, loader, asset registry, scene, layer composition,
// renderer, sound, system registry, input devices, XR manager, resource
// handlers, component systems. The application is unusable without a
// device, so configuring without one fails outright.
func (a *Application) Configure(opts *Options) error {
	if a.stage == StageDestroyed {
		return core.ErrDestroyed
	}
	if a.stage != StageConstructed {
		return fmt.Errorf("application '%s' is already configured", a.config.Name)
	}
	if opts == nil || opts.Device == nil {
		core.LogError("a graphics device is required to configure an application")
		return core.ErrNoDevice
	}

	a.device = opts.Device

	a.surface = opts.Surface
	if a.surface == nil {
		a.surface = platform.NewHeadless(a.config.StartWidth, a.config.StartHeight)
	}

	a.loader = assets.NewLoader(opts.AssetDir)
	a.assetRegistry = assets.NewRegistry()
	a.assetRegistry.OnChange = func(name string) {
		// Watcher goroutine; marshal onto the frame thread.
		a.Defer(func() {
			core.LogDebug("asset '%s' changed on disk, reload scheduled", name)
		})
	}
	if opts.WatchAssets && opts.AssetDir != "" {
		if err := a.assetRegistry.Watch(opts.AssetDir); err != nil {
			core.LogWarn("asset watching disabled: %s", err.Error())
		}
	}

	a.scene = scene.New(a.config.Name)
	a.layers = renderer.NewComposition()

	backend := opts.Backend
	if backend == nil {
		backend = renderer.NewHeadlessBackend()
	}
	a.renderer = renderer.New(backend, a.device)

	a.soundSystem = opts.Sound
	if a.soundSystem == nil {
		a.soundSystem = systems.NewSoundSystem()
	}
	a.systemRegistry = systems.NewRegistry()
	a.systemRegistry.Register(a.soundSystem)
	for _, s := range opts.ComponentSystems {
		a.systemRegistry.Register(s)
	}

	for _, d := range opts.InputDevices {
		a.input.AddDevice(d)
	}

	a.xrManager = opts.XR
	if a.xrManager == nil {
		a.xrManager = xr.NewManager()
	}

	a.loader.Register(assets.TypeImage, &loaders.ImageLoader{})
	a.loader.Register(assets.TypeBitmapFont, &loaders.BitmapFontLoader{})
	a.loader.Register(assets.TypeSystemFont, &loaders.SystemFontLoader{})
	a.loader.Register(assets.TypeBinary, &loaders.BinaryLoader{})
	a.loader.Register(assets.TypeText, &loaders.TextLoader{})
	for t, h := range opts.ResourceHandlers {
		a.loader.Register(t, h)
	}

	a.game = opts.Game

	// Visibility reactor: audio is suspended while the surface is hidden.
	a.surface.SetVisibilityCallback(func(visible bool) {
		if visible {
			a.soundSystem.Resume()
		} else {
			a.soundSystem.Suspend()
		}
		a.bus.Fire(core.EventContext{Type: core.EventVisibilityChanged, Visible: visible})
	})
	a.surface.SetResizeCallback(func(width, height uint32) {
		a.bus.Fire(core.EventContext{Type: core.EventResized, Width: width, Height: height})
		if a.game != nil && a.game.FnOnResize != nil {
			if err := a.game.FnOnResize(width, height); err != nil {
				core.LogError(err.Error())
			}
		}
	})

	registerApplication(a)

	a.stage = StageInitialized
	core.LogInfo("application '%s' configured", a.config.Name)
	return nil
}

// Start runs the initialize phases and performs the first tick. Calling
// Start twice is a programmer error.
func (a *Application) Start() error {
	if a.stage == StageConstructed {
		return fmt.Errorf("application '%s' must be configured before starting", a.config.Name)
	}
	if a.stage != StageInitialized {
		core.LogError("Start called on application '%s' more than once", a.config.Name)
		return core.ErrAlreadyStarted
	}

	a.clock.Start()
	a.bus.Fire(core.EventContext{Type: core.EventStart})

	if !a.librariesLoaded {
		a.librariesLoaded = true
		a.bus.Fire(core.EventContext{Type: core.EventLibrariesLoaded})
	}

	if err := a.systemRegistry.Initialize(); err != nil {
		return err
	}
	if a.game != nil && a.game.FnInitialize != nil {
		if err := a.game.FnInitialize(); err != nil {
			return err
		}
	}
	a.bus.Fire(core.EventContext{Type: core.EventInitialize})

	if err := a.systemRegistry.PostInitialize(); err != nil {
		return err
	}
	a.bus.Fire(core.EventContext{Type: core.EventPostInitialize})

	if err := a.systemRegistry.PostPostInitialize(); err != nil {
		return err
	}
	a.bus.Fire(core.EventContext{Type: core.EventPostPostInitialize})

	a.stage = StageRunning
	a.tick(0, nil)
	return nil
}

// update advances one simulation step. Input polling is deliberately last:
// everything that wants to record input this frame has already run.
func (a *Application) update(deltaTime float64) {
	a.frame++

	w, h := a.surface.FramebufferSize()
	a.device.UpdateClientRect(w, h)

	if a.updateMode == UpdateModeLegacy {
		a.systemRegistry.FixedUpdate(1.0 / 60.0)
	}
	a.systemRegistry.Update(deltaTime)
	if a.game != nil && a.game.FnUpdate != nil {
		if err := a.game.FnUpdate(deltaTime); err != nil {
			core.LogError("game update failed: %s", err.Error())
		}
	}
	a.systemRegistry.AnimationUpdate(deltaTime)
	a.systemRegistry.PostUpdate(deltaTime)

	a.bus.Fire(core.EventContext{Type: core.EventUpdate, DeltaTime: deltaTime})

	a.input.Update(deltaTime)
}

// render draws one frame: hierarchy sync, then the layer composition.
func (a *Application) render(deltaTime float64) {
	a.bus.Fire(core.EventContext{Type: core.EventPreRender})

	a.scene.SyncHierarchy()
	if a.game != nil && a.game.FnRender != nil {
		if err := a.game.FnRender(deltaTime); err != nil {
			core.LogError("game render failed: %s", err.Error())
		}
	}
	if err := a.renderer.RenderComposition(a.layers, deltaTime); err != nil {
		core.LogError(err.Error())
	}

	a.bus.Fire(core.EventContext{Type: core.EventPostRender})
}

// Defer queues fn to run on the frame thread, strictly between ticks. This
// is the one safe entry point for watcher and loader goroutines, and the
// general form of "must not happen mid-frame" operations.
func (a *Application) Defer(fn func()) {
	a.deferredMu.Lock()
	a.deferred = append(a.deferred, fn)
	a.deferredMu.Unlock()
}

func (a *Application) drainDeferred() {
	for {
		a.deferredMu.Lock()
		if len(a.deferred) == 0 {
			a.deferredMu.Unlock()
			return
		}
		fns := a.deferred
		a.deferred = nil
		a.deferredMu.Unlock()

		for _, fn := range fns {
			fn()
		}
	}
}

// Destroy tears the application down in a fixed order. Called mid-frame it
// only records the request; the in-flight tick finishes cleanly and
// teardown runs immediately after. Teardown is unconditional: subsystem
// destroys are expected to be idempotent and are not rolled back.
func (a *Application) Destroy() error {
	if a.inFrameUpdate {
		a.destroyRequested = true
		return nil
	}
	// Nothing is wired before Configure succeeds, so there is nothing to
	// tear down. This is the cleanup path after a failed Configure.
	if a.stage == StageConstructed {
		return nil
	}
	if a.stage == StageDestroyed || a.stage == StageShuttingDown {
		return nil
	}
	a.stage = StageShuttingDown
	a.destroyRequested = false

	surfaceID := a.surface.ID()

	if a.frameRequestID != 0 {
		if a.xrManager.Active() {
			a.xrManager.CancelFrame(a.frameRequestID)
		} else {
			a.surface.CancelFrame(a.frameRequestID)
		}
		a.frameRequestID = 0
	}

	a.surface.SetVisibilityCallback(nil)
	a.surface.SetResizeCallback(nil)

	a.bus.Fire(core.EventContext{Type: core.EventDestroy})
	if a.game != nil && a.game.FnShutdown != nil {
		if err := a.game.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}

	if err := a.scene.Destroy(); err != nil {
		core.LogError(err.Error())
	}
	a.input.Detach()
	if err := a.systemRegistry.Destroy(); err != nil {
		core.LogError(err.Error())
	}
	a.layers.Destroy()

	for _, asset := range a.assetRegistry.List(false) {
		if err := a.loader.Unload(asset); err != nil {
			core.LogError("failed to unload asset '%s': %s", asset.Name, err.Error())
		}
	}
	if err := a.assetRegistry.Close(); err != nil {
		core.LogError(err.Error())
	}

	if err := a.xrManager.EndSession(); err != nil {
		core.LogError(err.Error())
	}
	if err := a.renderer.Destroy(); err != nil {
		core.LogError(err.Error())
	}
	if err := a.device.Destroy(); err != nil {
		core.LogError(err.Error())
	}
	if err := a.surface.Destroy(); err != nil {
		core.LogError(err.Error())
	}

	a.bus.Clear()
	unregisterApplication(a, surfaceID)

	// A scheduled tick that fires after this point sees a nil device and
	// aborts.
	a.device = nil
	a.renderer = nil
	a.layers = nil
	a.scene = nil
	a.systemRegistry = nil
	a.soundSystem = nil
	a.assetRegistry = nil
	a.loader = nil
	a.xrManager = nil
	a.surface = nil
	a.game = nil

	a.stage = StageDestroyed
	core.LogInfo("application '%s' destroyed", a.config.Name)
	return nil
}

func (a *Application) Stage() Stage {
	return a.stage
}

// Frame is the number of completed simulation steps.
func (a *Application) Frame() uint64 {
	return a.frame
}

// Events is the application's lifecycle event bus.
func (a *Application) Events() *core.EventBus {
	return a.bus
}

func (a *Application) Scene() *scene.Scene {
	return a.scene
}

func (a *Application) Systems() *systems.Registry {
	return a.systemRegistry
}

func (a *Application) Sound() *systems.SoundSystem {
	return a.soundSystem
}

func (a *Application) Assets() *assets.Registry {
	return a.assetRegistry
}

func (a *Application) Loader() *assets.Loader {
	return a.loader
}

func (a *Application) Input() *core.InputState {
	return a.input
}

func (a *Application) Device() graphics.Device {
	return a.device
}

func (a *Application) Surface() platform.Surface {
	return a.surface
}

func (a *Application) Layers() *renderer.Composition {
	return a.layers
}

func (a *Application) XR() *xr.Manager {
	return a.xrManager
}

func (a *Application) Stats() *core.FrameStats {
	return a.stats
}

func (a *Application) TimeScale() float64 {
	return a.frameClock.TimeScale
}

func (a *Application) SetTimeScale(scale float64) {
	a.frameClock.TimeScale = scale
}

func (a *Application) MaxDeltaTime() float64 {
	return a.frameClock.MaxDeltaTime
}

func (a *Application) SetMaxDeltaTime(max float64) {
	a.frameClock.MaxDeltaTime = max
}

// SetAutoRender controls whether every frame renders. With auto-render off,
// RenderNextFrame requests a single render.
func (a *Application) SetAutoRender(auto bool) {
	a.autoRender = auto
}

func (a *Application) AutoRender() bool {
	return a.autoRender
}

// RenderNextFrame requests one render on the next tick while auto-render is
// off.
func (a *Application) RenderNextFrame() {
	a.renderNextFrame = true
}
