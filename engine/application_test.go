package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen3d/lumen/engine/core"
	"github.com/lumen3d/lumen/engine/graphics"
	"github.com/lumen3d/lumen/engine/platform"
	"github.com/lumen3d/lumen/engine/systems"
)

type fixedStepSystem struct {
	steps []float64
}

func (s *fixedStepSystem) Name() string                       { return "fixed-step" }
func (s *fixedStepSystem) Initialize() error                  { return nil }
func (s *fixedStepSystem) PostInitialize() error              { return nil }
func (s *fixedStepSystem) Update(deltaTime float64) error     { return nil }
func (s *fixedStepSystem) PostUpdate(deltaTime float64) error { return nil }
func (s *fixedStepSystem) Destroy() error                     { return nil }

func (s *fixedStepSystem) FixedUpdate(step float64) error {
	s.steps = append(s.steps, step)
	return nil
}

// lateInitSystem records whether the third initialization pass ran and
// whether PostInitialize preceded it.
type lateInitSystem struct {
	postInitCount          int
	postPostCount          int
	postInitBeforePostPost bool
}

func (s *lateInitSystem) Name() string                       { return "late-init" }
func (s *lateInitSystem) Initialize() error                  { return nil }
func (s *lateInitSystem) Update(deltaTime float64) error     { return nil }
func (s *lateInitSystem) PostUpdate(deltaTime float64) error { return nil }
func (s *lateInitSystem) Destroy() error                     { return nil }

func (s *lateInitSystem) PostInitialize() error {
	s.postInitCount++
	return nil
}

func (s *lateInitSystem) PostPostInitialize() error {
	s.postPostCount++
	s.postInitBeforePostPost = s.postInitCount > 0
	return nil
}

type testApp struct {
	app     *Application
	device  *graphics.HeadlessDevice
	surface *platform.Headless
}

func newTestApp(t *testing.T, opts *Options) *testApp {
	t.Helper()

	device := graphics.NewHeadlessDevice(800, 600)
	surface := platform.NewHeadless(800, 600)

	if opts == nil {
		opts = &Options{}
	}
	if opts.Device == nil {
		opts.Device = device
	}
	if opts.Surface == nil {
		opts.Surface = surface
	}

	app := New(DefaultConfig("test"))
	require.NoError(t, app.Configure(opts))
	t.Cleanup(func() { _ = app.Destroy() })

	return &testApp{app: app, device: device, surface: surface}
}

func TestConfigureRequiresDevice(t *testing.T) {
	app := New(DefaultConfig("test"))

	err := app.Configure(&Options{})
	assert.ErrorIs(t, err, core.ErrNoDevice)

	err = app.Configure(nil)
	assert.ErrorIs(t, err, core.ErrNoDevice)
}

func TestConfigureTwiceFails(t *testing.T) {
	ta := newTestApp(t, nil)

	err := ta.app.Configure(&Options{Device: graphics.NewHeadlessDevice(1, 1)})
	assert.Error(t, err)
}

func TestStartRunsInitializePhasesInOrder(t *testing.T) {
	ta := newTestApp(t, nil)
	order := []core.EventCode{}
	for _, code := range []core.EventCode{
		core.EventStart,
		core.EventLibrariesLoaded,
		core.EventInitialize,
		core.EventPostInitialize,
		core.EventPostPostInitialize,
	} {
		code := code
		ta.app.Events().On(code, func(ctx core.EventContext) {
			order = append(order, code)
		})
	}

	require.NoError(t, ta.app.Start())

	assert.Equal(t, []core.EventCode{
		core.EventStart,
		core.EventLibrariesLoaded,
		core.EventInitialize,
		core.EventPostInitialize,
		core.EventPostPostInitialize,
	}, order)
	assert.Equal(t, StageRunning, ta.app.Stage())
	// Start performs the first tick.
	assert.Equal(t, uint64(1), ta.app.Frame())
}

func TestStartFiresThirdInitializePassIntoSystems(t *testing.T) {
	third := &lateInitSystem{}
	ta := newTestApp(t, &Options{ComponentSystems: []systems.System{third}})

	require.NoError(t, ta.app.Start())

	assert.Equal(t, 1, third.postPostCount)
	// The third pass runs only after every system finished PostInitialize.
	assert.True(t, third.postInitBeforePostPost)
}

func TestStartTwiceFails(t *testing.T) {
	ta := newTestApp(t, nil)
	require.NoError(t, ta.app.Start())

	assert.ErrorIs(t, ta.app.Start(), core.ErrAlreadyStarted)
}

func TestStartBeforeConfigureFails(t *testing.T) {
	app := New(DefaultConfig("test"))

	assert.Error(t, app.Start())
}

func TestGameHooksRun(t *testing.T) {
	initCount := 0
	updateCount := 0
	renderCount := 0
	shutdownCount := 0
	game := &Game{
		FnInitialize: func() error { initCount++; return nil },
		FnUpdate:     func(deltaTime float64) error { updateCount++; return nil },
		FnRender:     func(deltaTime float64) error { renderCount++; return nil },
		FnShutdown:   func() error { shutdownCount++; return nil },
	}
	ta := newTestApp(t, &Options{Game: game})

	require.NoError(t, ta.app.Start())
	ta.app.tick(0, nil)

	require.NoError(t, ta.app.Destroy())

	assert.Equal(t, 1, initCount)
	assert.Equal(t, 2, updateCount)
	assert.Equal(t, 2, renderCount)
	assert.Equal(t, 1, shutdownCount)
}

func TestDestroyBeforeConfigureIsSafe(t *testing.T) {
	app := New(DefaultConfig("unconfigured"))

	require.NoError(t, app.Destroy())

	// The usual cleanup path after Configure fails.
	failed := New(DefaultConfig("no-device"))
	require.ErrorIs(t, failed.Configure(&Options{}), core.ErrNoDevice)
	require.NoError(t, failed.Destroy())
}

func TestDestroyTearsDownOwnedSubsystems(t *testing.T) {
	ta := newTestApp(t, nil)
	require.NoError(t, ta.app.Start())

	destroys := 0
	ta.app.Events().On(core.EventDestroy, func(ctx core.EventContext) { destroys++ })

	require.NoError(t, ta.app.Destroy())

	assert.Equal(t, 1, destroys)
	assert.Equal(t, StageDestroyed, ta.app.Stage())
	assert.True(t, ta.device.Destroyed())
	assert.Nil(t, ta.app.Device())

	// A second destroy is a no-op.
	require.NoError(t, ta.app.Destroy())
}

func TestDestroyDuringUpdateIsDeferredToEndOfTick(t *testing.T) {
	ta := newTestApp(t, nil)
	destroys := 0
	ta.app.Events().On(core.EventDestroy, func(ctx core.EventContext) { destroys++ })
	ta.app.Events().On(core.EventUpdate, func(ctx core.EventContext) {
		require.NoError(t, ta.app.Destroy())
		// Teardown must not have run yet; the tick is still in progress.
		require.NotEqual(t, StageDestroyed, ta.app.Stage())
	})

	ta.app.tick(1000, nil)

	assert.Equal(t, 1, destroys)
	assert.Equal(t, StageDestroyed, ta.app.Stage())
}

func TestTickAfterDestroyIsIgnored(t *testing.T) {
	ta := newTestApp(t, nil)
	require.NoError(t, ta.app.Destroy())

	// Simulates a timer callback that was in flight when teardown ran.
	ta.app.tick(1000, nil)

	assert.Equal(t, uint64(0), ta.app.Frame())
}

func TestDeferRunsBetweenTicks(t *testing.T) {
	ta := newTestApp(t, nil)
	ran := false
	inTick := true
	ta.app.Events().On(core.EventUpdate, func(ctx core.EventContext) {
		ta.app.Defer(func() {
			ran = true
			// Deferred work observes the tick as finished.
			inTick = ta.app.inFrameUpdate
		})
	})

	ta.app.tick(1000, nil)

	assert.True(t, ran)
	assert.False(t, inTick)
}

func TestVisibilityReactorSuspendsSound(t *testing.T) {
	ta := newTestApp(t, nil)
	var events []bool
	ta.app.Events().On(core.EventVisibilityChanged, func(ctx core.EventContext) {
		events = append(events, ctx.Visible)
	})

	ta.surface.SetVisible(false)
	assert.True(t, ta.app.Sound().Suspended())

	ta.surface.SetVisible(true)
	assert.False(t, ta.app.Sound().Suspended())

	assert.Equal(t, []bool{false, true}, events)
}

func TestResizeCallbackFiresEventAndGameHook(t *testing.T) {
	var hookW, hookH uint32
	game := &Game{
		FnOnResize: func(width, height uint32) error {
			hookW, hookH = width, height
			return nil
		},
	}
	ta := newTestApp(t, &Options{Game: game})
	var eventW, eventH uint32
	ta.app.Events().On(core.EventResized, func(ctx core.EventContext) {
		eventW, eventH = ctx.Width, ctx.Height
	})

	ta.surface.Resize(1024, 768)

	assert.Equal(t, uint32(1024), eventW)
	assert.Equal(t, uint32(768), eventH)
	assert.Equal(t, uint32(1024), hookW)
	assert.Equal(t, uint32(768), hookH)
}

func TestAutoRenderOffSkipsRenderUntilRequested(t *testing.T) {
	renders := 0
	game := &Game{
		FnRender: func(deltaTime float64) error { renders++; return nil },
	}
	ta := newTestApp(t, &Options{Game: game})
	ta.app.SetAutoRender(false)

	ta.app.tick(1000, nil)
	ta.app.tick(1016, nil)
	assert.Equal(t, 0, renders)

	ta.app.RenderNextFrame()
	ta.app.tick(1032, nil)
	assert.Equal(t, 1, renders)

	// The request is consumed by one frame.
	ta.app.tick(1048, nil)
	assert.Equal(t, 1, renders)
}

func TestLegacyUpdateModeFiresFixedUpdate(t *testing.T) {
	config := DefaultConfig("legacy")
	config.UpdateMode = "legacy"
	fixed := &fixedStepSystem{}

	device := graphics.NewHeadlessDevice(800, 600)
	surface := platform.NewHeadless(800, 600)
	app := New(config)
	require.NoError(t, app.Configure(&Options{
		Device:           device,
		Surface:          surface,
		ComponentSystems: []systems.System{fixed},
	}))
	t.Cleanup(func() { _ = app.Destroy() })

	app.tick(1000, nil)
	app.tick(1016, nil)

	require.Len(t, fixed.steps, 2)
	assert.InDelta(t, 1.0/60.0, fixed.steps[0], 1e-9)
}
