package testbed

import (
	"github.com/lumen3d/lumen/engine"
	"github.com/lumen3d/lumen/engine/assets"
	"github.com/lumen3d/lumen/engine/core"
	"github.com/lumen3d/lumen/engine/math"
	"github.com/lumen3d/lumen/engine/scene"
)

type TestGame struct {
	*engine.Game

	app *engine.Application
}

type gameState struct {
	width  uint32
	height uint32

	cube    *scene.Entity
	spin    float64
	elapsed float64

	// Stats are logged once a second, not every frame.
	statsTimer float64
}

func NewTestGame(app *engine.Application, config *engine.ApplicationConfig) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			Config: config,
			State: &gameState{
				width:  config.StartWidth,
				height: config.StartHeight,
			},
		},
		app: app,
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	state := g.State.(*gameState)

	cube := scene.NewEntity("cube")
	cube.Transform = math.TransformFromPosition(math.NewVec3(0, 0, -5))
	g.app.Scene().Root.AddChild(cube)
	state.cube = cube

	registry := g.app.Assets()
	registry.Add(assets.NewAsset("logo", "textures/logo.png", assets.TypeImage, true))
	registry.Add(assets.NewAsset("ubuntu-mono", "fonts/UbuntuMono21px.fnt", assets.TypeBitmapFont, true))
	registry.Add(assets.NewAsset("credits", "text/credits.txt", assets.TypeText, true))

	g.app.Preload(func() {
		core.LogInfo("testbed preload complete")
		g.app.Sound().AddSlot("ambience")
		g.app.Sound().Play("ambience")
	})

	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	state.elapsed += deltaTime

	// Quarter turn per second around Y.
	state.spin += deltaTime * 90.0
	rotation := math.NewQuatFromAxisAngle(math.NewVec3(0, 1, 0), math.DegToRad(float32(state.spin)))
	state.cube.Transform.SetRotation(rotation)

	if g.app.Input().IsKeyDown(core.KEY_ESCAPE) {
		return g.app.Destroy()
	}

	state.statsTimer += deltaTime
	if state.statsTimer >= 1.0 {
		state.statsTimer = 0
		fps, ms := g.app.Stats().Frame()
		core.LogDebug("fps: %.1f frame: %.2fms mem: %d bytes", fps, ms, g.app.Stats().RSS())
	}
	return nil
}

func (g *TestGame) Render(deltaTime float64) error {
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	core.LogDebug("testbed resized to %dx%d", width, height)
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed shutting down")
	return nil
}
