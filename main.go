/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lumen3d/lumen/engine"
	"github.com/lumen3d/lumen/engine/core"
	"github.com/lumen3d/lumen/engine/graphics"
	"github.com/lumen3d/lumen/engine/platform"
	"github.com/lumen3d/lumen/testbed"
)

func main() {
	core.SetLogLevel(log.DebugLevel)

	config, err := engine.LoadConfig("lumen.toml")
	if err != nil {
		config = engine.DefaultConfig("Lumen Testbed")
	}

	surface := platform.NewDesktop()
	if err := surface.Startup(config.Name, config.StartPosX, config.StartPosY, config.StartWidth, config.StartHeight); err != nil {
		panic(err)
	}

	app := engine.New(config)
	game := testbed.NewTestGame(app, config)

	err = app.Configure(&engine.Options{
		Device:      graphics.NewHeadlessDevice(config.StartWidth, config.StartHeight),
		Surface:     surface,
		Game:        game.Game,
		AssetDir:    "assets",
		WatchAssets: true,
	})
	if err != nil {
		panic(err)
	}

	// Capture termination signals and hand the destroy to the frame thread.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		app.Defer(func() {
			_ = app.Destroy()
		})
	}()

	if err := app.Start(); err != nil {
		panic(err)
	}

	for app.Stage() != engine.StageDestroyed && surface.Pump() {
	}
	_ = app.Destroy()
}
