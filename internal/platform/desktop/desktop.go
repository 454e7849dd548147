// Package desktop runs arcade games in an Ebitengine window.
package desktop

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/engine"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

// Options configures a desktop session.
type Options struct {
	GameID  string
	Config  config.Options
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Watch   bool    // Reload the game's config file when it changes
	Scale   float64 // Window size relative to the viewport, 0 for 1
}

// App adapts the engine driver to ebiten.Game.
type App struct {
	opts    Options
	driver  *engine.Driver
	canvas  *Canvas
	watcher *config.Watcher
	logger  *log.Logger
	tps     int
}

// NewApp creates the game and its driver.
func NewApp(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g, err := registry.Create(opts.GameID, opts.Config)
	if err != nil {
		return nil, err
	}
	a := &App{
		opts:   opts,
		driver: engine.NewDriver(g, opts.Runtime, logger),
		canvas: NewCanvas(),
		logger: logger,
	}
	if opts.Watch {
		a.watch()
	}
	return a, nil
}

func (a *App) watch() {
	path := config.Locate(a.opts.GameID, a.opts.Config)
	if path == "" {
		a.logger.Debug("no config file to watch", "id", a.opts.GameID)
		return
	}
	w, err := config.Watch(path, a.logger)
	if err != nil {
		a.logger.Warn("cannot watch config", "path", path, "err", err)
		return
	}
	a.watcher = w
}

// Update advances the driver by one tick.
func (a *App) Update() error {
	a.pollReload()

	switch a.driver.Tick(pollInput()) {
	case engine.SignalQuit, engine.SignalBack:
		return ebiten.Termination
	}

	if tps := a.driver.TickRate(); tps != a.tps {
		ebiten.SetTPS(tps)
		a.tps = tps
	}
	return nil
}

// pollReload applies a pending config change without blocking.
func (a *App) pollReload() {
	if a.watcher == nil {
		return
	}
	select {
	case path, ok := <-a.watcher.Events:
		if !ok {
			a.watcher = nil
			return
		}
		g, err := registry.Create(a.opts.GameID, a.opts.Config)
		if err == nil {
			err = a.driver.Replace(g)
		}
		if err != nil {
			a.logger.Error("reload config", "path", path, "err", err)
			return
		}
		a.logger.Info("config reloaded", "path", path, "deferred", a.driver.Pending())
	case err, ok := <-a.watcher.Errors:
		if ok {
			a.logger.Warn("config watcher", "err", err)
		}
	default:
	}
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Target(screen)
	a.driver.Draw(a.canvas)
}

// Layout fixes the logical screen to the game viewport.
func (a *App) Layout(_, _ int) (int, int) {
	v := a.driver.Game().Viewport()
	return int(v.W), int(v.H)
}

// Close releases the config watcher.
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// Run opens a window and plays until the player quits.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.logger.Warn("close config watcher", "err", err)
		}
	}()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	g := app.driver.Game()
	v := g.Viewport()
	ebiten.SetWindowSize(int(v.W*scale), int(v.H*scale))
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	app.tps = app.driver.TickRate()
	ebiten.SetTPS(app.tps)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
