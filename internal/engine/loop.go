package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Clock abstracts time so loops can be driven by tests.
type Clock interface {
	Now() time.Time
	// Sleep waits for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration)
}

// InputSource yields the input for one tick.
type InputSource interface {
	Poll() core.InputFrame
}

// Presenter displays the driver after each tick.
type Presenter interface {
	Present(d *Driver) error
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Poll calls f.
func (f InputFunc) Poll() core.InputFrame { return f() }

// Options controls when a loop stops.
type Options struct {
	ExitOnOutcome bool // Stop when the session reaches an outcome
	MaxTicks      int  // Stop after this many ticks, 0 for no limit
}

// Loop runs a driver at a fixed cadence.
// Ticks are never skipped: a slow tick delays the next one instead.
type Loop struct {
	Driver    *Driver
	Clock     Clock
	Input     InputSource
	Presenter Presenter // May be nil
	Options   Options
	Logger    *log.Logger
}

// Run ticks until the context is cancelled, the driver signals quit or back,
// or an exit option fires. Cancellation is checked once per tick, so a tick
// in progress always completes. Returns the final game state.
func (l *Loop) Run(ctx context.Context) (core.GameState, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := l.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	interval := l.Driver.Interval()
	logger.Debug("loop start", "game", l.Driver.Game().ID(), "interval", interval)

	ticks := 0
	for {
		if err := ctx.Err(); err != nil {
			logger.Debug("loop cancelled", "ticks", ticks)
			return l.Driver.State(), nil
		}

		start := clock.Now()

		in := core.NewInputFrame()
		if l.Input != nil {
			in = l.Input.Poll()
		}
		sig := l.Driver.Tick(in)

		if l.Presenter != nil {
			if err := l.Presenter.Present(l.Driver); err != nil {
				return l.Driver.State(), fmt.Errorf("engine: present: %w", err)
			}
		}

		ticks++
		switch {
		case sig != SignalNone:
			logger.Debug("loop stopped by input", "ticks", ticks)
			return l.Driver.State(), nil
		case l.Options.ExitOnOutcome && l.Driver.Mode() == ModeTerminal:
			return l.Driver.State(), nil
		case l.Options.MaxTicks > 0 && ticks >= l.Options.MaxTicks:
			return l.Driver.State(), nil
		}

		if elapsed := clock.Now().Sub(start); elapsed < interval {
			clock.Sleep(ctx, interval-elapsed)
		}
	}
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep waits for d or until ctx is done.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// InstantClock never sleeps; simulated time advances by the requested
// duration. Used for headless runs that should finish as fast as possible.
type InstantClock struct {
	now time.Time
}

// Now returns the simulated time.
func (c *InstantClock) Now() time.Time { return c.now }

// Sleep advances simulated time without blocking.
func (c *InstantClock) Sleep(_ context.Context, d time.Duration) {
	c.now = c.now.Add(d)
}
