package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// newLogger builds the process logger from the global flags.
// With quiet set and no --log-file, logs are discarded; the terminal
// backend owns the screen.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if dir := filepath.Dir(flagLogFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() } //nolint:errcheck // best-effort close on exit
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closeFn, nil
}

// configOptions builds config options from the global flags.
func configOptions() (config.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Options{}, err
	}
	return config.Options{Path: flagConfig, Preset: preset}, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
}
