// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
//
// Configs are plain structs loaded once per session and passed to games by
// value; nothing in this package holds mutable global state.
package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every known preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(s))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// speedFactor returns the multiplier a preset applies to base speeds.
func (p DifficultyPreset) speedFactor() float64 {
	switch p {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// rampFactor returns the multiplier a preset applies to ramp increments.
func (p DifficultyPreset) rampFactor() float64 {
	switch p {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// Options selects where a config comes from and how it is adjusted.
type Options struct {
	Path   string           // Explicit config file, skips the search order
	Preset DifficultyPreset // Applied after loading, empty means normal
}

// WorldConfig defines the simulated area and its cadence.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"`
}

func (w WorldConfig) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", w.Width, w.Height)
	}
	if w.TickRate <= 0 {
		return fmt.Errorf("world.tick_rate must be positive, got %d", w.TickRate)
	}
	return nil
}

// Validator is implemented by every game config.
type Validator interface {
	Validate() error
}
