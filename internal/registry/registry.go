// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (no Bubble Tea,
// no Ebitengine). The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Viewport returns the world area the game draws into.
	Viewport() core.Size

	// TickRate returns the game's native ticks per second.
	TickRate() int

	// Help returns short control hints shown in overlays.
	Help() []string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Once the session has an outcome, Step leaves the world unchanged.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state.
	// Canvas.Begin has already been called with Viewport().
	Render(c core.Canvas)

	// State returns the current game state.
	State() core.GameState
}

// ScoreFormatter is implemented by games whose displayed score differs
// from the raw session score, such as runners that count seconds.
type ScoreFormatter interface {
	ScoreText(score int) string
}

// ScoreText formats score the way g shows it in its HUD.
func ScoreText(g Game, score int) string {
	if f, ok := g.(ScoreFormatter); ok {
		return f.ScoreText(score)
	}
	return fmt.Sprintf("Score: %d", score)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance from config options.
// Config loading happens here, so factories can fail.
type Factory func(opts config.Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or its config is invalid.
func Create(id string, opts config.Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
