package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/engine"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

// Default terminal size until the first resize message arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a terminal session.
type Options struct {
	GameID  string // Start this game directly; empty opens the picker
	Config  config.Options
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Watch   bool // Reload the game's config file when it changes
}

// Model is the Bubble Tea model for the picker and the running game.
type Model struct {
	opts   Options
	logger *log.Logger

	keys  KeyMap
	help  help.Model
	latch *Latch

	picker  picker
	driver  *engine.Driver
	watcher *config.Watcher

	screen *core.Screen
	canvas *core.ScreenCanvas
	width  int
	height int

	status   string
	quitting bool
}

// NewModel creates a model. With Options.GameID set the game starts
// without the picker.
func NewModel(opts Options) (*Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := core.NewScreen(defaultWidth, defaultHeight-1)
	m := &Model{
		opts:   opts,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		latch:  NewLatch(DefaultHoldTicks),
		picker: newPicker(),
		screen: screen,
		canvas: core.NewScreenCanvas(screen),
		width:  defaultWidth,
		height: defaultHeight,
	}
	if opts.GameID != "" {
		if err := m.open(opts.GameID); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.tickRate()), m.waitReload())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case TickMsg:
		return m.handleTick()

	case reloadMsg:
		if msg.watcher != m.watcher {
			return m, nil
		}
		m.handleReload(msg)
		return m, m.waitReload()

	case reloadErrMsg:
		if msg.watcher != m.watcher {
			return m, nil
		}
		m.logger.Warn("config watcher", "err", msg.err)
		return m, m.waitReload()
	}
	return m, nil
}

// handleKey routes keys to the picker or latches them for the next tick.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if m.driver != nil {
		m.latch.Press(action)
		return m, nil
	}

	switch action {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		m.picker.up()
	case core.ActionDown:
		m.picker.down()
	case core.ActionConfirm, core.ActionJump:
		if g, ok := m.picker.selected(); ok {
			if err := m.open(g.ID); err != nil {
				m.status = err.Error()
				m.logger.Error("open game", "id", g.ID, "err", err)
				return m, nil
			}
			return m, m.waitReload()
		}
	}
	return m, nil
}

// handleTick steps the driver once per tick.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.driver == nil {
		return m, tickCmd(m.tickRate())
	}

	switch m.driver.Tick(m.latch.Frame()) {
	case engine.SignalQuit:
		m.quitting = true
		return m, tea.Quit
	case engine.SignalBack:
		if m.opts.GameID != "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.close()
	}
	return m, tickCmd(m.tickRate())
}

// open creates the game and its driver, and starts watching its config.
func (m *Model) open(id string) error {
	g, err := registry.Create(id, m.opts.Config)
	if err != nil {
		return err
	}
	m.driver = engine.NewDriver(g, m.opts.Runtime, m.logger)
	m.latch.Reset()
	m.status = ""
	m.logger.Info("game opened", "id", id)

	if m.opts.Watch {
		m.startWatch(id)
	}
	return nil
}

// close returns to the picker.
func (m *Model) close() {
	if m.driver != nil {
		m.logger.Info("game closed", "id", m.driver.Game().ID(), "score", m.driver.State().Score)
	}
	m.driver = nil
	m.stopWatch()
	m.latch.Reset()
}

func (m *Model) tickRate() int {
	if m.driver != nil {
		return m.driver.TickRate()
	}
	if m.opts.Runtime.TickRate > 0 {
		return m.opts.Runtime.TickRate
	}
	return 30
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.driver == nil {
		body := m.picker.view(m.width, max(m.height-2, 1))
		foot := m.help.View(m.keys)
		if m.status != "" {
			foot = errorStyle.Render(m.status)
		}
		return body + "\n" + foot
	}

	m.driver.Draw(m.canvas)
	foot := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		foot = statusStyle.Render(m.status) + "  " + foot
	}
	return RenderScreen(m.screen) + "\n" + foot
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer m.stopWatch()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
