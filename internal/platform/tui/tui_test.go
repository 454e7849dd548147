package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/engine"
	_ "github.com/vovakirdan/arcade-sim/internal/games/breakout"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key      string
		expected core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{" ", core.ActionJump},
		{"f", core.ActionPhase},
		{"g", core.ActionPhaseCancel},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"esc", core.ActionBack},
		{"q", core.ActionQuit},
		{"z", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := keys.Action(keyMsg(tc.key)); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestLatchHoldsMovement(t *testing.T) {
	l := NewLatch(3)
	l.Press(core.ActionLeft)

	for i := 0; i < 3; i++ {
		if !l.Frame().Has(core.ActionLeft) {
			t.Fatalf("left should be held on tick %d", i)
		}
	}
	if l.Frame().Has(core.ActionLeft) {
		t.Error("left should be released after the hold expires")
	}
}

func TestLatchRepeatRefreshes(t *testing.T) {
	l := NewLatch(3)
	l.Press(core.ActionJump)
	l.Frame()
	l.Frame()
	l.Press(core.ActionJump)
	for i := 0; i < 3; i++ {
		if !l.Frame().Has(core.ActionJump) {
			t.Fatalf("repeat should extend the hold, dropped on tick %d", i)
		}
	}
}

func TestLatchOneShotAndOpposites(t *testing.T) {
	l := NewLatch(5)
	l.Press(core.ActionPause)
	l.Press(core.ActionLeft)
	l.Press(core.ActionRight)

	f := l.Frame()
	if !f.Has(core.ActionPause) || !f.Has(core.ActionRight) {
		t.Errorf("expected pause and right, got %v", f.Actions)
	}
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if l.Frame().Has(core.ActionPause) {
		t.Error("pause should last one tick")
	}

	l.Reset()
	if len(l.Frame().Actions) != 0 {
		t.Error("Reset should drop held actions")
	}
}

func TestPickerOpensAndClosesGame(t *testing.T) {
	m, err := NewModel(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.View(), "Space Breakout") {
		t.Fatal("picker should list registered games")
	}

	m.Update(keyMsg("enter"))
	if m.driver == nil {
		t.Fatal("enter should open the selected game")
	}
	if m.driver.Mode() != engine.ModeMenu {
		t.Errorf("mode = %v, expected menu", m.driver.Mode())
	}

	// Start, then leave through pause and back
	m.Update(keyMsg("enter"))
	m.Update(TickMsg{})
	if m.driver.Mode() != engine.ModePlaying {
		t.Fatalf("mode = %v, expected playing", m.driver.Mode())
	}
	m.Update(keyMsg("esc"))
	m.Update(TickMsg{})
	m.Update(keyMsg("esc"))
	m.Update(TickMsg{})
	m.Update(keyMsg("esc"))
	m.Update(TickMsg{})
	if m.driver != nil {
		t.Error("back from the title screen should return to the picker")
	}
}

func TestDirectGameQuits(t *testing.T) {
	m, err := NewModel(Options{GameID: "breakout"})
	if err != nil {
		t.Fatal(err)
	}
	m.Update(keyMsg("q"))
	_, cmd := m.Update(TickMsg{})
	if cmd == nil || !m.quitting {
		t.Error("quit key should end the program")
	}
}

// watchedBreakout opens breakout from a temp config file with watching on
// and starts a session.
func watchedBreakout(t *testing.T) (*Model, string) {
	t.Helper()
	data, err := config.Default("breakout")
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := NewModel(Options{GameID: "breakout", Config: config.Options{Path: p}, Watch: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.stopWatch)
	if m.watcher == nil {
		t.Fatal("expected a config watcher")
	}
	m.Update(keyMsg("enter"))
	m.Update(TickMsg{})
	if m.driver.Mode() != engine.ModePlaying {
		t.Fatalf("mode = %v, expected playing", m.driver.Mode())
	}
	return m, p
}

func TestReloadWhilePlayingIsDeferred(t *testing.T) {
	m, p := watchedBreakout(t)
	if err := os.WriteFile(p, []byte("paddle:\n  speed: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, cmd := m.Update(reloadMsg{path: p, watcher: m.watcher})
	if cmd == nil {
		t.Error("reload should re-arm the watcher")
	}
	if !m.driver.Pending() {
		t.Error("replacement should wait for the next session")
	}
	if !strings.Contains(m.status, "applies on restart") {
		t.Errorf("status = %q", m.status)
	}
	if m.driver.Mode() != engine.ModePlaying {
		t.Errorf("reload should not interrupt play, mode = %v", m.driver.Mode())
	}
}

func TestReloadBrokenConfigKeepsGame(t *testing.T) {
	m, p := watchedBreakout(t)
	if err := os.WriteFile(p, []byte("ball: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	m.Update(reloadMsg{path: p, watcher: m.watcher})
	if m.driver.Pending() {
		t.Error("a broken config should not queue a replacement")
	}
	if !strings.HasPrefix(m.status, "config error") {
		t.Errorf("status = %q, expected a config error", m.status)
	}
}

func TestReloadFromStaleWatcherIgnored(t *testing.T) {
	m, p := watchedBreakout(t)

	_, cmd := m.Update(reloadMsg{path: p, watcher: &config.Watcher{}})
	if cmd != nil || m.status != "" || m.driver.Pending() {
		t.Errorf("stale reload was handled: status %q", m.status)
	}
}

func TestUnknownGameFails(t *testing.T) {
	if _, err := NewModel(Options{GameID: "nope"}); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRenderScreenDefaultRunsUnstyled(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorDefault)
	s.DrawText(0, 1, "cd", core.ColorDefault)
	if got := RenderScreen(s); got != "ab  \ncd  " {
		t.Errorf("RenderScreen() = %q, expected plain rows", got)
	}
}

func TestCellStylesCoverPalette(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		if _, ok := cellStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
	if _, ok := cellStyles[core.ColorDefault]; ok {
		t.Error("default color should stay unstyled")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hi", core.ColorDefault)
	s.SetColored(3, 0, 'x', core.ColorRed)
	out := RenderScreen(s)
	if !strings.Contains(out, "hi") || !strings.Contains(out, "x") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
