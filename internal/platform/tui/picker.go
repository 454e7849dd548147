package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-sim/internal/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Padding(0, 2)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// picker is the game selection list.
type picker struct {
	items  []registry.GameInfo
	cursor int
}

func newPicker() picker {
	return picker{items: registry.List()}
}

func (p *picker) up() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *picker) down() {
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
}

// selected returns the highlighted game, if any.
func (p picker) selected() (registry.GameInfo, bool) {
	if len(p.items) == 0 {
		return registry.GameInfo{}, false
	}
	return p.items[p.cursor], true
}

// view renders the list centered in a width x height area.
func (p picker) view(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("A R C A D E"))
	b.WriteString("\n\n")
	if len(p.items) == 0 {
		b.WriteString(errorStyle.Render("no games registered"))
	}
	for i, g := range p.items {
		line := fmt.Sprintf("  %s", g.Title)
		style := itemStyle
		if i == p.cursor {
			line = fmt.Sprintf("> %s", g.Title)
			style = selectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
