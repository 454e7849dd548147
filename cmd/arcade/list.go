package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game with its world size and native tick rate.
Each game loads its own config, so the table reflects --difficulty and any
files under ~/.arcade/configs.`,
	RunE: runList,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runList(cmd *cobra.Command, args []string) error {
	opts, err := configOptions()
	if err != nil {
		return err
	}
	// --config names a single file; it does not apply to the whole list
	opts.Path = ""

	rows := gameRows(opts)
	if len(rows) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("ID", "Title", "World", "TPS").
		Rows(rows...)

	fmt.Println(t.Render())
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}

// gameRows describes each registered game. A game whose config fails to
// load is still listed, with the error in place of its world size.
func gameRows(opts config.Options) [][]string {
	var rows [][]string
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID, opts)
		if err != nil {
			rows = append(rows, []string{info.ID, info.Title, "config error", "-"})
			continue
		}
		view := g.Viewport()
		rows = append(rows, []string{
			info.ID,
			info.Title,
			fmt.Sprintf("%gx%g", view.W, view.H),
			strconv.Itoa(g.TickRate()),
		})
	}
	return rows
}
