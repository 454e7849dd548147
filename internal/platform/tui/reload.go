package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-sim/internal/config"
	"github.com/vovakirdan/arcade-sim/internal/registry"
)

// reloadMsg reports that the running game's config file changed.
type reloadMsg struct {
	path    string
	watcher *config.Watcher
}

// reloadErrMsg carries a watcher error.
type reloadErrMsg struct {
	err     error
	watcher *config.Watcher
}

// startWatch watches the config file backing game id.
// Embedded defaults have no file and are not watched.
func (m *Model) startWatch(id string) {
	m.stopWatch()
	path := config.Locate(id, m.opts.Config)
	if path == "" {
		m.logger.Debug("no config file to watch", "id", id)
		return
	}
	w, err := config.Watch(path, m.logger)
	if err != nil {
		m.logger.Warn("cannot watch config", "path", path, "err", err)
		return
	}
	m.watcher = w
}

func (m *Model) stopWatch() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		m.logger.Warn("close config watcher", "err", err)
	}
	m.watcher = nil
}

// waitReload waits for one event from the current watcher.
// Each handled message re-arms it; messages from a closed watcher are dropped.
func (m *Model) waitReload() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return reloadMsg{path: path, watcher: w}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return reloadErrMsg{err: err, watcher: w}
		}
	}
}

// handleReload rebuilds the game from the changed file and hands it to the
// driver, which swaps it in at the next session start.
func (m *Model) handleReload(msg reloadMsg) {
	if m.driver == nil {
		return
	}
	id := m.driver.Game().ID()
	g, err := registry.Create(id, m.opts.Config)
	if err != nil {
		m.status = fmt.Sprintf("config error: %v", err)
		m.logger.Error("reload config", "path", msg.path, "err", err)
		return
	}
	if err := m.driver.Replace(g); err != nil {
		m.status = err.Error()
		m.logger.Error("reload config", "path", msg.path, "err", err)
		return
	}
	if m.driver.Pending() {
		m.status = "config reloaded, applies on restart"
	} else {
		m.status = "config reloaded"
	}
	m.logger.Info("config reloaded", "id", id, "path", msg.path)
}
