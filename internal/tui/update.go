package tui

import (
	"fmt"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"goatlas/internal/atlas"
	"goatlas/internal/export"
	"goatlas/internal/world"
)

// boundariesMsg reports one boundary-load attempt.
type boundariesMsg struct {
	world   *world.Boundaries
	err     error
	attempt int
}

// retryLoadMsg fires after the backoff delay to start the next attempt.
type retryLoadMsg struct{ attempt int }

// resizeDoneMsg ends a debounce window; stale generations are dropped.
type resizeDoneMsg struct{ gen int }

// exportedMsg reports an interactive frame capture.
type exportedMsg struct {
	path string
	err  error
}

func loadBoundaries(path string, attempt int) tea.Cmd {
	return func() tea.Msg {
		w, err := world.Load(path)
		return boundariesMsg{world: w, err: err, attempt: attempt}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := m.width == 0
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, m.contentHeight()-2)
		if first {
			m.rebuild()
			return m, nil
		}
		// Coalesce resize bursts: only the newest generation rebuilds.
		m.resizeGen++
		gen := m.resizeGen
		return m, tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
			return resizeDoneMsg{gen: gen}
		})

	case resizeDoneMsg:
		if msg.gen == m.resizeGen {
			m.rebuild()
		}
		return m, nil

	case boundariesMsg:
		if msg.err != nil {
			if msg.attempt < maxLoadAttempts {
				m.status = fmt.Sprintf("boundary load failed (attempt %d/%d), retrying...", msg.attempt, maxLoadAttempts)
				next := msg.attempt + 1
				return m, tea.Tick(loadRetryDelay, func(time.Time) tea.Msg {
					return retryLoadMsg{attempt: next}
				})
			}
			m.loading = false
			m.unavailable = true
			m.status = "boundaries unavailable: " + msg.err.Error()
			return m, nil
		}
		m.loading = false
		m.world = msg.world
		m.status = fmt.Sprintf("loaded %d countries", len(msg.world.Countries()))
		// Replay whatever was requested while loading, or draw the initial map.
		m.pending = false
		m.rebuild()
		return m, nil

	case retryLoadMsg:
		return m, loadBoundaries(m.cfg.DataPath, msg.attempt)

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if !m.focusMap {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the sidebar filter is typing, it owns the keyboard.
	if !m.focusMap && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.focusMap = !m.focusMap
		if m.focusMap {
			m.status = "map focused"
		} else {
			m.status = "sidebar focused"
		}
		return m, nil

	case "enter":
		if m.focusMap {
			return m, nil
		}
		it, ok := m.l.SelectedItem().(projItem)
		if !ok {
			return m, nil
		}
		changed, err := m.view.SelectProjection(it.desc.ID)
		if err != nil {
			m.status = "unknown projection: " + it.desc.ID
			return m, nil
		}
		if changed {
			m.rebuild()
		}
		return m, nil

	case "c":
		if m.view.CycleCenterMode() {
			m.status = "center: " + m.view.Center.String()
			m.rebuild()
		} else {
			m.status = "center locked to home country in close-up view"
		}
		return m, nil

	case "v":
		if m.view.ToggleMode() {
			m.status = "view: " + m.view.Mode.String()
			m.rebuild()
		}
		return m, nil

	case "g":
		m.view.ToggleGraticule()
		if m.view.Graticule {
			m.status = "graticule on"
		} else {
			m.status = "graticule off"
		}
		m.rebuild()
		return m, nil

	case "e":
		return m, m.exportCurrent()

	case "h":
		m.helpVisible = !m.helpVisible
		return m, nil
	}

	if !m.focusMap {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// exportCurrent captures the active projection under the session view as a
// PNG next to the configured output location.
func (m Model) exportCurrent() tea.Cmd {
	if m.world == nil {
		return func() tea.Msg {
			return exportedMsg{err: fmt.Errorf("boundaries not loaded yet")}
		}
	}
	desc, err := atlas.Find(m.view.ProjectionID)
	if err != nil {
		return func() tea.Msg { return exportedMsg{err: err} }
	}
	w, view := m.world, m.view
	opts := export.Options{
		Home: m.cfg.Home,
		W:    m.cfg.Width,
		H:    m.cfg.Height,
	}
	return func() tea.Msg {
		path, err := export.Frame(desc, w, view, opts)
		return exportedMsg{path: path, err: err}
	}
}
