package tui

import (
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"goatlas/internal/atlas"
	"goatlas/internal/config"
	"goatlas/internal/world"
)

const (
	// maxLoadAttempts bounds the boundary-data retry loop.
	maxLoadAttempts = 3
	loadRetryDelay  = 2 * time.Second

	// resizeDebounce coalesces a burst of terminal resizes into one rebuild.
	resizeDebounce = 200 * time.Millisecond

	sidebarWidth = 34
)

type projItem struct {
	desc atlas.Descriptor
}

func (p projItem) Title() string       { return p.desc.DisplayName }
func (p projItem) Description() string { return string(p.desc.Family) }
func (p projItem) FilterValue() string { return p.desc.DisplayName }

// Model is the interactive session: the one ViewState owner. It holds ids and
// enums only; configured projections and canvases live for a single rebuild.
type Model struct {
	cfg config.Config

	width  int
	height int

	l           list.Model
	focusMap    bool
	helpVisible bool

	view  atlas.ViewState
	world *world.Boundaries

	// boundary loading
	loading     bool
	unavailable bool
	pending     bool // a render was requested before data resolved

	// last rendered map pane, rebuilt wholesale on every accepted transition
	mapPane    string
	mapW, mapH int

	resizeGen int

	status string
}

// New builds the startup model: default view, boundary data not yet loaded.
func New(cfg config.Config) Model {
	items := make([]list.Item, 0, len(atlas.All()))
	selected := 0
	for i, d := range atlas.All() {
		if d.ID == atlas.DefaultProjectionID {
			selected = i
		}
		items = append(items, projItem{desc: d})
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	l := list.New(items, d, 0, 0)
	l.Title = "Projections"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Select(selected)

	return Model{
		cfg:         cfg,
		l:           l,
		helpVisible: true,
		view:        atlas.DefaultView(),
		loading:     true,
		status:      "loading boundaries...",
	}
}

func (m Model) Init() tea.Cmd {
	return loadBoundaries(m.cfg.DataPath, 1)
}
