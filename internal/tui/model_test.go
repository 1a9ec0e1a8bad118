package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatlas/internal/atlas"
	"goatlas/internal/config"
	"goatlas/internal/world"
)

const fixtureJSON = `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"ADMIN":"Taiwan"},
  "geometry":{"type":"Polygon","coordinates":[[[120.1,21.9],[121.9,21.9],[121.9,25.3],[120.1,25.3],[120.1,21.9]]]}},
 {"type":"Feature","properties":{"name":"Japan"},
  "geometry":{"type":"Polygon","coordinates":[[[130.8,33.2],[134.6,33.2],[134.6,35.7],[130.8,35.7],[130.8,33.2]]]}}
]}`

func testWorld(t *testing.T) *world.Boundaries {
	t.Helper()
	b, err := world.Parse(strings.NewReader(fixtureJSON))
	require.NoError(t, err)
	return b
}

func testModel(t *testing.T) Model {
	t.Helper()
	return New(config.Config{Home: "Taiwan", Width: 320, Height: 240})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRequestBeforeDataIsDeferredAndReplayed(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	// No boundary data yet: the transition is accepted but the render is
	// deferred, not crashed.
	m, _ = update(t, m, key("v"))
	assert.Equal(t, atlas.ViewHome, m.view.Mode)
	assert.Equal(t, atlas.CenterHome, m.view.Center)
	assert.True(t, m.pending)
	assert.Empty(t, m.mapPane)

	// Data resolves; the deferred render is replayed.
	m, _ = update(t, m, boundariesMsg{world: testWorld(t), attempt: 1})
	assert.False(t, m.pending)
	assert.False(t, m.loading)
	assert.NotEmpty(t, m.mapPane)
}

func TestLoadRetriesAreBounded(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	loadErr := errors.New("no such file")
	var cmd tea.Cmd
	for attempt := 1; attempt < maxLoadAttempts; attempt++ {
		m, cmd = update(t, m, boundariesMsg{err: loadErr, attempt: attempt})
		assert.NotNil(t, cmd, "attempt %d schedules a retry", attempt)
		assert.False(t, m.unavailable)
	}

	m, cmd = update(t, m, boundariesMsg{err: loadErr, attempt: maxLoadAttempts})
	assert.Nil(t, cmd, "the last attempt gives up")
	assert.True(t, m.unavailable)
	assert.Contains(t, m.View(), "unavailable")
}

func TestResizeIsDebounced(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, boundariesMsg{world: testWorld(t), attempt: 1})
	require.NotEmpty(t, m.mapPane)
	oldW := m.mapW

	// Two quick resizes: each schedules a tick, neither rebuilds yet.
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	require.NotNil(t, cmd)
	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.NotNil(t, cmd)
	assert.Equal(t, oldW, m.mapW)

	// The stale generation is dropped, the newest one rebuilds.
	m, _ = update(t, m, resizeDoneMsg{gen: m.resizeGen - 1})
	assert.Equal(t, oldW, m.mapW)
	m, _ = update(t, m, resizeDoneMsg{gen: m.resizeGen})
	assert.Equal(t, 120-sidebarWidth-1, m.mapW)
}

func TestEnterSelectsProjection(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, boundariesMsg{world: testWorld(t), attempt: 1})

	m.l.Select(0)
	it, ok := m.l.SelectedItem().(projItem)
	require.True(t, ok)
	require.NotEqual(t, atlas.DefaultProjectionID, it.desc.ID)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, it.desc.ID, m.view.ProjectionID)
	assert.NotEmpty(t, m.mapPane)
}

func TestCenterCycleLockedInHomeView(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, boundariesMsg{world: testWorld(t), attempt: 1})

	m, _ = update(t, m, key("v"))
	require.Equal(t, atlas.ViewHome, m.view.Mode)

	m, _ = update(t, m, key("c"))
	assert.Equal(t, atlas.CenterHome, m.view.Center)
	assert.Contains(t, m.status, "locked")

	// Leaving the close-up keeps the center choice instead of resetting it.
	m, _ = update(t, m, key("v"))
	assert.Equal(t, atlas.ViewWorld, m.view.Mode)
	assert.Equal(t, atlas.CenterHome, m.view.Center)
}

func TestGraticuleToggleRepaints(t *testing.T) {
	m := testModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, boundariesMsg{world: testWorld(t), attempt: 1})
	plain := m.mapPane

	m, _ = update(t, m, key("g"))
	assert.True(t, m.view.Graticule)
	assert.NotEqual(t, plain, m.mapPane)

	m, _ = update(t, m, key("g"))
	assert.False(t, m.view.Graticule)
	assert.Equal(t, plain, m.mapPane, "repainting replaces output, never accumulates")
}
