package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"goatlas/internal/atlas"
)

const (
	headerHeight = 1
	footerHeight = 2
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentHeight := m.contentHeight()
	contentWidth := m.width
	if contentWidth < 10 {
		contentWidth = 10
	}

	active := m.view.ProjectionID
	if d, err := atlas.Find(active); err == nil {
		active = d.DisplayName
	}
	header := titleStyle.Render(" goatlas ") + dimStyle.Render(" ─ ") + appStyle.Render(active)
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(contentHeight).Render(m.l.View())

	mapW, _ := m.mapSize()
	var pane string
	switch {
	case m.unavailable:
		pane = m.centerNotice(mapW, contentHeight, "boundaries unavailable\n\ncheck -data / GOATLAS_DATA and restart")
	case m.loading:
		pane = m.centerNotice(mapW, contentHeight, "loading boundaries...")
	default:
		pane = lipgloss.NewStyle().Width(mapW).Height(contentHeight).Render(m.mapPane)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", pane)

	modes := dimStyle.Render(fmt.Sprintf("  center: %s  view: %s  graticule: %v",
		m.view.Center, m.view.Mode, m.view.Graticule))
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Bottom, status, modes),
			m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) centerNotice(w, h int, text string) string {
	box := boxStyle.Render(text)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓ select",
		"Enter apply",
		"/ filter",
		"Tab focus",
		"c center",
		"v view",
		"g graticule",
		"e export",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
