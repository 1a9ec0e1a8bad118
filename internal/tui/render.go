package tui

import (
	"log/slog"

	"goatlas/internal/atlas"
	"goatlas/internal/render"
)

// tuiPadding is the fit inset in micro pixels. The terminal grid is far
// coarser than an export raster, so the default 32 would waste most of it.
const tuiPadding = 6

func (m *Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 4 {
		h = 4
	}
	return h
}

// mapSize returns the map pane dimensions in cells for the current layout.
func (m *Model) mapSize() (w, h int) {
	w = m.width - sidebarWidth - 1
	if w < 10 {
		w = 10
	}
	return w, m.contentHeight()
}

// rebuild runs the full pipeline for the current ViewState: factory build,
// frame composition, braille paint. Requests arriving before boundary data
// resolves are remembered and replayed by the load handler.
func (m *Model) rebuild() {
	if m.width == 0 || m.height == 0 {
		return
	}
	if m.world == nil {
		m.pending = true
		return
	}

	w, h := m.mapSize()
	m.mapW, m.mapH = w, h
	canvas := newBrailleCanvas(w, h)
	devW, devH := canvas.DeviceSize()

	desc, err := atlas.Find(m.view.ProjectionID)
	if err != nil {
		// Unreachable through the transitions, which validate first.
		m.status = "unknown projection: " + m.view.ProjectionID
		return
	}

	f := &atlas.Factory{World: m.world, Home: m.cfg.Home, Padding: tuiPadding}
	cfg, err := f.Build(desc, float64(devW), float64(devH), m.view)
	if err != nil {
		m.status = "build failed: " + err.Error()
		return
	}

	frame := render.Compose(cfg, m.world, m.view, render.Options{
		Theme: render.TerminalTheme(),
		Home:  m.cfg.Home,
	})
	if err := render.Paint(canvas, frame); err != nil {
		slog.Error("paint failed", "projection", desc.ID, "err", err)
		m.status = "paint failed: " + err.Error()
		return
	}
	m.mapPane = canvas.String()
}
