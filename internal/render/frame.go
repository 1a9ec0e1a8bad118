package render

import (
	"github.com/gogpu/gg"

	"goatlas/internal/proj"
)

// Layer is one styled group of subpaths. A zero-alpha fill or stroke skips
// that pass, so a layer can be fill-only, stroke-only, or both.
type Layer struct {
	Name   string
	Fill   gg.RGBA
	Stroke gg.RGBA
	Width  float64
	Dash   []float64
	Paths  []proj.Path
}

// Frame is a complete display list for one rendered map, in device
// coordinates. Painting a frame replaces whatever the canvas held before;
// frames never accumulate onto each other.
type Frame struct {
	W, H   float64
	Layers []Layer
}

// Layer returns the named layer, or nil.
func (f *Frame) Layer(name string) *Layer {
	for i := range f.Layers {
		if f.Layers[i].Name == name {
			return &f.Layers[i]
		}
	}
	return nil
}

// Theme is the color set a frame is composed with.
type Theme struct {
	Page      gg.RGBA
	Water     gg.RGBA
	Land      gg.RGBA
	Home      gg.RGBA
	Border    gg.RGBA
	Graticule gg.RGBA
	Reference gg.RGBA
	Outline   gg.RGBA
}

// DefaultTheme is the print-friendly palette used for exported pages.
func DefaultTheme() Theme {
	return Theme{
		Page:      gg.RGB(1, 1, 1),
		Water:     gg.Hex("#D2E5F2"),
		Land:      gg.Hex("#EDE8DC"),
		Home:      gg.Hex("#7C3AED"),
		Border:    gg.Hex("#8C8678"),
		Graticule: gg.Hex("#AFC6D9"),
		Reference: gg.Hex("#D97706"),
		Outline:   gg.Hex("#3C5A77"),
	}
}

// TerminalTheme matches the TUI palette. The page stays transparent so the
// terminal background shows through.
func TerminalTheme() Theme {
	return Theme{
		Water:     gg.Hex("#0B0F14"),
		Land:      gg.Hex("#6B7280"),
		Home:      gg.Hex("#7C3AED"),
		Border:    gg.Hex("#E6E6E6"),
		Graticule: gg.Hex("#243141"),
		Reference: gg.Hex("#D97706"),
		Outline:   gg.Hex("#E6E6E6"),
	}
}

// Options tunes a composition. The zero value composes with the default
// theme, a 30 degree graticule, and no home country.
type Options struct {
	Theme         Theme
	GraticuleStep float64
	Home          string
}

func (o Options) theme() Theme {
	if o.Theme == (Theme{}) {
		return DefaultTheme()
	}
	return o.Theme
}

func (o Options) step() float64 {
	if o.GraticuleStep <= 0 {
		return 30
	}
	return o.GraticuleStep
}
