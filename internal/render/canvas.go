package render

import "github.com/gogpu/gg"

// Canvas is the path-drawing surface a Frame is painted onto. It is the
// subset of the gg context API the painter needs, so a raster context, a
// command recorder, and the terminal cell buffer can all stand behind it.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	SetFillRule(rule gg.FillRule)
	SetDash(lengths ...float64)
	ClearDash()
	Fill() error
	Stroke() error
}

var _ Canvas = (*gg.Context)(nil)
