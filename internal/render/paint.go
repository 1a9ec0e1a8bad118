package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"goatlas/internal/proj"
)

// Paint replays a frame onto a canvas, bottom layer first. Fills use the
// even-odd rule so hole rings and clipped lobes cut correctly when a layer
// is filled in one pass.
func Paint(c Canvas, f *Frame) error {
	for _, layer := range f.Layers {
		if layer.Fill.A > 0 {
			c.ClearPath()
			for _, p := range layer.Paths {
				if !p.Closed {
					continue
				}
				tracePath(c, p)
			}
			c.SetFillRule(gg.FillRuleEvenOdd)
			c.SetRGBA(layer.Fill.R, layer.Fill.G, layer.Fill.B, layer.Fill.A)
			if err := c.Fill(); err != nil {
				return fmt.Errorf("render: fill %s: %w", layer.Name, err)
			}
		}
		if layer.Stroke.A > 0 {
			c.ClearPath()
			for _, p := range layer.Paths {
				tracePath(c, p)
			}
			c.SetRGBA(layer.Stroke.R, layer.Stroke.G, layer.Stroke.B, layer.Stroke.A)
			c.SetLineWidth(layer.width())
			if len(layer.Dash) > 0 {
				c.SetDash(layer.Dash...)
			}
			err := c.Stroke()
			if len(layer.Dash) > 0 {
				c.ClearDash()
			}
			if err != nil {
				return fmt.Errorf("render: stroke %s: %w", layer.Name, err)
			}
		}
	}
	return nil
}

func (l Layer) width() float64 {
	if l.Width > 0 {
		return l.Width
	}
	return 1
}

func tracePath(c Canvas, p proj.Path) {
	if len(p.Pts) < 2 {
		return
	}
	c.MoveTo(p.Pts[0][0], p.Pts[0][1])
	for _, pt := range p.Pts[1:] {
		c.LineTo(pt[0], pt[1])
	}
	if p.Closed {
		c.ClosePath()
	}
}
