package export

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"goatlas/internal/render"
)

// recCanvas adapts the command recorder to the painter's canvas: the
// recorder's Fill and Stroke cannot fail, and its fill rule type differs
// from the raster context's.
type recCanvas struct {
	*recording.Recorder
}

var _ render.Canvas = recCanvas{}

func (c recCanvas) SetFillRule(rule gg.FillRule) { c.Recorder.SetFillRuleGG(rule) }

func (c recCanvas) Fill() error {
	c.Recorder.Fill()
	return nil
}

func (c recCanvas) Stroke() error {
	c.Recorder.Stroke()
	return nil
}
