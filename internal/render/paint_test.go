package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatlas/internal/atlas"
	"goatlas/internal/proj"
	"goatlas/internal/render"
)

func TestPaintRasterDeterministic(t *testing.T) {
	w := testWorld(t)
	view := atlas.DefaultView()
	view.Graticule = true
	cfg := buildConfigured(t, w, "equirectangular", view)
	frame := render.Compose(cfg, w, view, render.Options{Home: "Taiwan"})

	first := gg.NewContext(int(frame.W), int(frame.H))
	require.NoError(t, render.Paint(first, frame))
	second := gg.NewContext(int(frame.W), int(frame.H))
	require.NoError(t, render.Paint(second, frame))

	assert.Equal(t, encodePNG(t, first), encodePNG(t, second))
}

func TestPaintReplacesPriorOutput(t *testing.T) {
	w := testWorld(t)
	view := atlas.DefaultView()
	cfg := buildConfigured(t, w, "mollweide", view)
	frame := render.Compose(cfg, w, view, render.Options{Home: "Taiwan"})

	ctx := gg.NewContext(int(frame.W), int(frame.H))
	require.NoError(t, render.Paint(ctx, frame))
	once := encodePNG(t, ctx)

	// The opaque page layer means a repaint leaves the same pixels, not a
	// darker accumulation.
	require.NoError(t, render.Paint(ctx, frame))
	assert.Equal(t, once, encodePNG(t, ctx))
}

func encodePNG(t *testing.T, ctx *gg.Context) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, ctx.EncodePNG(&buf))
	return buf.Bytes()
}

// opCanvas records painter calls for contract tests.
type opCanvas struct {
	moves, closes  int
	fills, strokes int
	dashSet        bool
	dashCleared    bool
	fillErr        error
	strokeErr      error
}

func (c *opCanvas) MoveTo(x, y float64)          { c.moves++ }
func (c *opCanvas) LineTo(x, y float64)          {}
func (c *opCanvas) ClosePath()                   { c.closes++ }
func (c *opCanvas) ClearPath()                   {}
func (c *opCanvas) SetRGBA(r, g, b, a float64)   {}
func (c *opCanvas) SetLineWidth(width float64)   {}
func (c *opCanvas) SetFillRule(rule gg.FillRule) {}
func (c *opCanvas) SetDash(lengths ...float64)   { c.dashSet = true }
func (c *opCanvas) ClearDash()                   { c.dashCleared = true }
func (c *opCanvas) Fill() error                  { c.fills++; return c.fillErr }
func (c *opCanvas) Stroke() error                { c.strokes++; return c.strokeErr }

func openPath() proj.Path {
	return proj.Path{Pts: [][2]float64{{0, 0}, {10, 10}, {20, 5}}}
}

func closedPath() proj.Path {
	return proj.Path{Pts: [][2]float64{{0, 0}, {10, 0}, {10, 10}}, Closed: true}
}

func TestPaintFillPassSkipsOpenPaths(t *testing.T) {
	frame := &render.Frame{Layers: []render.Layer{{
		Name:   "land",
		Fill:   gg.RGB(0.5, 0.5, 0.5),
		Stroke: gg.RGB(0, 0, 0),
		Paths:  []proj.Path{openPath(), closedPath()},
	}}}

	c := &opCanvas{}
	require.NoError(t, render.Paint(c, frame))
	// Fill traces only the closed path; the stroke pass traces both.
	assert.Equal(t, 3, c.moves)
	assert.Equal(t, 2, c.closes)
	assert.Equal(t, 1, c.fills)
	assert.Equal(t, 1, c.strokes)
}

func TestPaintDashScopedToLayer(t *testing.T) {
	frame := &render.Frame{Layers: []render.Layer{{
		Name:   "reference",
		Stroke: gg.RGB(1, 0, 0),
		Dash:   []float64{4, 3},
		Paths:  []proj.Path{openPath()},
	}}}

	c := &opCanvas{}
	require.NoError(t, render.Paint(c, frame))
	assert.True(t, c.dashSet)
	assert.True(t, c.dashCleared)
}

func TestPaintWrapsLayerErrors(t *testing.T) {
	boom := errors.New("boom")
	frame := &render.Frame{Layers: []render.Layer{{
		Name:  "water",
		Fill:  gg.RGB(0, 0, 1),
		Paths: []proj.Path{closedPath()},
	}}}

	err := render.Paint(&opCanvas{fillErr: boom}, frame)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "water")

	frame.Layers[0].Fill = gg.RGBA{}
	frame.Layers[0].Stroke = gg.RGB(0, 0, 1)
	err = render.Paint(&opCanvas{strokeErr: boom}, frame)
	assert.ErrorIs(t, err, boom)
}
