package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goatlas/internal/atlas"
	"goatlas/internal/render"
)

func TestBrailleFillEvenOdd(t *testing.T) {
	b := newBrailleCanvas(10, 4)

	// Outer square with a hole; the hole must stay unlit.
	b.MoveTo(2, 2)
	b.LineTo(18, 2)
	b.LineTo(18, 14)
	b.LineTo(2, 14)
	b.ClosePath()
	b.MoveTo(8, 6)
	b.LineTo(12, 6)
	b.LineTo(12, 10)
	b.LineTo(8, 10)
	b.ClosePath()
	b.SetRGBA(1, 0, 0, 1)
	require.NoError(t, b.Fill())

	inside := b.mask[0][2] // cell covering micro (4..5, 0..3)
	assert.NotZero(t, inside)
	hole := b.mask[2][5] // cell centered in the hole
	assert.Zero(t, hole&0x01, "hole upper-left dot stays unlit")
	assert.Equal(t, "#FF0000", b.color[0][2])
}

func TestBrailleStrokeClosesPath(t *testing.T) {
	b := newBrailleCanvas(8, 4)
	b.MoveTo(1, 1)
	b.LineTo(13, 1)
	b.LineTo(13, 13)
	b.ClosePath()
	b.SetRGBA(0, 1, 0, 1)
	require.NoError(t, b.Stroke())

	// A point on the closing segment from (13,13) back to (1,1).
	assert.NotZero(t, b.mask[1][3])
}

func TestBraillePaintIsIdempotent(t *testing.T) {
	w := testWorld(t)
	view := atlas.DefaultView()
	view.Graticule = true

	desc, err := atlas.Find("mollweide")
	require.NoError(t, err)
	f := &atlas.Factory{World: w, Home: "Taiwan", Padding: tuiPadding}

	paint := func() string {
		c := newBrailleCanvas(60, 20)
		dw, dh := c.DeviceSize()
		cfg, err := f.Build(desc, float64(dw), float64(dh), view)
		require.NoError(t, err)
		frame := render.Compose(cfg, w, view, render.Options{Theme: render.TerminalTheme(), Home: "Taiwan"})
		require.NoError(t, render.Paint(c, frame))
		return c.String()
	}

	first := paint()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, paint())
}
