package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"goatlas/internal/render"
)

// brailleCanvas rasterizes frames onto a terminal cell grid using braille
// runes as a 2x4 microgrid per cell. Device coordinates are micro pixels:
// a w by h cell canvas is 2w by 4h device units. Each cell carries one
// foreground color, so the last layer painted through a cell wins its color
// while earlier dots stay lit.
type brailleCanvas struct {
	w, h  int // cells
	mask  [][]uint8
	color [][]string // hex per cell, "" = terminal default

	paths []subpath
	cur   subpath
	fg    string
}

type subpath struct {
	pts    [][2]float64
	closed bool
}

func newBrailleCanvas(w, h int) *brailleCanvas {
	mask := make([][]uint8, h)
	color := make([][]string, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		color[i] = make([]string, w)
	}
	return &brailleCanvas{w: w, h: h, mask: mask, color: color}
}

var _ render.Canvas = (*brailleCanvas)(nil)

// DeviceSize returns the micro-pixel dimensions frames should be composed at.
func (b *brailleCanvas) DeviceSize() (w, h int) { return b.w * 2, b.h * 4 }

func (b *brailleCanvas) MoveTo(x, y float64) {
	b.endSubpath()
	b.cur.pts = append(b.cur.pts, [2]float64{x, y})
}

func (b *brailleCanvas) LineTo(x, y float64) {
	b.cur.pts = append(b.cur.pts, [2]float64{x, y})
}

func (b *brailleCanvas) ClosePath() { b.cur.closed = true }

func (b *brailleCanvas) ClearPath() {
	b.paths = nil
	b.cur = subpath{}
}

func (b *brailleCanvas) SetRGBA(r, g, bl, a float64) {
	b.fg = hexColor(r, g, bl)
}

// Line width, fill rule, and dash patterns have no microgrid equivalent; the
// painter still drives them for the raster and vector canvases.
func (b *brailleCanvas) SetLineWidth(float64)       {}
func (b *brailleCanvas) SetFillRule(gg.FillRule)    {}
func (b *brailleCanvas) SetDash(lengths ...float64) {}
func (b *brailleCanvas) ClearDash()                 {}

func (b *brailleCanvas) endSubpath() {
	if len(b.cur.pts) > 0 {
		b.paths = append(b.paths, b.cur)
	}
	b.cur = subpath{}
}

// Fill scans the microgrid row by row and lights every pixel inside the
// accumulated subpaths under the even-odd rule, so hole rings and disjoint
// countries resolve in a single pass per layer.
func (b *brailleCanvas) Fill() error {
	b.endSubpath()
	hMic := b.h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		yc := float64(yMic) + 0.5
		var xs []float64
		for _, sp := range b.paths {
			n := len(sp.pts)
			if n < 3 {
				continue
			}
			for i := 0; i < n; i++ {
				a, c := sp.pts[i], sp.pts[(i+1)%n]
				if a[1] == c[1] {
					continue
				}
				if (yc >= a[1]) != (yc >= c[1]) {
					t := (yc - a[1]) / (c[1] - a[1])
					xs = append(xs, a[0]+t*(c[0]-a[0]))
				}
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := x0; x <= x1; x++ {
				b.setPixel(x, yMic)
			}
		}
	}
	return nil
}

// Stroke draws every accumulated subpath with Bresenham segments.
func (b *brailleCanvas) Stroke() error {
	b.endSubpath()
	for _, sp := range b.paths {
		n := len(sp.pts)
		if n < 2 {
			continue
		}
		for i := 0; i+1 < n; i++ {
			b.drawLineMicro(sp.pts[i], sp.pts[i+1])
		}
		if sp.closed {
			b.drawLineMicro(sp.pts[n-1], sp.pts[0])
		}
	}
	return nil
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) and claims the
// cell's color for the current layer.
func (b *brailleCanvas) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.mask[cy][cx] |= bit
	b.color[cy][cx] = b.fg
}

// drawLineMicro draws a segment on the microgrid using Bresenham.
func (b *brailleCanvas) drawLineMicro(p0, p1 [2]float64) {
	x0, y0 := int(math.Round(p0[0])), int(math.Round(p0[1]))
	x1, y1 := int(math.Round(p1[0])), int(math.Round(p1[1]))
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the grid as styled lines, batching runs of equal color to
// keep the escape-sequence overhead down.
func (b *brailleCanvas) String() string {
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		x := 0
		for x < b.w {
			col := b.color[y][x]
			run := x
			for run < b.w && b.color[y][run] == col {
				run++
			}
			seg := make([]rune, 0, run-x)
			for i := x; i < run; i++ {
				if b.mask[y][i] == 0 {
					seg = append(seg, ' ')
				} else {
					seg = append(seg, rune(0x2800+int(b.mask[y][i])))
				}
			}
			if col == "" {
				sb.WriteString(string(seg))
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(string(seg)))
			}
			x = run
		}
		if y+1 < b.h {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func hexColor(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", channel(r), channel(g), channel(b))
}

func channel(v float64) int {
	return int(math.Round(math.Min(1, math.Max(0, v)) * 255))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
