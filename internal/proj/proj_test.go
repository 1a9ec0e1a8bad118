package proj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitExtentCentersWorld(t *testing.T) {
	p := New(Equirectangular())
	ext := Extent{X0: 0, Y0: 0, X1: 100, Y1: 50}
	require.NoError(t, p.FitExtent(ext, nil))

	// The equirectangular world is exactly 2:1, matching the extent.
	assert.InDelta(t, 50/math.Pi, p.Scale(), 1e-6)

	x, y, ok := p.Project(0, 0)
	require.True(t, ok)
	assert.InDelta(t, 50, x, 1e-6)
	assert.InDelta(t, 25, y, 1e-6)

	// North is up.
	_, yn, ok := p.Project(0, 45)
	require.True(t, ok)
	assert.Less(t, yn, y)

	// The whole outline stays inside the extent.
	for _, path := range p.SphereOutline() {
		for _, pt := range path.Pts {
			assert.GreaterOrEqual(t, pt[0], ext.X0-1e-6)
			assert.LessOrEqual(t, pt[0], ext.X1+1e-6)
			assert.GreaterOrEqual(t, pt[1], ext.Y0-1e-6)
			assert.LessOrEqual(t, pt[1], ext.Y1+1e-6)
		}
	}
}

func TestFitExtentAfterRotationCentersTarget(t *testing.T) {
	for _, raw := range []Raw{Equirectangular(), Mollweide(), Orthographic(), AzimuthalEqualArea()} {
		p := New(raw)
		p.SetRotation(-121, -23.8, 0)
		ext := Extent{X0: 0, Y0: 0, X1: 200, Y1: 120}
		require.NoError(t, p.FitExtent(ext, nil))

		x, y, ok := p.Project(121, 23.8)
		require.True(t, ok)
		assert.InDelta(t, 100, x, 1e-6)
		assert.InDelta(t, 60, y, 1e-6)
	}
}

func TestFitExtentRings(t *testing.T) {
	p := New(Equirectangular())
	ext := Extent{X0: 10, Y0: 10, X1: 110, Y1: 110}
	ring := [][2]float64{{120, 21.9}, {122, 21.9}, {122, 25.3}, {120, 25.3}}
	require.NoError(t, p.FitExtent(ext, [][][2]float64{ring}))

	// The ring's corners land inside the extent.
	for _, pt := range ring {
		x, y, ok := p.Project(pt[0], pt[1])
		require.True(t, ok)
		assert.GreaterOrEqual(t, x, ext.X0-1e-6)
		assert.LessOrEqual(t, x, ext.X1+1e-6)
		assert.GreaterOrEqual(t, y, ext.Y0-1e-6)
		assert.LessOrEqual(t, y, ext.Y1+1e-6)
	}

	// The projected ring fills at least one extent dimension edge to edge.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, path := range p.ProjectRing(ring) {
		for _, pt := range path.Pts {
			minX, maxX = math.Min(minX, pt[0]), math.Max(maxX, pt[0])
			minY, maxY = math.Min(minY, pt[1]), math.Max(maxY, pt[1])
		}
	}
	filledX := maxX-minX >= ext.Width()-1e-6
	filledY := maxY-minY >= ext.Height()-1e-6
	assert.True(t, filledX || filledY)
}

func TestFitExtentDegenerate(t *testing.T) {
	p := New(Equirectangular())
	assert.ErrorIs(t, p.FitExtent(Extent{X0: 0, Y0: 0, X1: 0, Y1: 50}, nil), ErrCannotFit)

	// Failure leaves the transform untouched.
	p.SetScale(7)
	p.SetTranslate(3, 4)
	_ = p.FitExtent(Extent{}, nil)
	assert.Equal(t, 7.0, p.Scale())
	tx, ty := p.Translate()
	assert.Equal(t, 3.0, tx)
	assert.Equal(t, 4.0, ty)
}

func TestProjectHorizon(t *testing.T) {
	p := New(Orthographic())
	require.NoError(t, p.FitExtent(Extent{X0: 0, Y0: 0, X1: 100, Y1: 100}, nil))

	_, _, ok := p.Project(0, 0)
	assert.True(t, ok)
	// The far side of the globe is hidden.
	_, _, ok = p.Project(180, 0)
	assert.False(t, ok)
}

func TestProjectLineSplitsAtHorizon(t *testing.T) {
	p := New(Orthographic())
	require.NoError(t, p.FitExtent(Extent{X0: 0, Y0: 0, X1: 100, Y1: 100}, nil))

	// The full equator is visible only on the near hemisphere.
	paths := p.ProjectLine(Parallel(0))
	require.NotEmpty(t, paths)
	for _, path := range paths {
		assert.False(t, path.Closed)
		for _, pt := range path.Pts {
			assert.InDelta(t, 50, pt[1], 1e-6) // equator maps to the middle row
		}
	}
}

func TestProjectRingAcrossDateline(t *testing.T) {
	p := New(Equirectangular())
	require.NoError(t, p.FitExtent(Extent{X0: 0, Y0: 0, X1: 360, Y1: 180}, nil))

	ring := [][2]float64{{175, -5}, {-175, -5}, {-175, 5}, {175, 5}}
	paths := p.ProjectRing(ring)
	require.Len(t, paths, 2)
	for _, path := range paths {
		assert.True(t, path.Closed)
		require.GreaterOrEqual(t, len(path.Pts), 3)
		// Each piece hugs one edge of the map.
		for _, pt := range path.Pts {
			assert.True(t, pt[0] < 10 || pt[0] > 350, "x=%v not at an edge", pt[0])
		}
	}
}

func TestClipExtentBoundsOutput(t *testing.T) {
	p := New(Mollweide())
	ext := Extent{X0: 20, Y0: 20, X1: 300, Y1: 180}
	require.NoError(t, p.FitExtent(ext, nil))
	p.ZoomAbout(3, 160, 100) // blow the image past the extent
	p.SetClipExtent(ext)

	var total int
	for _, line := range Graticule(15) {
		for _, path := range p.ProjectLine(line) {
			for _, pt := range path.Pts {
				total++
				assert.GreaterOrEqual(t, pt[0], ext.X0-1e-6)
				assert.LessOrEqual(t, pt[0], ext.X1+1e-6)
				assert.GreaterOrEqual(t, pt[1], ext.Y0-1e-6)
				assert.LessOrEqual(t, pt[1], ext.Y1+1e-6)
			}
		}
	}
	assert.Greater(t, total, 100)

	for _, path := range p.SphereOutline() {
		for _, pt := range path.Pts {
			assert.GreaterOrEqual(t, pt[0], ext.X0-1e-6)
			assert.LessOrEqual(t, pt[0], ext.X1+1e-6)
		}
	}
}

func TestZoomAboutKeepsAnchor(t *testing.T) {
	p := New(Equirectangular())
	require.NoError(t, p.FitExtent(Extent{X0: 0, Y0: 0, X1: 100, Y1: 50}, nil))

	x0, y0, ok := p.Project(30, 10)
	require.True(t, ok)
	p.ZoomAbout(2, x0, y0)
	x1, y1, ok := p.Project(30, 10)
	require.True(t, ok)
	assert.InDelta(t, x0, x1, 1e-9)
	assert.InDelta(t, y0, y1, 1e-9)

	// Another point moves away from the anchor.
	x2, y2, ok := p.Project(40, 20)
	require.True(t, ok)
	assert.Greater(t, math.Hypot(x2-x0, y2-y0), 1.0)
}

func TestSphereOutlineShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want int
	}{
		{"band", Equirectangular(), 1},
		{"cap", Orthographic(), 1},
		{"lobes", Interrupted(Sinusoidal(),
			[]Lobe{{-180, -110, -40}, {-40, 0, 40}, {40, 110, 180}},
			[]Lobe{{-180, -100, -20}, {-20, 80, 180}}), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.raw)
			require.NoError(t, p.FitExtent(Extent{X0: 0, Y0: 0, X1: 100, Y1: 100}, nil))
			paths := p.SphereOutline()
			assert.Len(t, paths, tt.want)
			for _, path := range paths {
				assert.True(t, path.Closed)
			}
		})
	}
}

func TestGraticuleShape(t *testing.T) {
	lines := Graticule(10)
	// 36 meridians plus 17 parallels.
	assert.Len(t, lines, 53)

	lines = Graticule(0) // defaulted
	assert.Len(t, lines, 53)

	for _, l := range Graticule(15) {
		require.GreaterOrEqual(t, len(l), 2)
	}
}

func TestProjectionAccessors(t *testing.T) {
	p := New(Mercator())
	p.SetRotation(10, -20, 30)
	assert.Equal(t, [3]float64{10, -20, 30}, p.Rotation())

	_, ok := p.ClipExtent()
	assert.False(t, ok)
	p.SetClipExtent(Extent{X1: 5, Y1: 5})
	got, ok := p.ClipExtent()
	assert.True(t, ok)
	assert.Equal(t, 5.0, got.X1)
	p.ClearClipExtent()
	_, ok = p.ClipExtent()
	assert.False(t, ok)
}
