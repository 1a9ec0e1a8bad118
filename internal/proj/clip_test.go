package proj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sph(lonDeg, latDeg float64) spherical {
	return spherical{lonDeg * deg2rad, latDeg * deg2rad}
}

func TestClipAntimeridianLineSplit(t *testing.T) {
	line := []spherical{sph(170, 10), sph(-170, 10)}
	chains := clipAntimeridian(line, false)
	require.Len(t, chains, 2)

	end := chains[0][len(chains[0])-1]
	assert.InDelta(t, math.Pi, end.lambda, 1e-3)
	start := chains[1][0]
	assert.InDelta(t, -math.Pi, start.lambda, 1e-3)
	// The great circle between two points at 10N peaks slightly above 10N.
	assert.Greater(t, end.phi, 10*deg2rad-1e-6)
}

func TestClipAntimeridianLineUntouched(t *testing.T) {
	line := []spherical{sph(-30, 0), sph(40, 20), sph(60, -10)}
	chains := clipAntimeridian(line, false)
	require.Len(t, chains, 1)
	assert.Equal(t, line, chains[0])
}

func TestClipAntimeridianRingSplit(t *testing.T) {
	// A small box straddling the dateline, Fiji style.
	ring := []spherical{sph(175, -5), sph(-175, -5), sph(-175, 5), sph(175, 5)}
	out := clipAntimeridian(ring, true)
	require.Len(t, out, 2)
	for _, r := range out {
		require.GreaterOrEqual(t, len(r), 3)
		neg, pos := 0, 0
		for _, p := range r {
			if p.lambda > 0 {
				pos++
			} else {
				neg++
			}
		}
		// Each closed piece stays on its own side of the cut.
		assert.True(t, pos == 0 || neg == 0, "piece mixes both sides")
	}
}

func TestClipAntimeridianRingAroundPole(t *testing.T) {
	// A latitude circle at 80N crosses the cut once; the closure must walk
	// over the pole.
	var ring []spherical
	for lon := -180.0 + 1e-6; lon < 180; lon += 10 {
		ring = append(ring, sph(lon, 80))
	}
	out := clipAntimeridian(ring, true)
	require.Len(t, out, 1)

	maxPhi := -math.Pi
	for _, p := range out[0] {
		maxPhi = math.Max(maxPhi, p.phi)
	}
	assert.Greater(t, maxPhi, 89*deg2rad, "closure should pass near the pole")
}

func TestClipAntimeridianRingUntouched(t *testing.T) {
	ring := []spherical{sph(-10, -10), sph(10, -10), sph(10, 10), sph(-10, 10)}
	out := clipAntimeridian(ring, true)
	require.Len(t, out, 1)
	assert.Equal(t, ring, out[0])
}

func TestClipCapLine(t *testing.T) {
	r := 90 * deg2rad
	line := []spherical{sph(0, 0), sph(60, 0), sph(120, 0), sph(170, 0)}
	chains := clipCap(line, r, false)
	require.Len(t, chains, 1)
	end := chains[0][len(chains[0])-1]
	// The horizon on the equator sits at 90 degrees longitude.
	assert.InDelta(t, math.Pi/2, end.lambda, 1e-3)
}

func TestClipCapRingInside(t *testing.T) {
	ring := []spherical{sph(-5, -5), sph(5, -5), sph(5, 5), sph(-5, 5)}
	out := clipCap(ring, 90*deg2rad, true)
	require.Len(t, out, 1)
	assert.Equal(t, ring, out[0])
}

func TestClipCapRingHidden(t *testing.T) {
	ring := []spherical{sph(175, -5), sph(-175, -5), sph(-175, 5), sph(175, 5)}
	out := clipCap(ring, 90*deg2rad, true)
	assert.Empty(t, out)
}

func TestClipCapRingStraddling(t *testing.T) {
	r := 90 * deg2rad
	ring := []spherical{sph(60, -20), sph(120, -20), sph(120, 20), sph(60, 20)}
	out := clipCap(ring, r, true)
	require.Len(t, out, 1)
	cosR := math.Cos(r)
	for _, p := range out[0] {
		assert.GreaterOrEqual(t, cosAngleFromCenter(p), cosR-1e-3)
	}
}

func TestClipCapRingSurroundingCap(t *testing.T) {
	// A ring at 60 degrees radius fully contains a 10 degree cap: the cap
	// horizon itself becomes the drawn boundary.
	var ring []spherical
	for a := 0.0; a < 360; a += 5 {
		ring = append(ring, capPoint(60*deg2rad, a*deg2rad))
	}
	out := clipCap(ring, 10*deg2rad, true)
	require.Len(t, out, 1)
	for _, p := range out[0] {
		assert.InDelta(t, math.Cos(10*deg2rad), cosAngleFromCenter(p), 1e-6)
	}
}

func TestClipLobesKeepsPieces(t *testing.T) {
	north := []Lobe{{-180, -90, 0}, {0, 90, 180}}
	south := []Lobe{{-180, -90, 0}, {0, 90, 180}}
	// A band crossing the lobe cut at longitude 0, northern hemisphere.
	ring := []spherical{sph(-30, 10), sph(30, 10), sph(30, 40), sph(-30, 40)}
	out := clipLobes(ring, north, south, true)
	require.Len(t, out, 2)
	for _, piece := range out {
		neg, pos := 0, 0
		for _, p := range piece {
			if p.lambda > epsilon {
				pos++
			} else if p.lambda < -epsilon {
				neg++
			}
		}
		assert.True(t, pos == 0 || neg == 0, "piece spans the cut")
	}
}

func TestClipLobesEquatorCrossing(t *testing.T) {
	north := []Lobe{{-180, -90, 0}, {0, 90, 180}}
	south := []Lobe{{-180, -90, 0}, {0, 90, 180}}
	// Entirely within the eastern column but spanning the equator: one piece
	// per hemisphere, fills meeting along the equator.
	ring := []spherical{sph(20, -15), sph(60, -15), sph(60, 15), sph(20, 15)}
	out := clipLobes(ring, north, south, true)
	require.Len(t, out, 2)
}

func TestClipVisibleDropsHiddenRun(t *testing.T) {
	visible := func(lambda, phi float64) bool { return phi > -20*deg2rad }
	line := []spherical{sph(0, 30), sph(0, -60)}
	chains := clipVisible(line, visible, false)
	require.Len(t, chains, 1)
	end := chains[0][len(chains[0])-1]
	assert.InDelta(t, -20*deg2rad, end.phi, 1e-3)
}

func TestClipRingRect(t *testing.T) {
	e := Extent{X0: 0, Y0: 0, X1: 10, Y1: 10}
	ring := [][2]float64{{-5, 2}, {5, 2}, {5, 8}, {-5, 8}}
	got := clipRingRect(ring, e)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p[0], 0.0)
		assert.LessOrEqual(t, p[0], 10.0)
	}
	// Half the box survives.
	assert.InDelta(t, 30.0, ringArea(got), 1e-9)

	assert.Empty(t, clipRingRect([][2]float64{{20, 20}, {30, 20}, {30, 30}}, e))
}

func TestClipLineRect(t *testing.T) {
	e := Extent{X0: 0, Y0: 0, X1: 10, Y1: 10}

	segs := clipLineRect([][2]float64{{-5, 5}, {15, 5}}, e)
	require.Len(t, segs, 1)
	assert.Equal(t, [2]float64{0, 5}, segs[0][0])
	assert.Equal(t, [2]float64{10, 5}, segs[0][len(segs[0])-1])

	// A polyline that leaves and re-enters produces two runs.
	segs = clipLineRect([][2]float64{{2, 2}, {2, 15}, {8, 15}, {8, 2}}, e)
	require.Len(t, segs, 2)

	assert.Empty(t, clipLineRect([][2]float64{{20, 20}, {30, 30}}, e))
}

func ringArea(pts [][2]float64) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return math.Abs(sum) / 2
}
