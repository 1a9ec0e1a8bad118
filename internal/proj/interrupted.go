package proj

import "math"

// Interrupted rebuilds a pseudocylindrical raw as a set of lobes, each drawn
// about its own central meridian. Pseudocylindrical x is linear in longitude
// along the equator, so adjacent lobes join there exactly.
func Interrupted(base Raw, north, south []Lobe) Raw {
	offsets := make(map[float64]float64, len(north)+len(south))
	for _, l := range north {
		x, _ := base.Forward(l.Center*deg2rad, 0)
		offsets[l.Center] = x
	}
	for _, l := range south {
		if _, ok := offsets[l.Center]; !ok {
			x, _ := base.Forward(l.Center*deg2rad, 0)
			offsets[l.Center] = x
		}
	}
	return Raw{
		Forward: func(lambda, phi float64) (float64, float64) {
			l := pickLobe(lambda, phi, north, south)
			x, y := base.Forward(lambda-l.Center*deg2rad, phi)
			return x + offsets[l.Center], y
		},
		LatMin: base.LatMin,
		LatMax: base.LatMax,
		North:  north,
		South:  south,
	}
}

func pickLobe(lambda, phi float64, north, south []Lobe) Lobe {
	lobes := north
	if phi < 0 {
		lobes = south
	}
	deg := lambda * rad2deg
	for _, l := range lobes {
		if deg >= l.Min && deg <= l.Max {
			return l
		}
	}
	// Clip tolerance can leave a point a hair outside every lobe.
	best := lobes[0]
	bestD := math.Inf(1)
	for _, l := range lobes {
		d := math.Min(math.Abs(deg-l.Min), math.Abs(deg-l.Max))
		if d < bestD {
			best, bestD = l, d
		}
	}
	return best
}
