package proj

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// spherical is a point in rotated spherical coordinates, radians.
type spherical struct {
	lambda, phi float64
}

func (s spherical) point() s2.Point {
	cosPhi := math.Cos(s.phi)
	return s2.Point{Vector: r3.Vector{
		X: cosPhi * math.Cos(s.lambda),
		Y: cosPhi * math.Sin(s.lambda),
		Z: math.Sin(s.phi),
	}}
}

func fromPoint(p s2.Point) spherical {
	return spherical{
		lambda: math.Atan2(p.Y, p.X),
		phi:    math.Asin(math.Max(-1, math.Min(1, p.Z))),
	}
}

// rotation composes a spin about the poles with a pitch/roll rotation, the
// standard three-angle spherical rotation used to recenter projections.
type rotation struct {
	deltaLambda        float64
	cosPhi, sinPhi     float64
	cosGamma, sinGamma float64
	skipPhiGamma       bool
}

func newRotation(lambda, phi, gamma float64) rotation {
	return rotation{
		deltaLambda:  lambda,
		cosPhi:       math.Cos(phi),
		sinPhi:       math.Sin(phi),
		cosGamma:     math.Cos(gamma),
		sinGamma:     math.Sin(gamma),
		skipPhiGamma: phi == 0 && gamma == 0,
	}
}

func (r rotation) apply(s spherical) spherical {
	lambda := normalizeLambda(s.lambda + r.deltaLambda)
	if r.skipPhiGamma {
		return spherical{lambda, s.phi}
	}
	cosPhi := math.Cos(s.phi)
	x := math.Cos(lambda) * cosPhi
	y := math.Sin(lambda) * cosPhi
	z := math.Sin(s.phi)
	k := z*r.cosPhi + x*r.sinPhi
	return spherical{
		lambda: math.Atan2(y*r.cosGamma-k*r.sinGamma, x*r.cosPhi-z*r.sinPhi),
		phi:    math.Asin(math.Max(-1, math.Min(1, k*r.cosGamma+y*r.sinGamma))),
	}
}

// normalizeLambda wraps a longitude into [-pi, pi].
func normalizeLambda(l float64) float64 {
	for l > math.Pi {
		l -= 2 * math.Pi
	}
	for l < -math.Pi {
		l += 2 * math.Pi
	}
	return l
}

// cosAngleFromCenter returns the cosine of the angular distance between a
// rotated point and the projection center (0, 0).
func cosAngleFromCenter(s spherical) float64 {
	return math.Cos(s.phi) * math.Cos(s.lambda)
}

// capPoint returns the point at angular radius r from the center, at azimuth
// a measured around the center.
func capPoint(r, a float64) spherical {
	sinR := math.Sin(r)
	v := r3.Vector{
		X: math.Cos(r),
		Y: sinR * math.Cos(a),
		Z: sinR * math.Sin(a),
	}
	return fromPoint(s2.Point{Vector: v})
}

// densify returns intermediate points between a and b along their great
// circle whenever the arc is longer than step. The endpoints themselves are
// not included.
func densify(a, b spherical, step float64) []spherical {
	pa, pb := a.point(), b.point()
	d := float64(pa.Distance(pb))
	if d <= step || d >= math.Pi-epsilon {
		return nil
	}
	n := int(d / step)
	out := make([]spherical, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, fromPoint(s2.Interpolate(float64(i)/float64(n+1), pa, pb)))
	}
	return out
}

// midpointAt bisects the arc between inside and outside until the predicate
// boundary is bracketed within tol radians, returning the boundary point.
func midpointAt(inside, outside spherical, in func(spherical) bool, tol float64) spherical {
	pa, pb := inside.point(), outside.point()
	for float64(pa.Distance(pb)) > tol {
		mid := s2.Interpolate(0.5, pa, pb)
		if in(fromPoint(mid)) {
			pa = mid
		} else {
			pb = mid
		}
	}
	return fromPoint(pa)
}
