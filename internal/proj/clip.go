package proj

import (
	"math"
	"sort"

	"github.com/golang/geo/s2"
)

// Spherical clipping works in rotated coordinates. Lines are simply split
// into visible chains. Rings are split the same way and then re-closed along
// the cut so they stay fillable: chain endpoints are placed on the cut
// contour, sorted by a contour parameter, and joined by connector walks
// wherever the contour runs through the ring's interior.

const (
	// crossTol bounds the bisection error of a cut crossing, radians.
	crossTol = 1e-4
	// boundaryStep is the sampling step for connector walks, radians.
	boundaryStep = 2 * deg2rad
)

type cutChain struct {
	pts  []spherical
	tIn  float64 // contour parameter of the first point
	tOut float64 // contour parameter of the last point
}

// --- antimeridian -----------------------------------------------------------

// clipAntimeridian cuts a rotated chain at the +-180 meridian. For rings the
// pieces are re-closed along the cut, walking over a pole when the ring
// encloses one.
func clipAntimeridian(pts []spherical, ring bool) [][]spherical {
	n := len(pts)
	if n == 0 {
		return nil
	}

	var chains []cutChain
	cur := []spherical{pts[0]}
	last := n
	if ring {
		last = n + 1 // include the closing segment
	}
	for i := 1; i < last; i++ {
		a := cur[len(cur)-1]
		b := pts[i%n]
		if math.Abs(b.lambda-a.lambda) > math.Pi {
			side := sign(a.lambda)
			cross := midpointAt(a, b, func(s spherical) bool { return sign(s.lambda) == side }, crossTol)
			exit := spherical{side * (math.Pi - epsilon), cross.phi}
			entry := spherical{-side * (math.Pi - epsilon), cross.phi}
			cur = append(cur, exit)
			chains = append(chains, cutChain{pts: cur})
			cur = []spherical{entry, b}
			continue
		}
		cur = append(cur, b)
	}

	if len(chains) == 0 {
		if ring {
			return [][]spherical{pts}
		}
		return [][]spherical{cur}
	}

	if !ring {
		chains = append(chains, cutChain{pts: cur})
		out := make([][]spherical, 0, len(chains))
		for _, c := range chains {
			if len(c.pts) >= 2 {
				out = append(out, c.pts)
			}
		}
		return out
	}

	// The walk started mid-chain: the leftover tail continues into the first
	// chain's head.
	if len(cur) > 1 {
		chains[0].pts = append(cur[:len(cur)-1], chains[0].pts...)
	}

	loop := ringLoop(pts)
	for i := range chains {
		chains[i].tIn = antimeridianT(chains[i].pts[0])
		chains[i].tOut = antimeridianT(chains[i].pts[len(chains[i].pts)-1])
	}
	return assembleCut(chains, 2*math.Pi, antimeridianWalk, func(t float64) bool {
		return loopContains(loop, antimeridianPoint(t, 1e-3))
	})
}

// antimeridianT parameterizes the cut contour: down the +180 edge from the
// north pole, through the south pole, and up the -180 edge.
func antimeridianT(s spherical) float64 {
	if s.lambda > 0 {
		return math.Pi/2 - s.phi
	}
	return 3*math.Pi/2 + s.phi
}

func antimeridianPoint(t, inset float64) spherical {
	t = math.Mod(t+2*math.Pi, 2*math.Pi)
	if t <= math.Pi {
		return spherical{math.Pi - inset, math.Pi/2 - t}
	}
	return spherical{-math.Pi + inset, t - 3*math.Pi/2}
}

func antimeridianWalk(t0, t1 float64) []spherical {
	var out []spherical
	for t := t0 + boundaryStep; t < t1; t += boundaryStep {
		out = append(out, antimeridianPoint(t, epsilon))
	}
	return out
}

// --- horizon cap ------------------------------------------------------------

// clipCap keeps the part of a chain within the angular radius r of the
// projection center, closing ring pieces along the horizon circle.
func clipCap(pts []spherical, r float64, ring bool) [][]spherical {
	cosR := math.Cos(r)
	in := func(s spherical) bool { return cosAngleFromCenter(s) >= cosR }
	return clipRegion(pts, ring, region{
		in:    in,
		param: capAzimuth,
		boundary: func(t0, t1 float64) []spherical {
			var out []spherical
			for t := t0 + boundaryStep; t < t1; t += boundaryStep {
				out = append(out, capPoint(r, t))
			}
			return out
		},
		period: 2 * math.Pi,
		interiorPoint: func(t float64) spherical {
			return capPoint(r-1e-3, t)
		},
		full: func() []spherical {
			ring := make([]spherical, 0, 181)
			for a := 0.0; a < 360; a += 2 {
				ring = append(ring, capPoint(r, a*deg2rad))
			}
			return ring
		},
	})
}

// capAzimuth is the position of a horizon point around the center.
func capAzimuth(s spherical) float64 {
	p := s.point()
	a := math.Atan2(p.Z, p.Y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// --- horizon predicate (irregular horizons) ---------------------------------

// clipVisible cuts a chain against a projection-specific visibility
// predicate. Ring pieces are closed with straight chords, which is adequate
// for the few raws that need it.
func clipVisible(pts []spherical, visible func(lambda, phi float64) bool, ring bool) [][]spherical {
	return clipRegion(pts, ring, region{
		in:     func(s spherical) bool { return visible(s.lambda, s.phi) },
		param:  func(s spherical) float64 { return s.lambda + math.Pi },
		period: 2 * math.Pi,
		boundary: func(t0, t1 float64) []spherical {
			return nil
		},
		interiorPoint: nil,
		full:          nil,
	})
}

// --- interruption lobes -----------------------------------------------------

// clipLobes cuts a chain against every interruption lobe and keeps the
// in-lobe pieces. Ring pieces are closed along the lobe perimeter, so fills
// from adjacent lobes meet cleanly at the equator.
func clipLobes(pts []spherical, north, south []Lobe, ring bool) [][]spherical {
	var out [][]spherical
	for _, l := range north {
		out = append(out, clipRegion(pts, ring, lobeRegion(l, true))...)
	}
	for _, l := range south {
		out = append(out, clipRegion(pts, ring, lobeRegion(l, false))...)
	}
	return out
}

// lobeRegion describes one lobe as a clip region. The contour runs up the
// western cut, across the polar edge, down the eastern cut, and back along
// the equator.
func lobeRegion(l Lobe, northern bool) region {
	lmin, lmax := l.Min*deg2rad, l.Max*deg2rad
	span := lmax - lmin
	sgn := 1.0
	if !northern {
		sgn = -1
	}
	in := func(s spherical) bool {
		return sgn*s.phi >= -epsilon && s.lambda >= lmin-epsilon && s.lambda <= lmax+epsilon
	}
	point := func(t, inset float64) spherical {
		switch {
		case t < math.Pi/2: // western cut, equator to pole
			return spherical{lmin + inset, sgn * t}
		case t < math.Pi/2+span: // polar edge
			return spherical{lmin + (t - math.Pi/2), sgn * (math.Pi/2 - inset)}
		case t < math.Pi+span: // eastern cut, pole to equator
			return spherical{lmax - inset, sgn * (math.Pi + span - t)}
		default: // equator, east to west
			return spherical{lmax - (t - math.Pi - span), sgn * inset}
		}
	}
	return region{
		in: in,
		param: func(s spherical) float64 {
			// Classify by the nearest contour piece.
			dWest := math.Abs(s.lambda - lmin)
			dEast := math.Abs(s.lambda - lmax)
			dEq := math.Abs(s.phi)
			switch {
			case dEq <= dWest && dEq <= dEast:
				return math.Pi + span + (lmax - s.lambda)
			case dWest <= dEast:
				return sgn * s.phi
			default:
				return math.Pi/2 + span + (math.Pi/2 - sgn*s.phi)
			}
		},
		boundary: func(t0, t1 float64) []spherical {
			var out []spherical
			for t := t0 + boundaryStep; t < t1; t += boundaryStep {
				out = append(out, point(math.Mod(t, math.Pi+2*span), epsilon))
			}
			return out
		},
		period:        math.Pi + 2*span,
		interiorPoint: func(t float64) spherical { return point(t, 1e-3) },
		full: func() []spherical {
			var ring []spherical
			total := math.Pi + 2*span
			for t := 0.0; t < total; t += boundaryStep {
				ring = append(ring, point(t, epsilon))
			}
			return ring
		},
	}
}

// --- predicate region core --------------------------------------------------

type region struct {
	in       func(spherical) bool
	param    func(spherical) float64
	boundary func(t0, t1 float64) []spherical
	period   float64
	// interiorPoint yields a point just inside the contour at parameter t,
	// used to test whether a contour span lies inside the ring. nil falls
	// back to chord closure without interior tests.
	interiorPoint func(t float64) spherical
	// full returns the whole contour as a ring, emitted when a ring encloses
	// the entire region without touching it. nil skips that case.
	full func() []spherical
}

// clipRegion splits a chain into the pieces inside the region, closing ring
// pieces along the region contour.
func clipRegion(pts []spherical, ring bool, rg region) [][]spherical {
	n := len(pts)
	if n == 0 {
		return nil
	}

	var chains []cutChain
	var cur []spherical
	inside := rg.in(pts[0])
	if inside {
		cur = []spherical{pts[0]}
	}
	last := n
	if ring {
		last = n + 1
	}
	for i := 1; i < last; i++ {
		b := pts[i%n]
		bIn := rg.in(b)
		a := b
		if len(cur) > 0 {
			a = cur[len(cur)-1]
		} else if i >= 2 {
			a = pts[(i-1)%n]
		} else {
			a = pts[0]
		}
		switch {
		case inside && bIn:
			cur = append(cur, b)
		case inside && !bIn:
			cross := midpointAt(a, b, rg.in, crossTol)
			cur = append(cur, cross)
			chains = append(chains, cutChain{pts: cur})
			cur = nil
		case !inside && bIn:
			cross := midpointAt(b, a, rg.in, crossTol)
			cur = []spherical{cross, b}
		}
		inside = bIn
	}

	if len(chains) == 0 && cur == nil {
		// Fully outside; a ring may still enclose the whole region.
		if ring && rg.full != nil {
			if loop := ringLoop(pts); loop != nil && rg.interiorPoint != nil &&
				loopContains(loop, rg.interiorPoint(0)) {
				return [][]spherical{rg.full()}
			}
		}
		return nil
	}
	if len(chains) == 0 {
		// Fully inside.
		if ring {
			return [][]spherical{pts}
		}
		return [][]spherical{cur}
	}

	if !ring {
		if len(cur) >= 2 {
			chains = append(chains, cutChain{pts: cur})
		}
		out := make([][]spherical, 0, len(chains))
		for _, c := range chains {
			if len(c.pts) >= 2 {
				out = append(out, c.pts)
			}
		}
		return out
	}

	// Stitch the wrap-around tail to the head chain when the walk started
	// inside the region.
	if len(cur) > 1 {
		chains[0].pts = append(cur[:len(cur)-1], chains[0].pts...)
	}

	for i := range chains {
		chains[i].tIn = rg.param(chains[i].pts[0])
		chains[i].tOut = rg.param(chains[i].pts[len(chains[i].pts)-1])
	}

	interior := func(t float64) bool { return true }
	if rg.interiorPoint != nil {
		loop := ringLoop(pts)
		interior = func(t float64) bool {
			return loopContains(loop, rg.interiorPoint(math.Mod(t, rg.period)))
		}
	}
	return assembleCut(chains, rg.period, rg.boundary, interior)
}

// --- cut assembly -----------------------------------------------------------

type cutEnd struct {
	t     float64
	chain int
	start bool
}

// assembleCut joins cut chains back into closed rings. Endpoints are sorted
// along the cut contour; the spans between consecutive endpoints that lie in
// the ring's interior become connector walks.
func assembleCut(chains []cutChain, period float64, boundary func(t0, t1 float64) []spherical, interior func(t float64) bool) [][]spherical {
	eps := make([]cutEnd, 0, 2*len(chains))
	for i, c := range chains {
		eps = append(eps,
			cutEnd{t: c.tIn, chain: i, start: true},
			cutEnd{t: c.tOut, chain: i, start: false},
		)
	}
	sort.Slice(eps, func(i, j int) bool { return eps[i].t < eps[j].t })
	n := len(eps)

	pos := make(map[[2]int]int, n) // (chain, start?1:0) -> sorted index
	for i, e := range eps {
		k := [2]int{e.chain, 0}
		if e.start {
			k[1] = 1
		}
		pos[k] = i
	}

	spanEnds := func(j int) (t0, t1 float64) {
		t0 = eps[j].t
		t1 = eps[(j+1)%n].t
		if (j+1)%n == 0 || t1 < t0 {
			t1 += period
		}
		return
	}
	conn := make([]bool, n)
	for j := 0; j < n; j++ {
		t0, t1 := spanEnds(j)
		conn[j] = interior((t0 + t1) / 2)
	}

	used := make([]bool, len(chains))
	var rings [][]spherical
	for c0 := range chains {
		if used[c0] {
			continue
		}
		used[c0] = true
		ring := append([]spherical{}, chains[c0].pts...)
		cur := pos[[2]int{c0, 0}] // index of c0's end endpoint

		for steps := 0; steps <= 2*n; steps++ {
			fwd := cur
			back := (cur - 1 + n) % n
			var far int
			var walk []spherical
			switch {
			case conn[fwd] && !conn[back]:
				t0, t1 := spanEnds(fwd)
				walk = boundary(t0, t1)
				far = (cur + 1) % n
			case conn[back] && !conn[fwd]:
				t0, t1 := spanEnds(back)
				walk = reverseChain(boundary(t0, t1))
				far = back
			default:
				// Ambiguous interior test; take the forward span.
				t0, t1 := spanEnds(fwd)
				walk = boundary(t0, t1)
				far = (cur + 1) % n
			}
			ring = append(ring, walk...)

			to := eps[far]
			if to.chain == c0 {
				break
			}
			used[to.chain] = true
			if to.start {
				ring = append(ring, chains[to.chain].pts...)
				cur = pos[[2]int{to.chain, 0}]
			} else {
				ring = append(ring, reverseChain(chains[to.chain].pts)...)
				cur = pos[[2]int{to.chain, 1}]
			}
		}
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
	}
	return rings
}

func reverseChain(pts []spherical) []spherical {
	out := make([]spherical, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// ringLoop builds an s2 loop for interior tests, normalized so it encloses
// the smaller side of the sphere. Returns nil for degenerate rings.
func ringLoop(pts []spherical) *s2.Loop {
	var vs []s2.Point
	for _, p := range pts {
		v := p.point()
		if len(vs) > 0 && vs[len(vs)-1].ApproxEqual(v) {
			continue
		}
		vs = append(vs, v)
	}
	if len(vs) >= 2 && vs[0].ApproxEqual(vs[len(vs)-1]) {
		vs = vs[:len(vs)-1]
	}
	if len(vs) < 3 {
		return nil
	}
	loop := s2.LoopFromPoints(vs)
	loop.Normalize()
	return loop
}

func loopContains(loop *s2.Loop, s spherical) bool {
	if loop == nil {
		return false
	}
	return loop.ContainsPoint(s.point())
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// --- device-space rectangle -------------------------------------------------

// clipRingRect clips a closed device-space ring to a rectangle
// (Sutherland-Hodgman).
func clipRingRect(pts [][2]float64, e Extent) [][2]float64 {
	clipEdge := func(pts [][2]float64, inside func([2]float64) bool, cross func(a, b [2]float64) [2]float64) [][2]float64 {
		if len(pts) == 0 {
			return nil
		}
		out := make([][2]float64, 0, len(pts))
		prev := pts[len(pts)-1]
		prevIn := inside(prev)
		for _, p := range pts {
			pIn := inside(p)
			if pIn {
				if !prevIn {
					out = append(out, cross(prev, p))
				}
				out = append(out, p)
			} else if prevIn {
				out = append(out, cross(prev, p))
			}
			prev, prevIn = p, pIn
		}
		return out
	}

	atX := func(x float64) func(a, b [2]float64) [2]float64 {
		return func(a, b [2]float64) [2]float64 {
			t := (x - a[0]) / (b[0] - a[0])
			return [2]float64{x, a[1] + t*(b[1]-a[1])}
		}
	}
	atY := func(y float64) func(a, b [2]float64) [2]float64 {
		return func(a, b [2]float64) [2]float64 {
			t := (y - a[1]) / (b[1] - a[1])
			return [2]float64{a[0] + t*(b[0]-a[0]), y}
		}
	}

	pts = clipEdge(pts, func(p [2]float64) bool { return p[0] >= e.X0 }, atX(e.X0))
	pts = clipEdge(pts, func(p [2]float64) bool { return p[0] <= e.X1 }, atX(e.X1))
	pts = clipEdge(pts, func(p [2]float64) bool { return p[1] >= e.Y0 }, atY(e.Y0))
	pts = clipEdge(pts, func(p [2]float64) bool { return p[1] <= e.Y1 }, atY(e.Y1))
	return pts
}

// clipLineRect clips an open device-space polyline to a rectangle, splitting
// it into the inside runs.
func clipLineRect(pts [][2]float64, e Extent) [][][2]float64 {
	var out [][][2]float64
	var cur [][2]float64
	flush := func() {
		if len(cur) >= 2 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		ca, cb, ok := clipSegment(a, b, e)
		if !ok {
			flush()
			continue
		}
		if len(cur) == 0 || cur[len(cur)-1] != ca {
			flush()
			cur = [][2]float64{ca}
		}
		cur = append(cur, cb)
		if cb != b {
			flush()
		}
	}
	flush()
	return out
}

// clipSegment clips one segment to a rectangle (Liang-Barsky).
func clipSegment(a, b [2]float64, e Extent) (ca, cb [2]float64, ok bool) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a[0] - e.X0},
		{dx, e.X1 - a[0]},
		{-dy, a[1] - e.Y0},
		{dy, e.Y1 - a[1]},
	}
	for _, ed := range edges {
		p, q := ed[0], ed[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	ca = [2]float64{a[0] + t0*dx, a[1] + t0*dy}
	cb = [2]float64{a[0] + t1*dx, a[1] + t1*dy}
	return ca, cb, true
}
