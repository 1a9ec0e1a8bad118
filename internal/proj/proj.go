package proj

import (
	"errors"
	"math"
)

// ErrCannotFit reports that extent fitting degenerated (empty or non-finite
// projected bounds). Callers fall back to a manual scale/translate.
var ErrCannotFit = errors.New("proj: cannot fit extent")

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi

	// epsilon pads comparisons against the antimeridian and the poles.
	epsilon = 1e-6
)

// Raw is a bare forward projection on the unit sphere. Forward takes
// longitude and latitude in radians (already rotated) and returns planar
// coordinates in sphere units with y growing north.
type Raw struct {
	Forward func(lambda, phi float64) (x, y float64)

	// ClipAngle, in degrees, limits drawing to a spherical cap of that
	// angular radius around the projection center. Zero means antimeridian
	// clipping (whole world).
	ClipAngle float64

	// LatMin and LatMax bound the latitudes used for the sphere outline and
	// for fitting. Raws that blow up toward a pole (Mercator, conformal
	// conics) narrow these.
	LatMin, LatMax float64

	// Visible marks points hidden by the projection's own horizon when that
	// horizon is not a plain spherical cap (Raisz armadillo). Optional.
	Visible func(lambda, phi float64) bool

	// North and South carry interruption lobes for interrupted raws.
	North, South []Lobe
}

// Lobe is one interruption lobe, bounded by two cut meridians with a straight
// central meridian between them. Degrees.
type Lobe struct {
	Min, Center, Max float64
}

func (r Raw) interrupted() bool { return len(r.North) > 0 }

// newRaw wraps a forward formula with whole-sphere defaults.
func newRaw(f func(lambda, phi float64) (x, y float64)) Raw {
	return Raw{Forward: f, LatMin: -90, LatMax: 90}
}

// Extent is a device-space rectangle, x growing right and y growing down.
type Extent struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal span.
func (e Extent) Width() float64 { return e.X1 - e.X0 }

// Height returns the vertical span.
func (e Extent) Height() float64 { return e.Y1 - e.Y0 }

func (e Extent) contains(x, y float64) bool {
	return x >= e.X0 && x <= e.X1 && y >= e.Y0 && y <= e.Y1
}

// Path is a projected subpath in device coordinates. Closed paths came from
// rings and may be filled; open paths are stroke-only.
type Path struct {
	Pts    [][2]float64
	Closed bool
}

// Projection turns longitude/latitude geometry into device-space paths:
// rotate, clip on the sphere, apply the raw formula, then scale and translate
// with y flipped to grow down.
type Projection struct {
	raw    Raw
	angles [3]float64
	rot    rotation
	k      float64
	tx, ty float64
	clip   *Extent

	// step is the densification threshold in radians; segments longer than
	// this are subdivided along their great circle before projecting.
	step float64
}

// New returns a projection over raw with unit scale, zero translation, and
// no rectangular clip.
func New(raw Raw) *Projection {
	if raw.LatMax == 0 && raw.LatMin == 0 {
		raw.LatMin, raw.LatMax = -90, 90
	}
	return &Projection{
		raw:  raw,
		rot:  newRotation(0, 0, 0),
		k:    1,
		step: 2 * deg2rad,
	}
}

// SetRotation sets the rotation angles in degrees: spin about the poles,
// then pitch, then roll.
func (p *Projection) SetRotation(lambda, phi, gamma float64) {
	p.angles = [3]float64{lambda, phi, gamma}
	p.rot = newRotation(lambda*deg2rad, phi*deg2rad, gamma*deg2rad)
}

// Rotation returns the rotation angles in degrees.
func (p *Projection) Rotation() [3]float64 { return p.angles }

// SetScale sets the scale factor applied to raw coordinates.
func (p *Projection) SetScale(k float64) { p.k = k }

// Scale returns the current scale factor.
func (p *Projection) Scale() float64 { return p.k }

// SetTranslate sets the device-space offset.
func (p *Projection) SetTranslate(x, y float64) { p.tx, p.ty = x, y }

// Translate returns the device-space offset.
func (p *Projection) Translate() (x, y float64) { return p.tx, p.ty }

// SetClipExtent clips projected paths to a device-space rectangle.
func (p *Projection) SetClipExtent(e Extent) { p.clip = &e }

// ClipExtent returns the rectangular clip, if one is set.
func (p *Projection) ClipExtent() (Extent, bool) {
	if p.clip == nil {
		return Extent{}, false
	}
	return *p.clip, true
}

// ClearClipExtent removes the rectangular clip.
func (p *Projection) ClearClipExtent() { p.clip = nil }

// Project maps one geographic point to device coordinates. ok is false when
// the point is hidden by the projection's horizon; the rectangular clip does
// not affect it.
func (p *Projection) Project(lon, lat float64) (x, y float64, ok bool) {
	s := p.rot.apply(spherical{lon * deg2rad, lat * deg2rad})
	if !p.visible(s) {
		return 0, 0, false
	}
	x, y = p.device(s)
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return x, y, true
}

// visible reports whether a rotated point survives the spherical clip.
func (p *Projection) visible(s spherical) bool {
	if p.raw.ClipAngle > 0 && cosAngleFromCenter(s) < math.Cos(p.raw.ClipAngle*deg2rad)-epsilon {
		return false
	}
	if p.raw.Visible != nil && !p.raw.Visible(s.lambda, s.phi) {
		return false
	}
	return true
}

// device applies the raw formula and the planar transform to a rotated point.
func (p *Projection) device(s spherical) (float64, float64) {
	phi := math.Max(p.raw.LatMin*deg2rad, math.Min(p.raw.LatMax*deg2rad, s.phi))
	x, y := p.raw.Forward(s.lambda, phi)
	return p.k*x + p.tx, p.ty - p.k*y
}

// ProjectLine projects an open polyline given in lon/lat degrees. The result
// may be split into several paths by the spherical and rectangular clips.
func (p *Projection) ProjectLine(line [][2]float64) []Path {
	if len(line) < 2 {
		return nil
	}
	chains := p.clipSpherical(p.rotated(line), false)
	var out []Path
	for _, c := range chains {
		out = append(out, p.emit(c, false)...)
	}
	return out
}

// ProjectRing projects a closed ring given in lon/lat degrees, keeping the
// result fillable: cut rings are closed along the cut they were opened on.
func (p *Projection) ProjectRing(ring [][2]float64) []Path {
	if len(ring) < 3 {
		return nil
	}
	chains := p.clipSpherical(p.rotated(ring), true)
	var out []Path
	for _, c := range chains {
		out = append(out, p.emit(c, true)...)
	}
	return out
}

// SphereOutline returns the image of the whole globe's boundary: the horizon
// circle for capped projections, the cut-meridian band otherwise, one ring
// per lobe for interrupted raws. Paths honor the rectangular clip.
func (p *Projection) SphereOutline() []Path {
	var out []Path
	for _, ring := range p.outlineRings() {
		out = append(out, p.emit(ring, true)...)
	}
	return out
}

// rotated converts lon/lat degrees into rotated spherical coordinates,
// densifying long segments so curves stay smooth after projecting.
func (p *Projection) rotated(pts [][2]float64) []spherical {
	out := make([]spherical, 0, len(pts))
	var prev spherical
	for i, pt := range pts {
		s := p.rot.apply(spherical{pt[0] * deg2rad, pt[1] * deg2rad})
		if i > 0 {
			out = append(out, densify(prev, s, p.step)...)
		}
		out = append(out, s)
		prev = s
	}
	return out
}

// clipSpherical routes a rotated chain through the clip matching the raw:
// horizon cap, interruption lobes, or the antimeridian. Raws with an
// irregular horizon get a second pass against their predicate.
func (p *Projection) clipSpherical(pts []spherical, ring bool) [][]spherical {
	var chains [][]spherical
	switch {
	case p.raw.ClipAngle > 0:
		chains = clipCap(pts, p.raw.ClipAngle*deg2rad, ring)
	case p.raw.interrupted():
		chains = clipLobes(pts, p.raw.North, p.raw.South, ring)
	default:
		chains = clipAntimeridian(pts, ring)
	}
	if p.raw.Visible == nil {
		return chains
	}
	var out [][]spherical
	for _, c := range chains {
		out = append(out, clipVisible(c, p.raw.Visible, ring)...)
	}
	return out
}

// emit projects one rotated chain into device space and applies the
// rectangular clip. Non-finite points (formula edges) are dropped.
func (p *Projection) emit(chain []spherical, closed bool) []Path {
	pts := make([][2]float64, 0, len(chain))
	for _, s := range chain {
		x, y := p.device(s)
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, [2]float64{x, y})
	}
	if closed {
		if len(pts) < 3 {
			return nil
		}
		if p.clip != nil {
			pts = clipRingRect(pts, *p.clip)
			if len(pts) < 3 {
				return nil
			}
		}
		return []Path{{Pts: pts, Closed: true}}
	}
	if len(pts) < 2 {
		return nil
	}
	if p.clip != nil {
		var out []Path
		for _, seg := range clipLineRect(pts, *p.clip) {
			out = append(out, Path{Pts: seg})
		}
		return out
	}
	return []Path{{Pts: pts}}
}

// outlineRings builds the globe boundary in rotated coordinates, where it is
// fixed regardless of rotation.
func (p *Projection) outlineRings() [][]spherical {
	const stepDeg = 1.0
	latMin, latMax := p.raw.LatMin, p.raw.LatMax

	var rings [][]spherical
	switch {
	case p.raw.ClipAngle > 0:
		r := p.raw.ClipAngle * deg2rad
		ring := make([]spherical, 0, 361)
		for a := 0.0; a <= 360; a += stepDeg {
			ring = append(ring, capPoint(r, a*deg2rad))
		}
		rings = [][]spherical{ring}
	case p.raw.interrupted():
		for _, l := range p.raw.North {
			rings = append(rings, lobeRing(l, 0, latMax, stepDeg))
		}
		for _, l := range p.raw.South {
			rings = append(rings, lobeRing(l, latMin, 0, stepDeg))
		}
	default:
		rings = [][]spherical{bandRing(latMin, latMax, stepDeg)}
	}

	if p.raw.Visible == nil {
		return rings
	}
	var out [][]spherical
	for _, ring := range rings {
		out = append(out, clipVisible(ring, p.raw.Visible, true)...)
	}
	return out
}

// bandRing walks the antimeridian cut: up the -180 edge, across the top
// parallel, down the +180 edge, and back along the bottom.
func bandRing(latMin, latMax, step float64) []spherical {
	var ring []spherical
	for lat := latMin; lat < latMax; lat += step {
		ring = append(ring, spherical{-math.Pi + epsilon, lat * deg2rad})
	}
	for lon := -180.0; lon < 180; lon += step {
		ring = append(ring, spherical{lon * deg2rad, latMax * deg2rad})
	}
	for lat := latMax; lat > latMin; lat -= step {
		ring = append(ring, spherical{math.Pi - epsilon, lat * deg2rad})
	}
	for lon := 180.0; lon > -180; lon -= step {
		ring = append(ring, spherical{lon * deg2rad, latMin * deg2rad})
	}
	return ring
}

// lobeRing walks one interruption lobe: up the western cut, across the polar
// edge, down the eastern cut, and back along the equator.
func lobeRing(l Lobe, latMin, latMax, step float64) []spherical {
	var ring []spherical
	for lat := latMin; lat < latMax; lat += step {
		ring = append(ring, spherical{(l.Min + epsilon) * deg2rad, lat * deg2rad})
	}
	for lon := l.Min; lon < l.Max; lon += step {
		ring = append(ring, spherical{lon * deg2rad, latMax * deg2rad})
	}
	for lat := latMax; lat > latMin; lat -= step {
		ring = append(ring, spherical{(l.Max - epsilon) * deg2rad, lat * deg2rad})
	}
	for lon := l.Max; lon > l.Min; lon -= step {
		ring = append(ring, spherical{lon * deg2rad, latMin * deg2rad})
	}
	return ring
}
