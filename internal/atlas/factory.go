package atlas

import (
	"fmt"
	"log/slog"
	"math"

	"goatlas/internal/proj"
	"goatlas/internal/world"
)

// DefaultPadding insets the fit extent from the canvas edge on all sides.
const DefaultPadding = 32.0

// fixedMeridian is the longitude the fixed-meridian center preset rotates
// to the middle of the map, latitude 0.
const fixedMeridian = 150.0

// Configured is the ephemeral product of a Build: a ready projection plus
// the padded extent it was fitted and clipped to. It is rebuilt from scratch
// on every projection, view or size change and never mutated in place.
type Configured struct {
	Desc   Descriptor
	Proj   *proj.Projection
	Extent proj.Extent
	W, H   float64
}

// Factory builds configured projections against one boundary set and one
// designated home country.
type Factory struct {
	World   *world.Boundaries
	Home    string
	Padding float64
}

// Build constructs the projection for desc fitted to a w by h canvas under
// view. For catalog descriptors it never fails: fit degeneracy falls back to
// a manual scale and translate centered on the canvas.
func (f *Factory) Build(desc Descriptor, w, h float64, view ViewState) (*Configured, error) {
	if desc.New == nil {
		return nil, fmt.Errorf("%w: empty descriptor %q", ErrUnknownProjection, desc.ID)
	}

	p := proj.New(desc.New())
	lon, lat := f.center(view)
	p.SetRotation(-lon, -lat, desc.Gamma)

	pad := f.pad()
	ext := proj.Extent{X0: pad, Y0: pad, X1: w - pad, Y1: h - pad}

	// The close-up fits the home country's own rings; the world view fits
	// the sphere outline.
	var rings [][][2]float64
	if view.Mode == ViewHome {
		rings = f.homeRings()
	}

	if err := p.FitExtent(ext, rings); err != nil {
		slog.Debug("extent fit fell back to manual scale", "projection", desc.ID, "err", err)
		p.SetScale(math.Max(1, math.Min(w, h)/2-pad))
		p.SetTranslate(w/2, h/2)
	} else if desc.ScaleHint > 0 && desc.ScaleHint != 1 {
		p.ZoomAbout(desc.ScaleHint, ext.X0+ext.Width()/2, ext.Y0+ext.Height()/2)
	}

	// The rectangular clip pins every emitted path inside the padded extent
	// no matter what the hint or fallback did to the scale.
	p.SetClipExtent(ext)

	return &Configured{Desc: desc, Proj: p, Extent: ext, W: w, H: h}, nil
}

func (f *Factory) pad() float64 {
	if f.Padding > 0 {
		return f.Padding
	}
	return DefaultPadding
}

// center resolves the view's center mode to a lon/lat point.
func (f *Factory) center(view ViewState) (lon, lat float64) {
	switch view.Center {
	case CenterHome:
		if f.World != nil {
			if c, ok := f.World.Find(f.Home); ok {
				return c.Centroid[0], c.Centroid[1]
			}
		}
		slog.Debug("home country not loaded, centering on origin", "home", f.Home)
		return 0, 0
	case CenterMeridian:
		return fixedMeridian, 0
	default:
		return 0, 0
	}
}

func (f *Factory) homeRings() [][][2]float64 {
	if f.World == nil {
		return nil
	}
	c, ok := f.World.Find(f.Home)
	if !ok {
		return nil
	}
	var rings [][][2]float64
	for _, poly := range c.Polygons {
		rings = append(rings, poly...)
	}
	return rings
}
