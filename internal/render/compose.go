package render

import (
	"goatlas/internal/atlas"
	"goatlas/internal/proj"
	"goatlas/internal/world"
)

// Layer names, bottom to top.
const (
	LayerPage      = "page"
	LayerWater     = "water"
	LayerGraticule = "graticule"
	LayerLand      = "land"
	LayerHome      = "home"
	LayerReference = "reference"
	LayerOutline   = "outline"
)

// Compose builds the display list for one configured projection: water under
// graticule under land, the home country in the accent fill, dashed reference
// lines, and the sphere outline on top. In the home-country view every other
// country is dropped. Compose only reads its inputs, so identical inputs
// yield identical frames.
func Compose(cfg *atlas.Configured, w *world.Boundaries, view atlas.ViewState, opts Options) *Frame {
	th := opts.theme()
	f := &Frame{W: cfg.W, H: cfg.H}

	if th.Page.A > 0 {
		f.add(Layer{Name: LayerPage, Fill: th.Page, Paths: []proj.Path{pageRect(cfg.W, cfg.H)}})
	}

	outline := cfg.Proj.SphereOutline()
	f.add(Layer{Name: LayerWater, Fill: th.Water, Paths: outline})

	home, hasHome := lookupHome(w, opts.Home)

	if view.Graticule {
		var paths []proj.Path
		for _, line := range proj.Graticule(opts.step()) {
			paths = append(paths, cfg.Proj.ProjectLine(line)...)
		}
		f.add(Layer{Name: LayerGraticule, Stroke: th.Graticule, Width: 0.6, Paths: paths})
	}

	var land, accent []proj.Path
	if w != nil {
		for _, c := range w.Countries() {
			isHome := hasHome && c.Name == home.Name
			if view.Mode == atlas.ViewHome && !isHome {
				continue
			}
			paths := countryPaths(cfg.Proj, c)
			if isHome {
				accent = append(accent, paths...)
			} else {
				land = append(land, paths...)
			}
		}
	}
	f.add(Layer{Name: LayerLand, Fill: th.Land, Stroke: th.Border, Width: 0.8, Paths: land})
	f.add(Layer{Name: LayerHome, Fill: th.Home, Stroke: th.Border, Width: 0.8, Paths: accent})

	if view.Graticule {
		var paths []proj.Path
		for _, line := range referenceLines(home, hasHome) {
			paths = append(paths, cfg.Proj.ProjectLine(line)...)
		}
		f.add(Layer{Name: LayerReference, Stroke: th.Reference, Width: 0.8, Dash: []float64{4, 3}, Paths: paths})
	}

	f.add(Layer{Name: LayerOutline, Stroke: th.Outline, Width: 1.5, Paths: outline})
	return f
}

func (f *Frame) add(l Layer) {
	if len(l.Paths) == 0 {
		return
	}
	f.Layers = append(f.Layers, l)
}

func countryPaths(p *proj.Projection, c world.Country) []proj.Path {
	var out []proj.Path
	for _, poly := range c.Polygons {
		for _, ring := range poly {
			out = append(out, p.ProjectRing(ring)...)
		}
	}
	return out
}

// referenceLines returns the equator and prime meridian, plus the meridian
// and parallel through the home centroid when one is set.
func referenceLines(home world.Country, hasHome bool) [][][2]float64 {
	lines := [][][2]float64{proj.Parallel(0), proj.Meridian(0, -90, 90)}
	if hasHome {
		lines = append(lines,
			proj.Meridian(home.Centroid[0], -90, 90),
			proj.Parallel(home.Centroid[1]))
	}
	return lines
}

func lookupHome(w *world.Boundaries, name string) (world.Country, bool) {
	if w == nil || name == "" {
		return world.Country{}, false
	}
	return w.Find(name)
}

func pageRect(w, h float64) proj.Path {
	return proj.Path{
		Pts:    [][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}},
		Closed: true,
	}
}
