// Package world loads country boundary polygons from a GeoJSON
// FeatureCollection and answers name lookups against them.
package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrNoCountries reports a feature collection with nothing usable in it.
var ErrNoCountries = errors.New("world: no usable countries in feature collection")

// nameKeys are tried in order when resolving a feature's display name.
// Natural Earth exports vary between lowercase and uppercase property sets.
var nameKeys = []string{"name", "NAME", "ADMIN", "NAME_LONG", "SOVEREIGNT"}

// Bounds is a lon/lat bounding box in degrees.
type Bounds struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// Country is one named boundary feature. Ring points are lon/lat degrees
// with the GeoJSON closing duplicate removed; the first ring of each polygon
// is the exterior.
type Country struct {
	Name     string
	Polygons [][][][2]float64
	Centroid [2]float64 // lon, lat
	Bounds   Bounds
}

// Boundaries is the parsed collection, immutable after loading. Countries
// keep their file order.
type Boundaries struct {
	countries []Country
	index     map[string]int
}

// Load reads a GeoJSON FeatureCollection from path.
func Load(path string) (*Boundaries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a GeoJSON FeatureCollection. Features without a resolvable
// name or without polygon geometry are skipped with a warning, never
// an error; an empty result is one.
func Parse(r io.Reader) (*Boundaries, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("world: read: %w", err)
	}
	fc := &geojson.FeatureCollection{}
	if err := json.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("world: parse geojson: %w", err)
	}

	b := &Boundaries{index: make(map[string]int)}
	for i, f := range fc.Features {
		if f == nil {
			slog.Warn("skipping empty feature", "index", i)
			continue
		}
		name := featureName(f)
		if name == "" {
			slog.Warn("skipping feature without a name", "index", i)
			continue
		}
		polys := featurePolygons(f.Geometry)
		if len(polys) == 0 {
			slog.Warn("skipping feature without polygon geometry", "name", name)
			continue
		}
		c := Country{Name: name, Polygons: polys}
		c.Centroid, c.Bounds = summarize(polys)
		if _, dup := b.index[strings.ToLower(name)]; !dup {
			b.index[strings.ToLower(name)] = len(b.countries)
		}
		b.countries = append(b.countries, c)
	}
	if len(b.countries) == 0 {
		return nil, ErrNoCountries
	}
	return b, nil
}

// Countries returns every loaded country in file order.
func (b *Boundaries) Countries() []Country { return b.countries }

// Find looks a country up by name, case-insensitively.
func (b *Boundaries) Find(name string) (Country, bool) {
	i, ok := b.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Country{}, false
	}
	return b.countries[i], true
}

func featureName(f *geojson.Feature) string {
	for _, key := range nameKeys {
		if v, ok := f.Properties[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func featurePolygons(g orb.Geometry) [][][][2]float64 {
	var mp orb.MultiPolygon
	switch geom := g.(type) {
	case orb.Polygon:
		mp = orb.MultiPolygon{geom}
	case orb.MultiPolygon:
		mp = geom
	default:
		return nil
	}
	var out [][][][2]float64
	for _, poly := range mp {
		var rings [][][2]float64
		for _, ring := range poly {
			pts := ringPoints(ring)
			if len(pts) < 3 {
				continue
			}
			rings = append(rings, pts)
		}
		if len(rings) > 0 {
			out = append(out, rings)
		}
	}
	return out
}

func ringPoints(ring orb.Ring) [][2]float64 {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	pts := make([][2]float64, 0, n)
	for _, p := range ring[:n] {
		pts = append(pts, [2]float64{p.Lon(), p.Lat()})
	}
	return pts
}

// summarize computes the spherical vertex centroid over exterior rings plus
// the lon/lat bounds. Averaging unit vectors keeps countries that straddle
// the antimeridian centered on their territory instead of the opposite
// hemisphere.
func summarize(polys [][][][2]float64) ([2]float64, Bounds) {
	bounds := Bounds{
		MinLon: math.Inf(1), MinLat: math.Inf(1),
		MaxLon: math.Inf(-1), MaxLat: math.Inf(-1),
	}
	var sum r3.Vector
	for _, poly := range polys {
		for _, pt := range poly[0] {
			sum = sum.Add(s2.PointFromLatLng(s2.LatLngFromDegrees(pt[1], pt[0])).Vector)
			bounds.MinLon = math.Min(bounds.MinLon, pt[0])
			bounds.MaxLon = math.Max(bounds.MaxLon, pt[0])
			bounds.MinLat = math.Min(bounds.MinLat, pt[1])
			bounds.MaxLat = math.Max(bounds.MaxLat, pt[1])
		}
	}
	if sum.Norm() == 0 {
		mid := [2]float64{(bounds.MinLon + bounds.MaxLon) / 2, (bounds.MinLat + bounds.MaxLat) / 2}
		return mid, bounds
	}
	ll := s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
	return [2]float64{ll.Lng.Degrees(), ll.Lat.Degrees()}, bounds
}
