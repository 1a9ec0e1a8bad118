package proj

import "math"

// Cylindrical raws. Meridians map to vertical lines, parallels to
// horizontals; only the vertical spacing differs.

// Equirectangular is the identity on radians (plate carree).
func Equirectangular() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda, phi
	})
}

// Mercator is the conformal cylindrical. Latitude is bounded where the
// familiar web-map square ends.
func Mercator() Raw {
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda, math.Log(math.Tan(math.Pi/4 + phi/2))
	})
	r.LatMin, r.LatMax = -85.05113, 85.05113
	return r
}

// TransverseMercator is the Mercator raw with the axes swapped; the
// projection is used with a 90 degree roll so the central meridian runs
// vertically.
func TransverseMercator() Raw {
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		return math.Log(math.Tan(math.Pi/4 + phi/2)), -lambda
	})
	r.LatMin, r.LatMax = -85.05113, 85.05113
	return r
}

// Miller compresses Mercator's polar stretch by four fifths.
func Miller() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda, 1.25 * math.Log(math.Tan(math.Pi/4+0.4*phi))
	})
}

// CylindricalEqualArea is Lambert's equal-area cylindrical with standard
// parallels at +-phi0 degrees. Named variants (Behrmann, Gall-Peters,
// Hobo-Dyer, Balthasart, Tobler's square) differ only in phi0.
func CylindricalEqualArea(phi0 float64) Raw {
	cosPhi0 := math.Cos(phi0 * deg2rad)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * cosPhi0, math.Sin(phi) / cosPhi0
	})
}

// GallStereographic projects from the antipode onto a secant cylinder at 45
// degrees.
func GallStereographic() Raw {
	cos45 := math.Cos(math.Pi / 4)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * cos45, (1 + cos45) * math.Tan(phi/2)
	})
}

// CentralCylindrical projects from the sphere center; it grows so fast toward
// the poles that the outline is cut at +-80 degrees.
func CentralCylindrical() Raw {
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda, math.Tan(phi)
	})
	r.LatMin, r.LatMax = -80, 80
	return r
}

// Cassini is the transverse equirectangular.
func Cassini() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return math.Asin(math.Cos(phi) * math.Sin(lambda)),
			math.Atan2(math.Sin(phi), math.Cos(phi)*math.Cos(lambda))
	})
}
