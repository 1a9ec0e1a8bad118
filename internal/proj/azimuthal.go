package proj

import "math"

// Azimuthal raws. All project around the rotated center at (0, 0), so the
// planar radius depends only on the angular distance c from the center, with
// cos(c) = cos(phi)*cos(lambda). Each declares the cap it can display.

// azimuthal builds a raw from a radial scale factor k(cos c).
func azimuthal(scale func(cosC float64) float64, clipAngle float64) Raw {
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		cosPhi := math.Cos(phi)
		k := scale(cosPhi * math.Cos(lambda))
		return k * cosPhi * math.Sin(lambda), k * math.Sin(phi)
	})
	r.ClipAngle = clipAngle
	return r
}

// AzimuthalEqualArea is Lambert's equal-area azimuthal.
func AzimuthalEqualArea() Raw {
	return azimuthal(func(cosC float64) float64 {
		return math.Sqrt(2 / (1 + cosC))
	}, 180-1e-3)
}

// AzimuthalEquidistant keeps distances from the center true.
func AzimuthalEquidistant() Raw {
	return azimuthal(func(cosC float64) float64 {
		c := math.Acos(math.Min(1, math.Max(-1, cosC)))
		if c < epsilon {
			return 1
		}
		return c / math.Sin(c)
	}, 180-1e-3)
}

// Orthographic is the view from infinity, one hemisphere.
func Orthographic() Raw {
	return azimuthal(func(cosC float64) float64 { return 1 }, 90)
}

// Stereographic is the conformal azimuthal, cut at the conventional 142
// degrees.
func Stereographic() Raw {
	return azimuthal(func(cosC float64) float64 {
		return 2 / (1 + cosC)
	}, 142)
}

// Gnomonic maps great circles to straight lines; usable well short of the
// 90 degree blowup.
func Gnomonic() Raw {
	return azimuthal(func(cosC float64) float64 {
		return 1 / cosC
	}, 60)
}

// Airy is the minimum-error azimuthal for a cap of beta degrees.
func Airy(beta float64) Raw {
	b := beta * deg2rad
	tanB2 := math.Tan(b / 2)
	bias := 2 * math.Log(math.Cos(b/2)) / (tanB2 * tanB2)
	return azimuthal(func(cosC float64) float64 {
		if 1-cosC < 1e-12 {
			return -(-0.5 + bias/2)
		}
		return -(math.Log((1+cosC)/2)/(1-cosC) + bias/(1+cosC))
	}, beta)
}

// Wiechel is the equal-area pinwheel, meridians drawn as semicircles.
func Wiechel() Raw {
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		cosPhi := math.Cos(phi)
		sinPhi := math.Sin(phi)
		cosLambda := math.Cos(lambda)
		return math.Sin(lambda)*cosPhi - cosLambda*(1-sinPhi),
			-cosLambda*cosPhi - math.Sin(lambda)*(1-sinPhi)
	})
	r.ClipAngle = 90
	return r
}

// VerticalPerspective is the view from a satellite p sphere radii from the
// sphere center; the horizon sits where the sight line grazes the sphere.
func VerticalPerspective(p float64) Raw {
	return azimuthal(func(cosC float64) float64 {
		return (p - 1) / (p - cosC)
	}, math.Acos(1/p)*rad2deg)
}

// Littrow is the retroazimuthal conformal; only the central region is usable.
func Littrow() Raw {
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		return math.Sin(lambda) / math.Cos(phi), math.Tan(phi) * math.Cos(lambda)
	})
	r.ClipAngle = 60
	return r
}
