package proj

import "math"

// Conic raws. Parallels become circle arcs around the cone apex; the two
// standard parallels are given in degrees.

// ConicEqualArea is Albers' equal-area conic.
func ConicEqualArea(phi1, phi2 float64) Raw {
	y0 := phi1 * deg2rad
	y1 := phi2 * deg2rad
	sy0 := math.Sin(y0)
	n := (sy0 + math.Sin(y1)) / 2
	if math.Abs(n) < epsilon {
		return CylindricalEqualArea(phi1)
	}
	c := 1 + sy0*(2*n-sy0)
	r0 := math.Sqrt(c) / n
	return newRaw(func(lambda, phi float64) (float64, float64) {
		r := math.Sqrt(c-2*n*math.Sin(phi)) / n
		nl := n * lambda
		return r * math.Sin(nl), r0 - r*math.Cos(nl)
	})
}

// ConicConformal is the Lambert conformal conic. The pole opposite the cone
// blows up, so the outline stops at 65 degrees into the far hemisphere.
func ConicConformal(phi1, phi2 float64) Raw {
	y0 := phi1 * deg2rad
	y1 := phi2 * deg2rad
	cy0 := math.Cos(y0)
	n := math.Sin(y0)
	if y0 != y1 {
		n = math.Log(cy0/math.Cos(y1)) / math.Log(tany(y1)/tany(y0))
	}
	f := cy0 * math.Pow(tany(y0), n) / n
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		if f > 0 {
			if phi < -math.Pi/2+epsilon {
				phi = -math.Pi/2 + epsilon
			}
		} else if phi > math.Pi/2-epsilon {
			phi = math.Pi/2 - epsilon
		}
		rho := f / math.Pow(tany(phi), n)
		nl := n * lambda
		return rho * math.Sin(nl), f - rho*math.Cos(nl)
	})
	if n > 0 {
		r.LatMin = -65
	} else {
		r.LatMax = 65
	}
	return r
}

func tany(y float64) float64 {
	return math.Tan((math.Pi/2 + y) / 2)
}

// ConicEquidistant keeps meridians true to scale.
func ConicEquidistant(phi1, phi2 float64) Raw {
	y0 := phi1 * deg2rad
	y1 := phi2 * deg2rad
	cy0 := math.Cos(y0)
	n := math.Sin(y0)
	if y0 != y1 {
		n = (cy0 - math.Cos(y1)) / (y1 - y0)
	}
	if math.Abs(n) < epsilon {
		return Equirectangular()
	}
	g := cy0/n + y0
	return newRaw(func(lambda, phi float64) (float64, float64) {
		gy := g - phi
		nl := n * lambda
		return gy * math.Sin(nl), g - gy*math.Cos(nl)
	})
}

// Bonne is the pseudoconic with true-scale parallels; phi0 is the standard
// parallel in degrees. Bonne(90) is Werner's cordiform, Bonne(0) degenerates
// to the sinusoidal.
func Bonne(phi0 float64) Raw {
	p0 := phi0 * deg2rad
	if math.Abs(p0) < epsilon {
		return Sinusoidal()
	}
	cotPhi0 := 1 / math.Tan(p0)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		rho := cotPhi0 + p0 - phi
		e := 0.0
		if rho != 0 {
			e = lambda * math.Cos(phi) / rho
		}
		return rho * math.Sin(e), cotPhi0 - rho*math.Cos(e)
	})
}

// Polyconic is the American polyconic: every parallel is a true-scale circle
// arc centered on the axis.
func Polyconic() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		if math.Abs(phi) < epsilon {
			return lambda, 0
		}
		tanPhi := math.Tan(phi)
		k := lambda * math.Sin(phi)
		return math.Sin(k) / tanPhi, phi + (1-math.Cos(k))/tanPhi
	})
}

// RectangularPolyconic crosses parallels and meridians at right angles; phi0
// is the latitude of true meridian scale, degrees.
func RectangularPolyconic(phi0 float64) Raw {
	sinPhi0 := math.Sin(phi0 * deg2rad)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		a := lambda / 2
		if math.Abs(sinPhi0) > epsilon {
			a = math.Tan(lambda*sinPhi0/2) / sinPhi0
		}
		if math.Abs(phi) < epsilon {
			return 2 * a, -phi0 * deg2rad
		}
		e := 2 * math.Atan(a*math.Sin(phi))
		cotPhi := 1 / math.Tan(phi)
		return math.Sin(e) * cotPhi, phi + (1-math.Cos(e))*cotPhi
	})
}
