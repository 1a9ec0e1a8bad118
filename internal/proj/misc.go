package proj

import "math"

// Lenticular, globular, and retroazimuthal raws.

// Aitoff stretches the equatorial azimuthal equidistant to a 2:1 world.
func Aitoff() Raw {
	return newRaw(aitoffForward)
}

func aitoffForward(lambda, phi float64) (float64, float64) {
	l := lambda / 2
	cosPhi := math.Cos(phi)
	c := math.Acos(math.Min(1, math.Max(-1, cosPhi*math.Cos(l))))
	k := 1.0
	if c > epsilon {
		k = c / math.Sin(c)
	}
	return 2 * cosPhi * math.Sin(l) * k, math.Sin(phi) * k
}

// Hammer is the equal-area counterpart of Aitoff, generalized: the azimuthal
// equal-area is evaluated at lambda/b and widened by a. Hammer(2, 2) is the
// classic; Hammer(4, 4) is Eckert-Greifendorff.
func Hammer(a, b float64) Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		l := lambda / b
		cosPhi := math.Cos(phi)
		k := math.Sqrt(2 / (1 + cosPhi*math.Cos(l)))
		return a * k * cosPhi * math.Sin(l), k * math.Sin(phi)
	})
}

// Winkel3 is the Winkel tripel: the mean of Aitoff and an equirectangular
// with standard parallel acos(2/pi).
func Winkel3() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		x, y := aitoffForward(lambda, phi)
		return (x + lambda*2/math.Pi) / 2, (y + phi) / 2
	})
}

// Wagner7 is Wagner's equal-area lenticular world.
func Wagner7() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		s := 0.90631 * math.Sin(phi)
		c0 := math.Sqrt(1 - s*s)
		l := lambda / 3
		c1 := math.Sqrt(2 / (1 + c0*math.Cos(l)))
		return 2.66723 * c0 * c1 * math.Sin(l), 1.24104 * s * c1
	})
}

// VanDerGrinten maps the world into a circle with circular meridians and
// parallels.
func VanDerGrinten() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		if math.Abs(phi) < epsilon {
			return lambda, 0
		}
		sinTheta := math.Min(1, math.Abs(phi*2/math.Pi))
		theta := math.Asin(sinTheta)
		if math.Abs(lambda) < epsilon || math.Abs(math.Abs(phi)-math.Pi/2) < epsilon {
			y := math.Pi * math.Tan(theta/2)
			if phi < 0 {
				y = -y
			}
			return 0, y
		}
		cosTheta := math.Cos(theta)
		a := math.Abs(math.Pi/lambda-lambda/math.Pi) / 2
		a2 := a * a
		g := cosTheta / (sinTheta + cosTheta - 1)
		p := g * (2/sinTheta - 1)
		p2 := p * p
		p2a2 := p2 + a2
		gp2 := g - p2
		q := a2 + g
		x := math.Pi * (a*gp2 + math.Sqrt(math.Max(0, a2*gp2*gp2-p2a2*(g*g-p2)))) / p2a2
		y := math.Pi * (p*q - a*math.Sqrt(math.Max(0, (a2+1)*p2a2-q*q))) / p2a2
		if lambda < 0 {
			x = -x
		}
		if phi < 0 {
			y = -y
		}
		return x, y
	})
}

// Lagrange is the conformal world-in-a-circle; n is the longitude
// compression, 0.5 for the classic circle.
func Lagrange(n float64) Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		if math.Abs(math.Abs(phi)-math.Pi/2) < epsilon {
			if phi < 0 {
				return 0, -2
			}
			return 0, 2
		}
		sinPhi := math.Sin(phi)
		v := math.Pow((1+sinPhi)/(1-sinPhi), n/2)
		nl := n * lambda
		c := 0.5*(v+1/v) + math.Cos(nl)
		return 2 * math.Sin(nl) / c, (v - 1/v) / c
	})
}

// August is the conformal world in a two-cusped epicycloid.
func August() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		tanPhi := math.Tan(phi / 2)
		k := math.Sqrt(1 - tanPhi*tanPhi)
		l := lambda / 2
		c := 1 + k*math.Cos(l)
		x := math.Sin(l) * k / c
		y := tanPhi / c
		x2 := x * x
		y2 := y * y
		return 4 / 3 * x * (3 + x2 - 3*y2), 4 / 3 * y * (3 + 3*x2 - y2)
	})
}

// Eisenlohr is the conformal world with constant boundary scale.
func Eisenlohr() Raw {
	const k = 3 + 2*math.Sqrt2
	return newRaw(func(lambda, phi float64) (float64, float64) {
		s0 := math.Sin(lambda / 2)
		c0 := math.Cos(lambda / 2)
		w := math.Sqrt(math.Cos(phi))
		c1 := math.Cos(phi / 2)
		t := math.Sin(phi/2) / (c1 + math.Sqrt2*c0*w)
		c := math.Sqrt(2 / (1 + t*t))
		v := math.Sqrt((math.Sqrt2*c1 + (c0+s0)*w) / (math.Sqrt2*c1 + (c0-s0)*w))
		return k * (c*(v-1/v) - 2*math.Log(v)), k * (c*t*(v+1/v) - 2*math.Atan(t))
	})
}

// Larrivee is the Larrivee compromise world.
func Larrivee() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * (1 + math.Sqrt(math.Cos(phi))) / 2,
			phi / (math.Cos(phi/2) * math.Cos(lambda/6))
	})
}

// Laskowski is the tri-optimal polynomial world.
func Laskowski() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		lambda2 := lambda * lambda
		phi2 := phi * phi
		return lambda * (0.975534 + phi2*(-0.119161+lambda2*-0.0143059+phi2*-0.0547009)),
			phi * (1.00384 + lambda2*(0.0802894+phi2*-0.02855+lambda2*0.000199025) +
				phi2*(0.0998909+phi2*-0.0491032))
	})
}

// Nicolosi is the globular hemisphere with circular meridians and parallels.
func Nicolosi() Raw {
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		sx := sign(lambda)
		sy := sign(phi)
		la := math.Abs(lambda)
		ph := math.Abs(phi)
		switch {
		case la < epsilon || math.Abs(ph-math.Pi/2) < epsilon:
			return 0, phi
		case ph < epsilon:
			return lambda, 0
		case math.Abs(la-math.Pi/2) < epsilon:
			return lambda * math.Cos(phi), sy * math.Pi / 2 * math.Sin(ph)
		}
		sinPhi := math.Sin(ph)
		q := math.Cos(ph)
		b := math.Pi/(2*la) - 2*la/math.Pi
		c := 2 * ph / math.Pi
		d := (1 - c*c) / (sinPhi - c)
		b2 := b * b
		d2 := d * d
		b2d2 := 1 + b2/d2
		d2b2 := 1 + d2/b2
		m := (b*sinPhi/d - b/2) / b2d2
		n := (d2*sinPhi/b2 + d/2) / d2b2
		x := m + math.Sqrt(math.Max(0, m*m+q*q/b2d2))
		y := n - math.Sqrt(math.Max(0, n*n-(d2*sinPhi*sinPhi/b2+d*sinPhi-1)/d2b2))
		return sx * math.Pi / 2 * x, sy * math.Pi / 2 * y
	})
	r.ClipAngle = 90
	return r
}

// Armadillo is Raisz's orthoapsidal world on a half torus; phi0 tilts the
// ring, degrees. The far side of the torus is hidden by the Visible horizon.
func Armadillo(phi0 float64) Raw {
	p0 := phi0 * deg2rad
	sinPhi0 := math.Sin(p0)
	cosPhi0 := math.Cos(p0)
	tanPhi0 := math.Tan(p0)
	k := (1 + sinPhi0 - cosPhi0) / 2
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		cosPhi := math.Cos(phi)
		l := lambda / 2
		return (1 + cosPhi) * math.Sin(l),
			k + math.Sin(phi)*cosPhi0 - (1+cosPhi)*sinPhi0*math.Cos(l)
	})
	r.Visible = func(lambda, phi float64) bool {
		return phi >= -math.Atan2(math.Cos(lambda/2), tanPhi0)
	}
	return r
}

// Craig is the retroazimuthal projection: from anywhere, the bearing to the
// latitude phi0 point on the central meridian reads true. Craig(21.45) aims
// at Mecca. The lambda/sin(lambda) factor blows up toward the antimeridian,
// so only the central hemisphere is shown.
func Craig(phi0 float64) Raw {
	tanPhi0 := math.Tan(phi0 * deg2rad)
	r := newRaw(func(lambda, phi float64) (float64, float64) {
		k := 1.0
		if math.Abs(lambda) > epsilon {
			k = lambda / math.Sin(lambda)
		}
		return lambda, k * (math.Sin(phi)*math.Cos(lambda) - tanPhi0*math.Cos(phi))
	})
	r.ClipAngle = 90
	return r
}
