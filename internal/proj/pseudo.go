package proj

import "math"

// Pseudocylindrical raws. Parallels stay horizontal but meridians curve, so
// most of these trade straight rhumb lines for equal or near-equal area.

// Sinusoidal is the equal-area projection with true-scale parallels.
func Sinusoidal() Raw {
	return newRaw(sinusoidalForward)
}

func sinusoidalForward(lambda, phi float64) (float64, float64) {
	return lambda * math.Cos(phi), phi
}

// mollweideTheta solves psi + sin(psi) = cp*sin(phi) by Newton iteration and
// returns theta = psi/2. The derivative vanishes at the poles, so the loop
// relies on the iteration cap rather than quadratic convergence there.
func mollweideTheta(cp, phi float64) float64 {
	k := cp * math.Sin(phi)
	psi := phi
	for i := 0; i < 30; i++ {
		delta := (psi + math.Sin(psi) - k) / (1 + math.Cos(psi))
		psi -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return psi / 2
}

func mollweideForward(lambda, phi float64) (float64, float64) {
	theta := mollweideTheta(math.Pi, phi)
	return 2 * math.Sqrt2 / math.Pi * lambda * math.Cos(theta), math.Sqrt2 * math.Sin(theta)
}

// Mollweide is the equal-area ellipse.
func Mollweide() Raw {
	return newRaw(mollweideForward)
}

// Bromley is Mollweide rescaled so the equator is true to scale.
func Bromley() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		theta := mollweideTheta(math.Pi, phi)
		return lambda * math.Cos(theta), 4 / math.Pi * math.Sin(theta)
	})
}

// homolosineLat is the latitude where sinusoidal and Mollweide are fused,
// 40 degrees 44 minutes; homolosineShift closes the y gap between them there.
const (
	homolosineLat   = 0.7109889596207567
	homolosineShift = 0.0528035274542
)

// Homolosine is Goode's fusion: sinusoidal between the fuse latitudes,
// Mollweide beyond them, without interruptions.
func Homolosine() Raw {
	return newRaw(homolosineForward)
}

func homolosineForward(lambda, phi float64) (float64, float64) {
	if math.Abs(phi) > homolosineLat {
		x, y := mollweideForward(lambda, phi)
		if phi > 0 {
			return x, y - homolosineShift
		}
		return x, y + homolosineShift
	}
	return sinusoidalForward(lambda, phi)
}

// SinuMollweide is Philbrick's one-sided fusion: Mollweide north of the fuse
// latitude, sinusoidal south of it.
func SinuMollweide() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		if phi > -homolosineLat {
			x, y := mollweideForward(lambda, phi)
			return x, y + homolosineShift
		}
		return sinusoidalForward(lambda, phi)
	})
}

// Eckert1 maps meridians to straight line pairs broken at the equator.
func Eckert1() Raw {
	alpha := math.Sqrt(8 / (3 * math.Pi))
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return alpha * lambda * (1 - math.Abs(phi)/math.Pi), alpha * phi
	})
}

// Eckert2 is the equal-area companion of Eckert1.
func Eckert2() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		alpha := math.Sqrt(4 - 3*math.Sin(math.Abs(phi)))
		x := 0.46065886596178063 * lambda * alpha
		y := 1.4472025091165353 * (2 - alpha)
		if phi < 0 {
			y = -y
		}
		return x, y
	})
}

// Eckert3 draws elliptic meridians around a flat-polar frame.
func Eckert3() Raw {
	k := math.Sqrt(math.Pi * (4 + math.Pi))
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return 2 / k * lambda * (1 + math.Sqrt(1-4*phi*phi/(math.Pi*math.Pi))), 4 / k * phi
	})
}

// Eckert4 is the equal-area flat-polar projection with elliptic meridians.
func Eckert4() Raw {
	cx := 2 / math.Sqrt(math.Pi*(4+math.Pi))
	cy := 2 * math.Sqrt(math.Pi/(4+math.Pi))
	return newRaw(func(lambda, phi float64) (float64, float64) {
		k := (2 + math.Pi/2) * math.Sin(phi)
		theta := phi / 2
		for i := 0; i < 12; i++ {
			cosTheta := math.Cos(theta)
			delta := (theta + math.Sin(theta)*(cosTheta+2) - k) / (2 * cosTheta * (1 + cosTheta))
			theta -= delta
			if math.Abs(delta) < 1e-12 {
				break
			}
		}
		return cx * lambda * (1 + math.Cos(theta)), cy * math.Sin(theta)
	})
}

// Eckert5 averages the sinusoidal with the plate carree.
func Eckert5() Raw {
	k := math.Sqrt(2 + math.Pi)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * (1 + math.Cos(phi)) / k, 2 * phi / k
	})
}

// Eckert6 is the equal-area flat-polar projection with sinusoidal meridians.
func Eckert6() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		k := (1 + math.Pi/2) * math.Sin(phi)
		theta := phi
		for i := 0; i < 12; i++ {
			delta := (theta + math.Sin(theta) - k) / (1 + math.Cos(theta))
			theta -= delta
			if math.Abs(delta) < 1e-12 {
				break
			}
		}
		k = math.Sqrt(2 + math.Pi)
		return lambda * (1 + math.Cos(theta)) / k, 2 * theta / k
	})
}

// Wagner2 compresses latitudes before a sinusoidal-style spacing.
func Wagner2() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		theta := math.Asin(0.88022 * math.Sin(0.88550*phi))
		return 0.92483 * lambda * math.Cos(theta), 1.38725 * theta
	})
}

// Wagner3 bends meridians by taking two thirds of the latitude.
func Wagner3() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * math.Cos(2*phi/3), phi
	})
}

// Wagner4 is equal-area with meridians drawn from partial ellipses.
func Wagner4() Raw {
	a := 4*math.Pi + 3*math.Sqrt(3)
	b := 2 * math.Sqrt(2*math.Pi*math.Sqrt(3)/a)
	cx := b * math.Sqrt(3) / math.Pi
	return newRaw(func(lambda, phi float64) (float64, float64) {
		theta := mollweideTheta(a/6, phi)
		return cx * lambda * math.Cos(theta), b * math.Sin(theta)
	})
}

// Wagner6 is the compromise with elliptic meridians and a 2:1 frame.
func Wagner6() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * math.Sqrt(1-3*phi*phi/(math.Pi*math.Pi)), phi
	})
}

// Kavrayskiy7 widens Wagner6 for a gentler shear at high latitudes.
func Kavrayskiy7() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return 3 * lambda / (2 * math.Pi) * math.Sqrt(math.Pi*math.Pi/3-phi*phi), phi
	})
}

// NaturalEarth1 is the Natural Earth compromise polynomial.
func NaturalEarth1() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		phi2 := phi * phi
		phi4 := phi2 * phi2
		return lambda * (0.8707 - 0.131979*phi2 + phi4*(-0.013791+phi4*(0.003971*phi2-0.001529*phi4))),
			phi * (1.007226 + phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4)))
	})
}

// robinsonX and robinsonY tabulate Robinson's coefficients every 5 degrees of
// latitude from the equator to the pole.
var (
	robinsonX = [19]float64{
		1.0000, 0.9986, 0.9954, 0.9900, 0.9822, 0.9730, 0.9600, 0.9427, 0.9216,
		0.8962, 0.8679, 0.8350, 0.7986, 0.7597, 0.7186, 0.6732, 0.6213, 0.5722, 0.5322,
	}
	robinsonY = [19]float64{
		0.0000, 0.0620, 0.1240, 0.1860, 0.2480, 0.3100, 0.3720, 0.4340, 0.4958,
		0.5571, 0.6176, 0.6769, 0.7346, 0.7903, 0.8435, 0.8936, 0.9394, 0.9761, 1.0000,
	}
)

// Robinson interpolates the classic lookup table linearly; the error against
// the original spline fit is well under the width of a drawn line.
func Robinson() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		t := math.Abs(phi) * rad2deg / 5
		i := int(t)
		if i >= 18 {
			i = 17
		}
		f := t - float64(i)
		cx := robinsonX[i] + f*(robinsonX[i+1]-robinsonX[i])
		cy := robinsonY[i] + f*(robinsonY[i+1]-robinsonY[i])
		if phi < 0 {
			cy = -cy
		}
		return 0.8487 * lambda * cx, 1.3523 * cy
	})
}

// Patterson is the cylindrical compromise used by the Patterson atlas style.
func Patterson() Raw {
	const (
		k1 = 1.0148
		k2 = 0.23185
		k3 = -0.14499
		k4 = 0.02406
	)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		phi2 := phi * phi
		return lambda, phi * (k1 + phi2*phi2*(k2+phi2*(k3+k4*phi2)))
	})
}

// EqualEarth is the Equal Earth polynomial, equal-area with Robinson-like
// shapes.
func EqualEarth() Raw {
	const (
		a1 = 1.340264
		a2 = -0.081106
		a3 = 0.000893
		a4 = 0.003796
	)
	m := math.Sqrt(3) / 2
	return newRaw(func(lambda, phi float64) (float64, float64) {
		l := math.Asin(m * math.Sin(phi))
		l2 := l * l
		l6 := l2 * l2 * l2
		return lambda * math.Cos(l) / (m * (a1 + 3*a2*l2 + l6*(7*a3+9*a4*l2))),
			l * (a1 + a2*l2 + l6*(a3+a4*l2))
	})
}

// Times is the Times Atlas projection, a stretched Gall stereographic.
func Times() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		t := math.Tan(phi / 2)
		s := math.Sin(math.Pi / 4 * t)
		return lambda * (0.74482 - 0.34588*s*s), 1.70711 * t
	})
}

// Boggs is the eumorphic mean of sinusoidal and Mollweide.
func Boggs() Raw {
	const k = 2.00276
	const w = 1.11072
	return newRaw(func(lambda, phi float64) (float64, float64) {
		theta := mollweideTheta(math.Pi, phi)
		return k * lambda / (1/math.Cos(phi) + w/math.Cos(theta)),
			(phi + math.Sqrt2*math.Sin(theta)) / k
	})
}

// Craster is the equal-area parabolic.
func Craster() Raw {
	sq := math.Sqrt(3 / math.Pi)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return sq * lambda * (2*math.Cos(2*phi/3) - 1), math.Sqrt(3*math.Pi) * math.Sin(phi/3)
	})
}

// Collignon maps the world onto a triangle, equal-area.
func Collignon() Raw {
	sqrtPi := math.Sqrt(math.Pi)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		alpha := math.Sqrt(1 - math.Sin(phi))
		return 2 / sqrtPi * lambda * alpha, sqrtPi * (1 - alpha)
	})
}

// NellHammer is the mean of plate carree and the stereographic ordinate,
// equal-area.
func NellHammer() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * (1 + math.Cos(phi)) / 2, 2 * (phi - math.Tan(phi/2))
	})
}

// McBrydeFPP is the McBryde-Thomas flat-polar parabolic, equal-area.
func McBrydeFPP() Raw {
	sqrt6 := math.Sqrt(6)
	sqrt7 := math.Sqrt(7)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		theta := math.Asin(7 * math.Sin(phi) / (3 * sqrt6))
		return sqrt6 * lambda * (2*math.Cos(2*theta/3) - 1) / sqrt7, 9 * math.Sin(theta/3) / sqrt7
	})
}

// McBrydeFPQ is the McBryde-Thomas flat-polar quartic, equal-area.
func McBrydeFPQ() Raw {
	cx := 1 / math.Sqrt(6+3*math.Sqrt2)
	cy := 2 * math.Sqrt(3) / math.Sqrt(2+math.Sqrt2)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		k := (1 + math.Sqrt2/2) * math.Sin(phi)
		theta := phi
		for i := 0; i < 25; i++ {
			delta := (math.Sin(theta/2) + math.Sin(theta) - k) / (0.5*math.Cos(theta/2) + math.Cos(theta))
			theta -= delta
			if math.Abs(delta) < 1e-12 {
				break
			}
		}
		return cx * lambda * (1 + 2*math.Cos(theta)/math.Cos(theta/2)), cy * math.Sin(theta/2)
	})
}

// McBrydeFPS is the McBryde-Thomas flat-polar sinusoidal, equal-area.
func McBrydeFPS() Raw {
	a := math.Sqrt(6 / (4 + math.Pi))
	return newRaw(func(lambda, phi float64) (float64, float64) {
		k := (1 + math.Pi/4) * math.Sin(phi)
		theta := phi / 2
		for i := 0; i < 25; i++ {
			delta := (theta/2 + math.Sin(theta) - k) / (0.5 + math.Cos(theta))
			theta -= delta
			if math.Abs(delta) < 1e-12 {
				break
			}
		}
		return a * lambda * (0.5 + math.Cos(theta)) / 1.5, a * theta
	})
}

// Loximuthal shows loxodromes from the central point as straight lines at
// true azimuth; phi0 is the central latitude in degrees.
func Loximuthal(phi0 float64) Raw {
	p0 := phi0 * deg2rad
	cosPhi0 := math.Cos(p0)
	tanPhi0 := math.Tan(math.Pi/4 + p0/2)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		y := phi - p0
		var x float64
		switch {
		case math.Abs(y) < epsilon:
			x = lambda * cosPhi0
		case math.Abs(phi/2+math.Pi/4) < epsilon || math.Abs(math.Abs(phi)-math.Pi/2) < epsilon:
			x = 0
		default:
			x = lambda * y / math.Log(math.Tan(math.Pi/4+phi/2)/tanPhi0)
		}
		return x, y
	})
}

// Foucaut is the stereographic equivalent pseudocylindrical.
func Foucaut() Raw {
	sqrtPi := math.Sqrt(math.Pi)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		k := phi / 2
		cosk := math.Cos(k)
		return 2 * lambda / sqrtPi * math.Cos(phi) * cosk * cosk, sqrtPi * math.Tan(k)
	})
}

// FoucautSinusoidal blends the sinusoidal with the equal-area cylindrical;
// alpha is the cylindrical weight.
func FoucautSinusoidal(alpha float64) Raw {
	beta := 1 - alpha
	return newRaw(func(lambda, phi float64) (float64, float64) {
		cosPhi := math.Cos(phi)
		return lambda * cosPhi / (alpha + beta*cosPhi), alpha*phi + beta*math.Sin(phi)
	})
}

// Fahey is a compromise on a secant cylinder at 35 degrees.
func Fahey() Raw {
	cos35 := math.Cos(35 * deg2rad)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		t := math.Tan(phi / 2)
		return lambda * cos35 * math.Sqrt(1-t*t), (1 + cos35) * t
	})
}

// QuarticAuthalic is equal-area with parabola-like meridians.
func QuarticAuthalic() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * math.Cos(phi) / math.Cos(phi/2), 2 * math.Sin(phi/2)
	})
}

// Winkel1 averages the sinusoidal with an equirectangular at the standard
// parallel phi1, degrees.
func Winkel1(phi1 float64) Raw {
	cosPhi1 := math.Cos(phi1 * deg2rad)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		return lambda * (cosPhi1 + math.Cos(phi)) / 2, phi
	})
}

// Hatano is the asymmetrical equal-area projection, with different polar
// flattening north and south.
func Hatano() Raw {
	return newRaw(func(lambda, phi float64) (float64, float64) {
		c := 2.67595
		if phi < 0 {
			c = 2.43763
		}
		k := c * math.Sin(phi)
		psi := phi
		for i := 0; i < 20; i++ {
			delta := (psi + math.Sin(psi) - k) / (1 + math.Cos(psi))
			psi -= delta
			if math.Abs(delta) < 1e-12 {
				break
			}
		}
		theta := psi / 2
		cy := 1.75859
		if theta < 0 {
			cy = 1.93052
		}
		return 0.85 * lambda * math.Cos(theta), cy * math.Sin(theta)
	})
}

// Bottomley bends Werner's cordiform toward a flatter heart; psi is the
// shaping parallel in degrees.
func Bottomley(psi float64) Raw {
	sinPsi := math.Sin(psi * deg2rad)
	return newRaw(func(lambda, phi float64) (float64, float64) {
		rho := math.Pi/2 - phi
		eta := 0.0
		if rho != 0 {
			eta = lambda * sinPsi * math.Sin(rho) / rho
		}
		return rho * math.Sin(eta) / sinPsi, math.Pi/2 - rho*math.Cos(eta)
	})
}
