/*
 * angular.go, part of orbfield.
 *
 * Copyright 2026 The orbfield developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//angular.go evaluates the real spherical harmonics Y_l^m. The associated
//Legendre polynomials behind them go through the LegendreProvider interface,
//with two interchangeable implementations: a general recurrence and the
//closed forms for l <= 3. Both carry the Condon-Shortley phase, and the
//contract test in angular_test.go keeps them in agreement on the shared
//domain.

package orbital

import "math"

//LegendreProvider evaluates the associated Legendre function P_l^m(x) for
//m >= 0 and |x| <= 1, including the Condon-Shortley phase (-1)^m.
type LegendreProvider interface {
	AssocLegendre(l, m int, x float64) float64
}

//RecurrenceLegendre evaluates P_l^m through the standard three-term upward
//recurrence on l. It is the default provider and covers any l >= 0.
type RecurrenceLegendre struct{}

func (RecurrenceLegendre) AssocLegendre(l, m int, x float64) float64 {
	if m < 0 || m > l {
		return 0
	}
	//P_m^m = (-1)^m (2m-1)!! (1-x^2)^(m/2)
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 0; i < m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}
	return pll
}

//ClosedFormLegendre evaluates P_l^m from hard-coded formulas for l <= 3.
//Outside that domain it hands over to the recurrence, so Y stays total
//whichever provider is configured.
type ClosedFormLegendre struct{}

func (ClosedFormLegendre) AssocLegendre(l, m int, x float64) float64 {
	if m < 0 || m > l {
		return 0
	}
	s := math.Sqrt((1 - x) * (1 + x)) //sin(theta) for x = cos(theta)
	switch {
	case l == 0:
		return 1
	case l == 1 && m == 0:
		return x
	case l == 1 && m == 1:
		return -s
	case l == 2 && m == 0:
		return 0.5 * (3*x*x - 1)
	case l == 2 && m == 1:
		return -3 * x * s
	case l == 2 && m == 2:
		return 3 * (1 - x*x)
	case l == 3 && m == 0:
		return 0.5 * x * (5*x*x - 3)
	case l == 3 && m == 1:
		return -1.5 * (5*x*x - 1) * s
	case l == 3 && m == 2:
		return 15 * x * (1 - x*x)
	case l == 3 && m == 3:
		return -15 * s * s * s
	}
	return RecurrenceLegendre{}.AssocLegendre(l, m, x)
}

//RealSphericalHarmonic evaluates the real spherical harmonic Y_l^m at every
//(theta[i], phi[i]) pair, using the recurrence Legendre provider. A
//degenerate (l, m) pair, with l < 0 or |m| > l, yields all zeros. It panics
//if the two slices differ in length.
func RealSphericalHarmonic(l, m int, theta, phi []float64) []float64 {
	return RealSphericalHarmonicWith(RecurrenceLegendre{}, l, m, theta, phi)
}

//RealSphericalHarmonicWith is RealSphericalHarmonic with an explicit
//Legendre provider, the configuration point for the closed-form variant.
func RealSphericalHarmonicWith(p LegendreProvider, l, m int, theta, phi []float64) []float64 {
	if len(theta) != len(phi) {
		panic(ErrLengthMismatch)
	}
	y := make([]float64, len(theta))
	h := newHarmonic(p, l, m)
	for i, th := range theta {
		y[i] = h.at(th, phi[i])
	}
	return y
}

//harmonic holds the precomputed normalization for one (l, m) pair, so dense
//samplers don't pay for it at every point.
type harmonic struct {
	p        LegendreProvider
	l, m, ma int
	norm     float64
}

func newHarmonic(p LegendreProvider, l, m int) harmonic {
	ma := m
	if ma < 0 {
		ma = -ma
	}
	h := harmonic{p: p, l: l, m: m, ma: ma}
	if l < 0 || ma > l {
		return h //degenerate, norm stays zero and at() returns zero
	}
	h.norm = math.Sqrt(float64(2*l+1) / (4 * math.Pi) * factorial(l-ma) / factorial(l+ma))
	return h
}

func (h harmonic) at(theta, phi float64) float64 {
	if h.norm == 0 {
		return 0
	}
	leg := h.p.AssocLegendre(h.l, h.ma, math.Cos(theta))
	switch {
	case h.m == 0:
		return h.norm * leg
	case h.m > 0:
		return math.Sqrt2 * h.norm * leg * math.Cos(float64(h.ma)*phi)
	default:
		return math.Sqrt2 * h.norm * leg * math.Sin(float64(h.ma)*phi)
	}
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
