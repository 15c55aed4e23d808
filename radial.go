/*
 * radial.go, part of orbfield.
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

package orbital

import "math"

//Bohr is the Bohr radius in Angstroms, the conversion factor between the
//Cartesian inputs of the samplers and the atomic units of the radial
//functions.
const Bohr = 0.529177

//RadialAt evaluates the hydrogenic radial wavefunction R_nl at a single
//distance rBohr, given in Bohr radii. The six combinations with n <= 3 use
//the exact closed forms. Any other (n, l) uses r^l * exp(-r/n), which is not
//physically exact but is stable and monotone-decaying for all r >= 0; the
//approximation is deliberate and must not be replaced with exact Laguerre
//radial functions, since the rendered output depends on it.
//No normalization constant is applied: the probability fields derived from
//these values are relative, not absolute, densities.
//The (n, l) pair is assumed normalized; callers go through Normalize.
func RadialAt(n, l int, rBohr float64) float64 {
	r := rBohr
	switch {
	case n == 1 && l == 0:
		return 2 * math.Exp(-r)
	case n == 2 && l == 0:
		return (2 - r) * math.Exp(-r/2)
	case n == 2 && l == 1:
		return r * math.Exp(-r/2)
	case n == 3 && l == 0:
		return (27 - 18*r + 2*r*r) * math.Exp(-r/3)
	case n == 3 && l == 1:
		return (6 - r) * r * math.Exp(-r/3)
	case n == 3 && l == 2:
		return r * r * math.Exp(-r/3)
	}
	return math.Pow(r, float64(l)) * math.Exp(-r/float64(n))
}

//Radial evaluates R_nl at every distance in rBohr (in Bohr radii) and
//returns the results in a fresh slice.
func Radial(n, l int, rBohr []float64) []float64 {
	out := make([]float64, len(rBohr))
	for i, r := range rBohr {
		out[i] = RadialAt(n, l, r)
	}
	return out
}
