/*
 * doc.go, part of orbfield.
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

/*Package orbital evaluates hydrogenic atomic-orbital wavefunctions.

It is the evaluation core of the orbfield library: every higher-level
facility (dense grid synthesis, hybrid superposition, isosurface
calibration and plane slicing, all in the field subpackage) funnels its
per-point work through EvaluateOrbital in this package.


	**orbfield capabilities**

    Normalizes quantum number triples (n, l, m) against the physical
	constraints l < n and |m| <= l. Out-of-range values are clamped,
	never rejected: the library is meant to back an interactive
	visualization, where a best-effort display beats a hard failure.

    Evaluates real spherical harmonics Y_l^m for any valid (l, m),
	through an associated-Legendre provider. Two providers are shipped,
	a general recurrence and hard-coded closed forms for l <= 3, under
	a single contract.

    Evaluates hydrogenic radial wavefunctions R_nl in atomic units,
	with the exact closed forms for n <= 3 and a monotone-decaying
	approximation beyond.

    Evaluates psi = R*Y on arbitrary point sets, in parallel, together
	with the derived amplitude, phase and probability-density channels.

    Tabulates element defaults (valence quantum numbers, atomic
	numbers, aufbau-occupied orbitals) for elements up to Kr.

All functions here are pure and hold no global state, so they may be
called from any goroutine. Lengths are Angstroms unless noted; radial
distances are converted to Bohr radii internally.
*/
package orbital
