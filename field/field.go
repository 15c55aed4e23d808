/*
 * field.go, part of orbfield.
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

/*Package field synthesizes dense scalar fields from hydrogenic orbitals.

It builds regular-grid samplings of single orbitals, combines several
positioned orbitals into bonding/antibonding hybrids with a linear
atomic-to-hybrid blend, calibrates probability isosurface thresholds by
cumulative mass, and resamples fields onto arbitrary 2D planes. All
lengths are Angstroms. Like the orbital package, everything here is pure
and safe to call from any goroutine.
*/
package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Grid is a regular 3D sampling lattice. Linear indexing is x-fastest:
//index = ix + Nx*(iy + Ny*iz).
type Grid struct {
	Nx, Ny, Nz int
	Origin     r3.Vec //position of voxel (0, 0, 0)
	Spacing    r3.Vec
}

//Len returns the number of lattice points.
func (g Grid) Len() int {
	return g.Nx * g.Ny * g.Nz
}

//VoxelVolume returns the volume of one cell, the weight that converts a
//probability density into a per-voxel probability mass.
func (g Grid) VoxelVolume() float64 {
	return g.Spacing.X * g.Spacing.Y * g.Spacing.Z
}

//Index returns the linear index of lattice point (ix, iy, iz).
func (g Grid) Index(ix, iy, iz int) int {
	return ix + g.Nx*(iy+g.Ny*iz)
}

//PointAt returns the Cartesian position of lattice point (ix, iy, iz).
func (g Grid) PointAt(ix, iy, iz int) r3.Vec {
	return r3.Vec{
		X: g.Origin.X + float64(ix)*g.Spacing.X,
		Y: g.Origin.Y + float64(iy)*g.Spacing.Y,
		Z: g.Origin.Z + float64(iz)*g.Spacing.Z,
	}
}

//Points materializes every lattice point, in linear-index order.
func (g Grid) Points() []r3.Vec {
	pts := make([]r3.Vec, 0, g.Len())
	for iz := 0; iz < g.Nz; iz++ {
		for iy := 0; iy < g.Ny; iy++ {
			for ix := 0; ix < g.Nx; ix++ {
				pts = append(pts, g.PointAt(ix, iy, iz))
			}
		}
	}
	return pts
}

//Center returns the geometric center of the lattice.
func (g Grid) Center() r3.Vec {
	lo, hi := g.Bounds()
	return r3.Scale(0.5, r3.Add(lo, hi))
}

//Bounds returns the lowest and highest corner of the lattice.
func (g Grid) Bounds() (lo, hi r3.Vec) {
	lo = g.Origin
	hi = r3.Vec{
		X: g.Origin.X + float64(g.Nx-1)*g.Spacing.X,
		Y: g.Origin.Y + float64(g.Ny-1)*g.Spacing.Y,
		Z: g.Origin.Z + float64(g.Nz-1)*g.Spacing.Z,
	}
	return lo, hi
}

//Extent returns the largest side length of the lattice bounding box.
func (g Grid) Extent() float64 {
	lo, hi := g.Bounds()
	return math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
}

//Field is a scalar field sampled on a Grid: the wavefunction and its three
//derived channels, each of length Grid.Len(), in linear-index order. The
//pointwise invariants are Amplitude = |Psi|, Probability = Amplitude^2 and
//Phase = arg(Psi) (0 or pi, since the hydrogenic forms are real).
type Field struct {
	Grid        Grid
	Psi         []float64
	Amplitude   []float64
	Phase       []float64
	Probability []float64
}

//fieldFromPsi packages a raw wavefunction sampling into a Field,
//recomputing the three derived channels.
func fieldFromPsi(g Grid, psi []float64) *Field {
	f := &Field{
		Grid:        g,
		Psi:         psi,
		Amplitude:   make([]float64, len(psi)),
		Phase:       make([]float64, len(psi)),
		Probability: make([]float64, len(psi)),
	}
	for i, v := range psi {
		a := math.Abs(v)
		f.Amplitude[i] = a
		if v < 0 {
			f.Phase[i] = math.Pi
		}
		f.Probability[i] = a * a
	}
	return f
}
