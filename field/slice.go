/*
 * slice.go, part of orbfield.
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

//slice.go resamples a 3D field onto an arbitrary 2D plane for slice
//analysis and contouring.

package field

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

//degenerateNormal is the squared-length threshold below which a slicing
//normal falls back to the z axis.
const degenerateNormal = 1e-6

//PlaneSample is a field resampled onto a 2D plane lattice. Cumulative holds
//the rank-ordered cumulative probability mass up to each point's density
//value, normalized to [0, 1] over the plane's own weights only. It serves
//2D contouring and is independent of (and must not be confused with) the 3D
//calibrator's descending accumulation in iso.go.
type PlaneSample struct {
	Points      []r3.Vec
	Probability []float64
	Cumulative  []float64
	Amplitude   []float64
	Phase       []float64
}

//SamplePlane builds a resolution x resolution lattice of side length size
//on the plane through origin perpendicular to normal, and trilinearly
//resamples the field's channels onto it. Lattice points outside the source
//grid sample as 0 rather than failing. A near-zero normal falls back to the
//z axis; NaN/Inf plane parameters are the one hard failure, rejected with
//an error before they can reach the rank accumulation.
func SamplePlane(f *Field, origin, normal r3.Vec, size float64, resolution int) (*PlaneSample, error) {
	if badVec(origin) || badVec(normal) || !goodFloat(size) {
		return nil, &Error{
			message:  fmt.Sprintf("orbfield/field: non-numeric (NaN/Inf) plane parameters: origin %v normal %v size %v", origin, normal, size),
			deco:     []string{"SamplePlane"},
			critical: true,
		}
	}
	if r3.Norm2(normal) < degenerateNormal {
		normal = r3.Vec{Z: 1}
	}
	normal = r3.Unit(normal)
	u, v := planeBasis(normal)
	res := clampResolution(resolution)
	n := res * res
	ps := &PlaneSample{
		Points:      make([]r3.Vec, 0, n),
		Probability: make([]float64, n),
		Cumulative:  make([]float64, n),
		Amplitude:   make([]float64, n),
		Phase:       make([]float64, n),
	}
	den := float64(res - 1)
	for j := 0; j < res; j++ {
		for i := 0; i < res; i++ {
			a := (float64(i)/den - 0.5) * size
			b := (float64(j)/den - 0.5) * size
			pt := r3.Add(origin, r3.Add(r3.Scale(a, u), r3.Scale(b, v)))
			ps.Points = append(ps.Points, pt)
			idx := j*res + i
			ps.Probability[idx] = trilinear(f.Grid, f.Probability, pt)
			ps.Amplitude[idx] = trilinear(f.Grid, f.Amplitude, pt)
			ps.Phase[idx] = trilinear(f.Grid, f.Phase, pt)
		}
	}
	rankCumulative(ps.Probability, ps.Cumulative)
	return ps, nil
}

//planeBasis returns two unit vectors orthogonal to n and to each other.
func planeBasis(n r3.Vec) (u, v r3.Vec) {
	ref := r3.Vec{Z: 1}
	if math.Abs(r3.Dot(ref, n)) > 0.9 {
		ref = r3.Vec{Y: 1}
	}
	u = r3.Unit(r3.Cross(n, ref))
	v = r3.Cross(n, u)
	return u, v
}

//trilinear interpolates one scalar channel of a grid at an arbitrary point.
//Points outside the grid bounds yield 0.
func trilinear(g Grid, values []float64, pt r3.Vec) float64 {
	fx := (pt.X - g.Origin.X) / g.Spacing.X
	fy := (pt.Y - g.Origin.Y) / g.Spacing.Y
	fz := (pt.Z - g.Origin.Z) / g.Spacing.Z
	if fx < 0 || fy < 0 || fz < 0 || fx > float64(g.Nx-1) || fy > float64(g.Ny-1) || fz > float64(g.Nz-1) {
		return 0
	}
	ix, iy, iz := int(fx), int(fy), int(fz)
	//clamp the cell so points on the high faces interpolate inside it
	if ix > g.Nx-2 {
		ix = g.Nx - 2
	}
	if iy > g.Ny-2 {
		iy = g.Ny - 2
	}
	if iz > g.Nz-2 {
		iz = g.Nz - 2
	}
	tx, ty, tz := fx-float64(ix), fy-float64(iy), fz-float64(iz)
	c000 := values[g.Index(ix, iy, iz)]
	c100 := values[g.Index(ix+1, iy, iz)]
	c010 := values[g.Index(ix, iy+1, iz)]
	c110 := values[g.Index(ix+1, iy+1, iz)]
	c001 := values[g.Index(ix, iy, iz+1)]
	c101 := values[g.Index(ix+1, iy, iz+1)]
	c011 := values[g.Index(ix, iy+1, iz+1)]
	c111 := values[g.Index(ix+1, iy+1, iz+1)]
	c00 := c000 + (c100-c000)*tx
	c10 := c010 + (c110-c010)*tx
	c01 := c001 + (c101-c001)*tx
	c11 := c011 + (c111-c011)*tx
	c0 := c00 + (c10-c00)*ty
	c1 := c01 + (c11-c01)*ty
	return c0 + (c1-c0)*tz
}

//rankCumulative fills dst with the ascending rank-ordered cumulative sum of
//the (clamped non-negative) weights, normalized to the weights' own total.
//A plane with no positive weight leaves dst all zero.
func rankCumulative(weights, dst []float64) {
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return pos(weights[idx[a]]) < pos(weights[idx[b]]) })
	total := 0.0
	for _, w := range weights {
		total += pos(w)
	}
	if total <= 0 {
		return
	}
	run := 0.0
	for _, i := range idx {
		run += pos(weights[i])
		c := run / total
		if c > 1 {
			c = 1
		}
		dst[i] = c
	}
}

func pos(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func badVec(v r3.Vec) bool {
	return !goodFloat(v.X) || !goodFloat(v.Y) || !goodFloat(v.Z)
}

func goodFloat(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
