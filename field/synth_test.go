/*
 * synth_test.go, part of orbfield.
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

package field

import (
	"fmt"
	"math"
	"testing"

	orbital "github.com/orbsim/orbfield"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGridIndexing(Te *testing.T) {
	g := Grid{Nx: 4, Ny: 3, Nz: 5, Origin: r3.Vec{X: -1, Y: 0, Z: 2}, Spacing: r3.Vec{X: 0.5, Y: 0.25, Z: 1}}
	pts := g.Points()
	if len(pts) != g.Len() {
		Te.Fatalf("Points returned %d points, Len says %d", len(pts), g.Len())
	}
	for iz := 0; iz < g.Nz; iz++ {
		for iy := 0; iy < g.Ny; iy++ {
			for ix := 0; ix < g.Nx; ix++ {
				if pts[g.Index(ix, iy, iz)] != g.PointAt(ix, iy, iz) {
					Te.Fatalf("linear order and Index disagree at (%d,%d,%d)", ix, iy, iz)
				}
			}
		}
	}
	if v := g.VoxelVolume(); math.Abs(v-0.125) > 1e-15 {
		Te.Errorf("VoxelVolume = %g, want 0.125", v)
	}
	lo, hi := g.Bounds()
	if lo != g.Origin || hi != (r3.Vec{X: 0.5, Y: 0.5, Z: 6}) {
		Te.Errorf("Bounds = %v %v", lo, hi)
	}
}

func TestSynthesize(Te *testing.T) {
	f, err := Synthesize("H", 1, 0, 0, 21)
	if err != nil {
		Te.Fatal(err)
	}
	g := f.Grid
	if g.Nx != 21 || g.Ny != 21 || g.Nz != 21 {
		Te.Fatalf("grid is %dx%dx%d, want 21^3", g.Nx, g.Ny, g.Nz)
	}
	lo, hi := g.Bounds()
	if lo != (r3.Vec{X: -3, Y: -3, Z: -3}) || r3.Norm(r3.Sub(hi, r3.Vec{X: 3, Y: 3, Z: 3})) > 1e-12 {
		Te.Errorf("1s grid should span +-3 per axis, got %v %v", lo, hi)
	}
	//the 1s density peaks at the nucleus, which an odd resolution samples
	//exactly
	center := g.Index(10, 10, 10)
	if r3.Norm(g.PointAt(10, 10, 10)) > 1e-12 {
		Te.Fatalf("center lattice point is %v, want the origin", g.PointAt(10, 10, 10))
	}
	for i, p := range f.Probability {
		if p > f.Probability[center] {
			Te.Fatalf("1s density at linear index %d exceeds the nucleus value", i)
		}
		if f.Amplitude[i] != math.Abs(f.Psi[i]) || f.Phase[i] != 0 {
			Te.Fatalf("channel invariants broken at linear index %d", i)
		}
	}
	//n = 2 widens the span to +-6
	f2, err := Synthesize("H", 2, 1, 0, 11)
	if err != nil {
		Te.Fatal(err)
	}
	if lo, _ := f2.Grid.Bounds(); lo.X != -6 {
		Te.Errorf("2p grid should span +-6, got origin %v", f2.Grid.Origin)
	}
	//degenerate resolutions are raised to 2, never an error
	if _, err := Synthesize("H", 1, 0, 0, 0); err != nil {
		Te.Error("resolution 0 should be clamped, got", err)
	}
}

func TestCombineNoVisible(Te *testing.T) {
	if _, err := Combine(nil, 21); err != ErrNoField {
		Te.Errorf("empty input: got %v, want ErrNoField", err)
	}
	orbs := ExampleMolecule("H2 (covalent)")
	for i := range orbs {
		orbs[i].Visible = false
	}
	if _, err := Combine(orbs, 21); err != ErrNoField {
		Te.Errorf("all-hidden input: got %v, want ErrNoField", err)
	}
	if ErrNoField.Critical() {
		Te.Error("ErrNoField is a recoverable domain-empty state, not critical")
	}
}

//h2Superposition builds the H2 test fixture on an odd resolution, so the
//midpoint between the nuclei is a lattice point.
func h2Superposition(Te *testing.T, res int) *Superposition {
	sup, err := Combine(ExampleMolecule("H2 (covalent)"), res)
	if err != nil {
		Te.Fatal(err)
	}
	return sup
}

func TestBlendEndpoints(Te *testing.T) {
	sup := h2Superposition(Te, 31)
	atomic := sup.Blend(Bonding, 0)
	for i, v := range atomic.Psi {
		if v != sup.atomic[i] {
			Te.Fatalf("mix=0 must reproduce the atomic reference exactly, index %d", i)
		}
	}
	bond := sup.Blend(Bonding, 1)
	for i, v := range bond.Psi {
		if v != sup.bonding[i] {
			Te.Fatalf("mix=1 must reproduce the hybrid exactly, index %d", i)
		}
	}
	anti := sup.Blend(Antibonding, 1)
	for i, v := range anti.Psi {
		if v != sup.antibonding[i] {
			Te.Fatalf("mix=1 antibonding mismatch at index %d", i)
		}
	}
	//out-of-range mixes clamp to the endpoints
	below := sup.Blend(Bonding, -0.5)
	above := sup.Blend(Bonding, 1.5)
	for i := range below.Psi {
		if below.Psi[i] != atomic.Psi[i] || above.Psi[i] != bond.Psi[i] {
			Te.Fatalf("mix clamping failed at index %d", i)
		}
	}
}

func TestBlendIsAffine(Te *testing.T) {
	sup := h2Superposition(Te, 21)
	lo := sup.Blend(Bonding, 0)
	hi := sup.Blend(Bonding, 1)
	mid := sup.Blend(Bonding, 0.5)
	for i := range mid.Psi {
		want := 0.5 * (lo.Psi[i] + hi.Psi[i])
		if math.Abs(mid.Psi[i]-want) > 1e-12 {
			Te.Fatalf("blend not affine at index %d: %g vs %g", i, mid.Psi[i], want)
		}
	}
}

//TestH2Bonding checks the physics of the sigma bond: between the nuclei the
//in-phase sum builds up more amplitude than either isolated orbital has
//there, while the antibonding combination cancels to a node.
func TestH2Bonding(Te *testing.T) {
	sup := h2Superposition(Te, 41)
	g := sup.Grid
	mid := g.Index(20, 20, 20)
	if r3.Norm(g.PointAt(20, 20, 20)) > 1e-12 {
		Te.Fatalf("midpoint lattice point is %v, want the origin", g.PointAt(20, 20, 20))
	}
	single, err := orbital.EvaluateOrbital("H", 1, 0, 0, []r3.Vec{{X: -0.37}})
	if err != nil {
		Te.Fatal(err)
	}
	bond := sup.Blend(Bonding, 1)
	if bond.Amplitude[mid] <= single.Amplitude[0] {
		Te.Errorf("bonding amplitude at the midpoint (%g) should exceed the isolated orbital's (%g)",
			bond.Amplitude[mid], single.Amplitude[0])
	}
	anti := sup.Blend(Antibonding, 1)
	if anti.Amplitude[mid] > 1e-9 {
		Te.Errorf("antibonding amplitude at the midpoint should cancel, got %g", anti.Amplitude[mid])
	}
	fmt.Println("H2 midpoint amplitudes, bonding vs isolated:", bond.Amplitude[mid], single.Amplitude[0])
}

func TestUnionGrid(Te *testing.T) {
	orbs := []PositionedOrbital{
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -2}),
		NewPositionedOrbital("H", 2, 0, 0, r3.Vec{X: 5}),
	}
	g := unionGrid(orbs, 11)
	lo, hi := g.Bounds()
	//left edge: -2 - 3*1 - 1.5; right edge: 5 + 3*2 + 1.5
	if math.Abs(lo.X-(-6.5)) > 1e-12 || math.Abs(hi.X-12.5) > 1e-12 {
		Te.Errorf("union x bounds: [%g, %g], want [-6.5, 12.5]", lo.X, hi.X)
	}
	if math.Abs(lo.Y-(-7.5)) > 1e-12 || math.Abs(hi.Y-7.5) > 1e-12 {
		Te.Errorf("union y bounds: [%g, %g], want [-7.5, 7.5]", lo.Y, hi.Y)
	}
}
