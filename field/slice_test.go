/*
 * slice_test.go, part of orbfield.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTrilinearAtLatticePoints(Te *testing.T) {
	f, err := Synthesize("H", 2, 1, 0, 15)
	if err != nil {
		Te.Fatal(err)
	}
	g := f.Grid
	for _, ijk := range [][3]int{{0, 0, 0}, {7, 7, 7}, {14, 14, 14}, {3, 9, 12}} {
		pt := g.PointAt(ijk[0], ijk[1], ijk[2])
		want := f.Probability[g.Index(ijk[0], ijk[1], ijk[2])]
		got := trilinear(g, f.Probability, pt)
		if math.Abs(got-want) > 1e-12*(1+want) {
			Te.Errorf("trilinear at lattice point %v: %g, want %g", ijk, got, want)
		}
	}
	//outside the bounds the sample is 0, not an extrapolation
	lo, hi := g.Bounds()
	if trilinear(g, f.Probability, r3.Vec{X: lo.X - 1}) != 0 || trilinear(g, f.Probability, r3.Vec{Z: hi.Z + 1}) != 0 {
		Te.Error("points outside the grid should sample as 0")
	}
}

//TestSamplePlane2p slices the 2p (m=0) field with a plane containing the z
//axis, where both lobes and the nodal plane between them are visible: phase
//flips from 0 to pi across z = 0 and the amplitude dips to nothing there.
func TestSamplePlane2p(Te *testing.T) {
	f, err := Synthesize("H", 2, 1, 0, 41)
	if err != nil {
		Te.Fatal(err)
	}
	ps, err := SamplePlane(f, r3.Vec{}, r3.Vec{X: 1}, 8, 21)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ps.Points) != 21*21 {
		Te.Fatalf("got %d plane points, want %d", len(ps.Points), 21*21)
	}
	maxAmp, nodeMax := 0.0, 0.0
	sawUp, sawDown := false, false
	for i, pt := range ps.Points {
		if math.Abs(pt.X) > 1e-9 {
			Te.Fatalf("plane point %d has x = %g, should lie in the x = 0 plane", i, pt.X)
		}
		if ps.Amplitude[i] > maxAmp {
			maxAmp = ps.Amplitude[i]
		}
		switch {
		case pt.Z > 1:
			sawUp = true
			if ps.Phase[i] != 0 {
				Te.Errorf("phase at z = %g should be 0, got %g", pt.Z, ps.Phase[i])
			}
		case pt.Z < -1:
			sawDown = true
			if ps.Phase[i] != math.Pi {
				Te.Errorf("phase at z = %g should be pi, got %g", pt.Z, ps.Phase[i])
			}
		case math.Abs(pt.Z) < 1e-9:
			if ps.Amplitude[i] > nodeMax {
				nodeMax = ps.Amplitude[i]
			}
		}
	}
	if !sawUp || !sawDown {
		Te.Fatal("slice lattice missed one of the lobes")
	}
	if nodeMax > 0.05*maxAmp {
		Te.Errorf("nodal plane amplitude %g is not small next to the lobe maximum %g", nodeMax, maxAmp)
	}
}

func TestSamplePlaneCumulative(Te *testing.T) {
	f, err := Synthesize("H", 1, 0, 0, 31)
	if err != nil {
		Te.Fatal(err)
	}
	ps, err := SamplePlane(f, r3.Vec{}, r3.Vec{Z: 1}, 5, 15)
	if err != nil {
		Te.Fatal(err)
	}
	maxCum := 0.0
	for i := range ps.Cumulative {
		c := ps.Cumulative[i]
		if c < 0 || c > 1 {
			Te.Fatalf("cumulative out of [0, 1] at point %d: %g", i, c)
		}
		if c > maxCum {
			maxCum = c
		}
		for j := range ps.Cumulative {
			if ps.Probability[i] < ps.Probability[j] && ps.Cumulative[i] > ps.Cumulative[j] {
				Te.Fatalf("cumulative not monotone with probability rank: points %d and %d", i, j)
			}
		}
	}
	if math.Abs(maxCum-1) > 1e-12 {
		Te.Errorf("densest plane point should carry cumulative 1, got %g", maxCum)
	}
}

//TestSamplePlaneOutside: a plane far larger than the field samples zeros
//past the bounds and still normalizes its cumulative over what remains.
func TestSamplePlaneOutside(Te *testing.T) {
	f, err := Synthesize("H", 1, 0, 0, 21)
	if err != nil {
		Te.Fatal(err)
	}
	ps, err := SamplePlane(f, r3.Vec{}, r3.Vec{Z: 1}, 30, 11)
	if err != nil {
		Te.Fatal(err)
	}
	//the lattice corners sit 15*sqrt(2)/2 away, well past the +-3 bounds
	for _, i := range []int{0, 10, 110, 120} {
		if ps.Probability[i] != 0 || ps.Amplitude[i] != 0 {
			Te.Errorf("corner point %d at %v should sample as 0", i, ps.Points[i])
		}
	}
	center := 5*11 + 5
	if ps.Probability[center] <= 0 {
		Te.Error("plane center should still see the orbital")
	}
}

func TestSamplePlaneDegenerateNormal(Te *testing.T) {
	f, err := Synthesize("H", 2, 1, 0, 21)
	if err != nil {
		Te.Fatal(err)
	}
	a, err := SamplePlane(f, r3.Vec{}, r3.Vec{}, 4, 9)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := SamplePlane(f, r3.Vec{}, r3.Vec{Z: 1}, 4, 9)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] || a.Probability[i] != b.Probability[i] {
			Te.Fatalf("zero normal should fall back to the z axis, mismatch at point %d", i)
		}
	}
}

func TestSamplePlaneBadInput(Te *testing.T) {
	f, err := Synthesize("H", 1, 0, 0, 11)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := SamplePlane(f, r3.Vec{X: math.NaN()}, r3.Vec{Z: 1}, 4, 9); err == nil {
		Te.Error("NaN origin should be rejected")
	}
	if _, err := SamplePlane(f, r3.Vec{}, r3.Vec{Y: math.Inf(1)}, 4, 9); err == nil {
		Te.Error("Inf normal should be rejected")
	}
	_, err = SamplePlane(f, r3.Vec{}, r3.Vec{Z: 1}, math.NaN(), 9)
	if err == nil {
		Te.Fatal("NaN size should be rejected")
	}
	if ferr, ok := err.(*Error); !ok || !ferr.Critical() {
		Te.Errorf("plane parameter rejection should be a critical *Error, got %T", err)
	}
}
