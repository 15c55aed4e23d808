/*
 * synth.go, part of orbfield.
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

//synth.go builds dense fields: single-orbital grid synthesis and the
//multi-center bonding/antibonding superposition with its atomic blend.

package field

import (
	"math"

	orbital "github.com/orbsim/orbfield"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

//Grid spans scale with the principal quantum number; an orbital reaches
//about 3n length units from its nucleus. Multi-center grids pad the union
//of the individual spans by a fixed margin.
const (
	spanPerN = 3.0
	unionPad = 1.5
)

//PositionedOrbital is one atomic orbital placed in space, the unit of input
//for hybridization requests. The caller owns these; the engine never stores
//them between calls.
type PositionedOrbital struct {
	Symbol   string
	N, L, M  int
	Position r3.Vec
	Visible  bool
}

//NewPositionedOrbital returns a visible orbital with normalized quantum
//numbers at the given position.
func NewPositionedOrbital(symbol string, n, l, m int, position r3.Vec) PositionedOrbital {
	st := orbital.NormalizeFor(symbol, n, l, m)
	return PositionedOrbital{Symbol: symbol, N: st.N, L: st.L, M: st.M, Position: position, Visible: true}
}

//State returns the normalized quantum state of the orbital.
func (o PositionedOrbital) State() orbital.QuantumState {
	return orbital.Normalize(o.N, o.L, o.M)
}

//Synthesize evaluates a single orbital of the given element on a fresh grid
//centered at the nucleus, spanning 3n length units per axis on each side,
//with resolution points per side. The resolution is expected to be
//pre-clamped by the caller (the UI keeps it in [20, 200]); values below 2
//are raised to 2 so the grid stays well formed.
func Synthesize(symbol string, n, l, m, resolution int) (*Field, error) {
	return SynthesizeWith(orbital.RecurrenceLegendre{}, symbol, n, l, m, resolution)
}

//SynthesizeWith is Synthesize with an explicit Legendre provider.
func SynthesizeWith(p orbital.LegendreProvider, symbol string, n, l, m, resolution int) (*Field, error) {
	st := orbital.NormalizeFor(symbol, n, l, m)
	res := clampResolution(resolution)
	span := spanPerN * float64(st.N)
	g := gridFromBounds(r3.Vec{X: -span, Y: -span, Z: -span}, r3.Vec{X: span, Y: span, Z: span}, res)
	s, err := orbital.EvaluateOrbitalWith(p, symbol, st.N, st.L, st.M, g.Points())
	if err != nil {
		return nil, errDecorate(err, "SynthesizeWith")
	}
	return &Field{Grid: g, Psi: s.Psi, Amplitude: s.Amplitude, Phase: s.Phase, Probability: s.Probability}, nil
}

//HybridKind selects the coherent combination of a Superposition.
type HybridKind int

const (
	//Bonding is the in-phase sum of the component wavefunctions.
	Bonding HybridKind = iota
	//Antibonding alternates the sign of every other component, by index.
	Antibonding
)

//Superposition holds the three basis wavefunctions combined from a set of
//positioned orbitals on a shared grid: the incoherent atomic reference,
//sqrt(sum |psi_i|^2), and the bonding and antibonding coherent sums. Blend
//interpolates between the atomic reference and either hybrid.
type Superposition struct {
	Grid        Grid
	atomic      []float64
	bonding     []float64
	antibonding []float64
}

//Combine evaluates every visible orbital on a grid covering the union of
//the orbitals' individual spans (position +- 3n per axis, padded by 1.5)
//at the given per-side resolution, and returns their superposition.
//A request with no visible orbitals returns ErrNoField; the caller should
//present a domain-empty state.
func Combine(orbs []PositionedOrbital, resolution int) (*Superposition, error) {
	s, err := CombineWith(orbital.RecurrenceLegendre{}, orbs, resolution)
	if err != nil {
		if err != ErrNoField {
			return nil, errDecorate(err, "Combine")
		}
		return nil, err
	}
	return s, nil
}

//CombineWith is Combine with an explicit Legendre provider.
func CombineWith(p orbital.LegendreProvider, orbs []PositionedOrbital, resolution int) (*Superposition, error) {
	visible := make([]PositionedOrbital, 0, len(orbs))
	for _, o := range orbs {
		if o.Visible {
			visible = append(visible, o)
		}
	}
	if len(visible) == 0 {
		return nil, ErrNoField
	}
	res := clampResolution(resolution)
	g := unionGrid(visible, res)
	pts := g.Points()
	n := len(pts)
	sup := &Superposition{
		Grid:        g,
		atomic:      make([]float64, n),
		bonding:     make([]float64, n),
		antibonding: make([]float64, n),
	}
	shifted := make([]r3.Vec, n)
	for idx, o := range visible {
		for i, pt := range pts {
			shifted[i] = r3.Sub(pt, o.Position)
		}
		s, err := orbital.EvaluateOrbitalWith(p, o.Symbol, o.N, o.L, o.M, shifted)
		if err != nil {
			return nil, errDecorate(err, "CombineWith")
		}
		floats.Add(sup.bonding, s.Psi)
		sign := 1.0
		if idx%2 == 1 {
			sign = -1.0
		}
		floats.AddScaled(sup.antibonding, sign, s.Psi)
		//atomic accumulates |psi_i|^2; the square root is taken below
		for i, v := range s.Psi {
			sup.atomic[i] += v * v
		}
	}
	for i, v := range sup.atomic {
		sup.atomic[i] = math.Sqrt(v)
	}
	return sup, nil
}

//Blend returns the field for the linear atomic-to-hybrid interpolation
//psi = (1-mix)*atomic + mix*hybrid, with mix clamped to [0, 1]. mix = 0
//reproduces the atomic reference exactly and mix = 1 the pure hybrid; the
//derived channels are recomputed from the blended wavefunction.
func (s *Superposition) Blend(kind HybridKind, mix float64) *Field {
	if mix < 0 {
		mix = 0
	} else if mix > 1 {
		mix = 1
	}
	hybrid := s.bonding
	if kind == Antibonding {
		hybrid = s.antibonding
	}
	psi := make([]float64, len(hybrid))
	switch mix {
	case 0:
		copy(psi, s.atomic)
	case 1:
		copy(psi, hybrid)
	default:
		for i := range psi {
			psi[i] = (1-mix)*s.atomic[i] + mix*hybrid[i]
		}
	}
	return fieldFromPsi(s.Grid, psi)
}

func clampResolution(res int) int {
	if res < 2 {
		return 2
	}
	return res
}

//gridFromBounds builds a res^3 grid spanning [lo, hi] inclusive.
func gridFromBounds(lo, hi r3.Vec, res int) Grid {
	den := float64(res - 1)
	return Grid{
		Nx: res, Ny: res, Nz: res,
		Origin: lo,
		Spacing: r3.Vec{
			X: (hi.X - lo.X) / den,
			Y: (hi.Y - lo.Y) / den,
			Z: (hi.Z - lo.Z) / den,
		},
	}
}

//unionGrid covers every orbital's individual span, padded by the fixed
//margin. A degenerate axis (all orbitals coplanar with zero span, which
//cannot happen with the pad but is kept for safety) is widened by 1.
func unionGrid(orbs []PositionedOrbital, res int) Grid {
	inf := math.Inf(1)
	lo := r3.Vec{X: inf, Y: inf, Z: inf}
	hi := r3.Vec{X: -inf, Y: -inf, Z: -inf}
	for _, o := range orbs {
		nEff := o.N
		if nEff < 1 {
			nEff = 1
		}
		span := spanPerN * float64(nEff)
		lo.X = math.Min(lo.X, o.Position.X-span)
		lo.Y = math.Min(lo.Y, o.Position.Y-span)
		lo.Z = math.Min(lo.Z, o.Position.Z-span)
		hi.X = math.Max(hi.X, o.Position.X+span)
		hi.Y = math.Max(hi.Y, o.Position.Y+span)
		hi.Z = math.Max(hi.Z, o.Position.Z+span)
	}
	lo = r3.Sub(lo, r3.Vec{X: unionPad, Y: unionPad, Z: unionPad})
	hi = r3.Add(hi, r3.Vec{X: unionPad, Y: unionPad, Z: unionPad})
	if hi.X-lo.X < 1e-9 {
		lo.X, hi.X = lo.X-1, hi.X+1
	}
	if hi.Y-lo.Y < 1e-9 {
		lo.Y, hi.Y = lo.Y-1, hi.Y+1
	}
	if hi.Z-lo.Z < 1e-9 {
		lo.Z, hi.Z = lo.Z-1, hi.Z+1
	}
	return gridFromBounds(lo, hi, res)
}
