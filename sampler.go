/*
 * sampler.go, part of orbfield.
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

//sampler.go holds the single evaluation primitive of the library: every
//grid, hybrid and slice computation in the field subpackage funnels each of
//its points through EvaluateOrbital.

package orbital

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

//originGuard keeps the theta = acos(z/r) conversion defined at the nucleus,
//where r vanishes.
const originGuard = 1e-9

//Sample holds the four scalar channels produced by evaluating an orbital on
//a point set. The invariants Amplitude[i] == |Psi[i]| and Probability[i] ==
//Amplitude[i]^2 hold pointwise. The hydrogenic forms evaluated here are
//real, so Phase[i] is the sign-encoded angle: 0 where Psi is non-negative
//and pi where it is negative.
type Sample struct {
	Psi         []float64
	Amplitude   []float64
	Phase       []float64
	Probability []float64
}

//Len returns the number of sampled points.
func (s *Sample) Len() int {
	return len(s.Psi)
}

//EvaluateOrbital evaluates the hydrogenic wavefunction psi = R_nl * Y_lm of
//the given element at every point of a nucleus-centered Cartesian point set,
//in Angstroms, and returns the four derived scalar channels. The quantum
//numbers are normalized first (see Normalize), so any integers are accepted.
//The only error condition is non-numeric input: NaN or Inf coordinates are
//rejected here, at the boundary, instead of being allowed to corrupt the
//sort-based accumulations downstream.
//The evaluation is pure and deterministic; point order is preserved. Work is
//split among CPUs, as point evaluations are independent and sets of up to
//200^3 points are expected.
func EvaluateOrbital(symbol string, n, l, m int, points []r3.Vec) (*Sample, error) {
	s, err := EvaluateOrbitalWith(RecurrenceLegendre{}, symbol, n, l, m, points)
	if err != nil {
		return nil, errDecorate(err, "EvaluateOrbital")
	}
	return s, nil
}

//EvaluateOrbitalWith is EvaluateOrbital with an explicit Legendre provider.
func EvaluateOrbitalWith(p LegendreProvider, symbol string, n, l, m int, points []r3.Vec) (*Sample, error) {
	if points == nil {
		panic(ErrNilPoints)
	}
	st := NormalizeFor(symbol, n, l, m)
	if i, bad := firstNonFinite(points); bad {
		return nil, &CError{msg: fmt.Sprintf("orbfield: non-numeric (NaN/Inf) coordinates at point %d", i), deco: []string{"EvaluateOrbitalWith"}}
	}
	s := &Sample{
		Psi:         make([]float64, len(points)),
		Amplitude:   make([]float64, len(points)),
		Phase:       make([]float64, len(points)),
		Probability: make([]float64, len(points)),
	}
	h := newHarmonic(p, st.L, st.M)
	parallelOver(len(points), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			pt := points[i]
			r := math.Sqrt(pt.X*pt.X + pt.Y*pt.Y + pt.Z*pt.Z)
			cosTheta := pt.Z / (r + originGuard)
			if cosTheta > 1 {
				cosTheta = 1
			} else if cosTheta < -1 {
				cosTheta = -1
			}
			theta := math.Acos(cosTheta)
			phi := math.Atan2(pt.Y, pt.X)
			psi := RadialAt(st.N, st.L, r/Bohr) * h.at(theta, phi)
			amp := math.Abs(psi)
			s.Psi[i] = psi
			s.Amplitude[i] = amp
			if psi < 0 {
				s.Phase[i] = math.Pi
			}
			s.Probability[i] = amp * amp
		}
	})
	return s, nil
}

//firstNonFinite returns the index of the first point with a NaN or Inf
//coordinate, if any.
func firstNonFinite(points []r3.Vec) (int, bool) {
	for i, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) || !finite(pt.Z) {
			return i, true
		}
	}
	return 0, false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

//parallelOver runs fn over [0, n) split in contiguous chunks, one per CPU.
//No ordering is guaranteed among chunks; fn ranges must not overlap.
func parallelOver(n int, fn func(lo, hi int)) {
	workers := runtime.NumCPU()
	if workers > n {
		workers = 1
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
