/*
 * quantum.go, part of orbfield.
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

import "fmt"

//QuantumState is a normalized (n, l, m) triple. Build one through Normalize
//rather than by hand, so the invariants n>=1, 0<=l<n and |m|<=l always hold
//before any evaluation.
type QuantumState struct {
	N int
	L int
	M int
}

//String returns the spectroscopic label of the state, e.g. "2p (m=0)".
func (q QuantumState) String() string {
	return fmt.Sprintf("%d%s (m=%d)", q.N, subshellLabel(q.L), q.M)
}

func subshellLabel(l int) string {
	labels := []string{"s", "p", "d", "f", "g", "h"}
	if l >= 0 && l < len(labels) {
		return labels[l]
	}
	return fmt.Sprintf("l%d", l)
}

//Normalize clamps an arbitrary integer triple to the nearest valid quantum
//state: n to at least 1, l to [0, n-1] and m to [-l, l]. It is total over all
//integer inputs and idempotent. Nothing is ever rejected; silent correction
//is the library-wide policy for quantum numbers.
func Normalize(n, l, m int) QuantumState {
	if n < 1 {
		n = 1
	}
	if l < 0 {
		l = 0
	}
	if l > n-1 {
		l = n - 1
	}
	if m > l {
		m = l
	}
	if m < -l {
		m = -l
	}
	return QuantumState{N: n, L: l, M: m}
}

//NormalizeFor clamps (n, l, m) like Normalize, after substituting the
//element's valence defaults for non-positive n. It mirrors what the orbital
//picker dialogs do when an element is selected before the numbers are set.
func NormalizeFor(symbol string, n, l, m int) QuantumState {
	if n < 1 {
		n, l = DefaultQuantumNumbers(symbol)
	}
	return Normalize(n, l, m)
}
