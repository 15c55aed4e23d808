/*
 * atomicdata.go, part of orbfield.
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

//A map for assigning atomic numbers to elements.
//Only elements up to Kr are present, which covers everything the
//visualizations care about.
var symbolAtomicNumber = map[string]int{
	"H": 1, "He": 2,
	"Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Ne": 10,
	"Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Sc": 21, "Ti": 22, "V": 23, "Cr": 24, "Mn": 25, "Fe": 26,
	"Co": 27, "Ni": 28, "Cu": 29, "Zn": 30, "Ga": 31, "Ge": 32, "As": 33,
	"Se": 34, "Br": 35, "Kr": 36,
}

//Valence (n, l) defaults per element, through period 3. Anything unlisted
//falls back to (2, 0).
var symbolValence = map[string][2]int{
	"H": {1, 0}, "He": {1, 0},
	"Li": {2, 0}, "Be": {2, 0},
	"B": {2, 1}, "C": {2, 1}, "N": {2, 1}, "O": {2, 1}, "F": {2, 1}, "Ne": {2, 1},
	"Na": {3, 0}, "Mg": {3, 0},
	"Al": {3, 1}, "Si": {3, 1}, "P": {3, 1}, "S": {3, 1}, "Cl": {3, 1}, "Ar": {3, 1},
}

//Aufbau filling order with capacities for the s, p, d and f subshells.
var subshellOrder = [][3]int{
	{1, 0, 2},
	{2, 0, 2},
	{2, 1, 6},
	{3, 0, 2},
	{3, 1, 6},
	{4, 0, 2},
	{3, 2, 10},
	{4, 1, 6},
	{5, 0, 2},
	{4, 2, 10},
	{5, 1, 6},
	{6, 0, 2},
	{4, 3, 14},
	{5, 2, 10},
	{6, 1, 6},
	{7, 0, 2},
}

//Ground-state aufbau exceptions for the neutral atoms we tabulate.
//The adjustment moves electrons between (n, l) subshells after plain filling.
var aufbauExceptions = map[int]map[[2]int]int{
	24: {{4, 0}: -1, {3, 2}: 1}, //Cr
	29: {{4, 0}: -1, {3, 2}: 1}, //Cu
}

//AtomicNumber returns the atomic number for an element symbol, or 0 if the
//symbol is not tabulated.
func AtomicNumber(symbol string) int {
	return symbolAtomicNumber[symbol]
}

//DefaultQuantumNumbers returns the valence-orbital (n, l) default for an
//element symbol. Elements beyond period 3, or unknown symbols, get (2, 0).
//Like everything quantum-number related, this function is total: there are
//no error conditions.
func DefaultQuantumNumbers(symbol string) (n, l int) {
	if v, ok := symbolValence[symbol]; ok {
		return v[0], v[1]
	}
	return 2, 0
}

//OccupiedOrbitals returns the (n, l, m) states holding at least one electron
//in the neutral ground-state atom, in aufbau filling order. Within a subshell
//the m values are taken in -l..l order, one orbital per electron until the
//subshell is half filled. Unknown symbols return nil.
func OccupiedOrbitals(symbol string) []QuantumState {
	z := AtomicNumber(symbol)
	if z == 0 {
		return nil
	}
	counts := make(map[[2]int]int, len(subshellOrder))
	var filled [][2]int
	left := z
	for _, sub := range subshellOrder {
		if left <= 0 {
			break
		}
		nl := [2]int{sub[0], sub[1]}
		take := sub[2]
		if take > left {
			take = left
		}
		counts[nl] = take
		filled = append(filled, nl)
		left -= take
	}
	if adj, ok := aufbauExceptions[z]; ok {
		for nl, delta := range adj {
			counts[nl] += delta
			if counts[nl] > 0 && !containsNL(filled, nl) {
				filled = append(filled, nl)
			}
		}
	}
	var states []QuantumState
	for _, nl := range filled {
		e := counts[nl]
		if e <= 0 {
			continue
		}
		n, l := nl[0], nl[1]
		degeneracy := 2*l + 1
		occupied := e
		if occupied > degeneracy {
			occupied = degeneracy
		}
		for i := 0; i < occupied; i++ {
			states = append(states, QuantumState{N: n, L: l, M: -l + i})
		}
	}
	return states
}

func containsNL(list [][2]int, nl [2]int) bool {
	for _, v := range list {
		if v == nl {
			return true
		}
	}
	return false
}
