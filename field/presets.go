/*
 * presets.go, part of orbfield.
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

import "gonum.org/v1/gonum/spatial/r3"

//ExampleMolecule returns a fresh copy of a named preset orbital arrangement,
//or nil if the name is unknown. ExampleMoleculeNames lists what is
//available. Geometries are approximate textbook values in Angstroms,
//adequate for teaching visuals, not for quantitative work.
func ExampleMolecule(name string) []PositionedOrbital {
	src, ok := exampleMolecules[name]
	if !ok {
		return nil
	}
	out := make([]PositionedOrbital, len(src))
	copy(out, src)
	return out
}

//ExampleMoleculeNames returns the preset names, in no particular order.
func ExampleMoleculeNames() []string {
	names := make([]string, 0, len(exampleMolecules))
	for k := range exampleMolecules {
		names = append(names, k)
	}
	return names
}

var exampleMolecules = map[string][]PositionedOrbital{
	"H2 (covalent)": {
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -0.37}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 0.37}),
	},
	"H2O (covalent)": {
		NewPositionedOrbital("O", 2, 1, 0, r3.Vec{}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 0.756, Y: 0.587}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -0.756, Y: 0.587}),
	},
	"CH4 (covalent)": {
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 0.629, Y: 0.629, Z: 0.629}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 0.629, Y: -0.629, Z: -0.629}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -0.629, Y: 0.629, Z: -0.629}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -0.629, Y: -0.629, Z: 0.629}),
	},
	"CO2 (covalent)": {
		NewPositionedOrbital("O", 2, 1, 0, r3.Vec{Z: -1.16}),
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{}),
		NewPositionedOrbital("O", 2, 1, 0, r3.Vec{Z: 1.16}),
	},
	"NaCl (ionic)": {
		NewPositionedOrbital("Na", 3, 0, 0, r3.Vec{X: -1.18}),
		NewPositionedOrbital("Cl", 3, 1, 0, r3.Vec{X: 1.18}),
	},
	"HF (polar covalent)": {
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -0.462}),
		NewPositionedOrbital("F", 2, 1, 0, r3.Vec{}),
	},
	"Ethene C2H4 (pi bond)": {
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: -0.67}),
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: 0.67}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -1.23, Y: 0.93}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -1.23, Y: -0.93}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 1.23, Y: 0.93}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 1.23, Y: -0.93}),
	},
	"Acetylene C2H2 (pi bond)": {
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: -0.6}),
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: 0.6}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -1.68}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 1.68}),
	},
	"Benzene C6H6 (delocalized pi)": {
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: 1.40}),
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: 0.70, Y: 1.21}),
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: -0.70, Y: 1.21}),
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: -1.40}),
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: -0.70, Y: -1.21}),
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: 0.70, Y: -1.21}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 2.48}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 1.24, Y: 2.15}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -1.24, Y: 2.15}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -2.48}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: -1.24, Y: -2.15}),
		NewPositionedOrbital("H", 1, 0, 0, r3.Vec{X: 1.24, Y: -2.15}),
	},
	"CO (polar sigma)": {
		NewPositionedOrbital("C", 2, 1, 0, r3.Vec{X: -0.55}),
		NewPositionedOrbital("O", 2, 1, 0, r3.Vec{X: 0.55}),
	},
}
