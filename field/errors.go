/*
 * errors.go, part of orbfield.
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

import orbital "github.com/orbsim/orbfield"

//Error implements orbital.Error for the field package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err *Error) Error() string { return err.message }

//Decorate adds dec to the decoration trail of the error and returns the
//resulting trail.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error can be ignored.
func (err *Error) Critical() bool { return err.critical }

//ErrNoField signals a combination request with zero visible orbitals. It is
//not critical: the caller is expected to present a domain-empty state
//instead of crashing.
var ErrNoField = &Error{message: "orbfield/field: no visible orbitals to combine", critical: false}

//errDecorate asserts that err implements orbital.Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(orbital.Error)
	err2.Decorate(caller)
	return err2
}
