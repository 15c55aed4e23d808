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

package orbital

// Error is the interface for errors that all orbfield packages implement. The Decorate
// method allows to add and retrieve info from the error as it travels up the calling
// stack, without changing its type or wrapping it around something else. If passed an
// empty string it just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//CError is the concrete error for this package. Almost everything in orbital
//clamps or degrades instead of failing (see the package doc), so a CError
//virtually always means non-numeric (NaN/Inf) input slipped to the API boundary,
//which would otherwise silently corrupt every sort-based accumulation downstream.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds dec to the decoration trail of the error and returns the
//resulting trail.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error can be ignored. Every CError is critical:
//the non-critical conditions never become errors in the first place.
func (err *CError) Critical() bool { return true }

//errDecorate asserts that err implements orbital.Error and decorates it with
//the caller's name before returning it. Used with any other error type it will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It satisfies the error interface,
//but for returned errors use Error/CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilPoints      = PanicMsg("orbfield: nil point set given")
	ErrLengthMismatch = PanicMsg("orbfield: theta and phi slices must have the same length")
)
