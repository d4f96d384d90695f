/*
 * errors.go, part of physconst.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package physconst

import "fmt"

// Error is the error type returned by this library. The Decorate method
// allows to add and retrieve info from the error, without changing its type
// or wrapping it around something else.
type Error struct {
	message string
	deco    []string
	unknown bool //true if the error comes from a lookup on an unregistered name
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the
// error, and return the resulting slice. If dec is empty, it only returns
// the current decoration.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// IsUnknownConstant returns true if err comes from looking up a name
// that is not registered.
func IsUnknownConstant(err error) bool {
	err2, ok := err.(Error)
	return ok && err2.unknown
}

func unknownConstant(name string) Error {
	return Error{message: fmt.Sprintf("physconst: unknown constant: %q", name), unknown: true}
}

// errDecorate is a helper function that asserts that the error implements
// the Decorate method and decorates the error with the caller's name before
// returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics, even though it does satisfy the
// error interface. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrZeroFactor = PanicMsg("physconst: target unit conversion factor must be non-zero")
	ErrBadTable   = PanicMsg("physconst: embedded CODATA table is malformed")
)
