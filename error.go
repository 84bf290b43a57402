// ocio - color space management for Go
// Copyright (C) 2026  The ocio Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ocio

import (
	"errors"
)

// ErrInvalidArgument is matched (using [errors.Is]) by all errors which
// report an argument outside the accepted range, for example a color space
// direction which is neither [DirToReference] nor [DirFromReference].
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError gives details about an invalid argument.
type InvalidArgumentError struct {
	// Op is the name of the operation which rejected the argument.
	Op string

	// Msg describes the problem.
	Msg string
}

func (err *InvalidArgumentError) Error() string {
	if err.Op == "" {
		return "invalid argument: " + err.Msg
	}
	return err.Op + ": invalid argument: " + err.Msg
}

// Is reports whether target is [ErrInvalidArgument] or another
// InvalidArgumentError.
func (err *InvalidArgumentError) Is(target error) bool {
	if target == ErrInvalidArgument {
		return true
	}
	_, ok := target.(*InvalidArgumentError)
	return ok
}

func newInvalidArgument(op, msg string) error {
	return &InvalidArgumentError{Op: op, Msg: msg}
}
