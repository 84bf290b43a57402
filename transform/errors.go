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

package transform

import "fmt"

// InvalidTransformError is returned when the parameters of a transform are
// invalid.
type InvalidTransformError struct {
	Kind    string
	Field   string
	Message string
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("%s transform invalid %s: %s", e.Kind, e.Field, e.Message)
}

func (e *InvalidTransformError) Is(target error) bool {
	_, ok := target.(*InvalidTransformError)
	return ok
}

func newInvalidTransformError(kind, field, format string, args ...any) *InvalidTransformError {
	return &InvalidTransformError{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
