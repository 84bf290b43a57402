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

package config

// ColorSpaceError reports a problem with a single color space in a config.
type ColorSpaceError struct {
	// Name is the name of the color space.
	Name string

	Err error
}

func (err *ColorSpaceError) Error() string {
	return "color space " + quote(err.Name) + ": " + err.Err.Error()
}

func (err *ColorSpaceError) Unwrap() error {
	return err.Err
}

func quote(s string) string {
	if s == "" {
		return "<unnamed>"
	}
	return `"` + s + `"`
}
