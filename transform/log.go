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

import (
	"strconv"

	"github.com/karidapink/ocio"
)

// Log maps x to log_Base(x) in forward direction, and x to Base^x in
// inverse direction.
type Log struct {
	Base float64
	Dir  ocio.TransformDirection
}

func (t *Log) Direction() ocio.TransformDirection {
	return t.Dir
}

func (t *Log) SetDirection(dir ocio.TransformDirection) {
	t.Dir = dir
}

func (t *Log) EditableCopy() ocio.Transform {
	res := *t
	return &res
}

// Validate checks that the base is positive, finite and different from 1.
func (t *Log) Validate() error {
	if !isFinite(t.Base) || t.Base <= 0 || t.Base == 1 {
		return newInvalidTransformError("Log", "Base", "invalid base %g", t.Base)
	}
	return nil
}

func (t *Log) String() string {
	return "<LogTransform direction=" + t.Dir.String() +
		", base=" + strconv.FormatFloat(t.Base, 'g', -1, 64) + ">"
}
