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

import "github.com/karidapink/ocio"

// Exponent raises each of the four channels to a power.
type Exponent struct {
	Value [4]float64
	Dir   ocio.TransformDirection
}

// Gamma returns a forward exponent transform which applies the same
// exponent to the color channels and leaves alpha unchanged.
func Gamma(g float64) *Exponent {
	return &Exponent{
		Value: [4]float64{g, g, g, 1},
		Dir:   ocio.TransformDirForward,
	}
}

func (t *Exponent) Direction() ocio.TransformDirection {
	return t.Dir
}

func (t *Exponent) SetDirection(dir ocio.TransformDirection) {
	t.Dir = dir
}

func (t *Exponent) EditableCopy() ocio.Transform {
	res := *t
	return &res
}

// Validate checks that the exponents are finite.  In inverse direction,
// the exponents must also be non-zero.
func (t *Exponent) Validate() error {
	for i, v := range t.Value {
		if !isFinite(v) {
			return newInvalidTransformError("Exponent", "Value", "entry %d is %g", i, v)
		}
		if v == 0 && t.Dir == ocio.TransformDirInverse {
			return newInvalidTransformError("Exponent", "Value", "entry %d is zero", i)
		}
	}
	return nil
}

func (t *Exponent) String() string {
	return "<ExponentTransform direction=" + t.Dir.String() +
		", value=" + formatFloats(t.Value[:]) + ">"
}
