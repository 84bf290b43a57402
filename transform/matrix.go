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
	"golang.org/x/image/math/f64"

	"github.com/karidapink/ocio"
)

// Matrix is an affine transform of RGBA values.  In forward direction it
// maps a color c to M·c + Offset, where M is stored in row-major order.
type Matrix struct {
	M      f64.Mat4
	Offset f64.Vec4
	Dir    ocio.TransformDirection
}

// Identity returns the identity matrix transform in forward direction.
func Identity() *Matrix {
	return &Matrix{
		M: f64.Mat4{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		},
		Dir: ocio.TransformDirForward,
	}
}

// FromMat3 returns a forward matrix transform which applies the 3x3 matrix
// m to the RGB channels and leaves alpha unchanged.
func FromMat3(m f64.Mat3) *Matrix {
	return &Matrix{
		M: f64.Mat4{
			m[0], m[1], m[2], 0,
			m[3], m[4], m[5], 0,
			m[6], m[7], m[8], 0,
			0, 0, 0, 1,
		},
		Dir: ocio.TransformDirForward,
	}
}

// SRGBToXYZ returns a forward matrix transform from linear sRGB to CIE XYZ,
// relative to the D65 white point.
func SRGBToXYZ() *Matrix {
	return FromMat3(f64.Mat3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	})
}

// Direction returns the orientation of the transform.
// This implements the [ocio.ConstTransform] interface.
func (t *Matrix) Direction() ocio.TransformDirection {
	return t.Dir
}

// SetDirection changes the orientation of the transform.
// This implements the [ocio.Transform] interface.
func (t *Matrix) SetDirection(dir ocio.TransformDirection) {
	t.Dir = dir
}

// EditableCopy returns a copy of the transform.
// This implements the [ocio.ConstTransform] interface.
func (t *Matrix) EditableCopy() ocio.Transform {
	res := *t
	return &res
}

// Validate checks that all matrix and offset entries are finite.
func (t *Matrix) Validate() error {
	if i := firstNonFinite(t.M[:]); i >= 0 {
		return newInvalidTransformError("Matrix", "M", "entry %d is %g", i, t.M[i])
	}
	if i := firstNonFinite(t.Offset[:]); i >= 0 {
		return newInvalidTransformError("Matrix", "Offset", "entry %d is %g", i, t.Offset[i])
	}
	return nil
}

func (t *Matrix) String() string {
	return "<MatrixTransform direction=" + t.Dir.String() +
		", matrix=" + formatFloats(t.M[:]) +
		", offset=" + formatFloats(t.Offset[:]) + ">"
}
