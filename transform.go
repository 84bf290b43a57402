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

// ConstTransform is the read-only view of a transform.
//
// Transforms map between a color space and the reference space.  The
// concrete transform types live in the sub-package transform; this package
// never evaluates a transform.
type ConstTransform interface {
	// Direction returns the orientation of the transform.
	Direction() TransformDirection

	// EditableCopy returns an independent copy of the transform.
	// Changes to the copy do not affect the original, and vice versa.
	EditableCopy() Transform

	// String returns a human readable description of the transform.
	String() string
}

// Transform is a transform which can be modified.
type Transform interface {
	ConstTransform

	// SetDirection changes the orientation of the transform.
	SetDirection(dir TransformDirection)
}
