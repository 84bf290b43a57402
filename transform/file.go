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
	"fmt"

	"github.com/karidapink/ocio"
)

// Interpolation selects how a look-up table is sampled between entries.
type Interpolation int

// These are the supported interpolation methods.
const (
	InterpUnknown Interpolation = iota
	InterpNearest
	InterpLinear
	InterpTetrahedral
	InterpBest
)

var interpolationNames = [...]string{
	InterpUnknown:     "unknown",
	InterpNearest:     "nearest",
	InterpLinear:      "linear",
	InterpTetrahedral: "tetrahedral",
	InterpBest:        "best",
}

func (i Interpolation) String() string {
	if i >= 0 && int(i) < len(interpolationNames) {
		return interpolationNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// ParseInterpolation converts the textual form of an interpolation
// method back to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	for i, name := range interpolationNames {
		if name == s {
			return Interpolation(i), nil
		}
	}
	return InterpUnknown, fmt.Errorf("unknown interpolation %q: %w", s, ocio.ErrInvalidArgument)
}

// File refers to a look-up table stored in an external file.
// The file is not read by this package.
type File struct {
	// Src is the path of the LUT file.
	Src string

	// CCCID selects a correction inside a color correction collection file.
	CCCID string

	Interpolation Interpolation
	Dir           ocio.TransformDirection
}

func (t *File) Direction() ocio.TransformDirection {
	return t.Dir
}

func (t *File) SetDirection(dir ocio.TransformDirection) {
	t.Dir = dir
}

func (t *File) EditableCopy() ocio.Transform {
	res := *t
	return &res
}

// Validate checks that a source file is given and that the interpolation
// method is known.
func (t *File) Validate() error {
	if t.Src == "" {
		return newInvalidTransformError("File", "Src", "missing file name")
	}
	if t.Interpolation < InterpUnknown || t.Interpolation > InterpBest {
		return newInvalidTransformError("File", "Interpolation", "invalid value %d", int(t.Interpolation))
	}
	return nil
}

func (t *File) String() string {
	return "<FileTransform direction=" + t.Dir.String() +
		", interpolation=" + t.Interpolation.String() +
		", src=" + t.Src +
		", cccid=" + t.CCCID + ">"
}
