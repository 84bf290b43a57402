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

// CDL is an ASC color decision list.  In forward direction, each color
// channel is mapped to (x·Slope + Offset)^Power, followed by a saturation
// adjustment.
type CDL struct {
	Slope  [3]float64
	Offset [3]float64
	Power  [3]float64
	Sat    float64

	// ID optionally identifies the correction within a collection.
	ID string

	Dir ocio.TransformDirection
}

// NewCDL returns the identity CDL in forward direction.
func NewCDL() *CDL {
	return &CDL{
		Slope: [3]float64{1, 1, 1},
		Power: [3]float64{1, 1, 1},
		Sat:   1,
		Dir:   ocio.TransformDirForward,
	}
}

func (t *CDL) Direction() ocio.TransformDirection {
	return t.Dir
}

func (t *CDL) SetDirection(dir ocio.TransformDirection) {
	t.Dir = dir
}

func (t *CDL) EditableCopy() ocio.Transform {
	res := *t
	return &res
}

// Validate checks that slopes, powers and saturation are finite and
// non-negative, and that the offsets are finite.
func (t *CDL) Validate() error {
	for i := range 3 {
		if !isFinite(t.Slope[i]) || t.Slope[i] < 0 {
			return newInvalidTransformError("CDL", "Slope", "entry %d is %g", i, t.Slope[i])
		}
		if !isFinite(t.Offset[i]) {
			return newInvalidTransformError("CDL", "Offset", "entry %d is %g", i, t.Offset[i])
		}
		if !isFinite(t.Power[i]) || t.Power[i] < 0 {
			return newInvalidTransformError("CDL", "Power", "entry %d is %g", i, t.Power[i])
		}
	}
	if !isFinite(t.Sat) || t.Sat < 0 {
		return newInvalidTransformError("CDL", "Sat", "invalid saturation %g", t.Sat)
	}
	return nil
}

func (t *CDL) String() string {
	return "<CDLTransform direction=" + t.Dir.String() +
		", id=" + t.ID +
		", slope=" + formatFloats(t.Slope[:]) +
		", offset=" + formatFloats(t.Offset[:]) +
		", power=" + formatFloats(t.Power[:]) +
		", sat=" + strconv.FormatFloat(t.Sat, 'g', -1, 64) + ">"
}
