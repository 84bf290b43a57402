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

import "fmt"

// ColorSpaceDirection selects one of the two transforms of a color space.
type ColorSpaceDirection int

// These are the valid color space directions.
// The zero value is not a valid direction.
const (
	DirUnknown ColorSpaceDirection = iota
	DirToReference
	DirFromReference
)

func (dir ColorSpaceDirection) String() string {
	switch dir {
	case DirToReference:
		return "to_reference"
	case DirFromReference:
		return "from_reference"
	case DirUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("ColorSpaceDirection(%d)", int(dir))
	}
}

// IsValid reports whether dir is DirToReference or DirFromReference.
func (dir ColorSpaceDirection) IsValid() bool {
	return dir == DirToReference || dir == DirFromReference
}

// Opposite returns the other direction.
// For invalid directions, DirUnknown is returned.
func (dir ColorSpaceDirection) Opposite() ColorSpaceDirection {
	switch dir {
	case DirToReference:
		return DirFromReference
	case DirFromReference:
		return DirToReference
	default:
		return DirUnknown
	}
}

// ParseColorSpaceDirection converts the textual form of a direction,
// as returned by [ColorSpaceDirection.String], back to a direction.
func ParseColorSpaceDirection(s string) (ColorSpaceDirection, error) {
	switch s {
	case "to_reference":
		return DirToReference, nil
	case "from_reference":
		return DirFromReference, nil
	}
	return DirUnknown, newInvalidArgument("ParseColorSpaceDirection",
		fmt.Sprintf("unknown color space direction %q", s))
}

// TransformDirection is the orientation of a transform.
type TransformDirection int

// These are the transform directions.
const (
	TransformDirUnknown TransformDirection = iota
	TransformDirForward
	TransformDirInverse
)

func (dir TransformDirection) String() string {
	switch dir {
	case TransformDirForward:
		return "forward"
	case TransformDirInverse:
		return "inverse"
	case TransformDirUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("TransformDirection(%d)", int(dir))
	}
}

// ParseTransformDirection converts "forward" and "inverse" to the
// corresponding transform direction.
func ParseTransformDirection(s string) (TransformDirection, error) {
	switch s {
	case "forward":
		return TransformDirForward, nil
	case "inverse":
		return TransformDirInverse, nil
	}
	return TransformDirUnknown, newInvalidArgument("ParseTransformDirection",
		fmt.Sprintf("unknown transform direction %q", s))
}

// InverseTransformDirection returns the opposite orientation of dir.
// Forward and inverse are swapped; everything else maps to
// TransformDirUnknown.
func InverseTransformDirection(dir TransformDirection) TransformDirection {
	switch dir {
	case TransformDirForward:
		return TransformDirInverse
	case TransformDirInverse:
		return TransformDirForward
	default:
		return TransformDirUnknown
	}
}
