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

// Allocation describes how the values of a color space should be
// normalized before they are processed on hardware with a limited range,
// for example when a GPU texture is allocated.
//
// The meaning of the allocation variables of a color space (see
// [ColorSpace.AllocationVars]) depends on the allocation.  For
// AllocationUniform these are the minimum and maximum value, for
// AllocationLG2 the minimum and maximum log2 value and an optional
// linear offset.
type Allocation int

// These are the supported allocations.
const (
	AllocationUnknown Allocation = iota
	AllocationUniform
	AllocationLG2
)

func (a Allocation) String() string {
	switch a {
	case AllocationUnknown:
		return "unknown"
	case AllocationUniform:
		return "uniform"
	case AllocationLG2:
		return "lg2"
	default:
		return fmt.Sprintf("Allocation(%d)", int(a))
	}
}

// ParseAllocation converts "uniform" and "lg2" to the corresponding
// allocation.
func ParseAllocation(s string) (Allocation, error) {
	switch s {
	case "uniform":
		return AllocationUniform, nil
	case "lg2":
		return AllocationLG2, nil
	case "unknown":
		return AllocationUnknown, nil
	}
	return AllocationUnknown, newInvalidArgument("ParseAllocation",
		fmt.Sprintf("unknown allocation %q", s))
}
