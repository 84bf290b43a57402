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

// BitDepth is the nominal sample format of the data in a color space.
type BitDepth int

// These are the supported bit depths.
const (
	BitDepthUnknown BitDepth = iota
	BitDepthUInt8
	BitDepthUInt10
	BitDepthUInt12
	BitDepthUInt14
	BitDepthUInt16
	BitDepthUInt32
	BitDepthF16
	BitDepthF32
)

var bitDepthNames = [...]string{
	BitDepthUnknown: "unknown",
	BitDepthUInt8:   "8ui",
	BitDepthUInt10:  "10ui",
	BitDepthUInt12:  "12ui",
	BitDepthUInt14:  "14ui",
	BitDepthUInt16:  "16ui",
	BitDepthUInt32:  "32ui",
	BitDepthF16:     "16f",
	BitDepthF32:     "32f",
}

func (b BitDepth) String() string {
	if b >= 0 && int(b) < len(bitDepthNames) {
		return bitDepthNames[b]
	}
	return fmt.Sprintf("BitDepth(%d)", int(b))
}

// IsFloat reports whether b is one of the floating point formats.
func (b BitDepth) IsFloat() bool {
	return b == BitDepthF16 || b == BitDepthF32
}

// ParseBitDepth converts the textual form of a bit depth, as returned by
// [BitDepth.String], back to a BitDepth.
func ParseBitDepth(s string) (BitDepth, error) {
	for i, name := range bitDepthNames {
		if name == s {
			return BitDepth(i), nil
		}
	}
	return BitDepthUnknown, newInvalidArgument("ParseBitDepth",
		fmt.Sprintf("unknown bit depth %q", s))
}
