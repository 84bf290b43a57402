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

// Package transform implements the transforms which connect a color space
// to the reference space.
//
// All transforms implement the [ocio.Transform] interface:
//
//   - [Matrix]: a 4x4 matrix with an offset
//   - [Exponent]: a per-channel power function
//   - [Log]: a logarithm with a given base
//   - [CDL]: an ASC color decision list (slope, offset, power, saturation)
//   - [File]: a reference to an external look-up table file
//   - [Group]: a sequence of transforms
//   - [ICC]: an ICC profile
//
// The transforms in this package only describe the mapping.  They carry an
// orientation, so that a color space can store an inverted copy of a
// transform, but evaluation on pixel data is left to the processing code.
package transform
