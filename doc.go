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

// Package ocio models named color spaces for a color management system.
//
// A [ColorSpace] is connected to a shared reference space by a pair of
// directional transforms: one mapping the color space to the reference
// space, and one mapping the reference space back to the color space.
// Most color spaces are authored with only one of these.  When a transform
// is set for one direction and the other direction has not been set
// explicitly, the color space stores an inverted copy of the transform for
// the other direction:
//
//	cs := ocio.NewColorSpace()
//	cs.SetName("lg10")
//	err := cs.SetTransform(ocio.DirToReference, &transform.Log{Base: 10})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	back, _ := cs.Transform(ocio.DirFromReference) // inverse of the log
//
// [ColorSpace.IsTransformSpecified] tells explicitly authored transforms
// apart from inferred ones.
//
// Transforms are stored as private copies.  A ColorSpace is not safe for
// concurrent use; use [ColorSpace.EditableCopy] to obtain an independent
// instance before handing a color space to another goroutine.
//
// The transforms themselves are implemented in the sub-package transform,
// and the sub-package config implements a registry of named color spaces.
package ocio
