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

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ColorSpace is a named color space, together with the transforms which
// connect it to the reference space.
//
// For each of the two directions, a ColorSpace records whether the
// transform was set explicitly using [ColorSpace.SetTransform].  If only one
// direction was set, the other direction holds an inverted copy of that
// transform (the inferred transform).  If neither direction was set, both
// transforms are nil.
//
// The zero value is not ready for use; use [NewColorSpace].
type ColorSpace struct {
	name        string
	family      string
	description string

	bitDepth BitDepth
	isData   bool

	allocation     Allocation
	allocationVars []float64

	toRef   Transform
	fromRef Transform

	toRefSpecified   bool
	fromRefSpecified bool
}

// NewColorSpace returns a new, empty color space.
// The bit depth is unknown, the allocation is uniform and there are no
// transforms.
func NewColorSpace() *ColorSpace {
	return &ColorSpace{
		bitDepth:   BitDepthUnknown,
		allocation: AllocationUniform,
	}
}

// EditableCopy returns a copy of the color space.  All transforms are copied
// as well, so that the copy does not share any mutable state with cs.
func (cs *ColorSpace) EditableCopy() *ColorSpace {
	res := &ColorSpace{
		name:             cs.name,
		family:           cs.family,
		description:      cs.description,
		bitDepth:         cs.bitDepth,
		isData:           cs.isData,
		allocation:       cs.allocation,
		allocationVars:   slices.Clone(cs.allocationVars),
		toRefSpecified:   cs.toRefSpecified,
		fromRefSpecified: cs.fromRefSpecified,
	}
	if cs.toRef != nil {
		res.toRef = cs.toRef.EditableCopy()
	}
	if cs.fromRef != nil {
		res.fromRef = cs.fromRef.EditableCopy()
	}
	return res
}

// Name returns the name of the color space.
func (cs *ColorSpace) Name() string {
	return cs.name
}

// SetName sets the name of the color space.
func (cs *ColorSpace) SetName(name string) {
	cs.name = name
}

// Family returns the family of the color space.
// This is a free-form label used to group color spaces.
func (cs *ColorSpace) Family() string {
	return cs.family
}

// SetFamily sets the family of the color space.
func (cs *ColorSpace) SetFamily(family string) {
	cs.family = family
}

// Description returns the free-form description of the color space.
func (cs *ColorSpace) Description() string {
	return cs.description
}

// SetDescription sets the description of the color space.
func (cs *ColorSpace) SetDescription(description string) {
	cs.description = description
}

// BitDepth returns the nominal bit depth of the color space.
func (cs *ColorSpace) BitDepth() BitDepth {
	return cs.bitDepth
}

// SetBitDepth sets the nominal bit depth of the color space.
func (cs *ColorSpace) SetBitDepth(bitDepth BitDepth) {
	cs.bitDepth = bitDepth
}

// IsData reports whether the color space holds non-color data, for example
// masks or normals.  Such data must not be touched by color transforms.
func (cs *ColorSpace) IsData() bool {
	return cs.isData
}

// SetIsData marks the color space as holding non-color data.
func (cs *ColorSpace) SetIsData(isData bool) {
	cs.isData = isData
}

// Allocation returns the allocation hint of the color space.
func (cs *ColorSpace) Allocation() Allocation {
	return cs.allocation
}

// SetAllocation sets the allocation hint of the color space.
func (cs *ColorSpace) SetAllocation(allocation Allocation) {
	cs.allocation = allocation
}

// NumAllocationVars returns the number of allocation variables.
func (cs *ColorSpace) NumAllocationVars() int {
	return len(cs.allocationVars)
}

// AllocationVars returns a copy of the allocation variables.
// The number of variables is not checked against the allocation.
func (cs *ColorSpace) AllocationVars() []float64 {
	return slices.Clone(cs.allocationVars)
}

// SetAllocationVars replaces the allocation variables.
// The values are copied.  Calling SetAllocationVars without arguments
// removes all allocation variables.
func (cs *ColorSpace) SetAllocationVars(vars ...float64) {
	if len(vars) == 0 {
		cs.allocationVars = nil
		return
	}
	cs.allocationVars = slices.Clone(vars)
}

// slots returns pointers to the transform and the specified flag for dir.
func (cs *ColorSpace) slots(op string, dir ColorSpaceDirection) (*Transform, *bool, error) {
	switch dir {
	case DirToReference:
		return &cs.toRef, &cs.toRefSpecified, nil
	case DirFromReference:
		return &cs.fromRef, &cs.fromRefSpecified, nil
	default:
		return nil, nil, newInvalidArgument(op,
			fmt.Sprintf("unspecified color space direction %d", int(dir)))
	}
}

// Transform returns the transform for the given direction.
// The result is nil if no transform is available for this direction.
//
// The returned transform may either have been set explicitly, or it may
// have been inferred from the transform of the opposite direction.  Use
// [ColorSpace.IsTransformSpecified] to distinguish these cases.
func (cs *ColorSpace) Transform(dir ColorSpaceDirection) (ConstTransform, error) {
	t, _, err := cs.slots("Transform", dir)
	if err != nil {
		return nil, err
	}
	if *t == nil {
		return nil, nil
	}
	return *t, nil
}

// EditableTransform returns the stored transform for the given direction,
// without copying it.  Changes to the returned transform modify the color
// space.  The transform for the opposite direction is not updated.
func (cs *ColorSpace) EditableTransform(dir ColorSpaceDirection) (Transform, error) {
	t, _, err := cs.slots("EditableTransform", dir)
	if err != nil {
		return nil, err
	}
	return *t, nil
}

// IsTransformSpecified reports whether the transform for the given
// direction was set explicitly, rather than inferred from the opposite
// direction.
func (cs *ColorSpace) IsTransformSpecified(dir ColorSpaceDirection) (bool, error) {
	_, specified, err := cs.slots("IsTransformSpecified", dir)
	if err != nil {
		return false, err
	}
	return *specified, nil
}

// SetTransform sets the transform for the given direction.
//
// The color space stores a copy of t.  If the opposite direction has not
// been set explicitly, a second copy of t with the inverse orientation is
// stored for the opposite direction.  If the opposite direction has been
// set explicitly, it is left unchanged.
//
// If t is nil, the transform for dir is removed.  In this case, an
// inferred transform for the opposite direction is removed as well.
// A non-nil interface holding a nil pointer is rejected, and the color
// space is left unchanged.
func (cs *ColorSpace) SetTransform(dir ColorSpaceDirection, t ConstTransform) error {
	major, majorSpecified, err := cs.slots("SetTransform", dir)
	if err != nil {
		return err
	}
	if t != nil && isNilValue(t) {
		return newInvalidArgument("SetTransform", fmt.Sprintf("nil %T", t))
	}
	minor, minorSpecified, _ := cs.slots("SetTransform", dir.Opposite())

	if t == nil {
		*major = nil
		*majorSpecified = false
		if !*minorSpecified && *minor != nil {
			*minor = nil
			Logger().Debug("inferred transform removed",
				"colorspace", cs.name, "direction", dir.Opposite())
		}
		return nil
	}

	*major = t.EditableCopy()
	*majorSpecified = true

	if !*minorSpecified {
		inv := t.EditableCopy()
		inv.SetDirection(InverseTransformDirection((*major).Direction()))
		*minor = inv
		Logger().Debug("inverse transform inferred",
			"colorspace", cs.name, "direction", dir.Opposite(),
			"orientation", inv.Direction())
	}
	return nil
}

// String returns a human readable description of the color space.
// Only transforms which were set explicitly are included.
func (cs *ColorSpace) String() string {
	b := &strings.Builder{}
	b.WriteString("<ColorSpace ")
	b.WriteString("name=" + cs.name + ", ")
	b.WriteString("family=" + cs.family + ", ")
	b.WriteString("bitDepth=" + cs.bitDepth.String() + ", ")
	b.WriteString("isData=" + strconv.FormatBool(cs.isData) + ", ")
	b.WriteString("allocation=" + cs.allocation.String() + ", ")
	b.WriteString(">\n")

	if cs.toRefSpecified && cs.toRef != nil {
		b.WriteString("\t" + cs.name + " --> Reference\n")
		b.WriteString(cs.toRef.String())
		b.WriteString("\n")
	}
	if cs.fromRefSpecified && cs.fromRef != nil {
		b.WriteString("\tReference --> " + cs.name + "\n")
		b.WriteString(cs.fromRef.String())
		b.WriteString("\n")
	}
	return b.String()
}

// ColorSpacesEqual reports whether two color spaces have the same fields,
// the same allocation variables, the same specified flags and equal
// transforms.  Transforms are compared using [reflect.DeepEqual].
func ColorSpacesEqual(a, b *ColorSpace) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.name != b.name ||
		a.family != b.family ||
		a.description != b.description ||
		a.bitDepth != b.bitDepth ||
		a.isData != b.isData ||
		a.allocation != b.allocation ||
		a.toRefSpecified != b.toRefSpecified ||
		a.fromRefSpecified != b.fromRefSpecified {
		return false
	}
	if !slices.Equal(a.allocationVars, b.allocationVars) {
		return false
	}
	return transformsEqual(a.toRef, b.toRef) && transformsEqual(a.fromRef, b.fromRef)
}

// isNilValue reports whether t wraps a nil reference value.
func isNilValue(t ConstTransform) bool {
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func transformsEqual(a, b Transform) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}
