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
	"strings"

	"github.com/karidapink/ocio"
)

// Group is a sequence of transforms, which are applied in order.
// In inverse direction the inverses of the children are applied in
// reverse order.
type Group struct {
	Children []ocio.Transform
	Dir      ocio.TransformDirection
}

func (t *Group) Direction() ocio.TransformDirection {
	return t.Dir
}

func (t *Group) SetDirection(dir ocio.TransformDirection) {
	t.Dir = dir
}

// EditableCopy returns a deep copy of the group.
// Each child is copied using its own EditableCopy method.
func (t *Group) EditableCopy() ocio.Transform {
	res := &Group{Dir: t.Dir}
	if t.Children != nil {
		res.Children = make([]ocio.Transform, len(t.Children))
		for i, child := range t.Children {
			if child != nil {
				res.Children[i] = child.EditableCopy()
			}
		}
	}
	return res
}

// Append adds copies of the given transforms to the end of the group.
// A nil argument is stored as a nil child, which [Group.Validate] reports.
func (t *Group) Append(children ...ocio.ConstTransform) {
	for _, child := range children {
		if child == nil {
			t.Children = append(t.Children, nil)
			continue
		}
		t.Children = append(t.Children, child.EditableCopy())
	}
}

type validator interface {
	Validate() error
}

// Validate checks that no child is nil, and validates all children which
// have a Validate method.
func (t *Group) Validate() error {
	for i, child := range t.Children {
		if child == nil {
			return newInvalidTransformError("Group", "Children", "child %d is nil", i)
		}
		if v, ok := child.(validator); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Group) String() string {
	b := &strings.Builder{}
	b.WriteString("<GroupTransform direction=" + t.Dir.String())
	b.WriteString(", transforms=")
	b.WriteString(strconv.Itoa(len(t.Children)))
	for _, child := range t.Children {
		b.WriteString("\n\t")
		if child == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(child.String())
	}
	b.WriteString(">")
	return b.String()
}
