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
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/icc"

	"github.com/karidapink/ocio"
)

// ICC is a transform described by an ICC profile.  In forward direction it
// maps the data color space of the profile to the profile connection space.
type ICC struct {
	// Src optionally records where the profile was loaded from.
	Src string

	Dir ocio.TransformDirection

	profile  []byte
	channels int
	space    string
}

// NewICC returns a new forward transform for the given ICC profile.
// Only profiles with a Gray, RGB, CMYK or Lab data color space are
// supported.
func NewICC(profile []byte) (*ICC, error) {
	if len(profile) == 0 {
		return nil, errors.New("ICC: missing profile")
	}

	// Decode modifies its argument.
	p, err := icc.Decode(slices.Clone(profile))
	if err != nil {
		return nil, fmt.Errorf("ICC: %w", err)
	}

	var space string
	switch p.ColorSpace {
	case icc.GraySpace:
		space = "Gray"
	case icc.RGBSpace:
		space = "RGB"
	case icc.CMYKSpace:
		space = "CMYK"
	case icc.CIELabSpace:
		space = "Lab"
	default:
		return nil, fmt.Errorf("ICC: unsupported color space %v", p.ColorSpace)
	}

	res := &ICC{
		Dir:      ocio.TransformDirForward,
		profile:  slices.Clone(profile),
		channels: p.ColorSpace.NumComponents(),
		space:    space,
	}
	return res, nil
}

// Profile returns a copy of the ICC profile data.
func (t *ICC) Profile() []byte {
	return slices.Clone(t.profile)
}

// Channels returns the number of components of the profile's data color
// space.
func (t *ICC) Channels() int {
	return t.channels
}

// Space returns the name of the profile's data color space,
// for example "RGB".
func (t *ICC) Space() string {
	return t.space
}

func (t *ICC) Direction() ocio.TransformDirection {
	return t.Dir
}

func (t *ICC) SetDirection(dir ocio.TransformDirection) {
	t.Dir = dir
}

func (t *ICC) EditableCopy() ocio.Transform {
	res := *t
	res.profile = slices.Clone(t.profile)
	return &res
}

// Validate checks that the transform holds a profile.
func (t *ICC) Validate() error {
	if len(t.profile) == 0 {
		return newInvalidTransformError("ICC", "profile", "missing profile data")
	}
	return nil
}

func (t *ICC) String() string {
	s := "<ICCTransform direction=" + t.Dir.String() +
		", space=" + t.space +
		fmt.Sprintf(", channels=%d", t.channels)
	if t.Src != "" {
		s += ", src=" + t.Src
	}
	return s + ">"
}
