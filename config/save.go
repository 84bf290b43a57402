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

package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/karidapink/ocio"
	"github.com/karidapink/ocio/transform"
)

// Save writes the config to w in YAML format.
//
// Only explicitly specified transforms are written.  ICC transforms can
// only be saved if their Src field is set.
func (c *Config) Save(w io.Writer) error {
	dto := yamlConfig{
		ColorSpaces: make([]yamlColorSpace, 0, len(c.spaces)),
	}
	if len(c.roles) > 0 {
		dto.Roles = make(map[string]string, len(c.roles))
		for _, r := range c.roles {
			dto.Roles[r.role] = r.name
		}
	}

	for _, cs := range c.spaces {
		item, err := unmapColorSpace(cs)
		if err != nil {
			return &ColorSpaceError{Name: cs.Name(), Err: err}
		}
		dto.ColorSpaces = append(dto.ColorSpaces, item)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&dto); err != nil {
		return err
	}
	return enc.Close()
}

func unmapColorSpace(cs *ocio.ColorSpace) (yamlColorSpace, error) {
	res := yamlColorSpace{
		Name:           cs.Name(),
		Family:         cs.Family(),
		Description:    cs.Description(),
		IsData:         cs.IsData(),
		AllocationVars: cs.AllocationVars(),
	}
	if b := cs.BitDepth(); b != ocio.BitDepthUnknown {
		res.BitDepth = b.String()
	}
	if a := cs.Allocation(); a != ocio.AllocationUniform {
		res.Allocation = a.String()
	}

	for _, dir := range []ocio.ColorSpaceDirection{ocio.DirToReference, ocio.DirFromReference} {
		specified, err := cs.IsTransformSpecified(dir)
		if err != nil {
			return res, err
		}
		if !specified {
			continue
		}
		t, err := cs.Transform(dir)
		if err != nil {
			return res, err
		}
		item, err := unmapTransform(t)
		if err != nil {
			return res, fmt.Errorf("%s: %w", dir, err)
		}
		if dir == ocio.DirToReference {
			res.ToReference = item
		} else {
			res.FromReference = item
		}
	}
	return res, nil
}

func unmapTransform(t ocio.ConstTransform) (*yamlTransform, error) {
	dir := ""
	if d := t.Direction(); d != ocio.TransformDirForward {
		dir = d.String()
	}

	res := &yamlTransform{}
	switch t := t.(type) {
	case *transform.Matrix:
		res.Matrix = &yamlMatrix{
			Matrix:    t.M[:],
			Direction: dir,
		}
		if t.Offset != [4]float64{} {
			res.Matrix.Offset = t.Offset[:]
		}
	case *transform.Exponent:
		res.Exponent = &yamlExponent{Value: t.Value[:], Direction: dir}
	case *transform.Log:
		res.Log = &yamlLog{Base: t.Base, Direction: dir}
	case *transform.CDL:
		sat := t.Sat
		res.CDL = &yamlCDL{
			ID:        t.ID,
			Slope:     t.Slope[:],
			Offset:    t.Offset[:],
			Power:     t.Power[:],
			Sat:       &sat,
			Direction: dir,
		}
	case *transform.File:
		f := &yamlFile{Src: t.Src, CCCID: t.CCCID, Direction: dir}
		if t.Interpolation != transform.InterpUnknown {
			f.Interpolation = t.Interpolation.String()
		}
		res.File = f
	case *transform.Group:
		g := &yamlGroup{Direction: dir}
		for i, child := range t.Children {
			if child == nil {
				return nil, fmt.Errorf("group child %d is nil: %w", i, ocio.ErrInvalidArgument)
			}
			item, err := unmapTransform(child)
			if err != nil {
				return nil, fmt.Errorf("group child %d: %w", i, err)
			}
			g.Children = append(g.Children, *item)
		}
		res.Group = g
	case *transform.ICC:
		if t.Src == "" {
			return nil, fmt.Errorf("icc transform without src: %w", ocio.ErrInvalidArgument)
		}
		res.ICC = &yamlICC{Src: t.Src, Direction: dir}
	default:
		return nil, fmt.Errorf("unsupported transform type %T: %w", t, ocio.ErrInvalidArgument)
	}
	return res, nil
}
