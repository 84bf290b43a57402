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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/icc"

	"github.com/karidapink/ocio"
	"github.com/karidapink/ocio/transform"
)

// LoadOptions can be used to control how a config is loaded.
type LoadOptions struct {
	// FS is used to read ICC profiles referenced by the config.
	// If this is nil, ICC profiles can only use the built-in names.
	FS fs.FS
}

// Built-in ICC profiles, which can be used as the src of an ICC transform.
const (
	BuiltinSRGBv2 = "builtin:sRGBv2"
	BuiltinSRGBv4 = "builtin:sRGBv4"
)

// LoadFile reads a config from the YAML file at path.
// If opt is nil, ICC profiles are looked up relative to the directory
// containing the file.
func LoadFile(path string, opt *LoadOptions) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opt == nil {
		opt = &LoadOptions{FS: os.DirFS(filepath.Dir(path))}
	}
	return Load(f, opt)
}

// Load reads a config in YAML format from r.
//
// Unknown fields, enumeration values and transform kinds are reported as
// errors which match [ocio.ErrInvalidArgument].  Problems within a color
// space are reported as a [*ColorSpaceError].
func Load(r io.Reader, opt *LoadOptions) (*Config, error) {
	if opt == nil {
		opt = &LoadOptions{}
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var dto yamlConfig
	err := dec.Decode(&dto)
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return nil, fmt.Errorf("%w: %w", ocio.ErrInvalidArgument, err)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	c := New()
	for i := range dto.ColorSpaces {
		cs, err := mapColorSpace(&dto.ColorSpaces[i], opt)
		if err != nil {
			return nil, &ColorSpaceError{Name: dto.ColorSpaces[i].Name, Err: err}
		}
		if c.ColorSpace(cs.Name()) != nil {
			return nil, &ColorSpaceError{
				Name: cs.Name(),
				Err:  fmt.Errorf("duplicate name: %w", ocio.ErrInvalidArgument),
			}
		}
		if err := c.AddColorSpace(cs); err != nil {
			return nil, &ColorSpaceError{Name: cs.Name(), Err: err}
		}
	}
	seen := make(map[string]string, len(dto.Roles))
	for _, role := range slices.Sorted(maps.Keys(dto.Roles)) {
		key := fold(role)
		if other, ok := seen[key]; ok {
			return nil, fmt.Errorf("roles %q and %q differ only in case: %w",
				other, role, ocio.ErrInvalidArgument)
		}
		seen[key] = role
		c.SetRole(role, dto.Roles[role])
	}

	ocio.Logger().Debug("config loaded",
		"colorspaces", c.NumColorSpaces(), "roles", len(c.roles))
	return c, nil
}

func mapColorSpace(dto *yamlColorSpace, opt *LoadOptions) (*ocio.ColorSpace, error) {
	cs := ocio.NewColorSpace()
	cs.SetName(dto.Name)
	cs.SetFamily(dto.Family)
	cs.SetDescription(dto.Description)
	cs.SetIsData(dto.IsData)
	cs.SetAllocationVars(dto.AllocationVars...)

	if dto.BitDepth != "" {
		b, err := ocio.ParseBitDepth(dto.BitDepth)
		if err != nil {
			return nil, err
		}
		cs.SetBitDepth(b)
	}
	if dto.Allocation != "" {
		a, err := ocio.ParseAllocation(dto.Allocation)
		if err != nil {
			return nil, err
		}
		cs.SetAllocation(a)
	}

	if dto.ToReference != nil {
		t, err := mapTransform(dto.ToReference, opt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ocio.DirToReference, err)
		}
		if err := cs.SetTransform(ocio.DirToReference, t); err != nil {
			return nil, err
		}
	}
	if dto.FromReference != nil {
		t, err := mapTransform(dto.FromReference, opt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ocio.DirFromReference, err)
		}
		if err := cs.SetTransform(ocio.DirFromReference, t); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

func mapTransform(dto *yamlTransform, opt *LoadOptions) (ocio.Transform, error) {
	if dto.err != nil {
		return nil, dto.err
	}

	var res ocio.Transform
	var dirText string
	count := 0

	if m := dto.Matrix; m != nil {
		count++
		t := transform.Identity()
		if len(m.Matrix) != len(t.M) {
			return nil, lengthError("matrix", len(m.Matrix), len(t.M))
		}
		copy(t.M[:], m.Matrix)
		if m.Offset != nil {
			if len(m.Offset) != len(t.Offset) {
				return nil, lengthError("matrix offset", len(m.Offset), len(t.Offset))
			}
			copy(t.Offset[:], m.Offset)
		}
		res, dirText = t, m.Direction
	}
	if e := dto.Exponent; e != nil {
		count++
		t := &transform.Exponent{}
		if len(e.Value) != len(t.Value) {
			return nil, lengthError("exponent value", len(e.Value), len(t.Value))
		}
		copy(t.Value[:], e.Value)
		res, dirText = t, e.Direction
	}
	if l := dto.Log; l != nil {
		count++
		res, dirText = &transform.Log{Base: l.Base}, l.Direction
	}
	if d := dto.CDL; d != nil {
		count++
		t := transform.NewCDL()
		t.ID = d.ID
		for _, v := range []struct {
			name string
			src  []float64
			dst  *[3]float64
		}{
			{"cdl slope", d.Slope, &t.Slope},
			{"cdl offset", d.Offset, &t.Offset},
			{"cdl power", d.Power, &t.Power},
		} {
			if v.src == nil {
				continue
			}
			if len(v.src) != 3 {
				return nil, lengthError(v.name, len(v.src), 3)
			}
			copy(v.dst[:], v.src)
		}
		if d.Sat != nil {
			t.Sat = *d.Sat
		}
		res, dirText = t, d.Direction
	}
	if f := dto.File; f != nil {
		count++
		t := &transform.File{Src: f.Src, CCCID: f.CCCID}
		if f.Interpolation != "" {
			interp, err := transform.ParseInterpolation(f.Interpolation)
			if err != nil {
				return nil, err
			}
			t.Interpolation = interp
		}
		res, dirText = t, f.Direction
	}
	if g := dto.Group; g != nil {
		count++
		t := &transform.Group{}
		for i := range g.Children {
			child, err := mapTransform(&g.Children[i], opt)
			if err != nil {
				return nil, fmt.Errorf("group child %d: %w", i, err)
			}
			t.Children = append(t.Children, child)
		}
		res, dirText = t, g.Direction
	}
	if p := dto.ICC; p != nil {
		count++
		data, err := readProfile(p.Src, opt)
		if err != nil {
			return nil, err
		}
		t, err := transform.NewICC(data)
		if err != nil {
			return nil, err
		}
		t.Src = p.Src
		res, dirText = t, p.Direction
	}

	switch count {
	case 0:
		return nil, fmt.Errorf("missing transform: %w", ocio.ErrInvalidArgument)
	case 1:
		// pass
	default:
		return nil, fmt.Errorf("%d transforms given where one was expected: %w",
			count, ocio.ErrInvalidArgument)
	}

	dir := ocio.TransformDirForward
	if dirText != "" {
		var err error
		dir, err = ocio.ParseTransformDirection(dirText)
		if err != nil {
			return nil, err
		}
	}
	res.SetDirection(dir)
	return res, nil
}

func readProfile(src string, opt *LoadOptions) ([]byte, error) {
	switch src {
	case BuiltinSRGBv2:
		return transform.SRGBProfile(icc.Version2_1_0), nil
	case BuiltinSRGBv4:
		return transform.SRGBProfile(icc.Version4_3_0), nil
	case "":
		return nil, fmt.Errorf("icc: missing src: %w", ocio.ErrInvalidArgument)
	}
	if strings.HasPrefix(src, "builtin:") {
		return nil, fmt.Errorf("icc: unknown built-in profile %q: %w", src, ocio.ErrInvalidArgument)
	}
	if opt.FS == nil {
		return nil, fmt.Errorf("icc: cannot read %q: no file system given", src)
	}
	return fs.ReadFile(opt.FS, filepath.ToSlash(src))
}

func lengthError(what string, got, want int) error {
	return fmt.Errorf("%s: got %d values, want %d: %w", what, got, want, ocio.ErrInvalidArgument)
}
