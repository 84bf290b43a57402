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
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/karidapink/ocio"
)

// The yaml* types mirror the layout of a config file.

type yamlConfig struct {
	Roles       map[string]string `yaml:"roles,omitempty"`
	ColorSpaces []yamlColorSpace  `yaml:"colorspaces"`
}

type yamlColorSpace struct {
	Name           string    `yaml:"name"`
	Family         string    `yaml:"family,omitempty"`
	Description    string    `yaml:"description,omitempty"`
	BitDepth       string    `yaml:"bitdepth,omitempty"`
	IsData         bool      `yaml:"isdata,omitempty"`
	Allocation     string    `yaml:"allocation,omitempty"`
	AllocationVars []float64 `yaml:"allocationvars,omitempty,flow"`

	ToReference   *yamlTransform `yaml:"to_reference,omitempty"`
	FromReference *yamlTransform `yaml:"from_reference,omitempty"`
}

// yamlTransform holds exactly one transform.
type yamlTransform struct {
	Matrix   *yamlMatrix   `yaml:"matrix,omitempty"`
	Exponent *yamlExponent `yaml:"exponent,omitempty"`
	Log      *yamlLog      `yaml:"log,omitempty"`
	CDL      *yamlCDL      `yaml:"cdl,omitempty"`
	File     *yamlFile     `yaml:"file,omitempty"`
	Group    *yamlGroup    `yaml:"group,omitempty"`
	ICC      *yamlICC      `yaml:"icc,omitempty"`

	// err records unknown keys.  It is reported by mapTransform, so that
	// the error can be attributed to a color space.
	err error
}

// transformKeys maps each transform kind to the keys accepted in its body.
var transformKeys = func() map[string]map[string]bool {
	typ := reflect.TypeFor[yamlTransform]()
	res := make(map[string]map[string]bool)
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		res[yamlKey(f)] = structKeys(f.Type.Elem())
	}
	return res
}()

func structKeys(typ reflect.Type) map[string]bool {
	res := make(map[string]bool, typ.NumField())
	for i := range typ.NumField() {
		if f := typ.Field(i); f.IsExported() {
			res[yamlKey(f)] = true
		}
	}
	return res
}

func yamlKey(f reflect.StructField) string {
	key, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if key == "" {
		key = strings.ToLower(f.Name)
	}
	return key
}

// UnmarshalYAML decodes a transform.  Unknown transform kinds and unknown
// fields are not decoding errors; they are stored in t.err instead.
func (t *yamlTransform) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			fields, ok := transformKeys[k.Value]
			if !ok {
				t.err = fmt.Errorf("line %d: unknown transform %q: %w",
					k.Line, k.Value, ocio.ErrInvalidArgument)
				break
			}
			if v.Kind != yaml.MappingNode {
				continue
			}
			for j := 0; j+1 < len(v.Content); j += 2 {
				if f := v.Content[j]; !fields[f.Value] {
					t.err = fmt.Errorf("line %d: %s: unknown field %q: %w",
						f.Line, k.Value, f.Value, ocio.ErrInvalidArgument)
					break
				}
			}
			if t.err != nil {
				break
			}
		}
	}

	type plain yamlTransform
	return n.Decode((*plain)(t))
}

type yamlMatrix struct {
	Matrix    []float64 `yaml:"matrix,flow"`
	Offset    []float64 `yaml:"offset,omitempty,flow"`
	Direction string    `yaml:"direction,omitempty"`
}

type yamlExponent struct {
	Value     []float64 `yaml:"value,flow"`
	Direction string    `yaml:"direction,omitempty"`
}

type yamlLog struct {
	Base      float64 `yaml:"base"`
	Direction string  `yaml:"direction,omitempty"`
}

type yamlCDL struct {
	ID        string    `yaml:"id,omitempty"`
	Slope     []float64 `yaml:"slope,omitempty,flow"`
	Offset    []float64 `yaml:"offset,omitempty,flow"`
	Power     []float64 `yaml:"power,omitempty,flow"`
	Sat       *float64  `yaml:"sat,omitempty"`
	Direction string    `yaml:"direction,omitempty"`
}

type yamlFile struct {
	Src           string `yaml:"src"`
	CCCID         string `yaml:"cccid,omitempty"`
	Interpolation string `yaml:"interpolation,omitempty"`
	Direction     string `yaml:"direction,omitempty"`
}

type yamlGroup struct {
	Children  []yamlTransform `yaml:"children"`
	Direction string          `yaml:"direction,omitempty"`
}

type yamlICC struct {
	Src       string `yaml:"src"`
	Direction string `yaml:"direction,omitempty"`
}
