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
	"maps"
	"slices"

	"golang.org/x/text/cases"

	"github.com/karidapink/ocio"
)

// Config is a collection of named color spaces, together with roles which
// refer to color spaces by name.
//
// A Config is not safe for concurrent use.
type Config struct {
	spaces []*ocio.ColorSpace
	index  map[string]int

	// roles is indexed by the folded role name.
	roles map[string]roleEntry
}

type roleEntry struct {
	role string // as given to SetRole
	name string // color space name
}

// New returns an empty config.
func New() *Config {
	return &Config{
		index: make(map[string]int),
		roles: make(map[string]roleEntry),
	}
}

// fold maps names which only differ in case to the same key.
func fold(name string) string {
	return cases.Fold().String(name)
}

// AddColorSpace adds a copy of cs to the config.
//
// If a color space with the same name (ignoring case) already exists, it is
// replaced and keeps its position.  Color spaces without a name are
// rejected.
func (c *Config) AddColorSpace(cs *ocio.ColorSpace) error {
	if cs == nil {
		return fmt.Errorf("AddColorSpace: nil color space: %w", ocio.ErrInvalidArgument)
	}
	name := cs.Name()
	if name == "" {
		return fmt.Errorf("AddColorSpace: missing name: %w", ocio.ErrInvalidArgument)
	}

	key := fold(name)
	stored := cs.EditableCopy()
	if i, ok := c.index[key]; ok {
		c.spaces[i] = stored
		ocio.Logger().Debug("color space replaced", "colorspace", name)
		return nil
	}
	c.index[key] = len(c.spaces)
	c.spaces = append(c.spaces, stored)
	return nil
}

// ColorSpace returns the color space with the given name, or nil if there
// is no such color space.  The name is matched ignoring case.
//
// The returned color space is shared with the config and must not be
// modified.  Use [Config.EditableColorSpace] to obtain a copy which can be
// changed.
func (c *Config) ColorSpace(name string) *ocio.ColorSpace {
	i, ok := c.index[fold(name)]
	if !ok {
		return nil
	}
	return c.spaces[i]
}

// EditableColorSpace returns a copy of the color space with the given name,
// or nil if there is no such color space.
func (c *Config) EditableColorSpace(name string) *ocio.ColorSpace {
	cs := c.ColorSpace(name)
	if cs == nil {
		return nil
	}
	return cs.EditableCopy()
}

// RemoveColorSpace removes the color space with the given name.
// The return value reports whether a color space was removed.
// Roles which refer to the color space are left in place.
func (c *Config) RemoveColorSpace(name string) bool {
	key := fold(name)
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.spaces = slices.Delete(c.spaces, i, i+1)
	delete(c.index, key)
	for k, j := range c.index {
		if j > i {
			c.index[k] = j - 1
		}
	}
	return true
}

// NumColorSpaces returns the number of color spaces in the config.
func (c *Config) NumColorSpaces() int {
	return len(c.spaces)
}

// ColorSpaceNames returns the names of all color spaces, in the order in
// which they were added.
func (c *Config) ColorSpaceNames() []string {
	res := make([]string, len(c.spaces))
	for i, cs := range c.spaces {
		res[i] = cs.Name()
	}
	return res
}

// Families returns the distinct, non-empty families of all color spaces in
// sorted order.
func (c *Config) Families() []string {
	seen := make(map[string]bool)
	for _, cs := range c.spaces {
		if f := cs.Family(); f != "" {
			seen[f] = true
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// SetRole makes role refer to the color space with the given name.
// An empty name removes the role.  The color space does not need to exist
// yet; see [Config.Validate].
//
// Roles are matched ignoring case.  The spelling from the most recent call
// is kept.
func (c *Config) SetRole(role, name string) {
	key := fold(role)
	if name == "" {
		delete(c.roles, key)
		return
	}
	c.roles[key] = roleEntry{role: role, name: name}
}

// Role returns the color space referred to by role, or nil if the role is
// not set or refers to a missing color space.
// The returned color space must not be modified.
func (c *Config) Role(role string) *ocio.ColorSpace {
	r, ok := c.roles[fold(role)]
	if !ok {
		return nil
	}
	return c.ColorSpace(r.name)
}

// RoleColorSpaceName returns the name of the color space referred to by
// role.
func (c *Config) RoleColorSpaceName(role string) (string, bool) {
	r, ok := c.roles[fold(role)]
	return r.name, ok
}

// Roles returns the names of all roles, sorted ignoring case.
func (c *Config) Roles() []string {
	keys := slices.Sorted(maps.Keys(c.roles))
	res := make([]string, len(keys))
	for i, key := range keys {
		res[i] = c.roles[key].role
	}
	return res
}

type validator interface {
	Validate() error
}

// Validate checks that all roles refer to existing color spaces and that
// the transforms of all color spaces are valid.
func (c *Config) Validate() error {
	var errs []error
	for _, key := range slices.Sorted(maps.Keys(c.roles)) {
		r := c.roles[key]
		if c.ColorSpace(r.name) == nil {
			errs = append(errs, fmt.Errorf("role %q: unknown color space %q", r.role, r.name))
		}
	}
	for _, cs := range c.spaces {
		for _, dir := range []ocio.ColorSpaceDirection{ocio.DirToReference, ocio.DirFromReference} {
			t, err := cs.Transform(dir)
			if err != nil {
				return err
			}
			v, ok := t.(validator)
			if !ok {
				continue
			}
			if err := v.Validate(); err != nil {
				errs = append(errs, &ColorSpaceError{Name: cs.Name(), Err: fmt.Errorf("%s: %w", dir, err)})
			}
		}
	}
	return errors.Join(errs...)
}
