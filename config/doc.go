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

// Package config implements a registry of named color spaces.
//
// A [Config] stores private copies of the color spaces added to it.  Color
// spaces are looked up by name, ignoring case.  [Config.ColorSpace] returns
// the stored color space, which callers must not modify;
// [Config.EditableColorSpace] returns a copy which can be changed and added
// back using [Config.AddColorSpace].
//
// Configs can be read from and written to YAML files:
//
//	roles:
//	  reference: linear
//	colorspaces:
//	  - name: linear
//	    family: ln
//	    bitdepth: 32f
//	    allocation: lg2
//	    allocationvars: [-15, 6]
//	  - name: lg10
//	    family: lg
//	    bitdepth: 10ui
//	    to_reference:
//	      file: {src: lg10.spi1d, interpolation: nearest}
//
// Only explicitly specified transforms are stored in the file.  When a
// file is loaded, the inverse transforms are inferred again.
package config
