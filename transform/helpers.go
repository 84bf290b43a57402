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
	"math"
	"strconv"
	"strings"
)

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// firstNonFinite returns the index of the first value in x which is
// infinite or NaN, or -1 if all values are finite.
func firstNonFinite(x []float64) int {
	for i, xi := range x {
		if !isFinite(xi) {
			return i
		}
	}
	return -1
}

// formatFloats formats the values in x separated by single spaces,
// using the shortest representation which round-trips.
func formatFloats(x []float64) string {
	parts := make([]string, len(x))
	for i, xi := range x {
		parts[i] = strconv.FormatFloat(xi, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
