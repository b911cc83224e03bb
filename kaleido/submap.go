// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kaleido

import (
	"github.com/samber/lo"
)

// SubMap pairs a Symmetry with the coordinate field that renders it.
// It is valid for one fixed cell size.
type SubMap struct {
	Symmetry Symmetry
	Map      Map
}

// GenerateSubMaps returns one width x height SubMap per Symmetry, in the
// order of Symmetries.
//
// For a destination pixel inside the triangle s produces, the map holds the
// canonical-wedge pixel that s carries there (Kernel.Source). Resampling a
// source image with it draws that copy of the wedge; every other pixel holds
// Unmapped and comes out black.
func GenerateSubMaps(width, height int) []SubMap {
	k := NewKernel(width, height)
	return lo.Map(Symmetries[:], func(s Symmetry, _ int) SubMap {
		return k.subMap(s)
	})
}

func (k Kernel) subMap(s Symmetry) SubMap {
	m := NewMap(k.width, k.height)
	k.fillSubMapRows(s, m, 0, m.Height())
	return SubMap{Symmetry: s, Map: m}
}

func (k Kernel) fillSubMapRows(s Symmetry, m Map, y0, y1 int) {
	o := s.Orientation()
	for y := y0; y < y1; y++ {
		xs, ys := m.X.RowSlice(y), m.Y.RowSlice(y)
		for x := range xs {
			if !k.Contains(o, x, y) {
				continue
			}
			p := k.Source(s, Point{X: float64(x), Y: float64(y)})
			xs[x], ys[x] = float32(p.X), float32(p.Y)
		}
	}
}

// FindSubMap returns the entry for s.
func FindSubMap(subMaps []SubMap, s Symmetry) (SubMap, bool) {
	return lo.Find(subMaps, func(sm SubMap) bool {
		return sm.Symmetry == s
	})
}
