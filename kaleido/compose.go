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
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/workerpool"
)

// GenerateKaleidoscopeMap fills dst so that resampling a width x height
// source image with it produces the kaleidoscope mosaic over the whole of
// dst. dst can have any size; a 3·width x 3·height canvas shows a complete
// hexagon with margin.
//
// For each destination pixel the composer finds its lattice triangle
// (row by integer division by height, Up or Down by the exact cell test),
// picks the variant from the layout table and copies that variant's SubMap
// coordinate at the cell-local position.
//
// Unlike a single SubMap, the result never holds Unmapped for a valid cell
// size: Up and Down triangles tile the plane, so margin pixels past the
// central hexagon, partial cells at the edges and every other pixel of dst
// land in some lattice triangle and receive an in-range source coordinate.
// Only non-positive dimensions fill dst with Unmapped. An invalid dst is
// left untouched.
func GenerateKaleidoscopeMap(dst Map, width, height int) {
	if !dst.Valid() {
		return
	}
	if width <= 0 || height <= 0 {
		dst.X.Fill(Unmapped)
		dst.Y.Fill(Unmapped)
		return
	}
	c := newComposer(width, height, nil)
	c.fillRows(dst, 0, dst.Height())
}

// NewKaleidoscopeMap allocates a (cols·width) x (rows·height) map and fills
// it with GenerateKaleidoscopeMap.
func NewKaleidoscopeMap(width, height, cols, rows int) Map {
	m := NewMap(max(cols, 0)*width, max(rows, 0)*height)
	GenerateKaleidoscopeMap(m, width, height)
	return m
}

type composer struct {
	kernel  Kernel
	subMaps []SubMap
}

func newComposer(width, height int, pool *workerpool.Pool) composer {
	return composer{
		kernel:  NewKernel(width, height),
		subMaps: ParallelGenerateSubMaps(pool, width, height),
	}
}

func (c composer) fillRows(dst Map, y0, y1 int) {
	for y := y0; y < y1; y++ {
		xs, ys := dst.X.RowSlice(y), dst.Y.RowSlice(y)
		for x := range xs {
			p := c.source(c.kernel.Locate(x, y))
			xs[x], ys[x] = float32(p.X), float32(p.Y)
		}
	}
}

// source returns the coordinate for a placement. Whole-pixel positions are
// read from the variant's SubMap; half-pixel positions (odd widths) are
// evaluated directly.
func (c composer) source(p Placement) Point {
	if p.local.x%2 == 0 {
		return c.subMaps[p.Symmetry].Map.At(int(p.local.x/2), int(p.local.y/2))
	}
	return c.kernel.Source(p.Symmetry, p.Local())
}
