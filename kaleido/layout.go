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

// The triangular lattice has vertices at a·(W, 0) + b·(W/2, H) for integers
// a, b: each row of cells is shifted half a cell to the right of the one
// above. Every vertex shows one of the wedge's three corners, and the corner
// repeats every third vertex along a row, so the variant that fills a
// triangle depends on the phase (a - b) mod 3 of its anchor vertex (top-left
// corner for Up, apex for Down) and on its orientation.
//
// Neighbouring triangles are mirror images across their shared edge, so the
// six wedges around any vertex agree along every seam.
var layout = [3][2]Symmetry{
	{Up: Rotate240, Down: MirrorRotate120},
	{Up: Rotate120, Down: Mirror},
	{Up: Identity, Down: MirrorRotate240},
}

// LayoutSymmetry returns the variant placed on a triangle of orientation o
// whose anchor vertex has lattice phase (a - b).
func LayoutSymmetry(phase int, o Orientation) Symmetry {
	return layout[mod(phase, 3)][o]
}

// Placement locates a canvas pixel on the triangular lattice.
type Placement struct {
	Symmetry    Symmetry
	Orientation Orientation
	// Col and Row are the lattice coordinates (a, b) of the anchor vertex.
	Col, Row int

	local halfPoint
}

// Local returns the pixel position inside its triangle's cell, in the cell
// coordinates of the Kernel. X is a half integer for odd widths on rows
// whose shift is not a whole pixel.
func (p Placement) Local() Point {
	return Point{X: float64(p.local.x) / 2, Y: float64(p.local.y) / 2}
}

// Locate returns the lattice triangle containing canvas pixel (x, y).
// The kernel must have positive dimensions.
func (k Kernel) Locate(x, y int) Placement {
	w, h := int64(k.width), int64(k.height)
	if w <= 0 || h <= 0 {
		return Placement{}
	}

	row := floorDiv(int64(y), h)
	ly := 2 * (int64(y) - row*h)

	// Up cells of row b start at b·W/2.
	px := 2*int64(x) - row*w
	col := floorDiv(px, 2*w)
	local := halfPoint{x: px - col*2*w, y: ly}
	if k.containsHalf(Up, local) {
		return k.placement(Up, col, row, local)
	}

	// Down cells sit half a cell to the left of Up cells.
	px += w
	col = floorDiv(px, 2*w)
	local = halfPoint{x: px - col*2*w, y: ly}
	return k.placement(Down, col, row, local)
}

func (k Kernel) placement(o Orientation, col, row int64, local halfPoint) Placement {
	return Placement{
		Symmetry:    LayoutSymmetry(int(mod(col-row, 3)), o),
		Orientation: o,
		Col:         int(col),
		Row:         int(row),
		local:       local,
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod[T int | int64](a, b T) T {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
