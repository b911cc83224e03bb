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

// halfPoint is a lattice position in half-pixel units: pixel (x, y) is
// (2x, 2y). Every triangle vertex of a W x H cell is a halfPoint, so
// membership tests reduce to exact integer cross products.
type halfPoint struct {
	x, y int64
}

// edge is one directed side of a triangle. Interior points lie where the
// cross product is positive; points exactly on the edge are inside only
// when inclusive is set.
type edge struct {
	from, to  halfPoint
	inclusive bool
}

type halfOpenTriangle [3]edge

func (t halfOpenTriangle) contains(p halfPoint) bool {
	for _, e := range t {
		c := cross(e.from, e.to, p)
		if c < 0 || (c == 0 && !e.inclusive) {
			return false
		}
	}
	return true
}

func cross(a, b, p halfPoint) int64 {
	return (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
}

// cellTriangles returns the Up and Down triangles of a W x H cell.
//
// Edge ownership: Up keeps its top and left edges, Down keeps its left edge.
// Shifting Down by half a cell (W in half-pixel units) then makes the two
// triangles partition every row of the lattice, and a row's top line belongs
// to its Up triangles only.
func cellTriangles(w, h int64) [2]halfOpenTriangle {
	upA, upB, upC := halfPoint{0, 0}, halfPoint{2 * w, 0}, halfPoint{w, 2 * h}
	dnA, dnB, dnC := halfPoint{w, 0}, halfPoint{2 * w, 2 * h}, halfPoint{0, 2 * h}
	return [2]halfOpenTriangle{
		Up: {
			{from: upA, to: upB, inclusive: true},
			{from: upB, to: upC},
			{from: upC, to: upA, inclusive: true},
		},
		Down: {
			{from: dnA, to: dnB},
			{from: dnB, to: dnC},
			{from: dnC, to: dnA, inclusive: true},
		},
	}
}
