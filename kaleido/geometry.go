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
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

var sqrt3 = math.Sqrt(3)

// Cosine and sine of 0°, 120° and 240°, indexed by turn count.
var (
	turnCos = [3]float64{1, -0.5, -0.5}
	turnSin = [3]float64{0, sqrt3 / 2, -sqrt3 / 2}
)

// Point is a position in canvas space. Pixel (x, y) is the point (x, y).
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Triangle is one tile of the tessellation.
type Triangle [3]Point

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
	}
}

// Contains reports whether p lies inside t or on its boundary, within eps.
// The vertex winding does not matter.
func (t Triangle) Contains(p Point, eps float64) bool {
	d0 := crossF(t[0], t[1], p)
	d1 := crossF(t[1], t[2], p)
	d2 := crossF(t[2], t[0], p)
	hasNeg := d0 < -eps || d1 < -eps || d2 < -eps
	hasPos := d0 > eps || d1 > eps || d2 > eps
	return !(hasNeg && hasPos)
}

func crossF(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Orientation distinguishes the two triangle shapes that tile a cell row.
type Orientation uint8

const (
	// Up is the canonical wedge: base along the top edge of the cell from
	// (0, 0) to (W, 0), apex at the bottom centre (W/2, H).
	Up Orientation = iota
	// Down is the canonical wedge mirrored top to bottom: apex at (W/2, 0),
	// base along the bottom edge.
	Down
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Symmetry is one of the six ways a wedge is placed in a hexagon.
type Symmetry uint8

// The six symmetries, in the order GenerateSubMaps returns them.
const (
	Identity Symmetry = iota
	Rotate120
	Rotate240
	Mirror
	MirrorRotate120
	MirrorRotate240

	numSymmetries = 6
)

// Symmetries lists every Symmetry in canonical order.
var Symmetries = [numSymmetries]Symmetry{
	Identity, Rotate120, Rotate240, Mirror, MirrorRotate120, MirrorRotate240,
}

var symmetryNames = [numSymmetries]string{
	"identity", "rotate120", "rotate240", "mirror", "mirror-rotate120", "mirror-rotate240",
}

func (s Symmetry) String() string {
	if s < numSymmetries {
		return symmetryNames[s]
	}
	return fmt.Sprintf("Symmetry(%d)", uint8(s))
}

// Turns returns the number of 120° rotation steps.
func (s Symmetry) Turns() int {
	return int(s) % 3
}

// Mirrored reports whether s flips the wedge top to bottom after rotating.
func (s Symmetry) Mirrored() bool {
	return s >= Mirror
}

// Orientation returns the orientation of the triangle s produces.
func (s Symmetry) Orientation() Orientation {
	if s.Mirrored() {
		return Down
	}
	return Up
}

// Kernel holds the precomputed geometry of one W x H cell.
//
// Rotations are performed about the wedge centroid in equilateral space: y is
// scaled by (W·√3/2)/H first, so a rounded H still maps vertices exactly onto
// vertices. Positive turns follow the image frame, where y grows downward.
type Kernel struct {
	width, height int
	centroid      Point
	tris          [2]halfOpenTriangle
	forward       [numSymmetries]f64.Aff3
	inverse       [numSymmetries]f64.Aff3
}

// NewKernel builds the geometry for a cell of the given size. The dimensions
// are not validated; see CheckDimensions.
func NewKernel(width, height int) Kernel {
	w, h := float64(width), float64(height)
	k := Kernel{
		width:    width,
		height:   height,
		centroid: Point{X: w / 2, Y: h / 3},
		tris:     cellTriangles(int64(width), int64(height)),
	}

	s := w * sqrt3 / 2 / h
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		s = 1
	}
	g := k.centroid
	toEq := mul(scale(1, s), translate(-g.X, -g.Y))
	fromEq := mul(translate(g.X, g.Y), scale(1, 1/s))
	flip := f64.Aff3{1, 0, 0, 0, -1, h}

	for _, sym := range Symmetries {
		t := sym.Turns()
		fwd := mul(fromEq, mul(rotate(turnCos[t], turnSin[t]), toEq))
		inv := mul(fromEq, mul(rotate(turnCos[t], -turnSin[t]), toEq))
		if sym.Mirrored() {
			fwd = mul(flip, fwd)
			inv = mul(inv, flip)
		}
		k.forward[sym] = fwd
		k.inverse[sym] = inv
	}
	return k
}

// Width returns the cell width.
func (k Kernel) Width() int { return k.width }

// Height returns the cell height.
func (k Kernel) Height() int { return k.height }

// Centroid returns the centroid of the canonical wedge, (W/2, H/3).
func (k Kernel) Centroid() Point { return k.centroid }

// Triangle returns the vertices of the triangle with orientation o.
func (k Kernel) Triangle(o Orientation) Triangle {
	w, h := float64(k.width), float64(k.height)
	if o == Down {
		return Triangle{{X: w / 2}, {X: w, Y: h}, {Y: h}}
	}
	return Triangle{{}, {X: w}, {X: w / 2, Y: h}}
}

// Apply maps a point of the canonical wedge to where s places it.
func (k Kernel) Apply(s Symmetry, p Point) Point {
	return apply(k.forward[s], p)
}

// Invert maps a point of the triangle s produces back into the canonical
// wedge. Invert(s, Apply(s, p)) == p within floating-point tolerance.
func (k Kernel) Invert(s Symmetry, p Point) Point {
	return apply(k.inverse[s], p)
}

// Source returns the source pixel coordinate sampled for destination p under
// s: Invert clamped to [0, W-1] x [0, H-1]. The clamp matters at the apex,
// which lies at y = H, one row below the last pixel centre.
func (k Kernel) Source(s Symmetry, p Point) Point {
	q := k.Invert(s, p)
	q.X = max(0, min(float64(k.width-1), q.X))
	q.Y = max(0, min(float64(k.height-1), q.Y))
	return q
}

// Contains reports whether pixel (x, y) belongs to the triangle with
// orientation o, using the exact half-open edge rule.
func (k Kernel) Contains(o Orientation, x, y int) bool {
	return k.tris[o].contains(halfPoint{x: 2 * int64(x), y: 2 * int64(y)})
}

func (k Kernel) containsHalf(o Orientation, p halfPoint) bool {
	return k.tris[o].contains(p)
}

// mul returns p∘q: q is applied first.
func mul(p, q f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		p[3*0+0]*q[3*0+0] + p[3*0+1]*q[3*1+0],
		p[3*0+0]*q[3*0+1] + p[3*0+1]*q[3*1+1],
		p[3*0+0]*q[3*0+2] + p[3*0+1]*q[3*1+2] + p[3*0+2],
		p[3*1+0]*q[3*0+0] + p[3*1+1]*q[3*1+0],
		p[3*1+0]*q[3*0+1] + p[3*1+1]*q[3*1+1],
		p[3*1+0]*q[3*0+2] + p[3*1+1]*q[3*1+2] + p[3*1+2],
	}
}

func translate(tx, ty float64) f64.Aff3 {
	return f64.Aff3{1, 0, tx, 0, 1, ty}
}

func scale(sx, sy float64) f64.Aff3 {
	return f64.Aff3{sx, 0, 0, 0, sy, 0}
}

func rotate(cos, sin float64) f64.Aff3 {
	return f64.Aff3{cos, -sin, 0, sin, cos, 0}
}

func apply(m f64.Aff3, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}
