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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetryProperties(t *testing.T) {
	tests := []struct {
		s        Symmetry
		turns    int
		mirrored bool
		o        Orientation
		name     string
	}{
		{Identity, 0, false, Up, "identity"},
		{Rotate120, 1, false, Up, "rotate120"},
		{Rotate240, 2, false, Up, "rotate240"},
		{Mirror, 0, true, Down, "mirror"},
		{MirrorRotate120, 1, true, Down, "mirror-rotate120"},
		{MirrorRotate240, 2, true, Down, "mirror-rotate240"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.s, Symmetries[i])
			assert.Equal(t, tt.turns, tt.s.Turns())
			assert.Equal(t, tt.mirrored, tt.s.Mirrored())
			assert.Equal(t, tt.o, tt.s.Orientation())
			assert.Equal(t, tt.name, tt.s.String())
		})
	}
	assert.Equal(t, "Symmetry(9)", Symmetry(9).String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}

func TestKernelTriangles(t *testing.T) {
	k := NewKernel(testWidth, testHeight)

	up := k.Triangle(Up)
	assert.Equal(t, Triangle{{0, 0}, {100, 0}, {50, 86}}, up)
	down := k.Triangle(Down)
	assert.Equal(t, Triangle{{50, 0}, {100, 86}, {0, 86}}, down)

	c := up.Centroid()
	assert.InDelta(t, k.Centroid().X, c.X, 1e-12)
	assert.InDelta(t, k.Centroid().Y, c.Y, 1e-12)

	assert.True(t, up.Contains(Point{50, 10}, 1e-9))
	assert.False(t, up.Contains(Point{5, 80}, 1e-9))
	assert.True(t, down.Contains(Point{5, 85}, 1e-9))
	assert.True(t, down.Contains(Point{50, 0}, 1e-9), "vertex is on the boundary")
}

func TestKernelVerticesMapToVertices(t *testing.T) {
	for _, size := range [][2]int{{100, 86}, {64, 55}, {7, 6}} {
		k := NewKernel(size[0], size[1])
		src := k.Triangle(Up)
		for _, s := range Symmetries {
			dst := k.Triangle(s.Orientation())
			seen := map[int]bool{}
			for _, v := range src {
				p := k.Apply(s, v)
				found := -1
				for j, d := range dst {
					if dist(p, d) < 1e-9 {
						found = j
					}
				}
				require.GreaterOrEqualf(t, found, 0, "%v of %v: %v is not a vertex of %v", s, v, p, dst)
				seen[found] = true
			}
			assert.Lenf(t, seen, 3, "%v %dx%d must permute the vertices", s, size[0], size[1])
		}
	}
}

func TestKernelRotationsCycleVertices(t *testing.T) {
	k := NewKernel(testWidth, testHeight)
	tri := k.Triangle(Up)

	// Rotate120 carries the top-left corner to the top-right corner.
	p := k.Apply(Rotate120, tri[0])
	assert.InDelta(t, tri[1].X, p.X, 1e-9)
	assert.InDelta(t, tri[1].Y, p.Y, 1e-9)

	// Rotating three times is the identity.
	q := tri[2]
	for range 3 {
		q = k.Apply(Rotate120, q)
	}
	assert.InDelta(t, tri[2].X, q.X, 1e-9)
	assert.InDelta(t, tri[2].Y, q.Y, 1e-9)

	// The centroid is fixed by every rotation.
	g := k.Apply(Rotate240, k.Centroid())
	assert.InDelta(t, k.Centroid().X, g.X, 1e-9)
	assert.InDelta(t, k.Centroid().Y, g.Y, 1e-9)

	// Mirror flips top to bottom.
	m := k.Apply(Mirror, Point{30, 10})
	assert.InDelta(t, 30, m.X, 1e-9)
	assert.InDelta(t, 76, m.Y, 1e-9)
}

func TestKernelInvertRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, size := range [][2]int{{100, 86}, {640, 554}, {9, 7}} {
		k := NewKernel(size[0], size[1])
		for _, s := range Symmetries {
			for range 200 {
				p := Point{X: r.Float64() * float64(size[0]), Y: r.Float64() * float64(size[1])}
				back := k.Invert(s, k.Apply(s, p))
				require.InDeltaf(t, p.X, back.X, 1e-9, "%v x", s)
				require.InDeltaf(t, p.Y, back.Y, 1e-9, "%v y", s)

				fwd := k.Apply(s, k.Invert(s, p))
				require.InDeltaf(t, p.X, fwd.X, 1e-9, "%v x", s)
				require.InDeltaf(t, p.Y, fwd.Y, 1e-9, "%v y", s)
			}
		}
	}
}

func TestKernelApplyKeepsInteriorInside(t *testing.T) {
	k := NewKernel(testWidth, testHeight)
	r := rand.New(rand.NewPCG(3, 4))
	up := k.Triangle(Up)
	for _, s := range Symmetries {
		dst := k.Triangle(s.Orientation())
		for range 500 {
			// Random barycentric combination of the canonical vertices.
			a, b := r.Float64(), r.Float64()
			if a+b > 1 {
				a, b = 1-a, 1-b
			}
			p := Point{
				X: up[0].X + a*(up[1].X-up[0].X) + b*(up[2].X-up[0].X),
				Y: up[0].Y + a*(up[1].Y-up[0].Y) + b*(up[2].Y-up[0].Y),
			}
			require.Truef(t, dst.Contains(k.Apply(s, p), 1e-9), "%v moved %v outside %v", s, p, dst)
		}
	}
}

func TestKernelSourceClamps(t *testing.T) {
	k := NewKernel(testWidth, testHeight)

	tests := []struct {
		name string
		dst  Point
		want Point
	}{
		// The apex lies at y = H, one row past the last pixel.
		{"apex", Point{50, 86}, Point{50, 85}},
		{"right corner", Point{100, 0}, Point{99, 0}},
		{"interior", Point{20, 10}, Point{20, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := k.Source(Identity, tt.dst)
			assert.InDelta(t, tt.want.X, p.X, 1e-9)
			assert.InDelta(t, tt.want.Y, p.Y, 1e-9)
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.X, 99.0)
			assert.LessOrEqual(t, p.Y, 85.0)
		})
	}
}

func TestKernelDegenerateDimensions(t *testing.T) {
	assert.NotPanics(t, func() {
		k := NewKernel(0, 0)
		_ = k.Apply(Rotate120, Point{1, 1})
		_ = k.Contains(Up, 0, 0)
	})
}
