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
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/image"
)

// Unmapped is the source coordinate written where no wedge pixel applies.
// It lies a full pixel outside the source, so the resampler yields black.
const Unmapped float32 = -1

// Map is a coordinate field pair: destination pixel (x, y) samples the
// source image at (X.At(x, y), Y.At(x, y)).
type Map struct {
	X, Y *image.Image[float32]
}

// NewMap allocates a width x height map filled with Unmapped.
func NewMap(width, height int) Map {
	m := Map{
		X: image.NewImage[float32](width, height),
		Y: image.NewImage[float32](width, height),
	}
	m.X.Fill(Unmapped)
	m.Y.Fill(Unmapped)
	return m
}

// Valid reports whether both fields are allocated and the same size.
func (m Map) Valid() bool {
	return !m.X.Empty() && !m.Y.Empty() && image.SameSize(m.X, m.Y)
}

// Width returns the map width in pixels.
func (m Map) Width() int { return m.X.Width() }

// Height returns the map height in pixels.
func (m Map) Height() int { return m.X.Height() }

// At returns the source coordinate stored for destination pixel (x, y).
func (m Map) At(x, y int) Point {
	return Point{X: float64(m.X.At(x, y)), Y: float64(m.Y.At(x, y))}
}

// Mapped reports whether destination pixel (x, y) has a source coordinate.
func (m Map) Mapped(x, y int) bool {
	return m.X.At(x, y) != Unmapped || m.Y.At(x, y) != Unmapped
}
