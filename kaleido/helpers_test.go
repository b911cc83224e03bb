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
	"math"

	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/image"
)

var (
	blue = [3]float32{0, 0, 255}
	red  = [3]float32{255, 0, 0}
)

// testCell is the cell size used by the colour-sample tests: width 100, height
// int(100·√3/2) = 86.
const (
	testWidth  = 100
	testHeight = 86
)

// stripeImage returns a width x height image whose top third (rows
// [0, height/3)) is blue and the rest red.
func stripeImage(width, height int) *image.Image3[float32] {
	img := image.NewImage3[float32](width, height)
	img.Fill(red)
	img.FillRect(image.Rect{X1: width, Y1: height / 3}, blue)
	return img
}

func resampled(src *image.Image3[float32], m Map) *image.Image3[float32] {
	out := image.NewImage3[float32](m.Width(), m.Height())
	image.Remap3(src, m.X, m.Y, out)
	return out
}

func rows[T image.Pixel](img *image.Image[T]) [][]T {
	out := make([][]T, img.Height())
	for y := range out {
		out[y] = append([]T(nil), img.RowSlice(y)...)
	}
	return out
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
