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

package image

import (
	"github.com/chewxy/math32"

	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/workerpool"
)

// Remap samples src at the coordinates held in mapX/mapY and writes the
// result to dst: dst(x, y) = src(mapX(x, y), mapY(x, y)).
//
// Sampling is bilinear. Taps that fall outside src contribute zero, so any
// coordinate at or beyond one pixel outside the source (including negative
// sentinels such as -1) yields black. dst must have the size of the maps;
// mismatched sizes are a no-op.
func Remap[T Pixel](src *Image[T], mapX, mapY *Image[float32], dst *Image[T]) {
	if !remapReady(src, mapX, mapY, dst) {
		return
	}
	remapRows(src, mapX, mapY, dst, 0, dst.height)
}

// Remap3 applies Remap to each plane of a three-plane image.
func Remap3[T Pixel](src *Image3[T], mapX, mapY *Image[float32], dst *Image3[T]) {
	for i := range 3 {
		Remap(src.Plane(i), mapX, mapY, dst.Plane(i))
	}
}

// ParallelRemap3 is Remap3 with destination rows split into bands across
// pool workers. A nil pool runs sequentially.
func ParallelRemap3[T Pixel](pool *workerpool.Pool, src *Image3[T], mapX, mapY *Image[float32], dst *Image3[T]) {
	for i := range 3 {
		s, d := src.Plane(i), dst.Plane(i)
		if !remapReady(s, mapX, mapY, d) {
			continue
		}
		pool.Rows(d.height, func(y0, y1 int) {
			remapRows(s, mapX, mapY, d, y0, y1)
		})
	}
}

func remapReady[T Pixel](src *Image[T], mapX, mapY *Image[float32], dst *Image[T]) bool {
	if src.Empty() || mapX.Empty() || mapY.Empty() || dst.Empty() {
		return false
	}
	return SameSize(mapX, mapY) && SameSize(mapX, dst)
}

func remapRows[T Pixel](src *Image[T], mapX, mapY *Image[float32], dst *Image[T], y0, y1 int) {
	half := float32(0.5)
	integral := T(half) == 0
	for y := y0; y < y1; y++ {
		xs := mapX.RowSlice(y)
		ys := mapY.RowSlice(y)
		out := dst.RowSlice(y)
		for x := range out {
			v := Bilinear(src, xs[x], ys[x])
			if integral {
				v += half
			}
			out[x] = T(v)
		}
	}
}

// Bilinear samples img at the real-valued position (fx, fy), treating pixels
// outside the image as zero.
func Bilinear[T Pixel](img *Image[T], fx, fy float32) float32 {
	// Also rejects NaN.
	if !(fx > -1 && fy > -1 && fx < float32(img.width) && fy < float32(img.height)) {
		return 0
	}

	x0f := math32.Floor(fx)
	y0f := math32.Floor(fy)
	ax := fx - x0f
	ay := fy - y0f
	x0, y0 := int(x0f), int(y0f)

	v00 := float32(img.At(x0, y0))
	v10 := float32(img.At(x0+1, y0))
	v01 := float32(img.At(x0, y0+1))
	v11 := float32(img.At(x0+1, y0+1))

	top := v00 + (v10-v00)*ax
	bottom := v01 + (v11-v01)*ax
	return top + (bottom-top)*ay
}
