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

// Select picks per pixel between two images using a binary mask:
// out = (mask != 0) ? a : b. All four images must have the same size.
func Select[T Pixel](mask *Image[uint8], a, b, out *Image[T]) {
	if mask.Empty() || a.Empty() || b.Empty() || out.Empty() {
		return
	}
	if !SameSize(mask, a) || !SameSize(a, b) || !SameSize(a, out) {
		return
	}

	for y := 0; y < out.height; y++ {
		mRow := mask.RowSlice(y)
		aRow := a.RowSlice(y)
		bRow := b.RowSlice(y)
		outRow := out.RowSlice(y)
		for i, m := range mRow {
			if m != 0 {
				outRow[i] = aRow[i]
			} else {
				outRow[i] = bRow[i]
			}
		}
	}
}

// Select3 applies Select to each plane.
func Select3[T Pixel](mask *Image[uint8], a, b, out *Image3[T]) {
	for i := range 3 {
		Select(mask, a.Plane(i), b.Plane(i), out.Plane(i))
	}
}

// Threshold applies a binary threshold: out = (in >= threshold) ? above : below.
func Threshold[T, U Pixel](img *Image[T], out *Image[U], threshold T, below, above U) {
	if img.Empty() || out.Empty() || !SameSize(img, out) {
		return
	}

	for y := 0; y < img.height; y++ {
		inRow := img.RowSlice(y)
		outRow := out.RowSlice(y)
		for i, v := range inRow {
			if v >= threshold {
				outRow[i] = above
			} else {
				outRow[i] = below
			}
		}
	}
}
