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

// Pixel is the set of element types an Image can hold: 8-bit masks,
// float32 coordinate fields and colour planes.
type Pixel interface {
	~uint8 | ~uint16 | ~int32 | ~float32 | ~float64
}

// Image is one channel of width x height samples stored row by row. Each row
// occupies stride elements, stride being width rounded up to MaxLanes[T], so
// every row starts on a vector boundary.
//
// The zero value and images with a non-positive size are empty: reads
// return zero and writes are dropped.
type Image[T Pixel] struct {
	data          []T
	width, height int
	stride        int
}

// NewImage allocates a zeroed width x height image.
func NewImage[T Pixel](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}
	lanes := MaxLanes[T]()
	stride := (width + lanes - 1) / lanes * lanes
	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// Width returns the number of columns.
func (img *Image[T]) Width() int { return img.width }

// Height returns the number of rows.
func (img *Image[T]) Height() int { return img.height }

// Empty reports whether img is nil or holds no samples.
func (img *Image[T]) Empty() bool {
	return img == nil || img.data == nil
}

func (img *Image[T]) inside(x, y int) bool {
	return img.data != nil && x >= 0 && x < img.width && y >= 0 && y < img.height
}

// RowSlice returns the width samples of row y, aliasing the image, or nil
// for a row outside it.
func (img *Image[T]) RowSlice(y int) []T {
	if !img.inside(0, y) {
		return nil
	}
	off := y * img.stride
	return img.data[off : off+img.width]
}

// At returns the sample at (x, y); positions outside the image read as zero.
func (img *Image[T]) At(x, y int) T {
	if !img.inside(x, y) {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set writes the sample at (x, y) if it lies inside the image.
func (img *Image[T]) Set(x, y int, v T) {
	if img.inside(x, y) {
		img.data[y*img.stride+x] = v
	}
}

// Fill writes v to every sample, row padding included.
func (img *Image[T]) Fill(v T) {
	for i := range img.data {
		img.data[i] = v
	}
}

// Count returns how many samples satisfy keep. Padding is not counted.
func (img *Image[T]) Count(keep func(T) bool) int {
	n := 0
	for y := range img.height {
		for _, v := range img.RowSlice(y) {
			if keep(v) {
				n++
			}
		}
	}
	return n
}

// SameSize reports whether a and b have equal dimensions, whatever their
// element types.
func SameSize[T, U Pixel](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Rect is the half-open pixel region [X0, X1) x [Y0, Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// clip returns r restricted to a width x height image.
func (r Rect) clip(width, height int) Rect {
	return Rect{
		X0: max(r.X0, 0), Y0: max(r.Y0, 0),
		X1: min(r.X1, width), Y1: min(r.Y1, height),
	}
}

// Image3 is three same-sized planes, R, G and B.
type Image3[T Pixel] struct {
	planes [3]*Image[T]
}

// NewImage3 allocates three zeroed width x height planes.
func NewImage3[T Pixel](width, height int) *Image3[T] {
	var img Image3[T]
	for i := range img.planes {
		img.planes[i] = NewImage[T](width, height)
	}
	return &img
}

// Plane returns plane i (0 = R, 1 = G, 2 = B), or nil if i is out of range.
func (img *Image3[T]) Plane(i int) *Image[T] {
	if i < 0 || i >= len(img.planes) {
		return nil
	}
	return img.planes[i]
}

// Width returns the plane width.
func (img *Image3[T]) Width() int { return img.planes[0].Width() }

// Height returns the plane height.
func (img *Image3[T]) Height() int { return img.planes[0].Height() }

// At returns the three samples at (x, y).
func (img *Image3[T]) At(x, y int) [3]T {
	return [3]T{img.planes[0].At(x, y), img.planes[1].At(x, y), img.planes[2].At(x, y)}
}

// Set writes the three samples at (x, y).
func (img *Image3[T]) Set(x, y int, v [3]T) {
	for i, p := range img.planes {
		p.Set(x, y, v[i])
	}
}

// Fill sets every pixel to v.
func (img *Image3[T]) Fill(v [3]T) {
	for i, p := range img.planes {
		p.Fill(v[i])
	}
}

// FillRect sets the pixels of r that lie inside the image to v.
func (img *Image3[T]) FillRect(r Rect, v [3]T) {
	r = r.clip(img.Width(), img.Height())
	for i, p := range img.planes {
		for y := r.Y0; y < r.Y1; y++ {
			row := p.RowSlice(y)
			for x := r.X0; x < r.X1; x++ {
				row[x] = v[i]
			}
		}
	}
}

// Clamp limits index to [0, size-1].
func Clamp(index, size int) int {
	return max(0, min(index, size-1))
}
