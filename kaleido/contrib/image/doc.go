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

// Package image provides the dense 2D buffers the kaleidoscope generators
// produce and consume, plus the resampler that applies coordinate fields.
//
// The core types are Image[T] for single-channel data (8-bit masks, float32
// coordinate fields) and Image3[T] for three colour planes. Rows are padded
// to the SIMD vector width of the running CPU.
//
// # Resampling
//
// Remap applies a pair of coordinate fields to a source image:
//
//	dst(x, y) = src(mapX(x, y), mapY(x, y))
//
// with bilinear interpolation and black outside the source:
//
//	out := image.NewImage3[float32](mapX.Width(), mapX.Height())
//	image.Remap3(src, mapX, mapY, out)
//
// # Conversion
//
// FromImage and ToNRGBA move pixels between the standard library image
// types and float32 planes; Fit crops and scales an arbitrary picture to
// the wedge cell size.
package image
