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

// Package kaleido builds the coordinate fields and masks that turn one
// triangular wedge of an image into a seamless kaleidoscope.
//
// A source cell is W pixels wide and H = W·√3/2 pixels high (HeightFor).
// Its canonical wedge is the equilateral triangle with its base along the
// top edge and its apex at the bottom centre. Six symmetries place copies of
// the wedge around a hexagon: three rotations keep the Up orientation, three
// mirrored rotations produce the Down orientation.
//
// # Generators
//
//	up, down := kaleido.GenerateMasks(w, h)     // 0/255 triangle masks
//	subMaps := kaleido.GenerateSubMaps(w, h)    // one Map per Symmetry
//	m := kaleido.NewMap(3*w, 3*h)
//	kaleido.GenerateKaleidoscopeMap(m, w, h)    // the full mosaic
//
// Generators are pure functions of (width, height): they do not validate
// their input (see CheckDimensions) and return bit-identical results for
// identical arguments.
//
// # Applying a map
//
// A Map is consumed by the resampler in the contrib/image package:
//
//	out := image.NewImage3[float32](m.Width(), m.Height())
//	image.Remap3(src, m.X, m.Y, out)
//
// or in one step with Render. Parallel variants take a caller-owned
// workerpool.Pool; Cache memoises results for repeated sizes.
package kaleido
