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
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/workerpool"
)

// ParallelGenerateMasks is GenerateMasks with the two masks built
// concurrently. A nil pool runs sequentially.
func ParallelGenerateMasks(pool *workerpool.Pool, width, height int) (up, down *image.Image[uint8]) {
	k := NewKernel(width, height)
	var masks [2]*image.Image[uint8]
	pool.Each(len(masks), func(i int) {
		masks[i] = k.mask(Orientation(i))
	})
	return masks[Up], masks[Down]
}

// ParallelGenerateSubMaps is GenerateSubMaps with the six variants built
// concurrently. A nil pool runs sequentially.
func ParallelGenerateSubMaps(pool *workerpool.Pool, width, height int) []SubMap {
	k := NewKernel(width, height)
	subMaps := make([]SubMap, numSymmetries)
	pool.Each(numSymmetries, func(i int) {
		subMaps[i] = k.subMap(Symmetries[i])
	})
	return subMaps
}

// ParallelGenerateKaleidoscopeMap is GenerateKaleidoscopeMap with the rows of
// dst split into bands across pool workers. The result is identical to the
// sequential version. A nil pool runs sequentially.
func ParallelGenerateKaleidoscopeMap(pool *workerpool.Pool, dst Map, width, height int) {
	if !dst.Valid() || width <= 0 || height <= 0 {
		GenerateKaleidoscopeMap(dst, width, height)
		return
	}
	c := newComposer(width, height, pool)
	pool.Rows(dst.Height(), func(y0, y1 int) {
		c.fillRows(dst, y0, y1)
	})
}
