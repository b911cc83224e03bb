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

// Mask values.
const (
	MaskOff uint8 = 0
	MaskOn  uint8 = 255
)

// GenerateMasks returns width x height masks of the Up and Down triangles of
// a cell: 255 for pixels inside, 0 elsewhere.
//
// Membership uses the exact half-open rule of Kernel.Contains. The two masks
// overlap inside one cell; laid out on the lattice, where Down triangles are
// offset by half a cell, they are disjoint and cover every pixel:
//
//	up.At(x, y) != 0  XOR  down.At((x+width/2)%width, y) != 0   (even width)
//
// No validation is performed; see CheckDimensions.
func GenerateMasks(width, height int) (up, down *image.Image[uint8]) {
	k := NewKernel(width, height)
	return k.mask(Up), k.mask(Down)
}

func (k Kernel) mask(o Orientation) *image.Image[uint8] {
	m := image.NewImage[uint8](k.width, k.height)
	for y := 0; y < m.Height(); y++ {
		row := m.RowSlice(y)
		for x := range row {
			if k.Contains(o, x, y) {
				row[x] = MaskOn
			}
		}
	}
	return m
}
