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
	"fmt"

	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/image"
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/workerpool"
)

// Render builds the kaleidoscope of src on a cols x rows grid of cells and
// resamples src with it. src must be one cell: width W and height
// HeightFor(W). A nil pool runs sequentially.
func Render(pool *workerpool.Pool, src *image.Image3[float32], cols, rows int) (*image.Image3[float32], error) {
	if err := checkRender(src, cols, rows); err != nil {
		return nil, err
	}
	m := NewMap(cols*src.Width(), rows*src.Height())
	ParallelGenerateKaleidoscopeMap(pool, m, src.Width(), src.Height())
	return resample(pool, src, m), nil
}

// Render is like the package-level Render but reuses cached maps.
func (c *Cache) Render(src *image.Image3[float32], cols, rows int) (*image.Image3[float32], error) {
	if err := checkRender(src, cols, rows); err != nil {
		return nil, err
	}
	m := c.KaleidoscopeMap(src.Width(), src.Height(), cols, rows)
	return resample(c.pool, src, m), nil
}

// RenderSubMap resamples src with one sub-map, drawing a single wedge copy.
func RenderSubMap(pool *workerpool.Pool, src *image.Image3[float32], sm SubMap) *image.Image3[float32] {
	return resample(pool, src, sm.Map)
}

func checkRender(src *image.Image3[float32], cols, rows int) error {
	if src == nil {
		return fmt.Errorf("render: %w: nil source", ErrInvalidWidth)
	}
	if err := CheckDimensions(src.Width(), src.Height()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := checkGrid(cols, rows); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func resample(pool *workerpool.Pool, src *image.Image3[float32], m Map) *image.Image3[float32] {
	out := image.NewImage3[float32](m.Width(), m.Height())
	image.ParallelRemap3(pool, src, m.X, m.Y, out)
	return out
}
