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
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidWidth is returned for a non-positive cell width.
	ErrInvalidWidth = errors.New("kaleido: cell width must be positive")
	// ErrAspectRatio is returned when the cell height does not make the
	// wedge equilateral.
	ErrAspectRatio = errors.New("kaleido: cell height must be width·√3/2")
	// ErrInvalidGrid is returned for a canvas with no cells.
	ErrInvalidGrid = errors.New("kaleido: canvas needs at least one column and row")
)

// HeightFor returns the cell height that makes the wedge of the given width
// equilateral, truncated to whole pixels.
func HeightFor(width int) int {
	return int(float64(width) * sqrt3 / 2)
}

// CheckDimensions validates a cell size. The height may be width·√3/2
// truncated or rounded. The generators never call it; callers that need
// exact geometry do.
func CheckDimensions(width, height int) error {
	if width <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	exact := float64(width) * sqrt3 / 2
	if height <= 0 || (height != int(exact) && height != int(math.Round(exact))) {
		return fmt.Errorf("%w: got %dx%d, want height %d", ErrAspectRatio, width, height, int(exact))
	}
	return nil
}

func checkGrid(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, cols, rows)
	}
	return nil
}
