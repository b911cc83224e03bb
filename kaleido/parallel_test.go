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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/workerpool"
)

func TestParallelGenerateMasksMatchesSerial(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	wantUp, wantDown := GenerateMasks(testWidth, testHeight)
	for _, p := range []*workerpool.Pool{nil, pool} {
		up, down := ParallelGenerateMasks(p, testWidth, testHeight)
		assert.Empty(t, cmp.Diff(rows(wantUp), rows(up)), "workers=%d", p.Workers())
		assert.Empty(t, cmp.Diff(rows(wantDown), rows(down)), "workers=%d", p.Workers())
	}
}

func TestParallelGenerateSubMapsNilPool(t *testing.T) {
	want := GenerateSubMaps(31, HeightFor(31))
	got := ParallelGenerateSubMaps(nil, 31, HeightFor(31))
	for i := range want {
		assert.Equal(t, want[i].Symmetry, got[i].Symmetry)
		assert.Empty(t, cmp.Diff(rows(want[i].Map.X), rows(got[i].Map.X)), "%v", want[i].Symmetry)
		assert.Empty(t, cmp.Diff(rows(want[i].Map.Y), rows(got[i].Map.Y)), "%v", want[i].Symmetry)
	}
}

func TestParallelGenerateKaleidoscopeMapBands(t *testing.T) {
	// More workers than bands of MinBandRows, and a height that does not
	// divide evenly into bands.
	pool := workerpool.New(7)
	defer pool.Close()

	const w = 24
	h := HeightFor(w)
	for _, height := range []int{3*h + 5, workerpool.MinBandRows + 1, 1} {
		serial := NewMap(2*w+3, height)
		GenerateKaleidoscopeMap(serial, w, h)
		parallel := NewMap(2*w+3, height)
		ParallelGenerateKaleidoscopeMap(pool, parallel, w, h)

		assert.Empty(t, cmp.Diff(rows(serial.X), rows(parallel.X)), "height %d", height)
		assert.Empty(t, cmp.Diff(rows(serial.Y), rows(parallel.Y)), "height %d", height)
	}
}
