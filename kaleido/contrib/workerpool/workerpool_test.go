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

package workerpool

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkers(t *testing.T) {
	pool := New(4)
	if got := pool.Workers(); got != 4 {
		t.Errorf("Workers() = %d, want 4", got)
	}
	pool.Close()
	if got := pool.Workers(); got != 1 {
		t.Errorf("Workers() after Close = %d, want 1", got)
	}

	def := New(0)
	defer def.Close()
	if got := def.Workers(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("New(0).Workers() = %d, want GOMAXPROCS %d", got, runtime.GOMAXPROCS(0))
	}

	var nilPool *Pool
	if got := nilPool.Workers(); got != 1 {
		t.Errorf("nil Workers() = %d, want 1", got)
	}
	nilPool.Close()
}

func TestBands(t *testing.T) {
	tests := []struct {
		workers, height int
		want            [][2]int
	}{
		{4, 10, [][2]int{{0, 4}, {4, 8}, {8, 10}}},
		{4, 258, [][2]int{{0, 65}, {65, 130}, {130, 195}, {195, 258}}},
		{8, 3, [][2]int{{0, 3}}},
		{2, 0, nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dw/%dh", tt.workers, tt.height), func(t *testing.T) {
			pool := New(tt.workers)
			defer pool.Close()
			got := pool.Bands(tt.height)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Bands(%d) = %v, want %v", tt.height, got, tt.want)
			}
		})
	}
}

// fillCanvas stamps each row of a height x width canvas with its row index
// through Rows, counting how often each row is written.
func fillCanvas(pool *Pool, width, height int) ([][]float32, []int32) {
	canvas := make([][]float32, height)
	for y := range canvas {
		canvas[y] = make([]float32, width)
	}
	visits := make([]int32, height)
	pool.Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&visits[y], 1)
			for x := range canvas[y] {
				canvas[y][x] = float32(y)
			}
		}
	})
	return canvas, visits
}

func TestRowsCoversEveryRowOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// 3x3 cells of height 86, one cell of height 5, and fewer rows than workers.
	for _, height := range []int{258, 5, 2, 1} {
		canvas, visits := fillCanvas(pool, 7, height)
		for y := range height {
			if visits[y] != 1 {
				t.Errorf("height %d: row %d filled %d times", height, y, visits[y])
			}
			if canvas[y][6] != float32(y) {
				t.Errorf("height %d: row %d holds %v", height, y, canvas[y][6])
			}
		}
	}
}

func TestRowsMatchesNilPool(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	want, _ := fillCanvas(nil, 5, 100)
	got, _ := fillCanvas(pool, 5, 100)
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got[y][x], want[y][x])
			}
		}
	}
}

func TestRowsZeroHeight(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.Rows(0, func(y0, y1 int) { called = true })
	pool.Each(0, func(i int) { called = true })
	if called {
		t.Error("empty work should not call fn")
	}
}

func TestEachBuildsEveryItem(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// Six sub-maps of uneven cost, then two masks.
	for _, n := range []int{6, 2} {
		built := make([]int32, n)
		pool.Each(n, func(i int) {
			if i%2 == 0 {
				runtime.Gosched()
			}
			atomic.AddInt32(&built[i], 1)
		})
		for i, c := range built {
			if c != 1 {
				t.Errorf("n=%d: item %d built %d times", n, i, c)
			}
		}
	}
}

func TestClosedPoolRunsOnCaller(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	_, visits := fillCanvas(pool, 3, 40)
	for y, v := range visits {
		if v != 1 {
			t.Errorf("row %d filled %d times", y, v)
		}
	}

	var n atomic.Int32
	pool.Each(6, func(int) { n.Add(1) })
	if n.Load() != 6 {
		t.Errorf("Each on closed pool built %d items, want 6", n.Load())
	}
}

func BenchmarkRows(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		fillCanvas(pool, 300, 258)
	}
}
