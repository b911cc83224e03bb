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

// Package workerpool runs image-generation work on a fixed set of
// goroutines that live for the whole render.
//
// Two kinds of work appear in the kaleidoscope pipeline: destination rows,
// which are independent and uniform, and a handful of whole items (two masks,
// six sub-maps) whose costs differ. Rows splits the former into contiguous
// bands; Each hands out the latter one at a time.
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Rows(dst.Height(), func(y0, y1 int) {
//	    fillRows(dst, y0, y1)
//	})
//
// A nil *Pool is valid and runs everything on the calling goroutine, so
// callers never need a separate sequential path.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MinBandRows is the smallest band Rows hands to a worker. Thinner bands
// cost more in scheduling than the rows take to fill.
const MinBandRows = 4

// Pool owns a fixed set of worker goroutines.
type Pool struct {
	workers int
	tasks   chan task

	stop    sync.Once
	stopped atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of workers goroutines. workers <= 0 means GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{workers: workers, tasks: make(chan task, 2*workers)}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// Workers returns how many goroutines run work concurrently: 1 for a nil or
// closed pool.
func (p *Pool) Workers() int {
	if p == nil || p.stopped.Load() {
		return 1
	}
	return p.workers
}

// Close stops the workers after queued work drains. Work submitted after
// Close runs on the caller. Close is idempotent and safe on nil.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.stop.Do(func() {
		p.stopped.Store(true)
		close(p.tasks)
	})
}

// Bands returns the [y0, y1) row ranges Rows would use for height rows: at
// most one per worker, each at least MinBandRows tall except possibly the
// last, covering [0, height) in order.
func (p *Pool) Bands(height int) [][2]int {
	if height <= 0 {
		return nil
	}
	n := min(p.Workers(), (height+MinBandRows-1)/MinBandRows)
	size := (height + n - 1) / n
	bands := make([][2]int, 0, n)
	for y0 := 0; y0 < height; y0 += size {
		bands = append(bands, [2]int{y0, min(y0+size, height)})
	}
	return bands
}

// Rows calls fill once per band of [0, height) and returns when every band
// is done. fill must only touch its own rows.
func (p *Pool) Rows(height int, fill func(y0, y1 int)) {
	bands := p.Bands(height)
	if len(bands) <= 1 {
		if height > 0 {
			fill(0, height)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, b := range bands {
		p.tasks <- task{run: func() { fill(b[0], b[1]) }, done: &wg}
	}
	wg.Wait()
}

// Each calls build(i) for every i in [0, n), with idle workers claiming the
// next index. It suits a few items of uneven cost, such as the six
// sub-maps, whose triangles cover different numbers of pixels.
func (p *Pool) Each(n int, build func(i int)) {
	workers := min(p.Workers(), n)
	if workers <= 1 {
		for i := range n {
			build(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for i := int(next.Add(1) - 1); i < n; i = int(next.Add(1) - 1) {
					build(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
