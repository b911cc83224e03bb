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
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/image"
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/workerpool"
)

// Cache memoises generated masks, sub-maps and kaleidoscope maps by size.
// Concurrent requests for the same entry share a single generation.
//
// Returned values are shared between callers and must not be modified.
type Cache struct {
	pool  *workerpool.Pool
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]any
}

// NewCache returns an empty cache that generates with pool. pool may be nil.
func NewCache(pool *workerpool.Pool) *Cache {
	return &Cache{pool: pool, entries: make(map[string]any)}
}

// Masks returns the cached result of GenerateMasks.
func (c *Cache) Masks(width, height int) (up, down *image.Image[uint8]) {
	v := c.load(fmt.Sprintf("masks/%dx%d", width, height), func() any {
		up, down := ParallelGenerateMasks(c.pool, width, height)
		return [2]*image.Image[uint8]{up, down}
	}).([2]*image.Image[uint8])
	return v[Up], v[Down]
}

// SubMaps returns the cached result of GenerateSubMaps.
func (c *Cache) SubMaps(width, height int) []SubMap {
	return c.load(fmt.Sprintf("submaps/%dx%d", width, height), func() any {
		return ParallelGenerateSubMaps(c.pool, width, height)
	}).([]SubMap)
}

// KaleidoscopeMap returns the cached result of NewKaleidoscopeMap.
func (c *Cache) KaleidoscopeMap(width, height, cols, rows int) Map {
	return c.load(fmt.Sprintf("kaleidoscope/%dx%d/%dx%d", width, height, cols, rows), func() any {
		m := NewMap(max(cols, 0)*width, max(rows, 0)*height)
		ParallelGenerateKaleidoscopeMap(c.pool, m, width, height)
		return m
	}).(Map)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every cached entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

func (c *Cache) load(key string, build func() any) any {
	c.mu.Lock()
	v, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return v
	}

	v, _, _ = c.group.Do(key, func() (any, error) {
		// A call for key may have finished between the lookup above and Do.
		c.mu.Lock()
		v, ok := c.entries[key]
		c.mu.Unlock()
		if ok {
			return v, nil
		}

		v = build()
		c.mu.Lock()
		c.entries[key] = v
		c.mu.Unlock()
		return v, nil
	})
	return v
}
