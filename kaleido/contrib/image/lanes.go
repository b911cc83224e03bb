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

package image

import (
	"os"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// vectorBytes is the widest vector register the CPU offers, used to pad rows.
var vectorBytes = detectVectorBytes()

func detectVectorBytes() int {
	// Check if wide rows are disabled via environment variable
	if os.Getenv("KALEIDO_NO_SIMD") != "" {
		return 16
	}
	switch {
	case cpu.X86.HasAVX512F:
		return 64
	case cpu.X86.HasAVX2:
		return 32
	}
	// NEON, SSE2 and scalar targets all use 16-byte vectors.
	return 16
}

// VectorBytes returns the row alignment in bytes.
func VectorBytes() int {
	return vectorBytes
}

// MaxLanes returns how many elements of T fit into one vector register.
func MaxLanes[T Pixel]() int {
	var zero T
	return max(1, vectorBytes/int(unsafe.Sizeof(zero)))
}
