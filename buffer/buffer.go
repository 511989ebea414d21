// Copyright 2026 The fixnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package buffer provides the public API for fixnet's numeric buffer views.
//
// A View is a non-owning, fixed-length window onto contiguous float64
// storage; an Arena carves pre-allocated storage into views during a build
// phase. Together they are how the library keeps forward and backward
// computation free of dynamic allocation.
//
// Example:
//
//	arena := buffer.NewArena(8)
//	in := arena.Alloc(3)   // view of 3 elements
//	out := arena.Alloc(5)  // view of the next 5
package buffer

import (
	"github.com/fixnet-ml/fixnet/internal/buffer"
)

// View is a non-owning, fixed-length window onto contiguous float64 storage.
type View = buffer.View

// Arena is a contiguous block of storage carved into views at build time.
type Arena = buffer.Arena

// NewArena allocates an arena holding n float64 values.
func NewArena(n int) *Arena {
	return buffer.NewArena(n)
}
