// Package buffer provides fixed-length, non-owning views over contiguous
// float64 storage, plus a build-time arena that carves pre-allocated storage
// into views.
//
// Views are the currency of the whole library: layer inputs, outputs,
// parameters, and gradients are all views. A view never owns its storage and
// never changes length; the storage belongs to whoever allocated it (a
// network at build time, or the caller) and is lent to an operation for the
// duration of a single call. Writes through a view are visible to the owner
// immediately.
package buffer

import "fmt"

// View is a non-owning, fixed-length window onto contiguous float64 storage.
//
// Operations that consume a view declare the exact length they expect and
// reject anything else; a view is never truncated or grown to fit.
type View []float64

// Len returns the number of elements in the view.
func (v View) Len() int { return len(v) }

// Zero overwrites every element with zero, in place.
func (v View) Zero() { clear(v) }

// Arena is a contiguous block of storage carved into views.
//
// An arena is filled exactly once, during a build phase; every Alloc hands
// out the next span of the block. After the build phase completes no further
// allocation happens, which is how forward and backward passes stay free of
// dynamic allocation.
type Arena struct {
	data []float64
	off  int
}

// NewArena allocates an arena holding n float64 values.
func NewArena(n int) *Arena {
	return &Arena{data: make([]float64, n)}
}

// Alloc carves the next n elements out of the arena and returns them as a
// view. Exceeding the arena's capacity is a sizing bug in the build phase,
// and panics.
func (a *Arena) Alloc(n int) View {
	if a.off+n > len(a.data) {
		panic(fmt.Sprintf("buffer: arena exhausted: need %d, have %d of %d left",
			n, len(a.data)-a.off, len(a.data)))
	}
	v := View(a.data[a.off : a.off+n : a.off+n])
	a.off += n
	return v
}

// Remaining reports how many elements are still unallocated.
func (a *Arena) Remaining() int { return len(a.data) - a.off }
