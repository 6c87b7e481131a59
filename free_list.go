// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package freelist

import (
	"sync/atomic"
	"unsafe"

	"github.com/fmstephe/freelist/internal/dump"
)

// Capacity is the maximum number of released objects a Pool retains for
// reuse. It equals the native machine word width in bits, one bitmap bit per
// retained object. This is a design constant, not a tunable.
const Capacity = dump.Width

type Stats struct {
	Allocs   int
	Reused   int
	Misses   int
	Returned int
	Dropped  int
}

// A Pool recycles the storage of discarded objects. Its Allocator determines
// where the pooled objects live, see Heap for the default.
//
// Alloc, Reuse and ReuseOrAlloc are safe for arbitrary concurrent use, as is
// releasing the guards they return. Clear requires exclusive access.
type Pool[H, T any] struct {
	alloc Allocator[H, T]

	// Accounting fields
	allocs   atomic.Uint64
	reused   atomic.Uint64
	misses   atomic.Uint64
	returned atomic.Uint64
	dropped  atomic.Uint64

	dump dump.Dump
}

// New returns an empty Pool which manages handles through alloc.
func New[H, T any](alloc Allocator[H, T]) *Pool[H, T] {
	return &Pool[H, T]{
		alloc: alloc,
	}
}

// NewHeap returns an empty Pool of heap allocated elements.
func NewHeap[T any]() *Pool[*T, T] {
	return New[*T, T](Heap[T]{})
}

// Alloc returns a guard around a freshly allocated element initialized with
// contents. The pool is not consulted.
func (p *Pool[H, T]) Alloc(contents T) Reuse[H, T] {
	p.allocs.Add(1)

	return Reuse[H, T]{
		handle: p.alloc.New(contents),
		pool:   p,
	}
}

// Reuse attempts to revive a previously released element. On a hit the
// recycled storage is overwritten with contents and returned wrapped in a
// guard. On a miss it reports false without allocating, and the caller
// keeps contents.
func (p *Pool[H, T]) Reuse(contents T) (Reuse[H, T], bool) {
	raw, ok := p.dump.Recycle()
	if !ok {
		p.misses.Add(1)
		return Reuse[H, T]{}, false
	}
	p.reused.Add(1)

	// The storage still holds the previous occupant, replace it outright
	handle := p.alloc.FromRaw(raw)
	p.alloc.Assign(handle, contents)

	return Reuse[H, T]{
		handle: handle,
		pool:   p,
	}, true
}

// ReuseOrAlloc revives a previously released element, falling back to a
// fresh allocation when the pool is empty.
func (p *Pool[H, T]) ReuseOrAlloc(contents T) Reuse[H, T] {
	if r, ok := p.Reuse(contents); ok {
		return r
	}
	return p.Alloc(contents)
}

// Clear destroys every element currently retained by the pool.
//
// Clear requires exclusive access to the pool. No Alloc, Reuse or Release
// call may be in flight. Pools whose elements are not reclaimed by the
// garbage collector, e.g. arena backed pools, must be cleared before the
// backing store is destroyed.
func (p *Pool[H, T]) Clear() {
	p.dump.Drain(func(raw unsafe.Pointer) {
		p.alloc.Destroy(p.alloc.FromRaw(raw))
	})
}

// Stats returns the accumulated counters for this pool. Allocs counts fresh
// allocations, Reused/Misses count Reuse hits and misses, and
// Returned/Dropped count released guards which were retained or destroyed
// because the pool was full.
func (p *Pool[H, T]) Stats() Stats {
	return Stats{
		Allocs:   int(p.allocs.Load()),
		Reused:   int(p.reused.Load()),
		Misses:   int(p.misses.Load()),
		Returned: int(p.returned.Load()),
		Dropped:  int(p.dropped.Load()),
	}
}
