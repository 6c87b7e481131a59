// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena

import (
	"unsafe"
)

// Handles adapts an Arena into the handle capability consumed by the
// freelist package. Fresh handles are carved out of the arena's slabs and
// destroyed handles return their cell to the arena.
//
//	a := arena.New[Record]()
//	pool := freelist.New[*Record, Record](arena.NewHandles(a))
//
// The adapter holds only a pointer to its Arena and is copied freely.
type Handles[T any] struct {
	arena *Arena[T]
}

func NewHandles[T any](a *Arena[T]) Handles[T] {
	return Handles[T]{arena: a}
}

func (h Handles[T]) New(contents T) *T {
	p := h.arena.Alloc()
	*p = contents
	return p
}

func (h Handles[T]) IntoRaw(p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}

func (h Handles[T]) FromRaw(raw unsafe.Pointer) *T {
	return (*T)(raw)
}

func (h Handles[T]) Get(p *T) *T {
	return p
}

func (h Handles[T]) Assign(p *T, contents T) {
	*p = contents
}

func (h Handles[T]) Destroy(p *T) {
	h.arena.Free(p)
}
