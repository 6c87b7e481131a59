// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package freelist

import (
	"unsafe"
)

// Heap is the default Allocator. Handles are plain pointers to elements
// allocated on the Go heap. Destroy simply lets go of the element and leaves
// reclamation to the garbage collector.
type Heap[T any] struct{}

func (Heap[T]) New(contents T) *T {
	h := new(T)
	*h = contents
	return h
}

func (Heap[T]) IntoRaw(h *T) unsafe.Pointer {
	return unsafe.Pointer(h)
}

func (Heap[T]) FromRaw(p unsafe.Pointer) *T {
	return (*T)(p)
}

func (Heap[T]) Get(h *T) *T {
	return h
}

func (Heap[T]) Assign(h *T, contents T) {
	*h = contents
}

func (Heap[T]) Destroy(h *T) {
}
