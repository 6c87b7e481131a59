// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package freelist

import (
	"unsafe"
)

// An Allocator describes how a single-owner handle type H, owning one
// element of type T, is created, torn down to a raw address and rebuilt from
// one. It is the capability a Pool uses to move objects in and out of its
// internal dump.
//
// Implementations must be strictly single-owner. After IntoRaw the returned
// address must be the only live route to the object, and after FromRaw the
// address must not be used again. Shareable handle representations must not
// implement Allocator.
//
// Allocator values are copied freely by the Pool, so implementations should
// be small, typically empty structs or a single pointer.
type Allocator[H, T any] interface {
	// New returns a fresh handle owning a newly allocated element
	// initialized with contents.
	New(contents T) H

	// IntoRaw consumes h, yielding the raw address of the owned storage.
	// The element is not destroyed.
	IntoRaw(h H) unsafe.Pointer

	// FromRaw reinstates a handle from an address previously produced by
	// IntoRaw on a handle of the same concrete type.
	FromRaw(p unsafe.Pointer) H

	// Get returns a pointer to the element owned by h.
	Get(h H) *T

	// Assign overwrites the element owned by h with contents. The prior
	// contents are discarded wholesale. No storage is freed.
	Assign(h H, contents T)

	// Destroy releases the element owned by h.
	Destroy(h H)
}
