// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

// The dump package implements a bounded lock-free exchange of raw object
// addresses. It is the core of the freelist package, which layers handle
// management and pooling on top of it.
package dump

import (
	"math/bits"
	"sync/atomic"
	"unsafe"
)

// Width is the number of slots in a Dump. Each bitmap word spends one bit
// per slot, which fixes the capacity to the native word size, 32 or 64.
const Width = bits.UintSize

// A Dump holds up to Width addresses of previously allocated objects
// waiting to be reused.
//
// Slot ownership is arbitrated by two atomic bitmap words. Bit i of writers
// is set while slot i is claimed by a thrower or holds a published address,
// i.e. while the slot is not free for a new thrower. Bit i of readers is set
// only while slot i holds a published address ready to be claimed. A set
// reader bit always implies a set writer bit.
//
// Each slot moves through four states, tagged (writer bit, reader bit)
//
//	free (0,0) -> writing (1,0) -> ready (1,1) -> reading (1,0) -> free
//
// Writing and reading share a tag. A recycler clears the reader bit before
// the writer bit, so the writer bit stays set until the slot is free again.
//
// The slot array itself is unsynchronized. A thrower writes a slot only
// between claiming its writer bit and publishing its reader bit, and a
// recycler reads (then nils) a slot only between claiming its reader bit and
// releasing its writer bit. At most one
// goroutine can occupy either window for a given slot, and the atomic
// operations on the bitmaps order the slot accesses of consecutive owners.
//
// The zero value is an empty Dump ready for use.
type Dump struct {
	writers atomic.Uintptr
	readers atomic.Uintptr

	// The slots hold unsafe.Pointer rather than uintptr so that a parked
	// heap object stays visible to the garbage collector for as long as
	// the dump retains it. Non-heap addresses pass through unharmed.
	slots [Width]unsafe.Pointer
}

// Throw attempts to retain p for later reuse. It reports false when all
// Width slots are occupied, in which case the caller keeps ownership of p
// and is responsible for destroying the object behind it.
func (d *Dump) Throw(p unsafe.Pointer) bool {
	writers := d.writers.Load()
	var idx int
	for {
		// Lowest free slot
		idx = bits.TrailingZeros(^uint(writers))
		if idx == Width {
			return false
		}
		if d.writers.CompareAndSwap(writers, writers|1<<idx) {
			break
		}
		writers = d.writers.Load()
	}

	// The writer bit is ours, no other goroutine can touch this slot
	// until we publish it
	d.slots[idx] = p

	// Publish the slot. The CAS orders the slot write above before the
	// slot read of whichever recycler claims this bit.
	for {
		readers := d.readers.Load()
		if d.readers.CompareAndSwap(readers, readers|1<<idx) {
			return true
		}
	}
}

// Recycle attempts to claim a previously thrown address. It reports false
// when the dump holds no published addresses.
func (d *Dump) Recycle() (unsafe.Pointer, bool) {
	readers := d.readers.Load()
	var idx int
	for {
		// Lowest published slot
		idx = bits.TrailingZeros(uint(readers))
		if idx == Width {
			return nil, false
		}
		if d.readers.CompareAndSwap(readers, readers&^(1<<idx)) {
			break
		}
		readers = d.readers.Load()
	}

	// The reader bit is ours, and no thrower can claim the slot until
	// the writer bit is released below
	p := d.slots[idx]

	// Don't keep the object reachable after handing it over
	d.slots[idx] = nil

	// Release the slot back to throwers. Nothing about the slot contents
	// is published here, the bit only frees the slot.
	for {
		writers := d.writers.Load()
		if d.writers.CompareAndSwap(writers, writers&^(1<<idx)) {
			return p, true
		}
	}
}

// Drain removes every published address from the dump, invoking f on each.
// Afterwards the dump is empty.
//
// Drain requires exclusive access to the dump. No Throw or Recycle may be
// in flight. A throw which had claimed a slot but not yet published it
// would neither be visited nor preserved, so weakening this precondition
// leaks the in-flight address.
func (d *Dump) Drain(f func(unsafe.Pointer)) {
	readers := uint(d.readers.Load())
	d.readers.Store(0)
	d.writers.Store(0)

	for readers != 0 {
		idx := bits.TrailingZeros(readers)
		readers &^= 1 << idx

		p := d.slots[idx]
		d.slots[idx] = nil
		f(p)
	}
}
