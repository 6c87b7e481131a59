// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

// # Usage
//
// The freelist package provides a bounded lock-free pool of reusable heap
// objects. It is aimed at multi-producer/multi-consumer workloads where
// objects are allocated and discarded at comparable rates, so a small fixed
// cache of storage is enough to remove most allocator traffic.
//
// Each Pool instance recycles the storage of a single element type,
// controlled by the generic types of the Pool e.g.
//
//	pool := freelist.NewHeap[Record]()
//
// recycles Record storage allocated on the Go heap.
//
// Objects are handed out wrapped in a Reuse guard. Releasing the guard
// offers the object's storage back to the pool instead of discarding it
//
//	r := pool.Alloc(Record{Id: 1})
//	useRecord(r.Value())
//	r.Release()
//
//	// Likely reuses the storage released above
//	r2 := pool.ReuseOrAlloc(Record{Id: 2})
//	defer r2.Release()
//
// Reuse is a hint, never a guarantee. The pool retains at most Capacity
// released objects at a time. Releasing into a full pool destroys the object
// in place, and Pool.Reuse reports a miss when the pool is empty. Both paths
// leave the caller with a fully usable object or their original contents, so
// no failure handling is ever required around pool operations.
//
// A recycled object's storage still holds the previous occupant's contents
// when it is claimed. The pool overwrites those contents wholesale before
// handing the object out, so callers always observe a brand new value, just
// possibly at a previously used address.
//
// # Custom Handles
//
// By default objects live on the Go heap behind plain pointers (the Heap
// allocator). Any single-owner handle representation can be pooled by
// implementing the Allocator interface e.g. the arena package pools objects
// carved out of mmap'd slabs
//
//	a := arena.New[Record]()
//	pool := freelist.New[*Record, Record](arena.NewHandles(a))
//
// Allocator implementations must be strictly single-owner. Once a handle's
// address has been surrendered to the pool there must be no other live route
// to that object. Reference counted or otherwise shareable handles must not
// be pooled, they make use-after-free trivial to construct.
//
// # Memory Model Constraints
//
// Pool.Alloc, Pool.Reuse, Pool.ReuseOrAlloc and Reuse.Release are safe for
// arbitrary concurrent use on a shared Pool. None of them block, and none of
// them take locks. The implementation retries two word-sized compare-and-swap
// operations under contention, so an individual call is not wait-free, but
// some call always makes progress.
//
// Pool.Clear requires exclusive access to the Pool. It must not run
// concurrently with any other pool operation, including guard releases. A
// Pool holding released objects must be cleared before it becomes
// unreachable when the objects' storage is not garbage collected, e.g. when
// pooling arena allocations.
//
// There is no ordering guarantee between distinct released objects. Two
// releases from different goroutines may be observed by recyclers in either
// order.
package freelist
