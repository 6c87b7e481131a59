// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena

import (
	"unsafe"

	"github.com/fmstephe/flib/fmath"
)

type AllocConfig struct {
	RequestedCellSize uint64
	RequestedSlabSize uint64
	//
	CellSize     uint64
	CellsPerSlab uint64
	SlabSize     uint64
}

func newAllocConfig(requestedCellSize, requestedSlabSize uint64) AllocConfig {
	cellSize := uint64(fmath.NxtPowerOfTwo(int64(requestedCellSize)))

	// A free cell stores the free list link in its own first word, so a
	// cell can never be smaller than a pointer
	if cellSize < uint64(unsafe.Sizeof(uintptr(0))) {
		cellSize = uint64(unsafe.Sizeof(uintptr(0)))
	}

	slabSize := uint64(fmath.NxtPowerOfTwo(int64(requestedSlabSize)))
	if slabSize < cellSize {
		// If the slab is too small - we match the cell size for one
		// allocation per slab
		slabSize = cellSize
	}

	return AllocConfig{
		RequestedCellSize: requestedCellSize,
		RequestedSlabSize: requestedSlabSize,

		CellSize:     cellSize,
		CellsPerSlab: slabSize / cellSize,
		SlabSize:     slabSize,
	}
}
