// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package freelist

import (
	"testing"
)

type payload struct {
	Values [32]int64
}

func BenchmarkAlloc(b *testing.B) {
	pool := NewHeap[payload]()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := pool.Alloc(payload{})
		g.Release()
	}
}

func BenchmarkReuseOrAlloc(b *testing.B) {
	pool := NewHeap[payload]()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := pool.ReuseOrAlloc(payload{})
		g.Release()
	}
}

func BenchmarkReuseOrAllocParallel(b *testing.B) {
	pool := NewHeap[payload]()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := pool.ReuseOrAlloc(payload{})
			g.Release()
		}
	})
}
