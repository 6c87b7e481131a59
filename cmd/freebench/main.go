// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

// freebench works a freelist pool from many goroutines and reports the
// reuse behaviour observed.
package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/fmstephe/freelist"
	"github.com/fmstephe/freelist/arena"
	"github.com/spf13/pflag"
)

var (
	goroutinesFlag = pflag.Int("goroutines", 8, "The number of goroutines working the pool concurrently")
	iterationsFlag = pflag.Int("iterations", 1_000_000, "The number of reuse-or-alloc cycles per goroutine")
	backendFlag    = pflag.String("backend", "heap", "Where the pooled objects live, heap or arena")
)

// Pointer-free so the parcels can live in an arena as well as on the heap
type parcel struct {
	Id      int64
	Payload [56]byte
}

func main() {
	pflag.Parse()

	switch *backendFlag {
	case "heap":
		run(freelist.NewHeap[parcel]())
	case "arena":
		a := arena.New[parcel]()
		pool := freelist.New[*parcel, parcel](arena.NewHandles(a))
		run(pool)

		arenaStats := a.Stats()
		fmt.Printf("arena:    %d raw allocs, %d reused, %d slabs\n",
			arenaStats.RawAllocs, arenaStats.Reused, arenaStats.Slabs)
		if err := a.Destroy(); err != nil {
			fmt.Printf("Error destroying arena %s\n", err)
		}
	default:
		fmt.Printf("Unknown --backend %q. Nothing to run.\n", *backendFlag)
	}
}

func run[H any](pool *freelist.Pool[H, parcel]) {
	goroutines := *goroutinesFlag
	iterations := *iterationsFlag

	start := time.Now()

	complete := sync.WaitGroup{}
	for g := 0; g < goroutines; g++ {
		complete.Add(1)
		go func() {
			defer complete.Done()
			for n := 0; n < iterations; n++ {
				r := pool.ReuseOrAlloc(parcel{Id: int64(n)})
				r.Release()
			}
		}()
	}
	complete.Wait()

	elapsed := time.Since(start)

	pool.Clear()

	stats := pool.Stats()
	cycles := goroutines * iterations
	fmt.Printf("%s backend: %d goroutines, %d cycles in %s (%.1f ns/cycle)\n",
		*backendFlag, goroutines, cycles, elapsed, float64(elapsed.Nanoseconds())/float64(cycles))
	fmt.Printf("pool:     %d allocs, %d reused, %d misses, %d returned, %d dropped\n",
		stats.Allocs, stats.Reused, stats.Misses, stats.Returned, stats.Dropped)
}
