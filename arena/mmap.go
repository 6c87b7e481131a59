// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func mmapSlab(conf AllocConfig) []byte {
	data, err := unix.Mmap(-1, 0, int(conf.SlabSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(fmt.Errorf("cannot allocate %#v via mmap because %s", conf, err))
	}

	return data
}

func munmapSlab(data []byte) error {
	return unix.Munmap(data)
}
