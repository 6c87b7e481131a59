// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

type badStruct struct {
	badField string
}

type deepBadStruct struct {
	badInt       *int
	deepBadField badStruct
}

type manyPointers struct {
	chanField      chan int
	funcField      func(int) int
	interfaceField any
	mapField       map[int]int
	pointerField   *int
	sliceField     []int
	stringField    string
}

func TestBadTypes(t *testing.T) {
	// No arrays with pointers in them
	assert.EqualError(t, containsNoPointers[[32]badStruct](), "found pointer(s): [32](arena.badStruct)badField<string>")
	// No channels
	assert.EqualError(t, containsNoPointers[chan int](), "found pointer(s): <chan int>")
	// No functions
	assert.EqualError(t, containsNoPointers[func(int) int](), "found pointer(s): <func(int) int>")
	// No interfaces
	assert.EqualError(t, containsNoPointers[any](), "found pointer(s): <interface {}>")
	// No maps
	assert.EqualError(t, containsNoPointers[map[int]int](), "found pointer(s): <map[int]int>")
	// No pointer(s)
	assert.EqualError(t, containsNoPointers[*int](), "found pointer(s): <*int>")
	// No slices
	assert.EqualError(t, containsNoPointers[[]int](), "found pointer(s): <[]int>")
	// No strings
	assert.EqualError(t, containsNoPointers[string](), "found pointer(s): <string>")
	// No structs with any pointerful fields
	assert.EqualError(t, containsNoPointers[badStruct](), "found pointer(s): (arena.badStruct)badField<string>")
	assert.EqualError(t, containsNoPointers[deepBadStruct](), "found pointer(s): (arena.deepBadStruct)badInt<*int>,(arena.deepBadStruct)deepBadField(arena.badStruct)badField<string>")
	// No unsafe pointer(s)
	assert.EqualError(t, containsNoPointers[unsafe.Pointer](), "found pointer(s): <unsafe.Pointer>")
	// We should find all of the bad fields in this struct
	assert.EqualError(t, containsNoPointers[manyPointers](), "found pointer(s): "+
		"(arena.manyPointers)chanField<chan int>,"+
		"(arena.manyPointers)funcField<func(int) int>,"+
		"(arena.manyPointers)interfaceField<interface {}>,"+
		"(arena.manyPointers)mapField<map[int]int>,"+
		"(arena.manyPointers)pointerField<*int>,"+
		"(arena.manyPointers)sliceField<[]int>,"+
		"(arena.manyPointers)stringField<string>")
}

type goodStruct struct {
	intField   int
	floatField float64
	wordField  uintptr
}

type deepGoodStruct struct {
	boolField  bool
	deepField  goodStruct
	arrayField [8]goodStruct
}

func TestGoodTypes(t *testing.T) {
	assert.Nil(t, containsNoPointers[bool]())
	assert.Nil(t, containsNoPointers[int]())
	assert.Nil(t, containsNoPointers[uint64]())
	assert.Nil(t, containsNoPointers[float64]())
	assert.Nil(t, containsNoPointers[complex128]())
	assert.Nil(t, containsNoPointers[[16]int32]())
	assert.Nil(t, containsNoPointers[goodStruct]())
	assert.Nil(t, containsNoPointers[deepGoodStruct]())
}

func TestNewPanicsOnPointerfulType(t *testing.T) {
	assert.Panics(t, func() {
		New[badStruct]()
	})
	assert.Panics(t, func() {
		NewSized[*int](1 << 10)
	})
}
