// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

// The fuzzutil package converts the raw byte stream of a Go fuzz target
// into a sequence of test steps. Each test package supplies a stepMaker
// which consumes bytes and builds one step at a time.
package fuzzutil

import (
	"encoding/binary"
	"math/rand"
)

// A ByteConsumer destructively reads values off the front of a byte slice.
// When the slice runs dry every read completes with zero bytes, so a step
// built from an exhausted consumer is always well formed.
type ByteConsumer struct {
	bytes []byte
}

func NewByteConsumer(bytes []byte) *ByteConsumer {
	return &ByteConsumer{
		bytes: bytes,
	}
}

func (c *ByteConsumer) Len() int {
	return len(c.bytes)
}

func (c *ByteConsumer) Bytes(size int) []byte {
	consumed := make([]byte, size)
	copy(consumed, c.bytes)

	if len(c.bytes) <= size {
		c.bytes = c.bytes[:0]
	} else {
		c.bytes = c.bytes[size:]
	}
	return consumed
}

func (c *ByteConsumer) Byte() byte {
	dest := c.Bytes(1)
	return dest[0]
}

func (c *ByteConsumer) Uint16() uint16 {
	dest := c.Bytes(2)
	return binary.LittleEndian.Uint16(dest)
}

type Step interface {
	DoStep()
}

type TestRun struct {
	steps   []Step
	cleanup func()
}

func NewTestRun(bytes []byte, stepMaker func(*ByteConsumer) Step, cleanup func()) *TestRun {
	tr := &TestRun{
		steps:   make([]Step, 0),
		cleanup: cleanup,
	}
	byteConsumer := NewByteConsumer(bytes)

	for byteConsumer.Len() > 0 {
		step := stepMaker(byteConsumer)
		tr.steps = append(tr.steps, step)
	}
	return tr
}

func (t *TestRun) Run() {
	defer t.cleanup()
	for _, step := range t.steps {
		step.DoStep()
	}
}

// MakeRandomTestCases builds the seed corpus for a fuzz target. The seeds
// are deterministic so repeated fuzz runs start from the same corpus.
func MakeRandomTestCases() [][]byte {
	r := rand.New(rand.NewSource(1))
	return [][]byte{
		{},
		randomBytes(r, 1),
		randomBytes(r, 10),
		randomBytes(r, 100),
		randomBytes(r, 1000),
		randomBytes(r, 10000),
	}
}

func randomBytes(r *rand.Rand, size int) []byte {
	bytes := make([]byte, size)
	r.Read(bytes)
	return bytes
}
