package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalRingFIFO(t *testing.T) {
	r := newSignalRing(3)
	assert.Empty(t, r.values())

	r.push(1)
	r.push(2)
	assert.Equal(t, []float64{1, 2}, r.values())

	r.push(3)
	r.push(4)
	assert.Equal(t, []float64{2, 3, 4}, r.values(), "oldest sample falls off first")
}

func TestSignalRingValuesAreCopies(t *testing.T) {
	r := newSignalRing(2)
	r.push(7)

	vals := r.values()
	vals[0] = -1
	assert.Equal(t, []float64{7}, r.values())
}

func TestSignalRingClear(t *testing.T) {
	r := newSignalRing(2)
	r.push(1)
	r.push(2)

	r.clear()
	assert.Empty(t, r.values())

	r.push(5)
	assert.Equal(t, []float64{5}, r.values())
}

func TestSignalRingMinCapacity(t *testing.T) {
	r := newSignalRing(0)
	r.push(1)
	r.push(2)
	assert.Equal(t, []float64{2}, r.values())
}
