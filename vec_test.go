package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecOps(t *testing.T) {
	a := vec2{3, 4}
	b := vec2{-1, 2}

	assert.Equal(t, vec2{2, 6}, a.add(b))
	assert.Equal(t, vec2{4, 2}, a.sub(b))
	assert.Equal(t, vec2{6, 8}, a.mul(2))
	assert.InDelta(t, 5.0, a.dot(b), 1e-12)
	assert.InDelta(t, 5.0, a.len(), 1e-12)
}

func TestNorm(t *testing.T) {
	n := vec2{0, -8}.norm()
	assert.InDelta(t, 0.0, n.x, 1e-12)
	assert.InDelta(t, -1.0, n.y, 1e-12)

	assert.Equal(t, vec2{}, vec2{}.norm(), "zero vector stays zero instead of dividing by zero")
}

func TestClampFloat(t *testing.T) {
	tests := []struct {
		name            string
		v, lo, hi, want float64
	}{
		{"inside", 4, 0, 10, 4},
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"positive infinity", math.Inf(1), 0, 10, 10},
		{"negative infinity", math.Inf(-1), 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampFloat(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestClampToField(t *testing.T) {
	assert.Equal(t, vec2{0, fieldH}, clampToField(vec2{-10, fieldH + 50}))

	in := vec2{fieldW / 2, fieldH / 2}
	assert.Equal(t, in, clampToField(in))
}
