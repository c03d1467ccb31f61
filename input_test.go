package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecayVelocity(t *testing.T) {
	v := decayVelocity(vec2{100, 0}, dragReleaseTau)
	assert.InDelta(t, 100/math.E, v.x, 1e-9, "one time constant leaves 1/e of the speed")

	assert.Equal(t, vec2{}, decayVelocity(vec2{0.4, 0}, dragReleaseTau),
		"sub-epsilon speeds snap to zero")
}
