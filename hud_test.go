package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftSign(t *testing.T) {
	assert.Equal(t, 1, shiftSign(2.5, 2))
	assert.Equal(t, -1, shiftSign(1.5, 2))
	assert.Equal(t, 0, shiftSign(2.0, 2))
	assert.Equal(t, 0, shiftSign(2.001, 2), "inside the indifference band")
}

func TestShiftTag(t *testing.T) {
	assert.Equal(t, " (blueshift)", shiftTag(2.5, 2))
	assert.Equal(t, " (redshift)", shiftTag(1.5, 2))
	assert.Equal(t, "", shiftTag(2.0, 2))
}

func TestFreqMeterSettles(t *testing.T) {
	m := newFreqMeter(2)
	for i := 0; i < 600; i++ {
		m.update(5)
	}
	assert.InDelta(t, 5.0, m.pos, 0.01, "spring settles on the target")
}
