package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitFreezesSourceState(t *testing.T) {
	r := newWavefrontRegistry(10, 1e9)
	r.emit(vec2{1, 2}, vec2{30, 0}, 4, 1.5, 2.0)

	require.Equal(t, 1, r.count())
	w := r.fronts[0]
	assert.Equal(t, vec2{1, 2}, w.origin)
	assert.Equal(t, vec2{30, 0}, w.sourceVel)
	assert.Equal(t, 4.0, w.frequency)
	assert.Equal(t, 1.5, w.phase)
	assert.Equal(t, 2.0, w.birthTime)
	assert.Zero(t, w.radius)
}

func TestRegistryRadiusTracksAge(t *testing.T) {
	r := newWavefrontRegistry(10, 1e9)
	r.emit(vec2{100, 100}, vec2{}, 2, 0, 1.0)

	r.step(3.0, 343)
	require.Equal(t, 1, r.count())
	w := r.fronts[0]
	assert.InDelta(t, 2.0, w.age(3.0), 1e-12)
	assert.InDelta(t, 686.0, w.radius, 1e-9)
}

func TestRegistryRadiusFollowsSpeedChanges(t *testing.T) {
	r := newWavefrontRegistry(10, 1e9)
	r.emit(vec2{}, vec2{}, 2, 0, 0)

	r.step(1.0, 343)
	assert.InDelta(t, 343.0, r.fronts[0].radius, 1e-9)

	// Radius is recomputed from age, so a speed change rescales the ring.
	r.step(1.0, 100)
	assert.InDelta(t, 100.0, r.fronts[0].radius, 1e-9)
}

func TestRegistryExpiresByAge(t *testing.T) {
	r := newWavefrontRegistry(5, 1e9)
	r.emit(vec2{}, vec2{}, 2, 0, 0)

	r.step(4.9, 1)
	assert.Equal(t, 1, r.count())

	r.step(5.1, 1)
	assert.Equal(t, 0, r.count())
}

func TestRegistryExpiresByRadius(t *testing.T) {
	r := newWavefrontRegistry(100, 50)
	r.emit(vec2{}, vec2{}, 2, 0, 0)

	r.step(0.1, 343)
	assert.Equal(t, 1, r.count())

	r.step(0.2, 343)
	assert.Equal(t, 0, r.count(), "radius 68.6 exceeds the 50 m bound")
}

func TestRegistryKeepsSurvivorsInOrder(t *testing.T) {
	r := newWavefrontRegistry(5, 1e9)
	r.emit(vec2{}, vec2{}, 2, 0, 0)
	r.emit(vec2{}, vec2{}, 2, 0, 3)

	r.step(6, 1)
	require.Equal(t, 1, r.count())
	assert.Equal(t, 3.0, r.fronts[0].birthTime)
}

func TestRegistryClear(t *testing.T) {
	r := newWavefrontRegistry(10, 1e9)
	r.emit(vec2{}, vec2{}, 2, 0, 0)
	r.emit(vec2{}, vec2{}, 2, 0, 1)

	r.clear()
	assert.Equal(t, 0, r.count())
}
