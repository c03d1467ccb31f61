package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSteps(dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = dt
	}
	return out
}

func maxAbs(vals []float64) float64 {
	m := 0.0
	for _, v := range vals {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func TestNewEngineFillsAndClampsConfig(t *testing.T) {
	e := newEngine(engineConfig{})
	assert.Equal(t, defaultSoundSpeed, e.soundSpeed)
	assert.Equal(t, defaultFrequency, e.frequency)

	e = newEngine(engineConfig{frequency: 500, soundSpeed: 3})
	assert.Equal(t, maxEmitFrequency, e.frequency)
	assert.Equal(t, minSoundSpeed, e.soundSpeed)
}

func TestEmissionCadence(t *testing.T) {
	tests := []struct {
		name string
		dts  []float64
	}{
		{"60 Hz steps", fixedSteps(1.0/60, 600)},
		{"240 Hz steps", fixedSteps(1.0/240, 2400)},
		{"alternating steps", func() []float64 {
			var out []float64
			for len(out) < 900 {
				out = append(out, 1.0/60, 1.0/120, 1.0/120)
			}
			return out
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(defaultEngineConfig())
			e.initialize(vec2{100, 320}, vec2{800, 320})
			total := 0.0
			for _, dt := range tt.dts {
				e.update(dt)
				total += dt
			}
			want := math.Floor(total * defaultFrequency)
			assert.InDelta(t, want, float64(e.totalEmitted), 1.0,
				"cadence drifts at most one emission over %.1f s", total)
		})
	}
}

func TestWavefrontKeepsBirthFrequency(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	e.initialize(vec2{100, 320}, vec2{800, 320})

	for i := 0; i < 60; i++ {
		e.update(1.0 / 60)
	}
	require.NotZero(t, e.fronts.count())

	e.setEmittedFrequency(5)
	for i := 0; i < 60; i++ {
		e.update(1.0 / 60)
	}

	assert.Equal(t, 2.0, e.fronts.fronts[0].frequency, "front in flight keeps its birth frequency")
	assert.Equal(t, 5.0, e.fronts.fronts[e.fronts.count()-1].frequency)
}

func TestSilenceHoldsFrequencyAndZeroesAmplitude(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	// 192 m apart: the first front needs well over a second to cross.
	e.initialize(vec2{384, 320}, vec2{576, 320})

	for i := 0; i < 60; i++ {
		e.update(1.0 / 60)
	}

	snap := e.snapshot()
	assert.Equal(t, defaultFrequency, snap.observedFrequency, "seeded value holds through silence")
	assert.Zero(t, maxAbs(snap.observedSignal))
	assert.Greater(t, maxAbs(snap.emittedSignal), 0.9, "emitted tone runs from the start")
}

func TestSilenceFrequencyPolicy(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	e.initialize(vec2{300, 320}, vec2{420, 320})

	// Before anything arrives the readout follows the live emitted value.
	e.setEmittedFrequency(3)
	e.update(1.0 / 60)
	assert.Equal(t, 3.0, e.observedFreq)

	for i := 0; i < 300; i++ {
		e.update(1.0 / 60)
	}
	require.InDelta(t, 3.0, e.observedFreq, 1e-9)

	// Slow the sound down and move the observer beyond every live radius:
	// silence returns, and the last resolved value holds even though the
	// emitted frequency changed.
	e.setEmittedFrequency(7)
	e.setSoundSpeed(minSoundSpeed)
	e.setObserverKinematics(vec2{fieldW, fieldH}, vec2{})
	e.update(1.0 / 60)

	assert.InDelta(t, 3.0, e.observedFreq, 1e-9, "post-arrival silence holds, not mirrors")
	sig := e.observedSignal.values()
	assert.Zero(t, sig[len(sig)-1])
}

func TestCoincidentObserverHoldsFrequencyAndPhase(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	pos := vec2{480, 320}
	e.initialize(pos, pos)

	// Every front is born on top of the observer, so arrivals happen with an
	// undefined direction. The resolver must skip, never divide by zero.
	for i := 0; i < 120; i++ {
		e.update(1.0 / 60)
	}

	assert.Equal(t, defaultFrequency, e.observedFreq, "degenerate direction keeps the prior value")
	assert.Zero(t, e.observedPhase)
	assert.False(t, math.IsNaN(e.observedFreq))
}

func TestStationaryPairHearsEmittedFrequency(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	e.initialize(vec2{384, 320}, vec2{576, 320})

	for i := 0; i < 300; i++ {
		e.update(1.0 / 60)
	}

	snap := e.snapshot()
	assert.InDelta(t, defaultFrequency, snap.observedFrequency, 1e-9)
	assert.Greater(t, maxAbs(snap.observedSignal), 0.9)
}

func TestApproachingSourceRaisesObservedFrequency(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	src := vec2{100, 320}
	obs := vec2{800, 320}
	e.initialize(src, obs)

	vel := vec2{100, 0}
	for i := 0; i < 240; i++ {
		e.setSourceKinematics(src, vel)
		e.update(1.0 / 60)
		src = src.add(vel.mul(1.0 / 60))
	}

	want := defaultFrequency * 343.0 / (343.0 - 100.0)
	assert.InDelta(t, want, e.observedFreq, 1e-9)
}

func TestRecedingSourceLowersObservedFrequency(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	src := vec2{500, 320}
	obs := vec2{800, 320}
	e.initialize(src, obs)

	vel := vec2{-100, 0}
	for i := 0; i < 180; i++ {
		e.setSourceKinematics(src, vel)
		e.update(1.0 / 60)
		src = src.add(vel.mul(1.0 / 60))
	}

	want := defaultFrequency * 343.0 / (343.0 + 100.0)
	assert.InDelta(t, want, e.observedFreq, 1e-9)
}

func TestObservedFrequencyIsStepSizeInsensitive(t *testing.T) {
	run := func(dt float64) float64 {
		e := newEngine(defaultEngineConfig())
		src := vec2{100, 320}
		e.initialize(src, vec2{800, 320})
		vel := vec2{60, 0}
		for total := 0.0; total < 4.0; total += dt {
			e.setSourceKinematics(src, vel)
			e.update(dt)
			src = src.add(vel.mul(dt))
		}
		return e.observedFreq
	}
	assert.InDelta(t, run(1.0/60), run(1.0/240), 1e-9)
}

func TestPauseFreezesEverything(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	e.initialize(vec2{300, 320}, vec2{600, 320})
	for i := 0; i < 200; i++ {
		e.update(1.0 / 60)
	}

	e.togglePause()
	before := e.snapshot()
	for i := 0; i < 50; i++ {
		e.update(1.0 / 60)
	}
	assert.Equal(t, before, e.snapshot())

	e.togglePause()
	e.update(1.0 / 60)
	assert.Greater(t, e.snapshot().simTime, before.simTime)
}

func TestResetRestoresInitialArrangement(t *testing.T) {
	cfg := defaultEngineConfig()
	start := vec2{300, 320}
	obsStart := vec2{700, 320}

	fresh := newEngine(cfg)
	fresh.initialize(start, obsStart)

	e := newEngine(cfg)
	e.initialize(start, obsStart)
	e.setSourceKinematics(vec2{10, 10}, vec2{50, 0})
	e.setEmittedFrequency(7)
	e.setSoundSpeed(500)
	for i := 0; i < 120; i++ {
		e.update(1.0 / 60)
	}
	e.togglePause()

	e.reset()
	assert.Equal(t, fresh.snapshot(), e.snapshot())
	assert.False(t, e.isPaused())
	assert.Zero(t, e.totalEmitted)
}

func TestSettersClampInputs(t *testing.T) {
	e := newEngine(defaultEngineConfig())

	e.setEmittedFrequency(1000)
	assert.Equal(t, maxEmitFrequency, e.frequency)
	e.setEmittedFrequency(-3)
	assert.Equal(t, minEmitFrequency, e.frequency)

	e.setSoundSpeed(5)
	assert.Equal(t, minSoundSpeed, e.soundSpeed)
	e.setSoundSpeed(1e6)
	assert.Equal(t, maxSoundSpeed, e.soundSpeed)
}

func TestUpdateIgnoresNonPositiveDt(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	e.initialize(vec2{100, 100}, vec2{200, 200})

	before := e.snapshot()
	e.update(0)
	e.update(-0.5)
	assert.Equal(t, before, e.snapshot())
}

func TestRegistryStaysBounded(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	e.initialize(vec2{480, 320}, vec2{700, 320})

	for i := 0; i < 60*30; i++ {
		e.update(1.0 / 60)
	}
	assert.LessOrEqual(t, e.fronts.count(), int(maxWavefrontAge*defaultFrequency)+1)
}

func TestSnapshotIsIsolated(t *testing.T) {
	e := newEngine(defaultEngineConfig())
	e.initialize(vec2{300, 320}, vec2{600, 320})
	for i := 0; i < 120; i++ {
		e.update(1.0 / 60)
	}

	snap := e.snapshot()
	require.NotEmpty(t, snap.fronts)
	snap.fronts[0].radius = -1
	snap.emittedSignal[0] = 99

	again := e.snapshot()
	assert.NotEqual(t, -1.0, again.fronts[0].radius)
	assert.NotEqual(t, 99.0, again.emittedSignal[0])
}
