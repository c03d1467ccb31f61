package main

import "math"

// engineConfig carries the per-instance tunables of the simulation core.
// Zero fields fall back to the package defaults, so tests can construct
// engines with only the knobs they care about.
type engineConfig struct {
	soundSpeed float64
	frequency  float64
	fieldW     float64
	fieldH     float64
	maxAge     float64
	historyLen int
	amplitude  float64
}

// defaultEngineConfig returns the configuration the application runs with.
func defaultEngineConfig() engineConfig {
	return engineConfig{
		soundSpeed: defaultSoundSpeed,
		frequency:  defaultFrequency,
		fieldW:     fieldW,
		fieldH:     fieldH,
		maxAge:     maxWavefrontAge,
		historyLen: signalHistoryLen,
		amplitude:  amplitudeScale,
	}
}

// engine owns all wave-propagation and frequency-reconstruction state. It is
// strictly single-threaded and step-driven: the caller invokes update once per
// frame with an already clamped dt, and reads results through snapshot. The
// engine never reads input devices and never moves the source or observer on
// its own; collaborators push kinematics in each frame.
type engine struct {
	cfg engineConfig

	soundSpeed float64
	frequency  float64

	simTime      float64
	lastEmission float64
	paused       bool

	srcPos, srcVel vec2
	obsPos, obsVel vec2

	initialSrcPos vec2
	initialObsPos vec2

	fronts       *wavefrontRegistry
	totalEmitted int

	emittedPhase  float64
	observedPhase float64
	observedFreq  float64
	resolvedOnce  bool

	emittedSignal  *signalRing
	observedSignal *signalRing
}

// newEngine constructs an engine from cfg, filling unset fields with defaults
// and clamping the tunables so non-positive values can never reach the
// propagation formulas.
func newEngine(cfg engineConfig) *engine {
	if cfg.soundSpeed <= 0 {
		cfg.soundSpeed = defaultSoundSpeed
	}
	if cfg.frequency <= 0 {
		cfg.frequency = defaultFrequency
	}
	if cfg.fieldW <= 0 {
		cfg.fieldW = fieldW
	}
	if cfg.fieldH <= 0 {
		cfg.fieldH = fieldH
	}
	if cfg.maxAge <= 0 {
		cfg.maxAge = maxWavefrontAge
	}
	if cfg.historyLen <= 0 {
		cfg.historyLen = signalHistoryLen
	}
	if cfg.amplitude <= 0 {
		cfg.amplitude = amplitudeScale
	}
	cfg.soundSpeed = clampFloat(cfg.soundSpeed, minSoundSpeed, maxSoundSpeed)
	cfg.frequency = clampFloat(cfg.frequency, minEmitFrequency, maxEmitFrequency)

	e := &engine{
		cfg:            cfg,
		fronts:         newWavefrontRegistry(cfg.maxAge, math.Hypot(cfg.fieldW, cfg.fieldH)),
		emittedSignal:  newSignalRing(cfg.historyLen),
		observedSignal: newSignalRing(cfg.historyLen),
	}
	e.reset()
	return e
}

// initialize places the source and observer, remembers those positions as the
// reset targets, and restarts the simulation clock.
func (e *engine) initialize(sourcePos, observerPos vec2) {
	e.initialSrcPos = sourcePos
	e.initialObsPos = observerPos
	e.reset()
}

// reset returns the engine to its post-initialize state: empty registry, zero
// clock and phases, default frequency and sound speed, initial positions, zero
// velocities, running.
func (e *engine) reset() {
	e.soundSpeed = e.cfg.soundSpeed
	e.frequency = e.cfg.frequency
	e.simTime = 0
	e.lastEmission = 0
	e.paused = false
	e.srcPos, e.srcVel = e.initialSrcPos, vec2{}
	e.obsPos, e.obsVel = e.initialObsPos, vec2{}
	e.fronts.clear()
	e.totalEmitted = 0
	e.emittedPhase = 0
	e.observedPhase = 0
	e.observedFreq = e.frequency
	e.resolvedOnce = false
	e.emittedSignal.clear()
	e.observedSignal.clear()
}

// togglePause flips between RUNNING and PAUSED. While paused, update is a
// no-op, so the clock, phases, radii, and signal histories freeze in place.
func (e *engine) togglePause() {
	e.paused = !e.paused
}

// isPaused reports whether updates are currently suspended.
func (e *engine) isPaused() bool {
	return e.paused
}

// setSourceKinematics pushes externally-owned source state into the engine.
func (e *engine) setSourceKinematics(pos, vel vec2) {
	e.srcPos, e.srcVel = pos, vel
}

// setObserverKinematics pushes externally-owned observer state into the engine.
func (e *engine) setObserverKinematics(pos, vel vec2) {
	e.obsPos, e.obsVel = pos, vel
}

// setEmittedFrequency updates the live emitted frequency. Fronts already in
// flight keep the frequency they were born with.
func (e *engine) setEmittedFrequency(hz float64) {
	e.frequency = clampFloat(hz, minEmitFrequency, maxEmitFrequency)
}

// setSoundSpeed updates the propagation speed for all fronts, live and future.
func (e *engine) setSoundSpeed(mps float64) {
	e.soundSpeed = clampFloat(mps, minSoundSpeed, maxSoundSpeed)
}

// update advances the simulation by dt seconds. dt must arrive pre-scaled and
// pre-clamped by the caller; the engine applies it as-is. One call performs a
// full pipeline pass: emit, age/expire, detect arrival, resolve Doppler,
// integrate phases, and sample both signal histories.
func (e *engine) update(dt float64) {
	if e.paused || dt <= 0 {
		return
	}
	e.simTime += dt
	e.emittedPhase += 2 * math.Pi * e.frequency * dt

	if e.simTime-e.lastEmission > 1/e.frequency {
		e.fronts.emit(e.srcPos, e.srcVel, e.frequency, e.emittedPhase, e.simTime)
		e.lastEmission = e.simTime
		e.totalEmitted++
	}

	e.fronts.step(e.simTime, e.soundSpeed)

	observedAmp := 0.0
	if arr, ok := detectArrival(e.fronts.fronts, e.obsPos, e.soundSpeed); ok {
		if res := resolveDoppler(arr.front, arr.distance, e.obsPos, e.obsVel, e.soundSpeed); res.valid {
			e.observedFreq = res.display
			e.observedPhase = observedPhaseAt(arr.front, arr.arrivalTime, e.simTime, res.apparent)
			e.resolvedOnce = true
		}
		// A front is arriving even when the direction is degenerate, so the
		// held phase still produces a sample; only silence outputs zero.
		observedAmp = math.Sin(e.observedPhase) * e.cfg.amplitude
	} else if !e.resolvedOnce {
		// Nothing has arrived yet: the readout tracks the live emitted value.
		// Once a wavefront has been heard, silence holds the last resolved
		// frequency instead.
		e.observedFreq = e.frequency
	}

	e.emittedSignal.push(math.Sin(e.emittedPhase) * e.cfg.amplitude)
	e.observedSignal.push(observedAmp)
}

// wavefrontView is the read-only rendering projection of one live wavefront.
type wavefrontView struct {
	origin vec2
	radius float64
	age    float64
	maxAge float64
}

// observableState is the per-frame snapshot consumed by rendering, the HUD,
// and the headless capture. Every slice in it is freshly copied; mutating a
// snapshot can never touch engine state.
type observableState struct {
	fronts []wavefrontView

	sourcePos   vec2
	sourceVel   vec2
	observerPos vec2
	observerVel vec2

	emittedSignal  []float64
	observedSignal []float64

	emittedFrequency  float64
	observedFrequency float64
	soundSpeed        float64
	simTime           float64
	paused            bool
}

// snapshot copies the externally observable engine state for this frame.
func (e *engine) snapshot() observableState {
	views := make([]wavefrontView, 0, e.fronts.count())
	for _, w := range e.fronts.fronts {
		views = append(views, wavefrontView{
			origin: w.origin,
			radius: w.radius,
			age:    w.age(e.simTime),
			maxAge: e.cfg.maxAge,
		})
	}
	return observableState{
		fronts:            views,
		sourcePos:         e.srcPos,
		sourceVel:         e.srcVel,
		observerPos:       e.obsPos,
		observerVel:       e.obsVel,
		emittedSignal:     e.emittedSignal.values(),
		observedSignal:    e.observedSignal.values(),
		emittedFrequency:  e.frequency,
		observedFrequency: e.observedFreq,
		soundSpeed:        e.soundSpeed,
		simTime:           e.simTime,
		paused:            e.paused,
	}
}
