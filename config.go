package main

// Simulation and rendering configuration constants used throughout the
// application. These values define the field size, timing, and display behavior
// for the Doppler wavefront simulation. Positions and velocities are in meters
// and meters per second; the meter-to-pixel mapping is a rendering concern.
const (
	screenW, screenH = 960, 640
	metersPerPixel   = 1.0
	fieldW           = screenW * metersPerPixel
	fieldH           = screenH * metersPerPixel

	defaultTPS = 60.0

	defaultSoundSpeed = 343.0
	defaultFrequency  = 2.0
	minSoundSpeed     = 50.0
	maxSoundSpeed     = 1000.0
	soundSpeedStep    = 10.0
	minEmitFrequency  = 0.2
	maxEmitFrequency  = 20.0
	frequencyStep     = 0.2

	// Stability clamp applied to resolved Doppler frequencies. Not a physical
	// law: it guards the transonic singularity as source speed nears the speed
	// of sound and rejects negative results from supersonic recession.
	freqMin       = 0.1
	freqMaxFactor = 5.0

	maxWavefrontAge  = 10.0
	maxStepSeconds   = 0.1
	amplitudeScale   = 1.0
	signalHistoryLen = 300

	moveSpeed        = 120.0
	dragVelocityGain = 0.35
	dragReleaseTau   = 0.35
	velocityEpsilon  = 0.5
	pickRadius       = 25.0

	presetSourceSpeed   = 100.0
	presetObserverSpeed = 80.0

	slowMotionScale = 0.25

	sourceMarkerRadius   = 8.0
	observerMarkerRadius = 7.0
	arrowScale           = 0.5
	arrowHeadLen         = 9.0
	minArrowSpeed        = 2.0
	wavefrontStroke      = 1.5

	scopeW, scopeH = 300, 78
	scopeMargin    = 12
	scopePad       = 5

	meterW, meterH  = 220, 10
	meterSpringFreq = 6.0
	meterSpringDamp = 0.8

	headlessDt         = 1.0 / defaultTPS
	headlessGraphW     = 72
	headlessGraphH     = 10
	defaultRunDuration = 12.0
)
