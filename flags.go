package main

import "flag"

// Command-line flags that control optional rendering, simulation, and runtime
// behavior. Physics defaults live in config.go; flags only override the
// starting values of the per-instance engine configuration.
var (
	// frequencyFlag sets the initial emitted frequency in hertz.
	frequencyFlag = flag.Float64("frequency", defaultFrequency, "initial emitted frequency (Hz)")

	// soundSpeedFlag sets the initial propagation speed of the wavefronts.
	soundSpeedFlag = flag.Float64("sound-speed", defaultSoundSpeed, "initial speed of sound (m/s)")

	// timeScaleFlag slows or accelerates simulated time relative to wall time.
	timeScaleFlag = flag.Float64("time-scale", 1.0, "simulated seconds per wall-clock second")

	// scenarioFlag selects the scripted preset active at startup (0 = manual).
	scenarioFlag = flag.Int("scenario", 0, "initial scenario preset (0-6)")

	// headlessFlag runs a scripted scenario without a window and plots the
	// captured signals to the terminal.
	headlessFlag = flag.Bool("headless", false, "run a scripted scenario without a window and print terminal plots")

	// durationFlag bounds the simulated length of a headless run.
	durationFlag = flag.Float64("duration", defaultRunDuration, "headless run duration in simulated seconds")

	// cpuProfileFlag captures a CPU profile for the lifetime of the run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")

	// debugFlag enables the FPS and engine statistics overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and engine statistics overlay")
)
