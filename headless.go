package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sync"

	"github.com/guptarohit/asciigraph"
)

// startCPUProfile begins writing CPU profiles to the provided path.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}
	return stop, nil
}

// headlessReport collects what a fixed-step scripted run produced.
type headlessReport struct {
	steps         int
	simTime       float64
	emitted       int
	liveFronts    int
	emittedFreq   float64
	finalObserved float64
	observedFreqs []float64
	observedWave  []float64
}

// runHeadless drives the engine through a scenario without a window: fixed dt,
// scripted kinematics only. It is also the deterministic harness the engine
// tests lean on.
func runHeadless(cfg engineConfig, id scenarioID, duration, dt float64) headlessReport {
	if dt <= 0 {
		dt = headlessDt
	}
	if duration <= 0 {
		duration = defaultRunDuration
	}
	eng := newEngine(cfg)
	p := scenarioPreset(id)
	eng.initialize(p.srcPos, p.obsPos)
	srcPos, srcVel := p.srcPos, p.srcVel
	obsPos, obsVel := p.obsPos, p.obsVel

	steps := int(duration / dt)
	rep := headlessReport{observedFreqs: make([]float64, 0, steps)}
	for i := 0; i < steps; i++ {
		if p.script.driveSource {
			srcPos, srcVel = integrateBounce(srcPos, srcVel, dt)
		}
		if p.script.driveObserver {
			obsPos, obsVel = integrateBounce(obsPos, obsVel, dt)
		}
		eng.setSourceKinematics(srcPos, srcVel)
		eng.setObserverKinematics(obsPos, obsVel)
		eng.update(dt)
		rep.observedFreqs = append(rep.observedFreqs, eng.observedFreq)
	}

	snap := eng.snapshot()
	rep.steps = steps
	rep.simTime = snap.simTime
	rep.emitted = eng.totalEmitted
	rep.liveFronts = len(snap.fronts)
	rep.emittedFreq = snap.emittedFrequency
	rep.finalObserved = snap.observedFrequency
	rep.observedWave = snap.observedSignal
	return rep
}

// printHeadlessReport writes the terminal plots and the run summary.
func printHeadlessReport(w io.Writer, id scenarioID, rep headlessReport) {
	fmt.Fprintf(w, "scenario: %s\n\n", id)
	if len(rep.observedWave) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(rep.observedWave,
			asciigraph.Height(headlessGraphH),
			asciigraph.Width(headlessGraphW),
			asciigraph.Caption("observed signal")))
		fmt.Fprintln(w)
	}
	if len(rep.observedFreqs) > 1 {
		fmt.Fprintln(w, asciigraph.Plot(downsample(rep.observedFreqs, headlessGraphW),
			asciigraph.Height(headlessGraphH),
			asciigraph.Width(headlessGraphW),
			asciigraph.Caption("observed frequency (Hz)")))
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "steps: %d  sim time: %.2f s  fronts emitted: %d  live: %d\n",
		rep.steps, rep.simTime, rep.emitted, rep.liveFronts)
	fmt.Fprintf(w, "emitted: %.2f Hz  observed (final): %.3f Hz%s\n",
		rep.emittedFreq, rep.finalObserved, shiftTag(rep.finalObserved, rep.emittedFreq))
}

// downsample thins a series to at most n points for terminal plotting.
func downsample(series []float64, n int) []float64 {
	if n <= 0 || len(series) <= n {
		return series
	}
	out := make([]float64, 0, n)
	step := float64(len(series)) / float64(n)
	for i := 0; i < n; i++ {
		out = append(out, series[int(float64(i)*step)])
	}
	return out
}
