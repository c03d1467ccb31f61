package main

import "math"

// coincidentEpsilon is the separation below which the origin-to-observer
// direction is treated as undefined and the Doppler step is skipped.
const coincidentEpsilon = 1e-9

// arrival describes a wavefront whose expanding radius has reached the
// observer. arrivalTime is the instant the front geometrically touched the
// observer position, not the current simulation time.
type arrival struct {
	front       wavefront
	distance    float64
	arrivalTime float64
}

// detectArrival scans the fronts in emission order and selects the one most
// recently arrived at the observer: maximum arrivalTime among all fronts with
// radius >= distance. The >= comparison makes exact ties resolve to the
// later-emitted front, keeping selection deterministic. The second return is
// false when no front has reached the observer yet.
func detectArrival(fronts []wavefront, observer vec2, soundSpeed float64) (arrival, bool) {
	var best arrival
	found := false
	for _, w := range fronts {
		d := observer.sub(w.origin).len()
		if w.radius < d {
			continue
		}
		at := w.birthTime + d/soundSpeed
		if !found || at >= best.arrivalTime {
			best = arrival{front: w, distance: d, arrivalTime: at}
			found = true
		}
	}
	return best, found
}

// dopplerResult carries the two distinct frequencies reconstructed from one
// arriving wavefront. apparent reflects source motion only and drives phase
// integration; display folds in observer motion as well and is what the HUD
// reports. valid is false when the origin-to-observer direction is undefined.
type dopplerResult struct {
	apparent float64
	display  float64
	valid    bool
}

// resolveDoppler computes both Doppler frequencies for the selected wavefront
// given the live observer state. dist is the origin-to-observer separation the
// arrival detector already measured. The source velocity and emitted frequency
// come from the wavefront itself, frozen at emission; the observer velocity is
// live. Both outputs pass through clampFrequency, so a source speed at or past
// the speed of sound degrades to a clamped value instead of a singularity.
func resolveDoppler(w wavefront, dist float64, obsPos, obsVel vec2, soundSpeed float64) dopplerResult {
	if dist < coincidentEpsilon {
		return dopplerResult{}
	}
	u := obsPos.sub(w.origin).mul(1 / dist)
	sourceRate := soundSpeed - w.sourceVel.dot(u)
	observerRate := soundSpeed - obsVel.dot(u)
	return dopplerResult{
		apparent: clampFrequency(w.frequency*soundSpeed/sourceRate, w.frequency),
		display:  clampFrequency(w.frequency*observerRate/sourceRate, w.frequency),
		valid:    true,
	}
}

// observedPhaseAt anchors the observed phase to the phase the wavefront
// carried at emission and advances it at the apparent rate for the time the
// front has been past the observer. Deriving the phase from the anchor every
// step, instead of incrementally, keeps the waveform free of re-trigger
// artifacts when the current wavefront changes.
func observedPhaseAt(w wavefront, arrivalTime, now, apparent float64) float64 {
	return w.phase + (now-arrivalTime)*apparent*2*math.Pi
}

// clampFrequency applies the stability clamp to a raw resolved frequency.
// Infinities from a transonic divisor and negative values from supersonic
// recession land on the clamp bounds, and a doubly degenerate 0/0 lands on
// the floor, so no NaN or absurd value can reach display state.
func clampFrequency(raw, emitted float64) float64 {
	if math.IsNaN(raw) {
		return freqMin
	}
	return clampFloat(raw, freqMin, emitted*freqMaxFactor)
}
