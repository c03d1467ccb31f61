package main

// wavefront models one expanding circular pressure front stamped by the source
// at a single instant. Everything but radius is frozen at emission time, so
// later source motion can never retroactively alter a front already in flight.
// radius is derived from age each step, never mutated independently.
type wavefront struct {
	origin    vec2
	sourceVel vec2
	frequency float64
	phase     float64
	birthTime float64
	radius    float64
}

// age reports how long the front has existed at simulation time now.
func (w wavefront) age(now float64) float64 {
	return now - w.birthTime
}

// wavefrontRegistry owns the living wavefronts in emission order. Fronts enter
// through emit and leave through step's expiry sweep; nothing else mutates the
// set. External consumers get copies via the engine snapshot, never the slice.
type wavefrontRegistry struct {
	fronts    []wavefront
	maxAge    float64
	maxRadius float64
}

// newWavefrontRegistry builds a registry whose fronts expire past maxAge
// seconds or once their radius leaves a field with the given bounding diagonal.
func newWavefrontRegistry(maxAge, maxRadius float64) *wavefrontRegistry {
	return &wavefrontRegistry{maxAge: maxAge, maxRadius: maxRadius}
}

// emit snapshots the source state into a new wavefront born at time now.
func (r *wavefrontRegistry) emit(origin, sourceVel vec2, frequency, phase, now float64) {
	r.fronts = append(r.fronts, wavefront{
		origin:    origin,
		sourceVel: sourceVel,
		frequency: frequency,
		phase:     phase,
		birthTime: now,
	})
}

// step recomputes every radius from age and the current speed of sound, then
// drops fronts that outlived maxAge or expanded beyond maxRadius. Removal is
// routine cleanup, not an error condition.
func (r *wavefrontRegistry) step(now, soundSpeed float64) {
	kept := r.fronts[:0]
	for _, w := range r.fronts {
		age := w.age(now)
		w.radius = age * soundSpeed
		if age > r.maxAge || w.radius > r.maxRadius {
			continue
		}
		kept = append(kept, w)
	}
	r.fronts = kept
}

// clear removes every wavefront.
func (r *wavefrontRegistry) clear() {
	r.fronts = r.fronts[:0]
}

// count reports the number of living wavefronts.
func (r *wavefrontRegistry) count() int {
	return len(r.fronts)
}
