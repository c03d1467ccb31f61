package main

// signalRing is a fixed-capacity FIFO of amplitude samples used for the
// waveform scopes. Appending past capacity discards the oldest sample. The
// ring is display-only state; nothing in the physics reads it back.
type signalRing struct {
	buf  []float64
	head int
	size int
}

// newSignalRing allocates a ring holding at most capacity samples.
func newSignalRing(capacity int) *signalRing {
	if capacity < 1 {
		capacity = 1
	}
	return &signalRing{buf: make([]float64, capacity)}
}

// push appends a sample, evicting the oldest once the ring is full.
func (r *signalRing) push(v float64) {
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
	if r.size < len(r.buf) {
		r.size++
	}
}

// values returns the samples in oldest-to-newest order as a fresh slice, so
// callers can never mutate ring storage.
func (r *signalRing) values() []float64 {
	out := make([]float64, r.size)
	start := (r.head - r.size + len(r.buf)) % len(r.buf)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}

// clear drops all samples without reallocating.
func (r *signalRing) clear() {
	r.head = 0
	r.size = 0
}
