package metrics

import "math"

// RiseTime measures the time taken to go from lo to hi of the final value.
type RiseTime struct {
	name     string
	final    float64
	lo, hi   float64
	tLo, tHi float64
}

func NewRiseTime(final float64) *RiseTime {
	r := &RiseTime{
		name:  "rise_time",
		final: final,
		lo:    0.1,
		hi:    0.9,
	}
	r.Reset()
	return r
}

func (r *RiseTime) Name() string {
	return r.name
}

func (r *RiseTime) Observe(t, y float64) {
	if r.final == 0 || math.IsNaN(r.final) {
		return
	}
	frac := y / r.final
	if math.IsNaN(r.tLo) && frac >= r.lo {
		r.tLo = t
	}
	if math.IsNaN(r.tHi) && frac >= r.hi {
		r.tHi = t
	}
}

func (r *RiseTime) Value() float64 {
	return r.tHi - r.tLo
}

func (r *RiseTime) Reset() {
	r.tLo = math.NaN()
	r.tHi = math.NaN()
}
