package metrics

import "math"

// SettlingTime is the first sample time after which the response stays
// within band of the final value. It is NaN while still outside.
type SettlingTime struct {
	name    string
	final   float64
	band    float64
	settled float64
	outside bool
	seen    bool
}

func NewSettlingTime(final, band float64) *SettlingTime {
	s := &SettlingTime{
		name:  "settling_time",
		final: final,
		band:  band,
	}
	s.Reset()
	return s
}

func (s *SettlingTime) Name() string {
	return s.name
}

func (s *SettlingTime) Observe(t, y float64) {
	if !s.seen {
		s.seen = true
		s.settled = t
	}
	if math.Abs(y-s.final) > s.band*math.Abs(s.final) {
		s.outside = true
		return
	}
	if s.outside {
		s.settled = t
		s.outside = false
	}
}

func (s *SettlingTime) Value() float64 {
	if !s.seen || s.outside || math.IsNaN(s.final) {
		return math.NaN()
	}
	return s.settled
}

func (s *SettlingTime) Reset() {
	s.settled = math.NaN()
	s.outside = false
	s.seen = false
}
