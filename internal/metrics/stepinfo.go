package metrics

import (
	"fmt"
	"math"
)

const DefaultSettlingBand = 0.02

// StepInfo summarizes a step response against its steady-state value.
type StepInfo struct {
	RiseTime     float64
	SettlingTime float64
	Overshoot    float64 // percent
	Peak         float64
	PeakTime     float64
	SteadyState  float64
}

// Compute runs the step metrics over a sampled response. final is the
// expected steady-state value, normally the DC gain.
func Compute(time, output []float64, final float64) (StepInfo, error) {
	if len(time) != len(output) {
		return StepInfo{}, fmt.Errorf("metrics: %d times but %d outputs", len(time), len(output))
	}

	rise := NewRiseTime(final)
	settle := NewSettlingTime(final, DefaultSettlingBand)
	over := NewOvershoot(final)
	peak := NewPeak()
	observers := []Metric{rise, settle, over, peak}

	for i := range time {
		for _, m := range observers {
			m.Observe(time[i], output[i])
		}
	}

	return StepInfo{
		RiseTime:     rise.Value(),
		SettlingTime: settle.Value(),
		Overshoot:    over.Value(),
		Peak:         peak.Value(),
		PeakTime:     peak.Time(),
		SteadyState:  final,
	}, nil
}

// Settled reports whether the response ended inside the settling band.
func (s StepInfo) Settled() bool {
	return !math.IsNaN(s.SettlingTime)
}
