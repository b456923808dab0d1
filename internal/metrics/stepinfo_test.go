package metrics

import (
	"math"
	"testing"
)

func sample(fn func(float64) float64, tfinal float64, n int) ([]float64, []float64) {
	ts := make([]float64, n)
	ys := make([]float64, n)
	for i := range ts {
		ts[i] = tfinal * float64(i) / float64(n-1)
		ys[i] = fn(ts[i])
	}
	return ts, ys
}

func TestFirstOrderStepInfo(t *testing.T) {
	ts, ys := sample(func(t float64) float64 { return 1 - math.Exp(-t) }, 10, 10001)

	info, err := Compute(ts, ys, 1)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(info.RiseTime-math.Log(9)) > 2e-3 {
		t.Errorf("expected rise time %.4f, got %.4f", math.Log(9), info.RiseTime)
	}
	if math.Abs(info.SettlingTime-math.Log(50)) > 2e-3 {
		t.Errorf("expected settling time %.4f, got %.4f", math.Log(50), info.SettlingTime)
	}
	if info.Overshoot != 0 {
		t.Errorf("expected no overshoot, got %f", info.Overshoot)
	}
	if !info.Settled() {
		t.Error("response should be settled")
	}
}

func TestSecondOrderStepInfo(t *testing.T) {
	// 25/(s²+4s+25): ζ = 0.4, ωn = 5.
	zeta, wn := 0.4, 5.0
	wd := wn * math.Sqrt(1-zeta*zeta)
	y := func(t float64) float64 {
		return 1 - math.Exp(-zeta*wn*t)*(math.Cos(wd*t)+zeta*wn/wd*math.Sin(wd*t))
	}
	ts, ys := sample(y, 5, 50001)

	info, err := Compute(ts, ys, 1)
	if err != nil {
		t.Fatal(err)
	}

	expectedOvershoot := 100 * math.Exp(-math.Pi*zeta/math.Sqrt(1-zeta*zeta))
	if math.Abs(info.Overshoot-expectedOvershoot) > 1e-3 {
		t.Errorf("expected overshoot %.4f%%, got %.4f%%", expectedOvershoot, info.Overshoot)
	}
	if math.Abs(info.PeakTime-math.Pi/wd) > 1e-3 {
		t.Errorf("expected peak time %.4f, got %.4f", math.Pi/wd, info.PeakTime)
	}
	if math.Abs(info.Peak-(1+expectedOvershoot/100)) > 1e-5 {
		t.Errorf("expected peak %.5f, got %.5f", 1+expectedOvershoot/100, info.Peak)
	}
}

func TestNotSettled(t *testing.T) {
	ts, ys := sample(func(t float64) float64 { return math.Sin(t) }, 10, 101)

	info, err := Compute(ts, ys, 1)
	if err != nil {
		t.Fatal(err)
	}
	if info.Settled() {
		t.Errorf("oscillation should not settle, got %f", info.SettlingTime)
	}
}

func TestZeroFinalValue(t *testing.T) {
	ts, ys := sample(func(t float64) float64 { return t * math.Exp(-t) }, 10, 101)

	info, err := Compute(ts, ys, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(info.RiseTime) {
		t.Errorf("rise time undefined for zero final value, got %f", info.RiseTime)
	}
	if !math.IsNaN(info.Overshoot) {
		t.Errorf("overshoot undefined for zero final value, got %f", info.Overshoot)
	}
}

func TestLengthMismatch(t *testing.T) {
	if _, err := Compute([]float64{0, 1}, []float64{0}, 1); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestMetricReset(t *testing.T) {
	m := NewPeak()
	m.Observe(0, 3)
	if m.Value() != 3 {
		t.Errorf("expected peak 3, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero peak after reset")
	}

	s := NewSettlingTime(1, 0.02)
	s.Observe(0, 0)
	s.Observe(1, 1)
	if s.Value() != 1 {
		t.Errorf("expected settling at 1, got %f", s.Value())
	}
	s.Reset()
	if !math.IsNaN(s.Value()) {
		t.Error("expected NaN after reset")
	}

	names := map[string]bool{}
	for _, m := range []Metric{NewRiseTime(1), NewSettlingTime(1, 0.02), NewOvershoot(1), NewPeak()} {
		names[m.Name()] = true
	}
	if len(names) != 4 {
		t.Errorf("metric names should be distinct: %v", names)
	}
}
