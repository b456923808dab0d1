package metrics

import "math"

// Peak tracks the largest absolute output and when it occurred.
type Peak struct {
	name string
	peak float64
	at   float64
}

func NewPeak() *Peak {
	p := &Peak{name: "peak"}
	p.Reset()
	return p
}

func (p *Peak) Name() string {
	return p.name
}

func (p *Peak) Observe(t, y float64) {
	if math.IsNaN(p.at) || math.Abs(y) > p.peak {
		p.peak = math.Abs(y)
		p.at = t
	}
}

func (p *Peak) Value() float64 {
	return p.peak
}

func (p *Peak) Time() float64 {
	return p.at
}

func (p *Peak) Reset() {
	p.peak = 0
	p.at = math.NaN()
}

// Overshoot is the percentage by which the response exceeds its final value.
type Overshoot struct {
	name  string
	final float64
	max   float64
	seen  bool
}

func NewOvershoot(final float64) *Overshoot {
	return &Overshoot{
		name:  "overshoot",
		final: final,
	}
}

func (o *Overshoot) Name() string {
	return o.name
}

func (o *Overshoot) Observe(t, y float64) {
	if o.final == 0 {
		return
	}
	frac := y / o.final
	if !o.seen || frac > o.max {
		o.max = frac
		o.seen = true
	}
}

func (o *Overshoot) Value() float64 {
	if o.final == 0 || math.IsNaN(o.final) || !o.seen {
		return math.NaN()
	}
	return math.Max(0, (o.max-1)*100)
}

func (o *Overshoot) Reset() {
	o.max = 0
	o.seen = false
}
