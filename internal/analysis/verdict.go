package analysis

type Verdict int

const (
	Unstable Verdict = iota
	Stable
)

func (v Verdict) String() string {
	if v == Stable {
		return "Stable"
	}
	return "Unstable"
}

// Assess is Stable iff the gain margin in dB and the phase margin are
// both positive. An infinite gain margin counts as positive.
func Assess(m Margin) Verdict {
	if m.GainMarginDB() > 0 && m.PhaseMargin > 0 {
		return Stable
	}
	return Unstable
}
