package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/stabplot/internal/analysis"
)

// Number formats v with prec decimals, spelling non-finite values as
// inf, -inf and nan.
func Number(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Hz converts an angular frequency in rad/s.
func Hz(omega float64) float64 {
	return omega / (2 * math.Pi)
}

func MagnitudeTitle(m analysis.Margin) string {
	return fmt.Sprintf("Magnitude (Gain Margin: %s dB)", Number(m.GainMarginDB(), 2))
}

func PhaseTitle(m analysis.Margin) string {
	return fmt.Sprintf("Phase (Phase Margin: %s°)", Number(m.PhaseMargin, 2))
}

func Suptitle(v analysis.Verdict) string {
	return fmt.Sprintf("System Analysis - Stability: %s", v)
}

func GainMarginLine(m analysis.Margin) string {
	return fmt.Sprintf("Gain Margin: %s dB at %s Hz", Number(m.GainMarginDB(), 2), Number(Hz(m.PhaseCrossover), 2))
}

func PhaseMarginLine(m analysis.Margin) string {
	return fmt.Sprintf("Phase Margin: %s° at %s Hz", Number(m.PhaseMargin, 2), Number(Hz(m.GainCrossover), 2))
}
