package render

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stabplot/internal/analysis"
	"github.com/san-kum/stabplot/internal/report"
)

// PreviewWidth is the column budget of each terminal chart.
const PreviewWidth = 80

// Preview draws the magnitude, phase and step traces as terminal charts.
// The frequency traces are sampled on the log-spaced sweep, so their x
// axis reads as log frequency.
func Preview(res *analysis.Result, height int) string {
	if height < 2 {
		height = 2
	}
	hz := res.Bode.Hz()
	var sb strings.Builder

	charts := []struct {
		data    []float64
		caption string
	}{
		{res.Bode.MagDB(), fmt.Sprintf("%s, %s to %s Hz", report.MagnitudeTitle(res.Margin), report.Number(hz[0], 3), report.Number(hz[len(hz)-1], 1))},
		{res.Bode.PhaseDeg(), report.PhaseTitle(res.Margin)},
		{res.Step.Output, fmt.Sprintf("Step Response, 0 to %s s", report.Number(res.Step.Time[len(res.Step.Time)-1], 2))},
	}

	for i, c := range charts {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(asciigraph.Plot(c.data,
			asciigraph.Height(height),
			asciigraph.Width(PreviewWidth),
			asciigraph.Caption(c.caption),
		))
	}
	sb.WriteString("\n")
	return sb.String()
}
