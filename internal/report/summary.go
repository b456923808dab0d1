package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stabplot/internal/analysis"
)

// Summary renders a bordered panel with the system, its poles, both
// margins, the step metrics and the verdict.
func Summary(res *analysis.Result) string {
	var rows []string
	row := func(label, value string) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, Label.Render(label), Value.Render(value)))
	}

	rows = append(rows, Title.Render(Suptitle(res.Verdict)), "")
	row("G(s)", res.System.String())
	row("Poles", formatPoles(res.Poles))
	rows = append(rows, Separator(40))

	m := res.Margin
	row("Gain margin", fmt.Sprintf("%s dB at %s Hz", Number(m.GainMarginDB(), 2), Number(Hz(m.PhaseCrossover), 2)))
	row("Phase margin", fmt.Sprintf("%s° at %s Hz", Number(m.PhaseMargin, 2), Number(Hz(m.GainCrossover), 2)))
	rows = append(rows, Separator(40))

	si := res.StepInfo
	row("Rise time", Number(si.RiseTime, 3)+" s")
	row("Settling time", Number(si.SettlingTime, 3)+" s")
	row("Overshoot", Number(si.Overshoot, 2)+" %")
	row("Peak", fmt.Sprintf("%s at %s s", Number(si.Peak, 3), Number(si.PeakTime, 3)))
	row("Steady state", Number(si.SteadyState, 3))
	rows = append(rows, "")

	verdict := VerdictUnstable
	if res.Verdict == analysis.Stable {
		verdict = VerdictStable
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, Label.Render("Verdict"), verdict.Render(res.Verdict.String())))

	return Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatPoles(poles []complex128) string {
	if len(poles) == 0 {
		return "none"
	}
	parts := make([]string, len(poles))
	for i, p := range poles {
		switch {
		case imag(p) == 0:
			parts[i] = Number(real(p), 3)
		case imag(p) < 0:
			parts[i] = fmt.Sprintf("%s-%sj", Number(real(p), 3), Number(-imag(p), 3))
		default:
			parts[i] = fmt.Sprintf("%s+%sj", Number(real(p), 3), Number(imag(p), 3))
		}
	}
	return strings.Join(parts, ", ")
}
