package report

import (
	"fmt"
	"io"

	"github.com/san-kum/stabplot/internal/analysis"
)

// Console prints the gain margin and phase margin lines.
func Console(w io.Writer, m analysis.Margin) error {
	if _, err := fmt.Fprintln(w, GainMarginLine(m)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, PhaseMarginLine(m))
	return err
}
