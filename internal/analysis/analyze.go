package analysis

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/san-kum/stabplot/internal/lti"
	"github.com/san-kum/stabplot/internal/metrics"
)

type Options struct {
	Bode BodeOptions
	Step StepOptions
}

func DefaultOptions() Options {
	return Options{
		Bode: DefaultBodeOptions(),
		Step: DefaultStepOptions(),
	}
}

// Result bundles everything the renderer and the reporters consume.
type Result struct {
	System   *lti.TransferFunction
	Poles    []complex128
	Margin   Margin
	Bode     FrequencyResponse
	Step     StepResponse
	StepInfo metrics.StepInfo
	Verdict  Verdict
}

// Analyze runs the margin, frequency-response and step-response analyses
// on tf. The three are independent; any failure aborts the run.
func Analyze(ctx context.Context, tf *lti.TransferFunction, opts Options) (*Result, error) {
	res := &Result{System: tf}

	poles, err := tf.Poles()
	if err != nil {
		return nil, fmt.Errorf("poles: %w", err)
	}
	res.Poles = poles

	stages := []struct {
		name string
		run  func() error
	}{
		{"margins", func() error {
			m, err := Margins(tf)
			res.Margin = m
			return err
		}},
		{"bode", func() error {
			fr, err := Bode(tf, opts.Bode)
			res.Bode = fr
			return err
		}},
		{"step", func() error {
			sr, err := Step(tf, opts.Step)
			res.Step = sr
			return err
		}},
		{"step_info", func() error {
			info, err := metrics.Compute(res.Step.Time, res.Step.Output, tf.DCGain())
			res.StepInfo = info
			return err
		}},
	}

	for _, st := range stages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := st.run(); err != nil {
			return nil, fmt.Errorf("%s: %w", st.name, err)
		}
		log.Debug().Str("stage", st.name).Msg("analysis stage complete")
	}

	res.Verdict = Assess(res.Margin)
	log.Debug().
		Float64("gm_db", res.Margin.GainMarginDB()).
		Float64("pm_deg", res.Margin.PhaseMargin).
		Stringer("verdict", res.Verdict).
		Msg("margins")

	return res, nil
}
