package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/stabplot/internal/analysis"
	"github.com/san-kum/stabplot/internal/config"
	"github.com/san-kum/stabplot/internal/lti"
	"github.com/san-kum/stabplot/internal/render"
	"github.com/san-kum/stabplot/internal/report"
)

type flags struct {
	out        string
	configFile string
	preset     string
	preview    bool
	stepMethod string
	logLevel   string
	dpi        int
}

// main runs the analysis of G(s) = 25 / (s^2 + 4s + 25), writes the figure
// and prints both margins. It exits with status 1 on any error.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("stabplot failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "stabplot",
		Short:         "stability margins and step response of G(s) = 25/(s^2+4s+25)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setLogLevel(f.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, f)
		},
	}

	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&f.configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&f.preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&f.stepMethod, "step-method", analysis.MethodZOH, "step response method (zoh, rk4, rk45)")

	rootCmd.Flags().StringVarP(&f.out, "out", "o", config.DefaultOutput, "figure path (.png, .svg, .jpg)")
	rootCmd.Flags().BoolVar(&f.preview, "preview", false, "also draw the traces in the terminal")
	rootCmd.Flags().IntVar(&f.dpi, "dpi", config.DefaultDPI, "raster resolution")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "print margins, poles and step characteristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, f)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available figure presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "  %-8s %gx%g in @ %d dpi, %d sweep points, %s step\n",
					name, p.Figure.WidthIn, p.Figure.HeightIn, p.Figure.DPI, p.Sweep.Points, p.Step.Method)
			}
			return nil
		},
	}

	rootCmd.AddCommand(infoCmd, presetsCmd)
	return rootCmd
}

func setLogLevel(name string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.preset != "" {
		cfg = config.GetPreset(f.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets())
		}
	}

	if f.configFile != "" {
		loaded, err := config.LoadInto(f.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("out") {
		cfg.Output = f.out
	}
	if cmd.Flags().Changed("dpi") {
		cfg.Figure.DPI = f.dpi
	}
	if cmd.Flags().Changed("step-method") {
		cfg.Step.Method = f.stepMethod
	}
	if cmd.Flags().Changed("preview") {
		cfg.Preview.Enabled = f.preview
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func analyze(ctx context.Context, cfg *config.Config) (*analysis.Result, error) {
	log.Debug().Str("system", lti.Plant().String()).Str("step", cfg.Step.Method).Msg("analyzing")
	return analysis.Analyze(ctx, lti.Plant(), cfg.AnalysisOptions())
}

func runPlot(cmd *cobra.Command, f *flags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	res, err := analyze(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fig, err := render.NewFigure(res)
	if err != nil {
		return err
	}
	w := vg.Length(cfg.Figure.WidthIn) * vg.Inch
	h := vg.Length(cfg.Figure.HeightIn) * vg.Inch
	if err := fig.Save(cfg.Output, w, h, cfg.Figure.DPI); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Output).Str("verdict", res.Verdict.String()).Msg("figure written")

	out := cmd.OutOrStdout()
	if cfg.Preview.Enabled {
		fmt.Fprint(out, render.Preview(res, cfg.Preview.Height))
	}
	return report.Console(out, res.Margin)
}

func runInfo(cmd *cobra.Command, f *flags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	res, err := analyze(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return writeLine(cmd.OutOrStdout(), report.Summary(res))
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
