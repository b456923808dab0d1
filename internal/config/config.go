package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stabplot/internal/analysis"
	"github.com/san-kum/stabplot/internal/integrators"
)

const (
	DefaultOutput   = "stabplot.png"
	DefaultWidthIn  = 12.0
	DefaultHeightIn = 10.0
	DefaultDPI      = 100
	DefaultPreview  = 10
)

var ErrInvalid = errors.New("config: invalid value")

// Config controls how the figure is sampled and drawn. The plant itself is
// fixed and has no entry here.
type Config struct {
	Output  string        `yaml:"output"`
	Figure  FigureConfig  `yaml:"figure"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Step    StepConfig    `yaml:"step"`
	Preview PreviewConfig `yaml:"preview"`
}

type FigureConfig struct {
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	DPI      int     `yaml:"dpi"`
}

type SweepConfig struct {
	Points  int     `yaml:"points"`
	Decades float64 `yaml:"decades"`
}

type StepConfig struct {
	Method    string  `yaml:"method"`
	Points    int     `yaml:"points"`
	TFinal    float64 `yaml:"tfinal"`
	Tolerance float64 `yaml:"tolerance"`
}

type PreviewConfig struct {
	Enabled bool `yaml:"enabled"`
	Height  int  `yaml:"height"`
}

func DefaultConfig() *Config {
	step := analysis.DefaultStepOptions()
	return &Config{
		Output: DefaultOutput,
		Figure: FigureConfig{
			WidthIn:  DefaultWidthIn,
			HeightIn: DefaultHeightIn,
			DPI:      DefaultDPI,
		},
		Sweep: SweepConfig{
			Points:  analysis.DefaultBodePoints,
			Decades: analysis.DefaultBodeDecades,
		},
		Step: StepConfig{
			Method:    step.Method,
			Tolerance: step.Tolerance,
		},
		Preview: PreviewConfig{Height: DefaultPreview},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML file over a copy of base. Keys absent from the
// file keep base's values.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the analyses cannot run with. Zero step points
// and horizon mean "pick automatically".
func (c *Config) Validate() error {
	switch {
	case c.Output == "":
		return fmt.Errorf("%w: empty output path", ErrInvalid)
	case c.Figure.WidthIn <= 0 || c.Figure.HeightIn <= 0:
		return fmt.Errorf("%w: figure size %gx%g in", ErrInvalid, c.Figure.WidthIn, c.Figure.HeightIn)
	case c.Figure.DPI <= 0:
		return fmt.Errorf("%w: dpi %d", ErrInvalid, c.Figure.DPI)
	case c.Sweep.Points < 2:
		return fmt.Errorf("%w: sweep points %d", ErrInvalid, c.Sweep.Points)
	case c.Sweep.Decades < 0:
		return fmt.Errorf("%w: sweep decades %g", ErrInvalid, c.Sweep.Decades)
	case c.Step.Points < 0 || c.Step.Points == 1:
		return fmt.Errorf("%w: step points %d", ErrInvalid, c.Step.Points)
	case c.Step.TFinal < 0:
		return fmt.Errorf("%w: step tfinal %g", ErrInvalid, c.Step.TFinal)
	}
	if c.Step.Method != analysis.MethodZOH {
		if _, err := integrators.NewRegistry().Get(c.Step.Method); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// AnalysisOptions maps the config onto the analysis pipeline.
func (c *Config) AnalysisOptions() analysis.Options {
	opts := analysis.DefaultOptions()
	opts.Bode.Points = c.Sweep.Points
	opts.Bode.Decades = c.Sweep.Decades
	opts.Step.Method = c.Step.Method
	opts.Step.Points = c.Step.Points
	opts.Step.TFinal = c.Step.TFinal
	if c.Step.Tolerance > 0 {
		opts.Step.Tolerance = c.Step.Tolerance
	}
	return opts
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
