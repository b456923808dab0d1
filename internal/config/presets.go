package config

import "sort"

// Presets are named figure setups. Fields left zero fall back to
// DefaultConfig when the preset is applied.
var Presets = map[string]*Config{
	"screen": {
		Output:  DefaultOutput,
		Figure:  FigureConfig{WidthIn: 12, HeightIn: 10, DPI: 100},
		Sweep:   SweepConfig{Points: 1000, Decades: 1},
		Step:    StepConfig{Method: "zoh"},
		Preview: PreviewConfig{Height: DefaultPreview},
	},
	"print": {
		Output:  DefaultOutput,
		Figure:  FigureConfig{WidthIn: 12, HeightIn: 10, DPI: 300},
		Sweep:   SweepConfig{Points: 4000, Decades: 1},
		Step:    StepConfig{Method: "zoh", Points: 2000},
		Preview: PreviewConfig{Height: DefaultPreview},
	},
	"compact": {
		Output:  DefaultOutput,
		Figure:  FigureConfig{WidthIn: 8, HeightIn: 6, DPI: 96},
		Sweep:   SweepConfig{Points: 400, Decades: 1},
		Step:    StepConfig{Method: "rk4"},
		Preview: PreviewConfig{Height: 6},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := cfg.Clone()
	def := DefaultConfig()
	if out.Step.Tolerance == 0 {
		out.Step.Tolerance = def.Step.Tolerance
	}
	return out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
