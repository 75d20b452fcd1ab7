package config

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/shmviz/internal/motion"
)

var Presets = map[string]motion.Parameters{
	"default": motion.DefaultParameters(),
	"slow": {
		Amplitude: 1, MaxDisplacement: 2, AngularFrequency: math.Pi, Phase: 0,
	},
	"fast": {
		Amplitude: 1, MaxDisplacement: 2, AngularFrequency: 4 * math.Pi, Phase: 0,
	},
	"cosine": {
		Amplitude: 1, MaxDisplacement: 2, AngularFrequency: 2 * math.Pi, Phase: math.Pi / 2,
	},
	"large": {
		Amplitude: 5, MaxDisplacement: 10, AngularFrequency: 1, Phase: 0,
	},
}

// GetPreset returns a config built on the defaults with the preset's parameters.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%q (available: %v): %w", name, ListPresets(), ErrUnknownPreset)
	}
	cfg := DefaultConfig()
	cfg.Params = p
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
