package config

import (
	"fmt"
	"sort"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
)

var Presets = map[string]ParamsConfig{
	"classic": {
		Mass: 1, Stiffness: 10, CoulombForce: 0.5, X0: 1, V0: 0, Duration: 10, Dt: 0.01,
	},
	"undamped": {
		Mass: 1, Stiffness: 10, CoulombForce: 0, X0: 1, V0: 0, Duration: 20, Dt: 0.01,
	},
	"free_flight": {
		Mass: 1, Stiffness: 0, CoulombForce: 0, X0: 0, V0: 1.5, Duration: 5, Dt: 0.01,
	},
	"sticky": {
		Mass: 1, Stiffness: 10, CoulombForce: 4, X0: 1, V0: 0, Duration: 5, Dt: 0.01,
	},
	"kick": {
		Mass: 2, Stiffness: 40, CoulombForce: 1, X0: 0, V0: 3, Duration: 10, Dt: 0.005,
	},
	"fine": {
		Mass: 1, Stiffness: 10, CoulombForce: 0.5, X0: 1, V0: 0, Duration: 10, Dt: 0.001,
	},
}

// GetPreset returns a fresh default config with the named preset's
// parameters.
func GetPreset(name string) (*Config, error) {
	params, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	cfg.Name = name
	cfg.Params = params
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
