package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	p := cfg.Parameters()
	require.Equal(t, vibration.Parameters{
		Mass: 1, Stiffness: 10, CoulombForce: 0.5, X0: 1, V0: 0, TotalTime: 10, TimeStep: 0.01,
	}, p)
	require.NoError(t, p.Validate())
	require.Equal(t, DefaultDataDir, cfg.Output.DataDir)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("name: stiff\nparams:\n  k: 40\n  dt: 0.005\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "stiff", cfg.Name)
	require.Equal(t, 40.0, cfg.Params.Stiffness)
	require.Equal(t, 0.005, cfg.Params.Dt)
	// untouched keys keep their defaults
	require.Equal(t, DefaultMass, cfg.Params.Mass)
	require.Equal(t, DefaultCoulombForce, cfg.Params.CoulombForce)
	require.Equal(t, DefaultSVGWidth, cfg.Output.SVGWidth)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	cfg := DefaultConfig()
	cfg.Name = "roundtrip"
	cfg.SetParameters(vibration.Parameters{Mass: 3, Stiffness: 7, CoulombForce: 0.25, X0: -1, V0: 2, TotalTime: 4, TimeStep: 0.02})
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("params: [1, 2"), 0644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("sticky")
	require.NoError(t, err)
	require.Equal(t, "sticky", cfg.Name)
	require.Equal(t, 4.0, cfg.Params.CoulombForce)

	// mutating the returned config must not leak into the registry
	cfg.Params.CoulombForce = 99
	again, err := GetPreset("sticky")
	require.NoError(t, err)
	require.Equal(t, 4.0, again.Params.CoulombForce)
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg, err := GetPreset("nonexistent")
	require.Nil(t, cfg)
	require.True(t, errors.Is(err, dynamo.ErrUnknownPreset))
}

func TestPresetsAreValid(t *testing.T) {
	names := ListPresets()
	require.NotEmpty(t, names)
	require.IsIncreasing(t, names)

	for _, name := range names {
		cfg, err := GetPreset(name)
		require.NoError(t, err)
		require.NoError(t, cfg.Parameters().Validate(), name)
	}
}
