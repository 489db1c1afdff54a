package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

const (
	DefaultMass         = 1.0
	DefaultStiffness    = 10.0
	DefaultCoulombForce = 0.5
	DefaultX0           = 1.0
	DefaultV0           = 0.0
	DefaultDuration     = 10.0
	DefaultDt           = 0.01
	DefaultDataDir      = ".coulombvib"
	DefaultSVGWidth     = 800
	DefaultSVGHeight    = 400
)

type Config struct {
	Name   string       `yaml:"name"`
	Params ParamsConfig `yaml:"params"`
	Output OutputConfig `yaml:"output"`
}

type ParamsConfig struct {
	Mass         float64 `yaml:"m"`
	Stiffness    float64 `yaml:"k"`
	CoulombForce float64 `yaml:"fc"`
	X0           float64 `yaml:"x0"`
	V0           float64 `yaml:"v0"`
	Duration     float64 `yaml:"total_time"`
	Dt           float64 `yaml:"dt"`
}

type OutputConfig struct {
	DataDir   string `yaml:"data_dir"`
	SVGWidth  int    `yaml:"svg_width"`
	SVGHeight int    `yaml:"svg_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: "coulomb",
		Params: ParamsConfig{
			Mass:         DefaultMass,
			Stiffness:    DefaultStiffness,
			CoulombForce: DefaultCoulombForce,
			X0:           DefaultX0,
			V0:           DefaultV0,
			Duration:     DefaultDuration,
			Dt:           DefaultDt,
		},
		Output: OutputConfig{
			DataDir:   DefaultDataDir,
			SVGWidth:  DefaultSVGWidth,
			SVGHeight: DefaultSVGHeight,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

func (c *Config) Parameters() vibration.Parameters {
	return vibration.Parameters{
		Mass:         c.Params.Mass,
		Stiffness:    c.Params.Stiffness,
		CoulombForce: c.Params.CoulombForce,
		X0:           c.Params.X0,
		V0:           c.Params.V0,
		TotalTime:    c.Params.Duration,
		TimeStep:     c.Params.Dt,
	}
}

func (c *Config) SetParameters(p vibration.Parameters) {
	c.Params = ParamsConfig{
		Mass:         p.Mass,
		Stiffness:    p.Stiffness,
		CoulombForce: p.CoulombForce,
		X0:           p.X0,
		V0:           p.V0,
		Duration:     p.TotalTime,
		Dt:           p.TimeStep,
	}
}
