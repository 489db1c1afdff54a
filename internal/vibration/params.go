package vibration

import (
	"fmt"
	"math"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
)

// MaxSteps bounds floor(T/dt) so a tiny time step cannot exhaust memory.
const MaxSteps = 10_000_000

// Parameter names accepted by Get and With.
const (
	ParamMass         = "m"
	ParamStiffness    = "k"
	ParamCoulombForce = "fc"
	ParamX0           = "x0"
	ParamV0           = "v0"
	ParamTotalTime    = "time"
	ParamTimeStep     = "dt"
)

// Parameters describes one simulation run. All quantities are in SI units
// by convention (kg, N/m, N, m, m/s, s); nothing checks units.
type Parameters struct {
	Mass         float64 `json:"m" yaml:"m"`
	Stiffness    float64 `json:"k" yaml:"k"`
	CoulombForce float64 `json:"fc" yaml:"fc"`
	X0           float64 `json:"x0" yaml:"x0"`
	V0           float64 `json:"v0" yaml:"v0"`
	TotalTime    float64 `json:"total_time" yaml:"total_time"`
	TimeStep     float64 `json:"dt" yaml:"dt"`
}

// ParameterError reports a rejected parameter. It unwraps to
// dynamo.ErrInvalidParameter.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return dynamo.ErrInvalidParameter
}

// Validate checks every field and returns the first violation found.
func (p Parameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{ParamMass, p.Mass},
		{ParamStiffness, p.Stiffness},
		{ParamCoulombForce, p.CoulombForce},
		{ParamX0, p.X0},
		{ParamV0, p.V0},
		{ParamTotalTime, p.TotalTime},
		{ParamTimeStep, p.TimeStep},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ParameterError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
	}

	switch {
	case p.Mass == 0:
		return &ParameterError{Field: ParamMass, Value: p.Mass, Reason: "mass must be non-zero"}
	case p.Mass < 0:
		return &ParameterError{Field: ParamMass, Value: p.Mass, Reason: "mass must be positive"}
	case p.Stiffness < 0:
		return &ParameterError{Field: ParamStiffness, Value: p.Stiffness, Reason: "stiffness must not be negative"}
	case p.CoulombForce < 0:
		return &ParameterError{Field: ParamCoulombForce, Value: p.CoulombForce, Reason: "coulomb force must not be negative"}
	case p.TotalTime <= 0:
		return &ParameterError{Field: ParamTotalTime, Value: p.TotalTime, Reason: "total time must be positive"}
	case p.TimeStep <= 0:
		return &ParameterError{Field: ParamTimeStep, Value: p.TimeStep, Reason: "time step must be positive"}
	}

	if p.TotalTime/p.TimeStep > MaxSteps {
		return &ParameterError{
			Field:  ParamTimeStep,
			Value:  p.TimeStep,
			Reason: fmt.Sprintf("more than %d steps for total time %v", MaxSteps, p.TotalTime),
		}
	}
	return nil
}

// Steps returns N = floor(T/dt). Only meaningful for validated parameters.
func (p Parameters) Steps() int {
	return int(math.Floor(p.TotalTime / p.TimeStep))
}

// Get returns the named parameter.
func (p Parameters) Get(name string) (float64, error) {
	switch name {
	case ParamMass:
		return p.Mass, nil
	case ParamStiffness:
		return p.Stiffness, nil
	case ParamCoulombForce:
		return p.CoulombForce, nil
	case ParamX0:
		return p.X0, nil
	case ParamV0:
		return p.V0, nil
	case ParamTotalTime:
		return p.TotalTime, nil
	case ParamTimeStep:
		return p.TimeStep, nil
	}
	return 0, fmt.Errorf("unknown parameter %q: %w", name, dynamo.ErrInvalidParameter)
}

// With returns a copy of p with the named parameter replaced. The result is
// not validated.
func (p Parameters) With(name string, value float64) (Parameters, error) {
	switch name {
	case ParamMass:
		p.Mass = value
	case ParamStiffness:
		p.Stiffness = value
	case ParamCoulombForce:
		p.CoulombForce = value
	case ParamX0:
		p.X0 = value
	case ParamV0:
		p.V0 = value
	case ParamTotalTime:
		p.TotalTime = value
	case ParamTimeStep:
		p.TimeStep = value
	default:
		return p, fmt.Errorf("unknown parameter %q: %w", name, dynamo.ErrInvalidParameter)
	}
	return p, nil
}

// ParameterNames lists the names accepted by Get and With in display order.
func ParameterNames() []string {
	return []string{ParamMass, ParamStiffness, ParamCoulombForce, ParamX0, ParamV0, ParamTotalTime, ParamTimeStep}
}

func (p Parameters) String() string {
	return fmt.Sprintf("m=%g k=%g fc=%g x0=%g v0=%g T=%g dt=%g",
		p.Mass, p.Stiffness, p.CoulombForce, p.X0, p.V0, p.TotalTime, p.TimeStep)
}
