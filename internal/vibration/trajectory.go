package vibration

import (
	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
	"github.com/Luizfelm/CoulombDampedVibration/internal/physics"
)

// Trajectory is the sampled history of one run. T, X and V always have the
// same length and (T[i], X[i], V[i]) is the state at step i.
type Trajectory struct {
	T []float64 `json:"t"`
	X []float64 `json:"x"`
	V []float64 `json:"v"`
}

// Point is one (abscissa, ordinate) pair of a plotted series.
type Point struct {
	X, Y float64
}

func newTrajectory(capacity int) *Trajectory {
	return &Trajectory{
		T: make([]float64, 0, capacity),
		X: make([]float64, 0, capacity),
		V: make([]float64, 0, capacity),
	}
}

func (tr *Trajectory) append(t, x, v float64) {
	tr.T = append(tr.T, t)
	tr.X = append(tr.X, x)
	tr.V = append(tr.V, v)
}

func (tr *Trajectory) Len() int {
	if tr == nil {
		return 0
	}
	return len(tr.T)
}

// Sample returns the state at step i.
func (tr *Trajectory) Sample(i int) (t, x, v float64) {
	return tr.T[i], tr.X[i], tr.V[i]
}

// Final returns the last sample.
func (tr *Trajectory) Final() (t, x, v float64) {
	return tr.Sample(tr.Len() - 1)
}

// Displacement returns the (t, x) series.
func (tr *Trajectory) Displacement() []Point {
	return series(tr.T, tr.X)
}

// Velocity returns the (t, v) series.
func (tr *Trajectory) Velocity() []Point {
	return series(tr.T, tr.V)
}

// Phase returns the (x, v) series.
func (tr *Trajectory) Phase() []Point {
	return series(tr.X, tr.V)
}

// Energy returns the mechanical energy 0.5*m*v² + 0.5*k*x² at every sample.
func (tr *Trajectory) Energy(p Parameters) []float64 {
	osc := physics.NewCoulombOscillator(p.Mass, p.Stiffness, p.CoulombForce)
	out := make([]float64, tr.Len())
	for i := range out {
		out[i] = osc.Energy(dynamo.State{tr.X[i], tr.V[i]})
	}
	return out
}

func series(xs, ys []float64) []Point {
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return points
}
