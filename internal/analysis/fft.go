package analysis

import (
	"math"
	"math/cmplx"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// Padded removes the mean of data and zero-pads it to the next power of two.
func Padded(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	if len(data) > 0 {
		mean /= float64(len(data))
	}

	padded := make([]float64, n)
	for i, v := range data {
		padded[i] = v - mean
	}
	return padded
}

// DominantFrequency returns the frequency (Hz) of the strongest non-DC line
// in the displacement spectrum and the bin width of the padded transform.
func DominantFrequency(tr *vibration.Trajectory) (freq, binWidth float64, err error) {
	if tr.Len() < 2 {
		return 0, 0, dynamo.ErrEmptyTrajectory
	}

	dt := tr.T[1] - tr.T[0]
	padded := Padded(tr.X)
	ps := PowerSpectrum(padded)
	binWidth = 1 / (float64(len(padded)) * dt)

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	return float64(maxIdx) * binWidth, binWidth, nil
}

// NaturalFrequency is the undamped frequency sqrt(k/m)/2π in Hz.
func NaturalFrequency(p vibration.Parameters) float64 {
	if p.Mass <= 0 {
		return 0
	}
	return math.Sqrt(p.Stiffness/p.Mass) / (2 * math.Pi)
}
