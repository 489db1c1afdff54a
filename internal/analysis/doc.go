// Package analysis provides post-run tools for oscillator trajectories.
//
//   - [DominantFrequency]: strongest spectral line of the displacement
//   - [NaturalFrequency]: sqrt(k/m)/2π for comparison
//   - [PhasePortraitASCII]: displacement/velocity plane as text
//
// # Frequency check
//
// Without friction the dominant frequency should sit within one FFT bin of
// the natural frequency:
//
//	f, bin, _ := analysis.DominantFrequency(tr)
//	if math.Abs(f-analysis.NaturalFrequency(p)) > bin {
//	    // step size too coarse
//	}
package analysis
