// Package analysis checks the sampled motion against its closed form.
//
//   - [DominantFrequency]: FFT peak of the displacement, compared with ω/2π
//   - [PowerSpectrum]: one-sided power spectrum of any real signal
//   - [PhasePortrait]: (x, v) states over the plotting window
//   - [Integrate]: RK4 solution of x'' = -ω²x checked against the closed form
//
// # Frequency Check
//
// Sampling a whole number of periods puts the peak on an exact bin:
//
//	r, err := analysis.DominantFrequency(p, 8, 64)
//	if err == nil && r.RelativeError() < 1e-9 {
//	    // sampler and FFT agree
//	}
package analysis
