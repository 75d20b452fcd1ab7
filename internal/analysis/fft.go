package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/shmviz/internal/motion"
)

var (
	ErrTooFewSamples = errors.New("analysis: too few samples")
	ErrNoSignal      = errors.New("analysis: signal has no oscillating component")

	// ErrNotRepresentable is returned when the motion's energy under- or
	// overflows float64, so errors relative to it mean nothing.
	ErrNotRepresentable = errors.New("analysis: energy out of float64 range")
)

// PowerSpectrum returns |X_k|² for k = 0..n/2 of a real signal. Any length is
// accepted; go-dsp falls back to Bluestein for non powers of two.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	spec := fft.FFTReal(data)
	ps := make([]float64, len(spec)/2+1)
	for i := range ps {
		a := cmplx.Abs(spec[i])
		ps[i] = a * a
	}
	return ps
}

// Peak returns the index of the largest bin above DC.
func Peak(ps []float64) (int, error) {
	if len(ps) < 2 {
		return 0, ErrTooFewSamples
	}
	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	if !(ps[best] > 0) {
		return 0, ErrNoSignal
	}
	return best, nil
}

// Result compares the measured dominant frequency with ω/2π.
type Result struct {
	Expected float64
	Measured float64
	Bin      int
	Samples  int
	Rate     float64
	Spectrum []float64
}

// RelativeError is the relative deviation of the measurement.
func (r Result) RelativeError() float64 {
	return math.Abs(r.Measured-r.Expected) / r.Expected
}

// DominantFrequency samples the displacement over a whole number of periods
// and locates its spectral peak. With whole periods the peak falls exactly on
// bin `periods`, so the measurement matches ω/2π up to rounding.
func DominantFrequency(p motion.Parameters, periods, perPeriod int) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if periods < 1 || perPeriod < 3 {
		return Result{}, ErrTooFewSamples
	}

	period := math.Abs(p.Period())
	n := periods * perPeriod
	dt := period / float64(perPeriod)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = motion.Displacement(p, float64(i)*dt)
	}

	ps := PowerSpectrum(xs)
	k, err := Peak(ps)
	if err != nil {
		return Result{}, err
	}
	rate := 1 / dt
	return Result{
		Expected: math.Abs(p.Frequency()),
		Measured: float64(k) * rate / float64(n),
		Bin:      k,
		Samples:  n,
		Rate:     rate,
		Spectrum: ps,
	}, nil
}
