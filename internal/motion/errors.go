package motion

import (
	"errors"
	"fmt"
	"math"
)

// Precondition errors. Renderers never check these; they are reported only
// where parameters enter from a file or the command line.
var (
	// ErrZeroDisplacement indicates Xm = 0, the displacement normalization divisor.
	ErrZeroDisplacement = errors.New("motion: max displacement must be nonzero")

	// ErrZeroFrequency indicates ω = 0, the divisor for the velocity and
	// acceleration peaks and the plotting window.
	ErrZeroFrequency = errors.New("motion: angular frequency must be nonzero")

	// ErrNotFinite indicates a NaN or infinite parameter.
	ErrNotFinite = errors.New("motion: parameter is NaN or infinite")
)

// Validate reports the first precondition the parameters violate.
func (p Parameters) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"amplitude", p.Amplitude},
		{"max_displacement", p.MaxDisplacement},
		{"angular_frequency", p.AngularFrequency},
		{"phase", p.Phase},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s: %w", f.name, ErrNotFinite)
		}
	}
	if p.MaxDisplacement == 0 {
		return ErrZeroDisplacement
	}
	if p.AngularFrequency == 0 {
		return ErrZeroFrequency
	}
	return nil
}
