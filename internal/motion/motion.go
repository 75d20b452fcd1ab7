package motion

import (
	"math"
)

const (
	DefaultAmplitude        = 1.0
	DefaultMaxDisplacement  = 2.0
	DefaultAngularFrequency = 2 * math.Pi
	DefaultPhase            = 0.0

	// WindowPeriods is how many full periods the graph window spans.
	WindowPeriods = 2
)

// Parameters holds the physical description of the oscillator.
// Amplitude is carried for display only; MaxDisplacement drives the motion.
type Parameters struct {
	Amplitude        float64 `yaml:"amplitude" json:"amplitude"`
	MaxDisplacement  float64 `yaml:"max_displacement" json:"max_displacement"`
	AngularFrequency float64 `yaml:"angular_frequency" json:"angular_frequency"`
	Phase            float64 `yaml:"phase" json:"phase"`
}

func DefaultParameters() Parameters {
	return Parameters{
		Amplitude:        DefaultAmplitude,
		MaxDisplacement:  DefaultMaxDisplacement,
		AngularFrequency: DefaultAngularFrequency,
		Phase:            DefaultPhase,
	}
}

// Sample is one kinematic evaluation. It is derived on demand and never stored
// by the renderers.
type Sample struct {
	Displacement float64
	Velocity     float64
	Acceleration float64
}

// At evaluates the closed-form motion at time t:
//
//	x(t) =  Xm     sin(ωt+φ)
//	v(t) =  Xm ω   cos(ωt+φ)
//	a(t) = -Xm ω²  sin(ωt+φ)
//
// It is total over the reals; NaN and Inf inputs propagate to the result.
func At(p Parameters, t float64) Sample {
	xm, w := p.MaxDisplacement, p.AngularFrequency
	sin, cos := math.Sincos(w*t + p.Phase)
	return Sample{
		Displacement: xm * sin,
		Velocity:     xm * w * cos,
		Acceleration: -xm * w * w * sin,
	}
}

// Displacement is At(p, t).Displacement without computing the derivatives.
func Displacement(p Parameters, t float64) float64 {
	return p.MaxDisplacement * math.Sin(p.AngularFrequency*t+p.Phase)
}

// Period returns 2π/ω.
func (p Parameters) Period() float64 {
	return 2 * math.Pi / p.AngularFrequency
}

// Window returns the plotting time window, two full periods (4π/ω).
func (p Parameters) Window() float64 {
	return WindowPeriods * p.Period()
}

// Frequency returns ω/2π in cycles per time unit.
func (p Parameters) Frequency() float64 {
	return p.AngularFrequency / (2 * math.Pi)
}

// Peaks returns the peak magnitude of each series: Xm, Xm·ω and Xm·ω².
func (p Parameters) Peaks() Sample {
	xm, w := p.MaxDisplacement, p.AngularFrequency
	return Sample{
		Displacement: xm,
		Velocity:     xm * w,
		Acceleration: xm * w * w,
	}
}

// Normalized divides each component of s by the matching peak, mapping every
// series onto [-1, 1]. Zero peaks yield NaN or Inf.
func (p Parameters) Normalized(s Sample) Sample {
	pk := p.Peaks()
	return Sample{
		Displacement: s.Displacement / pk.Displacement,
		Velocity:     s.Velocity / pk.Velocity,
		Acceleration: s.Acceleration / pk.Acceleration,
	}
}

// Series samples n+1 evenly spaced points over [0, Window()], endpoints included.
func Series(p Parameters, n int) ([]float64, []Sample) {
	if n < 1 {
		n = 1
	}
	span := p.Window()
	times := make([]float64, n+1)
	samples := make([]Sample, n+1)
	for i := 0; i <= n; i++ {
		t := span * float64(i) / float64(n)
		times[i] = t
		samples[i] = At(p, t)
	}
	return times, samples
}

// Cycle returns the position of t inside the plotting window as a fraction in [0, 1).
func (p Parameters) Cycle(t float64) float64 {
	span := p.Window()
	return math.Mod(t, span) / span
}
