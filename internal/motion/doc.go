// Package motion evaluates simple harmonic motion in closed form.
//
// A [Parameters] value describes the oscillator; [At] maps it and a time
// to a [Sample] of displacement, velocity and acceleration:
//
//	p := motion.DefaultParameters()
//	s := motion.At(p, 0.25) // quarter period: peak displacement
//
// Nothing is integrated, so there is no drift: every frame is evaluated
// from scratch. Division happens only in [Parameters.Normalized],
// [Parameters.Period] and [Parameters.Window]; with a zero divisor they
// return NaN or Inf rather than failing.
package motion
