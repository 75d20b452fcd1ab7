package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/shmviz/internal/motion"
)

// State is (x, v).
type State [2]float64

// Derivative returns dx/dt for the state at time t.
type Derivative func(x State, t float64) State

// Oscillator is x'' = -ω²x, the equation the closed form solves.
func Oscillator(p motion.Parameters) Derivative {
	w2 := p.AngularFrequency * p.AngularFrequency
	return func(x State, t float64) State {
		return State{x[1], -w2 * x[0]}
	}
}

// RK4 advances x by one classical Runge-Kutta step.
func RK4(f Derivative, x State, t, dt float64) State {
	k1 := f(x, t)
	k2 := f(State{x[0] + dt*0.5*k1[0], x[1] + dt*0.5*k1[1]}, t+dt*0.5)
	k3 := f(State{x[0] + dt*0.5*k2[0], x[1] + dt*0.5*k2[1]}, t+dt*0.5)
	k4 := f(State{x[0] + dt*k3[0], x[1] + dt*k3[1]}, t+dt)

	dt6 := dt / 6.0
	return State{
		x[0] + dt6*(k1[0]+2*k2[0]+2*k3[0]+k4[0]),
		x[1] + dt6*(k1[1]+2*k2[1]+2*k3[1]+k4[1]),
	}
}

// Energy is the mechanical energy per unit mass, ½v² + ½ω²x². It is
// constant along the motion at ½(Xm·ω)².
func Energy(p motion.Parameters, s motion.Sample) float64 {
	w := p.AngularFrequency
	return 0.5*s.Velocity*s.Velocity + 0.5*w*w*s.Displacement*s.Displacement
}

// Agreement summarizes a numerical integration checked against the closed form.
type Agreement struct {
	Steps        int
	Step         float64
	MaxDeviation float64 // largest |x_rk4 - x| over the run
	EnergyDrift  float64 // relative energy change at the end of the run
}

// Integrate runs RK4 from the closed-form state at t = 0 over the plotting
// window, perPeriod steps per period, and compares every step with the closed
// form. The step count depends only on perPeriod, never on ω.
func Integrate(p motion.Parameters, perPeriod int) (Agreement, error) {
	if err := p.Validate(); err != nil {
		return Agreement{}, err
	}
	if perPeriod < 4 {
		return Agreement{}, fmt.Errorf("%d steps per period: %w", perPeriod, ErrTooFewSamples)
	}

	s0 := motion.At(p, 0)
	e0 := Energy(p, s0)
	if !(e0 > 0) || math.IsInf(e0, 0) {
		return Agreement{}, fmt.Errorf("energy %g: %w", e0, ErrNotRepresentable)
	}

	f := Oscillator(p)
	x := State{s0.Displacement, s0.Velocity}
	dt := math.Abs(p.Period()) / float64(perPeriod)
	n := motion.WindowPeriods * perPeriod

	a := Agreement{Steps: n, Step: dt}
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		x = RK4(f, x, t, dt)
		want := motion.Displacement(p, t+dt)
		a.MaxDeviation = math.Max(a.MaxDeviation, math.Abs(x[0]-want))
	}
	a.EnergyDrift = math.Abs(Energy(p, motion.Sample{Displacement: x[0], Velocity: x[1]})-e0) / e0
	if math.IsNaN(a.MaxDeviation) || math.IsNaN(a.EnergyDrift) || math.IsInf(a.EnergyDrift, 0) {
		return Agreement{}, fmt.Errorf("rk4 diverged: %w", ErrNotRepresentable)
	}
	return a, nil
}
