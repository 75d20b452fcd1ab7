package app

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/shmviz/internal/anim"
	"github.com/san-kum/shmviz/internal/motion"
	"github.com/san-kum/shmviz/internal/render"
	"github.com/san-kum/shmviz/internal/surface"
)

// Field names one editable parameter.
type Field string

const (
	Amplitude        Field = "amplitude"
	MaxDisplacement  Field = "xm"
	AngularFrequency Field = "omega"
	Phase            Field = "phase"
)

// Controls are the fields exposed as input controls, in display order.
var Controls = []Field{Amplitude, MaxDisplacement, AngularFrequency}

var (
	ErrUnknownField = errors.New("app: unknown parameter field")
	ErrAssignment   = errors.New("app: expected field=value")
)

// ParseField resolves a field name, ignoring case and surrounding space.
func ParseField(name string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(name))); f {
	case Amplitude, MaxDisplacement, AngularFrequency, Phase:
		return f, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownField)
}

func (f Field) Label() string {
	switch f {
	case Amplitude:
		return "Amplitude (A)"
	case MaxDisplacement:
		return "Max Displacement (Xm)"
	case AngularFrequency:
		return "Angular Frequency (ω)"
	case Phase:
		return "Phase (φ)"
	}
	return string(f)
}

// Views are the two surfaces a frame is drawn onto.
type Views struct {
	Spring surface.Surface
	Graph  surface.Surface
}

// State is the whole application: parameters, the animation driver and the
// views. Every handler takes it explicitly; there is no package-level state.
type State struct {
	Params  motion.Parameters
	Driver  *anim.Driver
	Palette render.Palette
	Views   Views
}

func New(p motion.Parameters, step float64, views Views) *State {
	return &State{
		Params:  p,
		Driver:  anim.NewDriver(step),
		Palette: render.DefaultPalette,
		Views:   views,
	}
}

// Time is the simulation clock.
func (s *State) Time() float64 { return s.Driver.Time() }

// Sample evaluates the motion at the current time.
func (s *State) Sample() motion.Sample { return motion.At(s.Params, s.Time()) }

// Redraw paints both views at the current time, spring first.
func (s *State) Redraw() {
	t := s.Time()
	if s.Views.Spring != nil {
		render.DrawSpringWith(s.Views.Spring, s.Params, t, s.Palette)
	}
	if s.Views.Graph != nil {
		render.DrawGraphWith(s.Views.Graph, s.Params, t, s.Palette)
	}
}

// Get returns the current value of f.
func (s *State) Get(f Field) float64 {
	switch f {
	case Amplitude:
		return s.Params.Amplitude
	case MaxDisplacement:
		return s.Params.MaxDisplacement
	case AngularFrequency:
		return s.Params.AngularFrequency
	case Phase:
		return s.Params.Phase
	}
	return math.NaN()
}

// SetField is the input-change handler: it parses text into f, redraws at
// the unchanged time and returns the frame to schedule if the animation is
// running. Unparsable text becomes NaN and is drawn as-is.
func (s *State) SetField(f Field, text string) (anim.FrameID, error) {
	p, ok := with(s.Params, f, parseNumber(text))
	if !ok {
		return 0, fmt.Errorf("%q: %w", f, ErrUnknownField)
	}
	return s.SetParams(p), nil
}

// Assign applies a "field=value" assignment to p. Unlike SetField it is
// strict: the value must parse as a number.
func Assign(p motion.Parameters, assignment string) (motion.Parameters, error) {
	name, text, found := strings.Cut(assignment, "=")
	if !found {
		return p, fmt.Errorf("%q: %w", assignment, ErrAssignment)
	}
	f, err := ParseField(name)
	if err != nil {
		return p, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return p, fmt.Errorf("%s: %w", f, err)
	}
	p, _ = with(p, f, v)
	return p, nil
}

func with(p motion.Parameters, f Field, v float64) (motion.Parameters, bool) {
	switch f {
	case Amplitude:
		p.Amplitude = v
	case MaxDisplacement:
		p.MaxDisplacement = v
	case AngularFrequency:
		p.AngularFrequency = v
	case Phase:
		p.Phase = v
	default:
		return p, false
	}
	return p, true
}

// SetParams replaces every parameter at once. See SetField.
func (s *State) SetParams(p motion.Parameters) anim.FrameID {
	s.Params = p
	log.Printf("params: A=%g Xm=%g ω=%g φ=%g at t=%.2f", p.Amplitude, p.MaxDisplacement, p.AngularFrequency, p.Phase, s.Time())
	id := s.Driver.Reschedule()
	s.Redraw()
	return id
}

// Adjust scales f by factor, the keyboard tuning path. Phase steps by
// (factor-1)·π instead of scaling so it can leave zero.
func (s *State) Adjust(f Field, factor float64) anim.FrameID {
	p := s.Params
	switch f {
	case Amplitude:
		p.Amplitude *= factor
	case MaxDisplacement:
		p.MaxDisplacement *= factor
	case AngularFrequency:
		p.AngularFrequency *= factor
	case Phase:
		p.Phase += (factor - 1) * math.Pi
	default:
		return 0
	}
	return s.SetParams(p)
}

// Toggle is the play control handler.
func (s *State) Toggle() anim.FrameID {
	id := s.Driver.Toggle()
	log.Printf("animation %s at t=%.2f after %d frames", s.Driver.State(), s.Time(), s.Driver.Frames())
	return id
}

// Frame runs a scheduled frame: advance the clock, schedule the next one
// and redraw.
// A canceled or stale id does nothing and reports false.
func (s *State) Frame(id anim.FrameID) (anim.FrameID, bool) {
	next, ok := s.Driver.Advance(id)
	if !ok {
		return 0, false
	}
	s.Redraw()
	return next, true
}

func parseNumber(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err == nil {
		return v
	}
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return v
	}
	return math.NaN()
}
