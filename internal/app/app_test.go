package app

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/san-kum/shmviz/internal/anim"
	"github.com/san-kum/shmviz/internal/motion"
	"github.com/san-kum/shmviz/internal/render"
	"github.com/san-kum/shmviz/internal/surface"
)

func newState() (*State, *surface.Recorder, *surface.Recorder) {
	spring := surface.NewRecorder(400, 300)
	graph := surface.NewRecorder(600, 300)
	return New(motion.DefaultParameters(), anim.DefaultStep, Views{Spring: spring, Graph: graph}), spring, graph
}

func cursorX(r *surface.Recorder) float64 {
	ops := r.Ops()
	return ops[len(ops)-1].Subpaths[0][0].X
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
		err  bool
	}{
		{"xm", MaxDisplacement, false},
		{" OMEGA ", AngularFrequency, false},
		{"amplitude", Amplitude, false},
		{"phase", Phase, false},
		{"mass", "", true},
	}
	for _, tt := range tests {
		got, err := ParseField(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseField(%q) err = %v", tt.in, err)
			continue
		}
		if tt.err && !errors.Is(err, ErrUnknownField) {
			t.Errorf("ParseField(%q) err = %v, want ErrUnknownField", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAssign(t *testing.T) {
	tests := []struct {
		in   string
		want motion.Parameters
		err  error
	}{
		{"xm=3", motion.Parameters{Amplitude: 1, MaxDisplacement: 3, AngularFrequency: 2 * math.Pi}, nil},
		{" Omega = 4.5 ", motion.Parameters{Amplitude: 1, MaxDisplacement: 2, AngularFrequency: 4.5}, nil},
		{"phase=-1.5", motion.Parameters{Amplitude: 1, MaxDisplacement: 2, AngularFrequency: 2 * math.Pi, Phase: -1.5}, nil},
		{"xm", motion.DefaultParameters(), ErrAssignment},
		{"mass=2", motion.DefaultParameters(), ErrUnknownField},
		{"xm=two", motion.DefaultParameters(), strconv.ErrSyntax},
	}
	for _, tt := range tests {
		got, err := Assign(motion.DefaultParameters(), tt.in)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("Assign(%q) err = %v, want %v", tt.in, err, tt.err)
			}
		} else if err != nil {
			t.Errorf("Assign(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Assign(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestSetField_RedrawsAtCurrentTime(t *testing.T) {
	s, spring, graph := newState()
	s.Redraw()

	if _, err := s.SetField(MaxDisplacement, "5"); err != nil {
		t.Fatal(err)
	}
	if s.Params.MaxDisplacement != 5 {
		t.Errorf("Xm = %v, want 5", s.Params.MaxDisplacement)
	}
	if s.Time() != 0 {
		t.Errorf("time changed to %v", s.Time())
	}
	if len(spring.Ops()) == 0 || len(graph.Ops()) == 0 {
		t.Error("views were not redrawn")
	}
}

func TestSetField_MalformedInputIsNaN(t *testing.T) {
	s, spring, _ := newState()
	if _, err := s.SetField(MaxDisplacement, "two"); err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(s.Params.MaxDisplacement) {
		t.Errorf("Xm = %v, want NaN", s.Params.MaxDisplacement)
	}
	if len(spring.Ops()) == 0 {
		t.Error("spring view should still be drawn")
	}
}

func TestSetField_Overflow(t *testing.T) {
	s, _, _ := newState()
	s.SetField(Amplitude, "1e999")
	if !math.IsInf(s.Params.Amplitude, 1) {
		t.Errorf("amplitude = %v, want +Inf", s.Params.Amplitude)
	}
}

func TestSetField_UnknownField(t *testing.T) {
	s, _, _ := newState()
	before := s.Params
	if _, err := s.SetField("mass", "1"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("err = %v, want ErrUnknownField", err)
	}
	if s.Params != before {
		t.Error("params changed on unknown field")
	}
}

func TestToggle_PlayPause(t *testing.T) {
	s, _, _ := newState()
	id := s.Toggle()
	s.Toggle()
	if _, ok := s.Frame(id); ok {
		t.Error("frame ran after pause")
	}
	if s.Time() != 0 || s.Driver.State() != anim.Idle {
		t.Errorf("time=%v state=%v", s.Time(), s.Driver.State())
	}
}

func TestFrame_AdvancesAndRedraws(t *testing.T) {
	s, spring, graph := newState()
	id := s.Toggle()
	for i := 0; i < 5; i++ {
		var ok bool
		id, ok = s.Frame(id)
		if !ok {
			t.Fatalf("frame %d did not run", i)
		}
	}
	if math.Abs(s.Time()-0.25) > 1e-12 {
		t.Errorf("time = %v, want 0.25", s.Time())
	}

	// quarter period at the default ω: mass at the bottom of its swing
	var mass surface.Op
	for _, op := range spring.Ops() {
		if op.Kind == surface.OpCircle {
			mass = op
		}
	}
	if math.Abs(mass.Center.Y-(render.EquilibriumY+render.VisualAmplitude)) > 1e-6 {
		t.Errorf("mass y = %v", mass.Center.Y)
	}
	if got, want := cursorX(graph), 50+0.125*500.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("cursor x = %v, want %v", got, want)
	}
}

func TestSetParams_WhileRunningKeepsAnimating(t *testing.T) {
	s, _, graph := newState()
	id := s.Toggle()
	id, _ = s.Frame(id)
	id, _ = s.Frame(id)
	before := s.Time()
	windowBefore := s.Params.Window()

	fresh, err := s.SetField(AngularFrequency, "12.566370614359172")
	if err != nil {
		t.Fatal(err)
	}
	if s.Time() != before {
		t.Errorf("time reset to %v", s.Time())
	}
	if math.Abs(s.Params.Window()-windowBefore/2) > 1e-9 {
		t.Errorf("window = %v, want %v", s.Params.Window(), windowBefore/2)
	}
	if got, want := cursorX(graph), render.NewPlot(600, 300, s.Params).Cursor(before); math.Abs(got-want) > 1e-9 {
		t.Errorf("cursor x = %v, want %v", got, want)
	}

	if _, ok := s.Frame(id); ok {
		t.Error("frame scheduled before the change still ran")
	}
	if fresh == 0 {
		t.Fatal("no fresh frame scheduled while running")
	}
	if _, ok := s.Frame(fresh); !ok {
		t.Error("fresh frame did not run")
	}
	if !s.Driver.Running() {
		t.Error("animation stopped after a parameter change")
	}
}

func TestSetParams_WhileIdle(t *testing.T) {
	s, _, _ := newState()
	id := s.SetParams(motion.Parameters{MaxDisplacement: 1, AngularFrequency: 1})
	if id != 0 {
		t.Errorf("idle parameter change scheduled frame %d", id)
	}
}

func TestAdjust(t *testing.T) {
	s, _, _ := newState()
	s.Adjust(MaxDisplacement, 1.05)
	if math.Abs(s.Params.MaxDisplacement-2.1) > 1e-12 {
		t.Errorf("Xm = %v, want 2.1", s.Params.MaxDisplacement)
	}
	s.Adjust(Phase, 1.05)
	if math.Abs(s.Params.Phase-0.05*math.Pi) > 1e-12 {
		t.Errorf("phase = %v, want %v", s.Params.Phase, 0.05*math.Pi)
	}
}

func TestRedraw_NilViews(t *testing.T) {
	s := New(motion.DefaultParameters(), anim.DefaultStep, Views{})
	s.Redraw()
}
