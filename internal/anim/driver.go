package anim

// DefaultStep is the time added per animation frame.
const DefaultStep = 0.05

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// FrameID is the cancellation token of a scheduled frame. Zero means none.
type FrameID uint64

// Driver owns the simulation clock and the play/pause state. It never runs
// frames itself: the front end delivers each scheduled FrameID back through
// Fire when its frame is due, however it schedules work.
//
// At most one frame is pending. A token that is no longer pending is inert,
// so a frame message that was already in flight when the user paused is
// simply dropped.
type Driver struct {
	step    float64
	time    float64
	state   State
	pending FrameID
	last    FrameID
	fired   int
}

func NewDriver(step float64) *Driver {
	if step <= 0 {
		step = DefaultStep
	}
	return &Driver{step: step}
}

func (d *Driver) Time() float64    { return d.time }
func (d *Driver) Step() float64    { return d.step }
func (d *Driver) State() State     { return d.state }
func (d *Driver) Running() bool    { return d.state == Running }
func (d *Driver) Pending() FrameID { return d.pending }

// Frames is the number of frames that have advanced the clock.
func (d *Driver) Frames() int { return d.fired }

// Label is the text of the play control for the current state.
func (d *Driver) Label() string {
	if d.state == Running {
		return "Pause Animation!"
	}
	return "Play Animation!"
}

// Toggle flips between Idle and Running. Starting schedules the first frame
// and returns its token; stopping cancels the pending frame before leaving
// Running and returns zero.
func (d *Driver) Toggle() FrameID {
	if d.state == Running {
		d.Cancel(d.pending)
		d.state = Idle
		return 0
	}
	d.state = Running
	return d.schedule()
}

// Cancel drops id if it is the pending frame. Fired, canceled and unknown
// tokens are ignored.
func (d *Driver) Cancel(id FrameID) {
	if id != 0 && id == d.pending {
		d.pending = 0
	}
}

// Fire runs frame id: the clock advances one step and the frame stops being
// pending. It reports false, touching nothing, when id is not the pending
// frame or the driver is idle.
func (d *Driver) Fire(id FrameID) bool {
	if id == 0 || id != d.pending || d.state != Running {
		return false
	}
	d.pending = 0
	d.time += d.step
	d.fired++
	return true
}

// Next schedules the frame after a fired one. It returns zero when the driver
// stopped in the meantime or a frame is already pending.
func (d *Driver) Next() FrameID {
	if d.state != Running || d.pending != 0 {
		return 0
	}
	return d.schedule()
}

// Advance is Fire followed by Next.
func (d *Driver) Advance(id FrameID) (FrameID, bool) {
	if !d.Fire(id) {
		return 0, false
	}
	return d.Next(), true
}

// Reschedule replaces the pending frame after a parameter change. The clock
// is untouched. While running a fresh frame is scheduled so the loop keeps
// going; while idle it returns zero.
func (d *Driver) Reschedule() FrameID {
	d.Cancel(d.pending)
	if d.state != Running {
		return 0
	}
	return d.schedule()
}

func (d *Driver) schedule() FrameID {
	d.last++
	d.pending = d.last
	return d.pending
}
