package render

import "github.com/san-kum/shmviz/internal/surface"

// Palette holds every color the two views use. The zero value is not useful;
// start from DefaultPalette.
type Palette struct {
	Support      surface.Color
	Coil         surface.Color
	Mass         surface.Color
	Outline      surface.Color
	Arrow        surface.Color
	Equilibrium  surface.Color
	Axis         surface.Color
	Grid         surface.Color
	Label        surface.Color
	Displacement surface.Color
	Velocity     surface.Color
	Acceleration surface.Color
	Cursor       surface.Color
}

var DefaultPalette = Palette{
	Support:      "#333",
	Coil:         "#666",
	Mass:         "#ff6b6b",
	Outline:      "#333",
	Arrow:        "#4ecdc4",
	Equilibrium:  "#999",
	Axis:         "#333",
	Grid:         "#ddd",
	Label:        "#333",
	Displacement: "#ff6b6b",
	Velocity:     "#4ecdc4",
	Acceleration: "#45b7d1",
	Cursor:       "#ff6b6b",
}

const (
	// VisualAmplitude is the on-screen swing, in pixels, of a series at its peak.
	VisualAmplitude = 100.0

	// Margin is the horizontal inset of the support, equilibrium line and plot area.
	Margin = 50.0

	SupportY     = 50.0
	EquilibriumY = 150.0
	CoilWidth    = 20.0
	CoilPitch    = 15.0
	MinCoils     = 8
	MassRadius   = 25.0
	ArrowOffset  = 40.0
	ArrowLength  = 20.0
	ArrowHead    = 5.0
	// ArrowThreshold is the minimum |offset| in pixels before the direction cue shows.
	ArrowThreshold = 5.0

	PlotTop       = 30.0
	GridDivisions = 10
	Subdivisions  = 200
	LabelSize     = 14.0
)
