package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/shmviz/internal/motion"
)

var csvHeader = []string{"t", "x", "v", "a", "x_norm", "v_norm", "a_norm"}

// CSV writes n+1 samples over the plotting window, raw and normalized.
func CSV(w io.Writer, p motion.Parameters, n int) error {
	times, samples := motion.Series(p, n)
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, s := range samples {
		norm := p.Normalized(s)
		row := []string{
			format(times[i]),
			format(s.Displacement),
			format(s.Velocity),
			format(s.Acceleration),
			format(norm.Displacement),
			format(norm.Velocity),
			format(norm.Acceleration),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
