package output

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WriteDecayChart saves a PNG of the run diagnostics: peak field value
// and total mass against time. Both curves decay monotonically for
// diffusion with an absorbing boundary, the chart makes a solver
// regression visible at a glance.
func WriteDecayChart(path string, times, umax, mass []float64) (err error) {
	if len(times) != len(umax) || len(times) != len(mass) {
		return fmt.Errorf("diagnostic series disagree: %d times, %d umax, %d mass",
			len(times), len(umax), len(mass))
	}
	p := plot.New()
	p.Title.Text = "Diffusion decay"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Value"

	toXYs := func(f []float64) plotter.XYs {
		pts := make(plotter.XYs, len(times))
		for i := range times {
			pts[i].X, pts[i].Y = times[i], f[i]
		}
		return pts
	}
	if err = plotutil.AddLines(p,
		"max(u)", toXYs(umax),
		"mass", toXYs(mass)); err != nil {
		return fmt.Errorf("adding chart series: %w", err)
	}
	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return
}
