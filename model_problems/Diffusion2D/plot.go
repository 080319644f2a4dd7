package Diffusion2D

import (
	"fmt"
	"time"

	"github.com/notargets/gofea/utils"
)

// PlotMeta controls the interactive solution display.
type PlotMeta struct {
	Plot            bool
	Scale           float64 // Window size relative to the mesh bounding box
	FrameTime       time.Duration
	StepsBeforePlot int
}

type ChartState struct {
	sp   *utils.SurfacePlot
	fI   []float32 // Reusable frame buffer
	fmax float64
}

// PlotSolution renders the current field as a colored surface over the
// mesh. The chart window and color scale are created on first use and
// held for the rest of the run.
func (c *Diffusion) PlotSolution(pm *PlotMeta) {
	var (
		scale = pm.Scale
	)
	if scale <= 0 {
		scale = 1.1
	}
	if c.chart.sp == nil {
		var (
			bb       = c.Msh.BoundingBox()
			centroid = bb.Centroid()
			hx       = 0.5 * scale * (bb.XMax[0] - bb.XMin[0])
			hy       = 0.5 * scale * (bb.XMax[1] - bb.XMin[1])
			gm       = c.Msh.ToGraphMesh()
		)
		c.chart.sp = utils.NewSurfacePlot(1024, 1024,
			centroid.X[0]-hx, centroid.X[0]+hx,
			centroid.X[1]-hy, centroid.X[1]+hy, &gm)
		c.chart.fmax = c.UCur.Max()
		c.chart.sp.AddColorMap(0, c.chart.fmax)
		c.chart.fI = make([]float32, c.Space.NDofs)
	}
	for i, v := range c.UCur.V.DataP {
		c.chart.fI[i] = float32(v)
	}
	fmt.Printf(" Plot>u min,max = %8.5f,%8.5f\n", c.UCur.Min(), c.UCur.Max())
	c.chart.sp.AddFunctionSurface(c.chart.fI)
	utils.SleepFor(int(pm.FrameTime.Milliseconds()))
}

// PlotDecay shows the recorded diagnostics as line series after the
// run, holding the window for the frame time so the result is visible.
func (c *Diffusion) PlotDecay(pm *PlotMeta) {
	lc := utils.NewLineChart(1024, 768, 0, c.Time, 0, c.UMax[0])
	lc.AddLine(c.Times, c.UMax, -1, "max(u)")
	lc.AddLine(c.Times, c.Mass, 1, "mass")
	utils.SleepFor(int(pm.FrameTime.Milliseconds()))
}
