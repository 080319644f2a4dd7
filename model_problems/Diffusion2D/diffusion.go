// Package Diffusion2D solves time dependent scalar diffusion of a
// Gaussian hill on a triangulated rectangle with P1 elements and
// implicit Euler time stepping. The operator assembles once with the
// Dirichlet boundary baked in, each step reassembles the right hand
// side from the previous field, applies the lifting correction and
// solves the fixed sparse SPD system.
package Diffusion2D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/gofea/InputParameters"
	"github.com/notargets/gofea/catalog"
	"github.com/notargets/gofea/fem"
	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/output"
	"github.com/notargets/gofea/solver"
	"github.com/notargets/gofea/utils"
)

type Diffusion struct {
	// Input parameters
	IP       *InputParameters.InputParametersDiffusion
	MeshFile string
	Dt       float64
	// Discretization, fixed for the whole run
	Msh    *mesh.Mesh
	Space  *fem.Space
	BC     *fem.DirichletBC
	Asm    *fem.Assembler
	System utils.CSR
	Solver solver.Interface
	// Time stepping state
	Time        float64
	StepNum     int
	UPrev, UCur *fem.Field
	RHS         utils.Vector // Reusable, zeroed by the step before reassembly
	// Per step diagnostics, entry 0 is the initial condition
	Times, UMax, Mass []float64
	chart             ChartState
}

func NewDiffusion(ip *InputParameters.InputParametersDiffusion, meshFile string,
	verbose bool) (c *Diffusion) {
	var (
		boundaryValue, err = ip.BoundaryValue()
	)
	if err != nil {
		panic(err)
	}
	c = &Diffusion{
		IP:       ip,
		MeshFile: meshFile,
		Dt:       ip.Dt(),
	}
	if len(meshFile) != 0 {
		c.Msh = mesh.ReadSU2(meshFile, verbose)
	} else {
		diag, err := mesh.NewDiagonal(ip.Diagonal)
		if err != nil {
			panic(err)
		}
		c.Msh = mesh.NewRectangleMesh(-2, 2, -2, 2, ip.Nx, ip.Ny, diag)
	}
	if ip.NumPartitions > 1 {
		c.Msh.PartitionBlock(ip.NumPartitions)
	}
	c.Space = fem.NewSpace(c.Msh)
	c.BC = fem.NewConstantBC(c.Space, boundaryValue)
	c.Asm = fem.NewAssembler(c.Space, fem.NewWeakForm(c.Dt, ip.Kappa))

	// One time assembly: operator with constraints baked in, then the
	// solver factorization
	A := c.Asm.AssembleMatrix()
	c.BC.Finalize(A)
	c.System = A.ToCSR()
	c.Solver = solver.New(solver.NewType(ip.SolverType))
	c.Solver.Factor(c.System)

	// Initial condition: Gaussian hill centered at the origin
	alpha := ip.Alpha
	c.UPrev = c.Space.Interpolate("u_prev", func(x, y float64) float64 {
		return math.Exp(-alpha * (x*x + y*y))
	})
	c.UCur = fem.NewField(c.Space, "u")
	c.UCur.CopyFrom(c.UPrev)
	c.RHS = utils.NewVector(c.Space.NDofs)
	c.recordDiagnostics()

	if verbose {
		fmt.Printf("Scalar Diffusion in 2 Dimensions\n")
		fmt.Printf("Using %d go routines in parallel\n", c.Msh.NP)
		fmt.Printf("Solver: %s\n", solver.NewType(ip.SolverType).Print())
		fmt.Printf("Dt = %8.5f, Kappa = %8.5f, Alpha = %8.5f, Num Elements K = %d\n\n",
			c.Dt, ip.Kappa, ip.Alpha, c.Msh.K)
	}
	return
}

// Step advances the solution by one time step. The order is fixed:
// advance time, zero the reusable buffer, reassemble, lift, solve,
// synchronize, then propagate current into previous.
func (c *Diffusion) Step() {
	c.Time += c.Dt
	c.StepNum++
	c.RHS.Zero()
	c.Asm.AssembleRHS(c.RHS, c.UPrev)
	c.BC.ApplyLifting(c.RHS)
	x := c.Solver.Solve(c.RHS)
	c.UCur.SetFrom(x) // Synchronizes ghost mirrors
	c.UPrev.CopyFrom(c.UCur)
	c.recordDiagnostics()
}

func (c *Diffusion) recordDiagnostics() {
	c.Times = append(c.Times, c.Time)
	c.UMax = append(c.UMax, c.UCur.Max())
	c.Mass = append(c.Mass, c.UCur.Integral())
}

// Solve runs the full time loop with output. Writers close via defer
// so partial results survive a failed run.
func (c *Diffusion) Solve(pm *PlotMeta) {
	var (
		ip      = c.IP
		err     error
		series  *output.SeriesWriter
		anim    *output.AnimationWriter
		cat     *catalog.Store
		runID   int64
		fmax    = c.UCur.Max()
		elapsed time.Duration
	)
	if len(ip.OutputDir) != 0 {
		if series, err = output.NewSeriesWriter(ip.OutputDir, ip.SeriesName, c.Msh); err != nil {
			panic(err)
		}
		defer series.Close()
	}
	if len(ip.AnimationFile) != 0 {
		if anim, err = output.NewAnimationWriter(ip.AnimationFile, 512, 512, 10); err != nil {
			panic(err)
		}
		defer anim.Close()
	}
	if len(ip.CatalogFile) != 0 {
		if cat, err = catalog.Open(ip.CatalogFile); err != nil {
			panic(err)
		}
		defer cat.Close()
		if runID, err = cat.BeginRun(catalog.RunParams{
			Title:      ip.Title,
			Nx:         ip.Nx,
			Ny:         ip.Ny,
			NumSteps:   ip.NumSteps,
			FinalTime:  ip.FinalTime,
			Alpha:      ip.Alpha,
			Kappa:      ip.Kappa,
			Solver:     c.Solver.Name(),
			Partitions: c.Msh.NP,
		}); err != nil {
			panic(err)
		}
	}
	writeStep := func() {
		if series != nil {
			if err = series.Append(c.Time, "u", c.UCur.V.DataP); err != nil {
				panic(err)
			}
		}
		if anim != nil {
			if err = anim.AddField(c.Msh, c.UCur.V.DataP, 0, fmax); err != nil {
				panic(err)
			}
		}
		if cat != nil {
			if err = cat.RecordStep(runID, c.StepNum, c.Time,
				c.UMax[c.StepNum], c.Mass[c.StepNum]); err != nil {
				panic(err)
			}
		}
	}
	writeStep() // The initial condition, tagged t = 0

	if pm.StepsBeforePlot <= 0 {
		pm.StepsBeforePlot = 1
	}
	fmt.Printf("%8s%10s%12s%12s\n", "Step", "Time", "Max(u)", "Mass")
	var start time.Time
	for c.StepNum < c.IP.NumSteps {
		start = time.Now()
		c.Step()
		elapsed += time.Now().Sub(start)
		writeStep()
		if c.StepNum%pm.StepsBeforePlot == 0 || c.StepNum == 1 ||
			c.StepNum == c.IP.NumSteps {
			if pm.Plot {
				c.PlotSolution(pm)
			}
			c.PrintUpdate()
		}
	}
	if len(ip.ChartFile) != 0 {
		if err = output.WriteDecayChart(ip.ChartFile, c.Times, c.UMax, c.Mass); err != nil {
			panic(err)
		}
	}
	if cat != nil {
		if err = cat.FinishRun(runID); err != nil {
			panic(err)
		}
	}
	if pm.Plot {
		c.PlotDecay(pm)
	}
	c.PrintFinal(elapsed)
}

func (c *Diffusion) PrintUpdate() {
	fmt.Printf("%8d%10.5f%12.4e%12.4e\n",
		c.StepNum, c.Time, c.UMax[c.StepNum], c.Mass[c.StepNum])
}

func (c *Diffusion) PrintFinal(elapsed time.Duration) {
	rate := float64(elapsed.Microseconds()) / (float64(c.Msh.K * c.StepNum))
	fmt.Printf("\nRate of execution = %8.5f us/(element*iteration) over %d iterations\n",
		rate, c.StepNum)
}
