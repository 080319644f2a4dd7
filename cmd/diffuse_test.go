package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gofea/InputParameters"
)

func TestParseInputParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Gaussian Hill
FinalTime: 1.
NumSteps: 50
Alpha: 5.
Kappa: 1.
Nx: 50
Ny: 50
Diagonal: left
SolverType: cg
NumPartitions: 2
BCs:
  Dirichlet:
    0:
      Value: 0.
`)
	var input InputParameters.InputParametersDiffusion
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.FinalTime, 1.)
	assert.Equal(t, input.NumSteps, 50)
	assert.Equal(t, input.Alpha, 5.)
	assert.Equal(t, input.Kappa, 1.)
	assert.Equal(t, input.NumPartitions, 2)
	// Check the Dirichlet BC on marker 0
	assert.Equal(t, input.BCs["Dirichlet"][0]["Value"], 0.)
	input.Print()
	g, err := input.BoundaryValue()
	if err != nil {
		panic(err)
	}
	assert.Equal(t, g, 0.)
	assert.Equal(t, input.Dt(), 1./50)
}

func TestParseDefaults(t *testing.T) {
	var input InputParameters.InputParametersDiffusion
	if err := input.Parse([]byte(`Title: Minimal`)); err != nil {
		panic(err)
	}
	assert.Equal(t, input.FinalTime, 1.)
	assert.Equal(t, input.NumSteps, 50)
	assert.Equal(t, input.Nx, 50)
	assert.Equal(t, input.Ny, 50)
	assert.Equal(t, input.OutputDir, "output")
	assert.Equal(t, input.SeriesName, "diffusion")
}
