package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func referenceParams() RunParams {
	return RunParams{
		Title:      "gaussian hill",
		Nx:         50,
		Ny:         50,
		NumSteps:   50,
		FinalTime:  1.0,
		Alpha:      5.0,
		Kappa:      1.0,
		Solver:     "cg",
		Partitions: 1,
	}
}

func TestRunRoundtrip(t *testing.T) {
	s := openTestStore(t)
	runID, err := s.BeginRun(referenceParams())
	require.NoError(t, err)

	dt := 1.0 / 50
	for step := 1; step <= 3; step++ {
		time := float64(step) * dt
		require.NoError(t, s.RecordStep(runID, step, time, 1.0-0.1*float64(step), 0.6-0.05*float64(step)))
	}
	require.NoError(t, s.FinishRun(runID))

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	r := runs[0]
	assert.Equal(t, runID, r.ID)
	assert.Equal(t, referenceParams(), r.Params)
	assert.NotEmpty(t, r.Started)
	assert.NotEmpty(t, r.Finished)
	assert.Equal(t, 3, r.StepCount)
	assert.InDelta(t, 0.7, r.FinalUMax, 1.e-12)

	steps, err := s.Steps(runID)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	for i, st := range steps {
		assert.Equal(t, i+1, st.Step)
		assert.InDelta(t, float64(i+1)*dt, st.Time, 1.e-12)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	p := referenceParams()
	id1, err := s.BeginRun(p)
	require.NoError(t, err)
	p.Title = "second"
	id2, err := s.BeginRun(p)
	require.NoError(t, err)

	runs, err := s.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, id2, runs[0].ID)
	assert.Equal(t, id1, runs[1].ID)
	assert.Empty(t, runs[0].Finished) // Never finished
	assert.Equal(t, 0, runs[0].StepCount)
}

func TestDuplicateStepRejected(t *testing.T) {
	s := openTestStore(t)
	runID, err := s.BeginRun(referenceParams())
	require.NoError(t, err)
	require.NoError(t, s.RecordStep(runID, 1, 0.02, 1, 0.6))
	assert.Error(t, s.RecordStep(runID, 1, 0.02, 1, 0.6))
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	runID, err := s.BeginRun(referenceParams())
	require.NoError(t, err)
	require.NoError(t, s.RecordStep(runID, 1, 0.02, 1, 0.6))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	runs, err := s2.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].StepCount)
}
