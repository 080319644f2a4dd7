package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofea/utils"
)

// laplacian1D builds the classic tridiagonal SPD test operator.
func laplacian1D(n int) utils.CSR {
	A := utils.NewDOK(n, n)
	for i := 0; i < n; i++ {
		A.Set(i, i, 2)
		if i > 0 {
			A.Set(i, i-1, -1)
		}
		if i < n-1 {
			A.Set(i, i+1, -1)
		}
	}
	return A.ToCSR()
}

func TestNewType(t *testing.T) {
	assert.Equal(t, SOLVER_CG, NewType("CG"))
	assert.Equal(t, SOLVER_Cholesky, NewType("cholesky"))
	assert.Equal(t, SOLVER_Cholesky, NewType("direct"))
	assert.Equal(t, SOLVER_CG, NewType("")) // Default
	assert.Panics(t, func() { NewType("gauss-seidel") })
	assert.Equal(t, "Conjugate Gradient", SOLVER_CG.Print())
}

func TestSolvers(t *testing.T) {
	var (
		n = 32
		A = laplacian1D(n)
	)
	// Manufactured solution: xExact = 1..n, b = A xExact
	xExact := utils.NewVector(n)
	for i := 0; i < n; i++ {
		xExact.DataP[i] = float64(i + 1)
	}
	b := utils.NewVector(n)
	A.MulVec(b, xExact)

	for _, st := range []Type{SOLVER_CG, SOLVER_Cholesky} {
		s := New(st)
		s.Factor(A)
		x := s.Solve(b)
		for i := 0; i < n; i++ {
			assert.InDelta(t, xExact.DataP[i], x.DataP[i], 1.e-8,
				"solver %s, entry %d", s.Name(), i)
		}
	}
}

func TestSolveDoesNotMutateRHS(t *testing.T) {
	var (
		n = 8
		A = laplacian1D(n)
		b = utils.NewVectorConstant(n, 1)
	)
	s := New(SOLVER_CG)
	s.Factor(A)
	_ = s.Solve(b)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1., b.DataP[i])
	}
}

func TestCGMatchesCholesky(t *testing.T) {
	var (
		n  = 50
		A  = laplacian1D(n)
		b  = utils.NewVector(n).Linspace(-1, 1)
		cg = New(SOLVER_CG)
		ch = New(SOLVER_Cholesky)
	)
	cg.Factor(A)
	ch.Factor(A)
	xCG := cg.Solve(b)
	xCH := ch.Solve(b)
	for i := 0; i < n; i++ {
		assert.InDelta(t, xCH.DataP[i], xCG.DataP[i], 1.e-9)
	}
}

func TestUnfactoredPanics(t *testing.T) {
	b := utils.NewVector(4)
	assert.Panics(t, func() { (&CG{}).Solve(b) })
	assert.Panics(t, func() { (&Cholesky{}).Solve(b) })
}
