package solver

import (
	"fmt"

	"github.com/vladimir-ch/iterative"

	"github.com/notargets/gofea/utils"
)

// CG solves the symmetric positive definite system with the conjugate
// gradient method, matrix free over the CSR operator. Iteration counts
// come back through Stats for the progress report.
type CG struct {
	A        utils.CSR
	n        int
	ops      iterative.MatrixOps
	LastIter int
}

func (s *CG) Name() string { return "cg" }

// Factor captures the operator and builds the matvec closure. The CSR
// is never modified, CG only multiplies by it.
func (s *CG) Factor(A utils.CSR) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		panic(fmt.Errorf("operator must be square, have %dx%d", nr, nc))
	}
	s.A = A
	s.n = nr
	s.ops = iterative.MatrixOps{
		MatVec: func(dst, src []float64) {
			s.A.MulVec(utils.NewVector(s.n, dst), utils.NewVector(s.n, src))
		},
	}
}

func (s *CG) Solve(b utils.Vector) (x utils.Vector) {
	if s.n == 0 {
		panic("solver not factored")
	}
	if b.Len() != s.n {
		panic(fmt.Errorf("dimension mismatch: operator is %dx%d, rhs len = %d",
			s.n, s.n, b.Len()))
	}
	// LinearSolve mutates the rhs it is given, hand it a copy
	rhs := make([]float64, s.n)
	copy(rhs, b.DataP)
	res, err := iterative.LinearSolve(s.ops, rhs, &iterative.CG{}, iterative.Settings{})
	if err != nil {
		panic(fmt.Errorf("CG failed to converge: %s", err))
	}
	s.LastIter = res.Stats.Iterations
	x = utils.NewVector(s.n, res.X)
	return
}
