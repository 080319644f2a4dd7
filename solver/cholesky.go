package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofea/utils"
)

// Cholesky factors the constrained operator densely once and
// back-substitutes per step. Direct and deterministic, suited to
// moderate dof counts where the O(n^3) factorization amortizes over
// the run.
type Cholesky struct {
	chol mat.Cholesky
	n    int
}

func (s *Cholesky) Name() string { return "cholesky" }

// Factor expands the sparse operator and factors it. Panics if the
// operator is not symmetric positive definite, which signals a broken
// assembly or boundary elimination.
func (s *Cholesky) Factor(A utils.CSR) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		panic(fmt.Errorf("operator must be square, have %dx%d", nr, nc))
	}
	sym := mat.NewSymDense(nr, nil)
	A.DoNonZero(func(i, j int, v float64) {
		if j >= i {
			sym.SetSym(i, j, v)
		}
	})
	if ok := s.chol.Factorize(sym); !ok {
		panic("operator is not positive definite")
	}
	s.n = nr
}

func (s *Cholesky) Solve(b utils.Vector) (x utils.Vector) {
	if s.n == 0 {
		panic("solver not factored")
	}
	if b.Len() != s.n {
		panic(fmt.Errorf("dimension mismatch: operator is %dx%d, rhs len = %d",
			s.n, s.n, b.Len()))
	}
	x = utils.NewVector(s.n)
	if err := s.chol.SolveVecTo(x.V, b.V); err != nil {
		panic(fmt.Errorf("cholesky solve failed: %s", err))
	}
	return
}
