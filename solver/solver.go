// Package solver provides linear solvers for the constrained diffusion
// operator. The operator is factored or captured once, then solved
// against a fresh right hand side every time step.
package solver

import (
	"fmt"
	"strings"

	"github.com/notargets/gofea/utils"
)

// Interface is the per problem solver contract: Factor runs once on the
// finalized operator, Solve runs every step and returns a fresh
// solution vector.
type Interface interface {
	Factor(A utils.CSR)
	Solve(b utils.Vector) (x utils.Vector)
	Name() string
}

type Type uint

const (
	SOLVER_CG Type = iota
	SOLVER_Cholesky
)

var (
	SolverNames = map[string]Type{
		"cg":       SOLVER_CG,
		"cholesky": SOLVER_Cholesky,
		"direct":   SOLVER_Cholesky,
	}
	SolverPrintNames = []string{"Conjugate Gradient", "Cholesky"}
)

func (st Type) Print() (txt string) {
	txt = SolverPrintNames[st]
	return
}

func NewType(label string) (st Type) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if len(label) == 0 {
		return SOLVER_CG
	}
	if st, ok = SolverNames[label]; !ok {
		err = fmt.Errorf("unable to use solver named %s", label)
		panic(err)
	}
	return
}

// New constructs the solver for a type label.
func New(st Type) Interface {
	switch st {
	case SOLVER_Cholesky:
		return &Cholesky{}
	case SOLVER_CG:
		fallthrough
	default:
		return &CG{}
	}
}
