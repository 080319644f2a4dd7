package fem

import (
	"fmt"

	"github.com/notargets/gofea/utils"
)

// DirichletBC pins a set of dofs to a prescribed value by symmetric
// elimination. Finalize runs once on the assembled operator: it saves
// the constrained columns as the lifting operator, zeroes the
// constrained rows and columns and sets unit diagonals, preserving
// symmetry and positive definiteness. ApplyLifting corrects each
// step's right hand side with the saved columns, so the per step cost
// is one sparse product regardless of the boundary value.
type DirichletBC struct {
	Dofs  utils.Index
	Value float64
	isBdy []bool
	cidx  map[int]int // Dof to lifting column
	lift  utils.CSR
	g     utils.Vector // Prescribed values per constrained dof
	tmp   utils.Vector
	final bool
}

// NewConstantBC constrains the space's whole physical boundary to one
// value.
func NewConstantBC(sp *Space, value float64) *DirichletBC {
	return NewDirichletBC(sp.BdyDofs, sp.NDofs, value)
}

// NewDirichletBC constrains an explicit dof set.
func NewDirichletBC(dofs utils.Index, nDofs int, value float64) (bc *DirichletBC) {
	bc = &DirichletBC{
		Dofs:  dofs,
		Value: value,
		isBdy: make([]bool, nDofs),
		cidx:  make(map[int]int, len(dofs)),
		g:     utils.NewVectorConstant(len(dofs), value),
		tmp:   utils.NewVector(nDofs),
	}
	for i, d := range dofs {
		if d < 0 || d >= nDofs {
			panic(fmt.Errorf("constrained dof %d outside [0,%d)", d, nDofs))
		}
		bc.isBdy[d] = true
		bc.cidx[d] = i
	}
	return
}

// IsConstrained reports whether dof d carries the boundary condition.
func (bc *DirichletBC) IsConstrained(d int) bool { return bc.isBdy[d] }

// Finalize bakes the constraint into the assembled operator. Must run
// exactly once, before the solver factors the matrix.
func (bc *DirichletBC) Finalize(A utils.DOK) {
	if bc.final {
		panic("boundary condition already finalized, the lifting columns are gone from the operator")
	}
	var (
		nr, _   = A.Dims()
		liftDOK = utils.NewDOK(nr, len(bc.Dofs))
		zeros   [][2]int
	)
	if nr != len(bc.isBdy) {
		panic(fmt.Errorf("operator is %dx%d, boundary condition built for %d dofs",
			nr, nr, len(bc.isBdy)))
	}
	A.DoNonZero(func(i, j int, v float64) {
		ci, cj := bc.isBdy[i], bc.isBdy[j]
		if cj && !ci {
			liftDOK.Set(i, bc.cidx[j], v)
		}
		if ci || cj {
			zeros = append(zeros, [2]int{i, j})
		}
	})
	for _, z := range zeros {
		A.Set(z[0], z[1], 0)
	}
	for _, d := range bc.Dofs {
		A.Set(d, d, 1)
	}
	bc.lift = liftDOK.ToCSR()
	bc.final = true
}

// ApplyLifting corrects the right hand side for the constraint:
// b -= Lift*g on the unconstrained rows, then b = g on the constrained
// rows. The correction runs even when g is identically zero.
func (bc *DirichletBC) ApplyLifting(b utils.Vector) {
	if !bc.final {
		panic("boundary condition not finalized, no lifting columns saved")
	}
	bc.lift.MulVec(bc.tmp, bc.g)
	b.Subtract(bc.tmp)
	for _, d := range bc.Dofs {
		b.DataP[d] = bc.Value
	}
}
