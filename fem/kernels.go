package fem

import (
	"fmt"

	"github.com/notargets/gofea/geometry2D"
	"github.com/notargets/gofea/utils"
)

/*
Closed form element matrices for the linear triangle.

The P1 basis on a triangle with area A has the exact mass matrix

	Me = (A/12) [ 2 1 1; 1 2 1; 1 1 2 ]

and, with the constant basis gradients grad(l_i) = (b_i, c_i)/(2A),
b_i = y_j - y_k and c_i = x_k - x_j taken cyclically, the stiffness

	Ke_ij = A grad(l_i) . grad(l_j) = (b_i b_j + c_i c_j) / (4A)
*/

// ElementMass returns the 3x3 mass matrix for a triangle of area A.
func ElementMass(area float64) (Me utils.Matrix) {
	Me = utils.NewMatrix(3, 3, []float64{
		2, 1, 1,
		1, 2, 1,
		1, 1, 2,
	}).Scale(area / 12)
	return
}

// ElementStiffness returns the 3x3 stiffness matrix for the triangle
// with the given counterclockwise vertex coordinates.
func ElementStiffness(x1, y1, x2, y2, x3, y3 float64) (Ke utils.Matrix) {
	var (
		area = geometry2D.TriangleArea(x1, y1, x2, y2, x3, y3)
		b    = [3]float64{y2 - y3, y3 - y1, y1 - y2}
		c    = [3]float64{x3 - x2, x1 - x3, x2 - x1}
	)
	if area <= 0 {
		panic(fmt.Errorf("degenerate or clockwise element, area = %v", area))
	}
	Ke = utils.NewMatrix(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Ke.Set(i, j, (b[i]*b[j]+c[i]*c[j])/(4*area))
		}
	}
	return
}

// massApply accumulates the mass matrix action on three nodal values
// without forming the matrix, the per step inner loop of the right hand
// side assembly.
func massApply(area, u1, u2, u3 float64) (b1, b2, b3 float64) {
	s := area / 12
	b1 = s * (2*u1 + u2 + u3)
	b2 = s * (u1 + 2*u2 + u3)
	b3 = s * (u1 + u2 + 2*u3)
	return
}

// edgeMidpointQuadrature integrates fn over the triangle with the three
// point edge midpoint rule, exact through quadratics.
func edgeMidpointQuadrature(x1, y1, x2, y2, x3, y3 float64, fn func(x, y float64) float64) float64 {
	var (
		area = geometry2D.TriangleArea(x1, y1, x2, y2, x3, y3)
	)
	return (area / 3) * (fn(0.5*(x1+x2), 0.5*(y1+y2)) +
		fn(0.5*(x2+x3), 0.5*(y2+y3)) +
		fn(0.5*(x3+x1), 0.5*(y3+y1)))
}
