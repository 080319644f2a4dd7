package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64 // Aliases the backing store of V
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		v,
		v.RawVector().Data,
	}
	return
}

func NewVectorConstant(n int, val float64) (R Vector) {
	R = NewVector(n)
	for i := range R.DataP {
		R.DataP[i] = val
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

// Chainable (extended) methods
func (v Vector) Copy() (R Vector) { // Does not change receiver
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.DataP)
	R = NewVector(v.Len(), data)
	return
}

func (v Vector) Zero() Vector { // Changes receiver
	for i := range v.DataP {
		v.DataP[i] = 0.
	}
	return v
}

func (v Vector) Set(i int, val float64) Vector { // Changes receiver
	v.DataP[lim(i, v.Len())] = val
	return v
}

func (v Vector) Add(a Vector) Vector { // Changes receiver
	for i, val := range a.DataP {
		v.DataP[i] += val
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	for i, val := range a.DataP {
		v.DataP[i] -= val
	}
	return v
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector { // Changes receiver
	for i := range v.DataP {
		v.DataP[i] += a
	}
	return v
}

func (v Vector) ElMul(a Vector) Vector { // Changes receiver
	for i, val := range a.DataP {
		v.DataP[i] *= val
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector { // Changes receiver
	for i, val := range v.DataP {
		v.DataP[i] = POW(val, p)
	}
	return v
}

func (v Vector) Linspace(xmin, xmax float64) Vector { // Changes receiver
	var (
		N = v.Len()
	)
	if N == 1 {
		v.DataP[0] = xmin
		return v
	}
	h := (xmax - xmin) / float64(N-1)
	for i := range v.DataP {
		v.DataP[i] = xmin + float64(i)*h
	}
	v.DataP[N-1] = xmax // Endpoint is exact
	return v
}

func (v Vector) AssignScalar(I Index, val float64) Vector { // Changes receiver
	for _, ind := range I {
		v.DataP[ind] = val
	}
	return v
}

func (v Vector) Assign(I Index, a Vector) Vector { // Changes receiver
	// Values indexed into v are taken sequentially from a
	for i, ind := range I {
		v.DataP[ind] = a.DataP[i]
	}
	return v
}

func (v Vector) SetFrom(a Vector) Vector { // Changes receiver
	copy(v.DataP, a.DataP)
	return v
}

// Non chainable methods

func (v Vector) Min() (min float64) {
	min = v.DataP[0]
	for _, val := range v.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) ArgMax() (iMax int) {
	var (
		max = v.DataP[0]
	)
	for i, val := range v.DataP {
		if val > max {
			max = val
			iMax = i
		}
	}
	return
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.DataP {
		sum += val
	}
	return
}

func (v Vector) Dot(a Vector) (dot float64) {
	for i, val := range v.DataP {
		dot += val * a.DataP[i]
	}
	return
}

func (v Vector) Norm2() (nrm float64) {
	for _, val := range v.DataP {
		nrm += val * val
	}
	nrm = math.Sqrt(nrm)
	return
}

func (v Vector) Subset(I Index) (R Vector) {
	var (
		data = make([]float64, len(I))
	)
	for i, ind := range I {
		data[i] = v.DataP[ind]
	}
	R = NewVector(len(I), data)
	return
}

func (v Vector) Concat(a Vector) (R Vector) {
	var (
		N    = v.Len() + a.Len()
		data = make([]float64, N)
	)
	copy(data, v.DataP)
	copy(data[v.Len():], a.DataP)
	R = NewVector(N, data)
	return
}

func (v Vector) Find(op EvalOp, target float64, abs bool) (I Index) {
	comp := func(val float64) bool {
		if abs {
			val = math.Abs(val)
		}
		switch op {
		case Equal:
			return val == target
		case Less:
			return val < target
		case LessOrEqual:
			return val <= target
		case Greater:
			return val > target
		case GreaterOrEqual:
			return val >= target
		}
		return false
	}
	for i, val := range v.DataP {
		if comp(val) {
			I = append(I, i)
		}
	}
	return
}
