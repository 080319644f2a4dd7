package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.DataP)
	}
	// SliceRows
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		I := NewIndex(2)
		I[0] = 1
		I[1] = 0
		A := M.SliceRows(I)
		assert.Equal(t, NewMatrix(2, 3, []float64{
			4, 5, 6,
			1, 2, 3,
		}), A)
	}
	// SliceCols
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		I := NewIndex(2)
		I[0] = 1
		I[1] = 0
		A := M.SliceCols(I)
		assert.Equal(t, NewMatrix(2, 2, []float64{
			2, 1,
			5, 4,
		}), A)
	}
	// Mul, MulVec
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Mul(M)
		assert.Equal(t, []float64{7, 10, 15, 22}, A.DataP)
		v := NewVector(2, []float64{1, 1})
		b := M.MulVec(v)
		assert.Equal(t, []float64{3, 7}, b.DataP)
	}
	// Chained element ops
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := M.Copy().Scale(2).AddScalar(1)
		assert.Equal(t, []float64{3, 5, 7, 9}, A.DataP)
		assert.Equal(t, []float64{1, 2, 3, 4}, M.DataP) // Copy left the receiver alone
		A.Add(M).Subtract(M)
		assert.Equal(t, []float64{3, 5, 7, 9}, A.DataP)
		A.ElMul(M)
		assert.Equal(t, []float64{3, 10, 21, 36}, A.DataP)
	}
	// Inverse
	{
		M := NewMatrix(2, 2, []float64{
			4, 7,
			2, 6,
		})
		Minv, err := M.Inverse()
		assert.NoError(t, err)
		P := M.Mul(Minv)
		assert.InDeltaSlice(t, []float64{1, 0, 0, 1}, P.DataP, 1.e-12)
	}
	// Col, Row, Min, Max
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{2, 5}, M.Col(1).DataP)
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP)
		assert.Equal(t, []float64{3, 6}, M.Col(-1).DataP)
		assert.Equal(t, 1., M.Min())
		assert.Equal(t, 6., M.Max())
	}
	// IsSymmetric, Eigenvalues
	{
		M := NewMatrix(3, 3, []float64{
			2, 1, 1,
			1, 2, 1,
			1, 1, 2,
		})
		assert.True(t, M.IsSymmetric(0))
		ev := M.Eigenvalues()
		assert.InDeltaSlice(t, []float64{1, 1, 4}, ev, 1.e-12)
		for _, lambda := range ev {
			assert.True(t, lambda > 0)
		}
	}
	// ConditionNumber of the identity is 1
	{
		M := NewMatrix(3, 3)
		for i := 0; i < 3; i++ {
			M.Set(i, i, 1)
		}
		assert.InDelta(t, 1., M.ConditionNumber(), 1.e-12)
	}
	// Read only guard
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
	}
	// DataP aliases the matrix storage
	{
		M := NewMatrix(2, 2)
		M.Set(1, 1, math.Pi)
		assert.Equal(t, math.Pi, M.DataP[3])
	}
}
