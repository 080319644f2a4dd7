package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	// Construction and DataP aliasing
	{
		v := NewVector(3, []float64{1, 2, 3})
		require.Equal(t, 3, v.Len())
		v.Set(-1, 10)
		assert.Equal(t, 10., v.V.RawVector().Data[2])
		assert.Equal(t, 10., v.DataP[2])
		c := NewVectorConstant(4, 2.5)
		assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, c.DataP)
	}
	// Linspace
	{
		v := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., v.AtVec(0))
		assert.Equal(t, 1., v.AtVec(1))
		v = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., v.AtVec(0))
		assert.Equal(t, 0., v.AtVec(1))
		assert.Equal(t, 1., v.AtVec(2))
	}
	// Chained arithmetic
	{
		v := NewVector(3, []float64{1, 2, 3})
		w := v.Copy().Scale(2).AddScalar(-1)
		assert.Equal(t, []float64{1, 3, 5}, w.DataP)
		assert.Equal(t, []float64{1, 2, 3}, v.DataP)
		w.Add(v).Subtract(v)
		assert.Equal(t, []float64{1, 3, 5}, w.DataP)
		w.ElMul(v)
		assert.Equal(t, []float64{1, 6, 15}, w.DataP)
		w.Zero()
		assert.Equal(t, []float64{0, 0, 0}, w.DataP)
	}
	// Apply and POW compose for r^2 style expressions
	{
		x := NewVector(3, []float64{0, 1, 2})
		y := NewVector(3, []float64{0, 0, 0})
		r2 := x.Copy().POW(2).Add(y.Copy().POW(2))
		u := r2.Copy().Scale(-1).Apply(math.Exp)
		assert.InDeltaSlice(t, []float64{1, math.Exp(-1), math.Exp(-4)}, u.DataP, 1.e-15)
	}
	// Reductions
	{
		v := NewVector(4, []float64{3, -1, 4, 1})
		assert.Equal(t, -1., v.Min())
		assert.Equal(t, 4., v.Max())
		assert.Equal(t, 2, v.ArgMax())
		assert.Equal(t, 7., v.Sum())
		assert.Equal(t, 27., v.Dot(v))
		assert.InDelta(t, math.Sqrt(27.), v.Norm2(), 1.e-15)
	}
	// Indexed access
	{
		v := NewVector(5, []float64{10, 11, 12, 13, 14})
		I := Index{0, 2, 4}
		assert.Equal(t, []float64{10, 12, 14}, v.Subset(I).DataP)
		v.AssignScalar(I, 0)
		assert.Equal(t, []float64{0, 11, 0, 13, 0}, v.DataP)
		v.Assign(Index{1, 3}, NewVector(2, []float64{1, 2}))
		assert.Equal(t, []float64{0, 1, 0, 2, 0}, v.DataP)
	}
	// SetFrom copies values without rebinding storage
	{
		v := NewVector(3)
		w := NewVector(3, []float64{7, 8, 9})
		alias := v.DataP
		v.SetFrom(w)
		assert.Equal(t, []float64{7, 8, 9}, alias)
	}
	// Concat
	{
		v := NewVector(2, []float64{1, 2})
		w := NewVector(3, []float64{3, 4, 5})
		assert.Equal(t, []float64{1, 2, 3, 4, 5}, v.Concat(w).DataP)
	}
	// Find
	{
		v := NewVector(5, []float64{-2, -1, 0, 1, 2})
		assert.Equal(t, Index{3, 4}, v.Find(Greater, 0, false))
		assert.Equal(t, Index{0, 1, 3, 4}, v.Find(GreaterOrEqual, 1, true))
		assert.Equal(t, Index{2}, v.Find(Equal, 0, false))
	}
}
