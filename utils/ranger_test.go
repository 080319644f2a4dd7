package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanger(t *testing.T) {
	var (
		i1, i2 int
	)
	// Dimension parsing
	{
		i1, i2 = ParseDim(":", 10)
		assert.Equal(t, 0, i1)
		assert.Equal(t, 10, i2)
		i1, i2 = ParseDim(":5", 10)
		assert.Equal(t, 0, i1)
		assert.Equal(t, 5, i2)
		i1, i2 = ParseDim("5:5", 10)
		assert.Equal(t, 5, i1)
		assert.Equal(t, 6, i2)
		i1, i2 = ParseDim(4, 10)
		assert.Equal(t, 4, i1)
		assert.Equal(t, 5, i2)
		i1, i2 = ParseDim("2", 10)
		assert.Equal(t, 2, i1)
		assert.Equal(t, 3, i2)
		i1, i2 = ParseDim("end", 10)
		assert.Equal(t, 9, i1)
		assert.Equal(t, 10, i2)
	}
	// R1 covers the loop range
	{
		r := NewR1(4)
		assert.Equal(t, Index{0, 1, 2, 3}, r.Range(":"))
		assert.Equal(t, Index{3}, r.Range("end"))
	}
	// R2 indexing
	{
		my2d := NewR2(3, 4)
		index := my2d.Range(0, 0)
		assert.Equal(t, Index{0}, index)

		index = my2d.Range(0, ":")
		assert.Equal(t, Index{0, 1, 2, 3}, index)

		index = my2d.Range(1, ":")
		assert.Equal(t, Index{4, 5, 6, 7}, index)
		index = my2d.Range("end", ":")
		assert.Equal(t, Index{8, 9, 10, 11}, index)
		index = my2d.Range(":", 0)
		assert.Equal(t, Index{0, 4, 8}, index)
		index = my2d.Range(":", 1)
		assert.Equal(t, Index{1, 5, 9}, index)
		index = my2d.Range(":", "end")
		assert.Equal(t, Index{3, 7, 11}, index)

		my2d = NewR2(2, 4)
		index = my2d.Range(1, 3)
		assert.Equal(t, 7, index[0])
	}
}
