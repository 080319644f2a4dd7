package mesh

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMesh(t *testing.T) {
	{ // Single quad, left diagonal
		m := NewRectangleMesh(0, 1, 0, 1, 1, 1, Left)
		assert.Equal(t, 4, m.Nv)
		assert.Equal(t, 2, m.K)
		assert.Equal(t, [3]int{0, 1, 2}, m.EToV[0])
		assert.Equal(t, [3]int{1, 3, 2}, m.EToV[1])
		// The shared diagonal is face 1 of element 0 and face 2 of element 1
		assert.Equal(t, [3]int{-1, 1, -1}, m.EToE[0])
		assert.Equal(t, [3]int{-1, 2, -1}, m.EToF[0])
		assert.Equal(t, [3]int{-1, -1, 0}, m.EToE[1])
		assert.Equal(t, [3]int{-1, -1, 1}, m.EToF[1])
		assert.Equal(t, 4, len(m.BoundaryEdges()))
		assert.InDelta(t, 1.0, m.TotalArea(), 1.e-15)
	}
	{ // Single quad, right diagonal
		m := NewRectangleMesh(0, 1, 0, 1, 1, 1, Right)
		assert.Equal(t, [3]int{0, 1, 3}, m.EToV[0])
		assert.Equal(t, [3]int{0, 3, 2}, m.EToV[1])
		assert.InDelta(t, 1.0, m.TotalArea(), 1.e-15)
	}
	{ // Single quad, crossed diagonals
		m := NewRectangleMesh(0, 1, 0, 1, 1, 1, Crossed)
		assert.Equal(t, 5, m.Nv)
		assert.Equal(t, 4, m.K)
		assert.InDelta(t, 0.5, m.VX[4], 1.e-15)
		assert.InDelta(t, 0.5, m.VY[4], 1.e-15)
		assert.Equal(t, 4, len(m.BoundaryEdges()))
		assert.Equal(t, []int{0, 1, 2, 3}, m.BoundaryVertices())
		assert.InDelta(t, 1.0, m.TotalArea(), 1.e-15)
	}
	{ // Problem domain mesh, adjacency reciprocity and boundary set
		m := NewRectangleMesh(-2, 2, -2, 2, 2, 2, Left)
		assert.Equal(t, 9, m.Nv)
		assert.Equal(t, 8, m.K)
		assert.InDelta(t, 0., m.VX[4], 1.e-15) // Grid center
		assert.InDelta(t, 0., m.VY[4], 1.e-15)
		assert.InDelta(t, 16., m.TotalArea(), 1.e-13)
		// Every interior face connection points back at its origin
		for k := 0; k < m.K; k++ {
			for f := 0; f < 3; f++ {
				k2 := m.EToE[k][f]
				if k2 < 0 {
					continue
				}
				f2 := m.EToF[k][f]
				assert.Equal(t, k, m.EToE[k2][f2])
				assert.Equal(t, f, m.EToF[k2][f2])
			}
		}
		// All vertices except the grid center are on the boundary
		assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, m.BoundaryVertices())
		assert.Equal(t, 8, len(m.BoundaryEdges()))
		assert.Equal(t, 4, len(m.BCEdges))
		assert.Equal(t, 2, len(m.BCEdges["bottom"]))
		assert.Equal(t, [2]int{0, 1}, m.BCEdges["bottom"][0])
	}
	{ // Clockwise input is flipped to counterclockwise
		VX := []float64{0, 1, 0}
		VY := []float64{0, 0, 1}
		m := NewMesh(VX, VY, [][3]int{{0, 2, 1}})
		assert.Equal(t, [3]int{0, 1, 2}, m.EToV[0])
		assert.InDelta(t, 0.5, m.TotalArea(), 1.e-15)
	}
}

func TestMeshQuality(t *testing.T) {
	{ // Structured right isoceles triangles
		m := NewRectangleMesh(0, 2, 0, 2, 2, 2, Left)
		q := m.ComputeQuality()
		assert.InDelta(t, 45., q.MinAngle, 1.e-12)
		assert.InDelta(t, 90., q.MaxAngle, 1.e-12)
		assert.InDelta(t, math.Sqrt2, q.AspectRatioMax, 1.e-12)
		assert.InDelta(t, 4., q.TotalArea, 1.e-13)
		assert.InDelta(t, 0.5, q.MinArea, 1.e-15)
		assert.InDelta(t, 0.5, q.MaxArea, 1.e-15)
		// Grid corners are cocircular, never strictly inside
		assert.Equal(t, 0, q.DelaunayViolations)
	}
	{ // A deliberately non Delaunay pair
		VX := []float64{0, 1, 0.5, 0.5}
		VY := []float64{0, 0, 0.1, -0.1}
		EToV := [][3]int{{0, 1, 2}, {0, 3, 1}}
		m := NewMesh(VX, VY, EToV)
		q := m.ComputeQuality()
		assert.Equal(t, 1, q.DelaunayViolations)
	}
}

func TestMeshPartition(t *testing.T) {
	{ // Block partition splits like the parallel worker map
		m := NewRectangleMesh(-2, 2, -2, 2, 2, 2, Left)
		m.PartitionBlock(3)
		assert.Equal(t, 3, m.NP)
		assert.Equal(t, []int{3, 3, 2}, m.PartitionCounts())
		assert.Equal(t, []int{0, 1, 2}, m.PartitionCells(0))
		assert.Equal(t, []int{6, 7}, m.PartitionCells(2))
		assert.True(t, m.CutEdges() > 0)
	}
	{ // Single partition is the identity assignment
		m := NewRectangleMesh(0, 1, 0, 1, 1, 1, Left)
		err := m.Partition(1)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0}, m.EToP)
		assert.Equal(t, 0, m.CutEdges())
	}
}

func TestMeshSU2(t *testing.T) {
	{ // Write then read preserves geometry, connectivity and markers
		m1 := NewRectangleMesh(-2, 2, -2, 2, 2, 2, Crossed)
		fileName := filepath.Join(t.TempDir(), "box.su2")
		WriteSU2(m1, fileName)
		m2 := ReadSU2(fileName, false)
		assert.Equal(t, m1.K, m2.K)
		assert.Equal(t, m1.Nv, m2.Nv)
		assert.Equal(t, m1.EToV, m2.EToV)
		assert.Equal(t, m1.VX, m2.VX)
		assert.Equal(t, m1.VY, m2.VY)
		assert.Equal(t, m1.BCEdges, m2.BCEdges)
		assert.Equal(t, m1.BoundaryVertices(), m2.BoundaryVertices())
	}
}
