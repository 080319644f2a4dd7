package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	pts := []Point{
		NewPoint(-2, -2),
		NewPoint(2, -1),
		NewPoint(0, 2),
	}
	bb := NewBoundingBox(pts)
	assert.Equal(t, [2]float64{-2, -2}, bb.XMin)
	assert.Equal(t, [2]float64{2, 2}, bb.XMax)
	assert.Equal(t, NewPoint(0, 0), bb.Centroid())
	assert.True(t, bb.PointInside(NewPoint(1, 1)))
	assert.False(t, bb.PointInside(NewPoint(3, 0)))

	bb2 := NewBoundingBoxFromArrays([]float64{-1, 5}, []float64{0, 1})
	bb.Grow(bb2)
	assert.Equal(t, 5., bb.XMax[0])
	assert.Equal(t, -2., bb.XMin[0])
}

func TestTrianglePredicates(t *testing.T) {
	// Unit right triangle, counterclockwise
	var (
		x1, y1 = 0., 0.
		x2, y2 = 1., 0.
		x3, y3 = 0., 1.
	)
	assert.InDelta(t, 0.5, TriangleArea(x1, y1, x2, y2, x3, y3), 1.e-15)
	assert.InDelta(t, -0.5, TriangleArea(x1, y1, x3, y3, x2, y2), 1.e-15)

	// Barycentric coordinates recover the vertices and the centroid
	l1, l2, l3 := Barycentric(x1, y1, x2, y2, x3, y3, 0, 0)
	assert.InDelta(t, 1., l1, 1.e-15)
	assert.InDelta(t, 0., l2, 1.e-15)
	assert.InDelta(t, 0., l3, 1.e-15)
	l1, l2, l3 = Barycentric(x1, y1, x2, y2, x3, y3, 1./3., 1./3.)
	assert.InDelta(t, 1./3., l1, 1.e-15)
	assert.InDelta(t, 1./3., l2, 1.e-15)
	assert.InDelta(t, 1./3., l3, 1.e-15)

	assert.True(t, PointInTri(x1, y1, x2, y2, x3, y3, 0.25, 0.25))
	assert.False(t, PointInTri(x1, y1, x2, y2, x3, y3, 0.75, 0.75))

	angles := TriangleAngles(x1, y1, x2, y2, x3, y3)
	assert.InDelta(t, math.Pi/2, angles[0], 1.e-12)
	assert.InDelta(t, math.Pi/4, angles[1], 1.e-12)
	assert.InDelta(t, math.Pi/4, angles[2], 1.e-12)
}

func TestIsIllegalEdge(t *testing.T) {
	// Triangle pi-pj-pk with circumcircle through (0,0), (1,0), (0,1)
	var (
		piX, piY = 0., 0.
		pjX, pjY = 1., 0.
		pkX, pkY = 0., 1.
	)
	// The circumcenter is (0.5, 0.5) with radius sqrt(0.5). A point just
	// inside the circle makes the shared edge illegal, a point well
	// outside keeps it legal.
	assert.True(t, IsIllegalEdge(0.9, 0.9, piX, piY, pjX, pjY, pkX, pkY))
	assert.False(t, IsIllegalEdge(2., 2., piX, piY, pjX, pjY, pkX, pkY))
}

func TestToGraphMesh(t *testing.T) {
	X := []float64{0, 1, 0}
	Y := []float64{0, 0, 1}
	EToV := [][3]int{{0, 1, 2}}
	gm := ToGraphMesh(X, Y, EToV)
	assert.Equal(t, 3, len(gm.Geometry))
	assert.Equal(t, 1, len(gm.Triangles))
	assert.Equal(t, [3]int32{0, 1, 2}, gm.Triangles[0].Nodes)
	assert.Equal(t, float32(1), gm.Geometry[1].X[0])
}
