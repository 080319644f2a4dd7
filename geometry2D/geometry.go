package geometry2D

import (
	"math"
)

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(geometry []Point) (box *BoundingBox) {
	if len(geometry) == 0 {
		return nil
	}
	box = new(BoundingBox)
	box.XMin[0], box.XMin[1] = geometry[0].X[0], geometry[0].X[1]
	box.XMax[0], box.XMax[1] = geometry[0].X[0], geometry[0].X[1]
	for _, point := range geometry {
		for i := 0; i < 2; i++ {
			if point.X[i] < box.XMin[i] {
				box.XMin[i] = point.X[i]
			}
			if point.X[i] > box.XMax[i] {
				box.XMax[i] = point.X[i]
			}
		}
	}
	return box
}

func NewBoundingBoxFromArrays(X, Y []float64) (box *BoundingBox) {
	if len(X) == 0 {
		return nil
	}
	box = new(BoundingBox)
	box.XMin[0], box.XMax[0] = X[0], X[0]
	box.XMin[1], box.XMax[1] = Y[0], Y[0]
	for i := range X {
		box.XMin[0] = math.Min(box.XMin[0], X[i])
		box.XMax[0] = math.Max(box.XMax[0], X[i])
		box.XMin[1] = math.Min(box.XMin[1], Y[i])
		box.XMax[1] = math.Max(box.XMax[1], Y[i])
	}
	return box
}

func (bb *BoundingBox) Centroid() (centroid Point) {
	return Point{X: [2]float64{
		0.5 * (bb.XMax[0] + bb.XMin[0]),
		0.5 * (bb.XMax[1] + bb.XMin[1]),
	}}
}

func (bb *BoundingBox) Grow(newBB *BoundingBox) {
	for i := 0; i < 2; i++ {
		bb.XMin[i] = math.Min(bb.XMin[i], newBB.XMin[i])
		bb.XMax[i] = math.Max(bb.XMax[i], newBB.XMax[i])
	}
}

func (bb *BoundingBox) PointInside(point Point) (within bool) {
	for ii := 0; ii < 2; ii++ {
		if point.X[ii] > bb.XMax[ii] || point.X[ii] < bb.XMin[ii] {
			return false
		}
	}
	return true
}

// TriangleArea returns the signed area, positive for counterclockwise
// vertex ordering.
func TriangleArea(x1, y1, x2, y2, x3, y3 float64) (area float64) {
	return 0.5 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
}

// Barycentric returns the barycentric coordinates of point (px, py) in
// the triangle (x1,y1)-(x2,y2)-(x3,y3). The triangle must not be
// degenerate.
func Barycentric(x1, y1, x2, y2, x3, y3, px, py float64) (l1, l2, l3 float64) {
	det := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	l1 = ((y2-y3)*(px-x3) + (x3-x2)*(py-y3)) / det
	l2 = ((y3-y1)*(px-x3) + (x1-x3)*(py-y3)) / det
	l3 = 1. - l1 - l2
	return
}

func PointInTri(x1, y1, x2, y2, x3, y3, px, py float64) bool {
	l1, l2, l3 := Barycentric(x1, y1, x2, y2, x3, y3, px, py)
	return l1 >= 0 && l2 >= 0 && l3 >= 0
}

// TriangleAngles returns the three interior angles in radians.
func TriangleAngles(x1, y1, x2, y2, x3, y3 float64) (angles [3]float64) {
	sideAngle := func(ax, ay, bx, by, cx, cy float64) float64 {
		// Angle at vertex a between rays a->b and a->c
		ux, uy := bx-ax, by-ay
		vx, vy := cx-ax, cy-ay
		dot := ux*vx + uy*vy
		nu := math.Hypot(ux, uy)
		nv := math.Hypot(vx, vy)
		return math.Acos(dot / (nu * nv))
	}
	angles[0] = sideAngle(x1, y1, x2, y2, x3, y3)
	angles[1] = sideAngle(x2, y2, x3, y3, x1, y1)
	angles[2] = math.Pi - angles[0] - angles[1]
	return
}
