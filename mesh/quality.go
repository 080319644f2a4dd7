package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/gofea/geometry2D"
)

// Quality summarizes element shape statistics. Angles are in degrees.
// AspectRatio is the longest to shortest edge length ratio, 1 for an
// equilateral triangle. DelaunayViolations counts interior faces where
// the opposite vertex of the neighbor falls inside the circumcircle.
type Quality struct {
	MinAngle, MaxAngle float64
	MinArea, MaxArea   float64
	TotalArea          float64
	AspectRatioMax     float64
	DelaunayViolations int
}

// ComputeQuality walks every element and interior face.
func (m *Mesh) ComputeQuality() (q Quality) {
	var (
		areas = m.Areas()
	)
	q.MinAngle = math.MaxFloat64
	q.MinArea = math.MaxFloat64
	for k := 0; k < m.K; k++ {
		var (
			verts  = m.EToV[k]
			x1, y1 = m.VX[verts[0]], m.VY[verts[0]]
			x2, y2 = m.VX[verts[1]], m.VY[verts[1]]
			x3, y3 = m.VX[verts[2]], m.VY[verts[2]]
		)
		angles := geometry2D.TriangleAngles(x1, y1, x2, y2, x3, y3)
		for _, a := range angles {
			deg := a * 180 / math.Pi
			q.MinAngle = math.Min(q.MinAngle, deg)
			q.MaxAngle = math.Max(q.MaxAngle, deg)
		}
		edges := [3]float64{
			math.Hypot(x2-x1, y2-y1),
			math.Hypot(x3-x2, y3-y2),
			math.Hypot(x1-x3, y1-y3),
		}
		eMin, eMax := edges[0], edges[0]
		for _, e := range edges[1:] {
			eMin = math.Min(eMin, e)
			eMax = math.Max(eMax, e)
		}
		q.AspectRatioMax = math.Max(q.AspectRatioMax, eMax/eMin)
		q.MinArea = math.Min(q.MinArea, areas[k])
		q.MaxArea = math.Max(q.MaxArea, areas[k])
		q.TotalArea += areas[k]
	}
	q.DelaunayViolations = m.countDelaunayViolations()
	return
}

// countDelaunayViolations applies the in-circle test to each interior
// face once, testing the neighbor's opposite vertex against the
// circumcircle of the face's element.
func (m *Mesh) countDelaunayViolations() (count int) {
	for k := 0; k < m.K; k++ {
		for face := 0; face < 3; face++ {
			k2 := m.EToE[k][face]
			if k2 <= k { // Boundary or already counted from the other side
				continue
			}
			v1, v2 := m.FaceVertices(k, face)
			pr := m.oppositeVertex(k2, v1, v2)
			var (
				verts  = m.EToV[k]
				pi, pj = verts[0], verts[1]
				pk     = verts[2]
			)
			if geometry2D.IsIllegalEdge(
				m.VX[pr], m.VY[pr],
				m.VX[pi], m.VY[pi],
				m.VX[pj], m.VY[pj],
				m.VX[pk], m.VY[pk]) {
				count++
			}
		}
	}
	return
}

// oppositeVertex returns the vertex of element k not on edge (v1,v2).
func (m *Mesh) oppositeVertex(k, v1, v2 int) int {
	for _, v := range m.EToV[k] {
		if v != v1 && v != v2 {
			return v
		}
	}
	panic(fmt.Errorf("element %d does not contain edge (%d,%d)", k, v1, v2))
}

func (q Quality) String() string {
	return fmt.Sprintf(
		"angles [%.2f, %.2f] deg, aspect ratio max %.3f, areas [%.3g, %.3g] sum %.6g, delaunay violations %d",
		q.MinAngle, q.MaxAngle, q.AspectRatioMax, q.MinArea, q.MaxArea,
		q.TotalArea, q.DelaunayViolations)
}
