package geometry2D

import (
	graphics2D "github.com/notargets/avs/geometry"
)

// ToGraphMesh converts vertex coordinate arrays and triangle
// connectivity into the graphics mesh consumed by the plotting layer.
func ToGraphMesh(X, Y []float64, EToV [][3]int) (trisOut graphics2D.TriMesh) {
	pts := make([]graphics2D.Point, len(X))
	for i := range X {
		pts[i].X[0] = float32(X[i])
		pts[i].X[1] = float32(Y[i])
	}
	tris := make([]graphics2D.Triangle, len(EToV))
	for k, verts := range EToV {
		tris[k].Nodes[0] = int32(verts[0])
		tris[k].Nodes[1] = int32(verts[1])
		tris[k].Nodes[2] = int32(verts[2])
	}
	trisOut = graphics2D.TriMesh{
		BaseGeometryClass: graphics2D.BaseGeometryClass{
			Geometry: pts,
		},
		Triangles:  tris,
		Attributes: nil,
	}
	return
}
