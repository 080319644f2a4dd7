package mesh

import (
	"fmt"

	"github.com/notargets/gofea/utils"
)

// Diagonal selects how each grid quad of a generated rectangle mesh is
// split into triangles.
type Diagonal uint8

const (
	// Left runs the diagonal from the lower right to the upper left
	// corner of each quad
	Left Diagonal = iota
	// Right runs the diagonal from the lower left to the upper right
	Right
	// Crossed adds a center vertex and splits each quad four ways
	Crossed
)

func (d Diagonal) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Crossed:
		return "crossed"
	}
	return "unknown"
}

func NewDiagonal(label string) (d Diagonal, err error) {
	switch label {
	case "left", "":
		d = Left
	case "right":
		d = Right
	case "crossed":
		d = Crossed
	default:
		err = fmt.Errorf("unknown diagonal direction [%s], available: left, right, crossed", label)
	}
	return
}

/*
NewRectangleMesh triangulates the axis aligned rectangle
[xmin,xmax] x [ymin,ymax] on a structured nx x ny quad grid.

Grid vertices are numbered x fastest, vid = ix + (nx+1)*iy, so the
range helpers enumerate a full boundary side in one call. Left and
Right produce 2*nx*ny triangles, Crossed adds one center vertex per
quad and produces 4*nx*ny. All triangles are counterclockwise by
construction.
*/
func NewRectangleMesh(xmin, xmax, ymin, ymax float64, nx, ny int, diag Diagonal) (m *Mesh) {
	if nx < 1 || ny < 1 {
		panic(fmt.Errorf("rectangle mesh needs at least one cell per direction, got %d x %d", nx, ny))
	}
	if xmax <= xmin || ymax <= ymin {
		panic(fmt.Errorf("degenerate rectangle [%v,%v] x [%v,%v]", xmin, xmax, ymin, ymax))
	}
	var (
		nxp, nyp = nx + 1, ny + 1
		xs       = utils.NewVector(nxp).Linspace(xmin, xmax)
		ys       = utils.NewVector(nyp).Linspace(ymin, ymax)
	)
	Nv := nxp * nyp
	if diag == Crossed {
		Nv += nx * ny
	}
	VX, VY := make([]float64, Nv), make([]float64, Nv)
	for iy := 0; iy < nyp; iy++ {
		for ix := 0; ix < nxp; ix++ {
			vid := ix + nxp*iy
			VX[vid], VY[vid] = xs.DataP[ix], ys.DataP[iy]
		}
	}

	var EToV [][3]int
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			var (
				v00 = ix + nxp*iy
				v10 = v00 + 1
				v01 = v00 + nxp
				v11 = v01 + 1
			)
			switch diag {
			case Left:
				EToV = append(EToV,
					[3]int{v00, v10, v01},
					[3]int{v10, v11, v01})
			case Right:
				EToV = append(EToV,
					[3]int{v00, v10, v11},
					[3]int{v00, v11, v01})
			case Crossed:
				vc := nxp*nyp + ix + nx*iy
				VX[vc] = 0.5 * (xs.DataP[ix] + xs.DataP[ix+1])
				VY[vc] = 0.5 * (ys.DataP[iy] + ys.DataP[iy+1])
				EToV = append(EToV,
					[3]int{v00, v10, vc},
					[3]int{v10, v11, vc},
					[3]int{v11, v01, vc},
					[3]int{v01, v00, vc})
			}
		}
	}
	m = NewMesh(VX, VY, EToV)
	m.tagRectangleBoundary(nxp, nyp)
	return
}

// tagRectangleBoundary labels the four sides of a generated rectangle.
// The grid vertex numbering matches the range helper's enumeration, so
// each side is one Range call over the (nyp x nxp) vertex grid.
func (m *Mesh) tagRectangleBoundary(nxp, nyp int) {
	var (
		R      = utils.NewR2(nyp, nxp)
		bottom = R.Range(0, ":")
		top    = R.Range("end", ":")
		left   = R.Range(":", 0)
		right  = R.Range(":", "end")
	)
	m.BCEdges = make(map[string][][2]int)
	sideEdges := func(verts utils.Index) (edges [][2]int) {
		for i := 0; i < len(verts)-1; i++ {
			edges = append(edges, [2]int{verts[i], verts[i+1]})
		}
		return
	}
	m.BCEdges["bottom"] = sideEdges(bottom)
	m.BCEdges["top"] = sideEdges(top)
	m.BCEdges["left"] = sideEdges(left)
	m.BCEdges["right"] = sideEdges(right)
}
