// Package mesh builds and manages unstructured triangular meshes for the
// diffusion solver. Meshes come from the structured rectangle generator
// or from SU2 grid files, and carry the element adjacency, boundary and
// partition data the assembly and synchronization stages consume.
package mesh

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	graphics2D "github.com/notargets/avs/geometry"

	"github.com/notargets/gofea/geometry2D"
	"github.com/notargets/gofea/utils"
)

type Mesh struct {
	K  int // Number of elements
	Nv int // Number of vertices
	// Geometry
	VX, VY []float64
	// Element to vertex connectivity, counterclockwise
	EToV [][3]int
	// Derived adjacency, -1 marks a physical boundary face
	EToE, EToF [][3]int
	// Boundary edges grouped by marker tag
	BCEdges map[string][][2]int
	// Partition assignment per element and partition count
	EToP []int
	NP   int
}

// NewMesh builds a mesh from raw geometry, normalizes element
// orientation to counterclockwise and derives the face adjacency.
func NewMesh(VX, VY []float64, EToV [][3]int) (m *Mesh) {
	if len(VX) != len(VY) {
		panic(fmt.Errorf("coordinate arrays disagree: len(VX) = %d, len(VY) = %d",
			len(VX), len(VY)))
	}
	m = &Mesh{
		K:       len(EToV),
		Nv:      len(VX),
		VX:      VX,
		VY:      VY,
		EToV:    EToV,
		BCEdges: make(map[string][][2]int),
		EToP:    make([]int, len(EToV)),
		NP:      1,
	}
	m.orient()
	m.Connect()
	return
}

// orient flips elements with negative signed area so that every element
// is counterclockwise.
func (m *Mesh) orient() {
	for k := 0; k < m.K; k++ {
		verts := m.EToV[k]
		area := geometry2D.TriangleArea(
			m.VX[verts[0]], m.VY[verts[0]],
			m.VX[verts[1]], m.VY[verts[1]],
			m.VX[verts[2]], m.VY[verts[2]])
		if area < 0 {
			m.EToV[k][1], m.EToV[k][2] = m.EToV[k][2], m.EToV[k][1]
		}
	}
}

// FaceVertices returns the two vertices of local face f of element k.
// Face f runs from vertex f to vertex (f+1)%3, so faces traverse the
// element counterclockwise.
func (m *Mesh) FaceVertices(k, f int) (v1, v2 int) {
	v1, v2 = m.EToV[k][f], m.EToV[k][(f+1)%3]
	return
}

// Connect builds EToE and EToF through the sparse face to vertex
// incidence product. Each global face row of FToV holds ones at its two
// vertices, so (FToV x FToV^T) counts shared vertices between faces and
// interior face pairs show up as entries equal to 2.
func (m *Mesh) Connect() {
	var (
		NFaces     = 3
		TotalFaces = NFaces * m.K
	)
	SpFToV_Tmp := sparse.NewDOK(TotalFaces, m.Nv)
	var sk int
	for k := 0; k < m.K; k++ {
		for face := 0; face < NFaces; face++ {
			v1, v2 := m.FaceVertices(k, face)
			SpFToV_Tmp.Set(sk, v1, 1)
			SpFToV_Tmp.Set(sk, v2, 1)
			sk++
		}
	}
	SpFToF := sparse.NewCSR(TotalFaces, TotalFaces, nil, nil, nil)
	SpFToV := SpFToV_Tmp.ToCSR()
	SpFToF.Mul(SpFToV, SpFToV.T())
	for i := 0; i < TotalFaces; i++ {
		v := SpFToF.At(i, i)
		SpFToF.Set(i, i, v-2)
	}
	m.EToE = make([][3]int, m.K)
	m.EToF = make([][3]int, m.K)
	for k := 0; k < m.K; k++ {
		m.EToE[k] = [3]int{-1, -1, -1}
		m.EToF[k] = [3]int{-1, -1, -1}
	}
	SpFToF.DoNonZero(func(i, j int, v float64) {
		if i == j || v != 2 {
			return
		}
		e1, f1 := i/NFaces, i%NFaces
		e2, f2 := j/NFaces, j%NFaces
		m.EToE[e1][f1] = e2
		m.EToF[e1][f1] = f2
	})
}

// BoundaryEdges returns the faces with exactly one incident element, as
// counterclockwise vertex pairs in element order.
func (m *Mesh) BoundaryEdges() (edges [][2]int) {
	for k := 0; k < m.K; k++ {
		for face := 0; face < 3; face++ {
			if m.EToE[k][face] == -1 {
				v1, v2 := m.FaceVertices(k, face)
				edges = append(edges, [2]int{v1, v2})
			}
		}
	}
	return
}

// BoundaryVertices returns the sorted, de-duplicated vertex set of the
// physical boundary.
func (m *Mesh) BoundaryVertices() (verts []int) {
	var (
		seen = make(map[int]struct{})
	)
	for _, edge := range m.BoundaryEdges() {
		seen[edge[0]] = struct{}{}
		seen[edge[1]] = struct{}{}
	}
	verts = make([]int, 0, len(seen))
	for v := range seen {
		verts = append(verts, v)
	}
	sort.Ints(verts)
	return
}

// TagBoundary assigns every boundary edge to a single marker, replacing
// any existing tags. Meshes read from files keep their markers, this
// supports generated or untagged grids.
func (m *Mesh) TagBoundary(tag string) {
	m.BCEdges = map[string][][2]int{tag: m.BoundaryEdges()}
}

// Areas returns the signed element areas, all positive after orient.
func (m *Mesh) Areas() (areas []float64) {
	areas = make([]float64, m.K)
	for k := 0; k < m.K; k++ {
		verts := m.EToV[k]
		areas[k] = geometry2D.TriangleArea(
			m.VX[verts[0]], m.VY[verts[0]],
			m.VX[verts[1]], m.VY[verts[1]],
			m.VX[verts[2]], m.VY[verts[2]])
	}
	return
}

// TotalArea sums the element areas.
func (m *Mesh) TotalArea() (sum float64) {
	for _, area := range m.Areas() {
		sum += area
	}
	return
}

// BoundingBox of the vertex set.
func (m *Mesh) BoundingBox() *geometry2D.BoundingBox {
	return geometry2D.NewBoundingBoxFromArrays(m.VX, m.VY)
}

// ToGraphMesh converts to the plotting mesh format.
func (m *Mesh) ToGraphMesh() graphics2D.TriMesh {
	return geometry2D.ToGraphMesh(m.VX, m.VY, m.EToV)
}

// PartitionCells returns the element ids assigned to partition p, in
// ascending order.
func (m *Mesh) PartitionCells(p int) (cells []int) {
	for k := 0; k < m.K; k++ {
		if m.EToP[k] == p {
			cells = append(cells, k)
		}
	}
	return
}

func (m *Mesh) String() string {
	var (
		nBCEdges int
	)
	for _, edges := range m.BCEdges {
		nBCEdges += len(edges)
	}
	return fmt.Sprintf("mesh: %d elements, %d vertices, %d boundary edges, %d markers, %d partitions",
		m.K, m.Nv, len(m.BoundaryEdges()), len(m.BCEdges), m.NP)
}

// PrintStatistics reports the mesh composition.
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Vertices: %d\n", m.Nv)
	fmt.Printf("  Elements: %d (%s)\n", m.K, utils.Triangle.String())
	fmt.Printf("  Boundary edges: %d\n", len(m.BoundaryEdges()))
	for tag, edges := range m.BCEdges {
		fmt.Printf("    marker %s: %d edges\n", tag, len(edges))
	}
	if m.NP > 1 {
		fmt.Printf("  Partitions: %d\n", m.NP)
	}
}
