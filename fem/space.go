// Package fem implements a P1 Lagrange finite element discretization of
// scalar diffusion on triangular meshes. The package assembles the
// implicit Euler operator and right hand side, applies Dirichlet
// constraints by symmetric elimination with a saved lifting operator,
// and synchronizes partitioned field data through typed mailboxes.
package fem

import (
	"fmt"
	"sort"

	"github.com/notargets/gofea/geometry2D"
	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/utils"
)

// Space is a P1 Lagrange scalar space, one degree of freedom per mesh
// vertex. Dof ownership for parallel exchange splits the dof index
// range into contiguous blocks, one per partition, independent of the
// element partitioning that drives the work split.
type Space struct {
	Msh     *mesh.Mesh
	NDofs   int
	X, Y    utils.Vector // Dof coordinates
	W       utils.Vector // Nodal integration weights, the mass matrix row sums
	BdyDofs utils.Index
	// Parallel structure
	NP    int
	Cells [][]int         // Elements per partition
	owner []int           // Owning partition per dof
	need  [][]utils.Index // need[p][q] lists dofs p reads but q owns
}

// NewSpace builds the dof layout over the mesh's current partitioning.
// Partition the mesh first, a later repartition requires a new space.
func NewSpace(msh *mesh.Mesh) (sp *Space) {
	var (
		NDofs = msh.Nv
	)
	sp = &Space{
		Msh:     msh,
		NDofs:   NDofs,
		X:       utils.NewVector(NDofs, msh.VX).Copy(),
		Y:       utils.NewVector(NDofs, msh.VY).Copy(),
		BdyDofs: utils.Index(msh.BoundaryVertices()),
		NP:      msh.NP,
	}
	sp.Cells = make([][]int, sp.NP)
	for p := 0; p < sp.NP; p++ {
		sp.Cells[p] = msh.PartitionCells(p)
	}
	sp.buildOwnership()
	sp.buildNeedLists()
	sp.buildWeights()
	return
}

// buildOwnership assigns each dof to a partition by block split of the
// dof index range.
func (sp *Space) buildOwnership() {
	var (
		pm = utils.NewPartitionMap(sp.NP, sp.NDofs)
	)
	sp.owner = make([]int, sp.NDofs)
	for p := 0; p < sp.NP; p++ {
		kMin, kMax := pm.GetBucketRange(p)
		for d := kMin; d < kMax; d++ {
			sp.owner[d] = p
		}
	}
}

// Owner returns the partition owning dof d.
func (sp *Space) Owner(d int) int { return sp.owner[d] }

// buildNeedLists records, per partition pair, the dofs each partition
// reads through its elements but does not own. The lists are sorted so
// exchange traffic is deterministic.
func (sp *Space) buildNeedLists() {
	sp.need = make([][]utils.Index, sp.NP)
	for p := 0; p < sp.NP; p++ {
		var (
			seen = make(map[int]struct{})
		)
		for _, k := range sp.Cells[p] {
			for _, d := range sp.Msh.EToV[k] {
				if sp.owner[d] != p {
					seen[d] = struct{}{}
				}
			}
		}
		sp.need[p] = make([]utils.Index, sp.NP)
		for d := range seen {
			q := sp.owner[d]
			sp.need[p][q] = append(sp.need[p][q], d)
		}
		for q := 0; q < sp.NP; q++ {
			sort.Ints(sp.need[p][q])
		}
	}
}

// buildWeights accumulates the P1 mass matrix row sums, area/3 per
// element vertex, so integrals reduce to a dot product.
func (sp *Space) buildWeights() {
	var (
		areas = sp.Msh.Areas()
	)
	sp.W = utils.NewVector(sp.NDofs)
	for k := 0; k < sp.Msh.K; k++ {
		third := areas[k] / 3
		for _, d := range sp.Msh.EToV[k] {
			sp.W.DataP[d] += third
		}
	}
}

// DofCoords returns the dof coordinate vectors.
func (sp *Space) DofCoords() (X, Y utils.Vector) {
	X, Y = sp.X, sp.Y
	return
}

// ElementCoords returns the vertex coordinates of element k.
func (sp *Space) ElementCoords(k int) (x1, y1, x2, y2, x3, y3 float64) {
	var (
		verts = sp.Msh.EToV[k]
	)
	x1, y1 = sp.X.DataP[verts[0]], sp.Y.DataP[verts[0]]
	x2, y2 = sp.X.DataP[verts[1]], sp.Y.DataP[verts[1]]
	x3, y3 = sp.X.DataP[verts[2]], sp.Y.DataP[verts[2]]
	return
}

// ElementArea returns the signed area of element k, positive for the
// counterclockwise elements the mesh guarantees.
func (sp *Space) ElementArea(k int) float64 {
	x1, y1, x2, y2, x3, y3 := sp.ElementCoords(k)
	return geometry2D.TriangleArea(x1, y1, x2, y2, x3, y3)
}

// Interpolate samples fn at the dof coordinates, the P1 interpolant.
// Ghost mirrors are synchronized before return.
func (sp *Space) Interpolate(name string, fn func(x, y float64) float64) (fld *Field) {
	fld = NewField(sp, name)
	for i := 0; i < sp.NDofs; i++ {
		fld.V.DataP[i] = fn(sp.X.DataP[i], sp.Y.DataP[i])
	}
	fld.SyncGhosts()
	return
}

func (sp *Space) String() string {
	return fmt.Sprintf("P1 space: %d dofs, %d boundary dofs, %d partitions",
		sp.NDofs, len(sp.BdyDofs), sp.NP)
}
