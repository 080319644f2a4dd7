package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/utils"
)

func TestSpace(t *testing.T) {
	{ // Dof layout and integration weights on the problem domain shape
		msh := mesh.NewRectangleMesh(-2, 2, -2, 2, 2, 2, mesh.Left)
		sp := NewSpace(msh)
		assert.Equal(t, 9, sp.NDofs)
		assert.Equal(t, utils.Index{0, 1, 2, 3, 5, 6, 7, 8}, sp.BdyDofs)
		// Weight row sums reproduce element areas, their total is the
		// domain area
		assert.InDelta(t, 16., sp.W.Sum(), 1.e-13)
		// The center vertex belongs to 6 of the 8 elements of area 2
		assert.InDelta(t, 4., sp.W.DataP[4], 1.e-13)
		// A corner belongs to exactly one element
		assert.InDelta(t, 2./3., sp.W.DataP[0], 1.e-14)
	}
	{ // P1 interpolation is exact for linear functions
		msh := mesh.NewRectangleMesh(-2, 2, -2, 2, 4, 4, mesh.Left)
		sp := NewSpace(msh)
		fld := sp.Interpolate("linear", func(x, y float64) float64 { return x + y })
		assert.InDelta(t, -4., fld.Min(), 1.e-14)
		assert.InDelta(t, 4., fld.Max(), 1.e-14)
		// An odd integrand over the symmetric domain integrates to zero
		assert.InDelta(t, 0., fld.Integral(), 1.e-12)
		one := sp.Interpolate("one", func(x, y float64) float64 { return 1 })
		assert.InDelta(t, 16., one.Integral(), 1.e-12)
	}
	{ // Single partition owns everything and needs nothing
		msh := mesh.NewRectangleMesh(0, 1, 0, 1, 2, 2, mesh.Left)
		sp := NewSpace(msh)
		assert.Equal(t, 1, sp.NP)
		for d := 0; d < sp.NDofs; d++ {
			assert.Equal(t, 0, sp.Owner(d))
		}
		assert.Equal(t, 0, len(sp.need[0][0]))
	}
}

func TestFieldSync(t *testing.T) {
	var (
		fn = func(x, y float64) float64 { return 3*x - 2*y + 0.5 }
	)
	{ // Ghost mirrors agree with owner values after synchronization
		msh := mesh.NewRectangleMesh(-2, 2, -2, 2, 2, 2, mesh.Left)
		msh.PartitionBlock(3)
		sp := NewSpace(msh)
		assert.Equal(t, 3, sp.NP)
		fld := sp.Interpolate("u", fn)
		for p := 0; p < sp.NP; p++ {
			for _, k := range sp.Cells[p] {
				for _, d := range sp.Msh.EToV[k] {
					assert.Equal(t, fld.V.DataP[d], fld.At(p, d))
				}
			}
		}
	}
	{ // Mirrors follow the owner after a value change and resync
		msh := mesh.NewRectangleMesh(-2, 2, -2, 2, 2, 2, mesh.Left)
		msh.PartitionBlock(2)
		sp := NewSpace(msh)
		fld := sp.Interpolate("u", fn)
		fld.V.DataP[4] = 42 // Interior dof read by both partitions
		fld.SyncGhosts()
		for p := 0; p < sp.NP; p++ {
			for _, k := range sp.Cells[p] {
				for _, d := range sp.Msh.EToV[k] {
					assert.Equal(t, fld.V.DataP[d], fld.At(p, d))
				}
			}
		}
	}
	{ // CopyFrom carries ghost mirrors, no resync needed
		msh := mesh.NewRectangleMesh(-2, 2, -2, 2, 2, 2, mesh.Left)
		msh.PartitionBlock(3)
		sp := NewSpace(msh)
		src := sp.Interpolate("src", fn)
		dst := NewField(sp, "dst")
		dst.CopyFrom(src)
		for p := 0; p < sp.NP; p++ {
			for _, k := range sp.Cells[p] {
				for _, d := range sp.Msh.EToV[k] {
					assert.Equal(t, src.At(p, d), dst.At(p, d))
				}
			}
		}
	}
	{ // Reading an unregistered remote dof is a hard error
		msh := mesh.NewRectangleMesh(-2, 2, -2, 2, 2, 2, mesh.Left)
		msh.PartitionBlock(3)
		sp := NewSpace(msh)
		fld := sp.Interpolate("u", fn)
		assert.Panics(t, func() {
			// Partition 2 owns dofs 6..8 and its cells never touch dof 0
			fld.At(2, 0)
		})
	}
}
