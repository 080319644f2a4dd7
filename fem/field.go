package fem

import (
	"fmt"
	"sync"

	"github.com/notargets/gofea/utils"
)

// dofValue carries one dof contribution or ghost value between
// partitions. From disambiguates senders so folds can order
// deterministically.
type dofValue struct {
	From, Dof int
	Val       float64
}

// Field is a named dof vector over a Space. Each partition keeps ghost
// mirrors of the dofs it reads but does not own, refreshed by
// SyncGhosts. Reads during assembly go through At so partitioned and
// serial runs exercise the same path.
type Field struct {
	Name string
	V    utils.Vector
	sp   *Space
	// ghosts[p] mirrors remote dof values for partition p. The key set
	// is fixed by the need lists at construction.
	ghosts []map[int]float64
	mb     *utils.MailBox[dofValue]
}

func NewField(sp *Space, name string) (fld *Field) {
	fld = &Field{
		Name:   name,
		V:      utils.NewVector(sp.NDofs),
		sp:     sp,
		ghosts: make([]map[int]float64, sp.NP),
		mb:     utils.NewMailBox[dofValue](sp.NP),
	}
	for p := 0; p < sp.NP; p++ {
		fld.ghosts[p] = make(map[int]float64)
		for q := 0; q < sp.NP; q++ {
			for _, d := range sp.need[p][q] {
				fld.ghosts[p][d] = 0
			}
		}
	}
	return
}

// Space returns the field's discretization.
func (fld *Field) Space() *Space { return fld.sp }

// At reads dof d from the viewpoint of partition p, owned dofs from the
// global vector and remote dofs from the ghost mirror.
func (fld *Field) At(p, d int) float64 {
	if fld.sp.owner[d] == p {
		return fld.V.DataP[d]
	}
	val, registered := fld.ghosts[p][d]
	if !registered {
		panic(fmt.Errorf("partition %d read of unregistered remote dof %d in field %s",
			p, d, fld.Name))
	}
	return val
}

// SyncGhosts refreshes every partition's ghost mirrors from the owning
// partitions. A collective: all partitions run both phases with a
// barrier between delivery and receipt. The single partition case runs
// the same path and exchanges nothing.
func (fld *Field) SyncGhosts() {
	var (
		sp = fld.sp
		wg sync.WaitGroup
	)
	for p := 0; p < sp.NP; p++ {
		wg.Add(1)
		go func(myThread int) {
			defer wg.Done()
			// Serve the dofs each other partition needs from this owner
			for q := 0; q < sp.NP; q++ {
				for _, d := range sp.need[q][myThread] {
					fld.mb.PostMessage(myThread, q,
						dofValue{From: myThread, Dof: d, Val: fld.V.DataP[d]})
				}
			}
			fld.mb.DeliverMyMessages(myThread)
		}(p)
	}
	wg.Wait()
	for p := 0; p < sp.NP; p++ {
		wg.Add(1)
		go func(myThread int) {
			defer wg.Done()
			fld.mb.ReceiveMyMessages(myThread)
			for _, msg := range fld.mb.ReceiveMsgQs[myThread].Cells() {
				fld.ghosts[myThread][msg.Dof] = msg.Val
			}
			fld.mb.ClearMyMessages(myThread)
		}(p)
	}
	wg.Wait()
}

// CopyFrom copies the dof values and ghost mirrors of src, which must
// share the same space. Ghost key sets are static so no allocation
// happens per call.
func (fld *Field) CopyFrom(src *Field) {
	if fld.sp != src.sp {
		panic(fmt.Errorf("fields %s and %s live on different spaces", fld.Name, src.Name))
	}
	copy(fld.V.DataP, src.V.DataP)
	for p := range fld.ghosts {
		for d := range fld.ghosts[p] {
			fld.ghosts[p][d] = src.ghosts[p][d]
		}
	}
}

// SetFrom overwrites the dof values from a raw vector and refreshes the
// ghost mirrors.
func (fld *Field) SetFrom(v utils.Vector) {
	if v.Len() != fld.V.Len() {
		panic(fmt.Errorf("dimension mismatch: field %s has %d dofs, source has %d",
			fld.Name, fld.V.Len(), v.Len()))
	}
	copy(fld.V.DataP, v.DataP)
	fld.SyncGhosts()
}

func (fld *Field) Min() float64 { return fld.V.Min() }
func (fld *Field) Max() float64 { return fld.V.Max() }

// Integral computes the exact integral of the P1 field over the mesh,
// the dot product with the mass row sums.
func (fld *Field) Integral() float64 {
	return fld.sp.W.Dot(fld.V)
}

func (fld *Field) String() string {
	return fmt.Sprintf("field %s: %d dofs, min %.6g, max %.6g",
		fld.Name, fld.V.Len(), fld.Min(), fld.Max())
}
