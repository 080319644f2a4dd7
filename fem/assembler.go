package fem

import (
	"sort"
	"sync"

	"github.com/notargets/gofea/utils"
)

// Assembler builds the global operator and right hand side of the time
// discretized diffusion problem over a Space. The operator assembles
// once, the right hand side reassembles every step from the previous
// field. Right hand side assembly runs one goroutine per partition,
// contributions to rows owned elsewhere travel through the mailbox and
// fold in owner order so results are reproducible for a fixed
// partition count.
type Assembler struct {
	sp *Space
	wf WeakForm
	mb *utils.MailBox[dofValue]
	// Per partition scratch for pre accumulated remote contributions
	remote []map[int]float64
}

func NewAssembler(sp *Space, wf WeakForm) (asm *Assembler) {
	asm = &Assembler{
		sp:     sp,
		wf:     wf,
		mb:     utils.NewMailBox[dofValue](sp.NP),
		remote: make([]map[int]float64, sp.NP),
	}
	for p := 0; p < sp.NP; p++ {
		asm.remote[p] = make(map[int]float64)
	}
	return
}

// AssembleMatrix builds A = MassCoeff M + Dt DiffCoeff K over all
// elements. Runs once per problem, Dirichlet finalization and solver
// factorization follow.
func (asm *Assembler) AssembleMatrix() (A utils.DOK) {
	var (
		sp = asm.sp
	)
	A = utils.NewDOK(sp.NDofs, sp.NDofs)
	for k := 0; k < sp.Msh.K; k++ {
		var (
			x1, y1, x2, y2, x3, y3 = sp.ElementCoords(k)
			area                   = sp.ElementArea(k)
			cx                     = (x1 + x2 + x3) / 3
			cy                     = (y1 + y2 + y3) / 3
			mc                     = asm.wf.MassCoeff(cx, cy)
			dc                     = asm.wf.DiffCoeff(cx, cy)
		)
		Ae := ElementMass(area).Scale(mc).
			Add(ElementStiffness(x1, y1, x2, y2, x3, y3).Scale(asm.wf.Dt * dc))
		verts := sp.Msh.EToV[k]
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				A.Accumulate(verts[i], verts[j], Ae.At(i, j))
			}
		}
	}
	return
}

// AssembleRHS accumulates the linear form L(v) = prev*v into dst. The
// caller zeroes dst, assembly adds into whatever it holds. Element
// loops run per partition, each global row is written only by its
// owning partition.
func (asm *Assembler) AssembleRHS(dst utils.Vector, prev *Field) {
	var (
		sp = asm.sp
		wg sync.WaitGroup
	)
	for p := 0; p < sp.NP; p++ {
		wg.Add(1)
		go func(myThread int) {
			defer wg.Done()
			asm.assemblePartitionRHS(dst, prev, myThread)
		}(p)
	}
	wg.Wait()
	for p := 0; p < sp.NP; p++ {
		wg.Add(1)
		go func(myThread int) {
			defer wg.Done()
			asm.foldRemoteRHS(dst, myThread)
		}(p)
	}
	wg.Wait()
}

// assemblePartitionRHS walks the partition's elements, adds owned row
// contributions directly and pre accumulates remote rows for one
// message per dof per sender.
func (asm *Assembler) assemblePartitionRHS(dst utils.Vector, prev *Field, myThread int) {
	var (
		sp      = asm.sp
		scratch = asm.remote[myThread]
	)
	for d := range scratch {
		delete(scratch, d)
	}
	for _, k := range sp.Cells[myThread] {
		var (
			verts      = sp.Msh.EToV[k]
			area       = sp.ElementArea(k)
			u1         = prev.At(myThread, verts[0])
			u2         = prev.At(myThread, verts[1])
			u3         = prev.At(myThread, verts[2])
			b1, b2, b3 = massApply(area, u1, u2, u3)
		)
		for i, bi := range [3]float64{b1, b2, b3} {
			d := verts[i]
			if sp.owner[d] == myThread {
				dst.DataP[d] += bi
			} else {
				scratch[d] += bi
			}
		}
	}
	// One message per remote dof, sorted so posting order is stable
	dofs := make([]int, 0, len(scratch))
	for d := range scratch {
		dofs = append(dofs, d)
	}
	sort.Ints(dofs)
	for _, d := range dofs {
		asm.mb.PostMessage(myThread, sp.owner[d],
			dofValue{From: myThread, Dof: d, Val: scratch[d]})
	}
	asm.mb.DeliverMyMessages(myThread)
}

// foldRemoteRHS receives this partition's remote contributions and adds
// them in (dof, sender) order.
func (asm *Assembler) foldRemoteRHS(dst utils.Vector, myThread int) {
	asm.mb.ReceiveMyMessages(myThread)
	msgs := asm.mb.ReceiveMsgQs[myThread].Cells()
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].Dof != msgs[j].Dof {
			return msgs[i].Dof < msgs[j].Dof
		}
		return msgs[i].From < msgs[j].From
	})
	for _, msg := range msgs {
		dst.DataP[msg.Dof] += msg.Val
	}
	asm.mb.ClearMyMessages(myThread)
}

// AssembleSource accumulates the source functional L(v) = fn*v into
// dst using the edge midpoint rule. The basis value at an edge
// midpoint is 1/2 on the edge's two vertices and 0 opposite.
func (asm *Assembler) AssembleSource(dst utils.Vector, fn func(x, y float64) float64) {
	var (
		sp = asm.sp
	)
	for k := 0; k < sp.Msh.K; k++ {
		var (
			x1, y1, x2, y2, x3, y3 = sp.ElementCoords(k)
			area                   = sp.ElementArea(k)
			f12                    = fn(0.5*(x1+x2), 0.5*(y1+y2))
			f23                    = fn(0.5*(x2+x3), 0.5*(y2+y3))
			f31                    = fn(0.5*(x3+x1), 0.5*(y3+y1))
			verts                  = sp.Msh.EToV[k]
		)
		w := area / 6 // (area/3) times the 1/2 basis value
		dst.DataP[verts[0]] += w * (f12 + f31)
		dst.DataP[verts[1]] += w * (f12 + f23)
		dst.DataP[verts[2]] += w * (f23 + f31)
	}
}
