package mesh

import (
	"fmt"

	metis "github.com/notargets/go-metis"

	"github.com/notargets/gofea/utils"
)

// Partition assigns elements to nparts partitions by k-way partitioning
// of the dual graph, minimizing the edge cut with up to 5% imbalance.
// The dual graph connects elements sharing a face, so the cut count is
// the number of interior faces crossing partitions.
func (m *Mesh) Partition(nparts int) (err error) {
	if nparts < 1 {
		return fmt.Errorf("partition count must be positive, got %d", nparts)
	}
	if nparts == 1 {
		m.EToP = make([]int, m.K)
		m.NP = 1
		return
	}
	xadj, adjncy := m.buildDualGraph()

	opts := make([]int32, metis.NoOptions)
	if err = metis.SetDefaultOptions(opts); err != nil {
		return fmt.Errorf("failed to set METIS options: %w", err)
	}
	opts[metis.OptionObjType] = metis.ObjTypeCut

	ubvec := []float32{1.05}
	part, _, err := metis.PartGraphKwayWeighted(
		xadj, adjncy, nil, nil,
		int32(nparts), nil, ubvec, opts,
	)
	if err != nil {
		return fmt.Errorf("METIS partitioning failed: %w", err)
	}
	m.EToP = []int(utils.NewFromInt32(part))
	m.NP = nparts
	return
}

// PartitionBlock assigns contiguous element ranges to partitions with
// the same split the parallel worker map uses, so element id order and
// partition order coincide. Deterministic and dependency free, the
// fallback when graph partitioning is not wanted.
func (m *Mesh) PartitionBlock(nparts int) {
	if nparts < 1 {
		panic(fmt.Errorf("partition count must be positive, got %d", nparts))
	}
	var (
		pm = utils.NewPartitionMap(nparts, m.K)
	)
	m.EToP = make([]int, m.K)
	for p := 0; p < nparts; p++ {
		kMin, kMax := pm.GetBucketRange(p)
		for k := kMin; k < kMax; k++ {
			m.EToP[k] = p
		}
	}
	m.NP = nparts
}

// buildDualGraph converts the element adjacency to CSR graph format.
func (m *Mesh) buildDualGraph() (xadj, adjncy []int32) {
	xadj = make([]int32, m.K+1)
	adjncy = []int32{}
	for k := 0; k < m.K; k++ {
		for _, neighbor := range m.EToE[k] {
			if neighbor >= 0 && neighbor != k {
				adjncy = append(adjncy, int32(neighbor))
			}
		}
		xadj[k+1] = int32(len(adjncy))
	}
	return
}

// CutEdges counts interior faces whose two elements live on different
// partitions, each face counted once.
func (m *Mesh) CutEdges() (cut int) {
	for k := 0; k < m.K; k++ {
		for _, neighbor := range m.EToE[k] {
			if neighbor > k && m.EToP[k] != m.EToP[neighbor] {
				cut++
			}
		}
	}
	return
}

// PartitionCounts returns the element count per partition.
func (m *Mesh) PartitionCounts() (counts []int) {
	counts = make([]int, m.NP)
	for _, p := range m.EToP {
		counts[p]++
	}
	return
}
