package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/notargets/gofea/mesh"
)

// SeriesWriter collects per step VTU snapshots into a ParaView PVD
// collection. Append writes base_NNNN.vtu next to the collection file
// and registers it with its time value. Close writes the collection
// footer and must run even when the run fails early, callers defer it.
type SeriesWriter struct {
	dir, base string
	msh       *mesh.Mesh
	pvd       *os.File
	nSteps    int
	closed    bool
}

func NewSeriesWriter(dir, base string, msh *mesh.Mesh) (sw *SeriesWriter, err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	sw = &SeriesWriter{
		dir:  dir,
		base: base,
		msh:  msh,
	}
	if sw.pvd, err = os.Create(filepath.Join(dir, base+".pvd")); err != nil {
		return nil, fmt.Errorf("creating collection file: %w", err)
	}
	_, err = fmt.Fprintf(sw.pvd,
		"<?xml version=\"1.0\"?>\n<VTKFile type=\"Collection\" version=\"0.1\" byte_order=\"LittleEndian\">\n<Collection>\n")
	return
}

// Append writes the next snapshot. Snapshots are numbered in call
// order, time values need not be uniform.
func (sw *SeriesWriter) Append(time float64, fieldName string, values []float64) (err error) {
	if sw.closed {
		return fmt.Errorf("series %s already closed", sw.base)
	}
	vtuName := fmt.Sprintf("%s_%04d.vtu", sw.base, sw.nSteps)
	file, err := os.Create(filepath.Join(sw.dir, vtuName))
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err = WriteVTU(file, sw.msh, fieldName, values); err != nil {
		file.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err = file.Close(); err != nil {
		return err
	}
	if _, err = fmt.Fprintf(sw.pvd,
		"<DataSet timestep=\"%g\" group=\"\" part=\"0\" file=\"%s\"/>\n",
		time, vtuName); err != nil {
		return err
	}
	sw.nSteps++
	return
}

// NumSnapshots reports how many snapshots Append has written.
func (sw *SeriesWriter) NumSnapshots() int { return sw.nSteps }

// Close finalizes the collection. Idempotent.
func (sw *SeriesWriter) Close() (err error) {
	if sw.closed {
		return
	}
	sw.closed = true
	if _, err = fmt.Fprintf(sw.pvd, "</Collection>\n</VTKFile>\n"); err != nil {
		sw.pvd.Close()
		return
	}
	return sw.pvd.Close()
}
