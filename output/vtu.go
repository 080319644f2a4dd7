// Package output persists simulation results: VTK unstructured
// snapshots collected into a ParaView time series, an MJPEG animation
// of the evolving field, and a PNG decay chart of the run diagnostics.
package output

import (
	"fmt"
	"io"

	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/utils"
)

// WriteVTU writes one ASCII VTK UnstructuredGrid snapshot: the mesh
// points at z=0, triangle connectivity, and one scalar point data
// array. Coordinates carry full double precision so snapshots diff
// cleanly across runs.
func WriteVTU(w io.Writer, m *mesh.Mesh, fieldName string, values []float64) (err error) {
	if len(values) != m.Nv {
		return fmt.Errorf("field %s has %d values, mesh has %d vertices",
			fieldName, len(values), m.Nv)
	}
	pf := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}
	pf("<?xml version=\"1.0\"?>\n")
	pf("<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n")
	pf("<UnstructuredGrid>\n")
	pf("<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", m.Nv, m.K)

	pf("<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for i := 0; i < m.Nv; i++ {
		pf("%23.15e %23.15e %23.15e ", m.VX[i], m.VY[i], 0.)
	}
	pf("\n</DataArray>\n</Points>\n")

	pf("<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for k := 0; k < m.K; k++ {
		pf("%d %d %d ", m.EToV[k][0], m.EToV[k][1], m.EToV[k][2])
	}
	pf("\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for k := 0; k < m.K; k++ {
		pf("%d ", 3*(k+1))
	}
	pf("\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	triCode := utils.Triangle.VTKCode()
	for k := 0; k < m.K; k++ {
		pf("%d ", triCode)
	}
	pf("\n</DataArray>\n</Cells>\n")

	pf("<PointData Scalars=\"%s\">\n", fieldName)
	pf("<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", fieldName)
	for i := 0; i < m.Nv; i++ {
		pf("%23.15e ", values[i])
	}
	pf("\n</DataArray>\n</PointData>\n")

	pf("</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	return
}
