package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/notargets/gofea/utils"
)

// SU2 ASCII grid format, from https://su2code.github.io/docs_v7/Mesh-File/
// The element type codes are the VTK cell codes, shared with the
// unstructured output writer.

// ReadSU2 loads a 2D triangular grid with its boundary markers. Grids
// with no markers get the whole boundary tagged "wall".
func ReadSU2(filename string, verbose bool) (m *Mesh) {
	var (
		file   *os.File
		err    error
		reader *bufio.Reader
	)
	if verbose {
		fmt.Printf("Reading SU2 file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	reader = bufio.NewReader(file)

	dimensionality := readNumber(reader)
	if dimensionality != 2 {
		panic(fmt.Errorf("unable to handle %d dimensional data, only 2D grids are supported", dimensionality))
	}
	EToV := readElements(reader)
	VX, VY := readVertices(reader)
	m = NewMesh(VX, VY, EToV)
	m.BCEdges = readMarkers(reader)
	if len(m.BCEdges) == 0 {
		m.TagBoundary("wall")
	}
	if verbose {
		fmt.Printf("%s\n", m.String())
	}
	return
}

func readElements(reader *bufio.Reader) (EToV [][3]int) {
	var (
		n          int
		nType      int
		v1, v2, v3 int
		err        error
	)
	K := readNumber(reader)
	EToV = make([][3]int, K)
	for k := 0; k < K; k++ {
		line := getLine(reader)
		if n, err = fmt.Sscanf(line, "%d %d %d %d", &nType, &v1, &v2, &v3); err != nil {
			panic(err)
		}
		if n != 4 {
			panic("unable to read vertices")
		}
		if utils.ElementTypeFromVTKCode(nType) != utils.Triangle {
			panic(fmt.Errorf("unable to deal with element type code %d, only triangles are supported", nType))
		}
		EToV[k] = [3]int{v1, v2, v3}
	}
	return
}

func readVertices(reader *bufio.Reader) (VX, VY []float64) {
	var (
		n    int
		x, y float64
		err  error
	)
	Nv := readNumber(reader)
	VX, VY = make([]float64, Nv), make([]float64, Nv)
	for i := 0; i < Nv; i++ {
		line := getLine(reader)
		if n, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
			panic(err)
		}
		if n != 2 {
			panic("unable to read coordinates")
		}
		VX[i], VY[i] = x, y
	}
	return
}

func readMarkers(reader *bufio.Reader) (BCEdges map[string][][2]int) {
	var (
		nType  int
		v1, v2 int
		err    error
	)
	NMarkers := readNumber(reader)
	BCEdges = make(map[string][][2]int, NMarkers)
	for n := 0; n < NMarkers; n++ {
		label := readLabel(reader)
		nEdges := readNumber(reader)
		edges := make([][2]int, nEdges)
		for i := 0; i < nEdges; i++ {
			line := getLine(reader)
			if _, err = fmt.Sscanf(line, "%d %d %d", &nType, &v1, &v2); err != nil {
				panic(err)
			}
			if utils.ElementTypeFromVTKCode(nType) != utils.Line {
				panic("markers should only contain line elements in 2D")
			}
			edges[i] = [2]int{v1, v2}
		}
		// Duplicate tags append to a common slice
		BCEdges[label] = append(BCEdges[label], edges...)
	}
	return
}

// WriteSU2 persists the mesh in the same ASCII layout ReadSU2 consumes,
// markers in sorted tag order so output is deterministic.
func WriteSU2(m *Mesh, filename string) {
	var (
		file *os.File
		err  error
	)
	if file, err = os.Create(filename); err != nil {
		panic(fmt.Errorf("unable to create file %s\n %s", filename, err))
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	defer writer.Flush()

	fmt.Fprintf(writer, "NDIME= 2\n")
	fmt.Fprintf(writer, "NELEM= %d\n", m.K)
	triCode := utils.Triangle.VTKCode()
	for k := 0; k < m.K; k++ {
		fmt.Fprintf(writer, "%d %d %d %d\n", triCode,
			m.EToV[k][0], m.EToV[k][1], m.EToV[k][2])
	}
	fmt.Fprintf(writer, "NPOIN= %d\n", m.Nv)
	for i := 0; i < m.Nv; i++ {
		fmt.Fprintf(writer, "%v %v\n", m.VX[i], m.VY[i])
	}
	tags := make([]string, 0, len(m.BCEdges))
	for tag := range m.BCEdges {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	fmt.Fprintf(writer, "NMARK= %d\n", len(tags))
	lineCode := utils.Line.VTKCode()
	for _, tag := range tags {
		fmt.Fprintf(writer, "MARKER_TAG= %s\n", tag)
		fmt.Fprintf(writer, "MARKER_ELEMS= %d\n", len(m.BCEdges[tag]))
		for _, edge := range m.BCEdges[tag] {
			fmt.Fprintf(writer, "%d %d %d\n", lineCode, edge[0], edge[1])
		}
	}
}

func getToken(reader *bufio.Reader) (token string) {
	var (
		line string
		err  error
	)
	line = getLineNoComments(reader)
	ind := strings.Index(line, "=")
	if ind < 0 {
		err = fmt.Errorf("badly formed input line [%s], should have an =", line)
		panic(err)
	}
	token = line[ind+1:]
	return
}

func readLabel(reader *bufio.Reader) (label string) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%s", &label); err != nil {
		err = fmt.Errorf("unable to read label from token: [%s]", token)
		panic(err)
	}
	label = strings.Trim(label, " ")
	return
}

func readNumber(reader *bufio.Reader) (num int) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
		panic(err)
	}
	return
}

func getLineNoComments(reader *bufio.Reader) (line string) {
	for {
		line = strings.Trim(getLine(reader), " ")
		ind := strings.Index(line, "%")
		if ind < 0 || ind != 0 {
			return
		}
	}
}

func getLine(reader *bufio.Reader) (line string) {
	var (
		err error
	)
	line, err = reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			err = fmt.Errorf("early end of file")
		}
		panic(err)
	}
	line = line[:len(line)-1] // Strip away the newline
	return
}
