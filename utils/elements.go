package utils

// ElementType identifies the mesh element kinds handled by the 2D
// pipeline. The numeric codes used by SU2 grid files and VTK
// unstructured output are the same table, so both formats map through
// here.

type ElementType int

const (
	Unknown ElementType = iota
	Point
	Line
	Triangle
	Quad
)

// String representation of element types
func (e ElementType) String() string {
	names := []string{
		"Unknown",
		"Point",
		"Line",
		"Triangle",
		"Quad",
	}
	if int(e) < len(names) {
		return names[e]
	}
	return "Invalid"
}

// VTKCode returns the VTK cell type code, which SU2 shares
func (e ElementType) VTKCode() int {
	switch e {
	case Point:
		return 1
	case Line:
		return 3
	case Triangle:
		return 5
	case Quad:
		return 9
	default:
		return 0
	}
}

func ElementTypeFromVTKCode(code int) ElementType {
	switch code {
	case 1:
		return Point
	case 3:
		return Line
	case 5:
		return Triangle
	case 9:
		return Quad
	default:
		return Unknown
	}
}

// GetDimension returns the spatial dimension of the element
func (e ElementType) GetDimension() int {
	switch e {
	case Point:
		return 0
	case Line:
		return 1
	case Triangle, Quad:
		return 2
	default:
		return -1
	}
}

// GetNumNodes returns the number of nodes for each element type
func (e ElementType) GetNumNodes() int {
	switch e {
	case Point:
		return 1
	case Line:
		return 2
	case Triangle:
		return 3
	case Quad:
		return 4
	default:
		return 0
	}
}

// GetElementEdges returns the edges of a 2D element as vertex pairs,
// traversed counterclockwise.
func GetElementEdges(elemType ElementType, vertices []int) [][2]int {
	switch elemType {
	case Triangle:
		v := vertices
		return [][2]int{
			{v[0], v[1]},
			{v[1], v[2]},
			{v[2], v[0]},
		}
	case Quad:
		v := vertices
		return [][2]int{
			{v[0], v[1]},
			{v[1], v[2]},
			{v[2], v[3]},
			{v[3], v[0]},
		}
	default:
		return [][2]int{}
	}
}
