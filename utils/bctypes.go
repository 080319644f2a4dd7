package utils

import "strings"

// BCType represents boundary condition types for scalar diffusion problems
type BCType uint16

const (
	// BCNone indicates no boundary condition (interior face)
	BCNone BCType = iota

	// Mathematical boundary conditions
	BCDirichlet // Fixed value
	BCNeumann   // Fixed gradient/flux

	// Thermal aliases of the mathematical conditions
	BCIsothermal // Fixed temperature
	BCAdiabatic  // No heat flux

	// Parallel/domain decomposition
	BCPartitionBoundary // Boundary between parallel partitions
)

// String returns the string representation of a BCType
func (bc BCType) String() string {
	names := map[BCType]string{
		BCNone:              "None",
		BCDirichlet:         "Dirichlet",
		BCNeumann:           "Neumann",
		BCIsothermal:        "Isothermal",
		BCAdiabatic:         "Adiabatic",
		BCPartitionBoundary: "PartitionBoundary",
	}
	if name, ok := names[bc]; ok {
		return name
	}
	return "Unknown"
}

// BCNameMap provides a mapping from common boundary condition names to BCType.
// Keys are lowercase for case-insensitive matching.
var BCNameMap = map[string]BCType{
	"dirichlet":  BCDirichlet,
	"fixed":      BCDirichlet,
	"isothermal": BCIsothermal,

	"neumann":   BCNeumann,
	"flux":      BCNeumann,
	"adiabatic": BCAdiabatic,

	"none":     BCNone,
	"internal": BCNone,
}

// ParseBCName converts a boundary condition name string to BCType.
// The matching is case-insensitive and trims whitespace. Unknown names
// default to Dirichlet, the safest condition for a bounded scalar field.
func ParseBCName(name string) BCType {
	lowerName := strings.ToLower(strings.TrimSpace(name))

	if bcType, ok := BCNameMap[lowerName]; ok {
		return bcType
	}
	return BCDirichlet
}
