package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gofea/utils"
)

// Parameters obtained from the YAML input file
type InputParametersDiffusion struct {
	Title         string                                `yaml:"Title"`
	FinalTime     float64                               `yaml:"FinalTime"`
	NumSteps      int                                   `yaml:"NumSteps"`
	Alpha         float64                               `yaml:"Alpha"` // Gaussian steepness of the initial condition
	Kappa         float64                               `yaml:"Kappa"` // Diffusivity
	Nx            int                                   `yaml:"Nx"`
	Ny            int                                   `yaml:"Ny"`
	Diagonal      string                                `yaml:"Diagonal"` // left, right or crossed
	SolverType    string                                `yaml:"SolverType"`
	NumPartitions int                                   `yaml:"NumPartitions"`
	BCs           map[string]map[int]map[string]float64 `yaml:"BCs"` // First key is BC name/type, second is marker tag
	OutputDir     string                                `yaml:"OutputDir"`
	SeriesName    string                                `yaml:"SeriesName"`
	AnimationFile string                                `yaml:"AnimationFile"`
	ChartFile     string                                `yaml:"ChartFile"`
	CatalogFile   string                                `yaml:"CatalogFile"`
}

func (ip *InputParametersDiffusion) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	ip.applyDefaults()
	return nil
}

// applyDefaults fills the fields the reference problem pins when the
// input leaves them out, so a minimal file runs the Gaussian hill.
func (ip *InputParametersDiffusion) applyDefaults() {
	if ip.FinalTime == 0 {
		ip.FinalTime = 1.0
	}
	if ip.NumSteps == 0 {
		ip.NumSteps = 50
	}
	if ip.Alpha == 0 {
		ip.Alpha = 5.0
	}
	if ip.Kappa == 0 {
		ip.Kappa = 1.0
	}
	if ip.Nx == 0 {
		ip.Nx = 50
	}
	if ip.Ny == 0 {
		ip.Ny = 50
	}
	if ip.NumPartitions == 0 {
		ip.NumPartitions = 1
	}
	if len(ip.OutputDir) == 0 {
		ip.OutputDir = "output"
	}
	if len(ip.SeriesName) == 0 {
		ip.SeriesName = "diffusion"
	}
}

// Dt returns the fixed time step size.
func (ip *InputParametersDiffusion) Dt() float64 {
	return ip.FinalTime / float64(ip.NumSteps)
}

// BoundaryValue resolves the Dirichlet value from the BCs block. Every
// Dirichlet flavored entry must agree on one value, the whole boundary
// carries a single constraint. An empty block means the default zero.
func (ip *InputParametersDiffusion) BoundaryValue() (value float64, err error) {
	var found bool
	for name, tags := range ip.BCs {
		switch utils.ParseBCName(name) {
		case utils.BCDirichlet, utils.BCIsothermal:
			for tag, params := range tags {
				v, ok := params["Value"]
				if !ok {
					return 0, fmt.Errorf("BCs[%s][%d] is missing a Value parameter", name, tag)
				}
				if found && v != value {
					return 0, fmt.Errorf("conflicting Dirichlet values %g and %g", value, v)
				}
				value, found = v, true
			}
		default:
			return 0, fmt.Errorf("unsupported boundary condition type [%s], only Dirichlet values are supported", name)
		}
	}
	return
}

func (ip *InputParametersDiffusion) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8d\t\t= NumSteps\n", ip.NumSteps)
	fmt.Printf("%8.5f\t\t= Alpha\n", ip.Alpha)
	fmt.Printf("%8.5f\t\t= Kappa\n", ip.Kappa)
	fmt.Printf("[%dx%d]\t\t= Grid\n", ip.Nx, ip.Ny)
	fmt.Printf("[%s]\t\t\t= Diagonal\n", ip.Diagonal)
	fmt.Printf("[%s]\t\t\t= Solver Type\n", ip.SolverType)
	fmt.Printf("[%d]\t\t\t\t= Num Partitions\n", ip.NumPartitions)
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}

// ExampleFile shows the full input surface, printed when the CLI is
// invoked without a parameters file.
const ExampleFile = `
########################################
Title: "Gaussian Hill"
FinalTime: 1.
NumSteps: 50
Alpha: 5.
Kappa: 1.
Nx: 50
Ny: 50
Diagonal: left # Can be "right" or "crossed"
SolverType: cg # Can be "cholesky"
NumPartitions: 1
BCs:
  Dirichlet:
    0:
      Value: 0.
########################################
`
