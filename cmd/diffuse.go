/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gofea/InputParameters"
	"github.com/notargets/gofea/model_problems/Diffusion2D"
)

type ModelDiffusion struct {
	ICFile    string
	MeshFile  string
	Graph     bool
	PlotSteps int
	Quiet     bool
	Delay     time.Duration
}

// diffuseCmd represents the diffuse command
var diffuseCmd = &cobra.Command{
	Use:   "diffuse",
	Short: "Time dependent diffusion of a scalar field, able to read grid files and output solutions",
	Long: `
Solves the heat equation with an implicit Euler finite element scheme,
writing a ParaView time series, an animation and run diagnostics,

gofea diffuse -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		md := &ModelDiffusion{}
		if md.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		if md.MeshFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		md.Graph, _ = cmd.Flags().GetBool("graph")
		md.PlotSteps, _ = cmd.Flags().GetInt("plotSteps")
		md.Quiet, _ = cmd.Flags().GetBool("quiet")
		dr, _ := cmd.Flags().GetInt("delay")
		md.Delay = time.Duration(dr) * time.Millisecond
		ip := processInput(md)
		RunDiffusion(md, ip)
	},
}

func processInput(md *ModelDiffusion) (ip *InputParameters.InputParametersDiffusion) {
	var (
		err error
	)
	if len(md.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", InputParameters.ExampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(md.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersDiffusion{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(diffuseCmd)
	diffuseCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- FinalTime\n\t- NumSteps\n\t- Kappa (diffusivity)")
	diffuseCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 format, overrides the generated rectangle")
	diffuseCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	diffuseCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	diffuseCmd.Flags().IntP("plotSteps", "s", 1, "number of steps before plotting each frame")
	diffuseCmd.Flags().BoolP("quiet", "q", false, "suppress the input parameter echo")
}

func RunDiffusion(md *ModelDiffusion, ip *InputParameters.InputParametersDiffusion) {
	if !md.Quiet {
		ip.Print()
	}
	c := Diffusion2D.NewDiffusion(ip, md.MeshFile, !md.Quiet)
	pm := &Diffusion2D.PlotMeta{
		Plot:            md.Graph,
		Scale:           1.1,
		FrameTime:       md.Delay,
		StepsBeforePlot: md.PlotSteps,
	}
	c.Solve(pm)
}
