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

	"github.com/spf13/cobra"

	"github.com/notargets/gofea/mesh"
)

// meshCmd represents the mesh command
var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate, check and partition triangular meshes",
	Long: `
Mesh utilities for the diffusion solver: generate a structured
rectangle triangulation in SU2 format, report quality statistics for
an existing grid, or partition it and report the balance and cut`,
}

var meshGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a rectangle mesh and write it in SU2 format",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			out, _      = cmd.Flags().GetString("out")
			nx, _       = cmd.Flags().GetInt("nx")
			ny, _       = cmd.Flags().GetInt("ny")
			diagonal, _ = cmd.Flags().GetString("diagonal")
			xmin, _     = cmd.Flags().GetFloat64("xmin")
			xmax, _     = cmd.Flags().GetFloat64("xmax")
			ymin, _     = cmd.Flags().GetFloat64("ymin")
			ymax, _     = cmd.Flags().GetFloat64("ymax")
		)
		diag, err := mesh.NewDiagonal(diagonal)
		if err != nil {
			panic(err)
		}
		m := mesh.NewRectangleMesh(xmin, xmax, ymin, ymax, nx, ny, diag)
		m.PrintStatistics()
		mesh.WriteSU2(m, out)
		fmt.Printf("Wrote %s\n", out)
	},
}

var meshCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report quality statistics for an SU2 grid",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			file, _ = cmd.Flags().GetString("gridFile")
		)
		if len(file) == 0 {
			panic(fmt.Errorf("must supply a grid file (-F, --gridFile) in SU2 format"))
		}
		m := mesh.ReadSU2(file, true)
		m.PrintStatistics()
		q := m.ComputeQuality()
		fmt.Printf("Quality: %s\n", q.String())
	},
}

var meshPartitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Partition an SU2 grid and report balance and edge cut",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			file, _   = cmd.Flags().GetString("gridFile")
			nparts, _ = cmd.Flags().GetInt("nparts")
			block, _  = cmd.Flags().GetBool("block")
		)
		if len(file) == 0 {
			panic(fmt.Errorf("must supply a grid file (-F, --gridFile) in SU2 format"))
		}
		m := mesh.ReadSU2(file, true)
		if block {
			m.PartitionBlock(nparts)
		} else if err := m.Partition(nparts); err != nil {
			panic(err)
		}
		for p, count := range m.PartitionCounts() {
			fmt.Printf("  partition %d: %d elements\n", p, count)
		}
		fmt.Printf("Cut edges: %d of %d elements\n", m.CutEdges(), m.K)
	},
}

func init() {
	rootCmd.AddCommand(meshCmd)
	meshCmd.AddCommand(meshGenCmd, meshCheckCmd, meshPartitionCmd)

	meshGenCmd.Flags().StringP("out", "o", "rectangle.su2", "output file name")
	meshGenCmd.Flags().Int("nx", 50, "number of cells in x")
	meshGenCmd.Flags().Int("ny", 50, "number of cells in y")
	meshGenCmd.Flags().String("diagonal", "left", "quad split direction: left, right or crossed")
	meshGenCmd.Flags().Float64("xmin", -2, "domain lower x bound")
	meshGenCmd.Flags().Float64("xmax", 2, "domain upper x bound")
	meshGenCmd.Flags().Float64("ymin", -2, "domain lower y bound")
	meshGenCmd.Flags().Float64("ymax", 2, "domain upper y bound")

	meshCheckCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 format")

	meshPartitionCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 format")
	meshPartitionCmd.Flags().IntP("nparts", "n", 2, "number of partitions")
	meshPartitionCmd.Flags().Bool("block", false, "use deterministic block partitioning instead of METIS")
}
