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

	"github.com/notargets/gofea/catalog"
)

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List the run catalog",
	Long: `
Lists the solver runs recorded in the SQLite catalog with their
parameters and final diagnostics. With --run the per step decay
history of one run is printed instead`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			db, _    = cmd.Flags().GetString("db")
			runID, _ = cmd.Flags().GetInt64("run")
		)
		s, err := catalog.Open(db)
		if err != nil {
			panic(err)
		}
		defer s.Close()
		if runID > 0 {
			printSteps(s, runID)
			return
		}
		printRuns(s)
	},
}

func printRuns(s *catalog.Store) {
	runs, err := s.ListRuns()
	if err != nil {
		panic(err)
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return
	}
	fmt.Printf("%4s  %-20s  %-20s  %6s  %8s  %10s  %12s\n",
		"ID", "Title", "Started", "Grid", "Solver", "Steps", "Final Max")
	for _, r := range runs {
		fmt.Printf("%4d  %-20s  %-20s  %3dx%-3d  %8s  %10d  %12.4e\n",
			r.ID, r.Params.Title, r.Started,
			r.Params.Nx, r.Params.Ny, r.Params.Solver,
			r.StepCount, r.FinalUMax)
	}
}

func printSteps(s *catalog.Store, runID int64) {
	steps, err := s.Steps(runID)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%8s%10s%12s%12s\n", "Step", "Time", "Max(u)", "Mass")
	for _, st := range steps {
		fmt.Printf("%8d%10.5f%12.4e%12.4e\n", st.Step, st.Time, st.UMax, st.Mass)
	}
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.Flags().String("db", "runs.db", "path to the run catalog database")
	runsCmd.Flags().Int64("run", 0, "print the step history of one run id")
}
