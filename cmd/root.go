package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/meshsim/meshsim/sim"
	"github.com/meshsim/meshsim/sim/behavior"
	"github.com/meshsim/meshsim/sim/trace"
)

var (
	// CLI flags for batch topology runs
	logLevel     string // Log verbosity level
	topologyFile string // Topology snapshot to load
	maxSteps     int    // Activation cap, 0 = run until converged
	dumpPath     string // Where to write the final snapshot, empty = stdout
	showTrace    bool   // Print a per-node activation summary after the run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "meshsim",
	Short: "Steppable simulator for message-passing node topologies",
}

// runCmd loads a topology file and steps it non-interactively
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a topology and step it until converged",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		top, err := sim.LoadTopologyFile(topologyFile, behavior.Resolve)
		if err != nil {
			logrus.Fatalf("Unable to load topology: %v", err)
		}
		logrus.Infof("Loaded %d nodes, %d behaviors, ready=%v",
			len(top.NodeNames()), len(top.BehaviorNames()), top.Ready())

		tr := trace.New()
		stepper := top.Stepper().WithTrace(tr)

		var steps int
		if maxSteps > 0 {
			steps, err = stepper.RunN(maxSteps)
		} else {
			steps, err = stepper.Run()
		}
		if err != nil {
			logrus.Fatalf("Activation failed after %d steps: %v", steps, err)
		}
		if remaining := top.Ready(); len(remaining) > 0 {
			logrus.Infof("Stopped after %d activations with ready nodes %v", steps, remaining)
		} else {
			logrus.Infof("Converged in %d activations", steps)
		}

		if showTrace {
			summary := trace.Summarize(tr)
			fmt.Printf("activations: %d (reactivations: %d)\n",
				summary.TotalActivations, summary.Reactivations)
			for _, node := range summary.Nodes() {
				fmt.Printf("  %s: %d\n", node, summary.NodeActivations[node])
			}
		}

		if err := writeTopology(top, dumpPath); err != nil {
			logrus.Fatalf("Unable to dump topology: %v", err)
		}
	},
}

// writeTopology dumps the topology snapshot to path, or stdout when path
// is empty.
func writeTopology(top *sim.Topology, path string) error {
	if path == "" {
		data, err := top.Snapshot().EncodeYAML()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}
	return sim.DumpTopologyFile(top, path)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVarP(&topologyFile, "file", "f", "", "Topology snapshot file to load")
	runCmd.Flags().IntVarP(&maxSteps, "steps", "n", 0, "Maximum activations to run (0 = until converged)")
	runCmd.Flags().StringVar(&dumpPath, "dump", "", "Write the final snapshot to this file instead of stdout")
	runCmd.Flags().BoolVar(&showTrace, "trace", false, "Print a per-node activation summary")
	_ = runCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(runCmd)
}
