package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/meshsim/meshsim/sim"
	"github.com/meshsim/meshsim/sim/behavior"
)

var exampleOut string // Where to write the example topology, empty = stdout

// exampleCmd writes a small starter topology for `run`: two nodes that
// greet each other over an unbounded duplex connection.
var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write the two-node hello demo topology",
	Run: func(cmd *cobra.Command, args []string) {
		top, err := helloTopology()
		if err != nil {
			logrus.Fatalf("Unable to build example topology: %v", err)
		}
		if err := writeTopology(top, exampleOut); err != nil {
			logrus.Fatalf("Unable to write example topology: %v", err)
		}
	},
}

// helloTopology builds nodes a and b, both bound to the hello behavior.
func helloTopology() (*sim.Topology, error) {
	hello, err := behavior.Resolve("hello", "hello")
	if err != nil {
		return nil, err
	}
	top := sim.NewTopology()
	top.AddBehavior("hello", hello)
	for _, name := range []string{"a", "b"} {
		if _, err := top.AddNode(name, "hello", map[string]any{"initialized": false}); err != nil {
			return nil, fmt.Errorf("adding node %s: %w", name, err)
		}
	}
	if err := top.AddConnection("a", "b", 0); err != nil {
		return nil, err
	}
	return top, nil
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOut, "out", "o", "", "Write the topology to this file instead of stdout")
	rootCmd.AddCommand(exampleCmd)
}
