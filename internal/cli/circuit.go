package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphstab/pkg/circuit"
	"github.com/matzehuels/graphstab/pkg/pipeline"
)

// circuitFlags holds flags for the circuit command.
type circuitFlags struct {
	qasm     bool
	perEntry bool
}

// circuitCommand creates the circuit command.
func (c *CLI) circuitCommand() *cobra.Command {
	var flags circuitFlags

	cmd := &cobra.Command{
		Use:   "circuit [file]",
		Short: "Print the circuit that prepares a graph state",
		Long: `Print the preparation circuit of a graph state: a Hadamard on every qubit
followed by one controlled-Z per edge.

By default each undirected edge gets a single CZ. --per-entry emits one CZ
for every non-zero matrix entry instead, so a symmetric matrix yields two
CZs per edge, which cancel.`,
		Example: `  graphstab circuit triangle.json
  graphstab circuit triangle.json --qasm > triangle.qasm`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCircuit(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.qasm, "qasm", false, "print OpenQASM 2.0")
	cmd.Flags().BoolVar(&flags.perEntry, "per-entry", false, "emit one CZ per non-zero matrix entry")

	return cmd
}

func (c *CLI) runCircuit(cmd *cobra.Command, args []string, flags circuitFlags) error {
	ctx := cmd.Context()

	g, err := readGraph(cmd, args)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts := c.pipelineOptions()
	opts.Name = g.Name
	opts.Matrix = g.Matrix
	opts.SkipGroup = true
	opts.Formats = []string{pipeline.FormatQASM}
	if flags.perEntry {
		opts.EdgeMode = circuit.EdgesPerEntry
	}

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if flags.qasm {
		printRaw(res.Artifacts[pipeline.FormatQASM])
		return nil
	}
	fmt.Fprint(stdout, res.Circuit)
	return nil
}
