package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphstab/pkg/pipeline"
)

// generatorsFlags holds flags for the generators command.
type generatorsFlags struct {
	format string
}

// generatorsCommand creates the generators command.
func (c *CLI) generatorsCommand() *cobra.Command {
	flags := generatorsFlags{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "generators [file]",
		Short: "Print the stabilizer generators of a graph state",
		Long: `Print the N stabilizer generators of the graph state described by an
adjacency matrix. Generator i has X on qubit i and Z on each neighbour of i.

The matrix is read from a .json, .toml or .yaml file, or as JSON from
standard input when no file (or "-") is given.`,
		Example: `  graphstab generators triangle.json
  echo '[[0,1],[1,0]]' | graphstab generators --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerators(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", flags.format, "output format: text, json")

	return cmd
}

func (c *CLI) runGenerators(cmd *cobra.Command, args []string, flags generatorsFlags) error {
	ctx := cmd.Context()
	format := strings.ToLower(flags.format)
	if err := validateOutputFormat(format); err != nil {
		return err
	}

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
	opts.Formats = []string{format}

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	loggerFromContext(ctx).Debug("generators ready", "qubits", res.Stats.Qubits, "cached", res.CacheInfo.GeneratorsHit)
	printRaw(res.Artifacts[format])
	return nil
}
