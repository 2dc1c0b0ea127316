package cli

import (
	"fmt"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphstab/pkg/errors"
	"github.com/matzehuels/graphstab/pkg/pipeline"
	"github.com/matzehuels/graphstab/pkg/stabilizer"
)

// formatTable is a CLI-only group format rendered with lipgloss/table.
const formatTable = "table"

// groupFlags holds flags for the group command.
type groupFlags struct {
	format      string
	workers     int
	maxQubits   int
	verify      bool
	interactive bool
}

// groupCommand creates the group command.
func (c *CLI) groupCommand() *cobra.Command {
	flags := groupFlags{
		format:  pipeline.FormatText,
		workers: runtime.GOMAXPROCS(0),
	}

	cmd := &cobra.Command{
		Use:   "group [file]",
		Short: "Enumerate the stabilizer group of a graph state",
		Long: `Enumerate all 2^N elements of the stabilizer group generated by the graph
state's generators, sorted by Pauli string and then phase.

Enumeration runs on --workers goroutines and refuses graphs with more than
--max-qubits vertices. Groups of up to 16 qubits are cached.`,
		Example: `  graphstab group triangle.json
  graphstab group ring.yaml --format table
  graphstab group big.toml --workers 16 --max-qubits 24 --verify
  graphstab group triangle.json --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGroup(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", flags.format, "output format: text, json, table")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", flags.workers, "goroutines used for enumeration")
	cmd.Flags().IntVar(&flags.maxQubits, "max-qubits", pipeline.DefaultMaxQubits, "largest graph accepted")
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "check commutation and closure after enumerating")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "browse the group in a terminal UI")

	return cmd
}

func (c *CLI) runGroup(cmd *cobra.Command, args []string, flags groupFlags) error {
	ctx := cmd.Context()

	format := strings.ToLower(flags.format)
	pipelineFormat := format
	switch {
	case flags.interactive, format == formatTable:
		pipelineFormat = pipeline.FormatText
	default:
		if err := validateOutputFormat(format); err != nil {
			return err
		}
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
	opts.Verify = flags.verify
	opts.Formats = []string{pipelineFormat}
	if cmd.Flags().Changed("workers") {
		opts.Workers = flags.workers
	}
	if cmd.Flags().Changed("max-qubits") || opts.MaxQubits == 0 {
		opts.MaxQubits = flags.maxQubits
	}

	var spinner *Spinner
	if n := g.Matrix.Size(); n >= spinnerQubits && n <= opts.MaxQubits {
		spinner = newSpinner(ctx, fmt.Sprintf("Enumerating 2^%d elements...", n))
		spinner.Start()
	}
	res, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	switch {
	case flags.interactive:
		return browseGroup(cmd, res.Group)
	case format == formatTable:
		printTitle("%s", res.Group)
		printStats(res.Stats.Qubits, res.Stats.Edges, res.Stats.Elements, res.CacheInfo.GroupHit)
		fmt.Fprintln(stdout, groupTable(res.Group, 0, res.Group.Len(), -1))
	default:
		printRaw(res.Artifacts[pipelineFormat])
	}
	return nil
}

// browseGroup runs the interactive group browser until the user quits.
func browseGroup(cmd *cobra.Command, g *stabilizer.Group) error {
	p := tea.NewProgram(NewGroupModel(g),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// validateOutputFormat accepts the formats shared by generators and group.
func validateOutputFormat(format string) error {
	switch format {
	case pipeline.FormatText, pipeline.FormatJSON:
		return nil
	}
	return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
}
