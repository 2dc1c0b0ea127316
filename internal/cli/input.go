package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gio "github.com/matzehuels/graphstab/pkg/io"
)

// readGraph loads the matrix named by args[0], or JSON from stdin when no
// argument or "-" is given.
func readGraph(cmd *cobra.Command, args []string) (*gio.Graph, error) {
	if len(args) == 0 || args[0] == "-" {
		g, err := gio.ReadMatrix(cmd.InOrStdin(), gio.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return g, nil
	}
	return gio.ImportFile(args[0])
}
