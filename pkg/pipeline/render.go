package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/graphstab/pkg/adjacency"
	"github.com/matzehuels/graphstab/pkg/circuit"
	errs "github.com/matzehuels/graphstab/pkg/errors"
	"github.com/matzehuels/graphstab/pkg/stabilizer"
)

// Render generates output artifacts in the requested formats.
func Render(res *Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatText:
			data = RenderText(res)
		case FormatJSON:
			data, err = RenderJSON(res)
		case FormatQASM:
			if res.Circuit == nil {
				return nil, errs.New(errs.ErrCodeInternal, "qasm requested but no circuit was built")
			}
			data = []byte(res.Circuit.QASM())
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderText lists the generators and, when present, the group elements,
// one per line.
func RenderText(res *Result) []byte {
	var b bytes.Buffer
	name := res.Name
	if name == "" {
		name = "graph"
	}
	fmt.Fprintf(&b, "# %s: %d qubits, %d edges\n", name, res.Stats.Qubits, res.Stats.Edges)

	b.WriteString("generators:\n")
	for i, g := range res.Generators {
		fmt.Fprintf(&b, "  g%d = %s\n", i, g)
	}

	if res.Group != nil {
		fmt.Fprintf(&b, "group (%d elements):\n", res.Group.Len())
		for e := range res.Group.All() {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}
	return b.Bytes()
}

type resultJSON struct {
	RunID      string            `json:"run_id"`
	Name       string            `json:"name,omitempty"`
	Qubits     int               `json:"qubits"`
	Matrix     adjacency.Matrix  `json:"matrix"`
	Generators []string          `json:"generators"`
	Group      *stabilizer.Group `json:"group,omitempty"`
	Circuit    *circuit.Circuit  `json:"circuit,omitempty"`
}

// RenderJSON encodes the result as an indented JSON document.
func RenderJSON(res *Result) ([]byte, error) {
	data, err := json.MarshalIndent(resultJSON{
		RunID:      res.RunID,
		Name:       res.Name,
		Qubits:     len(res.Generators),
		Matrix:     res.Matrix,
		Generators: stabilizer.FormatGenerators(res.Generators),
		Group:      res.Group,
		Circuit:    res.Circuit,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
