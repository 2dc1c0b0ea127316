package circuit

import (
	"fmt"
	"strings"
)

const (
	qasmVersion = "OPENQASM 2.0;"
	qasmInclude = `include "qelib1.inc";`
)

// QASM returns the circuit as an OpenQASM 2.0 program. The program declares
// a single quantum register q and no classical register.
func (c *Circuit) QASM() string {
	var b strings.Builder
	b.WriteString(qasmVersion + "\n")
	b.WriteString(qasmInclude + "\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.NumQubits)
	if len(c.Gates) > 0 {
		b.WriteString("\n")
	}
	for _, g := range c.Gates {
		b.WriteString(g.String() + ";\n")
	}
	return b.String()
}
