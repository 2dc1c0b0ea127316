package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// stdout receives all command output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorPurple = lipgloss.Color("141") // Lavender - imaginary phases
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	// Sign prefixes of phased Pauli strings.
	stylePhasePlus  = lipgloss.NewStyle().Foreground(colorGreen)
	stylePhaseMinus = lipgloss.NewStyle().Foreground(colorRed)
	stylePhaseImag  = lipgloss.NewStyle().Foreground(colorPurple)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, "  "+StyleDim.Render(msg))
}

// printTitle prints a section heading.
func printTitle(format string, args ...any) {
	fmt.Fprintln(stdout, StyleTitle.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(stdout, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints run statistics on a single line.
func printStats(qubits, edges, elements int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d qubits", qubits),
		fmt.Sprintf("%d edges", edges),
	}
	if elements > 0 {
		parts = append(parts, fmt.Sprintf("%d elements", elements))
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}

	rendered := make([]string, 0, len(parts)+1)
	for _, part := range parts {
		rendered = append(rendered, StyleDim.Render(part))
	}
	rendered = append(rendered, statusStyle.Render(status))
	fmt.Fprintln(stdout, "  "+strings.Join(rendered, StyleDim.Render(" · ")))
}

// =============================================================================
// Pauli Output
// =============================================================================

// renderPhased colors the sign prefix of a phased Pauli string.
func renderPhased(text string) string {
	switch {
	case strings.HasPrefix(text, "+i"), strings.HasPrefix(text, "-i"):
		return stylePhaseImag.Render(text[:2]) + StyleValue.Render(text[2:])
	case strings.HasPrefix(text, "-"):
		return stylePhaseMinus.Render(text[:1]) + StyleValue.Render(text[1:])
	case strings.HasPrefix(text, "+"):
		return stylePhasePlus.Render(text[:1]) + StyleValue.Render(text[1:])
	}
	return StyleValue.Render(text)
}

// =============================================================================
// Utilities
// =============================================================================

// printRaw writes data unstyled, for machine-readable formats.
func printRaw(data []byte) {
	stdout.Write(data)
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Fprintln(stdout)
}
