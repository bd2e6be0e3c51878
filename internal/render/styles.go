// Package render draws footprint assessments for terminals and plain text.
package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rshade/footprint/internal/footprint"
)

// Palette.
const (
	ColorHeader  = lipgloss.Color("33")
	ColorLabel   = lipgloss.Color("245")
	ColorValue   = lipgloss.Color("255")
	ColorMuted   = lipgloss.Color("241")
	ColorBorder  = lipgloss.Color("63")
	ColorLow     = lipgloss.Color("42")
	ColorAverage = lipgloss.Color("214")
	ColorHigh    = lipgloss.Color("196")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values reused across renders.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	BoxStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// categoryColors gives each category a stable bar colour.
//
//nolint:gochecknoglobals // Constant lookup table.
var categoryColors = map[footprint.Category]lipgloss.Color{
	footprint.CategoryElectricity: lipgloss.Color("220"),
	footprint.CategoryGas:         lipgloss.Color("209"),
	footprint.CategoryCar:         lipgloss.Color("75"),
	footprint.CategoryFlight:      lipgloss.Color("141"),
}

// VerdictColor maps a verdict to green, amber or red.
func VerdictColor(v footprint.Verdict) lipgloss.Color {
	switch v {
	case footprint.VerdictLow:
		return ColorLow
	case footprint.VerdictAverage:
		return ColorAverage
	default:
		return ColorHigh
	}
}

// VerdictStyle is the bold, coloured style for a verdict message.
func VerdictStyle(v footprint.Verdict) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(VerdictColor(v))
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of w, or fallback when unknown.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
