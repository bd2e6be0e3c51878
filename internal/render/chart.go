package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/footprint"
)

// Bar chart layout.
const (
	barChar         = "█"
	plainBarChar    = "#"
	chartLabelWidth = 12
	minBarWidth     = 10
	// chartReserved is the space taken by the label column and value column.
	chartReserved = chartLabelWidth + 22
)

// BarWidths scales each category to at most width cells, proportional to the
// largest category. Non-zero categories get at least one cell.
func BarWidths(result footprint.EmissionsResult, width int) []int {
	widths := make([]int, len(result.Categories))
	maxKg := 0.0
	for _, c := range result.Categories {
		maxKg = math.Max(maxKg, c.KgCO2)
	}
	if maxKg <= 0 || width <= 0 {
		return widths
	}

	for i, c := range result.Categories {
		cells := int(math.Round(c.KgCO2 / maxKg * float64(width)))
		if cells == 0 && c.KgCO2 > 0 {
			cells = 1
		}
		widths[i] = cells
	}
	return widths
}

// RenderBarChart draws one horizontal bar per category. totalWidth is the
// full line width including labels.
func RenderBarChart(result footprint.EmissionsResult, unit footprint.Unit, totalWidth int, styled bool) string {
	barWidth := max(totalWidth-chartReserved, minBarWidth)
	widths := BarWidths(result, barWidth)

	var b strings.Builder
	for i, c := range result.Categories {
		label := fmt.Sprintf("%-*s", chartLabelWidth, c.Name)
		value := FormatMass(c.KgCO2, unit)

		if styled {
			bar := lipgloss.NewStyle().
				Foreground(categoryColors[c.Category]).
				Render(strings.Repeat(barChar, widths[i]))
			b.WriteString(LabelStyle.Render(label))
			b.WriteString(" ")
			b.WriteString(bar)
			b.WriteString(" ")
			b.WriteString(ValueStyle.Render(value))
		} else {
			b.WriteString(label)
			b.WriteString(" ")
			b.WriteString(strings.Repeat(plainBarChar, widths[i]))
			b.WriteString(" ")
			b.WriteString(value)
		}
		b.WriteString("\n")
	}
	return b.String()
}
