package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/render"
)

const labelWidth = 20

//nolint:gochecknoglobals // Styles are immutable values reused across renders.
var (
	focusedStyle = lipgloss.NewStyle().Foreground(render.ColorHeader).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(render.ColorHigh)
	cursor       = focusedStyle.Render("▸ ")
)

// View renders the current view.
func (m *FormModel) View() string {
	if m.state != FormStateEditing {
		return ""
	}

	var b strings.Builder
	b.WriteString(render.HeaderStyle.Render("CARBON FOOTPRINT CALCULATOR"))
	b.WriteString("\n\n")

	b.WriteString(m.renderRow(0, "Preset", presetSelector(m.preset)))
	for row, idx := range m.visible() {
		f := m.fields[idx]
		b.WriteString(m.renderRow(row+1, f.label, f.input.View()+" "+render.MutedStyle.Render(f.unit)))
	}
	b.WriteString("\n")

	b.WriteString(m.renderSummary())
	b.WriteString("\n\n")
	b.WriteString(render.MutedStyle.Render(
		"↑/↓ move • tab/←/→ on preset: change preset • enter: accept • esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m *FormModel) renderRow(row int, label, value string) string {
	prefix := "  "
	labelText := render.LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label))
	if row == m.focus {
		prefix = cursor
		labelText = focusedStyle.Render(fmt.Sprintf("%-*s", labelWidth, label))
	}
	return prefix + labelText + value + "\n"
}

func presetSelector(current footprint.PresetKind) string {
	parts := make([]string, 0, len(footprint.Presets()))
	for _, p := range footprint.Presets() {
		if p.Kind == current {
			parts = append(parts, focusedStyle.Render("["+p.Kind.Label()+"]"))
			continue
		}
		parts = append(parts, render.MutedStyle.Render(p.Kind.Label()))
	}
	return strings.Join(parts, "  ")
}

// renderSummary shows the live total and verdict, or the validation error.
func (m *FormModel) renderSummary() string {
	if m.err != nil {
		return errorStyle.Render("✗ " + m.err.Error())
	}
	if m.assessment == nil {
		return ""
	}

	a := m.assessment
	var b strings.Builder
	b.WriteString(render.LabelStyle.Render("Total: "))
	b.WriteString(render.ValueStyle.Render(render.FormatFloat(a.TotalTonnes, 2) + " t CO₂/year"))
	if m.unit != footprint.UnitTonnes {
		b.WriteString(render.LabelStyle.Render(" (" + render.FormatMass(a.Result.TotalKg, m.unit) + ")"))
	}
	b.WriteString("\n")
	b.WriteString(render.VerdictStyle(a.Verdict).Render(a.Verdict.String() + ": " + a.Verdict.Message()))
	b.WriteString("\n\n")
	b.WriteString(render.RenderBarChart(a.Result, m.unit, m.width, true))
	return strings.TrimRight(b.String(), "\n")
}
