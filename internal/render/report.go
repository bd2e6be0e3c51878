package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/footprint/internal/footprint"
)

// Layout constants.
const (
	DefaultWidth     = 72
	boxBorderPadding = 4
	tabwriterPadding = 2
)

// Options control report rendering.
type Options struct {
	Unit footprint.Unit
	// Width is the full output width; DefaultWidth when zero.
	Width int
	// Styled selects lipgloss output; plain text otherwise.
	Styled bool
}

// OptionsFor picks styling and width from w: styled output only when w is a
// terminal and plain is false.
func OptionsFor(w io.Writer, unit footprint.Unit, plain bool) Options {
	styled := !plain && IsTerminal(w)
	return Options{
		Unit:   unit,
		Width:  min(TerminalWidth(w, DefaultWidth), DefaultWidth+boxBorderPadding*4),
		Styled: styled,
	}
}

// RenderReport writes the full report: total, verdict, benchmark
// comparisons, per-category table and chart, and equivalencies.
func RenderReport(w io.Writer, a footprint.Assessment, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Unit == "" {
		opts.Unit = footprint.UnitKg
	}

	if opts.Styled {
		_, err := fmt.Fprintln(w, RenderStyledReport(a, opts))
		return err
	}
	return RenderPlainReport(w, a, opts)
}

// RenderStyledReport returns the boxed, coloured report.
func RenderStyledReport(a footprint.Assessment, opts Options) string {
	inner := opts.Width - boxBorderPadding
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ANNUAL CARBON FOOTPRINT"))
	content.WriteString("\n")
	content.WriteString(MutedStyle.Render("Preset: " + a.Preset.Label()))
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("Total:  "))
	content.WriteString(ValueStyle.Render(FormatFloat(a.TotalTonnes, 2) + " t CO₂/year"))
	if opts.Unit != footprint.UnitTonnes {
		content.WriteString(LabelStyle.Render("  (" + FormatMass(a.Result.TotalKg, opts.Unit) + ")"))
	}
	content.WriteString("\n")
	content.WriteString(VerdictStyle(a.Verdict).Render(a.Verdict.String() + ": " + a.Verdict.Message()))
	content.WriteString("\n\n")

	for _, c := range a.Comparisons {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-20s", c.Label)))
		content.WriteString(ValueStyle.Render(FormatPercent(c.Percent)))
		content.WriteString(LabelStyle.Render(fmt.Sprintf("  of %s t", FormatFloat(c.BenchmarkTonnes, 2))))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(HeaderStyle.Render("BY CATEGORY"))
	content.WriteString("\n")
	content.WriteString(RenderBarChart(a.Result, opts.Unit, inner, true))

	if len(a.Equivalencies) > 0 {
		content.WriteString("\n")
		content.WriteString(MutedStyle.Render(EquivalencyText(a.Equivalencies)))
	}

	return BoxStyle.Width(inner).Render(strings.TrimRight(content.String(), "\n"))
}

// RenderPlainReport writes an uncoloured report suitable for pipes and logs.
func RenderPlainReport(w io.Writer, a footprint.Assessment, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "CATEGORY\tEMISSIONS (%s)\tSHARE\n", opts.Unit.Suffix()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t---------\t-----\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, c := range a.Result.Categories {
		share := 0.0
		if a.Result.TotalKg > 0 {
			share = 100 * c.KgCO2 / a.Result.TotalKg
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
			c.Name, FormatFloat(opts.Unit.FromKg(c.KgCO2), 2), FormatPercent(share)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "TOTAL\t%s\t\n", FormatFloat(opts.Unit.FromKg(a.Result.TotalKg), 2)); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nPreset: %s\n", a.Preset.Label())
	fmt.Fprintf(&b, "Total: %s t CO₂/year\n", FormatFloat(a.TotalTonnes, 2))
	fmt.Fprintf(&b, "Verdict: %s - %s\n", a.Verdict, a.Verdict.Message())
	for _, c := range a.Comparisons {
		fmt.Fprintf(&b, "%s: %s of %s t\n", c.Label, FormatPercent(c.Percent), FormatFloat(c.BenchmarkTonnes, 2))
	}
	b.WriteString("\n")
	b.WriteString(RenderBarChart(a.Result, opts.Unit, opts.Width, false))
	if len(a.Equivalencies) > 0 {
		b.WriteString("\n")
		b.WriteString(EquivalencyText(a.Equivalencies))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// EquivalencyText joins equivalencies into one sentence, e.g.
// "Equivalent to ~66 tree seedlings grown for 10 years or ~215 days of home electricity use".
func EquivalencyText(eqs []footprint.Equivalency) string {
	if len(eqs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(eqs))
	for _, e := range eqs {
		parts = append(parts, "~"+FormatLarge(e.Value)+" "+e.Label)
	}
	return "Equivalent to " + strings.Join(parts, " or ")
}
