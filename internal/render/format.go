package render

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/footprint/internal/footprint"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Large number thresholds for abbreviated display.
const (
	LargeNumberThreshold = 1_000_000
	BillionThreshold     = 1_000_000_000
)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with precision decimals and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprintf("%v", f)
	}
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	formatted := fmt.Sprintf("%.*f", precision, f)
	intPart, frac, found := strings.Cut(formatted, ".")
	if !found {
		return formatted
	}

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var n int64
	if _, err := fmt.Sscanf(intPart, "%d", &n); err != nil {
		return formatted
	}
	out := FormatNumber(n) + "." + frac
	if negative {
		out = "-" + out
	}
	return out
}

// FormatLarge formats counts for equivalency lines: comma-separated below a
// million, "~X.X million" or "~X.X billion" above.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}

// FormatMass formats a kilogram value in unit u with its suffix.
// Tonnes get two decimals, kilograms and pounds one.
func FormatMass(kg float64, u footprint.Unit) string {
	precision := 1
	if u == footprint.UnitTonnes {
		precision = 2
	}
	return FormatFloat(u.FromKg(kg), precision) + " " + u.Suffix()
}

// FormatPercent formats a percentage with one decimal.
func FormatPercent(p float64) string {
	return FormatFloat(p, 1) + "%"
}
