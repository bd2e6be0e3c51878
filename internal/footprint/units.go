package footprint

import (
	"fmt"
	"strings"
)

// Unit is a display unit for emission masses. Calculations are always in kg.
type Unit string

const (
	UnitKg     Unit = "kg"
	UnitTonnes Unit = "t"
	UnitPounds Unit = "lb"
)

// PoundsPerKg converts kilograms to pounds.
const PoundsPerKg = 2.20462

// ParseUnit parses a display unit. Matching is case-insensitive; an empty
// string is kilograms.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kg", "kgco2e":
		return UnitKg, nil
	case "t", "tonnes", "tco2e":
		return UnitTonnes, nil
	case "lb", "lbs", "lbco2e":
		return UnitPounds, nil
	default:
		return "", fmt.Errorf("%w: %q (expected kg, t or lb)", ErrInvalidUnit, s)
	}
}

// FromKg converts a kilogram value to u.
func (u Unit) FromKg(kg float64) float64 {
	switch u {
	case UnitTonnes:
		return kg / KgPerTonne
	case UnitPounds:
		return kg * PoundsPerKg
	default:
		return kg
	}
}

// Suffix is the label appended to values in u.
func (u Unit) Suffix() string {
	switch u {
	case UnitTonnes:
		return "t CO₂"
	case UnitPounds:
		return "lb CO₂"
	default:
		return "kg CO₂"
	}
}
