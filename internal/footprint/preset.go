package footprint

import (
	"fmt"
	"strings"
)

// PresetKind selects which emission factors apply.
type PresetKind int

const (
	// PresetBaseline uses DefaultFactors unchanged.
	PresetBaseline PresetKind = iota

	// PresetLowCarbonGrid lowers the electricity factor and keeps the rest.
	PresetLowCarbonGrid

	// PresetCustom uses caller-supplied factors verbatim.
	PresetCustom
)

// String returns the CLI/config name of the preset.
func (p PresetKind) String() string {
	switch p {
	case PresetBaseline:
		return "baseline"
	case PresetLowCarbonGrid:
		return "low-carbon-grid"
	case PresetCustom:
		return "custom"
	default:
		return fmt.Sprintf("PresetKind(%d)", p)
	}
}

// Label returns a human-readable preset name.
func (p PresetKind) Label() string {
	switch p {
	case PresetBaseline:
		return "Baseline"
	case PresetLowCarbonGrid:
		return "Low-carbon grid"
	case PresetCustom:
		return "Custom"
	default:
		return p.String()
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p PresetKind) MarshalText() ([]byte, error) {
	switch p {
	case PresetBaseline, PresetLowCarbonGrid, PresetCustom:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PresetKind) UnmarshalText(text []byte) error {
	parsed, err := ParsePreset(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePreset parses a preset name. Matching is case-insensitive and accepts
// underscores or spaces in place of hyphens. An empty name is Baseline.
func ParsePreset(name string) (PresetKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)

	switch normalized {
	case "", "baseline", "default":
		return PresetBaseline, nil
	case "low-carbon-grid", "lowcarbongrid", "low-carbon":
		return PresetLowCarbonGrid, nil
	case "custom", "manual":
		return PresetCustom, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected baseline, low-carbon-grid or custom)", ErrUnknownPreset, name)
	}
}

// ManualFactors carries user-entered factor overrides. A nil field means the
// user did not supply that factor.
type ManualFactors struct {
	Electricity *float64 `json:"electricity,omitempty" yaml:"electricity,omitempty"`
	Gas         *float64 `json:"gas,omitempty"         yaml:"gas,omitempty"`
	Car         *float64 `json:"car,omitempty"         yaml:"car,omitempty"`
	Flight      *float64 `json:"flight,omitempty"      yaml:"flight,omitempty"`
}

// ManualFromFactorSet returns overrides with every field present.
func ManualFromFactorSet(f FactorSet) *ManualFactors {
	return &ManualFactors{
		Electricity: &f.Electricity,
		Gas:         &f.Gas,
		Car:         &f.Car,
		Flight:      &f.Flight,
	}
}

// Missing lists the factor names that were not supplied, in category order.
func (m *ManualFactors) Missing() []string {
	if m == nil {
		return []string{"electricity", "gas", "car", "flight"}
	}
	var missing []string
	if m.Electricity == nil {
		missing = append(missing, "electricity")
	}
	if m.Gas == nil {
		missing = append(missing, "gas")
	}
	if m.Car == nil {
		missing = append(missing, "car")
	}
	if m.Flight == nil {
		missing = append(missing, "flight")
	}
	return missing
}

// Merge returns a copy of m with fields from other applied on top.
// Fields absent in other keep their value from m.
func (m *ManualFactors) Merge(other *ManualFactors) *ManualFactors {
	out := &ManualFactors{}
	if m != nil {
		*out = *m
	}
	if other == nil {
		return out
	}
	if other.Electricity != nil {
		out.Electricity = other.Electricity
	}
	if other.Gas != nil {
		out.Gas = other.Gas
	}
	if other.Car != nil {
		out.Car = other.Car
	}
	if other.Flight != nil {
		out.Flight = other.Flight
	}
	return out
}

// ResolveFactors produces the factor set for a preset.
//
// Baseline and LowCarbonGrid ignore manual. Custom requires every field of
// manual and uses the values verbatim; absent fields are reported in a
// *MissingFactorError and never replaced by defaults. Negative custom values
// are passed through; callers validate at the boundary with FactorSet.Validate.
func ResolveFactors(preset PresetKind, manual *ManualFactors) (FactorSet, error) {
	switch preset {
	case PresetBaseline:
		return DefaultFactors(), nil
	case PresetLowCarbonGrid:
		factors := DefaultFactors()
		factors.Electricity = LowCarbonGridElectricityFactor
		return factors, nil
	case PresetCustom:
		if missing := manual.Missing(); len(missing) > 0 {
			return FactorSet{}, &MissingFactorError{Fields: missing}
		}
		return FactorSet{
			Electricity: *manual.Electricity,
			Gas:         *manual.Gas,
			Car:         *manual.Car,
			Flight:      *manual.Flight,
		}, nil
	default:
		return FactorSet{}, fmt.Errorf("%w: %d", ErrUnknownPreset, int(preset))
	}
}

// Preset is a preset selection together with its overrides, so the choice
// travels as one value.
type Preset struct {
	Kind   PresetKind     `json:"kind"`
	Manual *ManualFactors `json:"manual,omitempty"`
}

// Resolve is ResolveFactors for the selection.
func (p Preset) Resolve() (FactorSet, error) {
	return ResolveFactors(p.Kind, p.Manual)
}

// PresetInfo describes a named preset for listings.
type PresetInfo struct {
	Kind        PresetKind `json:"kind"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	// Factors is nil for the Custom preset.
	Factors *FactorSet `json:"factors,omitempty"`
}

// Presets lists every preset in selection order.
func Presets() []PresetInfo {
	baseline := DefaultFactors()
	lowCarbon, _ := ResolveFactors(PresetLowCarbonGrid, nil)

	return []PresetInfo{
		{
			Kind:        PresetBaseline,
			Name:        PresetBaseline.String(),
			Description: "Average grid electricity, gas, car and flight factors",
			Factors:     &baseline,
		},
		{
			Kind:        PresetLowCarbonGrid,
			Name:        PresetLowCarbonGrid.String(),
			Description: "Renewable-heavy electricity grid, other factors unchanged",
			Factors:     &lowCarbon,
		},
		{
			Kind:        PresetCustom,
			Name:        PresetCustom.String(),
			Description: "All four factors supplied by the user",
		},
	}
}
