package footprint

import "math"

// EPA Greenhouse Gas Equivalencies (2024 edition).
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2e / factor
const (
	// EPATreeSeedlingFactor is kg CO2e absorbed by one urban tree seedling
	// grown for 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeDayFactor is kg CO2e per day of average home electricity use.
	EPAHomeDayFactor = 18.3

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// MinEquivalencyThresholdKg is the smallest total for which equivalencies
	// are reported.
	MinEquivalencyThresholdKg = 1.0
)

// EquivalencyKind identifies a real-world comparison.
type EquivalencyKind string

const (
	EquivalencyTreeSeedlings      EquivalencyKind = "tree_seedlings"
	EquivalencyHomeDays           EquivalencyKind = "home_days"
	EquivalencySmartphonesCharged EquivalencyKind = "smartphones_charged"
)

// Equivalency expresses a total as a count of something familiar.
type Equivalency struct {
	Kind  EquivalencyKind `json:"kind"`
	Value float64         `json:"value"`
	Label string          `json:"label"`
}

// Equivalencies converts totalKg into tree seedlings, home electricity days
// and smartphone charges. Totals below MinEquivalencyThresholdKg, and
// non-finite totals, yield nil.
func Equivalencies(totalKg float64) []Equivalency {
	if math.IsNaN(totalKg) || math.IsInf(totalKg, 0) || totalKg < MinEquivalencyThresholdKg {
		return nil
	}

	return []Equivalency{
		{
			Kind:  EquivalencyTreeSeedlings,
			Value: totalKg / EPATreeSeedlingFactor,
			Label: "tree seedlings grown for 10 years",
		},
		{
			Kind:  EquivalencyHomeDays,
			Value: totalKg / EPAHomeDayFactor,
			Label: "days of home electricity use",
		},
		{
			Kind:  EquivalencySmartphonesCharged,
			Value: totalKg / EPASmartphoneChargeFactor,
			Label: "smartphones charged",
		},
	}
}
