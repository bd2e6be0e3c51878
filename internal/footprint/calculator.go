package footprint

// ComputeEmissions multiplies each consumption quantity by its factor and
// sums the products.
//
// Categories are returned in Categories() order. The total is carried at
// full precision; rounding belongs to display. Inputs are assumed to be
// validated; see Calculate for the checked variant.
func ComputeEmissions(input ConsumptionInput, factors FactorSet) EmissionsResult {
	categories := make([]CategoryEmission, 0, categoryCount)
	total := 0.0

	for _, c := range Categories() {
		kg := input.quantity(c) * factors.factor(c)
		categories = append(categories, CategoryEmission{
			Category: c,
			Name:     c.String(),
			KgCO2:    kg,
		})
		total += kg
	}

	return EmissionsResult{Categories: categories, TotalKg: total}
}

// Calculate validates input, resolves the preset and computes emissions.
//
// It returns ErrInvalidInput (as *InputError) for negative or non-finite
// quantities or resolved factors, and ErrMissingCustomFactor for an
// incomplete Custom preset. No partial result is returned on error.
func Calculate(input ConsumptionInput, preset Preset) (EmissionsResult, FactorSet, error) {
	if err := input.Validate(); err != nil {
		return EmissionsResult{}, FactorSet{}, err
	}

	factors, err := preset.Resolve()
	if err != nil {
		return EmissionsResult{}, FactorSet{}, err
	}
	if err := factors.Validate(); err != nil {
		return EmissionsResult{}, FactorSet{}, err
	}

	return ComputeEmissions(input, factors), factors, nil
}
