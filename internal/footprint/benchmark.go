package footprint

// Benchmarks holds the per-capita reference totals a footprint is compared
// against. It is passed explicitly so comparisons stay pure.
type Benchmarks struct {
	AUPerCapitaTonnes    float64 `json:"au_per_capita_tonnes"    yaml:"au_per_capita_tonnes"`
	WorldPerCapitaTonnes float64 `json:"world_per_capita_tonnes" yaml:"world_per_capita_tonnes"`
}

// DefaultBenchmarks returns the published Australian and world averages.
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		AUPerCapitaTonnes:    AUPerCapitaTonnes,
		WorldPerCapitaTonnes: WorldPerCapitaTonnes,
	}
}

// Validate rejects negative or non-finite benchmarks.
func (b Benchmarks) Validate() error {
	return validateFields(
		namedValue{"au_per_capita_tonnes", b.AUPerCapitaTonnes},
		namedValue{"world_per_capita_tonnes", b.WorldPerCapitaTonnes},
	)
}

// Comparison is a total expressed as a share of one benchmark.
type Comparison struct {
	Label           string  `json:"label"`
	BenchmarkTonnes float64 `json:"benchmark_tonnes"`
	Percent         float64 `json:"percent"`
}

// Compare returns the total as a percentage of each benchmark, Australia
// first. A zero benchmark yields 0% instead of an infinite share.
func (b Benchmarks) Compare(totalTonnes float64) []Comparison {
	return []Comparison{
		newComparison("Australian average", b.AUPerCapitaTonnes, totalTonnes),
		newComparison("World average", b.WorldPerCapitaTonnes, totalTonnes),
	}
}

func newComparison(label string, benchmark, total float64) Comparison {
	c := Comparison{Label: label, BenchmarkTonnes: benchmark}
	if benchmark > 0 {
		c.Percent = percentScale * total / benchmark
	}
	return c
}

// Assessment is everything a presentation layer needs to show a result.
type Assessment struct {
	Input         ConsumptionInput `json:"input"`
	Preset        PresetKind       `json:"preset"`
	Factors       FactorSet        `json:"factors"`
	Result        EmissionsResult  `json:"result"`
	TotalTonnes   float64          `json:"total_tonnes"`
	Verdict       Verdict          `json:"verdict"`
	Comparisons   []Comparison     `json:"comparisons"`
	Equivalencies []Equivalency    `json:"equivalencies,omitempty"`
}

// Assess runs Calculate and classifies the total against benchmarks.
func Assess(input ConsumptionInput, preset Preset, benchmarks Benchmarks) (Assessment, error) {
	result, factors, err := Calculate(input, preset)
	if err != nil {
		return Assessment{}, err
	}

	tonnes := result.TotalTonnes()
	return Assessment{
		Input:         input,
		Preset:        preset.Kind,
		Factors:       factors,
		Result:        result,
		TotalTonnes:   tonnes,
		Verdict:       Classify(tonnes, benchmarks.WorldPerCapitaTonnes),
		Comparisons:   benchmarks.Compare(tonnes),
		Equivalencies: Equivalencies(result.TotalKg),
	}, nil
}
