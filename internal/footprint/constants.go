package footprint

// Baseline emission factors (kg CO2 per unit).
//
// These are the values applied by the Baseline preset. Swap them for
// region-specific figures through the Custom preset rather than editing them.
const (
	// BaselineElectricityFactor is kg CO2 per kWh of grid electricity.
	BaselineElectricityFactor = 0.37

	// BaselineGasFactor is kg CO2 per kWh of natural gas.
	BaselineGasFactor = 0.18

	// BaselineCarFactor is kg CO2 per km driven in an average passenger car.
	BaselineCarFactor = 0.19

	// BaselineFlightFactor is kg CO2e per passenger-km flown.
	BaselineFlightFactor = 0.12

	// LowCarbonGridElectricityFactor replaces the electricity factor under the
	// LowCarbonGrid preset.
	LowCarbonGridElectricityFactor = 0.20
)

// Per-capita benchmarks in tonnes CO2 per year.
const (
	// AUPerCapitaTonnes is the average annual emissions of an Australian resident.
	AUPerCapitaTonnes = 15.01

	// WorldPerCapitaTonnes is the global average annual emissions per person.
	WorldPerCapitaTonnes = 4.80
)

// Default consumption quantities used to pre-fill inputs when the user
// does not supply a value.
const (
	DefaultElectricityKWh = 3000.0
	DefaultGasKWh         = 1000.0
	DefaultCarKm          = 12000.0
	DefaultFlightKm       = 3000.0
)

// Verdict thresholds relative to the world benchmark.
const (
	// LowVerdictRatio is the share of the world average below which a total is Low.
	LowVerdictRatio = 0.75
)

// KgPerTonne converts kilograms to metric tonnes.
const KgPerTonne = 1000.0

// percentScale converts a ratio to a percentage.
const percentScale = 100.0
