// Package footprint estimates annual household and travel emissions.
//
// It resolves emission factors from a preset or manual overrides, multiplies
// them with consumption quantities (electricity, natural gas, car and flight
// distance) and compares the total against per-capita benchmarks.
// Everything in this package is pure: values are built per calculation and
// nothing is shared between calls.
package footprint

import (
	"fmt"
	"math"
)

// Category identifies one emission source. The iota order is the fixed
// display and export order.
type Category int

const (
	// CategoryElectricity is grid electricity use.
	CategoryElectricity Category = iota

	// CategoryGas is natural gas use.
	CategoryGas

	// CategoryCar is car travel.
	CategoryCar

	// CategoryFlight is air travel.
	CategoryFlight
)

// categoryCount is the number of emission categories.
const categoryCount = 4

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryElectricity, CategoryGas, CategoryCar, CategoryFlight}
}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryElectricity:
		return "Electricity"
	case CategoryGas:
		return "Natural Gas"
	case CategoryCar:
		return "Car Travel"
	case CategoryFlight:
		return "Flights"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// ParseCategory maps a display name back to a Category.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// ConsumptionInput holds annual consumption quantities.
type ConsumptionInput struct {
	// ElectricityKWh is grid electricity used per year.
	ElectricityKWh float64 `json:"electricity_kwh" yaml:"electricity_kwh"`

	// GasKWh is natural gas used per year.
	GasKWh float64 `json:"gas_kwh" yaml:"gas_kwh"`

	// CarKm is distance driven per year.
	CarKm float64 `json:"car_km" yaml:"car_km"`

	// FlightKm is distance flown per year.
	FlightKm float64 `json:"flight_km" yaml:"flight_km"`
}

// DefaultConsumption returns the quantities used to pre-fill empty inputs.
func DefaultConsumption() ConsumptionInput {
	return ConsumptionInput{
		ElectricityKWh: DefaultElectricityKWh,
		GasKWh:         DefaultGasKWh,
		CarKm:          DefaultCarKm,
		FlightKm:       DefaultFlightKm,
	}
}

// Validate returns an *InputError for the first quantity that is negative,
// NaN or infinite.
func (in ConsumptionInput) Validate() error {
	return validateFields(
		namedValue{"electricity_kwh", in.ElectricityKWh},
		namedValue{"gas_kwh", in.GasKWh},
		namedValue{"car_km", in.CarKm},
		namedValue{"flight_km", in.FlightKm},
	)
}

// quantity returns the consumption for a category.
func (in ConsumptionInput) quantity(c Category) float64 {
	switch c {
	case CategoryElectricity:
		return in.ElectricityKWh
	case CategoryGas:
		return in.GasKWh
	case CategoryCar:
		return in.CarKm
	case CategoryFlight:
		return in.FlightKm
	default:
		return 0
	}
}

// FactorSet holds one emission factor per category, in kg CO2 per kWh or km.
type FactorSet struct {
	Electricity float64 `json:"electricity" yaml:"electricity"`
	Gas         float64 `json:"gas"         yaml:"gas"`
	Car         float64 `json:"car"         yaml:"car"`
	Flight      float64 `json:"flight"      yaml:"flight"`
}

// DefaultFactors returns the baseline factor set.
func DefaultFactors() FactorSet {
	return FactorSet{
		Electricity: BaselineElectricityFactor,
		Gas:         BaselineGasFactor,
		Car:         BaselineCarFactor,
		Flight:      BaselineFlightFactor,
	}
}

// Validate returns an *InputError for the first factor that is negative,
// NaN or infinite. There is no upper bound.
func (f FactorSet) Validate() error {
	return validateFields(
		namedValue{"electricity_factor", f.Electricity},
		namedValue{"gas_factor", f.Gas},
		namedValue{"car_factor", f.Car},
		namedValue{"flight_factor", f.Flight},
	)
}

// factor returns the factor for a category.
func (f FactorSet) factor(c Category) float64 {
	switch c {
	case CategoryElectricity:
		return f.Electricity
	case CategoryGas:
		return f.Gas
	case CategoryCar:
		return f.Car
	case CategoryFlight:
		return f.Flight
	default:
		return 0
	}
}

// CategoryEmission is the emission attributed to one category.
type CategoryEmission struct {
	Category Category `json:"-"`
	Name     string   `json:"category"`
	KgCO2    float64  `json:"kg_co2"`
}

// EmissionsResult is the per-category breakdown and its total.
type EmissionsResult struct {
	// Categories is always in Categories() order.
	Categories []CategoryEmission `json:"categories"`

	// TotalKg is the exact sum of the category values.
	TotalKg float64 `json:"total_kg"`
}

// TotalTonnes returns the total in metric tonnes.
func (r EmissionsResult) TotalTonnes() float64 {
	return r.TotalKg / KgPerTonne
}

// Get returns the emission for a category, or 0 if it is absent.
func (r EmissionsResult) Get(c Category) float64 {
	for _, ce := range r.Categories {
		if ce.Category == c {
			return ce.KgCO2
		}
	}
	return 0
}

type namedValue struct {
	name  string
	value float64
}

func validateFields(fields ...namedValue) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return &InputError{Field: f.name, Value: f.value}
		}
	}
	return nil
}
