package export

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/footprint"
)

const tolerance = 1e-9

func TestWriteCSV_Shape(t *testing.T) {
	result := footprint.ComputeEmissions(footprint.DefaultConsumption(), footprint.DefaultFactors())

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, []string{"Category", "Emissions (kg CO₂)"}, records[0])
	assert.Equal(t, []string{"Electricity", "1110"}, records[1])
	assert.Equal(t, []string{"Natural Gas", "180"}, records[2])
	assert.Equal(t, []string{"Car Travel", "2280"}, records[3])
	assert.Equal(t, []string{"Flights", "360"}, records[4])
	assert.Equal(t, []string{"TOTAL", "3930"}, records[5])
}

func TestCSV_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		input   footprint.ConsumptionInput
		factors footprint.FactorSet
	}{
		{"defaults", footprint.DefaultConsumption(), footprint.DefaultFactors()},
		{"zeros", footprint.ConsumptionInput{}, footprint.DefaultFactors()},
		{"fractional", footprint.ConsumptionInput{ElectricityKWh: 1234.567, GasKWh: 0.001, CarKm: 98765.4321, FlightKm: 1.5},
			footprint.FactorSet{Electricity: 0.3719, Gas: 0.18333, Car: 0.1911, Flight: 0.123456789}},
		{"large", footprint.ConsumptionInput{ElectricityKWh: 1e9, GasKWh: 1e9, CarKm: 1e9, FlightKm: 1e9},
			footprint.DefaultFactors()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := footprint.ComputeEmissions(tt.input, tt.factors)

			var buf bytes.Buffer
			require.NoError(t, WriteCSV(&buf, want))

			got, err := ReadCSV(&buf)
			require.NoError(t, err)

			require.Len(t, got.Categories, len(want.Categories))
			for i := range want.Categories {
				assert.Equal(t, want.Categories[i].Name, got.Categories[i].Name)
				assert.Equal(t, want.Categories[i].Category, got.Categories[i].Category)
				assert.InDelta(t, want.Categories[i].KgCO2, got.Categories[i].KgCO2, tolerance)
			}
			assert.InDelta(t, want.TotalKg, got.TotalKg, tolerance)
		})
	}
}

func TestReadCSV_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "Name,Value\nElectricity,1\nNatural Gas,1\nCar Travel,1\nFlights,1\nTOTAL,4\n"},
		{"missing total", "Category,Emissions (kg CO₂)\nElectricity,1\nNatural Gas,1\nCar Travel,1\nFlights,1\n"},
		{"wrong order", "Category,Emissions (kg CO₂)\nNatural Gas,1\nElectricity,1\nCar Travel,1\nFlights,1\nTOTAL,4\n"},
		{"bad number", "Category,Emissions (kg CO₂)\nElectricity,abc\nNatural Gas,1\nCar Travel,1\nFlights,1\nTOTAL,4\n"},
		{"NaN", "Category,Emissions (kg CO₂)\nElectricity,NaN\nNatural Gas,1\nCar Travel,1\nFlights,1\nTOTAL,4\n"},
		{"total mislabelled", "Category,Emissions (kg CO₂)\nElectricity,1\nNatural Gas,1\nCar Travel,1\nFlights,1\nSUM,4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedCSV)
		})
	}
}

func TestReadCSV_AcceptsByteOrderMark(t *testing.T) {
	input := "\ufeffCategory,Emissions (kg CO₂)\nElectricity,1\nNatural Gas,2\nCar Travel,3\nFlights,4\nTOTAL,10\n"
	got, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got.TotalKg, tolerance)
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emissions.csv")
	result := footprint.ComputeEmissions(footprint.DefaultConsumption(), footprint.DefaultFactors())

	require.NoError(t, WriteCSVFile(path, result))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := ReadCSV(f)
	require.NoError(t, err)
	assert.InDelta(t, result.TotalKg, got.TotalKg, tolerance)
}

func TestWriteCSVFile_BadPath(t *testing.T) {
	err := WriteCSVFile(filepath.Join(t.TempDir(), "missing", "out.csv"), footprint.EmissionsResult{})
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	assessment, err := footprint.Assess(footprint.DefaultConsumption(),
		footprint.Preset{Kind: footprint.PresetBaseline}, footprint.DefaultBenchmarks())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, assessment))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "baseline", decoded["preset"])
	assert.Equal(t, "Average", decoded["verdict"])
	assert.InDelta(t, 3.93, decoded["total_tonnes"], tolerance)

	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 3930.0, result["total_kg"], tolerance)
	categories, ok := result["categories"].([]any)
	require.True(t, ok)
	require.Len(t, categories, 4)
	first, ok := categories[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Electricity", first["category"])
	assert.False(t, math.IsNaN(first["kg_co2"].(float64)))
}
