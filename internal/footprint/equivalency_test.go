package footprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalencies(t *testing.T) {
	tests := []struct {
		name      string
		totalKg   float64
		wantEmpty bool
		wantTrees float64
		wantDays  float64
	}{
		{name: "reference total", totalKg: 3930, wantTrees: 65.5, wantDays: 3930 / 18.3},
		{name: "exactly at threshold", totalKg: 1, wantTrees: 1.0 / 60, wantDays: 1.0 / 18.3},
		{name: "below threshold", totalKg: 0.5, wantEmpty: true},
		{name: "zero", totalKg: 0, wantEmpty: true},
		{name: "NaN", totalKg: math.NaN(), wantEmpty: true},
		{name: "infinite", totalKg: math.Inf(1), wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Equivalencies(tt.totalKg)
			if tt.wantEmpty {
				assert.Empty(t, got)
				return
			}

			require.Len(t, got, 3)
			assert.Equal(t, EquivalencyTreeSeedlings, got[0].Kind)
			assert.InDelta(t, tt.wantTrees, got[0].Value, tolerance)
			assert.Equal(t, EquivalencyHomeDays, got[1].Kind)
			assert.InDelta(t, tt.wantDays, got[1].Value, tolerance)
			assert.Equal(t, EquivalencySmartphonesCharged, got[2].Kind)
			assert.NotEmpty(t, got[2].Label)
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"", UnitKg, false},
		{"kg", UnitKg, false},
		{"KG", UnitKg, false},
		{"t", UnitTonnes, false},
		{"tonnes", UnitTonnes, false},
		{"lb", UnitPounds, false},
		{"stone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUnit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnit_FromKg(t *testing.T) {
	assert.InDelta(t, 3930.0, UnitKg.FromKg(3930), tolerance)
	assert.InDelta(t, 3.93, UnitTonnes.FromKg(3930), tolerance)
	assert.InDelta(t, 3930*2.20462, UnitPounds.FromKg(3930), 1e-6)
	assert.Equal(t, "t CO₂", UnitTonnes.Suffix())
}
