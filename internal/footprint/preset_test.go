package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestResolveFactors(t *testing.T) {
	manual := ManualFromFactorSet(FactorSet{Electricity: 0.5, Gas: 0.25, Car: 0.1, Flight: 0.2})

	tests := []struct {
		name   string
		preset PresetKind
		manual *ManualFactors
		want   FactorSet
	}{
		{
			name:   "baseline ignores manual",
			preset: PresetBaseline,
			manual: manual,
			want:   FactorSet{0.37, 0.18, 0.19, 0.12},
		},
		{
			name:   "baseline without manual",
			preset: PresetBaseline,
			want:   FactorSet{0.37, 0.18, 0.19, 0.12},
		},
		{
			name:   "low carbon grid replaces electricity only",
			preset: PresetLowCarbonGrid,
			manual: manual,
			want:   FactorSet{0.20, 0.18, 0.19, 0.12},
		},
		{
			name:   "custom is verbatim",
			preset: PresetCustom,
			manual: manual,
			want:   FactorSet{0.5, 0.25, 0.1, 0.2},
		},
		{
			name:   "custom passes negative values through",
			preset: PresetCustom,
			manual: ManualFromFactorSet(FactorSet{-1, 0, 0, 0}),
			want:   FactorSet{-1, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFactors(tt.preset, tt.manual)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFactors_CustomMissing(t *testing.T) {
	tests := []struct {
		name        string
		manual      *ManualFactors
		wantMissing []string
	}{
		{
			name:        "nil manual",
			manual:      nil,
			wantMissing: []string{"electricity", "gas", "car", "flight"},
		},
		{
			name:        "empty manual",
			manual:      &ManualFactors{},
			wantMissing: []string{"electricity", "gas", "car", "flight"},
		},
		{
			name:        "one absent",
			manual:      &ManualFactors{Electricity: ptr(0.3), Gas: ptr(0.2), Flight: ptr(0.1)},
			wantMissing: []string{"car"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFactors(PresetCustom, tt.manual)

			require.ErrorIs(t, err, ErrMissingCustomFactor)
			assert.Equal(t, FactorSet{}, got, "no default substitution")

			var missingErr *MissingFactorError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.wantMissing, missingErr.Fields)
		})
	}
}

func TestResolveFactors_UnknownPreset(t *testing.T) {
	_, err := ResolveFactors(PresetKind(42), nil)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestResolveFactors_Deterministic(t *testing.T) {
	first, err := ResolveFactors(PresetLowCarbonGrid, nil)
	require.NoError(t, err)
	second, err := ResolveFactors(PresetLowCarbonGrid, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input   string
		want    PresetKind
		wantErr bool
	}{
		{"", PresetBaseline, false},
		{"baseline", PresetBaseline, false},
		{"Baseline", PresetBaseline, false},
		{"low-carbon-grid", PresetLowCarbonGrid, false},
		{"low_carbon_grid", PresetLowCarbonGrid, false},
		{"Low carbon grid", PresetLowCarbonGrid, false},
		{"custom", PresetCustom, false},
		{" CUSTOM ", PresetCustom, false},
		{"solar", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePreset(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownPreset)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresetKind_TextRoundTrip(t *testing.T) {
	for _, p := range []PresetKind{PresetBaseline, PresetLowCarbonGrid, PresetCustom} {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var got PresetKind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, p, got)
	}

	_, err := PresetKind(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestManualFactors_Merge(t *testing.T) {
	base := &ManualFactors{Electricity: ptr(0.3), Gas: ptr(0.2)}
	overlay := &ManualFactors{Gas: ptr(0.5), Car: ptr(0.1)}

	got := base.Merge(overlay)

	assert.InDelta(t, 0.3, *got.Electricity, tolerance)
	assert.InDelta(t, 0.5, *got.Gas, tolerance)
	assert.InDelta(t, 0.1, *got.Car, tolerance)
	assert.Nil(t, got.Flight)
	assert.InDelta(t, 0.2, *base.Gas, tolerance, "receiver is not modified")

	var nilManual *ManualFactors
	assert.Equal(t, []string{"flight"}, nilManual.Merge(got).Missing())
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 3)

	assert.Equal(t, PresetBaseline, presets[0].Kind)
	require.NotNil(t, presets[0].Factors)
	assert.Equal(t, DefaultFactors(), *presets[0].Factors)

	assert.Equal(t, PresetLowCarbonGrid, presets[1].Kind)
	require.NotNil(t, presets[1].Factors)
	assert.InDelta(t, 0.20, presets[1].Factors.Electricity, tolerance)

	assert.Equal(t, PresetCustom, presets[2].Kind)
	assert.Nil(t, presets[2].Factors)
}
