package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/export"
	"github.com/rshade/footprint/internal/footprint"
)

// setupCLITest points the config at an isolated path and returns it.
func setupCLITest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv("FOOTPRINT_LOG_LEVEL", "error")
	return path
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalculate_DefaultTable(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "calculate")
	require.NoError(t, err)

	assert.Contains(t, out, "EMISSIONS (kg CO₂)")
	assert.Contains(t, out, "1,110.00")
	assert.Contains(t, out, "3,930.00")
	assert.Contains(t, out, "Total: 3.93 t CO₂/year")
	assert.Contains(t, out, "Verdict: Average")
	assert.Contains(t, out, "World average: 81.9% of 4.80 t")
}

func TestCalculate_CSVOutput(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "calculate", "--output", "csv")
	require.NoError(t, err)

	want := "Category,Emissions (kg CO₂)\n" +
		"Electricity,1110\n" +
		"Natural Gas,180\n" +
		"Car Travel,2280\n" +
		"Flights,360\n" +
		"TOTAL,3930\n"
	assert.Equal(t, want, out)
}

func TestCalculate_JSONOutput(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "calculate", "--output", "json", "--preset", "low-carbon-grid")
	require.NoError(t, err)

	var got struct {
		Preset      string  `json:"preset"`
		TotalTonnes float64 `json:"total_tonnes"`
		Verdict     string  `json:"verdict"`
		Factors     struct {
			Electricity float64 `json:"electricity"`
		} `json:"factors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "low-carbon-grid", got.Preset)
	assert.InDelta(t, 3.42, got.TotalTonnes, 1e-9)
	assert.Equal(t, "Low", got.Verdict)
	assert.InDelta(t, 0.20, got.Factors.Electricity, 1e-9)
}

func TestCalculate_QuantityFlags(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "calculate", "--output", "csv",
		"--electricity", "0", "--gas", "0", "--car", "0", "--flight", "40000")
	require.NoError(t, err)
	assert.Contains(t, out, "Electricity,0\n")
	assert.Contains(t, out, "TOTAL,4800\n")
}

func TestCalculate_ConfigDefaults(t *testing.T) {
	path := setupCLITest(t)
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  car_km: 0\noutput:\n  format: csv\n"), 0o600))

	out, _, err := execute(t, "calculate", "--flight", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Car Travel,0\n")
	assert.Contains(t, out, "Electricity,1110\n", "unset quantities keep built-in defaults")
	assert.Contains(t, out, "TOTAL,1290\n")
}

func TestCalculate_CustomPreset(t *testing.T) {
	t.Run("all factors supplied", func(t *testing.T) {
		setupCLITest(t)

		out, _, err := execute(t, "calculate", "--output", "csv", "--preset", "custom",
			"--electricity-factor", "0.5", "--gas-factor", "0.2",
			"--car-factor", "0.15", "--flight-factor", "0.1")
		require.NoError(t, err)
		assert.Contains(t, out, "Electricity,1500\n")
		assert.Contains(t, out, "TOTAL,3800\n")
	})

	t.Run("explicit zero counts as supplied", func(t *testing.T) {
		setupCLITest(t)

		out, _, err := execute(t, "calculate", "--output", "csv", "--preset", "custom",
			"--electricity-factor", "0", "--gas-factor", "0",
			"--car-factor", "0", "--flight-factor", "0")
		require.NoError(t, err)
		assert.Contains(t, out, "TOTAL,0\n")
	})

	t.Run("missing factors fail with input exit code", func(t *testing.T) {
		setupCLITest(t)

		_, _, err := execute(t, "calculate", "--preset", "custom", "--electricity-factor", "0.5")
		require.Error(t, err)
		assert.ErrorIs(t, err, footprint.ErrMissingCustomFactor)
		assert.Equal(t, cli.ExitInput, cli.ExitCode(err))
		assert.Contains(t, err.Error(), "gas")
		assert.Contains(t, err.Error(), "flight")
	})

	t.Run("config factors complement flags", func(t *testing.T) {
		path := setupCLITest(t)
		require.NoError(t, os.WriteFile(path,
			[]byte("preset: custom\nfactors:\n  gas: 0.2\n  car: 0.15\n  flight: 0.1\n"), 0o600))

		out, _, err := execute(t, "calculate", "--output", "csv", "--electricity-factor", "0.5")
		require.NoError(t, err)
		assert.Contains(t, out, "TOTAL,3800\n")
	})

	t.Run("factor flags ignored for baseline", func(t *testing.T) {
		setupCLITest(t)

		out, _, err := execute(t, "calculate", "--output", "csv", "--electricity-factor", "9")
		require.NoError(t, err)
		assert.Contains(t, out, "TOTAL,3930\n")
	})
}

func TestCalculate_InputErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"negative quantity", []string{"calculate", "--car", "-1"}, "car_km"},
		{"negative custom factor", []string{
			"calculate", "--preset", "custom", "--electricity-factor", "-0.1",
			"--gas-factor", "0", "--car-factor", "0", "--flight-factor", "0",
		}, "electricity_factor"},
		{"unknown preset", []string{"calculate", "--preset", "solar"}, "unknown preset"},
		{"bad unit", []string{"calculate", "--unit", "stone"}, "stone"},
		{"bad output", []string{"calculate", "--output", "xml"}, "xml"},
		{"unknown flag", []string{"calculate", "--bogus"}, "bogus"},
		{"not a number", []string{"calculate", "--gas", "lots"}, "lots"},
		{"mistyped subcommand", []string{"calculat"}, "calculat"},
		{"extra argument", []string{"calculate", "extra"}, "extra"},
		{"extra argument to presets", []string{"presets", "all"}, "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Equal(t, cli.ExitInput, cli.ExitCode(err))
		})
	}
}

func TestCalculate_Export(t *testing.T) {
	setupCLITest(t)
	exportPath := filepath.Join(t.TempDir(), "emissions.csv")

	_, stderr, err := execute(t, "calculate", "--export", exportPath, "--unit", "t")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Exported to "+exportPath)

	f, err := os.Open(exportPath)
	require.NoError(t, err)
	defer f.Close()

	result, err := export.ReadCSV(f)
	require.NoError(t, err)
	assert.InDelta(t, 3930.0, result.TotalKg, 1e-9, "the export is always in kilograms")
}

func TestCalculate_ExportBadPath(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "calculate", "--export", filepath.Join(t.TempDir(), "missing", "x.csv"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitInternal, cli.ExitCode(err))
}

func TestCalculate_InvalidConfig(t *testing.T) {
	path := setupCLITest(t)
	require.NoError(t, os.WriteFile(path, []byte("preset: solar\n"), 0o600))

	_, _, err := execute(t, "calculate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
	assert.Equal(t, cli.ExitInput, cli.ExitCode(err))
}

func TestPresets(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "presets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "PRESET"))
	assert.True(t, strings.HasPrefix(lines[1], "baseline"))
	assert.Contains(t, lines[1], "0.37")
	assert.True(t, strings.HasPrefix(lines[2], "low-carbon-grid"))
	assert.Contains(t, lines[2], "0.20")
	assert.True(t, strings.HasPrefix(lines[3], "custom"))
}

func TestPresets_JSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "presets", "--output", "json")
	require.NoError(t, err)

	var presets []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &presets))
	require.Len(t, presets, 3)
	assert.Equal(t, "custom", presets[2]["kind"])
}

func TestConfigInit(t *testing.T) {
	path := setupCLITest(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, footprint.DefaultConsumption(), cfg.Defaults)

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, cli.ExitInput, cli.ExitCode(err))

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_ConfigFlag(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "footprint.yaml")

	_, _, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestConfigInit_OverwritesBrokenConfig(t *testing.T) {
	path := setupCLITest(t)
	require.NoError(t, os.WriteFile(path, []byte("defaults: ["), 0o600))

	_, stderr, err := execute(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: ignoring unreadable config")

	_, err = config.Load(path)
	assert.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	path := setupCLITest(t)
	require.NoError(t, os.WriteFile(path, []byte("preset: low-carbon-grid\n"), 0o600))
	t.Setenv("FOOTPRINT_UNIT", "t")

	out, _, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# "+path)
	assert.Contains(t, out, "preset: low-carbon-grid")
	assert.Contains(t, out, "unit: t")
}

func TestDebugFlagLogs(t *testing.T) {
	setupCLITest(t)

	_, stderr, err := execute(t, "--debug", "calculate", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, stderr, "footprint calculated")
}
