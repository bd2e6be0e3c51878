package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/export"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/render"
	"github.com/rshade/footprint/internal/tui"
)

// calculateParams holds the flag values of the calculate command.
type calculateParams struct {
	input   footprint.ConsumptionInput
	factors footprint.FactorSet

	preset      string
	output      string
	unit        string
	exportPath  string
	interactive bool
	plain       bool
}

// Flags whose presence, not value, decides custom factor entry.
const (
	flagElectricityFactor = "electricity-factor"
	flagGasFactor         = "gas-factor"
	flagCarFactor         = "car-factor"
	flagFlightFactor      = "flight-factor"
)

// NewCalculateCmd creates the calculate command.
func NewCalculateCmd() *cobra.Command {
	var params calculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate an annual carbon footprint",
		Long: `Calculates annual CO₂ emissions for electricity, natural gas, car travel and
flights, classifies the total against the world per-capita average and compares
it with the Australian and world benchmarks.

Quantities not given on the command line come from the config file defaults.
The custom preset uses only the factors you supply: every one of
--electricity-factor, --gas-factor, --car-factor and --flight-factor must be
set, either as a flag or in the config file's factors section.`,
		Example: `  # Default household
  footprint calculate

  # Your own usage, results in tonnes
  footprint calculate --electricity 4200 --gas 0 --car 8000 --flight 0 --unit t

  # Custom emission factors, JSON output
  footprint calculate --preset custom --electricity-factor 0.5 --gas-factor 0.2 \
    --car-factor 0.15 --flight-factor 0.1 --output json

  # Write the per-category CSV alongside the report
  footprint calculate --export emissions.csv`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, params)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&params.input.ElectricityKWh, "electricity", footprint.DefaultElectricityKWh,
		"annual electricity use in kWh")
	f.Float64Var(&params.input.GasKWh, "gas", footprint.DefaultGasKWh, "annual natural gas use in kWh")
	f.Float64Var(&params.input.CarKm, "car", footprint.DefaultCarKm, "annual car travel in km")
	f.Float64Var(&params.input.FlightKm, "flight", footprint.DefaultFlightKm, "annual flight travel in km")

	f.StringVar(&params.preset, "preset", footprint.PresetBaseline.String(),
		"emission factor preset: baseline, low-carbon-grid or custom")
	f.Float64Var(&params.factors.Electricity, flagElectricityFactor, 0, "custom electricity factor (kg CO₂/kWh)")
	f.Float64Var(&params.factors.Gas, flagGasFactor, 0, "custom natural gas factor (kg CO₂/kWh)")
	f.Float64Var(&params.factors.Car, flagCarFactor, 0, "custom car factor (kg CO₂/km)")
	f.Float64Var(&params.factors.Flight, flagFlightFactor, 0, "custom flight factor (kg CO₂/km)")

	f.StringVar(&params.output, "output", config.FormatTable, "output format: table, json or csv")
	f.StringVar(&params.unit, "unit", string(footprint.UnitKg), "display unit for the table: kg, t or lb")
	f.StringVar(&params.exportPath, "export", "", "also write the per-category CSV to this file")
	f.BoolVarP(&params.interactive, "interactive", "i", false, "enter values in an interactive form")
	f.BoolVar(&params.plain, "plain", false, "disable colours and box drawing")

	return cmd
}

// runCalculate resolves flags against the loaded config, assesses the input
// and writes the result.
func runCalculate(cmd *cobra.Command, params calculateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.FromContext(ctx)

	input := mergeInput(cmd, params.input, cfg.Defaults)

	presetName := cfg.Preset
	if cmd.Flags().Changed("preset") {
		presetName = params.preset
	}
	kind, err := footprint.ParsePreset(presetName)
	if err != nil {
		return inputError(err)
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("output") {
		format = strings.ToLower(params.output)
	}
	if format != config.FormatTable && format != config.FormatJSON && format != config.FormatCSV {
		return inputError(fmt.Errorf("unsupported output format %q (expected table, json or csv)", format))
	}

	unitName := cfg.Output.Unit
	if cmd.Flags().Changed("unit") {
		unitName = params.unit
	}
	unit, err := footprint.ParseUnit(unitName)
	if err != nil {
		return inputError(err)
	}

	preset := footprint.Preset{
		Kind:   kind,
		Manual: cfg.Factors.Merge(manualFromFlags(cmd, params.factors)),
	}

	if params.interactive {
		form, formErr := tui.RunForm(ctx, tui.FormOptions{
			Input:      input,
			Preset:     preset,
			Benchmarks: cfg.Benchmarks,
			Unit:       unit,
			In:         cmd.InOrStdin(),
			Out:        cmd.OutOrStdout(),
		})
		if formErr != nil {
			return fmt.Errorf("running interactive form: %w", formErr)
		}
		if !form.Accepted {
			cmd.PrintErrln("Cancelled.")
			return nil
		}
		input, preset = form.Input, form.Preset
	}

	assessment, err := footprint.Assess(input, preset, cfg.Benchmarks)
	if err != nil {
		log.Debug().Err(err).Str("preset", preset.Kind.String()).Msg("assessment rejected")
		return inputError(err)
	}

	log.Debug().
		Str("preset", preset.Kind.String()).
		Float64("total_kg", assessment.Result.TotalKg).
		Str("verdict", assessment.Verdict.String()).
		Msg("footprint calculated")

	if err := writeAssessment(cmd.OutOrStdout(), assessment, format, unit, params.plain); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if params.exportPath != "" {
		if err := export.WriteCSVFile(params.exportPath, assessment.Result); err != nil {
			return fmt.Errorf("exporting CSV: %w", err)
		}
		log.Info().Str("path", params.exportPath).Msg("CSV exported")
		cmd.PrintErrf("Exported to %s\n", params.exportPath)
	}

	return nil
}

// mergeInput takes each quantity from its flag when set, otherwise from the
// configured defaults.
func mergeInput(cmd *cobra.Command, flags, defaults footprint.ConsumptionInput) footprint.ConsumptionInput {
	input := defaults
	if cmd.Flags().Changed("electricity") {
		input.ElectricityKWh = flags.ElectricityKWh
	}
	if cmd.Flags().Changed("gas") {
		input.GasKWh = flags.GasKWh
	}
	if cmd.Flags().Changed("car") {
		input.CarKm = flags.CarKm
	}
	if cmd.Flags().Changed("flight") {
		input.FlightKm = flags.FlightKm
	}
	return input
}

// manualFromFlags returns the factor flags the user set. Unset flags stay nil
// so the custom preset can report them as missing.
func manualFromFlags(cmd *cobra.Command, values footprint.FactorSet) *footprint.ManualFactors {
	manual := &footprint.ManualFactors{}
	if cmd.Flags().Changed(flagElectricityFactor) {
		manual.Electricity = &values.Electricity
	}
	if cmd.Flags().Changed(flagGasFactor) {
		manual.Gas = &values.Gas
	}
	if cmd.Flags().Changed(flagCarFactor) {
		manual.Car = &values.Car
	}
	if cmd.Flags().Changed(flagFlightFactor) {
		manual.Flight = &values.Flight
	}
	return manual
}

// writeAssessment renders a in the requested format.
func writeAssessment(w io.Writer, a footprint.Assessment, format string, unit footprint.Unit, plain bool) error {
	switch format {
	case config.FormatJSON:
		return export.WriteJSON(w, a)
	case config.FormatCSV:
		return export.WriteCSV(w, a.Result)
	default:
		return render.RenderReport(w, a, render.OptionsFor(w, unit, plain))
	}
}
