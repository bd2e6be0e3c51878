package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/export"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/render"
)

// NewPresetsCmd creates the presets command, which lists the emission factor
// presets.
func NewPresetsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List emission factor presets",
		Example: `  # Show presets as a table
  footprint presets

  # Show presets as JSON
  footprint presets --output json`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets := footprint.Presets()

			switch strings.ToLower(output) {
			case config.FormatJSON:
				return export.WriteJSONValue(cmd.OutOrStdout(), presets)
			case config.FormatTable:
				return writePresetTable(cmd, presets)
			default:
				return inputError(fmt.Errorf("unsupported output format %q (expected table or json)", output))
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", config.FormatTable, "output format: table or json")
	return cmd
}

func writePresetTable(cmd *cobra.Command, presets []footprint.PresetInfo) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tELECTRICITY\tGAS\tCAR\tFLIGHT\tDESCRIPTION")
	for _, p := range presets {
		if p.Factors == nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", p.Name, p.Description)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Name,
			render.FormatFloat(p.Factors.Electricity, 2),
			render.FormatFloat(p.Factors.Gas, 2),
			render.FormatFloat(p.Factors.Car, 2),
			render.FormatFloat(p.Factors.Flight, 2),
			p.Description,
		)
	}
	return tw.Flush()
}
