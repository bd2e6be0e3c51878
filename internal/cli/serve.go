package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/api"
	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

// NewServeCmd creates the serve command, which runs the HTTP API until
// interrupted.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the footprint HTTP API",
		Long: `Serves the calculator over HTTP:

  GET  /health
  GET  /api/v1/presets
  POST /api/v1/calculate
  POST /api/v1/export`,
		Example: `  # Listen on the configured address (default :8080)
  footprint serve

  # Listen on localhost only
  footprint serve --addr 127.0.0.1:9090`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := config.FromContext(ctx)
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return inputError(fmt.Errorf("listening on %s: %w", cfg.Server.Addr, err))
			}

			log := logging.FromContext(ctx)
			handler := api.NewRouter(api.Options{
				Benchmarks:     cfg.Benchmarks,
				AllowedOrigins: cfg.Server.AllowedOrigins,
				Logger:         logging.ComponentLogger(*log, "api"),
				Version:        cmd.Root().Version,
			})

			cmd.PrintErrf("Listening on %s\n", ln.Addr())
			return api.Serve(ctx, ln, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
