package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

// setupLogging configures logging from the loaded config and CLI flags and
// stores the logger and a trace ID in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.LogPathResult {
	loggingCfg := cfg.Logging.ToLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.Output = logging.OutputStderr
		loggingCfg.File = ""
	}

	// Console destinations go through cobra's writers so tests can capture them.
	var result logging.LogPathResult
	switch loggingCfg.Output {
	case logging.OutputFile:
		result = logging.NewLoggerWithPath(loggingCfg)
	case logging.OutputStdout:
		result.Logger = logging.NewWriterLogger(cmd.OutOrStdout(), loggingCfg)
	default:
		result.Logger = logging.NewWriterLogger(cmd.ErrOrStderr(), loggingCfg)
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("config", cfg.ConfigPath()).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
