// Package logging configures zerolog loggers for the footprint CLI and API.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations and formats accepted in Config.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"

	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

// Config describes how a logger is built.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // json, console or text
	Output string // stderr, stdout or file
	File   string // path used when Output is "file"
	Caller bool
}

// DefaultConfig returns warn-level console logging to stderr. The CLI prints
// results on stdout, so the default keeps stderr quiet.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatConsole,
		Output: OutputStderr,
	}
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger         zerolog.Logger
	FilePath       string
	UsingFile      bool
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close closes the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger from cfg, discarding file-path details.
func NewLogger(cfg Config) zerolog.Logger {
	return NewLoggerWithPath(cfg).Logger
}

// NewLoggerWithPath builds a logger from cfg.
//
// Unknown levels fall back to info. When Output is "file" and the file cannot
// be opened, the logger writes to stderr and FallbackUsed is set.
func NewLoggerWithPath(cfg Config) LogPathResult {
	lvl := ParseLevel(cfg.Level)

	var (
		out    io.Writer = os.Stderr
		result LogPathResult
	)

	switch strings.ToLower(cfg.Output) {
	case OutputStdout:
		out = os.Stdout
	case OutputFile:
		if cfg.File == "" {
			result.FallbackUsed = true
			result.FallbackReason = "no log file configured"
			break
		}
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
			break
		}
		out = f
		result.file = f
		result.UsingFile = true
		result.FilePath = cfg.File
	}

	result.Logger = newLogger(out, cfg.Format, lvl, cfg.Caller)
	return result
}

// NewWriterLogger builds a logger that writes to w. Tests use it to capture
// log output.
func NewWriterLogger(w io.Writer, cfg Config) zerolog.Logger {
	return newLogger(w, cfg.Format, ParseLevel(cfg.Level), cfg.Caller)
}

func newLogger(out io.Writer, format string, lvl zerolog.Level, caller bool) zerolog.Logger {
	switch strings.ToLower(format) {
	case FormatConsole, FormatText:
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    strings.EqualFold(format, FormatText),
		}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
// A trace ID stored in ctx is attached to the returned logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		l := logger.With().Str("trace_id", traceID).Logger()
		return &l
	}
	return logger
}

// PrintLogPathMessage tells the user where logs are written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning reports that file logging was requested but unavailable.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
