package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// LogSchemaVersion identifies the record layout of the per-run JSON log.
const LogSchemaVersion = 1

// Options configures the logging system for a single run.
type Options struct {
	// Level is the minimum level for stderr diagnostics: debug, info, warn
	// or error. Empty defaults to warn.
	Level string

	// LogDir is the directory for per-run JSON log files. Empty disables
	// file logging.
	LogDir string

	// RunID identifies this run in log records and the log filename.
	RunID string

	// Quiet raises the stderr threshold to error regardless of Level.
	Quiet bool
}

// Setup initializes the default slog logger.
//
// Diagnostics are written as text to stderr so stdout stays reserved for
// report output. When Options.LogDir is set, a machine-readable JSON log is
// additionally written to a per-run file; the file log captures all levels
// regardless of the stderr threshold.
func Setup(opts Options) error {
	var handlers []slog.Handler
	var invalidLogLevel bool

	stderrLevel := slog.LevelWarn
	if opts.Level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(opts.Level)); err != nil {
			invalidLogLevel = true // Keep the warn default on parse error
		} else {
			stderrLevel = parsed
		}
	}
	if opts.Quiet && stderrLevel < slog.LevelError {
		stderrLevel = slog.LevelError
	}

	textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: stderrLevel,
	})
	handlers = append(handlers, textHandler)

	if opts.LogDir != "" {
		if err := ValidateLogDir(opts.LogDir); err != nil {
			return fmt.Errorf("invalid log directory: %w", err)
		}

		logPath := GenerateLogFilename(opts.LogDir, opts.RunID)
		logF, err := OpenLogFile(logPath)
		if err != nil {
			return err
		}

		jsonHandler := slog.NewJSONHandler(logF, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})

		// Attach common attributes
		hostname, _ := os.Hostname()
		enrichedHandler := jsonHandler.WithAttrs([]slog.Attr{
			slog.String("hostname", hostname),
			slog.Int("pid", os.Getpid()),
			slog.Int("schema_version", LogSchemaVersion),
			slog.String("run_id", opts.RunID),
		})
		handlers = append(handlers, enrichedHandler)
	}

	multiHandler := NewMultiHandler(handlers...)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	slog.Debug("Logger initialized",
		"log-level", opts.Level,
		"log-dir", opts.LogDir,
		"run_id", opts.RunID)

	// Warn about invalid log level after logger is properly set up
	if invalidLogLevel {
		slog.Warn("Invalid log level provided, defaulting to WARN", "provided", opts.Level)
	}

	return nil
}
