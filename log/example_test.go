package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/jtl-lang/jtl/log"
)

func Example_basic() {
	logger := log.Make(log.WithOutput(os.Stdout))
	logger.Info("parser started", slog.String("version", "0.1.0"))
}

func Example_configuration() {
	logger := log.Make(
		log.WithOutput(os.Stdout),
		log.WithLevel(log.LevelDebug),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true),
	)

	logger.Debug("debug message with caller info")
}

func Example_levels() {
	logger := log.Make(log.WithOutput(os.Stdout), log.WithLevel(log.LevelWarn))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message", slog.String("key", "value"))
	logger.Error("error message", slog.String("error", "something failed"))
}

func Example_withAttributes() {
	// Create a logger with persistent attributes
	logger := log.Make(log.WithOutput(os.Stdout))
	logger = logger.With(slog.String("source", "input.jtl"))

	logger.Info("parsing document")
	logger.Debug("document details", slog.Int("statements", 12))
}

func Example_withContext() {
	type requestIDKey struct{}

	// Create a context with a request ID
	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(log.WithOutput(os.Stdout))

	// Use context-aware logging methods
	logger.InfoContext(ctx, "parsing with context")
	logger.DebugContext(ctx, "document details", slog.String("source", "stdin"))
}
