package debugctx

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

type enabledKey struct{}
type loggerKey struct{}

func NewLogger(writer io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(writer, log.Options{
		Level:           level,
		Prefix:          "nfvctl",
		ReportTimestamp: debug,
		ReportCaller:    false,
	})
}

func WithEnabled(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, enabledKey{}, enabled)
}

func Enabled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	enabled, _ := ctx.Value(enabledKey{}).(bool)
	return enabled
}

func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if logger == nil {
		return ctx
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

func Logger(ctx context.Context) *log.Logger {
	if ctx == nil {
		return nil
	}

	logger, _ := ctx.Value(loggerKey{}).(*log.Logger)
	return logger
}

func Printf(ctx context.Context, format string, args ...any) {
	if !Enabled(ctx) {
		return
	}

	logger := Logger(ctx)
	if logger == nil {
		return
	}

	message := strings.TrimSpace(fmt.Sprintf(format, args...))
	if message == "" {
		return
	}

	logger.Debug(message)
}

// Warnf is emitted regardless of --debug.
func Warnf(ctx context.Context, format string, args ...any) {
	logger := Logger(ctx)
	if logger == nil {
		return
	}

	message := strings.TrimSpace(fmt.Sprintf(format, args...))
	if message == "" {
		return
	}

	logger.Warn(message)
}
