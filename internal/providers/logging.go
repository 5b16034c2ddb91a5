package providers

import (
	"context"
	"log/slog"
)

// logWithProvider logs with the provider name attached. A nil logger is a no-op.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
