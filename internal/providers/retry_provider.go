package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/logging"
	"fantasy-squad-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultRetryWait     = 200 * time.Millisecond
)

// retryingPoolProvider wraps a PoolProvider with exponential backoff.
// Only the read-only pool surface is retried; mutating squad and chip
// calls always fail fast to the user.
type retryingPoolProvider struct {
	inner       PoolProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	initialWait time.Duration
}

// NewRetryingPoolProvider wraps the given provider with retries. If
// maxAttempts/initialWait are <= 0, defaults are used.
func NewRetryingPoolProvider(inner PoolProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialWait time.Duration) PoolProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialWait <= 0 {
		initialWait = defaultRetryWait
	}
	return &retryingPoolProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		initialWait: initialWait,
	}
}

func (r *retryingPoolProvider) FetchPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []domain.Player
	err := r.retry(ctx, "players", func() error {
		var fetchErr error
		players, fetchErr = r.inner.FetchPlayers(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *retryingPoolProvider) FetchGameweek(ctx context.Context) (domain.Gameweek, error) {
	var gw domain.Gameweek
	err := r.retry(ctx, "gameweek", func() error {
		var fetchErr error
		gw, fetchErr = r.inner.FetchGameweek(ctx)
		return fetchErr
	})
	if err != nil {
		return domain.Gameweek{}, err
	}
	return gw, nil
}

// Close releases resources held by the wrapped provider, if any.
func (r *retryingPoolProvider) Close() {
	if c, ok := r.inner.(interface{ Close() }); ok {
		c.Close()
	}
}

func (r *retryingPoolProvider) retry(ctx context.Context, op string, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialWait

	attempt := 0
	wrapped := func() error {
		attempt++
		start := time.Now()
		err := fn()
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			// Honor the upstream quota instead of hammering it.
			r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			return backoff.Permanent(err)
		}
		if attempt >= r.maxAttempts {
			return backoff.Permanent(err)
		}
		r.logWarn(ctx, "upstream fetch retry",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any("err", err),
		)
		return err
	}

	err := backoff.Retry(wrapped, backoff.WithContext(bo, ctx))
	if err != nil {
		r.logWarn(ctx, "upstream fetch failed",
			slog.String("op", op),
			slog.Int("attempts", attempt),
			slog.Any("err", err),
		)
	}
	return err
}

func (r *retryingPoolProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
