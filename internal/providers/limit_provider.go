package providers

import (
	"context"
	"log/slog"
	"time"

	"fantasy-squad-service/internal/domain"
)

// rateLimitedPoolProvider enforces a minimum interval between pool
// fetches. Calls block until the interval elapses to avoid exceeding
// upstream quotas.
type rateLimitedPoolProvider struct {
	next     PoolProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedPoolProvider returns a PoolProvider that limits calls to
// the given interval.
func NewRateLimitedPoolProvider(next PoolProvider, interval time.Duration, logger *slog.Logger) PoolProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedPoolProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedPoolProvider) FetchPlayers(ctx context.Context) ([]domain.Player, error) {
	if err := p.wait(ctx, "players"); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx)
}

func (p *rateLimitedPoolProvider) FetchGameweek(ctx context.Context) (domain.Gameweek, error) {
	if err := p.wait(ctx, "gameweek"); err != nil {
		return domain.Gameweek{}, err
	}
	return p.next.FetchGameweek(ctx)
}

// Close stops the interval ticker.
func (p *rateLimitedPoolProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedPoolProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "fetch canceled", slog.String("op", op))
		return ctx.Err()
	case <-p.ticker.C:
	}
	return nil
}
