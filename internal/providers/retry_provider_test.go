package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"fantasy-squad-service/internal/domain"
)

type flakyPoolProvider struct {
	failures int
	calls    int
	players  []domain.Player
	err      error
}

func (p *flakyPoolProvider) FetchPlayers(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	p.calls++
	if p.calls <= p.failures {
		return nil, p.err
	}
	return p.players, nil
}

func (p *flakyPoolProvider) FetchGameweek(ctx context.Context) (domain.Gameweek, error) {
	_ = ctx
	p.calls++
	if p.calls <= p.failures {
		return domain.Gameweek{}, p.err
	}
	return domain.Gameweek{ID: 1}, nil
}

func TestRetryingProviderEventualSuccess(t *testing.T) {
	inner := &flakyPoolProvider{
		failures: 2,
		err:      errors.New("transient"),
		players:  []domain.Player{{ID: 1}},
	}
	provider := NewRetryingPoolProvider(inner, nil, nil, "test", 3, time.Millisecond)

	players, err := provider.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("unexpected players: %+v", players)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderGivesUpAtCap(t *testing.T) {
	inner := &flakyPoolProvider{
		failures: 10,
		err:      errors.New("down"),
	}
	provider := NewRetryingPoolProvider(inner, nil, nil, "test", 2, time.Millisecond)

	if _, err := provider.FetchPlayers(context.Background()); err == nil {
		t.Fatalf("expected failure after attempt cap")
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderStopsOnRateLimit(t *testing.T) {
	inner := &flakyPoolProvider{
		failures: 10,
		err:      &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: time.Minute},
	}
	provider := NewRetryingPoolProvider(inner, nil, nil, "test", 5, time.Millisecond)

	_, err := provider.FetchPlayers(context.Background())
	if _, ok := AsRateLimitError(err); !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("rate limit must not be retried, got %d attempts", inner.calls)
	}
}

func TestRetryingProviderGameweek(t *testing.T) {
	inner := &flakyPoolProvider{
		failures: 1,
		err:      errors.New("transient"),
	}
	provider := NewRetryingPoolProvider(inner, nil, nil, "test", 3, time.Millisecond)

	gw, err := provider.FetchGameweek(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gw.ID != 1 {
		t.Fatalf("unexpected gameweek: %+v", gw)
	}
}

func TestRateLimitedProviderHonorsCancel(t *testing.T) {
	inner := &flakyPoolProvider{players: []domain.Player{{ID: 1}}}
	provider := NewRateLimitedPoolProvider(inner, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := provider.FetchPlayers(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 0 {
		t.Fatalf("cancelled fetch must not reach the inner provider")
	}
}

func TestRateLimitedProviderAllowsAfterInterval(t *testing.T) {
	inner := &flakyPoolProvider{players: []domain.Player{{ID: 1}}}
	provider := NewRateLimitedPoolProvider(inner, 5*time.Millisecond, nil)

	players, err := provider.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("unexpected players: %+v", players)
	}
}

type closablePoolProvider struct {
	flakyPoolProvider
	closeCalls int
}

func (p *closablePoolProvider) Close() { p.closeCalls++ }

func TestRetryingProviderForwardsClose(t *testing.T) {
	inner := &closablePoolProvider{}
	provider := NewRetryingPoolProvider(inner, nil, nil, "test", 1, time.Millisecond)

	closer, ok := provider.(interface{ Close() })
	if !ok {
		t.Fatalf("expected retrying provider to expose Close")
	}
	closer.Close()
	if inner.closeCalls != 1 {
		t.Fatalf("expected inner close once, got %d", inner.closeCalls)
	}
}

func TestRateLimitedProviderClose(t *testing.T) {
	provider := NewRateLimitedPoolProvider(&flakyPoolProvider{}, time.Millisecond, nil)

	closer, ok := provider.(interface{ Close() })
	if !ok {
		t.Fatalf("expected rate-limited provider to expose Close")
	}
	closer.Close()
	closer.Close()
}
