package cache

import (
	"context"
	"testing"
)

func TestNilCacheAlwaysMisses(t *testing.T) {
	var c *PlayerDetailsCache

	if _, ok := c.Get(context.Background(), 42); ok {
		t.Fatalf("nil cache must miss")
	}
	if err := c.Set(context.Background(), 42, []byte(`{}`)); err != nil {
		t.Fatalf("nil cache set: %v", err)
	}
	if err := c.Invalidate(context.Background(), 42); err != nil {
		t.Fatalf("nil cache invalidate: %v", err)
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("nil cache health check: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("nil cache close: %v", err)
	}
}

func TestNewPlayerDetailsCacheRejectsBadURL(t *testing.T) {
	if _, err := NewPlayerDetailsCache("not-a-url", 0); err == nil {
		t.Fatalf("expected an error for an unparseable redis url")
	}
}

func TestDetailsKey(t *testing.T) {
	if got := detailsKey(17); got != "player:details:17" {
		t.Fatalf("unexpected key %q", got)
	}
}
