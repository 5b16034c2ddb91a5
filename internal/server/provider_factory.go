package server

import (
	"log/slog"
	"net/http"

	"fantasy-squad-service/internal/config"
	"fantasy-squad-service/internal/metrics"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/providers/fantasyapi"
)

// providerFactory assembles the upstream client and the decorators around
// its pool side. Only background pool fetches are wrapped: squad mutations
// and chip activations must reach the backend at most once per request, so
// they are never retried here.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (*fantasyapi.Client, providers.PoolProvider) {
	client := fantasyapi.NewClient(fantasyapi.Config{
		BaseURL:      cfg.Fantasy.BaseURL,
		ServiceToken: cfg.Fantasy.ServiceToken,
		UserAgent:    cfg.Fantasy.UserAgent,
		HTTPClient:   &http.Client{Timeout: cfg.Fantasy.Timeout},
	})

	var pool providers.PoolProvider = client
	if cfg.Fantasy.RateLimited {
		pool = providers.NewRateLimitedPoolProvider(pool, cfg.Fantasy.RateLimitInterval, f.logger)
	}
	pool = providers.NewRetryingPoolProvider(pool, f.logger, f.metrics, fantasyapi.ProviderName, cfg.Fantasy.MaxRetries, cfg.Fantasy.RetryWait)
	return client, pool
}
