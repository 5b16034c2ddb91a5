package server

import (
	"context"
	"log/slog"
	"net/http"

	"fantasy-squad-service/internal/app/chips"
	"fantasy-squad-service/internal/app/squads"
	"fantasy-squad-service/internal/cache"
	"fantasy-squad-service/internal/config"
	"fantasy-squad-service/internal/history"
	httpserver "fantasy-squad-service/internal/http"
	"fantasy-squad-service/internal/http/handlers"
	"fantasy-squad-service/internal/http/middleware"
	"fantasy-squad-service/internal/logging"
	"fantasy-squad-service/internal/metrics"
	"fantasy-squad-service/internal/poller"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/snapshots"
	"fantasy-squad-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the assembled service: provider stack, stores, app
// services, poller, and the HTTP and metrics listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	squadService  *squads.Service
	chipService   *chips.Service
	history       history.Recorder
	detailsCache  *cache.PlayerDetailsCache
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	poolProvider  providers.PoolProvider
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)

	client, pool := newProviderFactory(logger, recorder).build(cfg)

	memoryStore := store.NewMemoryStore()
	historyRec := buildHistory(cfg, logger)
	detailsCache := buildDetailsCache(cfg, logger)
	writer := buildSnapshotWriter(cfg)

	squadSvc := squads.NewService(memoryStore, client, client, writer, historyRec, logger, recorder)
	chipSvc := chips.NewService(memoryStore, client, historyRec, logger, recorder)

	plr := poller.New(pool, memoryStore, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, memoryStore, squadSvc, chipSvc, client, pool, detailsCache, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		squadService:  squadSvc,
		chipService:   chipSvc,
		history:       historyRec,
		detailsCache:  detailsCache,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		poolProvider:  pool,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, squadSvc *squads.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		squadService: squadSvc,
		httpServer:   httpSrv,
		poller:       plr,
	}
}

func buildHistory(cfg config.Config, logger *slog.Logger) history.Recorder {
	if cfg.History.DBPath == "" {
		return history.NewNoopRecorder()
	}
	rec, err := history.NewSQLiteRecorder(cfg.History.DBPath)
	if err != nil {
		if logger != nil {
			logger.Warn("history database unavailable, continuing without history", "err", err)
		}
		return history.NewNoopRecorder()
	}
	return rec
}

func buildDetailsCache(cfg config.Config, logger *slog.Logger) *cache.PlayerDetailsCache {
	if cfg.Cache.RedisURL == "" {
		return nil
	}
	c, err := cache.NewPlayerDetailsCache(cfg.Cache.RedisURL, cfg.Cache.TTL)
	if err != nil {
		if logger != nil {
			logger.Warn("redis unavailable, continuing without details cache", "err", err)
		}
		return nil
	}
	return c
}

func buildSnapshotWriter(cfg config.Config) *snapshots.Writer {
	if cfg.Snapshots.BasePath == "" {
		return nil
	}
	return snapshots.NewWriter(cfg.Snapshots.BasePath, cfg.Snapshots.RetentionGameweeks)
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, squadSvc *squads.Service, chipSvc *chips.Service, details providers.DetailsProvider, pool providers.PoolProvider, detailsCache *cache.PlayerDetailsCache, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	var snapStore snapshots.Store
	if cfg.Snapshots.BasePath != "" {
		snapStore = snapshots.NewFSStore(cfg.Snapshots.BasePath)
	}

	handler := handlers.NewHandler(squadSvc, chipSvc, memoryStore, details, detailsCache, snapStore, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" {
		admin = handlers.NewAdminHandler(pool, memoryStore, cfg.Snapshots.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop the rate-limited provider ticker when one is configured.
	if rl, ok := s.poolProvider.(interface{ Close() }); ok {
		rl.Close()
	}

	if s.history != nil {
		if err := s.history.Close(); err != nil && s.logger != nil {
			s.logger.Warn("history close failed", "error", err)
		}
	}
	if err := s.detailsCache.Close(); err != nil && s.logger != nil {
		s.logger.Warn("details cache close failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
