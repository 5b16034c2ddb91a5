package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/logging"
	"fantasy-squad-service/internal/metrics"
	"fantasy-squad-service/internal/providers"
)

const defaultInterval = 5 * time.Minute

// PoolSink receives refreshed pool data.
type PoolSink interface {
	SetPlayers(players []domain.Player)
	SetGameweek(gw domain.Gameweek)
}

// Poller refreshes the player pool and current gameweek on an interval so
// squad edits always price against fresh data.
type Poller struct {
	provider providers.PoolProvider
	sink     PoolSink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.PoolProvider, sink PoolSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Status returns a copy of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	players, err := p.provider.FetchPlayers(ctx)
	if err == nil {
		p.sink.SetPlayers(players)
		if gw, gwErr := p.provider.FetchGameweek(ctx); gwErr == nil {
			p.sink.SetGameweek(gw)
		} else {
			err = gwErr
		}
	}

	duration := time.Since(start)
	p.metrics.RecordPollerCycle(duration, err)

	if err != nil {
		p.recordFailure(err)
		p.logWarn("pool refresh failed", slog.Any("err", err))
		return
	}

	p.recordSuccess(p.now())
	p.logInfo("pool refreshed",
		slog.Int(logging.FieldCount, len(players)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordFailure(err error) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastError = err.Error()
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logWarn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
