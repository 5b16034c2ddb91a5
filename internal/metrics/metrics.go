package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type domainStats struct {
	transfersConfirmed  int
	pointsDeducted      int
	validationFailures  map[string]int
	chipActivations     map[string]int
	submissionsAccepted int
}

// Recorder captures lightweight, in-memory metrics about upstream calls
// and squad operations. It is intentionally simple so it can be swapped
// for a real backend later.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*providerStats
	domain domainStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		domain: domainStats{
			validationFailures: make(map[string]int),
			chipActivations:    make(map[string]int),
		},
		otel: otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordTransfersConfirmed tracks a successful transfer confirmation.
func (r *Recorder) RecordTransfersConfirmed(count, pointsCost int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.domain.transfersConfirmed += count
	r.domain.pointsDeducted += pointsCost
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordTransfersConfirmed(count, pointsCost)
	}
}

// RecordValidationFailure tracks a squad legality check that blocked an action.
func (r *Recorder) RecordValidationFailure(rule string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.domain.validationFailures[rule]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordValidationFailure(rule)
	}
}

// RecordChipActivation tracks a chip activation accepted upstream.
func (r *Recorder) RecordChipActivation(chip string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.domain.chipActivations[chip]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordChipActivation(chip)
	}
}

// RecordSubmissionAccepted tracks a new-team submission accepted upstream.
func (r *Recorder) RecordSubmissionAccepted() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.domain.submissionsAccepted++
	r.mu.Unlock()
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// TransfersConfirmed returns the total confirmed transfers recorded.
func (r *Recorder) TransfersConfirmed() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.domain.transfersConfirmed
}

// ValidationFailures returns the count recorded for one rule.
func (r *Recorder) ValidationFailures(rule string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.domain.validationFailures[rule]
}

// ChipActivations returns the count recorded for one chip.
func (r *Recorder) ChipActivations(chip string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.domain.chipActivations[chip]
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
