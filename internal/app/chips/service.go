// Package chips surfaces chip state and forwards activations. The backend
// owns chip policy (usage counts, one-active-at-a-time); this service only
// rejects requests that cannot possibly be valid, and treats everything
// else as the backend's call.
package chips

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fantasy-squad-service/internal/app/squads"
	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/history"
	"fantasy-squad-service/internal/logging"
	"fantasy-squad-service/internal/metrics"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/store"
)

// ErrUnknownChip is returned for a chip name this client does not know.
var ErrUnknownChip = errors.New("unknown chip")

// Service proxies chip status and activation.
type Service struct {
	store    *store.MemoryStore
	provider providers.ChipProvider
	recorder history.Recorder
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. The recorder may be nil.
func NewService(st *store.MemoryStore, provider providers.ChipProvider, recorder history.Recorder, logger *slog.Logger, rec *metrics.Recorder) *Service {
	if recorder == nil {
		recorder = history.NewNoopRecorder()
	}
	return &Service{
		store:    st,
		provider: provider,
		recorder: recorder,
		logger:   logger,
		metrics:  rec,
	}
}

// Status fetches the caller's chip state.
func (s *Service) Status(ctx context.Context, token string) (domain.ChipStatus, error) {
	if token == "" {
		return domain.ChipStatus{}, providers.ErrNotAuthenticated
	}
	return s.provider.FetchChipStatus(ctx, token)
}

// Activate requests chip activation upstream. Activation is irreversible
// once confirmed; there is deliberately no cancel path.
func (s *Service) Activate(ctx context.Context, token string, chip domain.ChipName) error {
	if token == "" {
		return providers.ErrNotAuthenticated
	}
	if !domain.KnownChip(chip) {
		return fmt.Errorf("%w: %q", ErrUnknownChip, chip)
	}

	if err := s.provider.ActivateChip(ctx, token, chip); err != nil {
		return fmt.Errorf("activate chip: %w", err)
	}

	logger := logging.FromContext(ctx, s.logger)
	logging.Info(logger, "chip activated", slog.String(logging.FieldChip, string(chip)))
	s.metrics.RecordChipActivation(string(chip))

	gw := s.store.Gameweek()
	if err := s.recorder.RecordChipActivation(&history.ChipRecord{
		UserKey:  squads.UserKey(token),
		Gameweek: gw.ID,
		Chip:     chip,
	}); err != nil {
		logging.Warn(logger, "chip history write failed", slog.Any("err", err))
	}
	return nil
}
