// Package squads orchestrates the squad-editing session: loading the
// confirmed snapshot, applying slot edits, previewing the transfer diff
// and its cost, and confirming against the game backend. All legality
// rules are mirrored locally so an illegal submission never reaches the
// network.
package squads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/history"
	"fantasy-squad-service/internal/logging"
	"fantasy-squad-service/internal/metrics"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/scoring"
	"fantasy-squad-service/internal/snapshots"
	"fantasy-squad-service/internal/store"
	"fantasy-squad-service/internal/transfers"
)

var (
	// ErrUnknownPlayer is returned when a fill references a player absent
	// from the pool snapshot.
	ErrUnknownPlayer = errors.New("player not found in pool")

	// ErrNothingToConfirm is returned when a confirmation is attempted
	// with no pending transfers.
	ErrNothingToConfirm = errors.New("no transfers to confirm")
)

// Preview is the reconciliation summary the UI renders before the user
// commits: who moves, what it costs, what remains in the bank, and
// whether confirmation is currently allowed.
type Preview struct {
	Out            []domain.Player `json:"out"`
	In             []domain.Player `json:"in"`
	PaidTransfers  int             `json:"paidTransfers"`
	PointsCost     int             `json:"pointsCost"`
	Bank           float64         `json:"bank"`
	Valid          bool            `json:"valid"`
	Violation      string          `json:"violation,omitempty"`
	ViolatedTeamID int             `json:"violatedTeamId,omitempty"`
	CanConfirm     bool            `json:"canConfirm"`
}

// PointsView is a completed gameweek's display state, including the
// reverse-derived captaincy highlight.
type PointsView struct {
	Gameweek           int             `json:"gameweek"`
	Players            []domain.Player `json:"players"`
	TotalPoints        int             `json:"totalPoints"`
	EffectiveCaptainID int             `json:"effectiveCaptainId,omitempty"`
	Multiplier         int             `json:"multiplier"`
}

// Service coordinates squad sessions against the store and the upstream
// backend.
type Service struct {
	store    *store.MemoryStore
	provider providers.SquadProvider
	chips    providers.ChipProvider
	snaps    *snapshots.Writer
	recorder history.Recorder
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service. Snapshots writer and recorder may be
// nil; both degrade to no persistence.
func NewService(st *store.MemoryStore, provider providers.SquadProvider, chips providers.ChipProvider, snaps *snapshots.Writer, recorder history.Recorder, logger *slog.Logger, rec *metrics.Recorder) *Service {
	if recorder == nil {
		recorder = history.NewNoopRecorder()
	}
	return &Service{
		store:    st,
		provider: provider,
		chips:    chips,
		snaps:    snaps,
		recorder: recorder,
		logger:   logger,
		metrics:  rec,
		now:      time.Now,
	}
}

// Load returns the user's squad session, fetching the confirmed snapshot
// from the backend on first touch.
func (s *Service) Load(ctx context.Context, token string) (store.SquadSession, error) {
	if token == "" {
		return store.SquadSession{}, providers.ErrNotAuthenticated
	}
	if sess, ok := s.store.GetSession(UserKey(token)); ok {
		return sess, nil
	}
	return s.refresh(ctx, token)
}

// Reset discards local edits and replaces the session with a fresh
// server snapshot.
func (s *Service) Reset(ctx context.Context, token string) (store.SquadSession, error) {
	if token == "" {
		return store.SquadSession{}, providers.ErrNotAuthenticated
	}
	return s.refresh(ctx, token)
}

func (s *Service) refresh(ctx context.Context, token string) (store.SquadSession, error) {
	snap, err := s.provider.FetchSquad(ctx, token)
	if err != nil {
		return store.SquadSession{}, fmt.Errorf("fetch squad: %w", err)
	}
	squad, err := domain.SquadFromPlayers(snap.Players)
	if err != nil {
		return store.SquadSession{}, fmt.Errorf("rebuild squad: %w", err)
	}
	sess := store.SquadSession{
		TeamName:      snap.TeamName,
		Initial:       squad,
		Working:       squad,
		FreeTransfers: snap.FreeTransfers,
		FirstGameweek: snap.FirstGameweek,
		Gameweek:      snap.Gameweek,
		LoadedAt:      s.now(),
	}
	s.store.PutSession(UserKey(token), sess)
	return sess, nil
}

// FillSlot places a pool player into the working squad. Bench membership
// is an explicit caller choice, mirroring the drag target in the UI. The
// edit is local; nothing is sent upstream until confirmation.
func (s *Service) FillSlot(ctx context.Context, token string, pos domain.Position, index int, playerID int, benched bool) (store.SquadSession, error) {
	sess, err := s.Load(ctx, token)
	if err != nil {
		return store.SquadSession{}, err
	}
	player, ok := s.store.GetPlayer(playerID)
	if !ok {
		return sess, fmt.Errorf("%w: id=%d", ErrUnknownPlayer, playerID)
	}
	// Pool players carry no squad-role flags.
	player.IsBenched = benched

	next, err := sess.Working.FillSlot(pos, index, player)
	if err != nil {
		s.metrics.RecordValidationFailure("duplicate_player")
		return sess, err
	}
	sess.Working = next
	s.store.PutSession(UserKey(token), sess)
	return sess, nil
}

// ClearSlot vacates a slot in the working squad.
func (s *Service) ClearSlot(ctx context.Context, token string, pos domain.Position, index int) (store.SquadSession, error) {
	sess, err := s.Load(ctx, token)
	if err != nil {
		return store.SquadSession{}, err
	}
	sess.Working = sess.Working.ClearSlot(pos, index)
	s.store.PutSession(UserKey(token), sess)
	return sess, nil
}

// Preview computes the transfer diff, its cost under the user's current
// chip state, and the legality verdict for the working squad.
func (s *Service) Preview(ctx context.Context, token string) (Preview, error) {
	sess, err := s.Load(ctx, token)
	if err != nil {
		return Preview{}, err
	}

	chipStatus, err := s.chips.FetchChipStatus(ctx, token)
	if err != nil {
		// Chip state only relaxes the cost; preview must still render.
		logging.Warn(logging.FromContext(ctx, s.logger), "chip status unavailable", slog.Any("err", err))
		chipStatus = domain.ChipStatus{}
	}

	return s.buildPreview(sess, chipStatus), nil
}

func (s *Service) buildPreview(sess store.SquadSession, chipStatus domain.ChipStatus) Preview {
	diff := transfers.Compute(sess.Initial, sess.Working)
	cost := transfers.ComputeCost(diff, transfers.CostContext{
		FreeTransfers:  sess.FreeTransfers,
		WildcardActive: chipStatus.IsActive(domain.ChipWildcard),
		FreeHitActive:  chipStatus.IsActive(domain.ChipFreeHit),
		FirstGameweek:  sess.FirstGameweek,
	})

	p := Preview{
		Out:           diff.Out,
		In:            diff.In,
		PaidTransfers: cost.PaidTransfers,
		PointsCost:    cost.PointsCost,
		Bank:          sess.Working.RemainingBank(),
		Valid:         true,
	}

	if v := domain.Validate(sess.Working); !v.Valid {
		p.Valid = false
		p.Violation = v.Err.Error()
		p.ViolatedTeamID = v.ViolatedTeamID
		s.metrics.RecordValidationFailure(ruleName(v.Err))
	} else if v := domain.ValidateBudget(sess.Working); !v.Valid {
		p.Valid = false
		p.Violation = v.Err.Error()
		s.metrics.RecordValidationFailure(ruleName(v.Err))
	}

	p.CanConfirm = p.Valid && p.Bank >= 0 && diff.Count() > 0 && len(diff.Out) == len(diff.In)
	return p
}

// ConfirmTransfers validates the working squad and sends the ordinally
// paired transfer list upstream. On success the session is replaced by a
// fresh server snapshot; on failure the working squad is preserved so the
// user can retry explicitly.
func (s *Service) ConfirmTransfers(ctx context.Context, token string) (store.SquadSession, error) {
	sess, err := s.Load(ctx, token)
	if err != nil {
		return store.SquadSession{}, err
	}

	chipStatus, err := s.chips.FetchChipStatus(ctx, token)
	if err != nil {
		chipStatus = domain.ChipStatus{}
	}
	preview := s.buildPreview(sess, chipStatus)

	if len(preview.Out) == 0 && len(preview.In) == 0 {
		return sess, ErrNothingToConfirm
	}
	if !preview.Valid {
		if preview.ViolatedTeamID != 0 {
			return sess, fmt.Errorf("%w: team=%d", domain.ErrTeamLimitExceeded, preview.ViolatedTeamID)
		}
		return sess, validationError(sess.Working)
	}
	if preview.Bank < 0 {
		s.metrics.RecordValidationFailure(ruleName(domain.ErrBudgetExceeded))
		return sess, domain.ErrBudgetExceeded
	}
	if !preview.CanConfirm {
		return sess, fmt.Errorf("transfer list unbalanced: %d out, %d in", len(preview.Out), len(preview.In))
	}

	pairs := transfers.Compute(sess.Initial, sess.Working).Pairs()
	if err := s.provider.ConfirmTransfers(ctx, token, pairs); err != nil {
		return sess, fmt.Errorf("confirm transfers: %w", err)
	}

	logger := logging.FromContext(ctx, s.logger)
	logging.Info(logger, "transfers confirmed",
		slog.Int(logging.FieldTransfers, len(pairs)),
		slog.Int(logging.FieldPointsCost, preview.PointsCost),
		slog.Int(logging.FieldGameweek, sess.Gameweek),
	)
	s.metrics.RecordTransfersConfirmed(len(pairs), preview.PointsCost)

	userKey := UserKey(token)
	if err := s.recorder.RecordTransfers(&history.TransferRecord{
		UserKey:    userKey,
		Gameweek:   sess.Gameweek,
		Pairs:      pairs,
		PointsCost: preview.PointsCost,
	}); err != nil {
		logging.Warn(logger, "transfer history write failed", slog.Any("err", err))
	}

	fresh, err := s.refresh(ctx, token)
	if err != nil {
		// The confirmation went through; surface the stale session rather
		// than an error so the UI can refetch on its own schedule.
		logging.Warn(logger, "post-confirm refresh failed", slog.Any("err", err))
		sess.Initial = sess.Working
		s.store.PutSession(userKey, sess)
		fresh = sess
	}
	s.writeSnapshot(userKey, fresh)
	return fresh, nil
}

// SubmitTeam sends the working squad as an initial team submission.
func (s *Service) SubmitTeam(ctx context.Context, token, teamName string) (store.SquadSession, error) {
	sess, err := s.Load(ctx, token)
	if err != nil {
		return store.SquadSession{}, err
	}
	if !sess.Working.Complete() {
		return sess, fmt.Errorf("%w: squad incomplete (%d of 15)", domain.ErrFormationInvalid, sess.Working.Size())
	}
	if err := validationError(sess.Working); err != nil {
		return sess, err
	}
	if v := domain.ValidateBudget(sess.Working); !v.Valid {
		s.metrics.RecordValidationFailure(ruleName(v.Err))
		return sess, v.Err
	}

	if teamName == "" {
		teamName = sess.TeamName
	}
	submission := domain.SquadSnapshot{
		TeamName: teamName,
		Players:  sess.Working.AllPlayers(),
	}
	if err := s.provider.SubmitTeam(ctx, token, submission); err != nil {
		return sess, fmt.Errorf("submit team: %w", err)
	}
	s.metrics.RecordSubmissionAccepted()

	fresh, err := s.refresh(ctx, token)
	if err != nil {
		sess.TeamName = teamName
		sess.Initial = sess.Working
		s.store.PutSession(UserKey(token), sess)
		return sess, nil
	}
	s.writeSnapshot(UserKey(token), fresh)
	return fresh, nil
}

// Points fetches a gameweek's scoring view and resolves the captaincy
// highlight from the score delta.
func (s *Service) Points(ctx context.Context, token string, gameweek int) (PointsView, error) {
	if token == "" {
		return PointsView{}, providers.ErrNotAuthenticated
	}
	sp, err := s.provider.FetchSquadPoints(ctx, token, gameweek)
	if err != nil {
		return PointsView{}, fmt.Errorf("fetch gameweek points: %w", err)
	}

	startingXI := make([]domain.Player, 0, 11)
	for _, p := range sp.Players {
		if !p.IsBenched {
			startingXI = append(startingXI, p)
		}
	}
	result := scoring.ResolveEffectiveCaptain(startingXI, sp.TotalPoints)

	return PointsView{
		Gameweek:           sp.Gameweek,
		Players:            sp.Players,
		TotalPoints:        sp.TotalPoints,
		EffectiveCaptainID: result.EffectiveCaptainID,
		Multiplier:         result.Multiplier,
	}, nil
}

func (s *Service) writeSnapshot(userKey string, sess store.SquadSession) {
	if s.snaps == nil {
		return
	}
	snap := domain.SquadSnapshot{
		TeamName:      sess.TeamName,
		Players:       sess.Initial.AllPlayers(),
		FreeTransfers: sess.FreeTransfers,
		FirstGameweek: sess.FirstGameweek,
		Gameweek:      sess.Gameweek,
	}
	if err := s.snaps.WriteSquadSnapshot(userKey, sess.Gameweek, snap); err != nil {
		logging.Warn(s.logger, "squad snapshot write failed", slog.Any("err", err))
	}
}

func validationError(squad domain.Squad) error {
	if v := domain.Validate(squad); !v.Valid {
		if v.ViolatedTeamID != 0 {
			return fmt.Errorf("%w: team=%d", v.Err, v.ViolatedTeamID)
		}
		return v.Err
	}
	return nil
}

func ruleName(err error) string {
	switch {
	case errors.Is(err, domain.ErrTeamLimitExceeded):
		return "team_limit"
	case errors.Is(err, domain.ErrFormationInvalid):
		return "formation"
	case errors.Is(err, domain.ErrBudgetExceeded):
		return "budget"
	case errors.Is(err, domain.ErrDuplicatePlayer):
		return "duplicate_player"
	default:
		return "other"
	}
}
