package testutil

import (
	"context"
	"encoding/json"

	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/transfers"
)

// StubPoolProvider returns the configured pool data, or an error when set.
type StubPoolProvider struct {
	Players  []domain.Player
	Gameweek domain.Gameweek
	Err      error

	PlayerCalls   int
	GameweekCalls int
}

func (p *StubPoolProvider) FetchPlayers(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	p.PlayerCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Players, nil
}

func (p *StubPoolProvider) FetchGameweek(ctx context.Context) (domain.Gameweek, error) {
	_ = ctx
	p.GameweekCalls++
	if p.Err != nil {
		return domain.Gameweek{}, p.Err
	}
	return p.Gameweek, nil
}

// UnavailablePoolProvider always returns ErrProviderUnavailable.
type UnavailablePoolProvider struct{}

func (UnavailablePoolProvider) FetchPlayers(ctx context.Context) ([]domain.Player, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailablePoolProvider) FetchGameweek(ctx context.Context) (domain.Gameweek, error) {
	return domain.Gameweek{}, providers.ErrProviderUnavailable
}

// StubSquadProvider serves a fixed snapshot and records mutating calls.
type StubSquadProvider struct {
	Snapshot domain.SquadSnapshot
	Points   domain.SquadPoints

	FetchErr   error
	PointsErr  error
	SubmitErr  error
	ConfirmErr error

	FetchCalls     int
	SubmitCalls    int
	ConfirmCalls   int
	ConfirmedPairs []transfers.Pair
	Submitted      domain.SquadSnapshot
}

func (p *StubSquadProvider) FetchSquad(ctx context.Context, token string) (domain.SquadSnapshot, error) {
	_ = ctx
	_ = token
	p.FetchCalls++
	if p.FetchErr != nil {
		return domain.SquadSnapshot{}, p.FetchErr
	}
	return p.Snapshot, nil
}

func (p *StubSquadProvider) FetchSquadPoints(ctx context.Context, token string, gameweek int) (domain.SquadPoints, error) {
	_ = ctx
	_ = token
	_ = gameweek
	if p.PointsErr != nil {
		return domain.SquadPoints{}, p.PointsErr
	}
	return p.Points, nil
}

func (p *StubSquadProvider) SubmitTeam(ctx context.Context, token string, submission domain.SquadSnapshot) error {
	_ = ctx
	_ = token
	p.SubmitCalls++
	p.Submitted = submission
	return p.SubmitErr
}

func (p *StubSquadProvider) ConfirmTransfers(ctx context.Context, token string, pairs []transfers.Pair) error {
	_ = ctx
	_ = token
	p.ConfirmCalls++
	p.ConfirmedPairs = pairs
	return p.ConfirmErr
}

// StubChipProvider serves a fixed chip status and records activations.
type StubChipProvider struct {
	Status      domain.ChipStatus
	StatusErr   error
	ActivateErr error

	Activated []domain.ChipName
}

func (p *StubChipProvider) FetchChipStatus(ctx context.Context, token string) (domain.ChipStatus, error) {
	_ = ctx
	_ = token
	if p.StatusErr != nil {
		return domain.ChipStatus{}, p.StatusErr
	}
	return p.Status, nil
}

func (p *StubChipProvider) ActivateChip(ctx context.Context, token string, chip domain.ChipName) error {
	_ = ctx
	_ = token
	if p.ActivateErr != nil {
		return p.ActivateErr
	}
	p.Activated = append(p.Activated, chip)
	return nil
}

// StubDetailsProvider returns a fixed payload per player.
type StubDetailsProvider struct {
	Payload json.RawMessage
	Err     error
	Calls   int
}

func (p *StubDetailsProvider) FetchPlayerDetails(ctx context.Context, playerID int) (json.RawMessage, error) {
	_ = ctx
	_ = playerID
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Payload, nil
}
