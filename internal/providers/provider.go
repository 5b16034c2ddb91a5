package providers

import (
	"context"
	"encoding/json"

	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/transfers"
)

// PoolProvider fetches the shared, read-only season data: the full player
// pool and the current gameweek. These calls are safe to retry and poll.
type PoolProvider interface {
	FetchPlayers(ctx context.Context) ([]domain.Player, error)
	FetchGameweek(ctx context.Context) (domain.Gameweek, error)
}

// SquadProvider covers the per-user squad surface. Mutating calls are
// never retried automatically: a failure is surfaced to the user and the
// working squad is preserved for an explicit retry.
type SquadProvider interface {
	FetchSquad(ctx context.Context, token string) (domain.SquadSnapshot, error)
	FetchSquadPoints(ctx context.Context, token string, gameweek int) (domain.SquadPoints, error)
	SubmitTeam(ctx context.Context, token string, submission domain.SquadSnapshot) error
	ConfirmTransfers(ctx context.Context, token string, pairs []transfers.Pair) error
}

// ChipProvider covers chip status and activation. Activation is
// irreversible once the backend confirms it; there is no cancel call.
type ChipProvider interface {
	FetchChipStatus(ctx context.Context, token string) (domain.ChipStatus, error)
	ActivateChip(ctx context.Context, token string, chip domain.ChipName) error
}

// DetailsProvider fetches the display-only per-player detail payload. The
// payload shape is backend-defined and passed through opaquely.
type DetailsProvider interface {
	FetchPlayerDetails(ctx context.Context, playerID int) (json.RawMessage, error)
}

// DataProvider combines all upstream capabilities.
type DataProvider interface {
	PoolProvider
	SquadProvider
	ChipProvider
	DetailsProvider
}
