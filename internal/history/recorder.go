// Package history persists an audit trail of confirmed transfers and chip
// activations. The backend is the source of truth for current state; this
// trail exists for support queries and season retrospectives.
package history

import (
	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/transfers"
)

// TransferRecord is one confirmed transfer batch for a user.
type TransferRecord struct {
	UserKey    string
	Gameweek   int
	Pairs      []transfers.Pair
	PointsCost int
}

// ChipRecord is one accepted chip activation.
type ChipRecord struct {
	UserKey  string
	Gameweek int
	Chip     domain.ChipName
}

// Recorder persists confirmed actions for later analysis.
type Recorder interface {
	RecordTransfers(rec *TransferRecord) error
	RecordChipActivation(rec *ChipRecord) error
	Close() error
}
