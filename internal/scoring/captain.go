// Package scoring reconstructs, for display only, how the backend applied
// the captaincy bonus to a finished gameweek. The backend returns base
// per-player points plus an already-multiplied team total, so the holder
// and multiplier have to be reverse-solved from the score delta.
package scoring

import (
	"math"

	"fantasy-squad-service/internal/domain"
)

// bonusTolerance absorbs rounding drift from the backend's bonus-point
// system when classifying the multiplier. The derivation is a heuristic,
// never authoritative; if the backend ever exposes an explicit multiplier
// field this package should read it instead.
const bonusTolerance = 0.1

// CaptainResult identifies who actually received the captaincy bonus and
// at what multiplier. EffectiveCaptainID is zero when no holder could be
// determined.
type CaptainResult struct {
	EffectiveCaptainID int `json:"effectiveCaptainId,omitempty"`
	Multiplier         int `json:"multiplier"`
}

// ResolveEffectiveCaptain determines which starter the backend credited
// with the captaincy bonus. If the marked captain did not feature, the
// bonus falls to the vice-captain. A triple captain chip is detected when
// the team total exceeds the base sum by twice the holder's base points:
// 3x total minus the 1x already counted leaves a 2x surplus.
func ResolveEffectiveCaptain(startingXI []domain.Player, teamTotalPoints int) CaptainResult {
	var captain, vice *domain.Player
	for i := range startingXI {
		p := &startingXI[i]
		if p.IsCaptain && captain == nil {
			captain = p
		}
		if p.IsViceCaptain && vice == nil {
			vice = p
		}
	}

	target := vice
	if captain != nil && captain.FeaturedInFixture() {
		target = captain
	}

	if target == nil {
		return CaptainResult{Multiplier: 2}
	}
	if target.Points == 0 {
		// No visible bonus to classify; the multiplier is a display default.
		return CaptainResult{EffectiveCaptainID: target.ID, Multiplier: 2}
	}

	rawTotal := 0
	for _, p := range startingXI {
		rawTotal += p.Points
	}
	bonusPortion := float64(teamTotalPoints - rawTotal)

	multiplier := 2
	if math.Abs(bonusPortion-float64(target.Points*2)) < bonusTolerance {
		multiplier = 3
	}
	return CaptainResult{EffectiveCaptainID: target.ID, Multiplier: multiplier}
}
