package domain

import "errors"

// MaxPerClub is the ceiling on players drawn from one real-world club.
const MaxPerClub = 2

var (
	// ErrTeamLimitExceeded reports more than MaxPerClub players from one club.
	ErrTeamLimitExceeded = errors.New("club player limit exceeded")

	// ErrFormationInvalid reports an illegal starting-XI shape.
	ErrFormationInvalid = errors.New("formation invalid")

	// ErrBudgetExceeded reports a squad whose total price is over the cap.
	ErrBudgetExceeded = errors.New("budget exceeded")
)

// Validation is the outcome of a legality check. Violations are values,
// never panics: the UI renders them as a blocking banner or disabled
// submit button.
type Validation struct {
	Valid          bool
	Err            error
	ViolatedTeamID int
}

func valid() Validation {
	return Validation{Valid: true}
}

// Validate checks squad legality, first violation wins: the per-club
// ceiling is checked before formation so the error reported matches what
// the user most recently broke. Starting-XI shape is only checked once
// the squad is complete, so partial squads mid-edit are not flagged for
// formation prematurely.
func Validate(s Squad) Validation {
	if v := ValidateClubLimit(s); !v.Valid {
		return v
	}
	if !s.Complete() {
		return valid()
	}
	return ValidateStartingXI(s.StartingXI())
}

// ValidateClubLimit enforces the MaxPerClub rule, reporting the first
// offending club in canonical squad order.
func ValidateClubLimit(s Squad) Validation {
	counts := make(map[int]int)
	for _, p := range s.AllPlayers() {
		counts[p.TeamID]++
		if counts[p.TeamID] > MaxPerClub {
			return Validation{Err: ErrTeamLimitExceeded, ViolatedTeamID: p.TeamID}
		}
	}
	return valid()
}

// ValidateStartingXI enforces the on-pitch shape: exactly eleven starters,
// exactly one goalkeeper, at least two defenders.
func ValidateStartingXI(startingXI []Player) Validation {
	if len(startingXI) != 11 {
		return Validation{Err: ErrFormationInvalid}
	}
	var gk, def int
	for _, p := range startingXI {
		switch p.Position {
		case PositionGK:
			gk++
		case PositionDEF:
			def++
		}
	}
	if gk != 1 || def < 2 {
		return Validation{Err: ErrFormationInvalid}
	}
	return valid()
}

// ValidateBudget flags a squad whose spend exceeds the cap. The squad
// itself is left untouched; the caller disables confirmation instead.
func ValidateBudget(s Squad) Validation {
	if s.RemainingBank() < 0 {
		return Validation{Err: ErrBudgetExceeded}
	}
	return valid()
}
