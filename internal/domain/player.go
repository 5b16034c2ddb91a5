package domain

// Position identifies where a player lines up on the pitch.
type Position string

const (
	PositionGK  Position = "GK"
	PositionDEF Position = "DEF"
	PositionMID Position = "MID"
	PositionFWD Position = "FWD"
)

// PositionOrder is the canonical ordering used everywhere a squad is
// flattened: GK first, then DEF, MID, FWD.
var PositionOrder = []Position{PositionGK, PositionDEF, PositionMID, PositionFWD}

// SlotCounts is the fixed shape of a full 15-man squad.
var SlotCounts = map[Position]int{
	PositionGK:  2,
	PositionDEF: 5,
	PositionMID: 5,
	PositionFWD: 3,
}

// PlayerStatus mirrors the availability flags reported by the game backend.
// Status is informational only and never blocks squad inclusion.
type PlayerStatus string

const (
	StatusActive      PlayerStatus = "ACTIVE"
	StatusInjured     PlayerStatus = "INJURED"
	StatusSuspended   PlayerStatus = "SUSPENDED"
	StatusUnavailable PlayerStatus = "UNAVAILABLE"
)

// MatchStats carries the per-fixture figures used to decide whether a
// player actually featured.
type MatchStats struct {
	Played  bool `json:"played"`
	Minutes int  `json:"minutes"`
}

// Player is the canonical player shape every component downstream of the
// normalizer consumes. Prices are set by the backend and never edited here.
type Player struct {
	ID            int          `json:"id"`
	FullName      string       `json:"fullName"`
	Position      Position     `json:"position"`
	TeamID        int          `json:"teamId"`
	TeamName      string       `json:"teamName"`
	TeamShortName string       `json:"teamShortName"`
	Price         float64      `json:"price"`
	Points        int          `json:"points"`
	IsCaptain     bool         `json:"isCaptain"`
	IsViceCaptain bool         `json:"isViceCaptain"`
	IsBenched     bool         `json:"isBenched"`
	Status        PlayerStatus `json:"status"`
	Stats         MatchStats   `json:"stats"`
}

// FeaturedInFixture reports whether the player actually took part in the
// relevant fixture. Different backend endpoints populate different subsets
// of fields, so the played flag, minutes, and points are checked in that
// priority order, accepting the first that is set.
func (p Player) FeaturedInFixture() bool {
	if p.Stats.Played {
		return true
	}
	if p.Stats.Minutes > 0 {
		return true
	}
	return p.Points != 0
}
