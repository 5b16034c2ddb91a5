package fantasyapi

import "fantasy-squad-service/internal/transfers"

// The backend's endpoints grew up at different times and disagree on field
// names for the same concepts (full_name vs name, position vs pos, nested
// team vs flat team_id). Every variant is declared here and resolved in
// the mapper; nothing outside this package sees a raw payload.

type playerPayload struct {
	ID        int          `json:"id"`
	FullName  string       `json:"full_name"`
	Name      string       `json:"name"`
	Position  string       `json:"position"`
	Pos       string       `json:"pos"`
	Team      *teamPayload `json:"team"`
	TeamID    int          `json:"team_id"`
	TeamName  string       `json:"team_name"`
	TeamShort string       `json:"team_short_name"`
	Price     float64      `json:"price"`
	Points    int          `json:"points"`

	IsCaptainSnake *bool `json:"is_captain"`
	IsCaptainCamel *bool `json:"isCaptain"`
	IsViceSnake    *bool `json:"is_vice_captain"`
	IsViceCamel    *bool `json:"isViceCaptain"`
	IsBenchedSnake *bool `json:"is_benched"`
	IsBenchedCamel *bool `json:"isBenched"`

	Status  string        `json:"status"`
	Played  *bool         `json:"played"`
	Minutes int           `json:"minutes"`
	Stats   *statsPayload `json:"stats"`
}

type teamPayload struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type statsPayload struct {
	Played  *bool `json:"played"`
	Minutes int   `json:"minutes"`
}

type squadResponse struct {
	TeamName      string          `json:"team_name"`
	Starting      []playerPayload `json:"starting"`
	Bench         []playerPayload `json:"bench"`
	FreeTransfers int             `json:"free_transfers"`
	FirstGameweek bool            `json:"first_gameweek"`
	Gameweek      int             `json:"gameweek"`
}

type playersResponse struct {
	Players []playerPayload `json:"players"`
}

type gameweekResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Finished bool   `json:"finished"`
}

type squadPointsResponse struct {
	Gameweek    int             `json:"gameweek"`
	Starting    []playerPayload `json:"starting"`
	Bench       []playerPayload `json:"bench"`
	TotalPoints int             `json:"total_points"`
}

type chipStatusResponse struct {
	Active string   `json:"active"`
	Used   []string `json:"used"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type submitTeamRequest struct {
	TeamName string            `json:"team_name"`
	Players  []submittedPlayer `json:"players"`
}

type submittedPlayer struct {
	ID            int    `json:"id"`
	Position      string `json:"position"`
	IsCaptain     bool   `json:"is_captain"`
	IsViceCaptain bool   `json:"is_vice_captain"`
	IsBenched     bool   `json:"is_benched"`
}

type confirmTransfersRequest struct {
	Transfers []transfers.Pair `json:"transfers"`
}

type activateChipRequest struct {
	Chip string `json:"chip"`
}
