package domain

// Gameweek is the slice of season state the client needs: which round is
// live and whether this user has ever completed one (first-gameweek grace
// makes transfers unlimited and free).
type Gameweek struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Finished bool   `json:"finished"`
}

// SquadSnapshot is a server-confirmed squad as fetched from the backend,
// already normalized. It is the "initial" side of every transfer diff.
type SquadSnapshot struct {
	TeamName      string   `json:"teamName"`
	Players       []Player `json:"players"`
	FreeTransfers int      `json:"freeTransfers"`
	FirstGameweek bool     `json:"firstGameweek"`
	Gameweek      int      `json:"gameweek"`
}

// SquadPoints is a completed gameweek's scoring view for one squad: base
// per-player points plus the backend's authoritative (already multiplied)
// team total.
type SquadPoints struct {
	Gameweek    int      `json:"gameweek"`
	Players     []Player `json:"players"`
	TotalPoints int      `json:"totalPoints"`
}
