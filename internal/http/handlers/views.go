package handlers

import (
	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/store"
)

// slotView is one squad slot: its position group, index within the group,
// and the occupying player, null when vacant.
type slotView struct {
	Position domain.Position `json:"position"`
	Index    int             `json:"index"`
	Player   *domain.Player  `json:"player"`
}

// sessionView is the wire shape of a squad session. The working squad is
// rendered slot by slot so the UI can show vacancies in a fixed grid.
type sessionView struct {
	TeamName         string     `json:"teamName"`
	Gameweek         int        `json:"gameweek"`
	FreeTransfers    int        `json:"freeTransfers"`
	FirstGameweek    bool       `json:"firstGameweek"`
	Bank             float64    `json:"bank"`
	Complete         bool       `json:"complete"`
	PendingTransfers int        `json:"pendingTransfers"`
	Slots            []slotView `json:"slots"`
}

func newSessionView(sess store.SquadSession, pendingTransfers int) sessionView {
	view := sessionView{
		TeamName:         sess.TeamName,
		Gameweek:         sess.Gameweek,
		FreeTransfers:    sess.FreeTransfers,
		FirstGameweek:    sess.FirstGameweek,
		Bank:             sess.Working.RemainingBank(),
		Complete:         sess.Working.Complete(),
		PendingTransfers: pendingTransfers,
	}
	for _, pos := range domain.PositionOrder {
		for i := 0; i < domain.SlotCounts[pos]; i++ {
			slot := slotView{Position: pos, Index: i}
			if p, ok := sess.Working.PlayerAt(pos, i); ok {
				player := p
				slot.Player = &player
			}
			view.Slots = append(view.Slots, slot)
		}
	}
	return view
}
