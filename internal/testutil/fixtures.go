package testutil

import (
	"fmt"

	"fantasy-squad-service/internal/domain"
)

// SamplePlayer returns a pool player with the provided id and position.
func SamplePlayer(id int, pos domain.Position) domain.Player {
	return domain.Player{
		ID:            id,
		FullName:      fmt.Sprintf("Player %d", id),
		Position:      pos,
		TeamID:        ((id - 1) % 8) + 1,
		TeamName:      fmt.Sprintf("Club %d", ((id-1)%8)+1),
		TeamShortName: fmt.Sprintf("C%d", ((id-1)%8)+1),
		Price:         5.0,
		Status:        domain.StatusActive,
	}
}

// FullSquadPlayers returns fifteen players forming a legal squad: two
// goalkeepers, five defenders, five midfielders, three forwards, spread
// across eight clubs, with a 1-4-4-2 starting eleven. IDs run 1..15 and
// the first midfielder (id 8) is captain and the second (id 9) vice.
func FullSquadPlayers() []domain.Player {
	layout := []struct {
		pos     domain.Position
		count   int
		benched []int
	}{
		{domain.PositionGK, 2, []int{1}},
		{domain.PositionDEF, 5, []int{4}},
		{domain.PositionMID, 5, []int{4}},
		{domain.PositionFWD, 3, []int{2}},
	}

	var players []domain.Player
	id := 1
	for _, group := range layout {
		for i := 0; i < group.count; i++ {
			p := SamplePlayer(id, group.pos)
			for _, b := range group.benched {
				if i == b {
					p.IsBenched = true
				}
			}
			players = append(players, p)
			id++
		}
	}
	players[7].IsCaptain = true
	players[8].IsViceCaptain = true
	return players
}

// FullSquad builds a complete squad from FullSquadPlayers. It panics on
// error since the fixture is known legal.
func FullSquad() domain.Squad {
	squad, err := domain.SquadFromPlayers(FullSquadPlayers())
	if err != nil {
		panic(err)
	}
	return squad
}
