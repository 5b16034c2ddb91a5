package fantasyapi

import (
	"strings"

	"fantasy-squad-service/internal/domain"
)

// mapPlayer normalizes a raw player payload into the canonical shape.
// It never fails: absent booleans default to false, absent numbers to
// zero, and the first populated variant of each duplicated field wins.
func mapPlayer(p playerPayload) domain.Player {
	player := domain.Player{
		ID:            p.ID,
		FullName:      firstString(p.FullName, p.Name),
		Position:      mapPosition(firstString(p.Position, p.Pos)),
		Price:         p.Price,
		Points:        p.Points,
		IsCaptain:     firstBool(p.IsCaptainSnake, p.IsCaptainCamel),
		IsViceCaptain: firstBool(p.IsViceSnake, p.IsViceCamel),
		IsBenched:     firstBool(p.IsBenchedSnake, p.IsBenchedCamel),
		Status:        mapStatus(p.Status),
	}

	if p.Team != nil {
		player.TeamID = p.Team.ID
		player.TeamName = p.Team.Name
		player.TeamShortName = p.Team.ShortName
	}
	if player.TeamID == 0 {
		player.TeamID = p.TeamID
	}
	if player.TeamName == "" {
		player.TeamName = p.TeamName
	}
	if player.TeamShortName == "" {
		player.TeamShortName = p.TeamShort
	}

	player.Stats = mapStats(p)
	return player
}

func mapStats(p playerPayload) domain.MatchStats {
	stats := domain.MatchStats{Minutes: p.Minutes}
	if p.Played != nil {
		stats.Played = *p.Played
	}
	if p.Stats != nil {
		if p.Stats.Played != nil {
			stats.Played = *p.Stats.Played
		}
		if p.Stats.Minutes > 0 {
			stats.Minutes = p.Stats.Minutes
		}
	}
	return stats
}

func mapPosition(raw string) domain.Position {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "GK", "GKP":
		return domain.PositionGK
	case "DEF":
		return domain.PositionDEF
	case "MID":
		return domain.PositionMID
	case "FWD", "ST":
		return domain.PositionFWD
	default:
		return domain.Position(strings.ToUpper(strings.TrimSpace(raw)))
	}
}

func mapStatus(raw string) domain.PlayerStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "INJURED":
		return domain.StatusInjured
	case "SUSPENDED":
		return domain.StatusSuspended
	case "UNAVAILABLE":
		return domain.StatusUnavailable
	default:
		return domain.StatusActive
	}
}

func mapPlayers(payloads []playerPayload, benched bool) []domain.Player {
	out := make([]domain.Player, 0, len(payloads))
	for _, p := range payloads {
		player := mapPlayer(p)
		if benched {
			player.IsBenched = true
		}
		out = append(out, player)
	}
	return out
}

func mapSquad(resp squadResponse) domain.SquadSnapshot {
	players := mapPlayers(resp.Starting, false)
	players = append(players, mapPlayers(resp.Bench, true)...)
	return domain.SquadSnapshot{
		TeamName:      resp.TeamName,
		Players:       players,
		FreeTransfers: resp.FreeTransfers,
		FirstGameweek: resp.FirstGameweek,
		Gameweek:      resp.Gameweek,
	}
}

func mapSquadPoints(resp squadPointsResponse) domain.SquadPoints {
	players := mapPlayers(resp.Starting, false)
	players = append(players, mapPlayers(resp.Bench, true)...)
	return domain.SquadPoints{
		Gameweek:    resp.Gameweek,
		Players:     players,
		TotalPoints: resp.TotalPoints,
	}
}

func mapChipStatus(resp chipStatusResponse) domain.ChipStatus {
	status := domain.ChipStatus{
		Active: domain.ChipName(strings.ToUpper(strings.TrimSpace(resp.Active))),
		Used:   make([]domain.ChipName, 0, len(resp.Used)),
	}
	for _, u := range resp.Used {
		status.Used = append(status.Used, domain.ChipName(strings.ToUpper(strings.TrimSpace(u))))
	}
	return status
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstBool(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}
