package scoring

import (
	"testing"

	"fantasy-squad-service/internal/domain"
)

func starter(id, points int) domain.Player {
	return domain.Player{
		ID:     id,
		Points: points,
		Stats:  domain.MatchStats{Played: points != 0, Minutes: 90},
	}
}

// eleven builds a starting XI totalling 50 base points with the captain
// on 10 and the vice on 8.
func eleven() []domain.Player {
	xi := []domain.Player{
		starter(1, 10),
		starter(2, 8),
	}
	xi[0].IsCaptain = true
	xi[1].IsViceCaptain = true
	for i := 3; i <= 11; i++ {
		p := starter(i, 4)
		if i > 10 {
			p.Points = 0
			p.Stats = domain.MatchStats{Played: true, Minutes: 90}
		}
		xi = append(xi, p)
	}
	return xi
}

func baseTotal(xi []domain.Player) int {
	total := 0
	for _, p := range xi {
		total += p.Points
	}
	return total
}

func TestResolveStandardCaptain(t *testing.T) {
	xi := eleven()
	// Double captain: total carries one extra share of the captain's 10.
	total := baseTotal(xi) + 10

	got := ResolveEffectiveCaptain(xi, total)
	if got.EffectiveCaptainID != 1 {
		t.Fatalf("expected captain 1, got %d", got.EffectiveCaptainID)
	}
	if got.Multiplier != 2 {
		t.Fatalf("expected multiplier 2, got %d", got.Multiplier)
	}
}

func TestResolveTripleCaptain(t *testing.T) {
	xi := eleven()
	// Triple captain: the surplus over base is twice the captain's 10.
	total := baseTotal(xi) + 20

	got := ResolveEffectiveCaptain(xi, total)
	if got.EffectiveCaptainID != 1 {
		t.Fatalf("expected captain 1, got %d", got.EffectiveCaptainID)
	}
	if got.Multiplier != 3 {
		t.Fatalf("expected multiplier 3, got %d", got.Multiplier)
	}
}

func TestResolveFallsBackToVice(t *testing.T) {
	xi := eleven()
	// Captain never featured.
	xi[0].Points = 0
	xi[0].Stats = domain.MatchStats{}
	total := baseTotal(xi) + 8

	got := ResolveEffectiveCaptain(xi, total)
	if got.EffectiveCaptainID != 2 {
		t.Fatalf("expected vice 2, got %d", got.EffectiveCaptainID)
	}
	if got.Multiplier != 2 {
		t.Fatalf("expected multiplier 2, got %d", got.Multiplier)
	}
}

func TestResolveTripleCaptainOnVice(t *testing.T) {
	xi := eleven()
	xi[0].Points = 0
	xi[0].Stats = domain.MatchStats{}
	total := baseTotal(xi) + 16

	got := ResolveEffectiveCaptain(xi, total)
	if got.EffectiveCaptainID != 2 {
		t.Fatalf("expected vice 2, got %d", got.EffectiveCaptainID)
	}
	if got.Multiplier != 3 {
		t.Fatalf("expected multiplier 3, got %d", got.Multiplier)
	}
}

func TestResolveNoCaptainMarked(t *testing.T) {
	xi := eleven()
	xi[0].IsCaptain = false
	xi[1].IsViceCaptain = false

	got := ResolveEffectiveCaptain(xi, baseTotal(xi))
	if got.EffectiveCaptainID != 0 {
		t.Fatalf("expected no holder, got %d", got.EffectiveCaptainID)
	}
	if got.Multiplier != 2 {
		t.Fatalf("expected display default 2, got %d", got.Multiplier)
	}
}

func TestResolveHolderOnZeroPoints(t *testing.T) {
	xi := eleven()
	xi[0].Points = 0
	xi[0].Stats = domain.MatchStats{Played: true, Minutes: 12}

	got := ResolveEffectiveCaptain(xi, baseTotal(xi))
	if got.EffectiveCaptainID != 1 {
		t.Fatalf("expected captain 1, got %d", got.EffectiveCaptainID)
	}
	if got.Multiplier != 2 {
		t.Fatalf("expected multiplier 2, got %d", got.Multiplier)
	}
}

func TestResolvePlayedDetectionOrder(t *testing.T) {
	// Points alone mark a player as having featured when flags and
	// minutes are absent.
	p := domain.Player{ID: 1, Points: 3}
	if !p.FeaturedInFixture() {
		t.Fatalf("expected nonzero points to count as featured")
	}
	p = domain.Player{ID: 1, Stats: domain.MatchStats{Minutes: 5}}
	if !p.FeaturedInFixture() {
		t.Fatalf("expected nonzero minutes to count as featured")
	}
	p = domain.Player{ID: 1}
	if p.FeaturedInFixture() {
		t.Fatalf("expected blank stats to count as not featured")
	}
}
