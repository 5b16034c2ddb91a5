package store

import (
	"testing"
	"time"

	"fantasy-squad-service/internal/domain"
)

func TestSetPlayersReplacesPool(t *testing.T) {
	s := NewMemoryStore()
	s.SetPlayers([]domain.Player{{ID: 1}, {ID: 2}})
	if s.PoolSize() != 2 {
		t.Fatalf("expected pool of 2, got %d", s.PoolSize())
	}

	s.SetPlayers([]domain.Player{{ID: 9}})
	if s.PoolSize() != 1 {
		t.Fatalf("expected replacement, got pool of %d", s.PoolSize())
	}
	if _, ok := s.GetPlayer(1); ok {
		t.Fatalf("stale player survived replacement")
	}
	if _, ok := s.GetPlayer(9); !ok {
		t.Fatalf("new player missing")
	}
}

func TestListPlayersOrdering(t *testing.T) {
	s := NewMemoryStore()
	s.SetPlayers([]domain.Player{
		{ID: 3, FullName: "Zed", Position: domain.PositionFWD},
		{ID: 1, FullName: "Amy", Position: domain.PositionGK},
		{ID: 2, FullName: "Bob", Position: domain.PositionGK},
	})

	got := s.ListPlayers()
	want := []int{1, 2, 3}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestGameweekRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	if gw := s.Gameweek(); gw.ID != 0 {
		t.Fatalf("expected zero gameweek, got %+v", gw)
	}
	s.SetGameweek(domain.Gameweek{ID: 11, Name: "Gameweek 11"})
	if gw := s.Gameweek(); gw.ID != 11 {
		t.Fatalf("expected gameweek 11, got %+v", gw)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.GetSession("abc"); ok {
		t.Fatalf("expected no session initially")
	}

	sess := SquadSession{TeamName: "My XI", Gameweek: 4, LoadedAt: time.Now()}
	s.PutSession("abc", sess)

	got, ok := s.GetSession("abc")
	if !ok || got.TeamName != "My XI" {
		t.Fatalf("unexpected session: %+v ok=%v", got, ok)
	}
	if _, ok := s.GetSession("other"); ok {
		t.Fatalf("sessions must be keyed per user")
	}

	s.DeleteSession("abc")
	if _, ok := s.GetSession("abc"); ok {
		t.Fatalf("session survived delete")
	}
}
