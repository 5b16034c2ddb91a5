package domain

import (
	"errors"
	"testing"
)

// fullSquad builds a complete legal squad: 2 GK, 5 DEF, 5 MID, 3 FWD
// across eight clubs with a 1-4-4-2 starting eleven.
func fullSquad(t *testing.T) Squad {
	t.Helper()

	layout := []struct {
		pos     Position
		count   int
		benched int
	}{
		{PositionGK, 2, 1},
		{PositionDEF, 5, 4},
		{PositionMID, 5, 4},
		{PositionFWD, 3, 2},
	}

	s := NewSquad()
	id := 1
	var err error
	for _, group := range layout {
		for i := 0; i < group.count; i++ {
			p := testPlayer(id, group.pos, ((id-1)%8)+1)
			if i == group.benched {
				p.IsBenched = true
			}
			s, err = s.FillSlot(group.pos, i, p)
			if err != nil {
				t.Fatalf("fill %s[%d]: %v", group.pos, i, err)
			}
			id++
		}
	}
	return s
}

func TestValidateLegalSquad(t *testing.T) {
	s := fullSquad(t)
	if !s.Complete() {
		t.Fatalf("fixture squad incomplete: %d players", s.Size())
	}
	if v := Validate(s); !v.Valid {
		t.Fatalf("expected legal squad, got %v", v.Err)
	}
}

func TestValidateClubLimitFirst(t *testing.T) {
	// Three players from club 5: the club violation must win over any
	// formation problem.
	s := fullSquad(t)
	s = s.ClearSlot(PositionFWD, 1)
	third := testPlayer(99, PositionFWD, 5)
	s, err := s.FillSlot(PositionFWD, 1, third)
	if err != nil {
		t.Fatalf("fill slot: %v", err)
	}

	v := Validate(s)
	if v.Valid || !errors.Is(v.Err, ErrTeamLimitExceeded) {
		t.Fatalf("expected ErrTeamLimitExceeded, got %+v", v)
	}
	if v.ViolatedTeamID != 5 {
		t.Fatalf("expected violated team 5, got %d", v.ViolatedTeamID)
	}
}

func TestValidateSkipsFormationWhileIncomplete(t *testing.T) {
	// A partial squad mid-edit has no meaningful starting XI yet.
	s := fullSquad(t).ClearSlot(PositionMID, 0)
	if v := Validate(s); !v.Valid {
		t.Fatalf("partial squad flagged: %v", v.Err)
	}
}

func TestValidateFormationTwoGoalkeepers(t *testing.T) {
	s := fullSquad(t)
	// Unbench the backup keeper and bench a midfielder instead.
	backup, _ := s.PlayerAt(PositionGK, 1)
	backup.IsBenched = false
	s = s.ClearSlot(PositionGK, 1)
	s, err := s.FillSlot(PositionGK, 1, backup)
	if err != nil {
		t.Fatalf("refill keeper: %v", err)
	}
	mid, _ := s.PlayerAt(PositionMID, 0)
	mid.IsBenched = true
	s = s.ClearSlot(PositionMID, 0)
	s, err = s.FillSlot(PositionMID, 0, mid)
	if err != nil {
		t.Fatalf("refill midfielder: %v", err)
	}

	v := Validate(s)
	if v.Valid || !errors.Is(v.Err, ErrFormationInvalid) {
		t.Fatalf("expected ErrFormationInvalid, got %+v", v)
	}
}

func TestValidateStartingXICounts(t *testing.T) {
	cases := []struct {
		name  string
		gk    int
		def   int
		mid   int
		fwd   int
		valid bool
	}{
		{"442", 1, 4, 4, 2, true},
		{"352", 1, 3, 5, 2, true},
		{"523", 1, 5, 2, 3, true},
		{"no keeper", 0, 5, 4, 2, false},
		{"one defender", 1, 1, 7, 2, false},
		{"ten players", 1, 4, 3, 2, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var xi []Player
			id := 1
			add := func(pos Position, n int) {
				for i := 0; i < n; i++ {
					xi = append(xi, testPlayer(id, pos, id))
					id++
				}
			}
			add(PositionGK, tc.gk)
			add(PositionDEF, tc.def)
			add(PositionMID, tc.mid)
			add(PositionFWD, tc.fwd)

			v := ValidateStartingXI(xi)
			if v.Valid != tc.valid {
				t.Fatalf("expected valid=%v, got %+v", tc.valid, v)
			}
		})
	}
}
