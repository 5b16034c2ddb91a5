package domain

import (
	"errors"
	"fmt"
)

// BudgetCap is the total spend allowed across the full squad.
const BudgetCap = 100.0

var (
	// ErrDuplicatePlayer is returned when a fill would place the same
	// player in two slots.
	ErrDuplicatePlayer = errors.New("player already in squad")

	// ErrUnknownSlot is returned for an out-of-range position/index pair.
	ErrUnknownSlot = errors.New("unknown squad slot")
)

// Squad is the fixed-shape 15-man container: 2 GK, 5 DEF, 5 MID, 3 FWD
// slots, each holding a player or nothing. Bench membership is an explicit
// per-player flag; the starting XI is always a derived view. All mutating
// operations are copy-on-write, so a Squad value can be snapshotted by
// plain assignment.
type Squad struct {
	slots map[Position][]*Player
}

// NewSquad returns an empty squad with every slot vacant.
func NewSquad() Squad {
	slots := make(map[Position][]*Player, len(SlotCounts))
	for pos, n := range SlotCounts {
		slots[pos] = make([]*Player, n)
	}
	return Squad{slots: slots}
}

// SquadFromPlayers places each player into the first vacant slot for its
// position, in input order. Players that do not fit the fixed shape are
// rejected, as are duplicates.
func SquadFromPlayers(players []Player) (Squad, error) {
	s := NewSquad()
	for _, p := range players {
		idx, err := s.vacantIndex(p.Position)
		if err != nil {
			return Squad{}, fmt.Errorf("place player %d: %w", p.ID, err)
		}
		s, err = s.FillSlot(p.Position, idx, p)
		if err != nil {
			return Squad{}, err
		}
	}
	return s, nil
}

func (s Squad) vacantIndex(pos Position) (int, error) {
	slots, ok := s.slots[pos]
	if !ok {
		return 0, fmt.Errorf("%w: position %q", ErrUnknownSlot, pos)
	}
	for i, slot := range slots {
		if slot == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no vacant %s slot", pos)
}

// FillSlot returns a squad with the player placed at (position, index).
// The original squad is unchanged on error: a duplicate player ID anywhere
// in the squad is refused. Per-club limits are deliberately not enforced
// here; Validate catches those before submission.
func (s Squad) FillSlot(pos Position, index int, player Player) (Squad, error) {
	slots, ok := s.slots[pos]
	if !ok || index < 0 || index >= len(slots) {
		return s, fmt.Errorf("%w: %s[%d]", ErrUnknownSlot, pos, index)
	}
	for _, group := range s.slots {
		for _, slot := range group {
			if slot != nil && slot.ID == player.ID {
				return s, fmt.Errorf("%w: id=%d", ErrDuplicatePlayer, player.ID)
			}
		}
	}
	next := s.cloneSlots()
	p := player
	next[pos][index] = &p
	return Squad{slots: next}, nil
}

// ClearSlot returns a squad with the slot vacated. Clearing an already
// vacant or unknown slot is a no-op.
func (s Squad) ClearSlot(pos Position, index int) Squad {
	slots, ok := s.slots[pos]
	if !ok || index < 0 || index >= len(slots) || slots[index] == nil {
		return s
	}
	next := s.cloneSlots()
	next[pos][index] = nil
	return Squad{slots: next}
}

func (s Squad) cloneSlots() map[Position][]*Player {
	next := make(map[Position][]*Player, len(s.slots))
	for pos, group := range s.slots {
		copied := make([]*Player, len(group))
		copy(copied, group)
		next[pos] = copied
	}
	return next
}

// AllPlayers flattens every filled slot in canonical order: GK, DEF, MID,
// FWD, each group in slot order.
func (s Squad) AllPlayers() []Player {
	out := make([]Player, 0, 15)
	for _, pos := range PositionOrder {
		for _, slot := range s.slots[pos] {
			if slot != nil {
				out = append(out, *slot)
			}
		}
	}
	return out
}

// StartingXI returns the non-benched players in canonical order.
func (s Squad) StartingXI() []Player {
	out := make([]Player, 0, 11)
	for _, p := range s.AllPlayers() {
		if !p.IsBenched {
			out = append(out, p)
		}
	}
	return out
}

// Bench returns the benched players in canonical order.
func (s Squad) Bench() []Player {
	out := make([]Player, 0, 4)
	for _, p := range s.AllPlayers() {
		if p.IsBenched {
			out = append(out, p)
		}
	}
	return out
}

// PlayerAt returns the player occupying the slot, if any.
func (s Squad) PlayerAt(pos Position, index int) (Player, bool) {
	slots, ok := s.slots[pos]
	if !ok || index < 0 || index >= len(slots) || slots[index] == nil {
		return Player{}, false
	}
	return *slots[index], true
}

// CountByTeam tallies filled slots per real-world club.
func (s Squad) CountByTeam() map[int]int {
	counts := make(map[int]int)
	for _, p := range s.AllPlayers() {
		counts[p.TeamID]++
	}
	return counts
}

// PlayerIDs returns the set of player IDs currently in the squad.
func (s Squad) PlayerIDs() map[int]struct{} {
	ids := make(map[int]struct{}, 15)
	for _, p := range s.AllPlayers() {
		ids[p.ID] = struct{}{}
	}
	return ids
}

// Contains reports whether the player ID occupies any slot.
func (s Squad) Contains(id int) bool {
	_, ok := s.PlayerIDs()[id]
	return ok
}

// Size is the number of filled slots.
func (s Squad) Size() int {
	return len(s.AllPlayers())
}

// Complete reports whether all 15 slots are filled.
func (s Squad) Complete() bool {
	return s.Size() == 15
}

// TotalPrice sums the price of every filled slot.
func (s Squad) TotalPrice() float64 {
	var total float64
	for _, p := range s.AllPlayers() {
		total += p.Price
	}
	return total
}

// RemainingBank is the budget left after the current squad's spend. It can
// go negative; a negative bank blocks confirmation but is surfaced to the
// user rather than silently corrected.
func (s Squad) RemainingBank() float64 {
	return BudgetCap - s.TotalPrice()
}

// Captain returns the player flagged captain, if any.
func (s Squad) Captain() (Player, bool) {
	for _, p := range s.AllPlayers() {
		if p.IsCaptain {
			return p, true
		}
	}
	return Player{}, false
}

// ViceCaptain returns the player flagged vice-captain, if any.
func (s Squad) ViceCaptain() (Player, bool) {
	for _, p := range s.AllPlayers() {
		if p.IsViceCaptain {
			return p, true
		}
	}
	return Player{}, false
}
