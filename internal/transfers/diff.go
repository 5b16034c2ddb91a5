// Package transfers computes the difference between a server-confirmed
// squad and the locally edited one, and prices that difference the way the
// game backend will, so illegal or surprising submissions are caught
// before any network call.
package transfers

import "fantasy-squad-service/internal/domain"

// Diff lists the players leaving and entering the squad, each in canonical
// GK/DEF/MID/FWD slot order. Out[i] and In[i] are not guaranteed to occupy
// the same slot: the backend pairs transfers by ordinal index within the
// canonical order, and Pairs preserves exactly that zip.
type Diff struct {
	Out []domain.Player `json:"out"`
	In  []domain.Player `json:"in"`
}

// Count is the number of transfers represented by the diff.
func (d Diff) Count() int {
	return len(d.Out)
}

// Pair is one out/in transfer as the backend's confirmation payload
// expects it.
type Pair struct {
	OutPlayerID int `json:"out_player_id"`
	InPlayerID  int `json:"in_player_id"`
}

// Pairs zips the out and in lists ordinally. Unbalanced diffs (possible
// mid-edit when a slot is cleared but not yet refilled) yield only the
// matched prefix.
func (d Diff) Pairs() []Pair {
	n := len(d.Out)
	if len(d.In) < n {
		n = len(d.In)
	}
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{OutPlayerID: d.Out[i].ID, InPlayerID: d.In[i].ID})
	}
	return pairs
}

// Compute diffs the working squad against the confirmed snapshot. Players
// present in both appear in neither list. Ordering follows the squads'
// own canonical flattening, which is what makes the ordinal pairing stable.
func Compute(initial, working domain.Squad) Diff {
	initialIDs := initial.PlayerIDs()
	workingIDs := working.PlayerIDs()

	var d Diff
	for _, p := range initial.AllPlayers() {
		if _, kept := workingIDs[p.ID]; !kept {
			d.Out = append(d.Out, p)
		}
	}
	for _, p := range working.AllPlayers() {
		if _, existing := initialIDs[p.ID]; !existing {
			d.In = append(d.In, p)
		}
	}
	return d
}
