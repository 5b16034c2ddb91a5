package store

import (
	"sort"
	"sync"
	"time"

	"fantasy-squad-service/internal/domain"
)

// SquadSession is one user's reconciliation state: the server-confirmed
// snapshot and the locally edited working squad. Both sides are immutable
// squad values, so reads never race with edits.
type SquadSession struct {
	TeamName      string
	Initial       domain.Squad
	Working       domain.Squad
	FreeTransfers int
	FirstGameweek bool
	Gameweek      int
	LoadedAt      time.Time
}

// MemoryStore keeps a thread-safe snapshot of the player pool, the current
// gameweek, and per-user squad sessions.
type MemoryStore struct {
	mu       sync.RWMutex
	pool     map[int]domain.Player
	gameweek domain.Gameweek
	sessions map[string]SquadSession
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pool:     make(map[int]domain.Player),
		sessions: make(map[string]SquadSession),
	}
}

// SetPlayers replaces the player pool with a new snapshot.
func (s *MemoryStore) SetPlayers(players []domain.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pool = make(map[int]domain.Player, len(players))
	for _, p := range players {
		s.pool[p.ID] = p
	}
}

// ListPlayers returns the pool ordered by position group, then name.
func (s *MemoryStore) ListPlayers() []domain.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Player, 0, len(s.pool))
	for _, p := range s.pool {
		result = append(result, p)
	}
	order := make(map[domain.Position]int, len(domain.PositionOrder))
	for i, pos := range domain.PositionOrder {
		order[pos] = i
	}
	sort.Slice(result, func(i, j int) bool {
		if order[result[i].Position] != order[result[j].Position] {
			return order[result[i].Position] < order[result[j].Position]
		}
		if result[i].FullName != result[j].FullName {
			return result[i].FullName < result[j].FullName
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// GetPlayer retrieves a pool player by ID.
func (s *MemoryStore) GetPlayer(id int) (domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pool[id]
	return p, ok
}

// PoolSize is the number of players currently in the pool.
func (s *MemoryStore) PoolSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pool)
}

// SetGameweek replaces the current gameweek.
func (s *MemoryStore) SetGameweek(gw domain.Gameweek) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameweek = gw
}

// Gameweek returns the current gameweek.
func (s *MemoryStore) Gameweek() domain.Gameweek {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameweek
}

// GetSession retrieves a user's squad session.
func (s *MemoryStore) GetSession(userKey string) (SquadSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userKey]
	return sess, ok
}

// PutSession stores a user's squad session.
func (s *MemoryStore) PutSession(userKey string, sess SquadSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userKey] = sess
}

// DeleteSession discards a user's squad session.
func (s *MemoryStore) DeleteSession(userKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userKey)
}
