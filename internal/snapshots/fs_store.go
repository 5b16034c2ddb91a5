package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"fantasy-squad-service/internal/domain"
)

// Store defines how confirmed-squad snapshots are loaded.
type Store interface {
	LoadSquad(userKey string, gameweek int) (domain.SquadSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSquad reads a confirmed squad for the given user key and gameweek.
// Files live at {basePath}/squads/{userKey}/gw-{n}.json with a
// SquadSnapshot payload.
func (s *FSStore) LoadSquad(userKey string, gameweek int) (domain.SquadSnapshot, error) {
	if s == nil {
		return domain.SquadSnapshot{}, errors.New("snapshot store not configured")
	}
	if userKey == "" {
		return domain.SquadSnapshot{}, errors.New("snapshot user key required")
	}

	path := SquadSnapshotPath(s.basePath, userKey, gameweek)
	f, err := os.Open(path)
	if err != nil {
		return domain.SquadSnapshot{}, err
	}
	defer f.Close()

	var payload domain.SquadSnapshot
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return domain.SquadSnapshot{}, err
	}
	if payload.Gameweek == 0 {
		payload.Gameweek = gameweek
	}
	return payload, nil
}
