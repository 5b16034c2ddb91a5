package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Manifest tracks snapshot metadata so operators can see coverage without
// walking the tree.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Retention   Retention `json:"retention"`
	Squads      SquadMeta `json:"squads"`
}

type Retention struct {
	Gameweeks int `json:"gameweeks"`
}

type SquadMeta struct {
	Users        []string  `json:"users"`
	LastGameweek int       `json:"lastGameweek"`
	LastWritten  time.Time `json:"lastWritten"`
}

func defaultManifest(retentionGameweeks int) Manifest {
	return Manifest{
		Version:   1,
		Retention: Retention{Gameweeks: retentionGameweeks},
		Squads:    SquadMeta{Users: []string{}},
	}
}

func (w *Writer) touchManifest(userKey string, gameweek int) error {
	path := filepath.Join(w.basePath, "manifest.json")

	m := defaultManifest(w.retentionGameweeks)
	if f, err := os.Open(path); err == nil {
		json.NewDecoder(f).Decode(&m)
		f.Close()
	}

	found := false
	for _, u := range m.Squads.Users {
		if u == userKey {
			found = true
			break
		}
	}
	if !found {
		m.Squads.Users = append(m.Squads.Users, userKey)
		sort.Strings(m.Squads.Users)
	}
	if gameweek > m.Squads.LastGameweek {
		m.Squads.LastGameweek = gameweek
	}
	m.Squads.LastWritten = time.Now().UTC()
	m.GeneratedAt = time.Now().UTC()
	m.Retention = Retention{Gameweeks: w.retentionGameweeks}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
