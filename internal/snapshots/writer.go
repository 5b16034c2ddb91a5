package snapshots

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"fantasy-squad-service/internal/domain"
)

var squadFilePattern = regexp.MustCompile(`^gw-(\d+)\.json$`)

// Writer persists confirmed-squad snapshots with a rolling gameweek window
// per user.
type Writer struct {
	basePath           string
	retentionGameweeks int
}

// NewWriter constructs a writer rooted at basePath. A non-positive
// retention falls back to keeping six gameweeks per user.
func NewWriter(basePath string, retentionGameweeks int) *Writer {
	if retentionGameweeks <= 0 {
		retentionGameweeks = 6
	}
	return &Writer{
		basePath:           basePath,
		retentionGameweeks: retentionGameweeks,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSquadSnapshot writes the confirmed squad for (userKey, gameweek)
// atomically and prunes that user's snapshots older than the retention
// window.
func (w *Writer) WriteSquadSnapshot(userKey string, gameweek int, snapshot domain.SquadSnapshot) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if userKey == "" {
		return fmt.Errorf("snapshot user key required")
	}
	if snapshot.Gameweek == 0 {
		snapshot.Gameweek = gameweek
	}

	path := SquadSnapshotPath(w.basePath, userKey, gameweek)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}

	w.prune(userKey, gameweek)
	return w.touchManifest(userKey, gameweek)
}

// prune removes snapshots outside the retention window. Failures here are
// non-fatal: a stale snapshot is better than a failed confirmation.
func (w *Writer) prune(userKey string, latestGameweek int) {
	dir := filepath.Join(w.basePath, "squads", userKey)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var gameweeks []int
	for _, e := range entries {
		m := squadFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if gw, err := strconv.Atoi(m[1]); err == nil {
			gameweeks = append(gameweeks, gw)
		}
	}
	sort.Ints(gameweeks)

	cutoff := latestGameweek - w.retentionGameweeks
	for _, gw := range gameweeks {
		if gw <= cutoff {
			os.Remove(filepath.Join(dir, fmt.Sprintf("gw-%d.json", gw)))
		}
	}
}
