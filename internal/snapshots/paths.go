package snapshots

import (
	"fmt"
	"path/filepath"
)

// SquadSnapshotPath builds the path to a confirmed-squad snapshot for a
// given user key and gameweek.
func SquadSnapshotPath(basePath, userKey string, gameweek int) string {
	return filepath.Join(basePath, "squads", userKey, fmt.Sprintf("gw-%d.json", gameweek))
}
