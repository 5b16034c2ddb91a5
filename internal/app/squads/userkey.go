package squads

import (
	"crypto/sha256"
	"encoding/hex"
)

// UserKey derives a stable, non-sensitive session key from a bearer
// token. Raw tokens must never reach logs, disk paths, or the history
// database.
func UserKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])[:16]
}
