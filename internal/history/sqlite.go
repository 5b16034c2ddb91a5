package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the history trail to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode lets reporting tools read while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transfer_history (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			user_key      TEXT NOT NULL,
			gameweek      INTEGER NOT NULL,
			out_player_id INTEGER NOT NULL,
			in_player_id  INTEGER NOT NULL,
			points_cost   INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transfer_user_gw ON transfer_history(user_key, gameweek)`,

		`CREATE TABLE IF NOT EXISTS chip_history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			user_key  TEXT NOT NULL,
			gameweek  INTEGER NOT NULL,
			chip      TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chip_user ON chip_history(user_key)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordTransfers writes one row per confirmed pair. The batch's points
// cost is stored on every row so per-gameweek deductions can be summed
// without a join.
func (r *SQLiteRecorder) RecordTransfers(rec *TransferRecord) error {
	if rec == nil || len(rec.Pairs) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	for _, pair := range rec.Pairs {
		if _, err := tx.Exec(
			`INSERT INTO transfer_history (timestamp, user_key, gameweek, out_player_id, in_player_id, points_cost)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			now, rec.UserKey, rec.Gameweek, pair.OutPlayerID, pair.InPlayerID, rec.PointsCost,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// RecordChipActivation writes one accepted chip activation.
func (r *SQLiteRecorder) RecordChipActivation(rec *ChipRecord) error {
	if rec == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO chip_history (timestamp, user_key, gameweek, chip) VALUES (?, ?, ?, ?)`,
		time.Now().Unix(), rec.UserKey, rec.Gameweek, string(rec.Chip),
	)
	return err
}

// TransferCount returns the number of transfer rows stored for a user.
func (r *SQLiteRecorder) TransferCount(userKey string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM transfer_history WHERE user_key = ?`, userKey,
	).Scan(&count)
	return count, err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
