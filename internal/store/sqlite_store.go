// Package store provides PickState persistence: a SQLite-backed store for the
// service and an in-memory store for tests and ephemeral runs.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/picks"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps one PickState blob per category in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at dbPath. An empty dbPath
// defaults to ./data/picks.db.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = filepath.Join("data", "picks.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer; WAL allows concurrent readers
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createTables() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS pick_states (
		category   TEXT PRIMARY KEY,
		pick_date  TEXT NOT NULL,
		payload    TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	return err
}

// Load reads the persisted state for a category. A missing row or an
// undecodable payload reports ok=false so callers re-evaluate from scratch.
func (s *SQLiteStore) Load(category string) (picks.PickState, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM pick_states WHERE category = ?`, category).Scan(&payload)
	if err == sql.ErrNoRows {
		return picks.PickState{}, false, nil
	}
	if err != nil {
		return picks.PickState{}, false, fmt.Errorf("load pick state: %w", err)
	}

	var state picks.PickState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return picks.PickState{}, false, fmt.Errorf("decode pick state: %w", err)
	}
	return state, true, nil
}

// Save replaces the persisted state for a category wholesale.
func (s *SQLiteStore) Save(category string, state picks.PickState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode pick state: %w", err)
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO pick_states
		(category, pick_date, payload, updated_at) VALUES (?,?,?,?)`,
		category, state.PickDate, string(payload), time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("save pick state: %w", err)
	}
	return nil
}
