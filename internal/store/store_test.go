package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/picks"
)

func sampleState(eventID string) picks.PickState {
	return picks.PickState{
		Category:        "nba",
		PickDate:        "2026-01-15",
		EventID:         eventID,
		Locked:          true,
		LockedReason:    picks.LockStarted,
		ChosenAt:        time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		LastEvaluatedAt: time.Date(2026, 1, 15, 19, 45, 0, 0, time.UTC),
		Score:           82,
		Tier:            picks.TierClear,
		Alternates:      []string{"alt-1", "alt-2"},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, err := s.Load("nba"); ok || err != nil {
		t.Fatalf("empty store should miss cleanly, got ok=%v err=%v", ok, err)
	}

	if err := s.Save("nba", sampleState("ev-1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := s.Load("nba")
	if err != nil || !ok {
		t.Fatalf("load after save: ok=%v err=%v", ok, err)
	}
	if loaded.EventID != "ev-1" || loaded.Score != 82 {
		t.Fatalf("unexpected state: %+v", loaded)
	}
}

func TestMemoryStoreIsolatesCategories(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Save("nba", sampleState("nba-ev"))
	_ = s.Save("nfl", sampleState("nfl-ev"))

	nba, _, _ := s.Load("nba")
	nfl, _, _ := s.Load("nfl")
	if nba.EventID != "nba-ev" || nfl.EventID != "nfl-ev" {
		t.Fatalf("categories bled together: %s / %s", nba.EventID, nfl.EventID)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "picks.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Load("nba"); ok || err != nil {
		t.Fatalf("empty table should miss cleanly, got ok=%v err=%v", ok, err)
	}

	if err := s.Save("nba", sampleState("ev-1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := s.Load("nba")
	if err != nil || !ok {
		t.Fatalf("load after save: ok=%v err=%v", ok, err)
	}
	if loaded.EventID != "ev-1" || loaded.Tier != picks.TierClear {
		t.Fatalf("unexpected state: %+v", loaded)
	}
	if len(loaded.Alternates) != 2 {
		t.Fatalf("alternates lost in round trip: %v", loaded.Alternates)
	}
}

func TestSQLiteStoreReplacesWholesale(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "picks.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	first := sampleState("first")
	_ = s.Save("nba", first)

	second := sampleState("second")
	second.Locked = false
	second.LockedReason = ""
	second.Alternates = nil
	if err := s.Save("nba", second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _, _ := s.Load("nba")
	if loaded.EventID != "second" || loaded.Locked {
		t.Fatalf("state not replaced wholesale: %+v", loaded)
	}
	if len(loaded.Alternates) != 0 {
		t.Fatalf("old alternates survived: %v", loaded.Alternates)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "picks.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	_ = s.Save("nba", sampleState("durable"))
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	loaded, ok, err := reopened.Load("nba")
	if err != nil || !ok || loaded.EventID != "durable" {
		t.Fatalf("state did not survive restart: ok=%v err=%v state=%+v", ok, err, loaded)
	}
}
