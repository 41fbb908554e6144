package pickstate

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/dates"
	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/picks"
	"github.com/preston-bernstein/watchability-service/internal/quality"
	"github.com/preston-bernstein/watchability-service/internal/scoring"
)

type stubStore struct {
	state   picks.PickState
	has     bool
	loadErr error
	saved   []picks.PickState
}

func (s *stubStore) Load(category string) (picks.PickState, bool, error) {
	return s.state, s.has, s.loadErr
}

func (s *stubStore) Save(category string, state picks.PickState) error {
	s.saved = append(s.saved, state)
	s.state = state
	s.has = true
	return nil
}

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func eligibleCandidate(id string, score int, start time.Time, now time.Time, loc *time.Location) picks.Candidate {
	return picks.Candidate{
		Event: events.Event{
			ID:        id,
			Category:  "nba",
			StartTime: start,
			Status:    events.StatusScheduled,
		},
		Classification: dates.Classify(start, now, loc),
		Validation:     quality.Validation{Valid: true, DataQuality: quality.QualityHigh},
		Watchability: scoring.Breakdown{
			Total:                score,
			InjuryStatusVerified: true,
			TwoSidedPairing:      true,
		},
	}
}

func TestEvaluateCreatesFirstPick(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 30, 0, 0, loc)
	store := &stubStore{}
	m := New(store, loc, 4, nil)

	eligible := []picks.Candidate{
		eligibleCandidate("top", 85, start, now, loc),
		eligibleCandidate("alt", 70, start, now, loc),
	}

	state, meta := m.Evaluate("nba", eligible, picks.TierClear, now)
	if state == nil {
		t.Fatalf("expected a created pick")
	}
	if meta.Kind != picks.TransitionCreated {
		t.Fatalf("expected CREATED, got %s", meta.Kind)
	}
	if state.EventID != "top" || state.Locked {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state.PickDate != "2026-01-15" {
		t.Fatalf("unexpected pick date: %s", state.PickDate)
	}
	if len(state.Alternates) != 1 || state.Alternates[0] != "alt" {
		t.Fatalf("unexpected alternates: %v", state.Alternates)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(store.saved))
	}
}

func TestEvaluateFreeReevaluationBeforeLock(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 30, 0, 0, loc)
	store := &stubStore{}
	m := New(store, loc, 4, nil)

	m.Evaluate("nba", []picks.Candidate{
		eligibleCandidate("first", 80, start, now, loc),
	}, picks.TierSolid, now)

	later := now.Add(30 * time.Minute)
	state, meta := m.Evaluate("nba", []picks.Candidate{
		eligibleCandidate("second", 82, start, later, loc),
		eligibleCandidate("first", 78, start, later, loc),
	}, picks.TierSolid, later)

	if meta.Kind != picks.TransitionReevaluated {
		t.Fatalf("small swing before lock should re-evaluate freely, got %s", meta.Kind)
	}
	if state.EventID != "second" || meta.PreviousEventID != "first" {
		t.Fatalf("unexpected transition: %+v / %+v", state, meta)
	}
}

func TestEvaluateAutoLocksOnceStarted(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 30, 0, 0, loc)
	store := &stubStore{}
	m := New(store, loc, 4, nil)

	m.Evaluate("nba", []picks.Candidate{
		eligibleCandidate("game", 80, start, now, loc),
	}, picks.TierSolid, now)

	afterTip := start.Add(5 * time.Minute)
	cur := eligibleCandidate("game", 80, start, afterTip, loc)
	cur.Event.Status = events.StatusInProgress

	state, meta := m.Evaluate("nba", []picks.Candidate{cur}, picks.TierSolid, afterTip)
	if meta.Kind != picks.TransitionLocked {
		t.Fatalf("expected LOCKED, got %s", meta.Kind)
	}
	if !state.Locked || state.LockedReason != picks.LockInProgress {
		t.Fatalf("unexpected lock state: %+v", state)
	}
}

func TestEvaluateLockedHoldsAgainstBetterGame(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 30, 0, 0, loc)
	store := &stubStore{
		state: picks.PickState{
			Category: "nba", PickDate: "2026-01-15", EventID: "locked",
			Locked: true, LockedReason: picks.LockStarted,
			ChosenAt: now.Add(-4 * time.Hour), Score: 80,
		},
		has: true,
	}
	m := New(store, loc, 4, nil)

	cur := eligibleCandidate("locked", 78, start, now, loc)
	cur.Event.Status = events.StatusInProgress
	better := eligibleCandidate("better", 88, start.Add(time.Hour), now, loc)

	state, meta := m.Evaluate("nba", []picks.Candidate{better, cur}, picks.TierClear, now)
	if meta.Kind != picks.TransitionHeld {
		t.Fatalf("a merely better game must not displace a locked pick, got %s", meta.Kind)
	}
	if state.EventID != "locked" {
		t.Fatalf("locked pick changed: %+v", state)
	}
}

func TestEvaluateOverridesPostponedLockedPick(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 30, 0, 0, loc)
	store := &stubStore{
		state: picks.PickState{
			Category: "nba", PickDate: "2026-01-15", EventID: "doomed",
			Locked: true, LockedReason: picks.LockStarted,
			ChosenAt: now.Add(-4 * time.Hour), Score: 80,
		},
		has: true,
	}
	m := New(store, loc, 4, nil)

	cur := eligibleCandidate("doomed", 80, start, now, loc)
	cur.Event.Status = events.StatusPostponed
	replacement := eligibleCandidate("next", 75, start.Add(time.Hour), now, loc)

	state, meta := m.Evaluate("nba", []picks.Candidate{replacement, cur}, picks.TierSolid, now)
	if meta.Kind != picks.TransitionOverridden {
		t.Fatalf("postponed pick must be overridden, got %s", meta.Kind)
	}
	if state.EventID != "next" || state.OverrideReason != picks.OverridePostponed {
		t.Fatalf("unexpected override: %+v", state)
	}
	if state.Locked {
		t.Fatalf("replacement pick must start unlocked")
	}
}

func TestEvaluateOverridesOrphanedPick(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 21, 0, 0, 0, loc)
	store := &stubStore{
		state: picks.PickState{
			Category: "nba", PickDate: "2026-01-15", EventID: "vanished",
			Locked: true, LockedReason: picks.LockStarted,
			ChosenAt: now.Add(-4 * time.Hour), Score: 80,
		},
		has: true,
	}
	m := New(store, loc, 4, nil)

	replacement := eligibleCandidate("present", 70, start, now, loc)
	state, meta := m.Evaluate("nba", []picks.Candidate{replacement}, picks.TierSolid, now)
	if meta.Kind != picks.TransitionOverridden {
		t.Fatalf("orphaned pick must be overridden, got %s", meta.Kind)
	}
	if state.OverrideReason != picks.OverrideRemovedFromSlate {
		t.Fatalf("unexpected reason: %s", state.OverrideReason)
	}
}

func TestEvaluateDrasticChangeNeedsAllConditions(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 30, 0, 0, loc)

	prior := picks.PickState{
		Category: "nba", PickDate: "2026-01-15", EventID: "slipping",
		Locked: true, LockedReason: picks.LockStarted,
		ChosenAt: now.Add(-4 * time.Hour), Score: 80,
	}

	// Collapsed pick, dominant verified challenger: all four conditions hold.
	store := &stubStore{state: prior, has: true}
	m := New(store, loc, 4, nil)
	cur := eligibleCandidate("slipping", 55, start, now, loc)
	cur.Event.Status = events.StatusInProgress
	challenger := eligibleCandidate("surging", 86, start.Add(time.Hour), now, loc)

	state, meta := m.Evaluate("nba", []picks.Candidate{challenger, cur}, picks.TierClear, now)
	if meta.Kind != picks.TransitionOverridden || state.OverrideReason != picks.OverrideDrasticChange {
		t.Fatalf("expected drastic-change override, got %s / %+v", meta.Kind, state)
	}

	// Same shape but the challenger is unverified: no override.
	store = &stubStore{state: prior, has: true}
	m = New(store, loc, 4, nil)
	unverified := eligibleCandidate("surging", 86, start.Add(time.Hour), now, loc)
	unverified.Watchability.InjuryStatusVerified = false

	_, meta = m.Evaluate("nba", []picks.Candidate{unverified, cur}, picks.TierClear, now)
	if meta.Kind == picks.TransitionOverridden {
		t.Fatalf("unverified challenger must not trigger a drastic override")
	}

	// Pick dropped but the challenger's edge is too small: no override.
	store = &stubStore{state: prior, has: true}
	m = New(store, loc, 4, nil)
	nearby := eligibleCandidate("surging", 70, start.Add(time.Hour), now, loc)

	_, meta = m.Evaluate("nba", []picks.Candidate{nearby, cur}, picks.TierClear, now)
	if meta.Kind == picks.TransitionOverridden {
		t.Fatalf("15-point edge must not trigger a drastic override")
	}
}

func TestEvaluateDailyReset(t *testing.T) {
	loc := eastern(t)
	store := &stubStore{
		state: picks.PickState{
			Category: "nba", PickDate: "2026-01-14", EventID: "stale",
			Locked: true, LockedReason: picks.LockStarted,
			ChosenAt: time.Date(2026, 1, 14, 12, 0, 0, 0, loc), Score: 90,
		},
		has: true,
	}
	m := New(store, loc, 4, nil)

	now := time.Date(2026, 1, 15, 10, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 0, 0, 0, loc)
	state, meta := m.Evaluate("nba", []picks.Candidate{
		eligibleCandidate("fresh", 72, start, now, loc),
	}, picks.TierSolid, now)

	if meta.Kind != picks.TransitionCreated {
		t.Fatalf("a new day must create fresh, got %s", meta.Kind)
	}
	if state.EventID != "fresh" || state.Locked {
		t.Fatalf("reset state should be a new unlocked pick: %+v", state)
	}
	if meta.PreviousEventID != "stale" {
		t.Fatalf("expected previous pick recorded, got %q", meta.PreviousEventID)
	}
}

func TestEvaluateEmptySlate(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, loc)

	// No prior state: nothing to show.
	m := New(&stubStore{}, loc, 4, nil)
	state, meta := m.Evaluate("nba", nil, picks.TierWeak, now)
	if state != nil || meta.Kind != picks.TransitionNoEvents {
		t.Fatalf("empty slate with no prior should be NO_EVENTS, got %+v / %s", state, meta.Kind)
	}

	// Prior pick from the same day: hold it through the provider hiccup.
	store := &stubStore{
		state: picks.PickState{
			Category: "nba", PickDate: "2026-01-15", EventID: "kept",
			ChosenAt: now.Add(-time.Hour), Score: 70,
		},
		has: true,
	}
	m = New(store, loc, 4, nil)
	state, meta = m.Evaluate("nba", nil, picks.TierWeak, now)
	if state == nil || meta.Kind != picks.TransitionHeld {
		t.Fatalf("same-day empty slate should hold, got %+v / %s", state, meta.Kind)
	}
}

func TestEvaluateLoadErrorTreatedAsUnset(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 0, 0, 0, loc)
	store := &stubStore{loadErr: errors.New("corrupt payload")}
	m := New(store, loc, 4, nil)

	state, meta := m.Evaluate("nba", []picks.Candidate{
		eligibleCandidate("recovered", 75, start, now, loc),
	}, picks.TierSolid, now)

	if meta.Kind != picks.TransitionCreated || state.EventID != "recovered" {
		t.Fatalf("load failure should re-create, got %s / %+v", meta.Kind, state)
	}
}

func TestLockIsMonotonicWithinDay(t *testing.T) {
	loc := eastern(t)
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, loc)
	start := time.Date(2026, 1, 15, 19, 30, 0, 0, loc)
	store := &stubStore{}
	m := New(store, loc, 4, nil)

	cur := eligibleCandidate("game", 80, start, now, loc)
	cur.Event.Status = events.StatusInProgress

	m.Evaluate("nba", []picks.Candidate{cur}, picks.TierSolid, now)

	// Re-evaluate repeatedly: the pick stays locked, never unlocks.
	for i := 0; i < 3; i++ {
		later := now.Add(time.Duration(i+1) * 10 * time.Minute)
		state, _ := m.Evaluate("nba", []picks.Candidate{cur}, picks.TierSolid, later)
		if state == nil || !state.Locked {
			t.Fatalf("lock must be monotonic within the day, got %+v", state)
		}
	}
}
