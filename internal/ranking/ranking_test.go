package ranking

import (
	"testing"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/dates"
	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/picks"
	"github.com/preston-bernstein/watchability-service/internal/scoring"
)

func candidate(id string, score int, start time.Time, eligible bool) picks.Candidate {
	return picks.Candidate{
		Event:          events.Event{ID: id, StartTime: start},
		Classification: dates.Classification{EligibleForTodayPick: eligible},
		Watchability:   scoring.Breakdown{Total: score},
	}
}

func TestRankOrdersByScoreStartThenID(t *testing.T) {
	early := time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC)
	late := time.Date(2026, 1, 15, 22, 0, 0, 0, time.UTC)

	input := []picks.Candidate{
		candidate("c", 70, late, true),
		candidate("b", 70, early, true),
		candidate("a", 70, early, true),
		candidate("d", 90, late, true),
	}

	ranked := Rank(input)
	ids := []string{ranked[0].Event.ID, ranked[1].Event.ID, ranked[2].Event.ID, ranked[3].Event.ID}
	want := []string{"d", "a", "b", "c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	start := time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC)
	input := []picks.Candidate{
		candidate("low", 10, start, true),
		candidate("high", 90, start, true),
	}

	Rank(input)
	if input[0].Event.ID != "low" {
		t.Fatalf("Rank mutated its input: %+v", input)
	}
}

func TestRankIsIdempotent(t *testing.T) {
	start := time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC)
	input := []picks.Candidate{
		candidate("a", 50, start, true),
		candidate("b", 80, start, true),
		candidate("c", 80, start.Add(time.Hour), true),
	}

	once := Rank(input)
	twice := Rank(once)
	for i := range once {
		if once[i].Event.ID != twice[i].Event.ID {
			t.Fatalf("re-ranking changed order at %d: %s vs %s", i, once[i].Event.ID, twice[i].Event.ID)
		}
	}
}

func TestRankIgnoresEligibility(t *testing.T) {
	start := time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC)
	input := []picks.Candidate{
		candidate("tomorrow", 95, start, false),
		candidate("today", 60, start, true),
	}

	ranked := Rank(input)
	if ranked[0].Event.ID != "tomorrow" {
		t.Fatalf("ranking must order purely by score, got %s first", ranked[0].Event.ID)
	}

	eligible := Eligible(ranked)
	if len(eligible) != 1 || eligible[0].Event.ID != "today" {
		t.Fatalf("eligibility filter should drop tomorrow's game, got %+v", eligible)
	}
}
