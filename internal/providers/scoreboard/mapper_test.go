package scoreboard

import (
	"testing"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
)

func TestMapEventMalformedStartBecomesZero(t *testing.T) {
	fetched := time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC)
	ev := mapEvent("nba", eventResponse{ID: "1", Date: "tonight"}, fetched)

	if !ev.StartTime.IsZero() {
		t.Fatalf("unparseable start should map to zero, got %v", ev.StartTime)
	}
	if !ev.FetchedAt.Equal(fetched) {
		t.Fatalf("fetch instant not carried: %v", ev.FetchedAt)
	}
}

func TestMapEventNormalizesStatusAtBoundary(t *testing.T) {
	ev := mapEvent("nba", eventResponse{ID: "1", Status: "Halftime"}, time.Now())
	if ev.Status != events.StatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", ev.Status)
	}
	if ev.RawStatus != "Halftime" {
		t.Fatalf("raw status must be preserved, got %s", ev.RawStatus)
	}
}

func TestMapEventCarriesProbables(t *testing.T) {
	ev := mapEvent("mlb", eventResponse{
		ID:            "77",
		HomeProbables: []string{"Yoshinobu Yamamoto"},
		AwayProbables: []string{"Gerrit Cole"},
	}, time.Now())

	if len(ev.HomeProbables) != 1 || len(ev.AwayProbables) != 1 {
		t.Fatalf("probables lost in mapping: %+v", ev)
	}
}

func TestMapTeamTrimsAndUppercases(t *testing.T) {
	team := mapTeam(teamResponse{Abbreviation: " bos ", Name: "Celtics", Record: " 30-10 ", City: "Boston"})
	if team.Code != "BOS" {
		t.Fatalf("expected BOS, got %q", team.Code)
	}
	if team.Record != "30-10" {
		t.Fatalf("record should be trimmed, got %q", team.Record)
	}
}
