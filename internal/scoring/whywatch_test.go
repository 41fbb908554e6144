package scoring

import (
	"strings"
	"testing"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/teams"
)

func breakdownWith(stakes, comp, narrative, access int) Breakdown {
	return Breakdown{Components: Components{
		Stakes:          SubScore{Score: stakes},
		Competitiveness: SubScore{Score: comp},
		Narrative:       SubScore{Score: narrative},
		Access:          SubScore{Score: access},
	}}
}

func TestWhyWatchHeadToHeadLead(t *testing.T) {
	got := whyWatch(events.Event{}, breakdownWith(0, 0, 0, 0), starResult{Pairing: Pairing{Type: "vs"}})
	if got != "A marquee head-to-head headlines this one." {
		t.Fatalf("unexpected sentence: %q", got)
	}
}

func TestWhyWatchUnverifiedHedgesTheLead(t *testing.T) {
	got := whyWatch(events.Event{}, breakdownWith(0, 0, 0, 0), starResult{Pairing: Pairing{Type: "vs"}, Unverified: true})
	if !strings.HasPrefix(got, "An expected") {
		t.Fatalf("unverified pairing should hedge: %q", got)
	}

	got = whyWatch(events.Event{}, breakdownWith(0, 0, 0, 0), starResult{Pairing: Pairing{Type: "solo"}, Unverified: true})
	if !strings.HasPrefix(got, "A likely") {
		t.Fatalf("unverified solo should hedge: %q", got)
	}
}

func TestWhyWatchFallsBackToTeamNames(t *testing.T) {
	ev := events.Event{
		HomeTeam: teams.Team{Name: "Celtics", Code: "BOS"},
		AwayTeam: teams.Team{Name: "Lakers", Code: "LAL"},
	}
	got := whyWatch(ev, breakdownWith(0, 0, 0, 0), starResult{Pairing: Pairing{Type: "none"}})
	if got != "Lakers visit the Celtics." {
		t.Fatalf("unexpected sentence: %q", got)
	}

	ev.AwayTeam = teams.Team{Code: "LAL"}
	got = whyWatch(ev, breakdownWith(0, 0, 0, 0), starResult{Pairing: Pairing{Type: "none"}})
	if !strings.HasPrefix(got, "LAL visit") {
		t.Fatalf("code should stand in for a missing name: %q", got)
	}
}

func TestSupportingReasonPrecedence(t *testing.T) {
	// Stakes outranks every other supporting angle.
	if got := supportingReason(breakdownWith(22, 20, 20, 10)); got != "real stakes on both sides" {
		t.Fatalf("stakes should win: %q", got)
	}
	if got := supportingReason(breakdownWith(21, 16, 20, 10)); got != "two evenly matched teams" {
		t.Fatalf("competitiveness should win next: %q", got)
	}
	if got := supportingReason(breakdownWith(0, 0, 12, 10)); got != "plenty of history between these two" {
		t.Fatalf("narrative should win next: %q", got)
	}
	if got := supportingReason(breakdownWith(0, 0, 0, 9)); got != "an easy find on national TV" {
		t.Fatalf("access is the last resort: %q", got)
	}
	if got := supportingReason(breakdownWith(21, 15, 11, 8)); got != "" {
		t.Fatalf("below every threshold there is no supporting reason: %q", got)
	}
}

func TestWhyWatchAppendsSupport(t *testing.T) {
	got := whyWatch(events.Event{}, breakdownWith(25, 0, 0, 0), starResult{Pairing: Pairing{Type: "vs"}})
	if !strings.HasSuffix(got, ", with real stakes on both sides.") {
		t.Fatalf("support clause missing: %q", got)
	}
}
