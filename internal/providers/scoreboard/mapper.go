package scoreboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/rosters"
	"github.com/preston-bernstein/watchability-service/internal/domain/teams"
)

func mapEvent(category string, e eventResponse, fetchedAt time.Time) events.Event {
	return events.Event{
		ID:            fmt.Sprintf("%s-%s", providerName, e.ID),
		Category:      category,
		Provider:      providerName,
		HomeTeam:      mapTeam(e.HomeTeam),
		AwayTeam:      mapTeam(e.AwayTeam),
		StartTime:     parseStart(e.Date),
		Status:        events.NormalizeStatus(e.Status),
		RawStatus:     e.Status,
		Score:         events.Score{Home: e.HomeScore, Away: e.AwayScore},
		Broadcast:     strings.TrimSpace(e.Broadcast),
		Headline:      strings.TrimSpace(e.Headline),
		HomeProbables: e.HomeProbables,
		AwayProbables: e.AwayProbables,
		FetchedAt:     fetchedAt,
	}
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		Code:     strings.ToUpper(strings.TrimSpace(t.Abbreviation)),
		Name:     t.Name,
		Record:   strings.TrimSpace(t.Record),
		Location: t.City,
		Division: t.Division,
	}
}

// parseStart accepts the RFC3339 start the upstream documents; a missing or
// malformed value maps to the zero time, which classifies as invalid later.
func parseStart(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	return time.Time{}
}

func mapRoster(r rosterResponse) []rosters.Entry {
	entries := make([]rosters.Entry, 0, len(r.Players))
	for _, p := range r.Players {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		entries = append(entries, rosters.Entry{
			Name:     strings.TrimSpace(p.Name),
			Status:   strings.TrimSpace(p.Status),
			Detail:   strings.TrimSpace(p.Detail),
			Position: strings.TrimSpace(p.Position),
		})
	}
	return entries
}
