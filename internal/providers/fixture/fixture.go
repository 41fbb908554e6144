package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/rosters"
	"github.com/preston-bernstein/watchability-service/internal/domain/teams"
)

// Provider returns a static slate useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchEvents returns a deterministic slate for the requested day.
func (p *Provider) FetchEvents(ctx context.Context, category, date string) ([]events.Event, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			start = parsed.UTC().Add(19 * time.Hour)
		}
	}
	fetched := p.now()

	if !strings.EqualFold(category, "nba") && category != "" {
		return []events.Event{}, nil
	}

	zero := 0
	return []events.Event{
		{
			ID:        "fixture-1",
			Category:  "nba",
			Provider:  "fixture",
			HomeTeam:  teams.Team{Code: "BOS", Name: "Celtics", Record: "50-10", Location: "Boston", Division: "Atlantic"},
			AwayTeam:  teams.Team{Code: "LAL", Name: "Lakers", Record: "48-12", Location: "Los Angeles", Division: "Pacific"},
			StartTime: start.Add(2 * time.Hour),
			Status:    events.StatusScheduled,
			RawStatus: "scheduled",
			Score:     events.Score{Home: &zero, Away: &zero},
			Broadcast: "ESPN",
			FetchedAt: fetched,
		},
		{
			ID:        "fixture-2",
			Category:  "nba",
			Provider:  "fixture",
			HomeTeam:  teams.Team{Code: "GSW", Name: "Warriors", Record: "33-27", Location: "San Francisco", Division: "Pacific"},
			AwayTeam:  teams.Team{Code: "MIA", Name: "Heat", Record: "31-29", Location: "Miami", Division: "Southeast"},
			StartTime: start.Add(4 * time.Hour),
			Status:    events.StatusScheduled,
			RawStatus: "scheduled",
			Score:     events.Score{Home: &zero, Away: &zero},
			FetchedAt: fetched,
		},
	}, nil
}

// FetchRoster returns a deterministic roster per fixture team.
func (p *Provider) FetchRoster(ctx context.Context, category, teamCode string) ([]rosters.Entry, error) {
	_ = ctx
	_ = category

	switch strings.ToUpper(teamCode) {
	case "BOS":
		return []rosters.Entry{
			{Name: "Jayson Tatum", Status: "Active", Position: "F"},
			{Name: "Jaylen Brown", Status: "Active", Position: "G"},
		}, nil
	case "LAL":
		return []rosters.Entry{
			{Name: "LeBron James", Status: "Active", Position: "F"},
			{Name: "Anthony Davis", Status: "Day-To-Day", Detail: "Ankle", Position: "C"},
		}, nil
	case "GSW":
		return []rosters.Entry{
			{Name: "Stephen Curry", Status: "Active", Position: "G"},
		}, nil
	default:
		return []rosters.Entry{}, nil
	}
}
