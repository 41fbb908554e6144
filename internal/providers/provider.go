package providers

import (
	"context"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/rosters"
)

// EventProvider defines how upstream candidate events are fetched and
// normalized. The date parameter, when provided, should be a YYYY-MM-DD
// string; providers interpret an empty date as "today" in their configured
// timezone.
type EventProvider interface {
	FetchEvents(ctx context.Context, category, date string) ([]events.Event, error)
}

// RosterProvider fetches the current roster for one team, feeding the
// availability cache.
type RosterProvider interface {
	FetchRoster(ctx context.Context, category, teamCode string) ([]rosters.Entry, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	EventProvider
	RosterProvider
}
