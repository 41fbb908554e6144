package events

import (
	"strings"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/teams"
)

// Status mirrors the shared contract for event lifecycle states.
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinal      Status = "FINAL"
	StatusPostponed  Status = "POSTPONED"
	StatusCanceled   Status = "CANCELED"
)

// NormalizeStatus maps a provider's free-text status to the closed Status set.
// All normalization happens here, at the data-source boundary; downstream code
// never re-parses raw status strings.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "final", "ended", "ft", "completed", "full time":
		return StatusFinal
	case "in progress", "live", "halftime", "half", "end of period", "in_progress":
		return StatusInProgress
	case "postponed", "delayed", "ppd":
		return StatusPostponed
	case "canceled", "cancelled":
		return StatusCanceled
	default:
		return StatusScheduled
	}
}

// Score captures home and away points. Nil means the provider did not report one.
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Event is the canonical candidate-event shape produced by providers.
// Events are constructed fresh on every refresh and never mutated field-by-field.
type Event struct {
	ID        string     `json:"id"`
	Category  string     `json:"category"`
	Provider  string     `json:"provider"`
	HomeTeam  teams.Team `json:"homeTeam"`
	AwayTeam  teams.Team `json:"awayTeam"`
	StartTime time.Time  `json:"startTime"`
	Status    Status     `json:"status"`
	RawStatus string     `json:"rawStatus,omitempty"`
	Score     Score      `json:"score"`
	Broadcast string     `json:"broadcast,omitempty"`
	Headline  string     `json:"headline,omitempty"`

	// Probable participants hinted by the provider, per side. Only some
	// categories (starting pitchers) populate these.
	HomeProbables []string `json:"homeProbables,omitempty"`
	AwayProbables []string `json:"awayProbables,omitempty"`

	FetchedAt time.Time `json:"fetchedAt"`
}

// HasStart reports whether the provider supplied a usable start instant.
func (e Event) HasStart() bool {
	return !e.StartTime.IsZero()
}

// Started reports whether the scheduled start instant has passed.
func (e Event) Started(now time.Time) bool {
	return e.HasStart() && !e.StartTime.After(now)
}
