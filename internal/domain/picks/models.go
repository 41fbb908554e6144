package picks

import (
	"time"

	"github.com/preston-bernstein/watchability-service/internal/dates"
	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/quality"
	"github.com/preston-bernstein/watchability-service/internal/scoring"
)

// Tier is the qualitative confidence level attached to a day's pick.
type Tier string

const (
	TierClear Tier = "CLEAR"
	TierSolid Tier = "SOLID"
	TierWeak  Tier = "WEAK"
)

// AtLeast reports whether t is as confident as other (Clear > Solid > Weak).
func (t Tier) AtLeast(other Tier) bool {
	return tierRank(t) >= tierRank(other)
}

func tierRank(t Tier) int {
	switch t {
	case TierClear:
		return 2
	case TierSolid:
		return 1
	default:
		return 0
	}
}

// LockReason records why a pick was frozen.
type LockReason string

const (
	LockStarted    LockReason = "STARTED"
	LockInProgress LockReason = "IN_PROGRESS"
	LockManual     LockReason = "MANUAL"
)

// OverrideReason records why a locked or orphaned pick was replaced.
type OverrideReason string

const (
	OverridePostponed        OverrideReason = "POSTPONED"
	OverrideRemovedFromSlate OverrideReason = "REMOVED_FROM_SLATE"
	OverrideCriticalMissing  OverrideReason = "CRITICAL_DATA_MISSING"
	OverrideDrasticChange    OverrideReason = "DRASTIC_CHANGE"
)

// Candidate is one event after a refresh's derivation pass: classification,
// validation, freshness, and the full watchability breakdown. Candidates are
// rebuilt from scratch every refresh.
type Candidate struct {
	Event          events.Event         `json:"event"`
	Classification dates.Classification `json:"classification"`
	Validation     quality.Validation   `json:"validation"`
	Freshness      quality.Freshness    `json:"freshness"`
	Watchability   scoring.Breakdown    `json:"watchability"`
}

// Score is a convenience accessor for ranking and state-machine checks.
func (c Candidate) Score() int {
	return c.Watchability.Total
}

// Eligible reports whether the candidate may be today's pick.
func (c Candidate) Eligible() bool {
	return c.Classification.EligibleForTodayPick
}

// PickState is the one persisted record per category per day. It is replaced
// wholesale on every transition; readers never observe partial mutation.
type PickState struct {
	Category        string         `json:"category"`
	PickDate        string         `json:"pickDate"`
	EventID         string         `json:"eventId"`
	Event           events.Event   `json:"event"`
	Locked          bool           `json:"locked"`
	LockedReason    LockReason     `json:"lockedReason,omitempty"`
	ChosenAt        time.Time      `json:"chosenAt"`
	LastEvaluatedAt time.Time      `json:"lastEvaluatedAt"`
	Score           int            `json:"score"`
	Tier            Tier           `json:"tier"`
	Alternates      []string       `json:"alternates,omitempty"`
	OverrideReason  OverrideReason `json:"overrideReason,omitempty"`
	OverrideMessage string         `json:"overrideMessage,omitempty"`
}

// TransitionKind labels what a refresh did to the persisted pick.
type TransitionKind string

const (
	TransitionCreated     TransitionKind = "CREATED"
	TransitionReevaluated TransitionKind = "REEVALUATED"
	TransitionLocked      TransitionKind = "LOCKED"
	TransitionOverridden  TransitionKind = "OVERRIDDEN"
	TransitionHeld        TransitionKind = "HELD"
	TransitionNoEvents    TransitionKind = "NO_EVENTS"
)

// RefreshMetadata describes the state-machine outcome of one refresh.
type RefreshMetadata struct {
	Kind            TransitionKind `json:"kind"`
	PreviousEventID string         `json:"previousEventId,omitempty"`
	OverrideMessage string         `json:"overrideMessage,omitempty"`
}
