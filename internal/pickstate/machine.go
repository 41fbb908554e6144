// Package pickstate owns the persisted daily selection: creation,
// re-evaluation, locking, and override.
package pickstate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/dates"
	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/picks"
	"github.com/preston-bernstein/watchability-service/internal/logging"
	"github.com/preston-bernstein/watchability-service/internal/quality"
)

// Store persists one PickState blob per category. Implementations must write
// the whole record; readers never observe partial mutation.
type Store interface {
	Load(category string) (picks.PickState, bool, error)
	Save(category string, state picks.PickState) error
}

const (
	maxAlternates    = 3
	drasticScoreDrop = 20
	drasticScoreEdge = 20
)

// Machine evaluates the pick state machine once per refresh.
type Machine struct {
	store     Store
	logger    *slog.Logger
	loc       *time.Location
	resetHour int
}

// New constructs a Machine. loc is the reference timezone; resetHour is the
// local hour at which a day's pick expires.
func New(store Store, loc *time.Location, resetHour int, logger *slog.Logger) *Machine {
	if loc == nil {
		loc = time.UTC
	}
	if resetHour < 0 || resetHour > 23 {
		resetHour = 0
	}
	return &Machine{store: store, logger: logger, loc: loc, resetHour: resetHour}
}

// Evaluate runs one state-machine pass against the ranked, classified,
// pick-eligible candidate list and persists the outcome. A nil state return
// means no pick exists (empty slate with no prior state).
func (m *Machine) Evaluate(category string, eligible []picks.Candidate, tier picks.Tier, now time.Time) (*picks.PickState, picks.RefreshMetadata) {
	prior, hasPrior, err := m.store.Load(category)
	if err != nil {
		// Deserialization or storage failure degrades to "no prior state",
		// which routes through the daily-reset path below.
		logging.Warn(m.logger, "pick state load failed, treating as unset",
			slog.String(logging.FieldCategory, category), "error", err)
		hasPrior = false
	}

	if len(eligible) == 0 {
		return m.evaluateEmptySlate(category, prior, hasPrior, now)
	}
	top := eligible[0]

	// 1. Daily reset.
	if !hasPrior || m.needsReset(prior, now) {
		state := m.newSelected(category, top, eligible, tier, now, "", "")
		m.persist(state, picks.TransitionCreated, priorEventID(prior, hasPrior))
		return &state, picks.RefreshMetadata{Kind: picks.TransitionCreated, PreviousEventID: priorEventID(prior, hasPrior)}
	}

	cur, onSlate := findCandidate(eligible, prior.EventID)

	// 2. Orphaned pick: attempt an override, else fall through to
	// re-evaluation below with no current candidate.
	if !onSlate {
		if state, meta, ok := m.tryOverride(category, prior, nil, eligible, tier, now); ok {
			return state, meta
		}
	}

	// 3. Auto-lock once the chosen event is underway.
	if onSlate && !prior.Locked {
		if reason, lock := lockReason(cur.Event, now); lock {
			state := prior
			state.Locked = true
			state.LockedReason = reason
			state.Event = cur.Event
			state.LastEvaluatedAt = now
			state.Alternates = AlternatesFor(eligible, state.EventID)
			m.persist(state, picks.TransitionLocked, prior.EventID)
			return &state, picks.RefreshMetadata{Kind: picks.TransitionLocked, PreviousEventID: prior.EventID}
		}
	}

	// 4. Override: only reachable when locked (orphans were handled above).
	if prior.Locked {
		var curPtr *picks.Candidate
		if onSlate {
			curPtr = &cur
		}
		if state, meta, ok := m.tryOverride(category, prior, curPtr, eligible, tier, now); ok {
			return state, meta
		}
		return m.hold(prior, cur, onSlate, eligible, now)
	}

	// 5. Free re-evaluation: before lock, normal churn is expected.
	if top.Event.ID != prior.EventID {
		state := m.newSelected(category, top, eligible, tier, now, "", "")
		m.persist(state, picks.TransitionReevaluated, prior.EventID)
		return &state, picks.RefreshMetadata{Kind: picks.TransitionReevaluated, PreviousEventID: prior.EventID}
	}

	// 6. Steady state: same pick, refreshed payload.
	return m.hold(prior, cur, onSlate, eligible, now)
}

func (m *Machine) evaluateEmptySlate(category string, prior picks.PickState, hasPrior bool, now time.Time) (*picks.PickState, picks.RefreshMetadata) {
	if !hasPrior || m.needsReset(prior, now) {
		return nil, picks.RefreshMetadata{Kind: picks.TransitionNoEvents}
	}
	// An empty slate mid-day usually means a provider hiccup; keep the pick
	// rather than flickering it away.
	state := prior
	state.LastEvaluatedAt = now
	m.persist(state, picks.TransitionHeld, prior.EventID)
	return &state, picks.RefreshMetadata{Kind: picks.TransitionHeld, PreviousEventID: prior.EventID}
}

func (m *Machine) hold(prior picks.PickState, cur picks.Candidate, onSlate bool, eligible []picks.Candidate, now time.Time) (*picks.PickState, picks.RefreshMetadata) {
	state := prior
	if onSlate {
		state.Event = cur.Event
	}
	state.LastEvaluatedAt = now
	state.Alternates = AlternatesFor(eligible, state.EventID)
	m.persist(state, picks.TransitionHeld, prior.EventID)
	return &state, picks.RefreshMetadata{Kind: picks.TransitionHeld, PreviousEventID: prior.EventID}
}

// needsReset reports whether the persisted state belongs to a previous pick
// day: a different calendar date, or a pick chosen before today's reset hour
// once that hour has been crossed.
func (m *Machine) needsReset(prior picks.PickState, now time.Time) bool {
	local := now.In(m.loc)
	if prior.PickDate != local.Format(dates.DateLayout) {
		return true
	}
	boundary := time.Date(local.Year(), local.Month(), local.Day(), m.resetHour, 0, 0, 0, m.loc)
	return prior.ChosenAt.Before(boundary) && !local.Before(boundary)
}

// tryOverride checks the exceptional conditions that may replace a locked or
// orphaned pick. cur is nil when the pick is no longer on the slate.
func (m *Machine) tryOverride(category string, prior picks.PickState, cur *picks.Candidate, eligible []picks.Candidate, tier picks.Tier, now time.Time) (*picks.PickState, picks.RefreshMetadata, bool) {
	reason, message, ok := overrideTrigger(prior, cur, eligible)
	if !ok {
		return nil, picks.RefreshMetadata{}, false
	}

	top := eligible[0]
	if top.Event.ID == prior.EventID {
		return nil, picks.RefreshMetadata{}, false
	}

	state := m.newSelected(category, top, eligible, tier, now, reason, message)
	m.persist(state, picks.TransitionOverridden, prior.EventID)
	meta := picks.RefreshMetadata{
		Kind:            picks.TransitionOverridden,
		PreviousEventID: prior.EventID,
		OverrideMessage: message,
	}
	return &state, meta, true
}

func overrideTrigger(prior picks.PickState, cur *picks.Candidate, eligible []picks.Candidate) (picks.OverrideReason, string, bool) {
	if cur == nil {
		return picks.OverrideRemovedFromSlate, "Original pick is no longer on today's slate", true
	}

	switch cur.Event.Status {
	case events.StatusPostponed, events.StatusCanceled:
		return picks.OverridePostponed, "Original pick was postponed or cancelled", true
	}

	if cur.Validation.DataQuality == quality.QualityCriticalMissing {
		return picks.OverrideCriticalMissing, "Original pick is missing critical team data", true
	}

	// Drastic change: all four conditions must hold.
	top := eligible[0]
	dropped := prior.Score-cur.Score() >= drasticScoreDrop
	overtaken := top.Score()-cur.Score() >= drasticScoreEdge
	challengerSolid := tierForChallenger(top, eligible).AtLeast(picks.TierSolid)
	challengerVerified := top.Watchability.InjuryStatusVerified &&
		top.Validation.DataQuality == quality.QualityHigh
	if dropped && overtaken && challengerSolid && challengerVerified {
		msg := fmt.Sprintf("A much better game emerged (now %d vs %d)", top.Score(), cur.Score())
		return picks.OverrideDrasticChange, msg, true
	}

	return "", "", false
}

// tierForChallenger grades the would-be replacement on score and gap alone.
// The challenger was never scored under override conditions, so this is the
// conservative reading: data-quality gates already applied above.
func tierForChallenger(top picks.Candidate, eligible []picks.Candidate) picks.Tier {
	gap := top.Score()
	if len(eligible) > 1 {
		gap = top.Score() - eligible[1].Score()
	}
	if top.Score() >= 65 || gap >= 8 {
		return picks.TierSolid
	}
	return picks.TierWeak
}

func (m *Machine) newSelected(category string, top picks.Candidate, eligible []picks.Candidate, tier picks.Tier, now time.Time, overrideReason picks.OverrideReason, overrideMessage string) picks.PickState {
	return picks.PickState{
		Category:        category,
		PickDate:        now.In(m.loc).Format(dates.DateLayout),
		EventID:         top.Event.ID,
		Event:           top.Event,
		Locked:          false,
		ChosenAt:        now,
		LastEvaluatedAt: now,
		Score:           top.Score(),
		Tier:            tier,
		Alternates:      AlternatesFor(eligible, top.Event.ID),
		OverrideReason:  overrideReason,
		OverrideMessage: overrideMessage,
	}
}

func (m *Machine) persist(state picks.PickState, kind picks.TransitionKind, previousEventID string) {
	if err := m.store.Save(state.Category, state); err != nil {
		logging.Error(m.logger, "pick state save failed", err,
			slog.String(logging.FieldCategory, state.Category),
			slog.String(logging.FieldEventID, state.EventID))
	}
	logging.Info(m.logger, "pick state transition",
		slog.String(logging.FieldCategory, state.Category),
		slog.String(logging.FieldTransition, string(kind)),
		slog.String(logging.FieldEventID, state.EventID),
		slog.String(logging.FieldPrevEvent, previousEventID),
		slog.Int(logging.FieldScore, state.Score),
		slog.String(logging.FieldTier, string(state.Tier)))
}

func lockReason(ev events.Event, now time.Time) (picks.LockReason, bool) {
	switch {
	case ev.Status == events.StatusInProgress:
		return picks.LockInProgress, true
	case ev.Status == events.StatusFinal:
		return picks.LockStarted, true
	case ev.Started(now):
		return picks.LockStarted, true
	}
	return "", false
}

func priorEventID(prior picks.PickState, hasPrior bool) string {
	if hasPrior {
		return prior.EventID
	}
	return ""
}

func findCandidate(eligible []picks.Candidate, eventID string) (picks.Candidate, bool) {
	for _, c := range eligible {
		if c.Event.ID == eventID {
			return c, true
		}
	}
	return picks.Candidate{}, false
}

// AlternatesFor lists up to three next-best eligible event IDs, skipping the
// picked event itself.
func AlternatesFor(eligible []picks.Candidate, pickID string) []string {
	var alternates []string
	for _, c := range eligible {
		if c.Event.ID == pickID {
			continue
		}
		alternates = append(alternates, c.Event.ID)
		if len(alternates) == maxAlternates {
			break
		}
	}
	return alternates
}
