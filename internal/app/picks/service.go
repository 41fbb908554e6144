// Package picks orchestrates one refresh pass per category: fetch, derive,
// rank, classify confidence, and run the pick state machine.
package picks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/availability"
	"github.com/preston-bernstein/watchability-service/internal/confidence"
	"github.com/preston-bernstein/watchability-service/internal/dates"
	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	domainpicks "github.com/preston-bernstein/watchability-service/internal/domain/picks"
	"github.com/preston-bernstein/watchability-service/internal/logging"
	"github.com/preston-bernstein/watchability-service/internal/metrics"
	"github.com/preston-bernstein/watchability-service/internal/pickstate"
	"github.com/preston-bernstein/watchability-service/internal/providers"
	"github.com/preston-bernstein/watchability-service/internal/quality"
	"github.com/preston-bernstein/watchability-service/internal/ranking"
	"github.com/preston-bernstein/watchability-service/internal/scoring"
)

// RefreshResult is the full outcome of one category refresh, cached in memory
// for the HTTP layer to serve.
type RefreshResult struct {
	Category    string                      `json:"category"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	Ranked      []domainpicks.Candidate     `json:"ranked"`
	Pick        *domainpicks.PickState      `json:"pick,omitempty"`
	Alternates  []string                    `json:"alternates,omitempty"`
	Confidence  confidence.Result           `json:"confidence"`
	Metadata    domainpicks.RefreshMetadata `json:"metadata"`

	// SourceError carries the upstream failure message when the refresh could
	// not fetch events; the previous result, if any, stays served.
	SourceError string `json:"sourceError,omitempty"`
}

// Service runs the watchability pipeline for each configured category.
type Service struct {
	provider  providers.DataProvider
	avail     *availability.Cache
	validator *quality.Validator
	engine    *scoring.Engine
	machine   *pickstate.Machine
	logger    *slog.Logger
	metrics   *metrics.Recorder
	loc       *time.Location
	now       func() time.Time

	mu      sync.Mutex
	refresh map[string]*sync.Mutex
	results map[string]RefreshResult
}

// NewService constructs a Service. loc is the reference timezone used for date
// classification; nil falls back to UTC.
func NewService(provider providers.DataProvider, avail *availability.Cache, validator *quality.Validator, engine *scoring.Engine, machine *pickstate.Machine, loc *time.Location, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		provider:  provider,
		avail:     avail,
		validator: validator,
		engine:    engine,
		machine:   machine,
		logger:    logger,
		metrics:   recorder,
		loc:       loc,
		now:       time.Now,
		refresh:   make(map[string]*sync.Mutex),
		results:   make(map[string]RefreshResult),
	}
}

// Refresh runs one full pipeline pass for a category. Concurrent refreshes of
// the same category serialize; distinct categories run independently.
func (s *Service) Refresh(ctx context.Context, category string) (RefreshResult, error) {
	lock := s.categoryLock(category)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()
	result, err := s.refreshLocked(ctx, category)
	if s.metrics != nil {
		s.metrics.RecordRefreshCycle(category, time.Since(start), err)
		s.metrics.RecordPickTransition(category, string(result.Metadata.Kind))
	}
	return result, err
}

func (s *Service) refreshLocked(ctx context.Context, category string) (RefreshResult, error) {
	now := s.now()
	today := now.In(s.loc).Format(dates.DateLayout)

	fetched, err := s.provider.FetchEvents(ctx, category, today)
	if err != nil {
		logging.Error(s.logger, "event fetch failed", err,
			slog.String(logging.FieldCategory, category))
		// Keep serving the last good result; surface the failure alongside it.
		prev, ok := s.result(category)
		if !ok {
			prev = RefreshResult{Category: category, GeneratedAt: now}
		}
		prev.SourceError = err.Error()
		s.storeResult(category, prev)
		return prev, err
	}

	s.refreshRosters(ctx, category, fetched)

	candidates := make([]domainpicks.Candidate, 0, len(fetched))
	for _, ev := range fetched {
		classification := dates.Classify(ev.StartTime, now, s.loc)
		validation := s.validator.Validate(ev.HomeTeam, ev.AwayTeam)
		freshness := quality.CheckFreshness(ev.FetchedAt, ev.Status, now)
		breakdown := s.engine.Score(ev, validation)
		validation.UnverifiedMatchup = breakdown.TwoSidedPairing && !breakdown.InjuryStatusVerified

		candidates = append(candidates, domainpicks.Candidate{
			Event:          ev,
			Classification: classification,
			Validation:     validation,
			Freshness:      freshness,
			Watchability:   breakdown,
		})
	}

	ranked := ranking.Rank(candidates)
	eligible := ranking.Eligible(ranked)

	var topFreshness quality.Freshness
	if len(eligible) > 0 {
		topFreshness = eligible[0].Freshness
	}
	conf := confidence.Compute(eligible, topFreshness)

	state, meta := s.machine.Evaluate(category, eligible, conf.Tier, now)

	// Alternates live on the result too, so an empty or held pick still
	// surfaces the next-best eligible events.
	pickID := ""
	if state != nil {
		pickID = state.EventID
	}

	result := RefreshResult{
		Category:    category,
		GeneratedAt: now,
		Ranked:      ranked,
		Pick:        state,
		Alternates:  pickstate.AlternatesFor(eligible, pickID),
		Confidence:  conf,
		Metadata:    meta,
	}
	s.storeResult(category, result)

	logging.Info(s.logger, "category refreshed",
		slog.String(logging.FieldCategory, category),
		slog.Int(logging.FieldCount, len(ranked)),
		slog.String(logging.FieldTransition, string(meta.Kind)),
		slog.String(logging.FieldTier, string(conf.Tier)))
	return result, nil
}

// refreshRosters warms the availability cache for every team on the slate.
// Roster failures are non-fatal: scoring degrades to unverified status.
func (s *Service) refreshRosters(ctx context.Context, category string, fetched []events.Event) {
	seen := make(map[string]struct{})
	for _, ev := range fetched {
		for _, code := range []string{ev.HomeTeam.Code, ev.AwayTeam.Code} {
			if code == "" {
				continue
			}
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}

			entries, err := s.provider.FetchRoster(ctx, category, code)
			if err != nil {
				logging.Warn(s.logger, "roster fetch failed",
					slog.String(logging.FieldCategory, category),
					slog.String(logging.FieldTeam, code),
					"error", err)
				continue
			}
			s.avail.RecordRoster(category, code, entries)
		}
	}
}

// Result returns the most recent refresh outcome for a category.
func (s *Service) Result(category string) (RefreshResult, bool) {
	return s.result(category)
}

// Pick returns the current pick state for a category, if one exists.
func (s *Service) Pick(category string) (*domainpicks.PickState, bool) {
	result, ok := s.result(category)
	if !ok || result.Pick == nil {
		return nil, false
	}
	return result.Pick, true
}

// Confidence returns the tier computed on a category's latest refresh.
func (s *Service) Confidence(category string) (confidence.Result, bool) {
	result, ok := s.result(category)
	if !ok {
		return confidence.Result{}, false
	}
	return result.Confidence, true
}

func (s *Service) categoryLock(category string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.refresh[category]
	if !ok {
		lock = &sync.Mutex{}
		s.refresh[category] = lock
	}
	return lock
}

func (s *Service) result(category string) (RefreshResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.results[category]
	return result, ok
}

func (s *Service) storeResult(category string, result RefreshResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[category] = result
}
