// Package scoring converts a candidate event into a composite watchability
// score, a component breakdown, and a one-line why-watch rationale.
package scoring

import (
	"log/slog"
	"math"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/quality"
)

// AvailabilitySource is the injected availability lookup consulted by the
// notable-player sub-scorer. Stale or missing data degrades to unverified.
type AvailabilitySource interface {
	FilterAvailable(category, teamCode string, names []string) (available []string, hasUnverified bool)
}

// SubScore is one sub-scorer's contribution with its human-readable reason.
type SubScore struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Components is the five-way breakdown behind a composite score.
type Components struct {
	Stakes          SubScore `json:"stakes"`
	StarPower       SubScore `json:"starPower"`
	Competitiveness SubScore `json:"competitiveness"`
	Narrative       SubScore `json:"narrative"`
	Access          SubScore `json:"access"`
}

// Breakdown is the full scoring result for one event.
type Breakdown struct {
	Total      int        `json:"total"`
	Components Components `json:"components"`
	WhyWatch   string     `json:"whyWatch"`
	Pairing    Pairing    `json:"pairing"`

	// InjuryStatusVerified is false when any displayed notable player's
	// availability could not be confirmed from fresh roster data.
	InjuryStatusVerified bool `json:"injuryStatusVerified"`
	// TwoSidedPairing marks a head-to-head pairing across the two sides.
	TwoSidedPairing bool `json:"twoSidedPairing"`
}

const (
	fallbackCap   = 70
	unverifiedCap = 85
)

// Engine runs the five sub-scorers and combines them. Sub-scorers are
// independent: a degenerate input weakens one component without aborting the
// rest.
type Engine struct {
	avail  AvailabilitySource
	loc    *time.Location
	logger *slog.Logger
}

// NewEngine constructs an Engine. loc is the reference timezone used for the
// prime-time bonus; nil falls back to UTC.
func NewEngine(avail AvailabilitySource, loc *time.Location, logger *slog.Logger) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{avail: avail, loc: loc, logger: logger}
}

// Score computes the composite watchability breakdown for one event.
func (e *Engine) Score(ev events.Event, val quality.Validation) Breakdown {
	cat := CategoryFor(ev.Category)

	stakes := stakesScore(ev.HomeTeam, ev.AwayTeam, val.FallbackMode)
	star := starPowerScore(cat, e.avail, ev)
	comp := competitivenessScore(ev.HomeTeam, ev.AwayTeam)
	narr := narrativeScore(cat, ev)
	access := accessScore(ev, e.loc)

	b := Breakdown{
		Components: Components{
			Stakes:          stakes,
			StarPower:       star.SubScore,
			Competitiveness: comp,
			Narrative:       narr,
			Access:          access,
		},
		Pairing:              star.Pairing,
		InjuryStatusVerified: !star.Unverified,
		TwoSidedPairing:      star.TwoSided,
	}

	switch {
	case val.FallbackMode:
		// Records are untrusted; lean on narrative and star power instead.
		b.Total = capped(stakes.Score+
			scale(star.Score, 1.5)+
			scale(comp.Score, 0.5)+
			scale(narr.Score, 1.25)+
			access.Score, fallbackCap)
	case star.TwoSided && star.Unverified:
		// An unconfirmed head-to-head must not produce a top-confidence signal.
		b.Total = capped(stakes.Score+
			scale(star.Score, 0.7)+
			comp.Score+narr.Score+access.Score, unverifiedCap)
	default:
		b.Total = stakes.Score + star.Score + comp.Score + narr.Score + access.Score
	}

	b.WhyWatch = whyWatch(ev, b, star)
	return b
}

func scale(score int, factor float64) int {
	return int(math.Round(float64(score) * factor))
}

func capped(total, limit int) int {
	if total > limit {
		return limit
	}
	return total
}
