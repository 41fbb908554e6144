package quality

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/teams"
	"github.com/preston-bernstein/watchability-service/internal/logging"
)

// DataQuality grades how trustworthy a candidate's team data looks.
type DataQuality string

const (
	QualityHigh            DataQuality = "HIGH"
	QualityDegraded        DataQuality = "DEGRADED"
	QualityCriticalMissing DataQuality = "CRITICAL_MISSING"
)

// Validation is the per-event data-quality record carried through scoring.
type Validation struct {
	Valid        bool        `json:"valid"`
	FallbackMode bool        `json:"fallbackMode"`
	DataQuality  DataQuality `json:"dataQuality"`
	Issues       []string    `json:"issues,omitempty"`

	// UnverifiedMatchup is set after scoring when a displayed pairing relied
	// on unverified availability data.
	UnverifiedMatchup bool `json:"unverifiedMatchup,omitempty"`
}

const (
	suspiciousRecordMinGames = 15
	suspiciousPctLow         = 0.15
	suspiciousPctHigh        = 0.85
)

// Validator sanity-checks candidate team data. Warnings are logged
// fire-and-forget; a nil logger is fine.
type Validator struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewValidator constructs a Validator.
func NewValidator(logger *slog.Logger) *Validator {
	return &Validator{logger: logger, now: time.Now}
}

// Validate checks both sides of a matchup. Critical missing fields short-circuit
// to fallback mode; plausibility issues degrade quality but never stop processing.
func (v *Validator) Validate(home, away teams.Team) Validation {
	if missing, issue := criticalMissing(home, away); missing {
		val := Validation{
			Valid:        false,
			FallbackMode: true,
			DataQuality:  QualityCriticalMissing,
			Issues:       []string{issue},
		}
		v.warn("candidate has critical data missing", issue)
		return val
	}

	var issues []string
	issues = append(issues, v.plausibilityIssues(home)...)
	issues = append(issues, v.plausibilityIssues(away)...)

	if len(issues) > 0 {
		for _, issue := range issues {
			v.warn("candidate data looks implausible", issue)
		}
		return Validation{
			Valid:        true,
			FallbackMode: true,
			DataQuality:  QualityDegraded,
			Issues:       issues,
		}
	}
	return Validation{Valid: true, DataQuality: QualityHigh}
}

func criticalMissing(home, away teams.Team) (bool, string) {
	switch {
	case home == (teams.Team{}):
		return true, "home team missing"
	case away == (teams.Team{}):
		return true, "away team missing"
	case home.Code == "":
		return true, "home team code missing"
	case away.Code == "":
		return true, "away team code missing"
	}
	return false, ""
}

func (v *Validator) plausibilityIssues(t teams.Team) []string {
	var issues []string

	games, ok := t.GamesPlayed()
	if !ok {
		return []string{t.Code + ": record missing"}
	}

	if min := seasonMinimumGames(v.now()); games < min {
		issues = append(issues, t.Code+": games played below season minimum")
	}

	if pct, ok := t.WinPct(); ok && games >= suspiciousRecordMinGames {
		if pct < suspiciousPctLow || pct > suspiciousPctHigh {
			issues = append(issues, t.Code+": suspicious win percentage")
		}
	}
	return issues
}

// seasonMinimumGames is the calendar-driven floor for games played, stepping up
// as the season progresses. A record far below it usually means stale data.
func seasonMinimumGames(now time.Time) int {
	switch now.Month() {
	case time.October:
		return 0
	case time.November:
		return 5
	case time.December:
		return 15
	case time.January:
		return 25
	case time.February:
		return 35
	case time.March:
		return 45
	case time.April, time.May, time.June:
		return 55
	default:
		return 0
	}
}

func (v *Validator) warn(msg, issue string) {
	logging.Warn(v.logger, msg, slog.String(logging.FieldIssue, issue))
}
