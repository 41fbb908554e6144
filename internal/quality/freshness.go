package quality

import (
	"math"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
)

// Freshness describes how stale a data snapshot is relative to the threshold
// appropriate for the event's state. It gates only the top confidence tier and
// display subtext; it never blocks a pick.
type Freshness struct {
	Fresh            bool    `json:"fresh"`
	AgeMinutes       float64 `json:"ageMinutes"`
	ThresholdMinutes float64 `json:"thresholdMinutes"`
}

const (
	freshnessLiveMinutes    = 5
	freshnessSettledMinutes = 60
	freshnessDefaultMinutes = 30
)

// CheckFreshness computes snapshot age against a status-dependent threshold.
// A zero fetch instant yields infinite age and is never fresh.
func CheckFreshness(fetchedAt time.Time, status events.Status, now time.Time) Freshness {
	threshold := freshnessThreshold(status)
	if fetchedAt.IsZero() {
		return Freshness{Fresh: false, AgeMinutes: math.Inf(1), ThresholdMinutes: threshold}
	}
	age := now.Sub(fetchedAt).Minutes()
	if age < 0 {
		age = 0
	}
	return Freshness{
		Fresh:            age <= threshold,
		AgeMinutes:       age,
		ThresholdMinutes: threshold,
	}
}

func freshnessThreshold(status events.Status) float64 {
	switch status {
	case events.StatusInProgress:
		return freshnessLiveMinutes
	case events.StatusScheduled, events.StatusFinal:
		return freshnessSettledMinutes
	default:
		return freshnessDefaultMinutes
	}
}
