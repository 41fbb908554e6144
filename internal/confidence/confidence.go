// Package confidence classifies a ranked candidate list into the three-level
// confidence tier shown with the day's pick.
package confidence

import (
	"fmt"
	"math"

	"github.com/preston-bernstein/watchability-service/internal/domain/picks"
	"github.com/preston-bernstein/watchability-service/internal/quality"
)

// Result is the tier plus the display copy derived from it.
type Result struct {
	Tier    picks.Tier `json:"tier"`
	Header  string     `json:"header"`
	Subtext string     `json:"subtext,omitempty"`
}

const (
	clearTopScore = 80
	clearGap      = 10
	solidTopScore = 65
	solidGap      = 8
)

// Compute classifies the ranked, pick-eligible candidate list. An empty list
// is Weak with a "no games" header; freshness and verification soften the
// subtext but never block a result.
func Compute(ranked []picks.Candidate, freshness quality.Freshness) Result {
	if len(ranked) == 0 {
		return Result{
			Tier:   picks.TierWeak,
			Header: "No games on the slate today",
		}
	}

	top := ranked[0]
	gap := top.Score()
	if len(ranked) > 1 {
		gap = top.Score() - ranked[1].Score()
	}

	if isClear(top, gap, freshness) {
		return Result{
			Tier:    picks.TierClear,
			Header:  "Clear pick tonight",
			Subtext: fmt.Sprintf("Scored %d, %d ahead of the next best game", top.Score(), gap),
		}
	}

	if top.Score() >= solidTopScore || gap >= solidGap {
		return Result{
			Tier:    picks.TierSolid,
			Header:  "Solid pick tonight",
			Subtext: solidSubtext(top, freshness),
		}
	}

	return Result{
		Tier:    picks.TierWeak,
		Header:  "Slim pickings tonight",
		Subtext: "Nothing stands out on today's slate",
	}
}

func isClear(top picks.Candidate, gap int, freshness quality.Freshness) bool {
	return top.Score() >= clearTopScore &&
		top.Validation.DataQuality == quality.QualityHigh &&
		gap >= clearGap &&
		!top.Validation.FallbackMode &&
		!(top.Watchability.TwoSidedPairing && !top.Watchability.InjuryStatusVerified) &&
		freshness.Fresh
}

func solidSubtext(top picks.Candidate, freshness quality.Freshness) string {
	if top.Watchability.TwoSidedPairing && !top.Watchability.InjuryStatusVerified {
		return "Check injury reports before tipoff"
	}
	if !freshness.Fresh {
		if math.IsInf(freshness.AgeMinutes, 1) {
			return "Data age unknown"
		}
		return fmt.Sprintf("Data is %.0f minutes old", freshness.AgeMinutes)
	}
	return "A good bet for tonight's watch"
}
