package scoring

import (
	"fmt"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
)

// Supporting-reason thresholds: a component only earns a mention when it
// cleared these.
const (
	whyStakesThreshold    = 22
	whyCompThreshold      = 16
	whyNarrativeThreshold = 12
	whyAccessThreshold    = 9
)

// whyWatch renders the single-sentence rationale shown with a pick. Player
// names are never repeated here; the pairing is abstracted because the names
// already appear in the accompanying display.
func whyWatch(ev events.Event, b Breakdown, star starResult) string {
	support := supportingReason(b)

	switch star.Pairing.Type {
	case "vs":
		lead := "A marquee head-to-head headlines this one"
		if star.Unverified {
			lead = "An expected marquee head-to-head headlines this one"
		}
		return withSupport(lead, support)
	case "solo":
		lead := "A star showcase worth tuning in for"
		if star.Unverified {
			lead = "A likely star showcase worth tuning in for"
		}
		return withSupport(lead, support)
	default:
		lead := fmt.Sprintf("%s visit the %s", teamLabel(ev.AwayTeam.Name, ev.AwayTeam.Code), teamLabel(ev.HomeTeam.Name, ev.HomeTeam.Code))
		return withSupport(lead, support)
	}
}

// supportingReason picks at most one extra angle from the non-star components.
func supportingReason(b Breakdown) string {
	c := b.Components
	switch {
	case c.Stakes.Score >= whyStakesThreshold:
		return "real stakes on both sides"
	case c.Competitiveness.Score >= whyCompThreshold:
		return "two evenly matched teams"
	case c.Narrative.Score >= whyNarrativeThreshold:
		return "plenty of history between these two"
	case c.Access.Score >= whyAccessThreshold:
		return "an easy find on national TV"
	}
	return ""
}

func withSupport(lead, support string) string {
	if support == "" {
		return lead + "."
	}
	return lead + ", with " + support + "."
}

func teamLabel(name, code string) string {
	if name != "" {
		return name
	}
	if code != "" {
		return code
	}
	return "the visitors"
}
