package scoring

import (
	"github.com/preston-bernstein/watchability-service/internal/domain/events"
	"github.com/preston-bernstein/watchability-service/internal/domain/teams"
)

const (
	narrativeMax      = 20
	rivalryScale      = 5
	headlineBonus     = 3
	sameLocalityBonus = 6

	// Two elite records meeting is a story in itself, even without a rivalry
	// entry or a headline. The floor needs a real sample behind both records.
	contenderFloor    = 8
	contenderPct      = 0.650
	contenderMinGames = 15
)

// narrativeScore grades the story around the game: rivalry history, a
// provider-supplied headline, and same-city matchups without a rivalry entry.
func narrativeScore(cat Category, ev events.Event) SubScore {
	intensity := cat.RivalryIntensity(ev.HomeTeam.Code, ev.AwayTeam.Code)
	score := intensity * rivalryScale
	reason := ""
	switch {
	case intensity >= 3:
		reason = "Historic rivalry"
	case intensity > 0:
		reason = "Rivalry matchup"
	}

	if ev.Headline != "" {
		score += headlineBonus
		if reason == "" {
			reason = "Storyline game"
		}
	}

	if intensity == 0 && sameLocality(ev) {
		score += sameLocalityBonus
		reason = "Crosstown matchup"
	}

	if score < contenderFloor && contenderMatchup(ev.HomeTeam, ev.AwayTeam) {
		score = contenderFloor
		reason = "Two contenders measuring up"
	}

	if score > narrativeMax {
		score = narrativeMax
	}
	if reason == "" {
		reason = "No standout storyline"
	}
	return SubScore{Score: score, Reason: reason}
}

func contenderMatchup(home, away teams.Team) bool {
	return isContender(home) && isContender(away)
}

func isContender(t teams.Team) bool {
	wins, losses, ok := teams.ParseRecord(t.Record)
	if !ok || wins+losses < contenderMinGames {
		return false
	}
	return float64(wins)/float64(wins+losses) >= contenderPct
}

func sameLocality(ev events.Event) bool {
	return ev.HomeTeam.Location != "" && ev.HomeTeam.Location == ev.AwayTeam.Location
}
