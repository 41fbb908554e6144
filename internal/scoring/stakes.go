package scoring

import "github.com/preston-bernstein/watchability-service/internal/domain/teams"

const stakesMax = 30

// stakesScore grades what the game means for both sides from their records.
// In fallback mode the records are not trusted, so it short-circuits flat.
func stakesScore(home, away teams.Team, fallback bool) SubScore {
	if fallback {
		return SubScore{Score: 8, Reason: "Limited team data available"}
	}

	homePct, homeOK := home.WinPct()
	awayPct, awayOK := away.WinPct()
	if !homeOK || !awayOK {
		return SubScore{Score: 8, Reason: "Team records unavailable"}
	}

	var score int
	var reason string
	switch {
	case homePct >= 0.550 && awayPct >= 0.550:
		score, reason = 25, "Two top teams with a lot on the line"
	case homePct >= 0.500 && awayPct >= 0.500:
		score, reason = 18, "Both teams above .500"
	case homePct >= 0.500 || awayPct >= 0.500:
		score, reason = 10, "One side playing meaningful games"
	default:
		score, reason = 5, "Low-stakes matchup"
	}

	if sameDivision(home, away) {
		score += 5
		reason = "Division matchup with standings implications"
	}
	if score > stakesMax {
		score = stakesMax
	}
	return SubScore{Score: score, Reason: reason}
}

func sameDivision(home, away teams.Team) bool {
	return home.Division != "" && home.Division == away.Division
}
