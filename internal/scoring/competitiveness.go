package scoring

import (
	"math"

	"github.com/preston-bernstein/watchability-service/internal/domain/teams"
)

const (
	competitivenessMax = 20
	competitivenessMin = 4

	closeGap   = 0.050
	blowoutGap = 0.250
)

// competitivenessScore is an inverse function of the win-percentage gap
// between the two sides. Missing records degrade to a neutral middle score.
func competitivenessScore(home, away teams.Team) SubScore {
	homePct, homeOK := home.WinPct()
	awayPct, awayOK := away.WinPct()
	if !homeOK || !awayOK {
		return SubScore{Score: 10, Reason: "Records unavailable"}
	}

	gap := math.Abs(homePct - awayPct)
	switch {
	case gap <= closeGap:
		return SubScore{Score: competitivenessMax, Reason: "Evenly matched on paper"}
	case gap > blowoutGap:
		return SubScore{Score: competitivenessMin, Reason: "Likely mismatch"}
	}

	span := blowoutGap - closeGap
	scale := float64(competitivenessMax-competitivenessMin) / span
	score := competitivenessMax - int(math.Round((gap-closeGap)*scale))
	return SubScore{Score: score, Reason: "Reasonably close matchup"}
}
