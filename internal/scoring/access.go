package scoring

import (
	"strings"
	"time"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
)

const accessMax = 10

var nationalChannels = map[string]struct{}{
	"espn": {}, "abc": {}, "nbc": {}, "cbs": {}, "fox": {},
	"tnt": {}, "tbs": {}, "prime video": {}, "amazon prime video": {},
	"apple tv+": {}, "peacock": {},
}

var cableChannels = map[string]struct{}{
	"espn2": {}, "espnu": {}, "fs1": {}, "trutv": {}, "usa": {},
	"nba tv": {}, "nfl network": {}, "mlb network": {},
}

// accessScore grades how easy the game is to actually watch: broadcast reach
// plus a prime-time bump.
func accessScore(ev events.Event, loc *time.Location) SubScore {
	channel := strings.ToLower(strings.TrimSpace(ev.Broadcast))

	var score int
	var reason string
	switch {
	case channel == "":
		score, reason = 0, "No listed broadcast"
	case isChannel(nationalChannels, channel):
		score, reason = 9, "National broadcast"
	case isChannel(cableChannels, channel):
		score, reason = 6, "Widely carried cable broadcast"
	default:
		score, reason = 3, "Regional broadcast"
	}

	if ev.HasStart() && loc != nil {
		hour := ev.StartTime.In(loc).Hour()
		if hour >= 19 && hour <= 21 {
			score++
		}
	}
	if score > accessMax {
		score = accessMax
	}
	return SubScore{Score: score, Reason: reason}
}

func isChannel(set map[string]struct{}, channel string) bool {
	_, ok := set[channel]
	return ok
}
