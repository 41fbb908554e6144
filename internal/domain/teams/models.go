package teams

import (
	"strconv"
	"strings"
)

// Team represents the normalized shape for one side of an event.
type Team struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Record   string `json:"record,omitempty"`
	Location string `json:"location,omitempty"`
	Division string `json:"division,omitempty"`
}

// ParseRecord splits a "W-L" record string into wins and losses.
func ParseRecord(record string) (wins, losses int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(record), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	wins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || wins < 0 {
		return 0, 0, false
	}
	losses, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || losses < 0 {
		return 0, 0, false
	}
	return wins, losses, true
}

// WinPct returns the team's win percentage from its record.
// A team with no games played reports 0 with ok=true.
func (t Team) WinPct() (float64, bool) {
	wins, losses, ok := ParseRecord(t.Record)
	if !ok {
		return 0, false
	}
	total := wins + losses
	if total == 0 {
		return 0, true
	}
	return float64(wins) / float64(total), true
}

// GamesPlayed returns the total games reflected in the record.
func (t Team) GamesPlayed() (int, bool) {
	wins, losses, ok := ParseRecord(t.Record)
	if !ok {
		return 0, false
	}
	return wins + losses, true
}
