package scoring

import "strings"

type nflCategory struct{}

func (nflCategory) Key() string { return CategoryNFL }

func (nflCategory) PremierPlayers(teamCode string) []string {
	return nflPremier[strings.ToUpper(teamCode)]
}

func (nflCategory) SecondaryPlayers(teamCode string) []string {
	return nflSecondary[strings.ToUpper(teamCode)]
}

func (nflCategory) RivalryIntensity(a, b string) int {
	return nflRivalries[rivalryKey(a, b)]
}

func (nflCategory) UsesProbables() bool { return false }

var nflPremier = map[string][]string{
	"KC":  {"Patrick Mahomes"},
	"BUF": {"Josh Allen"},
	"BAL": {"Lamar Jackson"},
	"CIN": {"Joe Burrow"},
	"PHI": {"Jalen Hurts"},
	"SF":  {"Christian McCaffrey"},
	"DAL": {"CeeDee Lamb"},
	"MIA": {"Tyreek Hill"},
	"MIN": {"Justin Jefferson"},
}

var nflSecondary = map[string][]string{
	"KC":  {"Travis Kelce"},
	"BUF": {"Stefon Diggs"},
	"BAL": {"Mark Andrews"},
	"CIN": {"Ja'Marr Chase"},
	"PHI": {"A.J. Brown"},
	"SF":  {"Brock Purdy"},
	"DAL": {"Micah Parsons"},
	"DET": {"Amon-Ra St. Brown"},
	"HOU": {"C.J. Stroud"},
	"NYJ": {"Aaron Rodgers"},
	"GB":  {"Jordan Love"},
	"LAC": {"Justin Herbert"},
}

var nflRivalries = map[string]int{
	rivalryKey("GB", "CHI"):  3,
	rivalryKey("DAL", "WSH"): 3,
	rivalryKey("PIT", "BAL"): 3,
	rivalryKey("KC", "LV"):   2,
	rivalryKey("DAL", "PHI"): 2,
	rivalryKey("NE", "NYJ"):  2,
	rivalryKey("SF", "SEA"):  2,
	rivalryKey("CIN", "CLE"): 2,
	rivalryKey("BUF", "MIA"): 1,
	rivalryKey("GB", "MIN"):  1,
	rivalryKey("NO", "ATL"):  2,
	rivalryKey("DEN", "LV"):  1,
}
