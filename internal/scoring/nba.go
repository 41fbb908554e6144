package scoring

import "strings"

type nbaCategory struct{}

func (nbaCategory) Key() string { return CategoryNBA }

func (nbaCategory) PremierPlayers(teamCode string) []string {
	return nbaPremier[strings.ToUpper(teamCode)]
}

func (nbaCategory) SecondaryPlayers(teamCode string) []string {
	return nbaSecondary[strings.ToUpper(teamCode)]
}

func (nbaCategory) RivalryIntensity(a, b string) int {
	return nbaRivalries[rivalryKey(a, b)]
}

func (nbaCategory) UsesProbables() bool { return false }

// Static marquee tiers, maintained by hand each season.
var nbaPremier = map[string][]string{
	"MIL": {"Giannis Antetokounmpo"},
	"DAL": {"Luka Doncic"},
	"DEN": {"Nikola Jokic"},
	"LAL": {"LeBron James"},
	"GSW": {"Stephen Curry"},
	"PHI": {"Joel Embiid"},
	"OKC": {"Shai Gilgeous-Alexander"},
	"BOS": {"Jayson Tatum"},
	"PHX": {"Kevin Durant"},
	"MIN": {"Anthony Edwards"},
	"SAS": {"Victor Wembanyama"},
}

var nbaSecondary = map[string][]string{
	"MIL": {"Damian Lillard"},
	"DAL": {"Kyrie Irving"},
	"DEN": {"Jamal Murray"},
	"LAL": {"Anthony Davis"},
	"GSW": {"Draymond Green"},
	"PHI": {"Tyrese Maxey"},
	"OKC": {"Chet Holmgren"},
	"BOS": {"Jaylen Brown"},
	"PHX": {"Devin Booker"},
	"MIN": {"Karl-Anthony Towns"},
	"NYK": {"Jalen Brunson"},
	"CLE": {"Donovan Mitchell"},
	"MEM": {"Ja Morant"},
	"SAC": {"De'Aaron Fox"},
	"ATL": {"Trae Young"},
	"IND": {"Tyrese Haliburton"},
	"MIA": {"Jimmy Butler"},
	"NOP": {"Zion Williamson"},
}

var nbaRivalries = map[string]int{
	rivalryKey("BOS", "LAL"): 3,
	rivalryKey("BOS", "PHI"): 2,
	rivalryKey("BOS", "NYK"): 2,
	rivalryKey("LAL", "LAC"): 2,
	rivalryKey("GSW", "CLE"): 2,
	rivalryKey("GSW", "LAL"): 2,
	rivalryKey("MIA", "NYK"): 2,
	rivalryKey("CHI", "DET"): 2,
	rivalryKey("DAL", "HOU"): 1,
	rivalryKey("DEN", "MIN"): 1,
	rivalryKey("MIL", "BOS"): 1,
	rivalryKey("PHX", "SAS"): 1,
}
