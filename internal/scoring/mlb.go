package scoring

import "strings"

type mlbCategory struct{}

func (mlbCategory) Key() string { return CategoryMLB }

func (mlbCategory) PremierPlayers(teamCode string) []string {
	return mlbPremier[strings.ToUpper(teamCode)]
}

func (mlbCategory) SecondaryPlayers(teamCode string) []string {
	return mlbSecondary[strings.ToUpper(teamCode)]
}

func (mlbCategory) RivalryIntensity(a, b string) int {
	return mlbRivalries[rivalryKey(a, b)]
}

// MLB narrows notables to the provider's probable starters when present, so a
// marquee pitcher only counts on the day he takes the mound.
func (mlbCategory) UsesProbables() bool { return true }

var mlbPremier = map[string][]string{
	"LAD": {"Shohei Ohtani", "Mookie Betts"},
	"NYY": {"Aaron Judge", "Gerrit Cole"},
	"ATL": {"Ronald Acuna Jr."},
	"PHI": {"Bryce Harper"},
	"SD":  {"Fernando Tatis Jr."},
	"NYM": {"Francisco Lindor"},
	"BAL": {"Gunnar Henderson"},
	"KC":  {"Bobby Witt Jr."},
}

var mlbSecondary = map[string][]string{
	"LAD": {"Freddie Freeman"},
	"NYY": {"Juan Soto"},
	"ATL": {"Matt Olson"},
	"PHI": {"Zack Wheeler"},
	"SD":  {"Manny Machado"},
	"HOU": {"Jose Altuve"},
	"TEX": {"Corey Seager"},
	"SEA": {"Julio Rodriguez"},
	"TOR": {"Vladimir Guerrero Jr."},
	"PIT": {"Paul Skenes"},
}

var mlbRivalries = map[string]int{
	rivalryKey("NYY", "BOS"): 3,
	rivalryKey("LAD", "SF"):  3,
	rivalryKey("CHC", "STL"): 3,
	rivalryKey("NYY", "NYM"): 2,
	rivalryKey("LAD", "SD"):  2,
	rivalryKey("HOU", "TEX"): 2,
	rivalryKey("CLE", "DET"): 1,
	rivalryKey("ATL", "NYM"): 2,
	rivalryKey("BAL", "WSH"): 1,
}
