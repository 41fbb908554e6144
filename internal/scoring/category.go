package scoring

import "strings"

// Category is the per-sport strategy consulted by the sub-scorers. One
// implementation exists per supported sport; tier tables and rivalry data are
// never shared across categories.
type Category interface {
	Key() string
	// PremierPlayers lists the top-tier marquee players for a team code.
	PremierPlayers(teamCode string) []string
	// SecondaryPlayers lists the second-tier notable players for a team code.
	SecondaryPlayers(teamCode string) []string
	// RivalryIntensity returns the symmetric rivalry grade (0-3) for two codes.
	RivalryIntensity(a, b string) int
	// UsesProbables reports whether provider probable-participant hints narrow
	// the notable-player pool (starting pitchers).
	UsesProbables() bool
}

var categories = map[string]Category{
	CategoryNBA: nbaCategory{},
	CategoryNFL: nflCategory{},
	CategoryMLB: mlbCategory{},
}

// Supported category keys.
const (
	CategoryNBA = "nba"
	CategoryNFL = "nfl"
	CategoryMLB = "mlb"
)

// CategoryFor resolves a category key, falling back to an empty profile so an
// unknown sport still scores (with no notable-player or rivalry signal).
func CategoryFor(key string) Category {
	if cat, ok := categories[strings.ToLower(strings.TrimSpace(key))]; ok {
		return cat
	}
	return genericCategory{key: strings.ToLower(strings.TrimSpace(key))}
}

type genericCategory struct {
	key string
}

func (g genericCategory) Key() string                       { return g.key }
func (genericCategory) PremierPlayers(string) []string      { return nil }
func (genericCategory) SecondaryPlayers(string) []string    { return nil }
func (genericCategory) RivalryIntensity(string, string) int { return 0 }
func (genericCategory) UsesProbables() bool                 { return false }

// rivalryKey builds an order-insensitive lookup key for a team pair.
func rivalryKey(a, b string) string {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
