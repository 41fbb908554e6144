package scoring

import (
	"strings"

	"github.com/preston-bernstein/watchability-service/internal/domain/events"
)

const starPowerMax = 20

// Pairing describes the displayed notable-player result. A "vs" pairing is
// always exactly one player from each side; a solo result names one player.
type Pairing struct {
	Type string `json:"type"` // "vs", "solo", or "none"
	Home string `json:"home,omitempty"`
	Away string `json:"away,omitempty"`
	Solo string `json:"solo,omitempty"`
	// Label is the display heading; hedged when availability was unverified.
	Label string `json:"label,omitempty"`
}

type sideStars struct {
	premier    []string
	secondary  []string
	unverified bool
}

type starResult struct {
	SubScore
	Pairing    Pairing
	TwoSided   bool
	Unverified bool
}

// starPowerScore grades marquee-player draw using the category's static tier
// tables, filtered through the availability source so ruled-out players never
// surface. The pairing it returns never puts two same-side players head to head.
func starPowerScore(cat Category, avail AvailabilitySource, ev events.Event) starResult {
	home := sideNotables(cat, avail, ev.Category, ev.HomeTeam.Code, ev.HomeProbables)
	away := sideNotables(cat, avail, ev.Category, ev.AwayTeam.Code, ev.AwayProbables)

	res := starResult{}
	switch {
	case len(home.premier) > 0 && len(away.premier) > 0:
		res.SubScore = SubScore{Score: 20, Reason: "Marquee head-to-head matchup"}
		res.Pairing = vsPairing(home.premier[0], away.premier[0])
		res.TwoSided = true
		res.Unverified = home.unverified || away.unverified
	case len(home.premier) > 0 && len(away.secondary) > 0:
		res.SubScore = SubScore{Score: 16, Reason: "Star matchup"}
		res.Pairing = vsPairing(home.premier[0], away.secondary[0])
		res.TwoSided = true
		res.Unverified = home.unverified || away.unverified
	case len(away.premier) > 0 && len(home.secondary) > 0:
		res.SubScore = SubScore{Score: 16, Reason: "Star matchup"}
		res.Pairing = vsPairing(home.secondary[0], away.premier[0])
		res.TwoSided = true
		res.Unverified = home.unverified || away.unverified
	case len(home.secondary) > 0 && len(away.secondary) > 0:
		res.SubScore = SubScore{Score: 13, Reason: "Notable players on both sides"}
		res.Pairing = vsPairing(home.secondary[0], away.secondary[0])
		res.TwoSided = true
		res.Unverified = home.unverified || away.unverified
	case len(home.premier) > 0 || len(away.premier) > 0:
		solo, unverified := soloFrom(home, away, true)
		res.SubScore = SubScore{Score: 12, Reason: "Star showcase"}
		res.Pairing = Pairing{Type: "solo", Solo: solo}
		res.Unverified = unverified
	case len(home.secondary) > 0 || len(away.secondary) > 0:
		solo, unverified := soloFrom(home, away, false)
		res.SubScore = SubScore{Score: 7, Reason: "Notable player to watch"}
		res.Pairing = Pairing{Type: "solo", Solo: solo}
		res.Unverified = unverified
	default:
		res.SubScore = SubScore{Score: 2, Reason: "No marquee players"}
		res.Pairing = Pairing{Type: "none"}
	}

	res.Pairing.Label = pairingLabel(res.Pairing.Type, res.Unverified)
	return res
}

func sideNotables(cat Category, avail AvailabilitySource, category, teamCode string, probables []string) sideStars {
	premier := filterNotables(cat.PremierPlayers(teamCode), cat, probables)
	secondary := filterNotables(cat.SecondaryPlayers(teamCode), cat, probables)

	side := sideStars{}
	if avail == nil {
		side.premier = premier
		side.secondary = secondary
		side.unverified = len(premier) > 0 || len(secondary) > 0
		return side
	}

	var unverifiedPremier, unverifiedSecondary bool
	side.premier, unverifiedPremier = avail.FilterAvailable(category, teamCode, premier)
	side.secondary, unverifiedSecondary = avail.FilterAvailable(category, teamCode, secondary)
	side.unverified = unverifiedPremier || unverifiedSecondary
	return side
}

// filterNotables narrows a tier list to the provider's probable participants
// when the category keys notables off them.
func filterNotables(names []string, cat Category, probables []string) []string {
	if !cat.UsesProbables() || len(probables) == 0 {
		return names
	}
	probable := make(map[string]struct{}, len(probables))
	for _, p := range probables {
		probable[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	var kept []string
	for _, n := range names {
		if _, ok := probable[strings.ToLower(strings.TrimSpace(n))]; ok {
			kept = append(kept, n)
		}
	}
	return kept
}

func vsPairing(home, away string) Pairing {
	return Pairing{Type: "vs", Home: home, Away: away}
}

func soloFrom(home, away sideStars, premier bool) (string, bool) {
	if premier {
		if len(home.premier) > 0 {
			return home.premier[0], home.unverified
		}
		return away.premier[0], away.unverified
	}
	if len(home.secondary) > 0 {
		return home.secondary[0], home.unverified
	}
	return away.secondary[0], away.unverified
}

func pairingLabel(pairingType string, unverified bool) string {
	switch pairingType {
	case "vs":
		if unverified {
			return "Expected Matchup"
		}
		return "Matchup"
	case "solo":
		if unverified {
			return "Expected Star Showcase"
		}
		return "Star Showcase"
	default:
		return ""
	}
}
