// Package ranking owns the single total order over candidate events. Every
// component that needs a ranked view calls Rank; nothing else in the repo may
// sort candidates.
package ranking

import (
	"sort"

	"github.com/preston-bernstein/watchability-service/internal/domain/picks"
)

// Rank returns a new slice ordered by composite score descending, then
// scheduled start ascending, then id for determinism. Status and date
// classification never influence the order. Pure and idempotent.
func Rank(candidates []picks.Candidate) []picks.Candidate {
	ranked := make([]picks.Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score() != b.Score() {
			return a.Score() > b.Score()
		}
		if !a.Event.StartTime.Equal(b.Event.StartTime) {
			return a.Event.StartTime.Before(b.Event.StartTime)
		}
		return a.Event.ID < b.Event.ID
	})
	return ranked
}

// Eligible filters a ranked list down to pick-eligible candidates without
// re-sorting.
func Eligible(ranked []picks.Candidate) []picks.Candidate {
	var eligible []picks.Candidate
	for _, c := range ranked {
		if c.Eligible() {
			eligible = append(eligible, c)
		}
	}
	return eligible
}
