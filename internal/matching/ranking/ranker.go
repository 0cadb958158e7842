// internal/matching/ranking/ranker.go
package ranking

import (
	"sort"

	"github.com/c-xld1/ne-yesek-matching/internal/models"
)

// Rank orders scored chefs into a total, reproducible order: score
// descending, then distance ascending, then chef ID ascending. The ID
// tie-break guarantees identical output for identical input, which caching
// and deterministic tests depend on. Sorts in place and returns the slice.
func Rank(scored []models.ScoredChef) []models.ScoredChef {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].DistanceKm != scored[j].DistanceKm {
			return scored[i].DistanceKm < scored[j].DistanceKm
		}
		return scored[i].ID < scored[j].ID
	})
	return scored
}

// Truncate returns at most n leading elements without copying.
func Truncate(scored []models.ScoredChef, n int) []models.ScoredChef {
	if n < 0 {
		n = 0
	}
	if len(scored) > n {
		return scored[:n]
	}
	return scored
}
