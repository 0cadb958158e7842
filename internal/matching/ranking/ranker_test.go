// internal/matching/ranking/ranker_test.go
package ranking

import (
	"math/rand"
	"testing"

	"github.com/c-xld1/ne-yesek-matching/internal/models"

	"github.com/stretchr/testify/assert"
)

func scored(id string, score, distance float64) models.ScoredChef {
	return models.ScoredChef{
		Chef:       models.Chef{ID: id},
		Score:      score,
		DistanceKm: distance,
	}
}

func ids(chefs []models.ScoredChef) []string {
	out := make([]string, len(chefs))
	for i, c := range chefs {
		out[i] = c.ID
	}
	return out
}

func TestRank_ScoreDescending(t *testing.T) {
	ranked := Rank([]models.ScoredChef{
		scored("low", 110, 1),
		scored("high", 200, 5),
		scored("mid", 150, 2),
	})

	assert.Equal(t, []string{"high", "mid", "low"}, ids(ranked))
}

func TestRank_TieBreakDistanceThenID(t *testing.T) {
	ranked := Rank([]models.ScoredChef{
		scored("far", 150, 4.0),
		scored("zeta", 150, 2.0),
		scored("alpha", 150, 2.0),
	})

	// Equal scores: nearer first; equal distance: lexicographic ID.
	assert.Equal(t, []string{"alpha", "zeta", "far"}, ids(ranked))
}

func TestRank_Deterministic(t *testing.T) {
	base := []models.ScoredChef{
		scored("a", 180, 1.2),
		scored("b", 180, 1.2),
		scored("c", 150, 0.5),
		scored("d", 150, 0.5),
		scored("e", 210, 3.1),
	}

	rng := rand.New(rand.NewSource(42))
	var first []string
	for run := 0; run < 10; run++ {
		shuffled := make([]models.ScoredChef, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := ids(Rank(shuffled))
		if first == nil {
			first = got
			continue
		}
		assert.Equal(t, first, got, "ranking order must not depend on input order")
	}
}

func TestTruncate(t *testing.T) {
	in := []models.ScoredChef{
		scored("a", 3, 0), scored("b", 2, 0), scored("c", 1, 0),
	}

	assert.Len(t, Truncate(in, 2), 2)
	assert.Len(t, Truncate(in, 3), 3)
	assert.Len(t, Truncate(in, 10), 3)
	assert.Len(t, Truncate(in, 0), 0)
	assert.Len(t, Truncate(nil, 5), 0)
}
