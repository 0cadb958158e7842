// internal/matching/scoring/scorer_test.go
package scoring

import (
	"testing"

	"github.com/c-xld1/ne-yesek-matching/internal/models"

	"github.com/stretchr/testify/assert"
)

func referenceChef() models.Chef {
	return models.Chef{
		ID:                 "chef-1",
		TrustScore:         100,
		Rating:             5.0,
		CurrentDailyOrders: 0,
		DailyOrderLimit:    20,
		AvgPrepTimeMinutes: 15,
		Verified:           true,
		TotalOrders:        50,
	}
}

func TestScore_ReferenceScenario(t *testing.T) {
	// chef at the consumer's exact coordinates:
	// 100 base + 30 proximity + 25 trust + 20 rating + 15 load + 7.5 prep + 10 verified
	scorer := NewScorer(DefaultWeights())

	score, reasons := scorer.Score(referenceChef(), 0)

	assert.InDelta(t, 227.5, score, 1e-9)
	assert.Equal(t, []string{
		ReasonVeryClose,
		ReasonTrusted,
		ReasonHighlyRated,
		ReasonAvailable,
		ReasonFastPrep,
		ReasonVerified,
	}, reasons)
}

func TestScore_ProximityTerm(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	tests := []struct {
		name           string
		distanceKm     float64
		expectedBonus  float64
		expectedReason string
	}{
		{"at the door", 0, 30, ReasonVeryClose},
		{"1.5 km", 1.5, 25.5, ReasonVeryClose},
		{"3 km", 3, 21, ReasonNearby},
		{"exactly 10 km", 10, 0, ""},
		{"beyond formula range", 15, 0, ""},
	}

	base := models.Chef{DailyOrderLimit: 1, CurrentDailyOrders: 1, AvgPrepTimeMinutes: 60}
	baselineScore, _ := scorer.Score(base, 10) // proximity 0, prep 0

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := scorer.Score(base, tt.distanceKm)
			assert.InDelta(t, baselineScore+tt.expectedBonus, score, 1e-9)
			if tt.expectedReason == "" {
				assert.NotContains(t, reasons, ReasonVeryClose)
				assert.NotContains(t, reasons, ReasonNearby)
			} else {
				assert.Contains(t, reasons, tt.expectedReason)
			}
		})
	}
}

func TestScore_MonotonicInDistance(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	chef := referenceChef()

	prev, _ := scorer.Score(chef, 0)
	for _, d := range []float64{0.5, 1, 2, 5, 8, 10, 20} {
		score, _ := scorer.Score(chef, d)
		assert.LessOrEqual(t, score, prev, "score must not increase as distance grows (d=%v)", d)
		prev = score
	}
}

func TestScore_MonotonicInTrust(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	chef := referenceChef()

	prev := -1.0
	for _, trust := range []float64{0, 25, 50, 75, 90, 100} {
		chef.TrustScore = trust
		score, _ := scorer.Score(chef, 3)
		assert.Greater(t, score, prev)
		prev = score
	}
}

func TestScore_MonotonicInRating(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	chef := referenceChef()

	prev := -1.0
	for _, rating := range []float64{0, 1, 2.5, 4, 4.5, 5} {
		chef.Rating = rating
		score, _ := scorer.Score(chef, 3)
		assert.Greater(t, score, prev)
		prev = score
	}
}

func TestScore_VerifiedFlipIncreasesScore(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	chef := referenceChef()

	chef.Verified = false
	unverified, reasons := scorer.Score(chef, 3)
	assert.NotContains(t, reasons, ReasonVerified)

	chef.Verified = true
	verified, reasons := scorer.Score(chef, 3)
	assert.Contains(t, reasons, ReasonVerified)
	assert.InDelta(t, unverified+10, verified, 1e-9)
}

func TestScore_LoadTiers(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	tests := []struct {
		name          string
		current       int
		limit         int
		expectedBonus float64
		availableTag  bool
	}{
		{"idle", 0, 20, 15, true},
		{"just under half", 9, 20, 15, true},
		{"exactly half", 10, 20, 8, false},
		{"under busy threshold", 15, 20, 8, false},
		{"exactly busy threshold", 16, 20, 0, false},
		{"overloaded", 25, 20, 0, false},
		{"zero capacity treated as busy", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chef := models.Chef{
				CurrentDailyOrders: tt.current,
				DailyOrderLimit:    tt.limit,
				AvgPrepTimeMinutes: 60, // prep term zero at 60 min
			}
			score, reasons := scorer.Score(chef, 10) // proximity zero

			assert.InDelta(t, 100+tt.expectedBonus, score, 1e-9)
			if tt.availableTag {
				assert.Contains(t, reasons, ReasonAvailable)
			} else {
				assert.NotContains(t, reasons, ReasonAvailable)
			}
		})
	}
}

func TestScore_PrepTermNeverNegative(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	fast := models.Chef{AvgPrepTimeMinutes: 0, CurrentDailyOrders: 1, DailyOrderLimit: 1}
	slow := models.Chef{AvgPrepTimeMinutes: 240, CurrentDailyOrders: 1, DailyOrderLimit: 1}

	fastScore, fastReasons := scorer.Score(fast, 10)
	slowScore, slowReasons := scorer.Score(slow, 10)

	assert.InDelta(t, 110, fastScore, 1e-9) // base + full prep bonus
	assert.InDelta(t, 100, slowScore, 1e-9) // prep term clamped at zero
	assert.Contains(t, fastReasons, ReasonFastPrep)
	assert.NotContains(t, slowReasons, ReasonFastPrep)
}

func TestScore_NoUpperClamp(t *testing.T) {
	// The additive model intentionally has no final cap.
	scorer := NewScorer(DefaultWeights())
	score, _ := scorer.Score(referenceChef(), 0)
	assert.Greater(t, score, 200.0)
}
