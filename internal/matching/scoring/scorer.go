// internal/matching/scoring/scorer.go
package scoring

import (
	"math"

	"github.com/c-xld1/ne-yesek-matching/internal/models"
)

// Reason tags emitted alongside the score, in term order.
const (
	ReasonVeryClose   = "very close"
	ReasonNearby      = "nearby"
	ReasonTrusted     = "trusted provider"
	ReasonHighlyRated = "highly rated"
	ReasonAvailable   = "available now"
	ReasonFastPrep    = "fast prep"
	ReasonVerified    = "verified provider"
)

// Scorer computes the additive desirability score for one chef. Pure; safe
// for concurrent use across candidates.
type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score returns the additive score and the ordered reason tags for a chef at
// the given (rounded) distance. Terms are independent: each clamps only
// within itself and the total is never capped, so the score is unbounded
// above by design.
func (s *Scorer) Score(chef models.Chef, distanceKm float64) (float64, []string) {
	w := s.weights
	score := w.Base
	var reasons []string

	// proximity
	proximity := math.Max(0, w.ProximityMax-distanceKm*w.ProximityPerKm)
	score += proximity
	if distanceKm < w.VeryCloseKm {
		reasons = append(reasons, ReasonVeryClose)
	} else if distanceKm < w.NearbyKm {
		reasons = append(reasons, ReasonNearby)
	}

	// trust
	score += chef.TrustScore / w.TrustDivisor
	if chef.TrustScore >= w.TrustedMinimum {
		reasons = append(reasons, ReasonTrusted)
	}

	// rating
	score += chef.Rating * w.RatingMultiplier
	if chef.Rating >= w.HighlyRatedMinimum {
		reasons = append(reasons, ReasonHighlyRated)
	}

	// load, tiered; a zero capacity counts as fully loaded
	loadRatio := chef.LoadRatio()
	if loadRatio < w.LoadLowThreshold {
		score += w.LoadLowBonus
		reasons = append(reasons, ReasonAvailable)
	} else if loadRatio < w.LoadMidThreshold {
		score += w.LoadMidBonus
	}

	// prep speed
	score += math.Max(0, w.PrepMax-chef.AvgPrepTimeMinutes/w.PrepDivisor)
	if chef.AvgPrepTimeMinutes <= w.FastPrepMaxMin {
		reasons = append(reasons, ReasonFastPrep)
	}

	// verification
	if chef.Verified {
		score += w.VerifiedBonus
		reasons = append(reasons, ReasonVerified)
	}

	return score, reasons
}
