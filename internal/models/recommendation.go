// internal/models/recommendation.go
package models

// RecommendationType tags why a chef was recommended.
const RecommendationTypeLocationMatch = "location_match"

// RecommendationFactors is the factor snapshot stored with each record.
type RecommendationFactors struct {
	DistanceKm               float64 `json:"distance_km"`
	EstimatedDeliveryMinutes int     `json:"estimated_delivery_minutes"`
	Status                   string  `json:"status"`
}

// RecommendationRecord is one append-only audit entry for a ranked
// (consumer, chef) pair. Written once, never mutated, and never read back
// within the request that produced it.
type RecommendationRecord struct {
	ID      string                `json:"id"`
	UserID  string                `json:"user_id"`
	ChefID  string                `json:"chef_id"`
	Type    string                `json:"type"`
	Reason  string                `json:"reason"`
	Score   float64               `json:"score"`
	Factors RecommendationFactors `json:"factors"`
}
