// internal/models/query.go
package models

const (
	DeliveryTypeInstant   = "instant"
	DeliveryTypeScheduled = "scheduled"

	DefaultMaxDistanceKm = 10.0
)

// MatchQuery is a single consumer matching request. Request-scoped.
type MatchQuery struct {
	UserLatitude     float64 `json:"user_latitude"`
	UserLongitude    float64 `json:"user_longitude"`
	DeliveryType     string  `json:"delivery_type"`
	PreferredCuisine string  `json:"preferred_cuisine,omitempty"`
	MaxDistanceKm    float64 `json:"max_distance_km,omitempty"`
	UserID           string  `json:"user_id,omitempty"`
}

// ApplyDefaults fills optional fields the caller omitted.
func (q *MatchQuery) ApplyDefaults() {
	if q.MaxDistanceKm <= 0 {
		q.MaxDistanceKm = DefaultMaxDistanceKm
	}
}

// UserLocation echoes the consumer coordinates back in the response.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MatchResult is the ranked output returned to the caller.
type MatchResult struct {
	TotalFound   int          `json:"total_found"`
	Chefs        []ScoredChef `json:"chefs"`
	UserLocation UserLocation `json:"user_location"`
}

// OrderInteraction is one past (consumer, chef) interaction from the order
// history store. Fetched as a personalization input; the current scoring
// model does not weight it yet.
type OrderInteraction struct {
	ChefID    string `json:"chef_id"`
	OrderedAt string `json:"ordered_at"`
}
