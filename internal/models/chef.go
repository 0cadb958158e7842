// internal/models/chef.go
package models

import "encoding/json"

// Chef is a service provider as stored by the chef store. Read-only to the
// matching engine; coordinates are guaranteed non-null by the store query.
type Chef struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Latitude           float64         `json:"latitude"`
	Longitude          float64         `json:"longitude"`
	TrustScore         float64         `json:"trust_score"` // 0-100
	Rating             float64         `json:"rating"`      // 0.0-5.0
	CurrentDailyOrders int             `json:"current_daily_orders"`
	DailyOrderLimit    int             `json:"daily_order_limit"`
	AvgPrepTimeMinutes float64         `json:"avg_prep_time_minutes"`
	Verified           bool            `json:"verified"`
	TotalOrders        int             `json:"total_orders"`
	AvailableMenuItems json.RawMessage `json:"available_menu_items,omitempty"` // opaque, not interpreted
}

// LoadRatio returns CurrentDailyOrders / DailyOrderLimit. A zero limit is
// treated as fully loaded rather than dividing by zero.
func (c Chef) LoadRatio() float64 {
	if c.DailyOrderLimit <= 0 {
		return 1.0
	}
	return float64(c.CurrentDailyOrders) / float64(c.DailyOrderLimit)
}

// ScoredChef is a chef that survived the geofence, carrying the request-scoped
// scoring outcome.
type ScoredChef struct {
	Chef
	DistanceKm               float64  `json:"distance_km"` // rounded to 0.1 km
	Score                    float64  `json:"score"`
	Reasons                  []string `json:"reasons"`
	Status                   string   `json:"status"`
	EstimatedDeliveryMinutes int      `json:"estimated_delivery_minutes"`
}
