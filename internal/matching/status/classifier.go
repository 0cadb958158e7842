// internal/matching/status/classifier.go
package status

import "github.com/c-xld1/ne-yesek-matching/internal/models"

// Operational status labels, mutually exclusive.
const (
	VeryBusy    = "very busy"
	Busy        = "busy"
	FastToday   = "fast today"
	NewProvider = "new provider"
	Favorite    = "favorite"
	Available   = "available"
)

// Thresholds externalizes the classifier's cut-offs so they can be tuned
// from config without code changes.
type Thresholds struct {
	VeryBusyLoad      float64 `mapstructure:"very_busy_load"`
	BusyLoad          float64 `mapstructure:"busy_load"`
	FastLoad          float64 `mapstructure:"fast_load"`
	FastPrepMax       float64 `mapstructure:"fast_prep_max"`
	NewMaxOrders      int     `mapstructure:"new_max_orders"`
	FavoriteMinRating float64 `mapstructure:"favorite_min_rating"`
}

// DefaultThresholds is the production rule set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		VeryBusyLoad:      0.9,
		BusyLoad:          0.7,
		FastLoad:          0.3,
		FastPrepMax:       20,
		NewMaxOrders:      10,
		FavoriteMinRating: 4.8,
	}
}

// Classify maps a chef's live signals to one status label. Rules are
// evaluated in order and the first match wins; reordering them changes
// outcomes for chefs matching several conditions.
func (t Thresholds) Classify(chef models.Chef) string {
	loadRatio := chef.LoadRatio()

	switch {
	case loadRatio >= t.VeryBusyLoad:
		return VeryBusy
	case loadRatio >= t.BusyLoad:
		return Busy
	case loadRatio < t.FastLoad && chef.AvgPrepTimeMinutes <= t.FastPrepMax:
		return FastToday
	case chef.TotalOrders < t.NewMaxOrders:
		return NewProvider
	case chef.Rating >= t.FavoriteMinRating:
		return Favorite
	default:
		return Available
	}
}

// Classify applies the default thresholds.
func Classify(chef models.Chef) string {
	return DefaultThresholds().Classify(chef)
}
