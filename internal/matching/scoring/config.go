// internal/matching/scoring/config.go
package scoring

// Weights externalizes every numeric constant of the scoring model so weight
// tuning does not require code changes. Version identifies the active model
// in audit records and logs.
type Weights struct {
	Version string `mapstructure:"version"`

	Base float64 `mapstructure:"base"`

	// proximity: max(0, ProximityMax - distanceKm*ProximityPerKm)
	ProximityMax   float64 `mapstructure:"proximity_max"`
	ProximityPerKm float64 `mapstructure:"proximity_per_km"`
	VeryCloseKm    float64 `mapstructure:"very_close_km"`
	NearbyKm       float64 `mapstructure:"nearby_km"`

	// trust: trustScore / TrustDivisor
	TrustDivisor   float64 `mapstructure:"trust_divisor"`
	TrustedMinimum float64 `mapstructure:"trusted_minimum"`

	// rating: rating * RatingMultiplier
	RatingMultiplier   float64 `mapstructure:"rating_multiplier"`
	HighlyRatedMinimum float64 `mapstructure:"highly_rated_minimum"`

	// load: tiered bonus on load ratio
	LoadLowThreshold float64 `mapstructure:"load_low_threshold"`
	LoadLowBonus     float64 `mapstructure:"load_low_bonus"`
	LoadMidThreshold float64 `mapstructure:"load_mid_threshold"`
	LoadMidBonus     float64 `mapstructure:"load_mid_bonus"`

	// prep: max(0, PrepMax - avgPrepMinutes/PrepDivisor)
	PrepMax        float64 `mapstructure:"prep_max"`
	PrepDivisor    float64 `mapstructure:"prep_divisor"`
	FastPrepMaxMin float64 `mapstructure:"fast_prep_max_min"`

	VerifiedBonus float64 `mapstructure:"verified_bonus"`
}

// DefaultWeights is the v1 production scoring model.
func DefaultWeights() Weights {
	return Weights{
		Version: "v1",

		Base: 100,

		ProximityMax:   30,
		ProximityPerKm: 3,
		VeryCloseKm:    2,
		NearbyKm:       5,

		TrustDivisor:   4,
		TrustedMinimum: 90,

		RatingMultiplier:   4,
		HighlyRatedMinimum: 4.5,

		LoadLowThreshold: 0.5,
		LoadLowBonus:     15,
		LoadMidThreshold: 0.8,
		LoadMidBonus:     8,

		PrepMax:        10,
		PrepDivisor:    6,
		FastPrepMaxMin: 20,

		VerifiedBonus: 10,
	}
}
