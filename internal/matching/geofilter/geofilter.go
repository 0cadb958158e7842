// internal/matching/geofilter/geofilter.go
package geofilter

import (
	"math"

	"github.com/c-xld1/ne-yesek-matching/internal/models"
)

const earthRadiusKm = 6371.0

// Survivor pairs a chef with its computed distance so downstream stages
// never recompute it. DistanceKm is rounded to 0.1 km.
type Survivor struct {
	Chef       models.Chef
	DistanceKm float64
}

// DistanceKm computes the great-circle distance between two points using
// the haversine formula. Identity distance is zero, the result is symmetric
// and never negative. City-scale accuracy; not triangle-exact at antipodes.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundTenth rounds a distance to 0.1 km.
func RoundTenth(km float64) float64 {
	return math.Round(km*10) / 10
}

// Filter excludes chefs whose distance from the consumer exceeds the query
// radius. Chefs carrying out-of-range coordinates are skipped silently; the
// store contract keeps them out, but a bad row must not abort the request.
// The returned skipped count lets the caller log the data-quality loss.
func Filter(chefs []models.Chef, query models.MatchQuery) (survivors []Survivor, skipped int) {
	for _, chef := range chefs {
		if !validCoordinates(chef.Latitude, chef.Longitude) {
			skipped++
			continue
		}

		d := DistanceKm(query.UserLatitude, query.UserLongitude, chef.Latitude, chef.Longitude)
		if d > query.MaxDistanceKm {
			continue
		}

		survivors = append(survivors, Survivor{
			Chef:       chef,
			DistanceKm: RoundTenth(d),
		})
	}
	return survivors, skipped
}

func validCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
