package algorithm

import "math"

const (
	// Earth radius in kilometers.
	earthRadiusKm = 6371

	// Walking pace used for ETA estimates (km/h).
	walkingSpeedKmh = 5
)

// HaversineKm computes the great-circle distance between two points in
// kilometers using the haversine formula.
func HaversineKm(a, b GeoPoint) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLat := toRadians(b.Latitude - a.Latitude)
	deltaLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// EstimateWalkMinutes converts a distance into a walking ETA, rounded to the
// nearest whole minute.
func EstimateWalkMinutes(distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}
	return int(math.Round(distanceKm / walkingSpeedKmh * 60))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
