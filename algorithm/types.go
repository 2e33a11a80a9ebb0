// Package algorithm provides the location scoring, weighted selection and
// route sequencing used by the recommendation endpoints.
// The package is pure: no storage access, no global state, injectable RNG.
package algorithm

import "time"

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Candidate is a read-only projection of a location eligible for scoring.
// Coord is nil when the location has no usable coordinates, which disables
// distance-based scoring for that candidate.
type Candidate struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Coord       *GeoPoint `json:"coord,omitempty"`
	RatingAvg   float64   `json:"rating_avg"`
	RatingCount int32     `json:"rating_count"`
	// RecencyAt drives the freshness decay. Callers fall back to the
	// record's creation time when there is no update timestamp.
	RecencyAt time.Time `json:"recency_at"`
}

// ScoredCandidate pairs a candidate with its selection weight at pick time.
type ScoredCandidate struct {
	Candidate Candidate `json:"candidate"`
	Weight    float64   `json:"weight"`
}

// RoutePoint is the sequencer's input unit. Coord may be nil; such points
// stay in the path and contribute zero-distance legs.
type RoutePoint struct {
	ID    int64     `json:"id"`
	Coord *GeoPoint `json:"coord,omitempty"`
}

// RouteStop is one ordered stop of a built route.
type RouteStop struct {
	LocationID     int64 `json:"location_id"`
	SequenceNumber int32 `json:"sequence_number"`
}

// RoutePlan is the sequencer's output: visit order plus aggregate metrics.
type RoutePlan struct {
	Stops           []RouteStop `json:"stops"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	EtaMinutes      int         `json:"eta_min"`
}

// Rand is the random source consumed by the selection functions.
// *math/rand/v2.Rand satisfies it; tests inject seeded PCG generators.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
