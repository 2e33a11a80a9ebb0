package algorithm

import (
	"math"
	"time"
)

const (
	// MinWeight is the floor every score is clamped to so that any
	// candidate keeps a non-zero selection probability.
	MinWeight = 0.1

	maxRatingCount     = 200
	ratingCountDivisor = 50

	maxFreshnessDays       = 30
	freshnessPenaltyPerDay = 0.05

	maxProximityKm        = 10
	proximityPenaltyPerKm = 0.3
)

// Score computes the selection weight of a candidate.
//
// Base score: rating_avg*2 + min(rating_count,200)/50 - min(freshness_days,30)*0.05.
// When both a reference point and candidate coordinates are present, a
// proximity penalty of min(distance_km,10)*0.3 is subtracted. The result is
// clamped to MinWeight; raw scores may be negative before clamping.
func Score(c Candidate, ref *GeoPoint, now time.Time) float64 {
	score := c.RatingAvg * 2

	ratingCount := float64(c.RatingCount)
	if ratingCount > maxRatingCount {
		ratingCount = maxRatingCount
	}
	score += ratingCount / ratingCountDivisor

	if !c.RecencyAt.IsZero() {
		freshnessDays := now.Sub(c.RecencyAt).Hours() / 24
		if freshnessDays < 0 {
			freshnessDays = 0
		}
		if freshnessDays > maxFreshnessDays {
			freshnessDays = maxFreshnessDays
		}
		score -= freshnessDays * freshnessPenaltyPerDay
	}

	if ref != nil && c.Coord != nil {
		distanceKm := HaversineKm(*ref, *c.Coord)
		if distanceKm > maxProximityKm {
			distanceKm = maxProximityKm
		}
		score -= distanceKm * proximityPenaltyPerKm
	}

	return math.Max(score, MinWeight)
}

// WeightedPick performs roulette-wheel selection over the weight vector and
// returns the chosen index. Weights must be non-negative (the score clamp
// guarantees this upstream). When the cumulative weight is zero the first
// index is returned deterministically.
func WeightedPick(r Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	roll := r.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll <= 0 {
			return i
		}
	}
	// Floating point residue: fall through to the last index.
	return len(weights) - 1
}

// DedupeCandidates removes duplicate ids from the pool, keeping the first
// occurrence and the original order.
func DedupeCandidates(pool []Candidate) []Candidate {
	seen := make(map[int64]bool, len(pool))
	result := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		result = append(result, c)
	}
	return result
}

// PickWithoutReplacement draws up to count candidates from the pool. Weights
// are recomputed before every draw because the reference point follows the
// most recent pick, biasing the next selection toward nearby candidates.
// A pool smaller than count yields a shorter result, never an error.
func PickWithoutReplacement(r Rand, pool []Candidate, count int, ref *GeoPoint, now time.Time) []ScoredCandidate {
	pool = DedupeCandidates(pool)
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return []ScoredCandidate{}
	}

	remaining := make([]Candidate, len(pool))
	copy(remaining, pool)

	picked := make([]ScoredCandidate, 0, count)
	for len(picked) < count {
		weights := make([]float64, len(remaining))
		for i, c := range remaining {
			weights[i] = Score(c, ref, now)
		}

		idx := WeightedPick(r, weights)
		choice := remaining[idx]
		picked = append(picked, ScoredCandidate{Candidate: choice, Weight: weights[idx]})

		if choice.Coord != nil {
			ref = choice.Coord
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return picked
}
