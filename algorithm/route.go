package algorithm

// BuildRoute orders the given points with a greedy nearest-neighbor walk and
// aggregates the leg distances into a total plus a walking ETA.
//
// startID fixes the first stop when it matches a point; otherwise the first
// point in input order starts the route. Ties on minimum distance are broken
// by the pool's current iteration order, which keeps the output deterministic
// for identical inputs. Points without coordinates remain in the path; legs
// touching them contribute zero distance.
func BuildRoute(points []RoutePoint, startID int64) RoutePlan {
	points = dedupePoints(points)
	if len(points) == 0 {
		return RoutePlan{Stops: []RouteStop{}}
	}

	startIdx := 0
	if startID != 0 {
		for i, p := range points {
			if p.ID == startID {
				startIdx = i
				break
			}
		}
	}

	remaining := make([]RoutePoint, len(points))
	copy(remaining, points)

	current := remaining[startIdx]
	remaining = append(remaining[:startIdx], remaining[startIdx+1:]...)

	stops := make([]RouteStop, 0, len(points))
	stops = append(stops, RouteStop{LocationID: current.ID, SequenceNumber: 1})

	var totalKm float64
	for len(remaining) > 0 {
		nearestIdx := 0
		nearestKm := legDistanceKm(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := legDistanceKm(current, remaining[i]); d < nearestKm {
				nearestIdx = i
				nearestKm = d
			}
		}

		current = remaining[nearestIdx]
		remaining = append(remaining[:nearestIdx], remaining[nearestIdx+1:]...)

		totalKm += nearestKm
		stops = append(stops, RouteStop{
			LocationID:     current.ID,
			SequenceNumber: int32(len(stops) + 1),
		})
	}

	return RoutePlan{
		Stops:           stops,
		TotalDistanceKm: totalKm,
		EtaMinutes:      EstimateWalkMinutes(totalKm),
	}
}

// legDistanceKm returns 0 when either endpoint has no coordinates, keeping
// such points in the path without affecting distance comparisons.
func legDistanceKm(a, b RoutePoint) float64 {
	if a.Coord == nil || b.Coord == nil {
		return 0
	}
	return HaversineKm(*a.Coord, *b.Coord)
}

func dedupePoints(points []RoutePoint) []RoutePoint {
	seen := make(map[int64]bool, len(points))
	result := make([]RoutePoint, 0, len(points))
	for _, p := range points {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		result = append(result, p)
	}
	return result
}
