package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func equatorPoints() []RoutePoint {
	return []RoutePoint{
		{ID: 1, Coord: &GeoPoint{Latitude: 0, Longitude: 0}},
		{ID: 2, Coord: &GeoPoint{Latitude: 0, Longitude: 1}},
		{ID: 3, Coord: &GeoPoint{Latitude: 0, Longitude: 2}},
	}
}

func TestBuildRouteOrdering(t *testing.T) {
	plan := BuildRoute(equatorPoints(), 1)

	require.Len(t, plan.Stops, 3)
	require.Equal(t, int64(1), plan.Stops[0].LocationID)
	require.Equal(t, int64(2), plan.Stops[1].LocationID)
	require.Equal(t, int64(3), plan.Stops[2].LocationID)

	for i, stop := range plan.Stops {
		require.Equal(t, int32(i+1), stop.SequenceNumber)
	}

	// Two legs of one equatorial degree each, about 222.4 km total.
	require.InDelta(t, 222.4, plan.TotalDistanceKm, 0.1)
	require.Equal(t, EstimateWalkMinutes(plan.TotalDistanceKm), plan.EtaMinutes)
}

func TestBuildRouteStartID(t *testing.T) {
	// Starting from the far end reverses the visiting order.
	plan := BuildRoute(equatorPoints(), 3)
	require.Equal(t, int64(3), plan.Stops[0].LocationID)
	require.Equal(t, int64(2), plan.Stops[1].LocationID)
	require.Equal(t, int64(1), plan.Stops[2].LocationID)

	// Unknown start falls back to input order.
	plan = BuildRoute(equatorPoints(), 999)
	require.Equal(t, int64(1), plan.Stops[0].LocationID)
}

func TestBuildRouteCompleteness(t *testing.T) {
	points := []RoutePoint{
		{ID: 5, Coord: &GeoPoint{Latitude: 37.55, Longitude: 126.99}},
		{ID: 9, Coord: &GeoPoint{Latitude: 37.51, Longitude: 127.10}},
		{ID: 2, Coord: &GeoPoint{Latitude: 37.58, Longitude: 126.92}},
		{ID: 7},
		{ID: 5, Coord: &GeoPoint{Latitude: 37.55, Longitude: 126.99}}, // duplicate
	}

	plan := BuildRoute(points, 0)
	require.Len(t, plan.Stops, 4)

	seen := make(map[int64]bool)
	for _, stop := range plan.Stops {
		require.False(t, seen[stop.LocationID])
		seen[stop.LocationID] = true
	}
	for _, id := range []int64{5, 9, 2, 7} {
		require.True(t, seen[id], "missing id %d", id)
	}
}

func TestBuildRouteDeterminism(t *testing.T) {
	points := []RoutePoint{
		{ID: 1, Coord: &GeoPoint{Latitude: 37.55, Longitude: 126.99}},
		{ID: 2, Coord: &GeoPoint{Latitude: 37.56, Longitude: 126.98}},
		{ID: 3, Coord: &GeoPoint{Latitude: 37.57, Longitude: 126.97}},
		{ID: 4},
	}

	first := BuildRoute(points, 2)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, BuildRoute(points, 2))
	}
}

func TestBuildRouteMissingCoordinates(t *testing.T) {
	// A point without coordinates stays in the path and its legs count as
	// zero distance. With zero-distance legs it is visited first.
	points := []RoutePoint{
		{ID: 1, Coord: &GeoPoint{Latitude: 0, Longitude: 0}},
		{ID: 2, Coord: &GeoPoint{Latitude: 0, Longitude: 1}},
		{ID: 3},
	}

	plan := BuildRoute(points, 1)
	require.Len(t, plan.Stops, 3)
	require.Equal(t, int64(1), plan.Stops[0].LocationID)
	require.Equal(t, int64(3), plan.Stops[1].LocationID)
	require.Equal(t, int64(2), plan.Stops[2].LocationID)
	// Both legs touch the coordinate-less point, so the total is zero.
	require.InDelta(t, 0, plan.TotalDistanceKm, 1e-9)
}

func TestBuildRouteDegenerate(t *testing.T) {
	empty := BuildRoute(nil, 0)
	require.Empty(t, empty.Stops)
	require.Zero(t, empty.TotalDistanceKm)
	require.Zero(t, empty.EtaMinutes)

	single := BuildRoute([]RoutePoint{{ID: 42, Coord: &GeoPoint{Latitude: 1, Longitude: 1}}}, 0)
	require.Len(t, single.Stops, 1)
	require.Equal(t, int32(1), single.Stops[0].SequenceNumber)
	require.Zero(t, single.TotalDistanceKm)
	require.Zero(t, single.EtaMinutes)
}
