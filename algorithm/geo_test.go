package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	// Gyeongbokgung to Namsan Tower, roughly 4.6 km.
	gyeongbokgung := GeoPoint{Latitude: 37.579617, Longitude: 126.977041}
	namsan := GeoPoint{Latitude: 37.551170, Longitude: 126.988228}

	d := HaversineKm(gyeongbokgung, namsan)
	require.InDelta(t, 4.6, d, 0.5)

	// Symmetry and identity.
	require.Equal(t, HaversineKm(gyeongbokgung, namsan), HaversineKm(namsan, gyeongbokgung))
	require.Zero(t, HaversineKm(gyeongbokgung, gyeongbokgung))

	// One degree of longitude at the equator is about 111.19 km.
	d = HaversineKm(GeoPoint{0, 0}, GeoPoint{0, 1})
	require.InDelta(t, 111.19, d, 0.01)
}

func TestHaversineTriangleInequality(t *testing.T) {
	a := GeoPoint{Latitude: 37.5665, Longitude: 126.9780} // Seoul
	b := GeoPoint{Latitude: 35.1796, Longitude: 129.0756} // Busan
	c := GeoPoint{Latitude: 33.4996, Longitude: 126.5312} // Jeju

	ab := HaversineKm(a, b)
	bc := HaversineKm(b, c)
	ac := HaversineKm(a, c)
	require.LessOrEqual(t, ac, ab+bc+1e-9)
}

func TestEstimateWalkMinutes(t *testing.T) {
	// 5 km at walking pace is one hour.
	require.Equal(t, 60, EstimateWalkMinutes(5))
	// Rounded to the nearest minute.
	require.Equal(t, 30, EstimateWalkMinutes(2.5))
	require.Equal(t, 1, EstimateWalkMinutes(0.1))
	require.Equal(t, 0, EstimateWalkMinutes(0))
	require.Equal(t, 0, EstimateWalkMinutes(-1))
}
