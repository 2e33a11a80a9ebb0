package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/scbae18/sololife/util"
	"github.com/stretchr/testify/require"
)

func createRandomLocation(t *testing.T) Location {
	arg := CreateLocationParams{
		Name:        util.RandomString(10),
		Category:    "cafe",
		Address:     util.RandomString(20),
		Latitude:    pgtype.Float8{Float64: 37.5665, Valid: true},
		Longitude:   pgtype.Float8{Float64: 126.9780, Valid: true},
		RatingAvg:   4.5,
		RatingCount: 50,
		Source:      "manual",
		SourceID:    "",
	}

	location, err := testStore.CreateLocation(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, location)
	require.Equal(t, arg.Name, location.Name)
	require.Equal(t, arg.Category, location.Category)
	require.True(t, location.Latitude.Valid)
	require.NotZero(t, location.ID)
	require.NotZero(t, location.UpdatedAt)

	return location
}

func TestCreateLocation(t *testing.T) {
	createRandomLocation(t)
}

func TestGetLocation(t *testing.T) {
	location1 := createRandomLocation(t)
	location2, err := testStore.GetLocation(context.Background(), location1.ID)
	require.NoError(t, err)
	require.Equal(t, location1.ID, location2.ID)
	require.Equal(t, location1.Name, location2.Name)
	require.Equal(t, location1.Latitude, location2.Latitude)
}

func TestListLocationsByCategory(t *testing.T) {
	location := createRandomLocation(t)

	locations, err := testStore.ListLocations(context.Background(), ListLocationsParams{
		Category: pgtype.Text{String: location.Category, Valid: true},
		Lim:      200,
		Off:      0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, locations)
	for _, l := range locations {
		require.Equal(t, location.Category, l.Category)
	}
}

func TestListLocationsByIDs(t *testing.T) {
	location1 := createRandomLocation(t)
	location2 := createRandomLocation(t)

	locations, err := testStore.ListLocationsByIDs(context.Background(), []int64{location1.ID, location2.ID})
	require.NoError(t, err)
	require.Len(t, locations, 2)
}

func TestUpsertLocation(t *testing.T) {
	sourceID := util.RandomString(16)
	arg := UpsertLocationParams{
		Name:        util.RandomString(10),
		Category:    "restaurant",
		Address:     util.RandomString(20),
		Latitude:    pgtype.Float8{Float64: 35.1796, Valid: true},
		Longitude:   pgtype.Float8{Float64: 129.0756, Valid: true},
		RatingAvg:   4.0,
		RatingCount: 10,
		Source:      "naver",
		SourceID:    sourceID,
	}

	location1, err := testStore.UpsertLocation(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, location1.ID)

	// Same source id updates in place instead of inserting a duplicate.
	arg.RatingAvg = 4.4
	arg.RatingCount = 25
	location2, err := testStore.UpsertLocation(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, location1.ID, location2.ID)
	require.Equal(t, 4.4, location2.RatingAvg)
	require.Equal(t, int32(25), location2.RatingCount)
	require.True(t, location2.UpdatedAt.After(location1.UpdatedAt) || location2.UpdatedAt.Equal(location1.UpdatedAt))
}

func TestListStaleLocations(t *testing.T) {
	location, err := testStore.UpsertLocation(context.Background(), UpsertLocationParams{
		Name:        util.RandomString(10),
		Category:    "park",
		Latitude:    pgtype.Float8{Float64: 37.55, Valid: true},
		Longitude:   pgtype.Float8{Float64: 126.99, Valid: true},
		Source:      "google",
		SourceID:    util.RandomString(16),
	})
	require.NoError(t, err)

	cutoff := location.UpdatedAt.Add(time.Second)
	stale, err := testStore.ListStaleLocations(context.Background(), ListStaleLocationsParams{
		UpdatedAt: cutoff,
		Limit:     100000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, stale)

	var found bool
	for _, l := range stale {
		require.NotEqual(t, "manual", l.Source)
		require.True(t, l.UpdatedAt.Before(cutoff))
		if l.ID == location.ID {
			found = true
		}
	}
	require.True(t, found)
}

func TestUpdateLocationRating(t *testing.T) {
	location := createRandomLocation(t)

	updated, err := testStore.UpdateLocationRating(context.Background(), UpdateLocationRatingParams{
		ID:          location.ID,
		RatingAvg:   3.8,
		RatingCount: location.RatingCount + 1,
	})
	require.NoError(t, err)
	require.Equal(t, 3.8, updated.RatingAvg)
	require.Equal(t, location.RatingCount+1, updated.RatingCount)
}

func TestDeleteLocation(t *testing.T) {
	location := createRandomLocation(t)

	err := testStore.DeleteLocation(context.Background(), location.ID)
	require.NoError(t, err)

	_, err = testStore.GetLocation(context.Background(), location.ID)
	require.ErrorIs(t, err, ErrRecordNotFound)
}
