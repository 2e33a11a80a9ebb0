package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	mockdb "github.com/scbae18/sololife/db/mock"
	db "github.com/scbae18/sololife/db/sqlc"
	"github.com/scbae18/sololife/places"
	"github.com/scbae18/sololife/util"
	"github.com/scbae18/sololife/worker"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSearchCache struct {
	entries map[string][]places.Place
}

func (c *fakeSearchCache) Get(ctx context.Context, query string) ([]places.Place, error) {
	return c.entries[query], nil
}

func (c *fakeSearchCache) Set(ctx context.Context, query string, results []places.Place) error {
	c.entries[query] = results
	return nil
}

func (c *fakeSearchCache) Delete(ctx context.Context, query string) error {
	delete(c.entries, query)
	return nil
}

type fakeTaskDistributor struct {
	importPayloads []*worker.PayloadImportLocations
}

func (d *fakeTaskDistributor) DistributeTaskGrantWelcomeBonus(
	ctx context.Context,
	payload *worker.PayloadGrantWelcomeBonus,
	opts ...asynq.Option,
) error {
	return nil
}

func (d *fakeTaskDistributor) DistributeTaskImportLocations(
	ctx context.Context,
	payload *worker.PayloadImportLocations,
	opts ...asynq.Option,
) error {
	d.importPayloads = append(d.importPayloads, payload)
	return nil
}

func newTestServerWith(t *testing.T, store db.Store, cache places.SearchCache, distributor worker.TaskDistributor) *Server {
	config := util.Config{
		TokenSymmetricKey:   util.RandomString(32),
		AccessTokenDuration: time.Minute,
	}

	server, err := NewServer(config, store, cache, distributor)
	require.NoError(t, err)

	return server
}

func TestListLocationsAPI(t *testing.T) {
	locations := []db.Location{
		equatorLocation(1, 0),
		equatorLocation(2, 0.1),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListLocations(gomock.Any(), db.ListLocationsParams{Lim: 10, Off: 0}).
		Times(1).
		Return(locations, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	// Public endpoint, no auth header.
	request, err := http.NewRequest(http.MethodGet, "/v1/locations?page_id=1&page_size=10", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []db.Location
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got, 2)
}

func TestListLocationsCategoryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListLocations(gomock.Any(), db.ListLocationsParams{
			Category: pgtype.Text{String: "park", Valid: true},
			Lim:      5,
			Off:      0,
		}).
		Times(1).
		Return([]db.Location{equatorLocation(7, 0.4)}, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/v1/locations?page_id=1&page_size=5&category=park", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetLocationAPI(t *testing.T) {
	location := equatorLocation(3, 0.2)

	testCases := []struct {
		name          string
		locationID    int64
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:       "OK",
			locationID: location.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetLocation(gomock.Any(), gomock.Eq(location.ID)).
					Times(1).
					Return(location, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got db.Location
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, location.ID, got.ID)
			},
		},
		{
			name:       "NotFound",
			locationID: location.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetLocation(gomock.Any(), gomock.Eq(location.ID)).
					Times(1).
					Return(db.Location{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:       "InvalidID",
			locationID: 0,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetLocation(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/locations/%d", tc.locationID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestCreateLocationAPI(t *testing.T) {
	user, _ := randomUser(t)
	location := equatorLocation(11, 0.5)
	location.Source = "manual"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		CreateLocation(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ any, arg db.CreateLocationParams) (db.Location, error) {
			require.Equal(t, "manual", arg.Source)
			require.NotEmpty(t, arg.SourceID)
			require.True(t, arg.Latitude.Valid)
			require.True(t, arg.Longitude.Valid)
			return location, nil
		})

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	body, err := json.Marshal(gin.H{
		"name":      "Hidden Bookstore",
		"category":  "bookstore",
		"address":   "12 Quiet Lane",
		"latitude":  0.0,
		"longitude": 0.5,
	})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/v1/locations", bytes.NewReader(body))
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestSearchLocationsAPI(t *testing.T) {
	user, _ := randomUser(t)

	cache := &fakeSearchCache{entries: map[string][]places.Place{
		"seongsu cafe": {
			{Name: "Seongsu Roastery", Category: "cafe", Source: "naver", SourceID: "x"},
		},
	}}

	server := newTestServerWith(t, nil, cache, nil)

	t.Run("Hit", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, "/v1/places/search?query=seongsu+cafe", nil)
		require.NoError(t, err)

		addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)

		var got searchLocationsResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		require.Equal(t, "seongsu cafe", got.Query)
		require.Len(t, got.Places, 1)
		require.Equal(t, "Seongsu Roastery", got.Places[0].Name)
	})

	t.Run("Miss", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, "/v1/places/search?query=nothing", nil)
		require.NoError(t, err)

		addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestImportLocationsAPI(t *testing.T) {
	user, _ := randomUser(t)

	distributor := &fakeTaskDistributor{}
	server := newTestServerWith(t, nil, nil, distributor)

	recorder := httptest.NewRecorder()
	body, err := json.Marshal(gin.H{"query": "mangwon park", "limit": 5})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/v1/locations/import", bytes.NewReader(body))
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusAccepted, recorder.Code)

	require.Len(t, distributor.importPayloads, 1)
	require.Equal(t, "mangwon park", distributor.importPayloads[0].Query)
	require.Equal(t, 5, distributor.importPayloads[0].Limit)
}
