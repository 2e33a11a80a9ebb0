package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	mockdb "github.com/scbae18/sololife/db/mock"
	db "github.com/scbae18/sololife/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateJourneyAPI(t *testing.T) {
	user, _ := randomUser(t)

	// Greedy nearest-neighbor from id 1 visits 3 then 2.
	locations := []db.Location{
		equatorLocation(1, 0),
		equatorLocation(2, 0.2),
		equatorLocation(3, 0.1),
	}

	journey := db.Journey{
		ID:           9,
		UserID:       user.ID,
		Title:        "Saturday loop",
		Status:       "planned",
		RewardPoints: 30,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListLocationsByIDs(gomock.Any(), gomock.Eq([]int64{1, 2, 3})).
		Times(1).
		Return(locations, nil)
	store.EXPECT().
		CreateJourney(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ any, arg db.CreateJourneyParams) (db.Journey, error) {
			require.Equal(t, user.ID, arg.UserID)
			require.Equal(t, journey.Title, arg.Title)
			require.Greater(t, arg.TotalDistanceKm, 0.0)
			require.Greater(t, arg.EtaMinutes, int32(0))
			return journey, nil
		})

	wantOrder := []int64{1, 3, 2}
	for i, locationID := range wantOrder {
		store.EXPECT().
			AddJourneyLocation(gomock.Any(), gomock.Eq(db.AddJourneyLocationParams{
				JourneyID:      journey.ID,
				LocationID:     locationID,
				SequenceNumber: int32(i + 1),
			})).
			Times(1).
			Return(db.JourneyLocation{
				JourneyID:      journey.ID,
				LocationID:     locationID,
				SequenceNumber: int32(i + 1),
			}, nil)
	}

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	body, err := json.Marshal(gin.H{
		"title":         journey.Title,
		"location_ids":  []int64{1, 2, 3},
		"start_id":      1,
		"reward_points": journey.RewardPoints,
	})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/v1/journeys", bytes.NewReader(body))
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got journeyResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, journey.ID, got.Journey.ID)
	require.Len(t, got.Stops, 3)
	for i, stop := range got.Stops {
		require.Equal(t, wantOrder[i], stop.LocationID)
	}
}

func TestCreateJourneyUnknownLocation(t *testing.T) {
	user, _ := randomUser(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListLocationsByIDs(gomock.Any(), gomock.Eq([]int64{1, 99})).
		Times(1).
		Return([]db.Location{equatorLocation(1, 0)}, nil)
	store.EXPECT().
		CreateJourney(gomock.Any(), gomock.Any()).
		Times(0)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	body, err := json.Marshal(gin.H{
		"title":        "Broken plan",
		"location_ids": []int64{1, 99},
	})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/v1/journeys", bytes.NewReader(body))
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCompleteJourneyAPI(t *testing.T) {
	user, _ := randomUser(t)
	journey := db.Journey{
		ID:           4,
		UserID:       user.ID,
		Title:        "Museum afternoon",
		Status:       "completed",
		RewardPoints: 80,
	}

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				rewarded := user
				rewarded.Points = user.Points + journey.RewardPoints

				arg := db.CompleteJourneyTxParams{
					JourneyID: journey.ID,
					UserID:    user.ID,
				}
				store.EXPECT().
					CompleteJourneyTx(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(db.CompleteJourneyTxResult{
						Journey: journey,
						User:    rewarded,
					}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got completeJourneyResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, "completed", got.Journey.Status)
				require.Equal(t, user.Points+journey.RewardPoints, got.Points)
			},
		},
		{
			name: "AlreadyCompleted",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CompleteJourneyTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.CompleteJourneyTxResult{}, fmt.Errorf("journey %d: %w", journey.ID, db.ErrAlreadyCompleted))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CompleteJourneyTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.CompleteJourneyTxResult{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
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

			url := fmt.Sprintf("/v1/journeys/%d/complete", journey.ID)
			request, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
