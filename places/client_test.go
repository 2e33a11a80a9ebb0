package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNaverClientSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/search/local.json", r.URL.Path)
		require.Equal(t, "test-id", r.Header.Get("X-Naver-Client-Id"))
		require.Equal(t, "test-secret", r.Header.Get("X-Naver-Client-Secret"))
		require.Equal(t, "연남동 카페", r.URL.Query().Get("query"))
		require.Equal(t, "3", r.URL.Query().Get("display"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 2,
			"items": [
				{
					"title": "<b>조용한</b> 서재",
					"category": "음식점>카페",
					"address": "서울특별시 마포구 연남동 1-1",
					"roadAddress": "서울특별시 마포구 동교로 100",
					"link": "https://place.naver.com/1001",
					"mapx": "1269234567",
					"mapy": "375612345"
				},
				{
					"title": "경의선숲길",
					"category": "여행,명소>공원",
					"address": "서울특별시 마포구 연남동",
					"roadAddress": "",
					"link": "",
					"mapx": "not-a-number",
					"mapy": "375600000"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewNaverClient("test-id", "test-secret")
	client.baseURL = server.URL

	places, err := client.Search(context.Background(), "연남동 카페", 3)
	require.NoError(t, err)
	require.Len(t, places, 2)

	first := places[0]
	require.Equal(t, "조용한 서재", first.Name)
	require.Equal(t, "cafe", first.Category)
	require.Equal(t, "서울특별시 마포구 동교로 100", first.Address)
	require.Equal(t, "naver", first.Source)
	require.Equal(t, "https://place.naver.com/1001", first.SourceID)
	require.NotNil(t, first.Latitude)
	require.NotNil(t, first.Longitude)
	require.InDelta(t, 37.5612345, *first.Latitude, 1e-9)
	require.InDelta(t, 126.9234567, *first.Longitude, 1e-9)

	second := places[1]
	require.Equal(t, "경의선숲길", second.Name)
	require.Equal(t, "park", second.Category)
	// No road address falls back to the lot-number address.
	require.Equal(t, "서울특별시 마포구 연남동", second.Address)
	// Empty link gets a synthetic source id so the upsert key stays stable.
	require.Equal(t, "경의선숲길|서울특별시 마포구 연남동", second.SourceID)
	// Broken coordinates are dropped rather than guessed.
	require.Nil(t, second.Latitude)
	require.Nil(t, second.Longitude)
}

func TestNaverClientSearchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errorMessage":"Not Exist Client ID","errorCode":"024"}`))
	}))
	defer server.Close()

	client := NewNaverClient("bad-id", "bad-secret")
	client.baseURL = server.URL

	places, err := client.Search(context.Background(), "연남동 카페", 3)
	require.Error(t, err)
	require.Nil(t, places)
	require.Contains(t, err.Error(), "status=401")
}

func TestGoogleClientSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/maps/api/place/textsearch/json", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "quiet cafe hongdae", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"place_id": "ChIJabc123",
					"name": "Quiet Cafe",
					"formatted_address": "100 Donggyo-ro, Mapo-gu, Seoul",
					"types": ["cafe", "food", "point_of_interest"],
					"rating": 4.4,
					"user_ratings_total": 321,
					"geometry": {"location": {"lat": 37.5612, "lng": 126.9234}}
				},
				{
					"place_id": "ChIJdef456",
					"name": "Another Cafe",
					"formatted_address": "2 Yeonnam-ro, Mapo-gu, Seoul",
					"types": ["cafe"],
					"rating": 4.1,
					"user_ratings_total": 58,
					"geometry": {"location": {"lat": 37.5620, "lng": 126.9240}}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewGoogleClient("test-key")
	client.baseURL = server.URL

	places, err := client.Search(context.Background(), "quiet cafe hongdae", 1)
	require.NoError(t, err)
	require.Len(t, places, 1)

	place := places[0]
	require.Equal(t, "Quiet Cafe", place.Name)
	require.Equal(t, "cafe", place.Category)
	require.Equal(t, "100 Donggyo-ro, Mapo-gu, Seoul", place.Address)
	require.Equal(t, 4.4, place.RatingAvg)
	require.Equal(t, int32(321), place.RatingCount)
	require.Equal(t, "google", place.Source)
	require.Equal(t, "ChIJabc123", place.SourceID)
	require.NotNil(t, place.Latitude)
	require.InDelta(t, 37.5612, *place.Latitude, 1e-9)
}

func TestGoogleClientSearchZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := NewGoogleClient("test-key")
	client.baseURL = server.URL

	places, err := client.Search(context.Background(), "no such place", 5)
	require.NoError(t, err)
	require.Empty(t, places)
}

func TestGoogleClientSearchRequestDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid.", "results": []}`))
	}))
	defer server.Close()

	client := NewGoogleClient("bad-key")
	client.baseURL = server.URL

	_, err := client.Search(context.Background(), "quiet cafe", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestNormalizeCategory(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{"음식점>카페", "cafe"},
		{"cafe,food,point_of_interest", "cafe"},
		{"음식점>한식", "restaurant"},
		{"여행,명소>공원", "park"},
		{"book_store", "bookstore"},
		{"박물관", "museum"},
		{"lodging", "etc"},
		{"", "etc"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, normalizeCategory(tc.raw), "raw=%q", tc.raw)
	}
}
