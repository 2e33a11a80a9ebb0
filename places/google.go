package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	googleBaseURL   = "https://maps.googleapis.com"
	googleSearchURL = "/maps/api/place/textsearch/json"
)

// GoogleClient searches places through the Google Places text search API.
type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleClient creates a Google Places client.
func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		baseURL: googleBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type googleSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Types            []string `json:"types"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int32    `json:"user_ratings_total"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Search queries the Places text search API and normalizes the results.
func (c *GoogleClient) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)

	reqURL := c.baseURL + googleSearchURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var result googleSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("API error: %s (status=%s)", result.ErrorMessage, result.Status)
	}

	places := make([]Place, 0, len(result.Results))
	for _, item := range result.Results {
		if limit > 0 && len(places) >= limit {
			break
		}

		lat := item.Geometry.Location.Lat
		lng := item.Geometry.Location.Lng

		places = append(places, Place{
			Name:        item.Name,
			Category:    normalizeCategory(strings.Join(item.Types, ",")),
			Address:     item.FormattedAddress,
			Latitude:    &lat,
			Longitude:   &lng,
			RatingAvg:   item.Rating,
			RatingCount: item.UserRatingsTotal,
			Source:      c.Source(),
			SourceID:    item.PlaceID,
		})
	}

	return places, nil
}

// Source returns the provider identifier.
func (c *GoogleClient) Source() string {
	return "google"
}

var _ Client = (*GoogleClient)(nil)
