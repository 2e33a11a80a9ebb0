package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

const (
	naverBaseURL   = "https://openapi.naver.com"
	naverSearchURL = "/v1/search/local.json"

	// Naver local search caps display at 5 per request.
	naverMaxDisplay = 5
)

// NaverClient searches places through the Naver local search API.
type NaverClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

// NewNaverClient creates a Naver local search client.
func NewNaverClient(clientID, clientSecret string) *NaverClient {
	return &NaverClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      naverBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type naverSearchResponse struct {
	Total int `json:"total"`
	Items []struct {
		Title       string `json:"title"`
		Category    string `json:"category"`
		Address     string `json:"address"`
		RoadAddress string `json:"roadAddress"`
		Link        string `json:"link"`
		// KATECH-projected WGS84 coordinates scaled by 1e7.
		MapX string `json:"mapx"`
		MapY string `json:"mapy"`
	} `json:"items"`
}

var naverTagPattern = regexp.MustCompile(`</?b>`)

// Search queries the Naver local search API and normalizes the results.
func (c *NaverClient) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	if limit <= 0 || limit > naverMaxDisplay {
		limit = naverMaxDisplay
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(limit))
	params.Set("sort", "random")

	reqURL := c.baseURL + naverSearchURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var result naverSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	places := make([]Place, 0, len(result.Items))
	for _, item := range result.Items {
		name := naverTagPattern.ReplaceAllString(item.Title, "")

		address := item.RoadAddress
		if address == "" {
			address = item.Address
		}

		place := Place{
			Name:     name,
			Category: normalizeCategory(item.Category),
			Address:  address,
			Source:   c.Source(),
			SourceID: item.Link,
		}
		if place.SourceID == "" {
			place.SourceID = name + "|" + address
		}

		if lng, err := parseNaverCoordinate(item.MapX); err == nil {
			if lat, err := parseNaverCoordinate(item.MapY); err == nil {
				place.Latitude = &lat
				place.Longitude = &lng
			}
		}

		places = append(places, place)
	}

	return places, nil
}

// Source returns the provider identifier.
func (c *NaverClient) Source() string {
	return "naver"
}

// parseNaverCoordinate converts Naver's integer-scaled coordinate string
// (WGS84 degrees * 1e7) to degrees.
func parseNaverCoordinate(raw string) (float64, error) {
	scaled, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse coordinate %q: %w", raw, err)
	}
	return scaled / 1e7, nil
}

var _ Client = (*NaverClient)(nil)
