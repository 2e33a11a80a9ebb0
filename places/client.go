package places

import (
	"context"
	"strings"
)

// Place is a normalized search result from an external place provider.
// Latitude/Longitude are nil when the provider returned no usable
// coordinates.
type Place struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RatingAvg   float64  `json:"rating_avg"`
	RatingCount int32    `json:"rating_count"`
	Source      string   `json:"source"`
	SourceID    string   `json:"source_id"`
}

// Client is a place search provider.
type Client interface {
	// Search returns up to limit places matching the query.
	Search(ctx context.Context, query string, limit int) ([]Place, error)
	// Source identifies the provider, stored on imported locations.
	Source() string
}

// normalizeCategory maps provider category strings onto the small category
// vocabulary the recommendation endpoints filter by.
func normalizeCategory(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "cafe"), strings.Contains(raw, "카페"):
		return "cafe"
	case strings.Contains(lower, "restaurant"), strings.Contains(lower, "food"), strings.Contains(raw, "음식점"):
		return "restaurant"
	case strings.Contains(lower, "park"), strings.Contains(raw, "공원"):
		return "park"
	case strings.Contains(lower, "museum"), strings.Contains(raw, "박물관"), strings.Contains(raw, "미술관"):
		return "museum"
	case strings.Contains(lower, "book"), strings.Contains(raw, "서점"):
		return "bookstore"
	default:
		return "etc"
	}
}
