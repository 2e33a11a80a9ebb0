package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/scbae18/sololife/algorithm"
	db "github.com/scbae18/sololife/db/sqlc"
)

// candidatePoolSize bounds how many catalog rows feed one recommendation draw.
const candidatePoolSize = 200

const (
	strategyWeightedRandom = "weighted_random"
	strategySampledSet     = "weighted_sample"
)

func toCandidate(loc db.Location) algorithm.Candidate {
	c := algorithm.Candidate{
		ID:          loc.ID,
		Category:    loc.Category,
		RatingAvg:   loc.RatingAvg,
		RatingCount: loc.RatingCount,
		RecencyAt:   loc.CreatedAt,
	}
	if !loc.UpdatedAt.IsZero() {
		c.RecencyAt = loc.UpdatedAt
	}
	if loc.Latitude.Valid && loc.Longitude.Valid {
		c.Coord = &algorithm.GeoPoint{Latitude: loc.Latitude.Float64, Longitude: loc.Longitude.Float64}
	}
	return c
}

// loadCandidatePool pulls a bounded slice of the catalog and dedupes it
// before any draw runs against it.
func (server *Server) loadCandidatePool(ctx *gin.Context, category string) ([]algorithm.Candidate, error) {
	arg := db.ListLocationsParams{Lim: candidatePoolSize, Off: 0}
	if category != "" {
		arg.Category = pgtype.Text{String: category, Valid: true}
	}

	locations, err := server.store.ListLocations(ctx, arg)
	if err != nil {
		return nil, err
	}

	pool := make([]algorithm.Candidate, 0, len(locations))
	for _, loc := range locations {
		pool = append(pool, toCandidate(loc))
	}
	return algorithm.DedupeCandidates(pool), nil
}

type recommendOneRequest struct {
	Category  string   `form:"category" binding:"omitempty,validCategory"`
	Latitude  *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
}

type recommendedItem struct {
	LocationID int64   `json:"location_id"`
	Type       string  `json:"type"`
	Score      float64 `json:"score"`
}

type recommendOneResponse struct {
	Items    []recommendedItem `json:"items"`
	Strategy string            `json:"strategy"`
}

// recommendOne godoc
// @Summary Recommend a single location
// @Description Draws one location weighted by rating, freshness and proximity.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param category query string false "category filter"
// @Param latitude query number false "reference latitude"
// @Param longitude query number false "reference longitude"
// @Success 200 {object} recommendOneResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/recommendations/one [get]
func (server *Server) recommendOne(ctx *gin.Context) {
	var req recommendOneRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pool, err := server.loadCandidatePool(ctx, req.Category)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// An empty pool is a representable outcome, not an error.
	if len(pool) == 0 {
		RecordRecommendationServed(strategyWeightedRandom)
		ctx.JSON(http.StatusOK, recommendOneResponse{
			Items:    []recommendedItem{},
			Strategy: strategyWeightedRandom,
		})
		return
	}

	var ref *algorithm.GeoPoint
	if req.Latitude != nil && req.Longitude != nil {
		ref = &algorithm.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	now := time.Now()
	weights := make([]float64, len(pool))
	for i, c := range pool {
		weights[i] = algorithm.Score(c, ref, now)
	}

	picked := pool[algorithm.WeightedPick(server.newRand(), weights)]

	RecordRecommendationServed(strategyWeightedRandom)
	ctx.JSON(http.StatusOK, recommendOneResponse{
		Items: []recommendedItem{{
			LocationID: picked.ID,
			Type:       picked.Category,
			Score:      algorithm.Score(picked, ref, now),
		}},
		Strategy: strategyWeightedRandom,
	})
}

type recommendNextRequest struct {
	Category  string   `form:"category" binding:"omitempty,validCategory"`
	Count     int      `form:"count" binding:"omitempty,min=1,max=10"`
	Latitude  *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
}

type recommendNextResponse struct {
	Items []recommendedItem `json:"items"`
	// OrderingHint lists the picked location ids in draw order, which is
	// the suggested visiting order.
	OrderingHint []int64 `json:"ordering_hint"`
	Strategy     string  `json:"strategy"`
}

// recommendNext godoc
// @Summary Recommend a set of distinct next stops
// @Description Draws several distinct locations without replacement, ordered by draw sequence.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param category query string false "category filter"
// @Param count query int false "number of picks (1-10, default 3)"
// @Param latitude query number false "reference latitude"
// @Param longitude query number false "reference longitude"
// @Success 200 {object} recommendNextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/recommendations/next [get]
func (server *Server) recommendNext(ctx *gin.Context) {
	var req recommendNextRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	count := req.Count
	if count == 0 {
		count = 3
	}

	pool, err := server.loadCandidatePool(ctx, req.Category)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	var ref *algorithm.GeoPoint
	if req.Latitude != nil && req.Longitude != nil {
		ref = &algorithm.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	// An empty pool yields empty picks, which is a representable outcome.
	picks := algorithm.PickWithoutReplacement(server.newRand(), pool, count, ref, time.Now())

	items := make([]recommendedItem, 0, len(picks))
	orderingHint := make([]int64, 0, len(picks))
	for _, pick := range picks {
		items = append(items, recommendedItem{
			LocationID: pick.Candidate.ID,
			Type:       pick.Candidate.Category,
			Score:      pick.Weight,
		})
		orderingHint = append(orderingHint, pick.Candidate.ID)
	}

	RecordRecommendationServed(strategySampledSet)
	ctx.JSON(http.StatusOK, recommendNextResponse{
		Items:        items,
		OrderingHint: orderingHint,
		Strategy:     strategySampledSet,
	})
}

type previewRouteRequest struct {
	SelectedIDs []int64 `json:"selected_ids" binding:"required,min=1,max=10,dive,min=1"`
	AppendIDs   []int64 `json:"append_ids" binding:"omitempty,max=10,dive,min=1"`
	StartID     int64   `json:"start_id" binding:"omitempty,min=1"`
}

type previewRouteStop struct {
	LocationID     int64 `json:"location_id"`
	SequenceNumber int32 `json:"sequence_number"`
}

type previewRouteMetrics struct {
	TotalDistanceKm float64 `json:"total_distance_km"`
	EtaMin          int     `json:"eta_min"`
}

type previewRouteResponse struct {
	Route   []previewRouteStop  `json:"route"`
	Metrics previewRouteMetrics `json:"metrics"`
}

// previewRoute godoc
// @Summary Preview a walking route over chosen locations
// @Description Sequences the selected locations plus any appended ones and returns the order with distance and ETA, without persisting anything.
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body previewRouteRequest true "location selection"
// @Success 200 {object} previewRouteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/routes/preview [post]
func (server *Server) previewRoute(ctx *gin.Context) {
	var req previewRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ids := make([]int64, 0, len(req.SelectedIDs)+len(req.AppendIDs))
	ids = append(ids, req.SelectedIDs...)
	ids = append(ids, req.AppendIDs...)

	locations, err := server.store.ListLocationsByIDs(ctx, ids)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	byID := make(map[int64]db.Location, len(locations))
	for _, loc := range locations {
		byID[loc.ID] = loc
	}

	// Preserve the caller's list order as the sequencer's input order so
	// ties resolve the same way the client presented them.
	points := make([]algorithm.RoutePoint, 0, len(ids))
	for _, id := range ids {
		loc, found := byID[id]
		if !found {
			ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("unknown location id %d", id)))
			return
		}
		point := algorithm.RoutePoint{ID: loc.ID}
		if loc.Latitude.Valid && loc.Longitude.Valid {
			point.Coord = &algorithm.GeoPoint{Latitude: loc.Latitude.Float64, Longitude: loc.Longitude.Float64}
		}
		points = append(points, point)
	}

	plan := algorithm.BuildRoute(points, req.StartID)

	route := make([]previewRouteStop, 0, len(plan.Stops))
	for _, stop := range plan.Stops {
		route = append(route, previewRouteStop{
			LocationID:     stop.LocationID,
			SequenceNumber: stop.SequenceNumber,
		})
	}

	ctx.JSON(http.StatusOK, previewRouteResponse{
		Route: route,
		Metrics: previewRouteMetrics{
			TotalDistanceKm: plan.TotalDistanceKm,
			EtaMin:          plan.EtaMinutes,
		},
	})
}
