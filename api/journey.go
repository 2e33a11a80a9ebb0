package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scbae18/sololife/algorithm"
	db "github.com/scbae18/sololife/db/sqlc"
)

type createJourneyRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=100"`
	LocationIDs  []int64 `json:"location_ids" binding:"required,min=1,max=10,dive,min=1"`
	StartID      int64   `json:"start_id" binding:"omitempty,min=1"`
	RewardPoints int64   `json:"reward_points" binding:"min=0,max=10000"`
}

type journeyResponse struct {
	Journey db.Journey           `json:"journey"`
	Stops   []db.JourneyLocation `json:"stops"`
}

// createJourney godoc
// @Summary Create a journey from a set of locations
// @Description Orders the given locations into a walkable route and stores it with distance and ETA.
// @Tags journeys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createJourneyRequest true "journey data"
// @Success 200 {object} journeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/journeys [post]
func (server *Server) createJourney(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req createJourneyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	locations, err := server.store.ListLocationsByIDs(ctx, req.LocationIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if len(locations) != len(req.LocationIDs) {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("unknown location in request: got %d of %d", len(locations), len(req.LocationIDs))))
		return
	}

	points := make([]algorithm.RoutePoint, 0, len(locations))
	for _, loc := range locations {
		point := algorithm.RoutePoint{ID: loc.ID}
		if loc.Latitude.Valid && loc.Longitude.Valid {
			point.Coord = &algorithm.GeoPoint{Latitude: loc.Latitude.Float64, Longitude: loc.Longitude.Float64}
		}
		points = append(points, point)
	}

	plan := algorithm.BuildRoute(points, req.StartID)

	journey, err := server.store.CreateJourney(ctx, db.CreateJourneyParams{
		UserID:          payload.UserID,
		Title:           req.Title,
		TotalDistanceKm: plan.TotalDistanceKm,
		EtaMinutes:      int32(plan.EtaMinutes),
		RewardPoints:    req.RewardPoints,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	stops := make([]db.JourneyLocation, 0, len(plan.Stops))
	for _, stop := range plan.Stops {
		jl, err := server.store.AddJourneyLocation(ctx, db.AddJourneyLocationParams{
			JourneyID:      journey.ID,
			LocationID:     stop.LocationID,
			SequenceNumber: stop.SequenceNumber,
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		stops = append(stops, jl)
	}

	ctx.JSON(http.StatusOK, journeyResponse{Journey: journey, Stops: stops})
}

type listJourneysRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listJourneys godoc
// @Summary List the current user's journeys
// @Tags journeys
// @Produce json
// @Security BearerAuth
// @Param page_id query int true "page number"
// @Param page_size query int true "page size (5-50)"
// @Success 200 {array} db.Journey
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/journeys [get]
func (server *Server) listJourneys(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req listJourneysRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	journeys, err := server.store.ListJourneys(ctx, db.ListJourneysParams{
		UserID: payload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, journeys)
}

type journeyIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

func (server *Server) getOwnedJourney(ctx *gin.Context) (db.Journey, bool) {
	payload := authPayload(ctx)

	var req journeyIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return db.Journey{}, false
	}

	journey, err := server.store.GetJourney(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return db.Journey{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.Journey{}, false
	}

	if journey.UserID != payload.UserID {
		ctx.JSON(http.StatusNotFound, errorResponse(db.ErrRecordNotFound))
		return db.Journey{}, false
	}

	return journey, true
}

// getJourney godoc
// @Summary Get one journey with its ordered stops
// @Tags journeys
// @Produce json
// @Security BearerAuth
// @Param id path int true "journey id"
// @Success 200 {object} journeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/journeys/{id} [get]
func (server *Server) getJourney(ctx *gin.Context) {
	journey, ok := server.getOwnedJourney(ctx)
	if !ok {
		return
	}

	stops, err := server.store.ListJourneyLocations(ctx, journey.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, journeyResponse{Journey: journey, Stops: stops})
}

// deleteJourney godoc
// @Summary Delete a journey
// @Tags journeys
// @Produce json
// @Security BearerAuth
// @Param id path int true "journey id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/journeys/{id} [delete]
func (server *Server) deleteJourney(ctx *gin.Context) {
	journey, ok := server.getOwnedJourney(ctx)
	if !ok {
		return
	}

	if err := server.store.DeleteJourney(ctx, journey.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "journey deleted"})
}

type completeJourneyResponse struct {
	Journey db.Journey `json:"journey"`
	Points  int64      `json:"points"`
	Title   string     `json:"title"`
}

// completeJourney godoc
// @Summary Complete a journey and collect its reward
// @Tags journeys
// @Produce json
// @Security BearerAuth
// @Param id path int true "journey id"
// @Success 200 {object} completeJourneyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "journey already completed"
// @Failure 500 {object} ErrorResponse
// @Router /v1/journeys/{id}/complete [post]
func (server *Server) completeJourney(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req journeyIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.CompleteJourneyTx(ctx, db.CompleteJourneyTxParams{
		JourneyID: req.ID,
		UserID:    payload.UserID,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		if errors.Is(err, db.ErrAlreadyCompleted) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, completeJourneyResponse{
		Journey: result.Journey,
		Points:  result.User.Points,
		Title:   result.User.Title,
	})
}
