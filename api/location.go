package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/scbae18/sololife/db/sqlc"
	"github.com/scbae18/sololife/places"
	"github.com/scbae18/sololife/worker"
)

type listLocationsRequest struct {
	Category string `form:"category" binding:"omitempty,validCategory"`
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=50"`
}

// listLocations godoc
// @Summary List locations
// @Description Public catalog listing, optionally filtered by category.
// @Tags locations
// @Produce json
// @Param category query string false "category filter"
// @Param page_id query int true "page number"
// @Param page_size query int true "page size (5-50)"
// @Success 200 {array} db.Location
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/locations [get]
func (server *Server) listLocations(ctx *gin.Context) {
	var req listLocationsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListLocationsParams{
		Lim: req.PageSize,
		Off: (req.PageID - 1) * req.PageSize,
	}
	if req.Category != "" {
		arg.Category = pgtype.Text{String: req.Category, Valid: true}
	}

	locations, err := server.store.ListLocations(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, locations)
}

type locationIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getLocation godoc
// @Summary Get one location
// @Tags locations
// @Produce json
// @Param id path int true "location id"
// @Success 200 {object} db.Location
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/locations/{id} [get]
func (server *Server) getLocation(ctx *gin.Context) {
	var req locationIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	location, err := server.store.GetLocation(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, location)
}

type createLocationRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=100"`
	Category  string   `json:"category" binding:"required,validCategory"`
	Address   string   `json:"address" binding:"max=200"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// createLocation godoc
// @Summary Add a location by hand
// @Description Registers a location outside the provider import flow.
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createLocationRequest true "location data"
// @Success 200 {object} db.Location
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/locations [post]
func (server *Server) createLocation(ctx *gin.Context) {
	var req createLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.CreateLocationParams{
		Name:     req.Name,
		Category: req.Category,
		Address:  req.Address,
		Source:   "manual",
		SourceID: req.Name + "|" + req.Address,
	}
	if req.Latitude != nil && req.Longitude != nil {
		arg.Latitude = pgtype.Float8{Float64: *req.Latitude, Valid: true}
		arg.Longitude = pgtype.Float8{Float64: *req.Longitude, Valid: true}
	}

	location, err := server.store.CreateLocation(ctx, arg)
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, location)
}

// deleteLocation godoc
// @Summary Delete a location
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "location id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/locations/{id} [delete]
func (server *Server) deleteLocation(ctx *gin.Context) {
	var req locationIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if _, err := server.store.GetLocation(ctx, req.ID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if err := server.store.DeleteLocation(ctx, req.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "location deleted"})
}

type searchLocationsRequest struct {
	Query string `form:"query" binding:"required,min=1,max=100"`
}

type searchLocationsResponse struct {
	Query  string         `json:"query"`
	Places []places.Place `json:"places"`
}

// searchLocations godoc
// @Summary Search cached provider results
// @Description Serves place provider results cached by a prior import for the same query. A cache miss means no recent import ran.
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param query query string true "search query"
// @Success 200 {object} searchLocationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "no cached results for this query"
// @Failure 500 {object} ErrorResponse
// @Router /v1/places/search [get]
func (server *Server) searchLocations(ctx *gin.Context) {
	var req searchLocationsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if server.placesCache == nil {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("search cache not configured")))
		return
	}

	cached, err := server.placesCache.Get(ctx, req.Query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if cached == nil {
		ctx.JSON(http.StatusNotFound, errorResponse(errors.New("no cached results, run an import for this query first")))
		return
	}

	ctx.JSON(http.StatusOK, searchLocationsResponse{
		Query:  req.Query,
		Places: cached,
	})
}

type importLocationsRequest struct {
	Query string `json:"query" binding:"required,min=1,max=100"`
	Limit int    `json:"limit" binding:"omitempty,min=1,max=20"`
}

// importLocations godoc
// @Summary Import locations from the configured place provider
// @Description Queues a background import; results land in the catalog asynchronously.
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body importLocationsRequest true "search query"
// @Success 202 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/locations/import [post]
func (server *Server) importLocations(ctx *gin.Context) {
	var req importLocationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = 10
	}

	taskPayload := &worker.PayloadImportLocations{
		Query: req.Query,
		Limit: limit,
	}
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Queue(worker.QueueDefault),
	}
	if err := server.taskDistributor.DistributeTaskImportLocations(ctx, taskPayload, opts...); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusAccepted, MessageResponse{Message: "import queued"})
}
