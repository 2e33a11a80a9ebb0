package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/scbae18/sololife/db/sqlc"
)

type createLogbookRequest struct {
	JourneyID  *int64 `json:"journey_id" binding:"omitempty,min=1"`
	LocationID *int64 `json:"location_id" binding:"omitempty,min=1"`
	Content    string `json:"content" binding:"required,min=1,max=2000"`
	Mood       string `json:"mood" binding:"required,validMood"`
}

// createLogbook godoc
// @Summary Write a logbook entry
// @Description Records a diary entry, optionally attached to a journey or a location.
// @Tags logbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createLogbookRequest true "logbook entry"
// @Success 200 {object} db.Logbook
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/logbooks [post]
func (server *Server) createLogbook(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req createLogbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.CreateLogbookParams{
		UserID:  payload.UserID,
		Content: req.Content,
		Mood:    req.Mood,
	}
	if req.JourneyID != nil {
		arg.JourneyID = pgtype.Int8{Int64: *req.JourneyID, Valid: true}
	}
	if req.LocationID != nil {
		arg.LocationID = pgtype.Int8{Int64: *req.LocationID, Valid: true}
	}

	logbook, err := server.store.CreateLogbook(ctx, arg)
	if err != nil {
		if db.ErrorCode(err) == db.ForeignKeyViolation {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, logbook)
}

type listLogbooksRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listLogbooks godoc
// @Summary List the current user's logbook entries
// @Tags logbooks
// @Produce json
// @Security BearerAuth
// @Param page_id query int true "page number"
// @Param page_size query int true "page size (5-50)"
// @Success 200 {array} db.Logbook
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/logbooks [get]
func (server *Server) listLogbooks(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req listLogbooksRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	logbooks, err := server.store.ListLogbooks(ctx, db.ListLogbooksParams{
		UserID: payload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, logbooks)
}

type logbookIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

func (server *Server) getOwnedLogbook(ctx *gin.Context) (db.Logbook, bool) {
	payload := authPayload(ctx)

	var req logbookIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return db.Logbook{}, false
	}

	logbook, err := server.store.GetLogbook(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return db.Logbook{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.Logbook{}, false
	}

	if logbook.UserID != payload.UserID {
		ctx.JSON(http.StatusNotFound, errorResponse(db.ErrRecordNotFound))
		return db.Logbook{}, false
	}

	return logbook, true
}

// getLogbook godoc
// @Summary Get one logbook entry
// @Tags logbooks
// @Produce json
// @Security BearerAuth
// @Param id path int true "logbook id"
// @Success 200 {object} db.Logbook
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/logbooks/{id} [get]
func (server *Server) getLogbook(ctx *gin.Context) {
	logbook, ok := server.getOwnedLogbook(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, logbook)
}

type updateLogbookRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1,max=2000"`
	Mood    *string `json:"mood" binding:"omitempty,validMood"`
}

// updateLogbook godoc
// @Summary Update a logbook entry
// @Tags logbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "logbook id"
// @Param request body updateLogbookRequest true "fields to update"
// @Success 200 {object} db.Logbook
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/logbooks/{id} [patch]
func (server *Server) updateLogbook(ctx *gin.Context) {
	logbook, ok := server.getOwnedLogbook(ctx)
	if !ok {
		return
	}

	var req updateLogbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.UpdateLogbookParams{ID: logbook.ID}
	if req.Content != nil {
		arg.Content = pgtype.Text{String: *req.Content, Valid: true}
	}
	if req.Mood != nil {
		arg.Mood = pgtype.Text{String: *req.Mood, Valid: true}
	}

	updated, err := server.store.UpdateLogbook(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// deleteLogbook godoc
// @Summary Delete a logbook entry
// @Tags logbooks
// @Produce json
// @Security BearerAuth
// @Param id path int true "logbook id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/logbooks/{id} [delete]
func (server *Server) deleteLogbook(ctx *gin.Context) {
	logbook, ok := server.getOwnedLogbook(ctx)
	if !ok {
		return
	}

	if err := server.store.DeleteLogbook(ctx, logbook.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "logbook deleted"})
}
