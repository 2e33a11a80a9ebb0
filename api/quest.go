package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/scbae18/sololife/db/sqlc"
)

type createQuestRequest struct {
	Title        string `json:"title" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"max=1000"`
	RewardPoints int64  `json:"reward_points" binding:"min=0,max=10000"`
}

// createQuest godoc
// @Summary Create a quest
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createQuestRequest true "quest data"
// @Success 200 {object} db.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/quests [post]
func (server *Server) createQuest(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req createQuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	quest, err := server.store.CreateQuest(ctx, db.CreateQuestParams{
		UserID:       payload.UserID,
		Title:        req.Title,
		Description:  req.Description,
		RewardPoints: req.RewardPoints,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, quest)
}

type listQuestsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listQuests godoc
// @Summary List the current user's quests
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Param page_id query int true "page number"
// @Param page_size query int true "page size (5-50)"
// @Success 200 {array} db.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/quests [get]
func (server *Server) listQuests(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req listQuestsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	quests, err := server.store.ListQuests(ctx, db.ListQuestsParams{
		UserID: payload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, quests)
}

type questIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getOwnedQuest loads a quest and enforces that it belongs to the caller.
// Someone else's quest is reported as not found, not as forbidden.
func (server *Server) getOwnedQuest(ctx *gin.Context) (db.Quest, bool) {
	payload := authPayload(ctx)

	var req questIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return db.Quest{}, false
	}

	quest, err := server.store.GetQuest(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return db.Quest{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.Quest{}, false
	}

	if quest.UserID != payload.UserID {
		ctx.JSON(http.StatusNotFound, errorResponse(db.ErrRecordNotFound))
		return db.Quest{}, false
	}

	return quest, true
}

// getQuest godoc
// @Summary Get one quest
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Param id path int true "quest id"
// @Success 200 {object} db.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/quests/{id} [get]
func (server *Server) getQuest(ctx *gin.Context) {
	quest, ok := server.getOwnedQuest(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, quest)
}

type updateQuestRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=1000"`
	RewardPoints *int64  `json:"reward_points" binding:"omitempty,min=0,max=10000"`
}

// updateQuest godoc
// @Summary Update a quest
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "quest id"
// @Param request body updateQuestRequest true "fields to update"
// @Success 200 {object} db.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/quests/{id} [patch]
func (server *Server) updateQuest(ctx *gin.Context) {
	quest, ok := server.getOwnedQuest(ctx)
	if !ok {
		return
	}

	var req updateQuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.UpdateQuestParams{ID: quest.ID}
	if req.Title != nil {
		arg.Title = pgtype.Text{String: *req.Title, Valid: true}
	}
	if req.Description != nil {
		arg.Description = pgtype.Text{String: *req.Description, Valid: true}
	}
	if req.RewardPoints != nil {
		arg.RewardPoints = pgtype.Int8{Int64: *req.RewardPoints, Valid: true}
	}

	updated, err := server.store.UpdateQuest(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// deleteQuest godoc
// @Summary Delete a quest
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Param id path int true "quest id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/quests/{id} [delete]
func (server *Server) deleteQuest(ctx *gin.Context) {
	quest, ok := server.getOwnedQuest(ctx)
	if !ok {
		return
	}

	if err := server.store.DeleteQuest(ctx, quest.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "quest deleted"})
}

type completeQuestResponse struct {
	Quest  db.Quest `json:"quest"`
	Points int64    `json:"points"`
	Title  string   `json:"title"`
}

// completeQuest godoc
// @Summary Complete a quest and collect its reward
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Param id path int true "quest id"
// @Success 200 {object} completeQuestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "quest already completed"
// @Failure 500 {object} ErrorResponse
// @Router /v1/quests/{id}/complete [post]
func (server *Server) completeQuest(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req questIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.CompleteQuestTx(ctx, db.CompleteQuestTxParams{
		QuestID: req.ID,
		UserID:  payload.UserID,
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

	ctx.JSON(http.StatusOK, completeQuestResponse{
		Quest:  result.Quest,
		Points: result.User.Points,
		Title:  result.User.Title,
	})
}
