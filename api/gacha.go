package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/scbae18/sololife/db/sqlc"
)

type rollGachaRequest struct {
	// Cost is optional; absent or non-positive values fall back to the configured cost.
	Cost int64 `json:"cost"`
}

type gachaCharacterResult struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}

type gachaAssetResult struct {
	AssetID  string `json:"asset_id"`
	Slot     int32  `json:"slot"`
	Replaced bool   `json:"replaced"`
}

type rollGachaResponse struct {
	Ok          bool                  `json:"ok"`
	Spent       int64                 `json:"spent"`
	Type        string                `json:"type"`
	Character   *gachaCharacterResult `json:"character,omitempty"`
	Asset       *gachaAssetResult     `json:"asset,omitempty"`
	BonusPoints int64                 `json:"bonus_points,omitempty"`
	Points      int64                 `json:"points"`
	Title       string                `json:"title"`
}

// rollGacha godoc
// @Summary Roll the gacha
// @Description Debits the roll cost and grants a character, an asset or bonus points atomically
// @Tags gacha
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rollGachaRequest false "optional cost override"
// @Success 200 {object} rollGachaResponse
// @Failure 400 {object} ErrorResponse "insufficient points"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "user not found"
// @Failure 500 {object} ErrorResponse
// @Router /v1/gacha/roll [post]
func (server *Server) rollGacha(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req rollGachaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	cfg := server.config.Gacha()

	result, err := server.store.RollGachaTx(ctx, db.RollGachaTxParams{
		UserID: payload.UserID,
		Cost:   cfg.NormalizeCost(req.Cost),
		Config: cfg,
		Rand:   server.newRand(),
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		if errors.Is(err, db.ErrInsufficientPoints) {
			RecordGachaRoll("rejected")
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordGachaRoll(result.Outcome)

	rsp := rollGachaResponse{
		Ok:     true,
		Spent:  result.Spent,
		Type:   result.Outcome,
		Points: result.User.Points,
		Title:  result.User.Title,
	}
	switch result.Outcome {
	case db.GachaOutcomeCharacter:
		rsp.Character = &gachaCharacterResult{
			ID:     result.Character.ID,
			Name:   result.Character.Name,
			Rarity: result.Character.Rarity,
		}
	case db.GachaOutcomeAsset:
		rsp.Asset = &gachaAssetResult{
			AssetID:  result.Asset.AssetID,
			Slot:     result.Asset.Slot,
			Replaced: result.Replaced,
		}
	case db.GachaOutcomeBonus:
		rsp.BonusPoints = result.BonusPoints
	}

	ctx.JSON(http.StatusOK, rsp)
}
