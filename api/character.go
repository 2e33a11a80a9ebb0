package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listCharacters godoc
// @Summary List the character catalog
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} db.Character
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/characters [get]
func (server *Server) listCharacters(ctx *gin.Context) {
	characters, err := server.store.ListCharacters(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, characters)
}

// listOwnedCharacters godoc
// @Summary List the characters owned by the current user
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} db.Character
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/me/characters [get]
func (server *Server) listOwnedCharacters(ctx *gin.Context) {
	payload := authPayload(ctx)

	characters, err := server.store.ListUserCharacters(ctx, payload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, characters)
}

// listOwnedAssets godoc
// @Summary List the asset slots of the current user
// @Tags characters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} db.UserAsset
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/me/assets [get]
func (server *Server) listOwnedAssets(ctx *gin.Context) {
	payload := authPayload(ctx)

	assets, err := server.store.ListUserAssets(ctx, payload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, assets)
}
