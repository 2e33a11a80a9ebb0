package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/scbae18/sololife/db/sqlc"
	"github.com/scbae18/sololife/token"
	"github.com/scbae18/sololife/util"
	"github.com/scbae18/sololife/worker"
)

type registerUserRequest struct {
	Username string `json:"username" binding:"required,validUsername"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Nickname string `json:"nickname" binding:"required,min=1,max=30"`
	Email    string `json:"email" binding:"required,email"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	Points    int64     `json:"points"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user db.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Points:    user.Points,
		Title:     user.Title,
		CreatedAt: user.CreatedAt,
	}
}

// registerUser godoc
// @Summary Register a new user
// @Description Creates an account and schedules the welcome bonus grant
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerUserRequest true "registration data"
// @Success 200 {object} userResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "username or email already taken"
// @Failure 500 {object} ErrorResponse
// @Router /v1/auth/register [post]
func (server *Server) registerUser(ctx *gin.Context) {
	var req registerUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	arg := db.CreateUserTxParams{
		CreateUserParams: db.CreateUserParams{
			Username:       req.Username,
			HashedPassword: hashedPassword,
			Nickname:       req.Nickname,
			Email:          req.Email,
		},
		AfterCreate: func(user db.User) error {
			if server.taskDistributor == nil {
				return nil
			}
			payload := &worker.PayloadGrantWelcomeBonus{UserID: user.ID}
			opts := []asynq.Option{
				asynq.MaxRetry(10),
				asynq.ProcessIn(10 * time.Second),
				asynq.Queue(worker.QueueCritical),
			}
			return server.taskDistributor.DistributeTaskGrantWelcomeBonus(ctx, payload, opts...)
		},
	}

	result, err := server.store.CreateUserTx(ctx, arg)
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(result.User))
}

type loginUserRequest struct {
	Username string `json:"username" binding:"required,validUsername"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

type loginUserResponse struct {
	AccessToken           string       `json:"access_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshToken          string       `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	User                  userResponse `json:"user"`
}

// loginUser godoc
// @Summary Log in
// @Description Verifies credentials and issues an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginUserRequest true "credentials"
// @Success 200 {object} loginUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "wrong password"
// @Failure 404 {object} ErrorResponse "user not found"
// @Failure 500 {object} ErrorResponse
// @Router /v1/auth/login [post]
func (server *Server) loginUser(ctx *gin.Context) {
	var req loginUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if err := util.CheckPassword(req.Password, user.HashedPassword); err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(
		user.ID,
		server.config.AccessTokenDuration,
		token.TokenTypeAccessToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	refreshToken, refreshPayload, err := server.tokenMaker.CreateToken(
		user.ID,
		server.config.RefreshTokenDuration,
		token.TokenTypeRefreshToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	_, err = server.store.CreateSession(ctx, db.CreateSessionParams{
		UserID:                user.ID,
		RefreshToken:          refreshToken,
		UserAgent:             ctx.Request.UserAgent(),
		ClientIp:              ctx.ClientIP(),
		IsRevoked:             false,
		RefreshTokenExpiresAt: refreshPayload.ExpiredAt,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, loginUserResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessPayload.ExpiredAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshPayload.ExpiredAt,
		User:                  newUserResponse(user),
	})
}

// logoutUser godoc
// @Summary Log out
// @Description Revokes all refresh sessions of the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/auth/logout [post]
func (server *Server) logoutUser(ctx *gin.Context) {
	payload := authPayload(ctx)

	if err := server.store.RevokeUserSessions(ctx, payload.UserID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// getCurrentUser godoc
// @Summary Get the current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/me [get]
func (server *Server) getCurrentUser(ctx *gin.Context) {
	payload := authPayload(ctx)

	user, err := server.store.GetUser(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

type updateCurrentUserRequest struct {
	Nickname *string `json:"nickname" binding:"omitempty,min=1,max=30"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=64"`
}

// updateCurrentUser godoc
// @Summary Update the current user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body updateCurrentUserRequest true "fields to update"
// @Success 200 {object} userResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "email already taken"
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/me [patch]
func (server *Server) updateCurrentUser(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req updateCurrentUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.UpdateUserParams{ID: payload.UserID}
	if req.Nickname != nil {
		arg.Nickname = pgtype.Text{String: *req.Nickname, Valid: true}
	}
	if req.Email != nil {
		arg.Email = pgtype.Text{String: *req.Email, Valid: true}
	}
	if req.Password != nil {
		hashedPassword, err := util.HashPassword(*req.Password)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		arg.HashedPassword = pgtype.Text{String: hashedPassword, Valid: true}
		arg.PasswordChangedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	}

	user, err := server.store.UpdateUser(ctx, arg)
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

type listPointTransactionsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listPointTransactions godoc
// @Summary List the current user's point ledger
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page_id query int true "page number"
// @Param page_size query int true "page size (5-50)"
// @Success 200 {array} db.PointTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/users/me/points [get]
func (server *Server) listPointTransactions(ctx *gin.Context) {
	payload := authPayload(ctx)

	var req listPointTransactionsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	transactions, err := server.store.ListPointTransactions(ctx, db.ListPointTransactionsParams{
		UserID: payload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}
