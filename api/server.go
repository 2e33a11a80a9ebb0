package api

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"github.com/scbae18/sololife/algorithm"
	db "github.com/scbae18/sololife/db/sqlc"
	"github.com/scbae18/sololife/places"
	"github.com/scbae18/sololife/token"
	"github.com/scbae18/sololife/util"
	"github.com/scbae18/sololife/worker"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the solo journey service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	placesCache     places.SearchCache
	taskDistributor worker.TaskDistributor
	newRand         func() algorithm.Rand
	router          *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(config util.Config, store db.Store, placesCache places.SearchCache, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		placesCache:     placesCache,
		taskDistributor: taskDistributor,
		newRand: func() algorithm.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	registerCustomValidators()

	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.Use(SecurityHeadersMiddleware())
	if server.config.Environment == "production" {
		router.Use(HSTSMiddleware(31536000))
	}
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(PrometheusMiddleware())

	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	router.Use(TimeoutMiddleware(30 * time.Second))

	router.GET("/metrics", MetricsHandler())
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	if server.config.Environment == "development" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")

	// Credential endpoints get a stricter per-minute limit.
	authPublicGroup := v1.Group("/auth")
	authPublicGroup.Use(rateLimiter.SensitiveAPIMiddleware(10))
	authPublicGroup.POST("/register", server.registerUser)
	authPublicGroup.POST("/login", server.loginUser)
	authPublicGroup.POST("/refresh", server.renewAccessToken)

	// Location catalog reads are public.
	v1.GET("/locations", server.listLocations)
	v1.GET("/locations/:id", server.getLocation)

	authGroup := v1.Group("")
	authGroup.Use(authMiddleware(server.tokenMaker))

	authGroup.POST("/auth/logout", server.logoutUser)

	authGroup.GET("/users/me", server.getCurrentUser)
	authGroup.PATCH("/users/me", server.updateCurrentUser)
	authGroup.GET("/users/me/points", server.listPointTransactions)

	authGroup.GET("/characters", server.listCharacters)
	authGroup.GET("/users/me/characters", server.listOwnedCharacters)
	authGroup.GET("/users/me/assets", server.listOwnedAssets)

	authGroup.POST("/gacha/roll", server.rollGacha)

	questsGroup := authGroup.Group("/quests")
	{
		questsGroup.POST("", server.createQuest)
		questsGroup.GET("", server.listQuests)
		questsGroup.GET("/:id", server.getQuest)
		questsGroup.PATCH("/:id", server.updateQuest)
		questsGroup.DELETE("/:id", server.deleteQuest)
		questsGroup.POST("/:id/complete", server.completeQuest)
	}

	journeysGroup := authGroup.Group("/journeys")
	{
		journeysGroup.POST("", server.createJourney)
		journeysGroup.GET("", server.listJourneys)
		journeysGroup.GET("/:id", server.getJourney)
		journeysGroup.DELETE("/:id", server.deleteJourney)
		journeysGroup.POST("/:id/complete", server.completeJourney)
	}

	logbooksGroup := authGroup.Group("/logbooks")
	{
		logbooksGroup.POST("", server.createLogbook)
		logbooksGroup.GET("", server.listLogbooks)
		logbooksGroup.GET("/:id", server.getLogbook)
		logbooksGroup.PATCH("/:id", server.updateLogbook)
		logbooksGroup.DELETE("/:id", server.deleteLogbook)
	}

	authGroup.POST("/locations", server.createLocation)
	authGroup.DELETE("/locations/:id", server.deleteLocation)
	authGroup.GET("/places/search", server.searchLocations)
	authGroup.POST("/locations/import", server.importLocations)

	authGroup.GET("/recommendations/one", server.recommendOne)
	authGroup.GET("/recommendations/next", server.recommendNext)
	authGroup.POST("/routes/preview", server.previewRoute)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for building an http.Server.
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "sololife-api",
	})
}

// readinessCheck godoc
// @Summary Readiness probe, checks the database connection
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ready [get]
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "sololife-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse builds the body for 4xx client errors. 5xx paths go through
// internalError instead so details are logged rather than leaked.
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
func internalError(ctx *gin.Context, err error) gin.H {
	// Attach to the gin context so RequestLoggingMiddleware includes it.
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
