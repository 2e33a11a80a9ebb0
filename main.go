package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/scbae18/sololife/api"
	db "github.com/scbae18/sololife/db/sqlc"
	_ "github.com/scbae18/sololife/docs" // Swagger docs
	"github.com/scbae18/sololife/places"
	"github.com/scbae18/sololife/util"
	"github.com/scbae18/sololife/worker"
	"golang.org/x/sync/errgroup"
)

// @title           SoloLife API
// @version         1.0
// @description     Backend API for the solo journey companion app: location catalog, quests, journeys, logbooks, points and gacha.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@sololife.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the token with the `Bearer: ` prefix, e.g. "Bearer abcde12345".

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	poolConfig, err := pgxpool.ParseConfig(config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse db config")
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot ping database")
	}

	log.Info().
		Int32("max_conns", poolConfig.MaxConns).
		Int32("min_conns", poolConfig.MinConns).
		Msg("database connection pool configured")

	runDBMigration(config.MigrationURL, config.DBSource)

	store := db.NewStore(connPool)

	if config.RedisAddress == "" {
		log.Fatal().Msg("REDIS_ADDRESS is not configured")
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
	}

	searchCache, err := places.NewSearchCache(config.RedisAddress, config.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis - check REDIS_ADDRESS configuration")
	}
	log.Info().Str("redis_address", config.RedisAddress).Msg("redis connection verified")

	placesClient := newPlacesClient(config)
	if placesClient != nil {
		// Read-through cache keeps repeated import queries off provider quota.
		placesClient = places.NewCachedClient(placesClient, searchCache)
	}

	waitGroup, ctx := errgroup.WithContext(ctx)

	taskDistributor := runTaskProcessor(ctx, waitGroup, config, redisOpt, store, placesClient)
	runPlacesScheduler(ctx, waitGroup, store, placesClient, searchCache)
	runDBMetricsSampler(ctx, waitGroup, connPool)
	runGinServer(ctx, waitGroup, config, store, searchCache, taskDistributor)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

// newPlacesClient prefers the Naver local search when credentials are
// present and falls back to Google Places. A nil client disables the
// import task and the refresh scheduler.
func newPlacesClient(config util.Config) places.Client {
	if config.NaverClientID != "" && config.NaverClientSecret != "" {
		log.Info().Msg("using naver local search as place provider")
		return places.NewNaverClient(config.NaverClientID, config.NaverClientSecret)
	}
	if config.GooglePlacesAPIKey != "" {
		log.Info().Msg("using google places as place provider")
		return places.NewGoogleClient(config.GooglePlacesAPIKey)
	}
	log.Warn().Msg("no place provider configured, location import disabled")
	return nil
}

func runTaskProcessor(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	placesClient places.Client,
) worker.TaskDistributor {
	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)

	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, placesClient, config)
	log.Info().Msg("start task processor")

	waitGroup.Go(func() error {
		return taskProcessor.Start()
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown task processor")
		taskProcessor.Shutdown()
		log.Info().Msg("task processor is stopped")
		return nil
	})

	return taskDistributor
}

// runPlacesScheduler starts the hourly catalog refresh against the place
// provider. Skipped when no provider is configured.
func runPlacesScheduler(
	ctx context.Context,
	waitGroup *errgroup.Group,
	store db.Store,
	placesClient places.Client,
	searchCache places.SearchCache,
) {
	if placesClient == nil {
		log.Warn().Msg("place provider not configured, refresh scheduler disabled")
		return
	}

	scheduler := places.NewScheduler(store, placesClient, searchCache)

	if err := scheduler.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start places scheduler")
		return
	}

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown places scheduler")
		scheduler.Stop()
		return nil
	})
}

// runDBMetricsSampler exports connection pool stats to Prometheus.
func runDBMetricsSampler(
	ctx context.Context,
	waitGroup *errgroup.Group,
	connPool *pgxpool.Pool,
) {
	waitGroup.Go(func() error {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				stat := connPool.Stat()
				api.UpdateDBMetrics(int(stat.AcquiredConns()), int(stat.IdleConns()))
			}
		}
	})
}

// runGinServer starts the Gin HTTP server
func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
	searchCache places.SearchCache,
	taskDistributor worker.TaskDistributor,
) {
	server, err := api.NewServer(config, store, searchCache, taskDistributor)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	httpServer := &http.Server{
		Addr:    config.HTTPServerAddress,
		Handler: server.GetRouter(),
		// Avoid slowloris and stuck connections under pressure.
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)
		err = httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
			return err
		}

		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}
