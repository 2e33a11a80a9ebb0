package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	db "github.com/scbae18/sololife/db/sqlc"
	"github.com/scbae18/sololife/places"
	"github.com/scbae18/sololife/util"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TaskProcessor consumes background tasks.
type TaskProcessor interface {
	Start() error
	Shutdown()
	ProcessTaskGrantWelcomeBonus(ctx context.Context, task *asynq.Task) error
	ProcessTaskImportLocations(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server       *asynq.Server
	store        db.Store
	placesClient places.Client
	config       util.Config
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	placesClient places.Client,
	config util.Config,
) TaskProcessor {
	logger := NewLogger()

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	return &RedisTaskProcessor{
		server:       server,
		store:        store,
		placesClient: placesClient,
		config:       config,
	}
}

// NewTestTaskProcessor creates a processor instance for tests. It has no
// asynq server attached, so only the ProcessTaskX methods are usable.
func NewTestTaskProcessor(store db.Store, placesClient places.Client, config util.Config) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store:        store,
		placesClient: placesClient,
		config:       config,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskGrantWelcomeBonus, processor.ProcessTaskGrantWelcomeBonus)
	mux.HandleFunc(TaskImportLocations, processor.ProcessTaskImportLocations)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
