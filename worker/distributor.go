package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor enqueues background tasks for the processor to pick up.
type TaskDistributor interface {
	// DistributeTaskGrantWelcomeBonus enqueues the one-time welcome bonus
	// grant for a newly registered user.
	DistributeTaskGrantWelcomeBonus(
		ctx context.Context,
		payload *PayloadGrantWelcomeBonus,
		opts ...asynq.Option,
	) error

	// DistributeTaskImportLocations enqueues a location import from an
	// external place provider.
	DistributeTaskImportLocations(
		ctx context.Context,
		payload *PayloadImportLocations,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
