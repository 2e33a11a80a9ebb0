package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	db "github.com/scbae18/sololife/db/sqlc"
)

const TaskGrantWelcomeBonus = "task:grant_welcome_bonus"

// PayloadGrantWelcomeBonus carries the new user whose signup bonus should
// be credited.
type PayloadGrantWelcomeBonus struct {
	UserID int64 `json:"user_id"`
}

// DistributeTaskGrantWelcomeBonus enqueues a welcome bonus grant for a
// freshly registered user.
func (distributor *RedisTaskDistributor) DistributeTaskGrantWelcomeBonus(
	ctx context.Context,
	payload *PayloadGrantWelcomeBonus,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskGrantWelcomeBonus, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")
	return nil
}

// ProcessTaskGrantWelcomeBonus credits the configured signup bonus to the
// user.
func (processor *RedisTaskProcessor) ProcessTaskGrantWelcomeBonus(ctx context.Context, task *asynq.Task) error {
	var payload PayloadGrantWelcomeBonus
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	result, err := processor.store.GrantWelcomeBonusTx(ctx, db.GrantWelcomeBonusTxParams{
		UserID: payload.UserID,
		Amount: processor.config.WelcomeBonusPoints,
	})
	if err != nil {
		return fmt.Errorf("failed to grant welcome bonus: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Int64("user_id", result.User.ID).Int64("points", result.User.Points).
		Msg("processed task")
	return nil
}
