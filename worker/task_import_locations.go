package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	"github.com/scbae18/sololife/places"
)

const TaskImportLocations = "task:import_locations"

// PayloadImportLocations describes one provider search whose results should
// be imported into the location catalog.
type PayloadImportLocations struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// DistributeTaskImportLocations enqueues a location import for a search query.
func (distributor *RedisTaskDistributor) DistributeTaskImportLocations(
	ctx context.Context,
	payload *PayloadImportLocations,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskImportLocations, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")
	return nil
}

// ProcessTaskImportLocations searches the place provider and upserts every
// result into the location catalog. Results without coordinates are still
// stored; the distance-aware endpoints skip them at query time.
func (processor *RedisTaskProcessor) ProcessTaskImportLocations(ctx context.Context, task *asynq.Task) error {
	var payload PayloadImportLocations
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	results, err := processor.placesClient.Search(ctx, payload.Query, payload.Limit)
	if err != nil {
		return fmt.Errorf("failed to search places: %w", err)
	}

	imported := 0
	for _, place := range results {
		if _, err := processor.store.UpsertLocation(ctx, places.ToUpsertParams(place)); err != nil {
			log.Error().Err(err).Str("name", place.Name).Msg("failed to upsert location")
			continue
		}
		imported++
	}

	log.Info().Str("type", task.Type()).Str("query", payload.Query).
		Int("found", len(results)).Int("imported", imported).Msg("processed task")
	return nil
}
