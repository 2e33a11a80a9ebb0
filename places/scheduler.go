package places

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	db "github.com/scbae18/sololife/db/sqlc"
)

const (
	// refreshBatchSize limits how many stale locations one refresh run touches.
	refreshBatchSize = 50

	// staleAfter is how old an imported location may get before the
	// scheduler re-fetches it from its provider.
	staleAfter = 7 * 24 * time.Hour
)

// Scheduler periodically re-fetches imported locations whose provider data
// has gone stale. Manually created locations are never touched.
type Scheduler struct {
	cron   *cron.Cron
	store  db.Store
	client Client
	cache  SearchCache
}

// NewScheduler creates a refresh scheduler.
func NewScheduler(store db.Store, client Client, cache SearchCache) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		store:  store,
		client: client,
		cache:  cache,
	}
}

// Start begins the hourly refresh cycle and kicks off one run immediately.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.RefreshStaleLocations(ctx); err != nil {
			log.Error().Err(err).Msg("failed to refresh stale locations")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Msg("location refresh scheduler started (hourly)")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.RefreshStaleLocations(ctx); err != nil {
			log.Error().Err(err).Msg("failed initial stale location refresh")
		}
	}()

	return nil
}

// Stop halts the refresh cycle.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("location refresh scheduler stopped")
}

// RefreshStaleLocations re-queries the provider for one batch of stale
// imported locations and upserts the fresh data.
func (s *Scheduler) RefreshStaleLocations(ctx context.Context) error {
	cutoff := time.Now().Add(-staleAfter)

	stale, err := s.store.ListStaleLocations(ctx, db.ListStaleLocationsParams{
		UpdatedAt: cutoff,
		Limit:     refreshBatchSize,
	})
	if err != nil {
		return err
	}

	if len(stale) == 0 {
		return nil
	}

	log.Info().Int("count", len(stale)).Msg("refreshing stale locations")

	for _, location := range stale {
		if err := s.refreshLocation(ctx, location); err != nil {
			log.Error().
				Err(err).
				Int64("location_id", location.ID).
				Str("name", location.Name).
				Msg("failed to refresh location")
			continue
		}
	}

	return nil
}

func (s *Scheduler) refreshLocation(ctx context.Context, location db.Location) error {
	results, err := s.client.Search(ctx, location.Name, naverMaxDisplay)
	if err != nil {
		return err
	}

	for _, place := range results {
		if place.Source != location.Source || place.SourceID != location.SourceID {
			continue
		}

		if _, err := s.store.UpsertLocation(ctx, ToUpsertParams(place)); err != nil {
			return err
		}

		if s.cache != nil {
			if err := s.cache.Delete(ctx, location.Name); err != nil {
				log.Warn().Err(err).Msg("failed to invalidate search cache")
			}
		}

		log.Info().
			Int64("location_id", location.ID).
			Str("name", place.Name).
			Msg("location refreshed")
		return nil
	}

	// Provider no longer returns the place; leave the stored row as is.
	log.Warn().
		Int64("location_id", location.ID).
		Str("name", location.Name).
		Msg("location not found at provider, skipping")
	return nil
}

// ToUpsertParams converts a provider search result into upsert parameters.
func ToUpsertParams(place Place) db.UpsertLocationParams {
	params := db.UpsertLocationParams{
		Name:        place.Name,
		Category:    place.Category,
		Address:     place.Address,
		RatingAvg:   place.RatingAvg,
		RatingCount: place.RatingCount,
		Source:      place.Source,
		SourceID:    place.SourceID,
	}
	if place.Latitude != nil && place.Longitude != nil {
		params.Latitude = pgtype.Float8{Float64: *place.Latitude, Valid: true}
		params.Longitude = pgtype.Float8{Float64: *place.Longitude, Valid: true}
	}
	return params
}
