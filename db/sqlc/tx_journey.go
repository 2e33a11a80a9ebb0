package db

import (
	"context"
	"fmt"

	"github.com/scbae18/sololife/util"
)

// CompleteJourneyTxParams contains the input parameters for completing a journey
type CompleteJourneyTxParams struct {
	JourneyID int64
	UserID    int64
}

// CompleteJourneyTxResult contains the result of the journey completion transaction
type CompleteJourneyTxResult struct {
	Journey     Journey
	User        User
	Transaction PointTransaction
}

// CompleteJourneyTx marks a journey as completed and credits its reward
// points to the owner in a single transaction. Completing a journey twice or
// completing someone else's journey fails without state change.
func (store *SQLStore) CompleteJourneyTx(ctx context.Context, arg CompleteJourneyTxParams) (CompleteJourneyTxResult, error) {
	var result CompleteJourneyTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		journey, err := q.GetJourney(ctx, arg.JourneyID)
		if err != nil {
			return fmt.Errorf("get journey: %w", err)
		}
		if journey.UserID != arg.UserID {
			return ErrRecordNotFound
		}
		if journey.Status == "completed" {
			return fmt.Errorf("journey %d: %w", journey.ID, ErrAlreadyCompleted)
		}

		result.Journey, err = q.CompleteJourney(ctx, arg.JourneyID)
		if err != nil {
			return fmt.Errorf("complete journey: %w", err)
		}

		if journey.RewardPoints <= 0 {
			result.User, err = q.GetUser(ctx, arg.UserID)
			if err != nil {
				return fmt.Errorf("get user: %w", err)
			}
			return nil
		}

		user, err := q.GetUserForUpdate(ctx, arg.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		newBalance := user.Points + journey.RewardPoints
		result.User, err = q.UpdateUserPoints(ctx, UpdateUserPointsParams{
			ID:     arg.UserID,
			Points: newBalance,
			Title:  util.TitleForPoints(newBalance),
		})
		if err != nil {
			return fmt.Errorf("update points: %w", err)
		}

		result.Transaction, err = q.CreatePointTransaction(ctx, CreatePointTransactionParams{
			UserID:       arg.UserID,
			Amount:       journey.RewardPoints,
			Reason:       "journey_reward",
			BalanceAfter: newBalance,
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		return nil
	})

	return result, err
}
