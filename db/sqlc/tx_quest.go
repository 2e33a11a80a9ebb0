package db

import (
	"context"
	"fmt"

	"github.com/scbae18/sololife/util"
)

// CompleteQuestTxParams contains the input parameters for completing a quest
type CompleteQuestTxParams struct {
	QuestID int64
	UserID  int64
}

// CompleteQuestTxResult contains the result of the quest completion transaction
type CompleteQuestTxResult struct {
	Quest       Quest
	User        User
	Transaction PointTransaction
}

// CompleteQuestTx marks a quest as done and credits its reward points to the
// owner in a single transaction.
func (store *SQLStore) CompleteQuestTx(ctx context.Context, arg CompleteQuestTxParams) (CompleteQuestTxResult, error) {
	var result CompleteQuestTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		quest, err := q.GetQuest(ctx, arg.QuestID)
		if err != nil {
			return fmt.Errorf("get quest: %w", err)
		}
		if quest.UserID != arg.UserID {
			return ErrRecordNotFound
		}
		if quest.Status == "done" {
			return fmt.Errorf("quest %d: %w", quest.ID, ErrAlreadyCompleted)
		}

		result.Quest, err = q.CompleteQuest(ctx, arg.QuestID)
		if err != nil {
			return fmt.Errorf("complete quest: %w", err)
		}

		if quest.RewardPoints <= 0 {
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

		newBalance := user.Points + quest.RewardPoints
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
			Amount:       quest.RewardPoints,
			Reason:       "quest_reward",
			BalanceAfter: newBalance,
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		return nil
	})

	return result, err
}
