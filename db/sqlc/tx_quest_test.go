package db

import (
	"context"
	"testing"

	"github.com/scbae18/sololife/util"
	"github.com/stretchr/testify/require"
)

func createRandomQuest(t *testing.T, userID int64, reward int64) Quest {
	quest, err := testStore.CreateQuest(context.Background(), CreateQuestParams{
		UserID:       userID,
		Title:        util.RandomString(12),
		Description:  util.RandomString(24),
		RewardPoints: reward,
	})
	require.NoError(t, err)
	require.NotZero(t, quest.ID)
	require.Equal(t, "open", quest.Status)
	require.False(t, quest.CompletedAt.Valid)
	return quest
}

func TestCreateQuest(t *testing.T) {
	user := createRandomUser(t)
	createRandomQuest(t, user.ID, 20)
}

func TestCompleteQuestTx(t *testing.T) {
	user := createRandomUser(t)
	quest := createRandomQuest(t, user.ID, 120)

	result, err := testStore.CompleteQuestTx(context.Background(), CompleteQuestTxParams{
		QuestID: quest.ID,
		UserID:  user.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "done", result.Quest.Status)
	require.True(t, result.Quest.CompletedAt.Valid)
	require.Equal(t, int64(120), result.User.Points)
	require.Equal(t, "Stroller", result.User.Title)
	require.Equal(t, "quest_reward", result.Transaction.Reason)
	require.Equal(t, int64(120), result.Transaction.BalanceAfter)
}

func TestCompleteQuestTxTwice(t *testing.T) {
	user := createRandomUser(t)
	quest := createRandomQuest(t, user.ID, 20)

	_, err := testStore.CompleteQuestTx(context.Background(), CompleteQuestTxParams{
		QuestID: quest.ID,
		UserID:  user.ID,
	})
	require.NoError(t, err)

	_, err = testStore.CompleteQuestTx(context.Background(), CompleteQuestTxParams{
		QuestID: quest.ID,
		UserID:  user.ID,
	})
	require.ErrorIs(t, err, ErrAlreadyCompleted)

	after, err := testStore.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(20), after.Points)
}

func TestCompleteQuestTxWrongOwner(t *testing.T) {
	owner := createRandomUser(t)
	other := createRandomUser(t)
	quest := createRandomQuest(t, owner.ID, 20)

	_, err := testStore.CompleteQuestTx(context.Background(), CompleteQuestTxParams{
		QuestID: quest.ID,
		UserID:  other.ID,
	})
	require.ErrorIs(t, err, ErrRecordNotFound)
}
