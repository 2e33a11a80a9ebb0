package db

import (
	"context"
	"fmt"

	"github.com/scbae18/sololife/util"
)

// CreateUserTxParams contains the input parameters for registering a new user
type CreateUserTxParams struct {
	CreateUserParams
	// AfterCreate runs inside the same transaction after the user row exists.
	// Used to enqueue follow-up work (e.g. the welcome bonus grant) so the
	// task is only published when the registration commits.
	AfterCreate func(user User) error
}

// CreateUserTxResult contains the result of user registration transaction
type CreateUserTxResult struct {
	User User
}

// CreateUserTx creates a new user and runs the follow-up callback in a single
// transaction. If the callback fails, the user is not created either.
func (store *SQLStore) CreateUserTx(ctx context.Context, arg CreateUserTxParams) (CreateUserTxResult, error) {
	var result CreateUserTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.User, err = q.CreateUser(ctx, arg.CreateUserParams)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if arg.AfterCreate != nil {
			return arg.AfterCreate(result.User)
		}
		return nil
	})

	return result, err
}

// GrantWelcomeBonusTxParams contains the input parameters for crediting the
// one-time welcome bonus
type GrantWelcomeBonusTxParams struct {
	UserID int64
	Amount int64
}

// GrantWelcomeBonusTxResult contains the result of the welcome bonus grant
type GrantWelcomeBonusTxResult struct {
	User        User
	Transaction PointTransaction
}

// GrantWelcomeBonusTx credits the welcome bonus, writes the ledger entry and
// recomputes the user's title in a single transaction.
func (store *SQLStore) GrantWelcomeBonusTx(ctx context.Context, arg GrantWelcomeBonusTxParams) (GrantWelcomeBonusTxResult, error) {
	var result GrantWelcomeBonusTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		user, err := q.GetUserForUpdate(ctx, arg.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		newBalance := user.Points + arg.Amount
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
			Amount:       arg.Amount,
			Reason:       "welcome_bonus",
			BalanceAfter: newBalance,
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		return nil
	})

	return result, err
}
