package db

import (
	"context"
	"errors"
	"testing"

	"github.com/scbae18/sololife/util"
	"github.com/stretchr/testify/require"
)

func TestCreateUserTx(t *testing.T) {
	hashedPassword, err := util.HashPassword(util.RandomString(8))
	require.NoError(t, err)

	var callbackUser User
	result, err := testStore.CreateUserTx(context.Background(), CreateUserTxParams{
		CreateUserParams: CreateUserParams{
			Username:       util.RandomUsername(),
			HashedPassword: hashedPassword,
			Nickname:       util.RandomUsername(),
			Email:          util.RandomEmail(),
		},
		AfterCreate: func(user User) error {
			callbackUser = user
			return nil
		},
	})
	require.NoError(t, err)
	require.NotZero(t, result.User.ID)
	require.Equal(t, result.User.ID, callbackUser.ID)
}

func TestCreateUserTxCallbackFailure(t *testing.T) {
	hashedPassword, err := util.HashPassword(util.RandomString(8))
	require.NoError(t, err)

	username := util.RandomUsername()
	errBoom := errors.New("enqueue failed")
	_, err = testStore.CreateUserTx(context.Background(), CreateUserTxParams{
		CreateUserParams: CreateUserParams{
			Username:       username,
			HashedPassword: hashedPassword,
			Nickname:       util.RandomUsername(),
			Email:          util.RandomEmail(),
		},
		AfterCreate: func(user User) error {
			return errBoom
		},
	})
	require.ErrorIs(t, err, errBoom)

	// The failed callback rolled the registration back.
	_, err = testStore.GetUserByUsername(context.Background(), username)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGrantWelcomeBonusTx(t *testing.T) {
	user := createRandomUser(t)

	result, err := testStore.GrantWelcomeBonusTx(context.Background(), GrantWelcomeBonusTxParams{
		UserID: user.ID,
		Amount: 100,
	})
	require.NoError(t, err)
	require.Equal(t, int64(100), result.User.Points)
	require.Equal(t, "Stroller", result.User.Title)
	require.Equal(t, "welcome_bonus", result.Transaction.Reason)
	require.Equal(t, int64(100), result.Transaction.Amount)
	require.Equal(t, int64(100), result.Transaction.BalanceAfter)
}

func TestGrantWelcomeBonusTxUserNotFound(t *testing.T) {
	_, err := testStore.GrantWelcomeBonusTx(context.Background(), GrantWelcomeBonusTxParams{
		UserID: -1,
		Amount: 100,
	})
	require.ErrorIs(t, err, ErrRecordNotFound)
}
