package db

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/scbae18/sololife/util"
	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T) User {
	hashedPassword, err := util.HashPassword(util.RandomString(8))
	require.NoError(t, err)

	arg := CreateUserParams{
		Username:       util.RandomUsername(),
		HashedPassword: hashedPassword,
		Nickname:       util.RandomUsername(),
		Email:          util.RandomEmail(),
	}

	user, err := testStore.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Username, user.Username)
	require.Equal(t, arg.HashedPassword, user.HashedPassword)
	require.Equal(t, arg.Nickname, user.Nickname)
	require.Equal(t, arg.Email, user.Email)
	require.Zero(t, user.Points)
	require.Equal(t, "Wanderer", user.Title)
	require.NotZero(t, user.ID)
	require.NotZero(t, user.CreatedAt)
	require.True(t, user.PasswordChangedAt.IsZero())

	return user
}

func TestCreateUser(t *testing.T) {
	createRandomUser(t)
}

func TestGetUser(t *testing.T) {
	user1 := createRandomUser(t)
	user2, err := testStore.GetUser(context.Background(), user1.ID)
	require.NoError(t, err)
	require.NotEmpty(t, user2)

	require.Equal(t, user1.ID, user2.ID)
	require.Equal(t, user1.Username, user2.Username)
	require.Equal(t, user1.HashedPassword, user2.HashedPassword)
	require.Equal(t, user1.Email, user2.Email)
	require.WithinDuration(t, user1.CreatedAt, user2.CreatedAt, time.Second)
}

func TestGetUserByUsername(t *testing.T) {
	user1 := createRandomUser(t)
	user2, err := testStore.GetUserByUsername(context.Background(), user1.Username)
	require.NoError(t, err)
	require.Equal(t, user1.ID, user2.ID)
}

func TestUpdateUserOnlyNickname(t *testing.T) {
	oldUser := createRandomUser(t)

	newNickname := util.RandomUsername()
	updatedUser, err := testStore.UpdateUser(context.Background(), UpdateUserParams{
		ID: oldUser.ID,
		Nickname: pgtype.Text{
			String: newNickname,
			Valid:  true,
		},
	})
	require.NoError(t, err)
	require.Equal(t, newNickname, updatedUser.Nickname)
	require.NotEqual(t, oldUser.Nickname, updatedUser.Nickname)
	require.Equal(t, oldUser.Email, updatedUser.Email)
	require.Equal(t, oldUser.HashedPassword, updatedUser.HashedPassword)
}

func TestUpdateUserOnlyPassword(t *testing.T) {
	oldUser := createRandomUser(t)

	newHashedPassword, err := util.HashPassword(util.RandomString(8))
	require.NoError(t, err)

	updatedUser, err := testStore.UpdateUser(context.Background(), UpdateUserParams{
		ID: oldUser.ID,
		HashedPassword: pgtype.Text{
			String: newHashedPassword,
			Valid:  true,
		},
		PasswordChangedAt: pgtype.Timestamptz{
			Time:  time.Now(),
			Valid: true,
		},
	})
	require.NoError(t, err)
	require.Equal(t, newHashedPassword, updatedUser.HashedPassword)
	require.Equal(t, oldUser.Nickname, updatedUser.Nickname)
	require.False(t, updatedUser.PasswordChangedAt.IsZero())
}

func TestUpdateUserPoints(t *testing.T) {
	user := createRandomUser(t)

	updated, err := testStore.UpdateUserPoints(context.Background(), UpdateUserPointsParams{
		ID:     user.ID,
		Points: 350,
		Title:  util.TitleForPoints(350),
	})
	require.NoError(t, err)
	require.Equal(t, int64(350), updated.Points)
	require.Equal(t, "Walker", updated.Title)
}

func TestGetUserNotFound(t *testing.T) {
	_, err := testStore.GetUser(context.Background(), -1)
	require.ErrorIs(t, err, ErrRecordNotFound)
}
