package db

import (
	"context"
	"testing"
	"time"

	"github.com/scbae18/sololife/util"
	"github.com/stretchr/testify/require"
)

func createRandomSession(t *testing.T, userID int64) Session {
	arg := CreateSessionParams{
		UserID:                userID,
		RefreshToken:          util.RandomString(32),
		UserAgent:             "go-test",
		ClientIp:              "127.0.0.1",
		IsRevoked:             false,
		RefreshTokenExpiresAt: time.Now().Add(24 * time.Hour),
	}

	session, err := testStore.CreateSession(context.Background(), arg)
	require.NoError(t, err)
	require.NotZero(t, session.ID)
	require.Equal(t, arg.RefreshToken, session.RefreshToken)
	require.False(t, session.IsRevoked)
	return session
}

func TestCreateSession(t *testing.T) {
	user := createRandomUser(t)
	createRandomSession(t, user.ID)
}

func TestGetSessionByRefreshToken(t *testing.T) {
	user := createRandomUser(t)
	session1 := createRandomSession(t, user.ID)

	session2, err := testStore.GetSessionByRefreshToken(context.Background(), session1.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, session1.ID, session2.ID)
}

func TestRevokeSession(t *testing.T) {
	user := createRandomUser(t)
	session := createRandomSession(t, user.ID)

	err := testStore.RevokeSession(context.Background(), session.ID)
	require.NoError(t, err)

	revoked, err := testStore.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.True(t, revoked.IsRevoked)
}

func TestRevokeUserSessions(t *testing.T) {
	user := createRandomUser(t)
	session1 := createRandomSession(t, user.ID)
	session2 := createRandomSession(t, user.ID)

	err := testStore.RevokeUserSessions(context.Background(), user.ID)
	require.NoError(t, err)

	for _, id := range []int64{session1.ID, session2.ID} {
		s, err := testStore.GetSession(context.Background(), id)
		require.NoError(t, err)
		require.True(t, s.IsRevoked)
	}
}
