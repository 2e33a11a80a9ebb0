package db

import (
	"context"
	"testing"

	"github.com/scbae18/sololife/util"
	"github.com/stretchr/testify/require"
)

func createRandomCharacter(t *testing.T) Character {
	arg := CreateCharacterParams{
		Name:        util.RandomString(10),
		Rarity:      "common",
		Description: util.RandomString(20),
	}

	character, err := testStore.CreateCharacter(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, character)
	require.Equal(t, arg.Name, character.Name)
	require.NotZero(t, character.ID)

	return character
}

func TestCreateCharacter(t *testing.T) {
	createRandomCharacter(t)
}

func TestGetCharacter(t *testing.T) {
	character1 := createRandomCharacter(t)
	character2, err := testStore.GetCharacter(context.Background(), character1.ID)
	require.NoError(t, err)
	require.Equal(t, character1.ID, character2.ID)
	require.Equal(t, character1.Name, character2.Name)
}

func TestAddUserCharacter(t *testing.T) {
	user := createRandomUser(t)
	character := createRandomCharacter(t)

	uc, err := testStore.AddUserCharacter(context.Background(), AddUserCharacterParams{
		UserID:      user.ID,
		CharacterID: character.ID,
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, uc.UserID)
	require.Equal(t, character.ID, uc.CharacterID)
	require.NotZero(t, uc.ObtainedAt)

	ids, err := testStore.ListUserCharacterIDs(context.Background(), user.ID)
	require.NoError(t, err)
	require.Contains(t, ids, character.ID)

	owned, err := testStore.ListUserCharacters(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, character.ID, owned[0].ID)
}

func TestAddUserCharacterDuplicate(t *testing.T) {
	user := createRandomUser(t)
	character := createRandomCharacter(t)

	arg := AddUserCharacterParams{
		UserID:      user.ID,
		CharacterID: character.ID,
	}

	_, err := testStore.AddUserCharacter(context.Background(), arg)
	require.NoError(t, err)

	_, err = testStore.AddUserCharacter(context.Background(), arg)
	require.Error(t, err)
	require.Equal(t, UniqueViolation, ErrorCode(err))
}
