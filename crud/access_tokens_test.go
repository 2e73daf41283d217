package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/utils"
)

func TestAccessTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")

	token, err := utils.GenerateAccessToken()
	require.NoError(t, err)
	require.Len(t, token, 64)

	_, err = CreateAccessToken(db, token, user.ID)
	require.NoError(t, err)

	at, err := GetAccessToken(db, token)
	require.NoError(t, err)
	require.NotNil(t, at)
	assert.Equal(t, user.ID, at.UserID)

	// unknown token is not an error
	at, err = GetAccessToken(db, "nope")
	require.NoError(t, err)
	assert.Nil(t, at)

	require.NoError(t, DeleteAccessToken(db, token))
	at, err = GetAccessToken(db, token)
	require.NoError(t, err)
	assert.Nil(t, at)
}

func TestDeleteAccessTokensByUser(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user@example.com")

	for i := 0; i < 3; i++ {
		token, err := utils.GenerateAccessToken()
		require.NoError(t, err)
		_, err = CreateAccessToken(db, token, user.ID)
		require.NoError(t, err)
	}

	require.NoError(t, DeleteAccessTokensByUser(db, user.ID))

	var count int64
	require.NoError(t, db.Table("access_tokens").Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
