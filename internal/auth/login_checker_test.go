package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginChecker_IsLogged(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	loginChecker := NewLoginChecker(time.Hour, db)
	require.NotNil(t, loginChecker)

	ctx := context.Background()
	testToken := "test-token"
	sessionKey := sessionKeyPrefix + testToken

	// unknown token, redis has no session for it
	mock.ExpectGet(sessionKey).SetErr(redis.Nil)
	isLogged, err := loginChecker.IsLogged(ctx, testToken)
	require.ErrorIs(t, err, redis.Nil)
	assert.False(t, isLogged)

	// fresh session within its ttl
	now := time.Now()
	mock.ExpectGet(sessionKey).SetVal(strconv.FormatInt(now.Unix(), 10))
	isLogged, err = loginChecker.IsLogged(ctx, testToken)
	require.NoError(t, err)
	assert.True(t, isLogged)

	// session older than the ttl, no error but not logged
	stale := now.Add(-2 * time.Hour)
	mock.ExpectGet(sessionKey).SetVal(strconv.FormatInt(stale.Unix(), 10))
	isLogged, err = loginChecker.IsLogged(ctx, testToken)
	require.NoError(t, err)
	assert.False(t, isLogged)

	// garbage stored under the session key
	mock.ExpectGet(sessionKey).SetVal("not-a-unix-timestamp")
	isLogged, err = loginChecker.IsLogged(ctx, testToken)
	require.Error(t, err)
	assert.False(t, isLogged)

	require.NoError(t, mock.ExpectationsWereMet())
}
