// internal/session/store_failure_test.go
package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-gateway/internal/common/database"
	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/common/logger"
	"jobportal-gateway/internal/models"
)

// Redis failure paths are exercised against a mocked client; miniredis cannot
// inject write errors.

func TestLogin_RedisWriteFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSet(`session:.*:token`, "tok-123", time.Hour).
		SetErr(errors.New("connection reset"))

	store := NewStore(&database.RedisClient{Client: db}, &fakeProfiles{profile: seekerProfile()}, time.Hour, logger.NewNoOpLogger())

	_, _, err := store.Login(context.Background(), "tok-123", models.RoleUser)

	require.Error(t, err)
	stdErr, ok := err.(*apperrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeSessionStoreFailed, stdErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_RoleWriteFailureTearsDownTokenKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSet(`session:.*:token`, "tok-123", time.Hour).SetVal("OK")
	mock.Regexp().ExpectSet(`session:.*:role`, "user", time.Hour).
		SetErr(errors.New("connection reset"))
	mock.Regexp().ExpectDel(`session:.*:token`).SetVal(1)

	store := NewStore(&database.RedisClient{Client: db}, &fakeProfiles{profile: seekerProfile()}, time.Hour, logger.NewNoOpLogger())

	_, _, err := store.Login(context.Background(), "tok-123", models.RoleUser)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "a half-written session must be deleted")
}

func TestBootstrap_RedisReadFailureDegradesToLoggedOut(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet("session:s1:token").SetErr(errors.New("connection reset"))

	store := NewStore(&database.RedisClient{Client: db}, &fakeProfiles{}, time.Hour, logger.NewNoOpLogger())

	snap := store.Bootstrap(context.Background(), "s1")

	assert.False(t, snap.LoggedIn())
	assert.NoError(t, mock.ExpectationsWereMet())
}
