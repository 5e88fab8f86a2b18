package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_GenerateAndParse(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Minute)
	sessionID := uuid.New()

	token, err := tokens.Generate("js", sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "js", claims.Username)
	assert.Equal(t, sessionID.String(), claims.SessionID)
}

func TestTokenService_Rejects(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Minute)

	t.Run("other secret", func(t *testing.T) {
		foreign, err := NewTokenService("other-secret", time.Minute).Generate("js", uuid.New())
		require.NoError(t, err)
		_, err = tokens.Parse(foreign)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := NewTokenService("test-secret", -time.Minute).Generate("js", uuid.New())
		require.NoError(t, err)
		_, err = tokens.Parse(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
