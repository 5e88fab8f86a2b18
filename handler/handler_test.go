package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go-bankist/logger"
	"go-bankist/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.SetLevel("error")
	os.Exit(m.Run())
}

type stubSessions struct {
	active string
}

func (s stubSessions) ActiveSession(sessionID string) bool {
	return sessionID == s.active
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{service.ErrNotLoggedIn, http.StatusUnauthorized},
		{service.ErrAuthenticationFailed, http.StatusUnauthorized},
		{service.ErrReauthenticationFailed, http.StatusUnauthorized},
		{service.ErrUnknownRecipient, http.StatusNotFound},
		{service.ErrInvalidAmount, http.StatusBadRequest},
		{service.ErrInsufficientFunds, http.StatusBadRequest},
		{service.ErrSelfTransferRejected, http.StatusBadRequest},
		{service.ErrLoanIneligible, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			appErr := mapServiceError(tt.err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Minute)
	sessionID := uuid.New()
	token, err := tokens.Generate("js", sessionID)
	require.NoError(t, err)

	var gotUsername, gotSession string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUsername, _ = r.Context().Value(UsernameKey).(string)
		gotSession, _ = r.Context().Value(SessionIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("active session passes", func(t *testing.T) {
		mw := NewAuthMiddleware(tokens, stubSessions{active: sessionID.String()})
		req := httptest.NewRequest("GET", "/api/account", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		mw(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "js", gotUsername)
		assert.Equal(t, sessionID.String(), gotSession)
	})

	t.Run("ended session is rejected", func(t *testing.T) {
		mw := NewAuthMiddleware(tokens, stubSessions{active: uuid.NewString()})
		req := httptest.NewRequest("GET", "/api/account", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		mw(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other, err := service.NewTokenService("other-secret", time.Minute).Generate("js", sessionID)
		require.NoError(t, err)
		mw := NewAuthMiddleware(tokens, stubSessions{active: sessionID.String()})
		req := httptest.NewRequest("GET", "/api/account", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		rr := httptest.NewRecorder()

		mw(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
