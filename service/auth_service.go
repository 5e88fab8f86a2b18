package service

import (
	"context"

	"go-bankist/logger"
	"go-bankist/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Authenticate opens a session for the account with the given username when
// the pin matches. A failed attempt leaves any open session as it was.
// It returns the account summary and the new session id.
func (s *LedgerService) Authenticate(ctx context.Context, username, pin string) (*model.Summary, uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.Log.WithField("username", username)

	acc, found := s.repo.FindByUsername(username)
	pinValue, pinOK := parsePin(pin)
	if !found || !pinOK || acc.Pin != pinValue {
		log.Warn("Login rejected")
		observe("login", ErrAuthenticationFailed)
		return nil, uuid.Nil, ErrAuthenticationFailed
	}

	sessionID := s.session.Open(acc.ID)
	log.WithField("session_id", sessionID).Info("Login successful")
	observe("login", nil)
	return s.summary(ctx, acc), sessionID, nil
}

// Logout ends the open session. Logging out while logged out is a no-op.
func (s *LedgerService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.session.Current(); ok {
		logger.Log.WithField("session_id", s.session.ID()).Info("Logged out")
	}
	s.session.Clear()
	observe("logout", nil)
}

// CloseAccount removes the logged-in account from the directory after the
// caller re-supplies its username and pin, and ends the session.
func (s *LedgerService) CloseAccount(ctx context.Context, username, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.current()
	if err != nil {
		observe("close", err)
		return err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"username":   acc.Username,
	})

	pinValue, pinOK := parsePin(pin)
	if username != acc.Username || !pinOK || pinValue != acc.Pin {
		log.Warn("Close account rejected: credentials do not match")
		observe("close", ErrReauthenticationFailed)
		return ErrReauthenticationFailed
	}

	s.repo.Remove(acc.ID)
	s.cache.Invalidate(ctx, acc.ID)
	s.session.Clear()

	log.Info("Account closed")
	observe("close", nil)
	return nil
}
