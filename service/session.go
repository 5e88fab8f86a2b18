package service

import "github.com/google/uuid"

// Session is the single authentication state: LoggedOut, or LoggedIn with a
// reference to one account in the directory.
type Session struct {
	id        uuid.UUID
	accountID uuid.UUID
	loggedIn  bool
	sorted    bool
}

// Open starts a new session for the account, replacing any previous one.
// The sorted view starts off.
func (s *Session) Open(accountID uuid.UUID) uuid.UUID {
	s.id = uuid.New()
	s.accountID = accountID
	s.loggedIn = true
	s.sorted = false
	return s.id
}

// Clear returns the session to LoggedOut.
func (s *Session) Clear() {
	*s = Session{}
}

// Current returns the logged-in account id, if any.
func (s *Session) Current() (uuid.UUID, bool) {
	return s.accountID, s.loggedIn
}

// ID returns the id of the open session, or uuid.Nil when logged out.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Sorted() bool {
	return s.sorted
}

// ToggleSorted flips the sorted view flag and returns the new value.
func (s *Session) ToggleSorted() bool {
	s.sorted = !s.sorted
	return s.sorted
}
