package service

import (
	"log/slog"

	"github.com/okatz/marquee/internal/domain"
)

// SessionService tracks the single signed-in flag. The flag is stored as
// the literal strings "true"/"false"; absent or anything else decodes to
// signed out. A write from another execution context is authoritative:
// observers re-read, they never merge.
type SessionService struct {
	store  domain.Store
	logger *slog.Logger
}

// NewSessionService creates a session manager over the store.
func NewSessionService(store domain.Store, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{store: store, logger: logger}
}

// IsSignedIn reads the current flag.
func (s *SessionService) IsSignedIn() bool {
	data, ok := s.store.Get(domain.KeySession)
	return ok && string(data) == "true"
}

// SignIn sets the flag.
func (s *SessionService) SignIn() error {
	return s.store.Set(domain.KeySession, []byte("true"))
}

// SignOut clears the flag.
func (s *SessionService) SignOut() error {
	return s.store.Set(domain.KeySession, []byte("false"))
}

// OnChange registers fn for flag changes made by other execution
// contexts. The returned func unregisters it.
func (s *SessionService) OnChange(fn func(signedIn bool)) (func(), error) {
	return s.store.Watch(domain.KeySession, func() {
		fn(s.IsSignedIn())
	})
}
