package admin

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the absolute validity window of an admin login.
const SessionTTL = 24 * time.Hour

// Service owns the two-state admin machine: anonymous until Login succeeds,
// authenticated until Logout or until a Check observes the 24h expiry.
type Service struct {
	store    SessionStore
	tokens   *TokenMaker
	password string

	now func() time.Time
}

func NewService(store SessionStore, tokens *TokenMaker, password string) *Service {
	return &Service{
		store:    store,
		tokens:   tokens,
		password: password,
		now:      time.Now,
	}
}

// Login compares the supplied password against the configured secret and,
// on success, records a session and returns its transport token. A wrong
// password leaves no state behind.
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrBadPassword
	}

	now := s.now().UTC()
	sess := Session{
		ID:        "s_" + uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}

	if err := s.store.Create(ctx, sess); err != nil {
		return "", err
	}

	return s.tokens.New(sess.ID, SessionTTL)
}

// Check reports whether the token still maps to a live session. Expiry is
// lazy: the check that finds an expired row deletes it.
func (s *Service) Check(ctx context.Context, token string) (Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil || claims.SessionID == "" {
		return Session{}, ErrNotAuthenticated
	}

	sess, ok, err := s.store.Get(ctx, claims.SessionID)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, ErrNotAuthenticated
	}

	if !s.now().UTC().Before(sess.ExpiresAt) {
		_ = s.store.Delete(ctx, sess.ID)
		return Session{}, ErrSessionExpired
	}

	return sess, nil
}

// Logout drops the session record. An invalid or already-logged-out token
// is not an error; there is simply nothing left to delete.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil || claims.SessionID == "" {
		return nil
	}
	return s.store.Delete(ctx, claims.SessionID)
}
