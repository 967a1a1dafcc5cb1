package admin

import (
	"context"
	"errors"
	"time"
)

var (
	ErrBadPassword      = errors.New("incorrect password")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
)

// Session is one successful admin login. The record is authoritative:
// a token is only valid while its session row exists and has not passed
// ExpiresAt.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SessionStore interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, bool, error)
	Delete(ctx context.Context, id string) error
}
