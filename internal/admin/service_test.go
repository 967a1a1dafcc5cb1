package admin

import (
	"context"
	"errors"
	"testing"
	"time"
)

const testPassword = "segredo-do-admin"

func newTestService(t *testing.T) (*Service, *time.Time) {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(NewMemStore(), NewTokenMaker("test-secret"), testPassword)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tok, err := svc.Login(ctx, "wrong")
	if !errors.Is(err, ErrBadPassword) {
		t.Fatalf("wrong password: got %v, want ErrBadPassword", err)
	}
	if tok != "" {
		t.Fatalf("wrong password must not issue a token, got %q", tok)
	}

	// State stays anonymous: nothing to check against.
	if _, err := svc.Check(ctx, tok); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("check after failed login: got %v, want ErrNotAuthenticated", err)
	}
}

func TestLoginCheckLogout(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tok, err := svc.Login(ctx, testPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok == "" {
		t.Fatal("login returned empty token")
	}

	sess, err := svc.Check(ctx, tok)
	if err != nil {
		t.Fatalf("check right after login: %v", err)
	}
	if want := sess.CreatedAt.Add(SessionTTL); !sess.ExpiresAt.Equal(want) {
		t.Fatalf("expiresAt = %v, want %v", sess.ExpiresAt, want)
	}

	if err := svc.Logout(ctx, tok); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Check(ctx, tok); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("check after logout: got %v, want ErrNotAuthenticated", err)
	}

	// Logout is idempotent.
	if err := svc.Logout(ctx, tok); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestCheckLazyExpiry(t *testing.T) {
	svc, now := newTestService(t)
	ctx := context.Background()

	tok, err := svc.Login(ctx, testPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	*now = now.Add(23 * time.Hour)
	if _, err := svc.Check(ctx, tok); err != nil {
		t.Fatalf("check at 23h: %v", err)
	}

	*now = now.Add(2 * time.Hour) // 25h after login
	if _, err := svc.Check(ctx, tok); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("check at 25h: got %v, want ErrSessionExpired", err)
	}

	// The expired row was dropped by the check that observed it.
	if _, err := svc.Check(ctx, tok); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("second check after expiry: got %v, want ErrNotAuthenticated", err)
	}
}

func TestCheckGarbageToken(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Check(context.Background(), "not-a-token"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("garbage token: got %v, want ErrNotAuthenticated", err)
	}
}

func TestTokenFromAnotherSecretRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, testPassword); err != nil {
		t.Fatalf("login: %v", err)
	}

	forged, err := NewTokenMaker("other-secret").New("s_forged", SessionTTL)
	if err != nil {
		t.Fatalf("forge token: %v", err)
	}
	if _, err := svc.Check(ctx, forged); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("forged token: got %v, want ErrNotAuthenticated", err)
	}
}
