package admin

import (
	"context"
	"database/sql"
	"time"
)

const queryTimeout = 3 * time.Second

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS admin_sessions (
				id         TEXT PRIMARY KEY,
				created_at TIMESTAMPTZ NOT NULL,
				expires_at TIMESTAMPTZ NOT NULL
			)
		`)
		return err
	})
}

func (s *PostgresStore) Create(ctx context.Context, sess Session) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO admin_sessions (id, created_at, expires_at)
			VALUES ($1, $2, $3)
		`, sess.ID, sess.CreatedAt, sess.ExpiresAt)
		return err
	})
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Session, bool, error) {
	var sess Session

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, created_at, expires_at
			FROM admin_sessions
			WHERE id = $1
		`, id).Scan(&sess.ID, &sess.CreatedAt, &sess.ExpiresAt)
	})

	if err == sql.ErrNoRows {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	return sess, true, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = $1`, id)
		return err
	})
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
