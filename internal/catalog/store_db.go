package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second

	pgUniqueCode = "23505"
	pgFKCode     = "23503"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the two tables. Products carry a foreign key to
// categories so a dangling categoryId is rejected by the database the same
// way MemStore rejects it.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS categories (
				id          TEXT PRIMARY KEY,
				name        TEXT NOT NULL,
				emoji       TEXT NOT NULL,
				description TEXT NOT NULL,
				slug        TEXT NOT NULL UNIQUE,
				pos         BIGSERIAL
			);
			CREATE TABLE IF NOT EXISTS products (
				id              TEXT PRIMARY KEY,
				name            TEXT NOT NULL,
				image           TEXT NOT NULL,
				price           TEXT NOT NULL,
				original_price  TEXT NOT NULL DEFAULT '',
				rating          DOUBLE PRECISION NOT NULL DEFAULT 0,
				sold            TEXT NOT NULL DEFAULT '0 vendidos',
				category_id     TEXT NOT NULL REFERENCES categories(id),
				shopee_url      TEXT NOT NULL,
				is_flash        INTEGER NOT NULL DEFAULT 0,
				price_cents     BIGINT NOT NULL DEFAULT -1,
				orig_cents      BIGINT NOT NULL DEFAULT 0,
				pos             BIGSERIAL
			);
		`)
		return err
	})
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

const categoryCols = `id, name, emoji, description, slug`

func (s *PostgresStore) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT `+categoryCols+`
			FROM categories
			ORDER BY pos ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Category, 0, 8)
		for rows.Next() {
			var c Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Emoji, &c.Description, &c.Slug); err != nil {
				return err
			}
			out = append(out, c)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) GetCategoryBySlug(ctx context.Context, slug string) (Category, bool, error) {
	var c Category

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT `+categoryCols+`
			FROM categories
			WHERE slug = $1
		`, slug).Scan(&c.ID, &c.Name, &c.Emoji, &c.Description, &c.Slug)
	})

	if err == sql.ErrNoRows {
		return Category{}, false, nil
	}
	if err != nil {
		return Category{}, false, err
	}
	return c, true, nil
}

func (s *PostgresStore) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	c := buildCategory(in)

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO categories (id, name, emoji, description, slug)
			VALUES ($1, $2, $3, $4, $5)
		`, c.ID, c.Name, c.Emoji, c.Description, c.Slug)
		return err
	})

	if isPgCode(err, pgUniqueCode) {
		return Category{}, ErrSlugExists
	}
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

const productCols = `id, name, image, price, original_price, rating, sold,
	category_id, shopee_url, is_flash, price_cents, orig_cents`

func (s *PostgresStore) ListAllProducts(ctx context.Context) ([]Product, error) {
	return s.listProducts(ctx, ``)
}

func (s *PostgresStore) ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	return s.listProducts(ctx, `WHERE category_id = $1`, categoryID)
}

func (s *PostgresStore) listProducts(ctx context.Context, where string, args ...any) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT `+productCols+`
			FROM products
			`+where+`
			ORDER BY pos ASC
		`, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			var p Product
			err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.OriginalPrice,
				&p.Rating, &p.Sold, &p.CategoryID, &p.ShopeeURL, &p.IsFlash,
				&p.PriceCents, &p.OriginalPriceCents)
			if err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	p := buildProduct(in)

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO products (id, name, image, price, original_price, rating,
				sold, category_id, shopee_url, is_flash, price_cents, orig_cents)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, p.ID, p.Name, p.Image, p.Price, p.OriginalPrice, p.Rating,
			p.Sold, p.CategoryID, p.ShopeeURL, p.IsFlash, p.PriceCents, p.OriginalPriceCents)
		return err
	})

	if isPgCode(err, pgFKCode) {
		return Product{}, ErrCategoryNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
