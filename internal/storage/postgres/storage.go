package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	pool *pgxpool.Pool
}

// New returns new storage instance connected to dbURL.
// Connection is checked with ping.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, wrap(op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrap(op, err)
	}

	return &Storage{
		pool: pool,
	}, nil
}

// Stop stops underlying pgx pool.
func (s *Storage) Stop() {
	s.pool.Close()
}

// wrap adds operation name to error. Postgres errors are
// flattened to their code and message.
func wrap(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s pgx error: [%s] %s", op, pgErr.Code, pgErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
