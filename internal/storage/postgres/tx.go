package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

type worker interface {
	Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Begin starts transaction and links it to returned context.
// Nested calls reuse the outer transaction.
func (s *Storage) Begin(ctx context.Context) (context.Context, error) {
	const op = "storage.Postgres.Begin"

	if s.tx(ctx) != nil {
		return ctx, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return ctx, wrap(op, err)
	}

	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit commits tx saved in context.
func (s *Storage) Commit(ctx context.Context) error {
	const op = "storage.Postgres.Commit"

	tx := s.tx(ctx)
	if tx == nil {
		return fmt.Errorf("%s: no transaction in context", op)
	}

	if err := tx.Commit(ctx); err != nil {
		return wrap(op, err)
	}

	return nil
}

// Rollback rolls back tx saved in context.
// Rolling back committed tx is not an error.
func (s *Storage) Rollback(ctx context.Context) error {
	const op = "storage.Postgres.Rollback"

	tx := s.tx(ctx)
	if tx == nil {
		return nil
	}

	if err := tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return nil
		}
		return wrap(op, err)
	}

	return nil
}

// tx extracts tx from context. Returns nil if there is none.
func (s *Storage) tx(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// acquire returns tx from context or acquires pooled connection.
// Returned release func must be called when work is done.
func (s *Storage) acquire(ctx context.Context) (worker, func(), error) {
	const op = "storage.Postgres.acquire"

	if tx := s.tx(ctx); tx != nil {
		return tx, func() {}, nil
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, wrap(op, err)
	}

	return conn, conn.Release, nil
}
