package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotWritten is returned when a write did not produce the expected row,
// e.g. INSERT ... RETURNING yielded nothing or UPDATE affected zero rows.
var ErrNotWritten = errors.New("record was not written")

// DB is the subset of *pgxpool.Pool used by repositories. pgx.Tx satisfies it too.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type txKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFrom(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// Conn returns the transaction bound to ctx by Transactor.WithTx, or db itself.
func Conn(ctx context.Context, db DB) DB {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}

	return db
}
