package storage

import (
	"context"
	"fmt"
	"log/slog"
)

type Transactor interface {
	// WithTx runs fn inside one transaction: commit when fn returns nil, rollback otherwise.
	// Repositories called with the ctx passed to fn take part in the transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewTransactor(db DB, l *slog.Logger) Transactor {
	return &pgxTransactor{db: db, l: l}
}

type pgxTransactor struct {
	db DB
	l  *slog.Logger
}

func (t *pgxTransactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested call, the outermost WithTx owns commit and rollback
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			t.l.ErrorContext(ctx, "Failed to rollback transaction: "+rbErr.Error())
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	return nil
}
