package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"bookmanagement/internal/types"
)

var errInternal = errors.New("internal error")

// inlineTx runs the function without a real transaction.
type inlineTx struct{}

func (inlineTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func author(id int64, name string, year int) *types.Author {
	return &types.Author{
		Id: id,
		AuthorFields: types.AuthorFields{
			Name:      name,
			BirthDate: types.NewDate(year, time.January, 12),
		},
	}
}
