package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var errInternal = errors.New("internal error")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fn        func(ctx context.Context) error
		beginErr  error
		commit    bool
		commitErr error
		rollback  bool
		wantErr   error
	}{
		{
			name:   "commit on success",
			fn:     func(context.Context) error { return nil },
			commit: true,
		},
		{
			name:     "rollback on function error",
			fn:       func(context.Context) error { return errInternal },
			rollback: true,
			wantErr:  errInternal,
		},
		{
			name:     "begin fails",
			beginErr: errInternal,
			wantErr:  errInternal,
		},
		{
			name:      "rollback after failed commit",
			fn:        func(context.Context) error { return nil },
			commit:    true,
			commitErr: errInternal,
			rollback:  true,
			wantErr:   errInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			begin := mock.ExpectBegin()
			if tt.beginErr != nil {
				begin.WillReturnError(tt.beginErr)
			}
			if tt.commit {
				commit := mock.ExpectCommit()
				if tt.commitErr != nil {
					commit.WillReturnError(tt.commitErr)
				}
			}
			if tt.rollback {
				mock.ExpectRollback()
			}

			err = NewTransactor(mock, discardLogger()).WithTx(context.Background(), tt.fn)
			require.ErrorIs(t, err, tt.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithTxBindsTransactionToContext(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM book_author").WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectCommit()

	tr := NewTransactor(mock, discardLogger())
	err = tr.WithTx(context.Background(), func(ctx context.Context) error {
		_, bound := txFrom(ctx)
		require.True(t, bound)

		// nested calls join the outer transaction, no second BEGIN expected
		return tr.WithTx(ctx, func(ctx context.Context) error {
			_, err := Conn(ctx, mock).Exec(ctx, "DELETE FROM book_author")
			return err
		})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnWithoutTransaction(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	require.Equal(t, DB(mock), Conn(context.Background(), mock))
}
