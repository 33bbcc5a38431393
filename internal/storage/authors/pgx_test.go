package authors

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"bookmanagement/internal/storage"
	"bookmanagement/internal/types"
)

var columnNames = []string{"id", "name", "birth_date"}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewPGXRepository(mock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func haruki() types.AuthorFields {
	return types.AuthorFields{Name: "Haruki", BirthDate: types.NewDate(1949, time.January, 12)}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	mock, repo := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "author"`)).
		WillReturnRows(pgxmock.NewRows(columnNames).
			AddRow(int64(1), "Haruki", time.Date(1949, time.January, 12, 0, 0, 0, 0, time.UTC)))

	created, err := repo.Create(context.Background(), haruki())
	require.NoError(t, err)
	require.Equal(t, &types.Author{Id: 1, AuthorFields: haruki()}, created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithoutReturnedRow(t *testing.T) {
	t.Parallel()

	mock, repo := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "author"`)).
		WillReturnRows(pgxmock.NewRows(columnNames))

	created, err := repo.Create(context.Background(), haruki())
	require.ErrorIs(t, err, storage.ErrNotWritten)
	require.Nil(t, created)
}

func TestGetById(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    *pgxmock.Rows
		err     error
		want    *types.Author
		wantErr bool
	}{
		{
			name: "found",
			rows: pgxmock.NewRows(columnNames).
				AddRow(int64(1), "Haruki", time.Date(1949, time.January, 12, 0, 0, 0, 0, time.UTC)),
			want: &types.Author{Id: 1, AuthorFields: haruki()},
		},
		{
			name: "missing",
			rows: pgxmock.NewRows(columnNames),
		},
		{
			name:    "query error",
			err:     errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := newMockRepo(t)
			exp := mock.ExpectQuery(regexp.QuoteMeta(`FROM "author" WHERE ("id" = 1)`))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := repo.GetById(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetByIds(t *testing.T) {
	t.Parallel()

	mock, repo := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE ("id" IN (1, 2, 3))`)).
		WillReturnRows(pgxmock.NewRows(columnNames).
			AddRow(int64(1), "Haruki", time.Date(1949, time.January, 12, 0, 0, 0, 0, time.UTC)).
			AddRow(int64(3), "Banana", time.Date(1964, time.July, 24, 0, 0, 0, 0, time.UTC)))

	got, err := repo.GetByIds(context.Background(), 1, 2, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Haruki", got[1].Name)
	require.Equal(t, "1964-07-24", got[3].BirthDate.String())
	require.NotContains(t, got, int64(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIdsEmptySkipsQuery(t *testing.T) {
	t.Parallel()

	mock, repo := newMockRepo(t)

	got, err := repo.GetByIds(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll(t *testing.T) {
	t.Parallel()

	mock, repo := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "author" ORDER BY "id" ASC`)).
		WillReturnRows(pgxmock.NewRows(columnNames).
			AddRow(int64(1), "Haruki", time.Date(1949, time.January, 12, 0, 0, 0, 0, time.UTC)).
			AddRow(int64(2), "Banana", time.Date(1964, time.July, 24, 0, 0, 0, 0, time.UTC)))

	got, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].Id)
	require.Equal(t, int64(2), got[1].Id)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "no such row", affected: 0, wantErr: storage.ErrNotWritten},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := newMockRepo(t)
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE "author" SET "birth_date"='1949-01-12',"name"='Haruki' WHERE ("id" = 7)`)).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := repo.Update(context.Background(), &types.Author{Id: 7, AuthorFields: haruki()})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
