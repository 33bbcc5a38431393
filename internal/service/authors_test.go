package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bookmanagement/internal/storage"
	"bookmanagement/internal/storage/authors/mocks"
	"bookmanagement/internal/types"
)

func initAuthorsTest(t *testing.T) (context.Context, *mocks.MockRepository, *Authors) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ar := mocks.NewMockRepository(ctrl)

	return context.Background(), ar, NewAuthors(ar, discardLogger())
}

func TestAuthorsCreate(t *testing.T) {
	t.Parallel()

	fields := types.AuthorFields{Name: "Haruki", BirthDate: types.NewDate(1949, time.January, 12)}

	tests := []struct {
		name     string
		repoErr  error
		wantKind Kind
	}{
		{name: "created"},
		{name: "store returned nothing", repoErr: fmt.Errorf("insert author: %w", storage.ErrNotWritten), wantKind: KindPersistence},
		{name: "store failure", repoErr: errInternal, wantKind: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, ar, s := initAuthorsTest(t)
			ar.EXPECT().Create(ctx, fields).DoAndReturn(
				func(_ context.Context, f types.AuthorFields) (*types.Author, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					return &types.Author{Id: 1, AuthorFields: f}, nil
				})

			created, err := s.Create(ctx, fields)
			if tt.repoErr != nil {
				require.Error(t, err)
				require.Equal(t, tt.wantKind, KindOf(err))
				require.Nil(t, created)
				return
			}

			require.NoError(t, err)
			require.NotZero(t, created.Id)
			require.Equal(t, fields, created.AuthorFields)
		})
	}
}

func TestAuthorsGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ctx, ar, s := initAuthorsTest(t)
		ar.EXPECT().GetById(ctx, int64(1)).Return(author(1, "Haruki", 1949), nil)

		got, err := s.Get(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, author(1, "Haruki", 1949), got)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		ctx, ar, s := initAuthorsTest(t)
		ar.EXPECT().GetById(ctx, int64(9)).Return(nil, nil)

		got, err := s.Get(ctx, 9)
		require.Nil(t, got)
		require.Equal(t, KindNotFound, KindOf(err))
		require.Equal(t, "author with id=9 not found", Message(err))
	})
}

func TestAuthorsList(t *testing.T) {
	t.Parallel()

	ctx, ar, s := initAuthorsTest(t)
	rows := []*types.Author{author(1, "Haruki", 1949), author(2, "Banana", 1964)}
	ar.EXPECT().GetAll(ctx).Return(rows, nil)

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, rows, got)
}

func TestAuthorsUpdate(t *testing.T) {
	t.Parallel()

	fields := types.AuthorFields{Name: "Murakami Haruki", BirthDate: types.NewDate(1949, time.January, 12)}

	t.Run("replaces all fields", func(t *testing.T) {
		t.Parallel()

		ctx, ar, s := initAuthorsTest(t)
		ar.EXPECT().GetById(ctx, int64(1)).Return(author(1, "Haruki", 1950), nil)
		ar.EXPECT().Update(ctx, &types.Author{Id: 1, AuthorFields: fields}).Return(nil)

		got, err := s.Update(ctx, 1, fields)
		require.NoError(t, err)
		require.Equal(t, &types.Author{Id: 1, AuthorFields: fields}, got)
	})

	t.Run("missing author is not written", func(t *testing.T) {
		t.Parallel()

		ctx, ar, s := initAuthorsTest(t)
		ar.EXPECT().GetById(ctx, int64(5)).Return(nil, nil)

		_, err := s.Update(ctx, 5, fields)
		require.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("store wrote nothing", func(t *testing.T) {
		t.Parallel()

		ctx, ar, s := initAuthorsTest(t)
		ar.EXPECT().GetById(ctx, int64(1)).Return(author(1, "Haruki", 1950), nil)
		ar.EXPECT().Update(ctx, gomock.Any()).Return(storage.ErrNotWritten)

		_, err := s.Update(ctx, 1, fields)
		require.Equal(t, KindPersistence, KindOf(err))
	})
}
