package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		bs, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		require.Contains(t, string(bs), "-- +goose Up", name)
		require.Contains(t, string(bs), "-- +goose Down", name)
	}
}

func TestInitCreatesJoinTableWithUniquePair(t *testing.T) {
	t.Parallel()

	bs, err := fs.ReadFile(FS, "00001_init.sql")
	require.NoError(t, err)

	up := strings.SplitN(string(bs), "-- +goose Down", 2)[0]
	require.Contains(t, up, "CREATE TABLE book_author")
	require.Contains(t, up, "PRIMARY KEY (book_id, author_id)")
}
