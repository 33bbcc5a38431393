package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bookmanagement/internal/storage"
	"bookmanagement/internal/storage/authors"
	"bookmanagement/internal/types"
)

type Authors struct {
	ar authors.Repository
	l  *slog.Logger
}

func NewAuthors(ar authors.Repository, l *slog.Logger) *Authors {
	return &Authors{ar: ar, l: l}
}

func (s *Authors) Create(ctx context.Context, fields types.AuthorFields) (*types.Author, error) {
	created, err := s.ar.Create(ctx, fields)
	if err != nil {
		if errors.Is(err, storage.ErrNotWritten) {
			return nil, Persistence("failed to create author", err)
		}
		return nil, fmt.Errorf("create author: %w", err)
	}

	s.l.InfoContext(ctx, "Created author", slog.Int64("author_id", created.Id))

	return created, nil
}

func (s *Authors) Get(ctx context.Context, id int64) (*types.Author, error) {
	author, err := s.ar.GetById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author %d: %w", id, err)
	}

	if author == nil {
		return nil, NotFound(EntityAuthor, id)
	}

	return author, nil
}

func (s *Authors) List(ctx context.Context) ([]*types.Author, error) {
	rows, err := s.ar.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	return rows, nil
}

// Update replaces every field of the author.
func (s *Authors) Update(ctx context.Context, id int64, fields types.AuthorFields) (*types.Author, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updated := &types.Author{Id: id, AuthorFields: fields}

	if err := s.ar.Update(ctx, updated); err != nil {
		if errors.Is(err, storage.ErrNotWritten) {
			return nil, Persistence("failed to update author", err)
		}
		return nil, fmt.Errorf("update author %d: %w", id, err)
	}

	s.l.InfoContext(ctx, "Updated author", slog.Int64("author_id", id))

	return updated, nil
}
