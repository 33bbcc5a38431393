package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"bookmanagement/internal/storage"
	"bookmanagement/internal/storage/authors"
	"bookmanagement/internal/storage/books"
	"bookmanagement/internal/types"
)

type Books struct {
	br books.Repository
	ar authors.Repository
	tx storage.Transactor
	l  *slog.Logger
}

func NewBooks(br books.Repository, ar authors.Repository, tx storage.Transactor, l *slog.Logger) *Books {
	return &Books{br: br, ar: ar, tx: tx, l: l}
}

// Create stores a new book linked to authorIds. Every author must exist, otherwise
// nothing is written. Duplicate ids collapse to one link; the response lists the
// authors in first-occurrence order.
func (s *Books) Create(ctx context.Context, fields types.BookFields, authorIds []int64) (*types.BookWithAuthors, error) {
	var ret *types.BookWithAuthors

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		as, err := s.resolveAuthors(ctx, authorIds)
		if err != nil {
			return err
		}

		created, err := s.br.Create(ctx, fields)
		if err != nil {
			if errors.Is(err, storage.ErrNotWritten) {
				return Persistence("failed to create book", err)
			}
			return fmt.Errorf("create book: %w", err)
		}

		if err = s.br.LinkBookAndAuthors(ctx, created.Id, authorIdsOf(as)...); err != nil {
			return fmt.Errorf("link authors to book %d: %w", created.Id, err)
		}

		ret = &types.BookWithAuthors{Book: *created, Authors: as}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.l.InfoContext(ctx, "Created book", slog.Int64("book_id", ret.Id), slog.Any("author_ids", authorIdsOf(ret.Authors)))

	return ret, nil
}

func (s *Books) Get(ctx context.Context, id int64) (*types.BookWithAuthors, error) {
	book, err := s.br.GetById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}

	if book == nil {
		return nil, NotFound(EntityBook, id)
	}

	ids, err := s.br.GetAuthorIds(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get authors of book %d: %w", id, err)
	}

	as, err := s.ar.GetByIds(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("get authors of book %d: %w", id, err)
	}

	return &types.BookWithAuthors{Book: *book, Authors: s.pickAuthors(ctx, book.Id, ids, as)}, nil
}

func (s *Books) List(ctx context.Context) ([]*types.BookWithAuthors, error) {
	rows, err := s.br.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return s.withAuthors(ctx, rows)
}

// ListByAuthors returns every book linked to at least one of authorIds.
func (s *Books) ListByAuthors(ctx context.Context, authorIds []int64) ([]*types.BookWithAuthors, error) {
	rows, err := s.br.GetByAuthorIds(ctx, lo.Uniq(authorIds)...)
	if err != nil {
		return nil, fmt.Errorf("list books by authors: %w", err)
	}

	return s.withAuthors(ctx, rows)
}

// Update replaces title, price, status and the author set of the book. All checks
// (book exists, status transition, authors exist) run before the first write.
func (s *Books) Update(ctx context.Context, id int64, fields types.BookFields, authorIds []int64) (*types.BookWithAuthors, error) {
	var ret *types.BookWithAuthors

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		existing, err := s.br.GetByIdForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get book %d: %w", id, err)
		}

		if existing == nil {
			return NotFound(EntityBook, id)
		}

		if !existing.Status.CanTransitionTo(fields.Status) {
			return ErrInvalidTransition
		}

		as, err := s.resolveAuthors(ctx, authorIds)
		if err != nil {
			return err
		}

		updated := &types.Book{Id: id, BookFields: fields}

		if err = s.br.Update(ctx, updated); err != nil {
			if errors.Is(err, storage.ErrNotWritten) {
				return Persistence("failed to update book", err)
			}
			return fmt.Errorf("update book %d: %w", id, err)
		}

		if err = s.br.LinkBookAndAuthors(ctx, id, authorIdsOf(as)...); err != nil {
			return fmt.Errorf("link authors to book %d: %w", id, err)
		}

		ret = &types.BookWithAuthors{Book: *updated, Authors: as}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.l.InfoContext(ctx, "Updated book", slog.Int64("book_id", id), slog.Any("author_ids", authorIdsOf(ret.Authors)))

	return ret, nil
}

// resolveAuthors loads the distinct authorIds in first-occurrence order. The first
// id, in input order, that does not exist is reported as NotFound.
func (s *Books) resolveAuthors(ctx context.Context, authorIds []int64) ([]*types.Author, error) {
	ids := lo.Uniq(authorIds)

	found, err := s.ar.GetByIds(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("resolve authors: %w", err)
	}

	ret := make([]*types.Author, 0, len(ids))
	for _, id := range ids {
		author, ok := found[id]
		if !ok {
			return nil, NotFound(EntityAuthor, id)
		}
		ret = append(ret, author)
	}

	return ret, nil
}

// withAuthors attaches authors to every book with two queries regardless of the number of books.
func (s *Books) withAuthors(ctx context.Context, rows []*types.Book) ([]*types.BookWithAuthors, error) {
	bookIds := lo.Map(rows, func(b *types.Book, _ int) int64 { return b.Id })

	links, err := s.br.GetAuthorIdsByBookIds(ctx, bookIds...)
	if err != nil {
		return nil, fmt.Errorf("get book authors: %w", err)
	}

	var authorIds []int64
	for _, id := range bookIds {
		authorIds = append(authorIds, links[id]...)
	}

	as, err := s.ar.GetByIds(ctx, lo.Uniq(authorIds)...)
	if err != nil {
		return nil, fmt.Errorf("get book authors: %w", err)
	}

	ret := make([]*types.BookWithAuthors, 0, len(rows))
	for _, book := range rows {
		ret = append(ret, &types.BookWithAuthors{
			Book:    *book,
			Authors: s.pickAuthors(ctx, book.Id, links[book.Id], as),
		})
	}

	return ret, nil
}

// pickAuthors maps ids to loaded authors, skipping (and logging) links to missing authors.
func (s *Books) pickAuthors(ctx context.Context, bookId int64, ids []int64, as map[int64]*types.Author) []*types.Author {
	ret := make([]*types.Author, 0, len(ids))
	for _, id := range ids {
		author, ok := as[id]
		if !ok {
			s.l.WarnContext(ctx, "Book links to missing author",
				slog.Int64("book_id", bookId), slog.Int64("author_id", id))
			continue
		}
		ret = append(ret, author)
	}

	return ret
}

func authorIdsOf(as []*types.Author) []int64 {
	return lo.Map(as, func(a *types.Author, _ int) int64 { return a.Id })
}
