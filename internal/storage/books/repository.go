package books

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

import (
	"context"

	"bookmanagement/internal/types"
)

type Repository interface {
	// Create inserts a new book and returns it with the id assigned by the store.
	Create(ctx context.Context, fields types.BookFields) (*types.Book, error)

	// GetById returns nil, nil when there is no such book.
	GetById(ctx context.Context, id int64) (*types.Book, error)
	// GetByIdForUpdate is GetById which also row-locks the book until the surrounding tx ends.
	GetByIdForUpdate(ctx context.Context, id int64) (*types.Book, error)
	GetAll(ctx context.Context) ([]*types.Book, error)
	// GetByAuthorIds returns distinct books linked to any of the given authors.
	GetByAuthorIds(ctx context.Context, authorIds ...int64) ([]*types.Book, error)

	Update(ctx context.Context, book *types.Book) error

	// LinkBookAndAuthors replaces the whole author set of the book. authorIds must be distinct.
	LinkBookAndAuthors(ctx context.Context, bookId int64, authorIds ...int64) error
	// GetAuthorIds returns author ids of the book in link order.
	GetAuthorIds(ctx context.Context, bookId int64) ([]int64, error)
	// GetAuthorIdsByBookIds is GetAuthorIds for many books; books without links are absent.
	GetAuthorIdsByBookIds(ctx context.Context, bookIds ...int64) (map[int64][]int64, error)
}
