package authors

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

import (
	"context"

	"bookmanagement/internal/types"
)

type Repository interface {
	// Create inserts a new author and returns it with the id assigned by the store.
	Create(ctx context.Context, fields types.AuthorFields) (*types.Author, error)

	// GetById returns nil, nil when there is no such author.
	GetById(ctx context.Context, id int64) (*types.Author, error)
	// GetByIds shall return map with NON-NULLS! Missing ids are simply absent.
	GetByIds(ctx context.Context, ids ...int64) (map[int64]*types.Author, error)
	GetAll(ctx context.Context) ([]*types.Author, error)

	Update(ctx context.Context, author *types.Author) error
}
