package books

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bookmanagement/internal/storage"
	"bookmanagement/internal/types"
)

var columns = []any{"id", "title", "price", "status"}

func NewPGXRepository(pg storage.DB, l *slog.Logger) Repository {
	return &pgxRepo{pg: pg, g: goqu.Dialect("postgres"), l: l}
}

type pgxRepo struct {
	pg storage.DB
	g  goqu.DialectWrapper
	l  *slog.Logger
}

type pgxBook struct {
	Id     int64  `db:"id"`
	Title  string `db:"title"`
	Price  int    `db:"price"`
	Status string `db:"status"`
}

type pgxLink struct {
	BookId   int64 `db:"book_id"`
	AuthorId int64 `db:"author_id"`
}

func (b *pgxBook) intoCommon(l *slog.Logger, ctx context.Context) *types.Book {
	status := types.BookStatus(b.Status)
	if !status.Valid() {
		l.ErrorContext(ctx, "Unknown book status stored in DB ("+b.Status+")", slog.Int64("book_id", b.Id))
	}

	return &types.Book{
		Id: b.Id,
		BookFields: types.BookFields{
			Title:  b.Title,
			Price:  b.Price,
			Status: status,
		},
	}
}

func (p *pgxRepo) Create(ctx context.Context, fields types.BookFields) (*types.Book, error) {
	sql, params, err := p.g.Insert("book").
		Rows(goqu.Record{
			"title":  fields.Title,
			"price":  fields.Price,
			"status": string(fields.Status),
		}).
		Returning(columns...).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var row pgxBook

	err = pgxscan.Get(ctx, storage.Conn(ctx, p.pg), &row, sql, params...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("insert book: %w", storage.ErrNotWritten)
		}
		return nil, err
	}

	return row.intoCommon(p.l, ctx), nil
}

func (p *pgxRepo) GetById(ctx context.Context, id int64) (*types.Book, error) {
	return p.getOne(ctx, p.g.From("book").
		Select(columns...).
		Where(goqu.C("id").Eq(id)))
}

func (p *pgxRepo) GetByIdForUpdate(ctx context.Context, id int64) (*types.Book, error) {
	return p.getOne(ctx, p.g.From("book").
		Select(columns...).
		Where(goqu.C("id").Eq(id)).
		ForUpdate(exp.Wait))
}

func (p *pgxRepo) getOne(ctx context.Context, qb *goqu.SelectDataset) (*types.Book, error) {
	sql, params, err := qb.ToSQL()
	if err != nil {
		return nil, err
	}

	var row pgxBook

	err = pgxscan.Get(ctx, storage.Conn(ctx, p.pg), &row, sql, params...)
	if err != nil {
		if pgxscan.NotFound(err) {
			err = nil
		}
		return nil, err
	}

	return row.intoCommon(p.l, ctx), nil
}

func (p *pgxRepo) GetAll(ctx context.Context) ([]*types.Book, error) {
	return p.getMany(ctx, p.g.From("book").
		Select(columns...).
		Order(goqu.C("id").Asc()))
}

func (p *pgxRepo) GetByAuthorIds(ctx context.Context, authorIds ...int64) ([]*types.Book, error) {
	if len(authorIds) == 0 {
		return make([]*types.Book, 0), nil
	}

	return p.getMany(ctx, p.g.From("book").
		Select(columns...).
		Where(goqu.C("id").In(
			goqu.Select("book_id").
				From("book_author").
				Where(goqu.C("author_id").In(authorIds)),
		)).
		Order(goqu.C("id").Asc()))
}

func (p *pgxRepo) getMany(ctx context.Context, qb *goqu.SelectDataset) ([]*types.Book, error) {
	sql, params, err := qb.ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxBook

	err = pgxscan.Select(ctx, storage.Conn(ctx, p.pg), &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make([]*types.Book, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon(p.l, ctx))
	}

	return ret, nil
}

func (p *pgxRepo) Update(ctx context.Context, book *types.Book) error {
	sql, params, err := p.g.Update("book").
		Set(goqu.Record{
			"title":  book.Title,
			"price":  book.Price,
			"status": string(book.Status),
		}).
		Where(goqu.C("id").Eq(book.Id)).
		ToSQL()
	if err != nil {
		return err
	}

	tag, err := storage.Conn(ctx, p.pg).Exec(ctx, sql, params...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update book %d: %w", book.Id, storage.ErrNotWritten)
	}

	return nil
}

func (p *pgxRepo) LinkBookAndAuthors(ctx context.Context, bookId int64, authorIds ...int64) error {
	db := storage.Conn(ctx, p.pg)

	sql, params, err := p.g.Delete("book_author").
		Where(goqu.C("book_id").Eq(bookId)).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, sql, params...)
	if err != nil {
		return err
	}

	if len(authorIds) == 0 {
		return nil
	}

	vals := make([][]any, 0, len(authorIds))
	for ix, authorId := range authorIds {
		vals = append(vals, []any{bookId, authorId, uint16(ix + 1)})
	}

	sql, params, err = p.g.Insert("book_author").
		Cols("book_id", "author_id", "author_order").
		Vals(vals...).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, sql, params...)
	return err
}

func (p *pgxRepo) GetAuthorIds(ctx context.Context, bookId int64) ([]int64, error) {
	sql, params, err := p.g.From("book_author").
		Select("author_id").
		Where(goqu.C("book_id").Eq(bookId)).
		Order(goqu.C("author_order").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var ids []int64

	err = pgxscan.Select(ctx, storage.Conn(ctx, p.pg), &ids, sql, params...)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (p *pgxRepo) GetAuthorIdsByBookIds(ctx context.Context, bookIds ...int64) (map[int64][]int64, error) {
	if len(bookIds) == 0 {
		return make(map[int64][]int64), nil
	}

	sql, params, err := p.g.From("book_author").
		Select("book_id", "author_id").
		Where(goqu.C("book_id").In(bookIds)).
		Order(goqu.C("book_id").Asc(), goqu.C("author_order").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxLink

	err = pgxscan.Select(ctx, storage.Conn(ctx, p.pg), &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make(map[int64][]int64, len(bookIds))
	for _, row := range rows {
		ret[row.BookId] = append(ret[row.BookId], row.AuthorId)
	}

	return ret, nil
}
