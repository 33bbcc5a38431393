package authors

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bookmanagement/internal/storage"
	"bookmanagement/internal/types"
)

var columns = []any{"id", "name", "birth_date"}

func NewPGXRepository(pg storage.DB, l *slog.Logger) Repository {
	return &pgxRepo{pg: pg, g: goqu.Dialect("postgres"), l: l}
}

type pgxRepo struct {
	pg storage.DB
	g  goqu.DialectWrapper
	l  *slog.Logger
}

type pgxAuthor struct {
	Id        int64     `db:"id"`
	Name      string    `db:"name"`
	BirthDate time.Time `db:"birth_date"`
}

func (a *pgxAuthor) intoCommon() *types.Author {
	return &types.Author{
		Id: a.Id,
		AuthorFields: types.AuthorFields{
			Name:      a.Name,
			BirthDate: types.DateOf(a.BirthDate),
		},
	}
}

func (p *pgxRepo) Create(ctx context.Context, fields types.AuthorFields) (*types.Author, error) {
	sql, params, err := p.g.Insert("author").
		Rows(goqu.Record{
			"name":       fields.Name,
			"birth_date": fields.BirthDate.String(),
		}).
		Returning(columns...).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var row pgxAuthor

	err = pgxscan.Get(ctx, storage.Conn(ctx, p.pg), &row, sql, params...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("insert author: %w", storage.ErrNotWritten)
		}
		return nil, err
	}

	return row.intoCommon(), nil
}

func (p *pgxRepo) GetById(ctx context.Context, id int64) (*types.Author, error) {
	sql, params, err := p.g.From("author").
		Select(columns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var row pgxAuthor

	err = pgxscan.Get(ctx, storage.Conn(ctx, p.pg), &row, sql, params...)
	if err != nil {
		if pgxscan.NotFound(err) {
			err = nil
		}
		return nil, err
	}

	return row.intoCommon(), nil
}

func (p *pgxRepo) GetByIds(ctx context.Context, ids ...int64) (map[int64]*types.Author, error) {
	if len(ids) == 0 {
		return make(map[int64]*types.Author), nil
	}

	sql, params, err := p.g.From("author").
		Select(columns...).
		Where(goqu.C("id").In(ids)).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxAuthor

	err = pgxscan.Select(ctx, storage.Conn(ctx, p.pg), &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make(map[int64]*types.Author, len(rows))
	for _, row := range rows {
		ret[row.Id] = row.intoCommon()
	}

	return ret, nil
}

func (p *pgxRepo) GetAll(ctx context.Context) ([]*types.Author, error) {
	sql, params, err := p.g.From("author").
		Select(columns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxAuthor

	err = pgxscan.Select(ctx, storage.Conn(ctx, p.pg), &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make([]*types.Author, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon())
	}

	return ret, nil
}

func (p *pgxRepo) Update(ctx context.Context, author *types.Author) error {
	sql, params, err := p.g.Update("author").
		Set(goqu.Record{
			"name":       author.Name,
			"birth_date": author.BirthDate.String(),
		}).
		Where(goqu.C("id").Eq(author.Id)).
		ToSQL()
	if err != nil {
		return err
	}

	tag, err := storage.Conn(ctx, p.pg).Exec(ctx, sql, params...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		p.l.WarnContext(ctx, "Author update matched no rows", slog.Int64("author_id", author.Id))
		return fmt.Errorf("update author %d: %w", author.Id, storage.ErrNotWritten)
	}

	return nil
}
