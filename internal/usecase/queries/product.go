package queries

import (
	"context"

	"nailbook/internal/infra"
	"nailbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound    = errs.New("product not found")
	ErrProductQueryFailed = errs.New("product query failed")
)

type ProductQueries interface {
	ListPublic(ctx context.Context, filters ProductFilters) ([]*ProductView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListAdmin(ctx context.Context) ([]*ProductView, error)
}

type ProductReadStore interface {
	FindPublic(ctx context.Context, filters ProductFilters) ([]*ProductView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindAllNewestFirst(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) ListPublic(ctx context.Context, filters ProductFilters) ([]*ProductView, error) {
	views, err := q.store.FindPublic(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, ErrProductQueryFailed)
	}
	return views, nil
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrProductQueryFailed)
	}
	return view, nil
}

func (q *productQueriesImpl) ListAdmin(ctx context.Context) ([]*ProductView, error) {
	views, err := q.store.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrProductQueryFailed)
	}
	return views, nil
}
