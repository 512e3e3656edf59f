package queries

import (
	"context"

	"nailbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrBookingQueryFailed = errs.New("booking query failed")
)

type BookingQueries interface {
	TakenTimes(ctx context.Context, productID uuid.UUID, date string) ([]string, error)
	ListByEmail(ctx context.Context, email string) ([]*BookingView, error)
	ListAdmin(ctx context.Context, filters BookingFilters) ([]*BookingView, error)
	TotalPaidRevenue(ctx context.Context) (int64, error)
}

type BookingReadStore interface {
	FindTakenTimes(ctx context.Context, productID uuid.UUID, date string) ([]string, error)
	FindByEmail(ctx context.Context, email string) ([]*BookingView, error)
	FindFiltered(ctx context.Context, filters BookingFilters) ([]*BookingView, error)
	SumPaidPrices(ctx context.Context) (int64, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) TakenTimes(ctx context.Context, productID uuid.UUID, date string) ([]string, error) {
	times, err := q.store.FindTakenTimes(ctx, productID, date)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQueryFailed)
	}
	return times, nil
}

func (q *bookingQueriesImpl) ListByEmail(ctx context.Context, email string) ([]*BookingView, error) {
	views, err := q.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQueryFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListAdmin(ctx context.Context, filters BookingFilters) ([]*BookingView, error) {
	views, err := q.store.FindFiltered(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQueryFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) TotalPaidRevenue(ctx context.Context) (int64, error) {
	total, err := q.store.SumPaidPrices(ctx)
	if err != nil {
		return 0, errs.Mark(err, ErrBookingQueryFailed)
	}
	return total, nil
}
