package queries

import (
	"context"

	"estatebook/internal/infra"
	"estatebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrResourceNotFound = errs.New("resource not found")
	ErrQueryFailed      = errs.New("query failed")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*BookingListItem, error)
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingListItem, error)
	GetResource(ctx context.Context, id uuid.UUID) (*ResourceView, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	resources ResourceReadStore
}

func NewBookingQueries(bookings BookingReadStore, resources ResourceReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		resources: resources,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.bookings.FindByGuestID(ctx, guestID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) GetResource(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	view, err := q.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}
