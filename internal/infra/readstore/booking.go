package readstore

import (
	"context"
	"encoding/json"

	"estatebook/internal/infra"
	"estatebook/internal/pkg/pgconv"
	"estatebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		breakdown []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT b.id, b.resource_id, res.name, b.kind, b.guest_id, b.guest_count,
		       lower(b.stay), upper(b.stay), b.status, b.breakdown, b.created_at, b.updated_at
		FROM bookings b
		JOIN resources res ON res.id = b.resource_id
		WHERE b.id = $1`,
		id,
	).Scan(
		&view.ID, &view.ResourceID, &view.ResourceName, &view.Kind, &view.GuestID,
		&view.GuestCount, &view.CheckIn, &view.CheckOut, &view.Status, &breakdown,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	if err := json.Unmarshal(breakdown, &view.Breakdown); err != nil {
		return nil, infra.WrapRepoErr("failed to decode price breakdown", err)
	}

	if err := r.loadSelections(ctx, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *BookingReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.resource_id, res.name, b.kind,
		       lower(b.stay), upper(b.stay), b.status,
		       (b.breakdown->>'total_cents')::bigint, b.created_at
		FROM bookings b
		JOIN resources res ON res.id = b.resource_id
		WHERE b.guest_id = $1
		ORDER BY b.created_at DESC`,
		guestID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by guest ID", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.ResourceID, &item.ResourceName, &item.Kind,
			&item.CheckIn, &item.CheckOut, &item.Status, &item.TotalCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list rows", err)
	}
	return items, nil
}

func (r *BookingReadStore) loadSelections(ctx context.Context, view *queries.BookingView) error {
	rows, err := r.pool.Query(ctx, `
		SELECT item_id, selection_type, unit_price_cents, quantity
		FROM booking_selections
		WHERE booking_id = $1
		ORDER BY created_at`,
		view.ID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to query booking selections", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sel           queries.SelectionView
			selectionType string
		)
		if err := rows.Scan(&sel.ItemID, &selectionType, &sel.UnitPriceCents, &sel.Quantity); err != nil {
			return infra.WrapRepoErr("failed to scan selection row", err)
		}
		switch selectionType {
		case "add_on":
			view.AddOns = append(view.AddOns, sel)
		case "activity":
			view.Activities = append(view.Activities, sel)
		}
	}
	return rows.Err()
}
