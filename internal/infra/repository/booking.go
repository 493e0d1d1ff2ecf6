package repository

import (
	"context"
	"encoding/json"
	"errors"

	"estatebook/internal/domain/booking"
	"estatebook/internal/domain/resource"
	"estatebook/internal/infra"
	"estatebook/internal/pkg/pgconv"
	"estatebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgExclusionViolation  = "23P01"
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BookingRepository persists bookings with pgx. The bookings table carries a
// GiST exclusion constraint on (resource_id, stay) restricted to active
// statuses, so the INSERT in Create is the atomic arbiter of date conflicts:
// of two racing inserts for overlapping stays, Postgres admits exactly one.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	breakdown, err := json.Marshal(b.Breakdown())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode price breakdown", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	interval := b.Interval()
	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (id, resource_id, kind, guest_id, guest_count, stay, status, breakdown)
		VALUES ($1, $2, $3, $4, $5, daterange($6, $7, '[)'), $8, $9)
		RETURNING id`,
		b.ID(), b.ResourceID(), b.Kind().String(), b.GuestID(), b.GuestCount(),
		pgconv.DateToPgtype(interval.CheckIn()), pgconv.DateToPgtype(interval.CheckOut()),
		b.Status().String(), breakdown,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create booking", err)
	}

	for _, sel := range b.AddOns() {
		if err := insertSelection(ctx, tx, id, sel.ItemID, "add_on", sel.UnitPriceCents, sel.Quantity); err != nil {
			return uuid.Nil, err
		}
	}
	for _, sel := range b.Activities() {
		if err := insertSelection(ctx, tx, id, sel.ItemID, "activity", sel.UnitPriceCents, sel.Participants); err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, classifyWriteErr("failed to commit booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindActiveIntervals(ctx context.Context, resourceID uuid.UUID) ([]commands.IntervalRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, lower(stay), upper(stay)
		FROM bookings
		WHERE resource_id = $1 AND status IN ('pending', 'confirmed')
		ORDER BY lower(stay)`,
		resourceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active intervals", err)
	}
	defer rows.Close()

	var records []commands.IntervalRecord
	for rows.Next() {
		var (
			rec      commands.IntervalRecord
			checkIn  pgtype.Date
			checkOut pgtype.Date
		)
		if err := rows.Scan(&rec.BookingID, &checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan interval row", err)
		}
		rec.CheckIn = pgconv.DateFromPgtype(checkIn)
		rec.CheckOut = pgconv.DateFromPgtype(checkOut)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read interval rows", err)
	}
	return records, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var (
		snap      commands.BookingSnapshot
		kind      string
		status    string
		breakdown []byte
		checkIn   pgtype.Date
		checkOut  pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, resource_id, kind, guest_id, guest_count,
		       lower(stay), upper(stay), status, breakdown, created_at, updated_at
		FROM bookings
		WHERE id = $1`,
		id,
	).Scan(
		&snap.ID, &snap.ResourceID, &kind, &snap.GuestID, &snap.GuestCount,
		&checkIn, &checkOut, &status, &breakdown, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	snap.Kind = resource.Kind(kind)
	snap.Status = booking.Status(status)
	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	if err := json.Unmarshal(breakdown, &snap.Breakdown); err != nil {
		return nil, infra.WrapRepoErr("failed to decode price breakdown", err)
	}

	if err := r.loadSelections(ctx, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// UpdateStatus applies a transition guarded by the expected current status;
// the guard makes concurrent transitions on the same booking serializable.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		to.String(), id, from.String(),
	)
	if err != nil {
		return classifyWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not in expected status", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) loadSelections(ctx context.Context, snap *commands.BookingSnapshot) error {
	rows, err := r.pool.Query(ctx, `
		SELECT item_id, selection_type, unit_price_cents, quantity
		FROM booking_selections
		WHERE booking_id = $1
		ORDER BY created_at`,
		snap.ID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to query booking selections", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID        uuid.UUID
			selectionType string
			unitPrice     int64
			quantity      int
		)
		if err := rows.Scan(&itemID, &selectionType, &unitPrice, &quantity); err != nil {
			return infra.WrapRepoErr("failed to scan selection row", err)
		}
		switch selectionType {
		case "add_on":
			snap.AddOns = append(snap.AddOns, booking.AddOnSelection{
				ItemID: itemID, UnitPriceCents: unitPrice, Quantity: quantity,
			})
		case "activity":
			snap.Activities = append(snap.Activities, booking.ActivitySelection{
				ItemID: itemID, UnitPriceCents: unitPrice, Participants: quantity,
			})
		}
	}
	return rows.Err()
}

func insertSelection(ctx context.Context, tx pgx.Tx, bookingID, itemID uuid.UUID, selectionType string, unitPriceCents int64, quantity int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO booking_selections (booking_id, item_id, selection_type, unit_price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5)`,
		bookingID, itemID, selectionType, unitPriceCents, quantity,
	)
	if err != nil {
		return classifyWriteErr("failed to create booking selection", err)
	}
	return nil
}

func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
