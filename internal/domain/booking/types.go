package booking

import "github.com/google/uuid"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// OccupiesInterval reports whether a booking in this status blocks its date
// range. Cancelled and completed bookings release their interval.
func (s Status) OccupiesInterval() bool {
	return s == StatusPending || s == StatusConfirmed
}

// AddOnSelection snapshots the unit price at selection time so later catalog
// changes never retroactively alter an existing booking's total.
type AddOnSelection struct {
	ItemID         uuid.UUID
	UnitPriceCents int64
	Quantity       int
}

func (s AddOnSelection) TotalCents() int64 {
	return s.UnitPriceCents * int64(s.Quantity)
}

type ActivitySelection struct {
	ItemID         uuid.UUID
	UnitPriceCents int64
	Participants   int
}

func (s ActivitySelection) TotalCents() int64 {
	return s.UnitPriceCents * int64(s.Participants)
}
