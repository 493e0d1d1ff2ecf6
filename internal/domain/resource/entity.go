package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidKind         = errors.New("invalid resource kind")
	ErrNonPositivePrice    = errors.New("base price must be positive")
	ErrNonPositiveCapacity = errors.New("capacity must be positive")
	ErrInvalidMinimumStay  = errors.New("minimum stay must be at least one night")
	ErrNegativeFee         = errors.New("fee cannot be negative")
)

const (
	MaxResourceNameLength = 255
)

type Kind string

const (
	KindProperty Kind = "property"
	KindActivity Kind = "activity"
)

func (k Kind) IsValid() bool {
	return k == KindProperty || k == KindActivity
}

func (k Kind) String() string {
	return string(k)
}

// Resource is a bookable property or activity. The catalog owns its lifecycle;
// the engine only reads it, so the entity carries exactly what availability and
// pricing need.
type Resource struct {
	id                   uuid.UUID
	kind                 Kind
	name                 string
	basePriceCents       int64
	maxOccupancy         int
	minimumStay          int
	cleaningFeeCents     int64
	securityDepositCents int64
	createdAt            time.Time
	updatedAt            time.Time
}

func NewResource(
	id uuid.UUID,
	kind Kind,
	name string,
	basePriceCents int64,
	maxOccupancy int,
	minimumStay int,
	cleaningFeeCents int64,
	securityDepositCents int64,
) (*Resource, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if basePriceCents <= 0 {
		return nil, ErrNonPositivePrice
	}
	if maxOccupancy <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	if minimumStay < 1 {
		return nil, ErrInvalidMinimumStay
	}
	if cleaningFeeCents < 0 || securityDepositCents < 0 {
		return nil, ErrNegativeFee
	}
	if kind == KindActivity {
		// cleaning fee is a property concept
		cleaningFeeCents = 0
	}

	return &Resource{
		id:                   id,
		kind:                 kind,
		name:                 strings.TrimSpace(name),
		basePriceCents:       basePriceCents,
		maxOccupancy:         maxOccupancy,
		minimumStay:          minimumStay,
		cleaningFeeCents:     cleaningFeeCents,
		securityDepositCents: securityDepositCents,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	kind Kind,
	name string,
	basePriceCents int64,
	maxOccupancy int,
	minimumStay int,
	cleaningFeeCents int64,
	securityDepositCents int64,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:                   id,
		kind:                 kind,
		name:                 name,
		basePriceCents:       basePriceCents,
		maxOccupancy:         maxOccupancy,
		minimumStay:          minimumStay,
		cleaningFeeCents:     cleaningFeeCents,
		securityDepositCents: securityDepositCents,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

func (r *Resource) IsProperty() bool {
	return r.kind == KindProperty
}

// CanAccommodate reports whether the guest (or participant) count fits.
func (r *Resource) CanAccommodate(count int) bool {
	return count > 0 && count <= r.maxOccupancy
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID               { return r.id }
func (r *Resource) Kind() Kind                  { return r.kind }
func (r *Resource) Name() string                { return r.name }
func (r *Resource) BasePriceCents() int64       { return r.basePriceCents }
func (r *Resource) MaxOccupancy() int           { return r.maxOccupancy }
func (r *Resource) MinimumStay() int            { return r.minimumStay }
func (r *Resource) CleaningFeeCents() int64     { return r.cleaningFeeCents }
func (r *Resource) SecurityDepositCents() int64 { return r.securityDepositCents }
func (r *Resource) CreatedAt() time.Time        { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time        { return r.updatedAt }
