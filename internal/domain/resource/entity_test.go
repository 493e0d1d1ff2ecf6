//go:build unit

package resource_test

import (
	"strings"
	"testing"

	"estatebook/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resourceArgs struct {
	kind           resource.Kind
	name           string
	basePriceCents int64
	maxOccupancy   int
	minimumStay    int
	cleaningFee    int64
	deposit        int64
}

func defaultArgs() resourceArgs {
	return resourceArgs{
		kind:           resource.KindProperty,
		name:           "Seaside Villa",
		basePriceCents: 10000,
		maxOccupancy:   4,
		minimumStay:    1,
		cleaningFee:    5000,
		deposit:        20000,
	}
}

func build(args resourceArgs) (*resource.Resource, error) {
	return resource.NewResource(
		uuid.New(), args.kind, args.name,
		args.basePriceCents, args.maxOccupancy, args.minimumStay,
		args.cleaningFee, args.deposit,
	)
}

func TestNewResource(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*resourceArgs)
		errIs  error
	}{
		{
			name:   "valid property",
			mutate: func(*resourceArgs) {},
		},
		{
			name:   "valid activity",
			mutate: func(a *resourceArgs) { a.kind = resource.KindActivity },
		},
		{
			name:   "unknown kind rejected",
			mutate: func(a *resourceArgs) { a.kind = resource.Kind("estate") },
			errIs:  resource.ErrInvalidKind,
		},
		{
			name:   "empty name rejected",
			mutate: func(a *resourceArgs) { a.name = "  " },
			errIs:  resource.ErrEmptyResourceName,
		},
		{
			name:   "overlong name rejected",
			mutate: func(a *resourceArgs) { a.name = strings.Repeat("x", 256) },
			errIs:  resource.ErrResourceNameTooLong,
		},
		{
			name:   "zero base price rejected",
			mutate: func(a *resourceArgs) { a.basePriceCents = 0 },
			errIs:  resource.ErrNonPositivePrice,
		},
		{
			name:   "zero capacity rejected",
			mutate: func(a *resourceArgs) { a.maxOccupancy = 0 },
			errIs:  resource.ErrNonPositiveCapacity,
		},
		{
			name:   "zero minimum stay rejected",
			mutate: func(a *resourceArgs) { a.minimumStay = 0 },
			errIs:  resource.ErrInvalidMinimumStay,
		},
		{
			name:   "negative cleaning fee rejected",
			mutate: func(a *resourceArgs) { a.cleaningFee = -1 },
			errIs:  resource.ErrNegativeFee,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args := defaultArgs()
			tc.mutate(&args)

			res, err := build(args)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, res)
		})
	}
}

func TestResource_ActivityDropsCleaningFee(t *testing.T) {
	args := defaultArgs()
	args.kind = resource.KindActivity
	args.cleaningFee = 5000

	res, err := build(args)
	require.NoError(t, err)
	assert.Zero(t, res.CleaningFeeCents())
}

func TestResource_CanAccommodate(t *testing.T) {
	res, err := build(defaultArgs())
	require.NoError(t, err)

	assert.True(t, res.CanAccommodate(1))
	assert.True(t, res.CanAccommodate(4))
	assert.False(t, res.CanAccommodate(5))
	assert.False(t, res.CanAccommodate(0))
	assert.False(t, res.CanAccommodate(-1))
}
