//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"estatebook/internal/domain/booking"
	"estatebook/internal/domain/pricing"
	"estatebook/internal/infra"
	"estatebook/internal/usecase/commands"
	"estatebook/tests/common/builder"
	commandsmock "estatebook/tests/mock/commands"
	queriesmock "estatebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memBookingRepo arbitrates overlap under a single mutex, mirroring what the
// exclusion constraint guarantees: of N racing inserts for conflicting
// intervals, exactly one wins.
type memBookingRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]commands.IntervalRecord
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{entries: make(map[uuid.UUID][]commands.IntervalRecord)}
}

func (r *memBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	in := b.Interval()
	for _, rec := range r.entries[b.ResourceID()] {
		if in.CheckIn().Before(rec.CheckOut) && rec.CheckIn.Before(in.CheckOut()) {
			return uuid.Nil, infra.WrapRepoErr("overlapping stay", nil, infra.KindConflict)
		}
	}

	id := uuid.New()
	r.entries[b.ResourceID()] = append(r.entries[b.ResourceID()], commands.IntervalRecord{
		BookingID: id,
		CheckIn:   in.CheckIn(),
		CheckOut:  in.CheckOut(),
	})
	return id, nil
}

func (r *memBookingRepo) FindActiveIntervals(_ context.Context, resourceID uuid.UUID) ([]commands.IntervalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]commands.IntervalRecord, len(r.entries[resourceID]))
	copy(out, r.entries[resourceID])
	return out, nil
}

func (r *memBookingRepo) FindByID(_ context.Context, _ uuid.UUID) (*commands.BookingSnapshot, error) {
	return nil, infra.WrapRepoErr("not implemented", nil, infra.KindNotFound)
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _, _ booking.Status) error {
	return infra.WrapRepoErr("not implemented", nil, infra.KindNotFound)
}

// Sixteen writers race for the same window on one resource; exactly one
// booking may be admitted, the rest must see the conflict sentinel.
func TestCreateBooking_ConcurrentWritersAdmitExactlyOne(t *testing.T) {
	const writers = 16

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := builder.NewBookingBuilder()
	input := b.BuildInput()
	snap := b.BuildResourceSnapshot()

	resourceRepo := commandsmock.NewMockResourceRepository(ctrl)
	resourceRepo.EXPECT().FindByID(gomock.Any(), input.ResourceID).Return(snap, nil).AnyTimes()

	catalogRepo := commandsmock.NewMockCatalogRepository(ctrl)

	rates, err := pricing.NewRateRules(0.12, 0.14, "USD", 1)
	require.NoError(t, err)
	rateProvider := commandsmock.NewMockRateRuleProvider(ctrl)
	rateProvider.EXPECT().Current(gomock.Any()).Return(rates).AnyTimes()

	bookingViews := queriesmock.NewMockBookingReadStore(ctrl)
	bookingViews.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(b.BuildView(), nil).AnyTimes()

	cmds := commands.NewBookingCommands(
		newMemBookingRepo(),
		resourceRepo,
		catalogRepo,
		rateProvider,
		pricing.NewStandardCalculator(),
		bookingViews,
	)

	results := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cmds.CreateBooking(context.Background(), input)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won, conflicted int
	for err := range results {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, commands.ErrDateRangeConflict)
			conflicted++
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, writers-1, conflicted)
}
