//go:build unit

package commands_test

import (
	"context"
	"testing"

	"estatebook/internal/domain/booking"
	"estatebook/internal/domain/pricing"
	"estatebook/internal/domain/resource"
	"estatebook/internal/infra"
	"estatebook/internal/pkg/errs"
	"estatebook/internal/usecase/commands"
	"estatebook/tests/common/builder"
	commandsmock "estatebook/tests/mock/commands"
	queriesmock "estatebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	bookingRepo  *commandsmock.MockBookingRepository
	resourceRepo *commandsmock.MockResourceRepository
	catalogRepo  *commandsmock.MockCatalogRepository
	rateProvider *commandsmock.MockRateRuleProvider
	bookingViews *queriesmock.MockBookingReadStore
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.resourceRepo = commandsmock.NewMockResourceRepository(s.mockCtrl)
	s.catalogRepo = commandsmock.NewMockCatalogRepository(s.mockCtrl)
	s.rateProvider = commandsmock.NewMockRateRuleProvider(s.mockCtrl)
	s.bookingViews = queriesmock.NewMockBookingReadStore(s.mockCtrl)

	s.commands = commands.NewBookingCommands(
		s.bookingRepo,
		s.resourceRepo,
		s.catalogRepo,
		s.rateProvider,
		pricing.NewStandardCalculator(),
		s.bookingViews,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) defaultRates() pricing.RateRules {
	rates, err := pricing.NewRateRules(0.12, 0.14, "USD", 1)
	s.Require().NoError(err)
	return rates
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking_Success() {
	b := builder.NewBookingBuilder()
	input := b.BuildInput()
	bookingID := uuid.New()

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).
		Return(s.defaultRates()).AnyTimes()
	s.bookingRepo.EXPECT().FindActiveIntervals(gomock.Any(), b.ResourceID).
		Return(nil, nil)
	s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entity *booking.Booking) (uuid.UUID, error) {
			s.Equal(booking.StatusPending, entity.Status())
			s.Equal(3, entity.Interval().Nights())
			return bookingID, nil
		})
	s.bookingViews.EXPECT().FindByID(gomock.Any(), bookingID).
		Return(b.BuildView(), nil)

	view, err := s.commands.CreateBooking(s.ctx, input)
	s.NoError(err)
	s.NotNil(view)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_InvalidDatesRejectedBeforeAnyLookup() {
	b := builder.NewBookingBuilder()
	input := b.BuildInput()
	// inverted window: no repository may be touched
	input.Stay = &commands.StayInput{CheckIn: b.CheckOut, CheckOut: b.CheckIn}

	_, err := s.commands.CreateBooking(s.ctx, input)
	s.ErrorIs(err, commands.ErrInvalidRequest)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ZeroGuestsRejected() {
	input := builder.NewBookingBuilder().BuildInput()
	input.Guests = 0

	_, err := s.commands.CreateBooking(s.ctx, input)
	s.ErrorIs(err, commands.ErrInvalidRequest)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ResourceNotFound() {
	b := builder.NewBookingBuilder()

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound))

	_, err := s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.ErrorIs(err, commands.ErrResourceNotFound)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_KindMismatchRejected() {
	b := builder.NewBookingBuilder()
	snap := b.BuildResourceSnapshot()
	snap.Kind = resource.KindActivity

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).Return(snap, nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()

	_, err := s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.ErrorIs(err, commands.ErrInvalidRequest)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_OccupancyExceededWithoutAvailabilityCheck() {
	b := builder.NewBookingBuilder()
	input := b.BuildInput()
	input.Guests = 5 // snapshot capacity is 4

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()

	_, err := s.commands.CreateBooking(s.ctx, input)
	s.ErrorIs(err, commands.ErrOccupancyExceeded)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_MinimumStayNotMet() {
	b := builder.NewBookingBuilder()
	snap := b.BuildResourceSnapshot()
	snap.MinimumStay = 5

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).Return(snap, nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()

	_, err := s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.ErrorIs(err, commands.ErrMinimumStayNotMet)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_MinimumStayFallsBackToPlatformDefault() {
	b := builder.NewBookingBuilder()
	snap := b.BuildResourceSnapshot()
	snap.MinimumStay = 0 // unset on the resource

	rates, err := pricing.NewRateRules(0.12, 0.14, "USD", 4)
	s.Require().NoError(err)

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).Return(snap, nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(rates).AnyTimes()

	// 3-night stay against a platform default of 4
	_, err = s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.ErrorIs(err, commands.ErrMinimumStayNotMet)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_UnknownAddOnRejected() {
	b := builder.NewBookingBuilder()
	input := b.BuildInput()
	input.AddOns = []commands.SelectionInput{{ItemID: uuid.New(), Quantity: 1}}

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()
	s.catalogRepo.EXPECT().FindAddOns(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]commands.CatalogItemSnapshot{}, nil)

	_, err := s.commands.CreateBooking(s.ctx, input)
	s.ErrorIs(err, commands.ErrItemNotFound)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_InactiveAddOnRejected() {
	b := builder.NewBookingBuilder()
	itemID := uuid.New()
	input := b.BuildInput()
	input.AddOns = []commands.SelectionInput{{ItemID: itemID, Quantity: 1}}

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()
	s.catalogRepo.EXPECT().FindAddOns(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]commands.CatalogItemSnapshot{
			itemID: {ID: itemID, Name: "Late checkout", UnitPriceCents: 3000, Active: false},
		}, nil)

	_, err := s.commands.CreateBooking(s.ctx, input)
	s.ErrorIs(err, commands.ErrItemNotFound)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_DuplicateAddOnRejected() {
	b := builder.NewBookingBuilder()
	itemID := uuid.New()
	input := b.BuildInput()
	// the same item twice must be merged client-side, not summed here
	input.AddOns = []commands.SelectionInput{
		{ItemID: itemID, Quantity: 1},
		{ItemID: itemID, Quantity: 2},
	}

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()
	// no catalog lookup and no Create once the duplicate is seen

	_, err := s.commands.CreateBooking(s.ctx, input)
	s.ErrorIs(err, commands.ErrInvalidRequest)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_DuplicateActivityRejected() {
	b := builder.NewBookingBuilder()
	itemID := uuid.New()
	input := b.BuildInput()
	input.Activities = []commands.SelectionInput{
		{ItemID: itemID, Quantity: 2},
		{ItemID: itemID, Quantity: 3},
	}

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()

	_, err := s.commands.CreateBooking(s.ctx, input)
	s.ErrorIs(err, commands.ErrInvalidRequest)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ActivityBookingRejectsActivitySelections() {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Kind = resource.KindActivity
	})
	input := b.BuildInput()
	input.Activities = []commands.SelectionInput{{ItemID: uuid.New(), Quantity: 2}}

	snap := b.BuildResourceSnapshot()
	snap.Kind = resource.KindActivity

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).Return(snap, nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()

	_, err := s.commands.CreateBooking(s.ctx, input)
	s.ErrorIs(err, commands.ErrInvalidRequest)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_AdvisoryCheckReportsConflict() {
	b := builder.NewBookingBuilder()

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()
	s.bookingRepo.EXPECT().FindActiveIntervals(gomock.Any(), b.ResourceID).
		Return([]commands.IntervalRecord{
			{BookingID: uuid.New(), CheckIn: b.CheckIn.AddDate(0, 0, 1), CheckOut: b.CheckOut.AddDate(0, 0, 1)},
		}, nil)
	// Create must never run once the advisory check reports the overlap

	_, err := s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.ErrorIs(err, commands.ErrDateRangeConflict)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_BackToBackStayIsNotAConflict() {
	b := builder.NewBookingBuilder()
	bookingID := uuid.New()

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()
	// an existing stay checking out exactly on our check-in day
	s.bookingRepo.EXPECT().FindActiveIntervals(gomock.Any(), b.ResourceID).
		Return([]commands.IntervalRecord{
			{BookingID: uuid.New(), CheckIn: b.CheckIn.AddDate(0, 0, -3), CheckOut: b.CheckIn},
		}, nil)
	s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bookingID, nil)
	s.bookingViews.EXPECT().FindByID(gomock.Any(), bookingID).Return(b.BuildView(), nil)

	_, err := s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.NoError(err)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_CommitConflictIsTerminal() {
	b := builder.NewBookingBuilder()

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()
	s.bookingRepo.EXPECT().FindActiveIntervals(gomock.Any(), b.ResourceID).
		Return(nil, nil)
	// a racing writer won between the advisory check and the insert
	s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("overlap", errs.New("exclusion violation"), infra.KindConflict)).
		Times(1)

	_, err := s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.ErrorIs(err, commands.ErrDateRangeConflict)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_TransientCommitFailureRetried() {
	b := builder.NewBookingBuilder()
	bookingID := uuid.New()
	transient := infra.WrapRepoErr("connection reset", errs.New("io timeout"))

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()
	s.bookingRepo.EXPECT().FindActiveIntervals(gomock.Any(), b.ResourceID).
		Return(nil, nil)
	gomock.InOrder(
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, transient),
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, transient),
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bookingID, nil),
	)
	s.bookingViews.EXPECT().FindByID(gomock.Any(), bookingID).Return(b.BuildView(), nil)

	_, err := s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.NoError(err)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ExhaustedRetriesFail() {
	b := builder.NewBookingBuilder()
	transient := infra.WrapRepoErr("connection reset", errs.New("io timeout"))

	s.resourceRepo.EXPECT().FindByID(gomock.Any(), b.ResourceID).
		Return(b.BuildResourceSnapshot(), nil)
	s.rateProvider.EXPECT().Current(gomock.Any()).Return(s.defaultRates()).AnyTimes()
	s.bookingRepo.EXPECT().FindActiveIntervals(gomock.Any(), b.ResourceID).
		Return(nil, nil)
	s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, transient).Times(3)

	_, err := s.commands.CreateBooking(s.ctx, b.BuildInput())
	s.ErrorIs(err, commands.ErrPersistenceFailure)
}

// ================================================================================
// Status transitions
// ================================================================================

func (s *BookingCommandsTestSuite) snapshotWithStatus(status booking.Status) *commands.BookingSnapshot {
	b := builder.NewBookingBuilder()
	return &commands.BookingSnapshot{
		ID:         uuid.New(),
		ResourceID: b.ResourceID,
		Kind:       resource.KindProperty,
		GuestID:    b.GuestID,
		GuestCount: 2,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     status,
		Breakdown:  booking.PriceBreakdown{Nights: 3, Currency: "USD"},
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	}
}

func (s *BookingCommandsTestSuite) TestConfirmBooking_PendingBecomesConfirmed() {
	snap := s.snapshotWithStatus(booking.StatusPending)

	s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
	s.bookingRepo.EXPECT().
		UpdateStatus(gomock.Any(), snap.ID, booking.StatusPending, booking.StatusConfirmed).
		Return(nil)

	s.NoError(s.commands.ConfirmBooking(s.ctx, snap.ID))
}

func (s *BookingCommandsTestSuite) TestConfirmBooking_CancelledIsRejected() {
	snap := s.snapshotWithStatus(booking.StatusCancelled)

	s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

	err := s.commands.ConfirmBooking(s.ctx, snap.ID)
	s.ErrorIs(err, commands.ErrInvalidTransition)
}

func (s *BookingCommandsTestSuite) TestCancelBooking_ConfirmedBecomesCancelled() {
	snap := s.snapshotWithStatus(booking.StatusConfirmed)

	s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
	s.bookingRepo.EXPECT().
		UpdateStatus(gomock.Any(), snap.ID, booking.StatusConfirmed, booking.StatusCancelled).
		Return(nil)

	s.NoError(s.commands.CancelBooking(s.ctx, snap.ID))
}

func (s *BookingCommandsTestSuite) TestCancelBooking_LostGuardRaceMapsToInvalidTransition() {
	snap := s.snapshotWithStatus(booking.StatusPending)

	s.bookingRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
	s.bookingRepo.EXPECT().
		UpdateStatus(gomock.Any(), snap.ID, booking.StatusPending, booking.StatusCancelled).
		Return(infra.WrapRepoErr("guard missed", errs.New("0 rows"), infra.KindNotFound))

	err := s.commands.CancelBooking(s.ctx, snap.ID)
	s.ErrorIs(err, commands.ErrInvalidTransition)
}

func (s *BookingCommandsTestSuite) TestConfirmBooking_NotFound() {
	id := uuid.New()
	s.bookingRepo.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound))

	err := s.commands.ConfirmBooking(s.ctx, id)
	s.ErrorIs(err, commands.ErrBookingNotFound)
}
