//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/shared"
	"hall-booking/tests/common/builder"
	sharedmock "hall-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commandsFixture struct {
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	repo   *sharedmock.MockBookingRepository
	reads  *sharedmock.MockCommandReads
	cache  *sharedmock.MockScheduleInvalidator
	events *sharedmock.MockEventPublisher
	clock  *clock.MockClock
	sut    commands.BookingCommands
}

func newCommandsFixture(t *testing.T) *commandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &commandsFixture{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		tx:     sharedmock.NewMockTx(ctrl),
		repo:   sharedmock.NewMockBookingRepository(ctrl),
		reads:  sharedmock.NewMockCommandReads(ctrl),
		cache:  sharedmock.NewMockScheduleInvalidator(ctrl),
		events: sharedmock.NewMockEventPublisher(ctrl),
		// Monday 4 March 2024, 09:00 in Seoul
		clock: clock.NewMockClock(time.Date(2024, time.March, 4, 9, 0, 0, 0, builder.Seoul)),
	}
	policy := commands.BookingPolicy{
		Location:           builder.Seoul,
		Window:             booking.NewWindowPolicy(builder.Seoul, time.Sunday, 18),
		MaxWeeklyCount:     52,
		RecurringUserName:  "Regular Meeting",
		RecurringUserPhone: "Admin",
	}
	f.sut = commands.NewBookingCommands(f.uow, f.clock, policy, f.cache, f.events)
	return f
}

// expectTx runs the transaction body against the mocked tx.
func (f *commandsFixture) expectTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
	f.tx.EXPECT().Bookings().Return(f.repo).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (f *commandsFixture) expectAfterWrite(n int) {
	f.cache.EXPECT().Invalidate(gomock.Any(), gomock.Len(n))
	f.events.EXPECT().Publish(gomock.Any(), gomock.Len(n)).Return(nil)
}

func date(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, builder.Seoul)
}

// =============================================================================
// Single Booking Tests
// =============================================================================

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	valid := commands.CreateBookingRequest{
		HallID:    1,
		UserName:  "Choir",
		UserPhone: "010-1234-5678",
		Purpose:   "Practice",
		Date:      "2024-03-06",
		StartTime: "10:00",
		EndTime:   "12:00",
	}

	t.Run("success: free slot is stored", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		day := booking.DayRange(date(time.March, 6))
		// touching intervals do not overlap
		adjacent := builder.NewBookingBuilder().At(date(time.March, 6), "12:00", "13:00").BuildDomain()

		gomock.InOrder(
			f.repo.EXPECT().LockHall(gomock.Any(), gomock.Any(), int64(1)).Return(nil),
			f.reads.EXPECT().BookingsByHallInRange(gomock.Any(), int64(1), day.Start, day.End).Return([]booking.Booking{adjacent}, nil),
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ any, b booking.Booking) (int64, error) {
					assert.Equal(t, 10, b.Slot.Start.Hour())
					assert.Equal(t, builder.Seoul, b.Slot.Start.Location())
					return 11, nil
				}),
		)
		f.expectAfterWrite(1)

		res, err := f.sut.CreateBooking(ctx, valid)

		require.NoError(t, err)
		assert.Equal(t, int64(11), res.BookingID)
	})

	t.Run("error: overlap reports the booking date", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		existing := builder.NewBookingBuilder().At(date(time.March, 6), "11:00", "13:00").BuildDomain()
		f.repo.EXPECT().LockHall(gomock.Any(), gomock.Any(), int64(1)).Return(nil)
		f.reads.EXPECT().BookingsByHallInRange(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return([]booking.Booking{existing}, nil)

		_, err := f.sut.CreateBooking(ctx, valid)

		var conflict *booking.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "2024-03-06", conflict.Date.Format(booking.DateLayout))
		assert.True(t, errs.Is(err, booking.ErrBookingConflict))
	})

	t.Run("error: exclusion constraint race maps to conflict", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		f.repo.EXPECT().LockHall(gomock.Any(), gomock.Any(), int64(1)).Return(nil)
		f.reads.EXPECT().BookingsByHallInRange(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to create booking", errors.New("excl"), infra.KindConflict))

		_, err := f.sut.CreateBooking(ctx, valid)

		assert.True(t, errs.Is(err, booking.ErrBookingConflict))
	})

	t.Run("error: unknown hall", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		f.repo.EXPECT().LockHall(gomock.Any(), gomock.Any(), int64(1)).
			Return(infra.WrapRepoErr("hall not found", nil, infra.KindNotFound))

		_, err := f.sut.CreateBooking(ctx, valid)

		assert.True(t, errs.Is(err, commands.ErrHallNotFound))
	})

	t.Run("error: window for next month not yet open", func(t *testing.T) {
		f := newCommandsFixture(t)
		req := valid
		req.Date = "2024-04-02"

		_, err := f.sut.CreateBooking(ctx, req)

		var closed *booking.WindowClosedError
		require.ErrorAs(t, err, &closed)
		require.NotNil(t, closed.OpensAt)
		assert.Equal(t, time.Date(2024, time.March, 31, 18, 0, 0, 0, builder.Seoul), *closed.OpensAt)
	})

	validationCases := map[string]func(*commands.CreateBookingRequest){
		"end before start": func(r *commands.CreateBookingRequest) { r.EndTime = "09:00" },
		"bad date":         func(r *commands.CreateBookingRequest) { r.Date = "2024/03/06" },
		"bad time":         func(r *commands.CreateBookingRequest) { r.StartTime = "25:00" },
		"blank purpose":    func(r *commands.CreateBookingRequest) { r.Purpose = "  " },
	}
	for name, mutate := range validationCases {
		t.Run("validation: "+name, func(t *testing.T) {
			f := newCommandsFixture(t)
			req := valid
			mutate(&req)

			_, err := f.sut.CreateBooking(ctx, req)

			assert.True(t, errs.Is(err, booking.ErrValidation), "got %v", err)
		})
	}
}

// =============================================================================
// Recurring Booking Tests
// =============================================================================

func TestCreateRecurringBookings(t *testing.T) {
	ctx := context.Background()
	weekly := commands.CreateRecurringRequest{
		HallID:      2,
		Purpose:     "Bible Study",
		BaseDate:    "2024-03-04",
		StartTime:   "19:00",
		EndTime:     "21:00",
		Mode:        "weekly",
		WeeklyCount: 3,
	}

	t.Run("success: weekly series with policy defaults", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		f.repo.EXPECT().LockHall(gomock.Any(), gomock.Any(), int64(2)).Return(nil)
		f.reads.EXPECT().BookingsByHallInRange(gomock.Any(), int64(2), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, start, end time.Time) ([]booking.Booking, error) {
				assert.True(t, date(time.March, 4).Equal(start))
				assert.True(t, date(time.March, 19).Equal(end))
				return nil, nil
			})

		var nextID int64 = 100
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
			func(_ context.Context, _ any, b booking.Booking) (int64, error) {
				assert.Equal(t, "Regular Meeting", b.UserName)
				assert.Equal(t, "Admin", b.UserPhone)
				nextID++
				return nextID, nil
			})
		f.expectAfterWrite(3)

		res, err := f.sut.CreateRecurringBookings(ctx, weekly)

		require.NoError(t, err)
		assert.Equal(t, []int64{101, 102, 103}, res.BookingIDs)
		require.Len(t, res.Dates, 3)
		assert.Equal(t, "2024-03-18", res.Dates[2].Format(booking.DateLayout))
	})

	t.Run("error: one conflicting date rejects the whole series", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		clash := builder.NewBookingBuilder().WithHall(2, "").At(date(time.March, 11), "20:00", "22:00").BuildDomain()
		f.repo.EXPECT().LockHall(gomock.Any(), gomock.Any(), int64(2)).Return(nil)
		f.reads.EXPECT().BookingsByHallInRange(gomock.Any(), int64(2), gomock.Any(), gomock.Any()).Return([]booking.Booking{clash}, nil)

		_, err := f.sut.CreateRecurringBookings(ctx, weekly)

		var conflict *booking.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "2024-03-11", conflict.Date.Format(booking.DateLayout))
	})

	t.Run("error: insert race names the failing date", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		f.repo.EXPECT().LockHall(gomock.Any(), gomock.Any(), int64(2)).Return(nil)
		f.reads.EXPECT().BookingsByHallInRange(gomock.Any(), int64(2), gomock.Any(), gomock.Any()).Return(nil, nil)
		gomock.InOrder(
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil),
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(int64(0), infra.WrapRepoErr("failed to create booking", errors.New("excl"), infra.KindConflict)),
		)

		_, err := f.sut.CreateRecurringBookings(ctx, weekly)

		var conflict *booking.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "2024-03-11", conflict.Date.Format(booking.DateLayout))
	})

	t.Run("error: weekly count over the configured cap", func(t *testing.T) {
		f := newCommandsFixture(t)
		req := weekly
		req.WeeklyCount = 53

		_, err := f.sut.CreateRecurringBookings(ctx, req)

		assert.True(t, errs.Is(err, commands.ErrWeeklyCountExceedsLimit))
		assert.True(t, errs.Is(err, booking.ErrValidation))
	})

	t.Run("error: monthly without ordinals", func(t *testing.T) {
		f := newCommandsFixture(t)
		req := weekly
		req.Mode = "monthly"
		req.WeeklyCount = 0

		_, err := f.sut.CreateRecurringBookings(ctx, req)

		assert.True(t, errs.Is(err, booking.ErrInvalidOrdinals))
	})

	t.Run("series ignores the booking window", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		req := weekly
		req.BaseDate = "2024-06-03"
		req.WeeklyCount = 1
		f.repo.EXPECT().LockHall(gomock.Any(), gomock.Any(), int64(2)).Return(nil)
		f.reads.EXPECT().BookingsByHallInRange(gomock.Any(), int64(2), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(7), nil)
		f.expectAfterWrite(1)

		res, err := f.sut.CreateRecurringBookings(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, []int64{7}, res.BookingIDs)
	})
}

// =============================================================================
// Delete Booking Tests
// =============================================================================

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	ref := builder.NewBookingBuilder().WithID(5).At(date(time.March, 11), "19:00", "21:00").BuildDomain()

	t.Run("single scope deletes only the booking", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		f.reads.EXPECT().BookingByID(gomock.Any(), int64(5)).Return(ref, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(5)).Return(nil)
		f.expectAfterWrite(1)

		res, err := f.sut.DeleteBooking(ctx, 5, commands.DeleteScopeSingle)

		require.NoError(t, err)
		assert.Equal(t, []int64{5}, res.DeletedIDs)
	})

	t.Run("group scope deletes matching start times only", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		sibling := builder.NewBookingBuilder().WithID(4).At(date(time.March, 4), "19:00", "21:00").BuildDomain()
		later := builder.NewBookingBuilder().WithID(9).At(date(time.March, 18), "19:00", "21:00").BuildDomain()
		otherTime := builder.NewBookingBuilder().WithID(6).At(date(time.March, 12), "09:00", "10:00").BuildDomain()

		f.reads.EXPECT().BookingByID(gomock.Any(), int64(5)).Return(ref, nil)
		f.reads.EXPECT().GroupCandidates(gomock.Any(), ref.HallID, ref.UserName, ref.Purpose).
			Return([]booking.Booking{later, ref, otherTime, sibling}, nil)
		f.repo.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any(), []int64{4, 5, 9}).Return(int64(3), nil)
		f.expectAfterWrite(3)

		res, err := f.sut.DeleteBooking(ctx, 5, commands.DeleteScopeGroup)

		require.NoError(t, err)
		assert.Equal(t, []int64{4, 5, 9}, res.DeletedIDs)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		f.reads.EXPECT().BookingByID(gomock.Any(), int64(5)).
			Return(booking.Booking{}, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := f.sut.DeleteBooking(ctx, 5, commands.DeleteScopeSingle)

		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})

	t.Run("unknown scope", func(t *testing.T) {
		f := newCommandsFixture(t)

		_, err := f.sut.DeleteBooking(ctx, 5, commands.DeleteScope("all"))

		assert.True(t, errs.Is(err, commands.ErrInvalidDeleteScope))
	})

	t.Run("publish failure does not fail the delete", func(t *testing.T) {
		f := newCommandsFixture(t)
		f.expectTx()
		f.reads.EXPECT().BookingByID(gomock.Any(), int64(5)).Return(ref, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(5)).Return(nil)
		f.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any())
		f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := f.sut.DeleteBooking(ctx, 5, commands.DeleteScopeSingle)

		assert.NoError(t, err)
	})
}

func TestParseDeleteScope(t *testing.T) {
	for in, expected := range map[string]commands.DeleteScope{
		"":        commands.DeleteScopeSingle,
		"single":  commands.DeleteScopeSingle,
		" GROUP ": commands.DeleteScopeGroup,
	} {
		actual, err := commands.ParseDeleteScope(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, actual)
	}

	_, err := commands.ParseDeleteScope("everything")
	assert.True(t, errs.Is(err, booking.ErrValidation))
}

func TestCheckWindow(t *testing.T) {
	ctx := context.Background()
	f := newCommandsFixture(t)

	open, err := f.sut.CheckWindow(ctx, "2024-03-20")
	require.NoError(t, err)
	assert.True(t, open.Allowed)

	closed, err := f.sut.CheckWindow(ctx, "2024-04-01")
	require.NoError(t, err)
	assert.False(t, closed.Allowed)
	require.NotNil(t, closed.OpensAt)

	f.clock.Set(time.Date(2024, time.March, 31, 18, 0, 0, 0, builder.Seoul))
	reopened, err := f.sut.CheckWindow(ctx, "2024-04-01")
	require.NoError(t, err)
	assert.True(t, reopened.Allowed)

	_, err = f.sut.CheckWindow(ctx, "tomorrow")
	assert.True(t, errs.Is(err, booking.ErrInvalidDate))
}
