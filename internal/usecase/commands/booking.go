package commands

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/pkg/patch"
	"hall-booking/internal/usecase/shared"
)

var (
	ErrHallNotFound            = errs.ErrHallNotFound
	ErrBookingNotFound         = errs.ErrBookingNotFound
	ErrWeeklyCountExceedsLimit = errs.Mark(errs.New("weekly count exceeds limit"), booking.ErrValidation)
	ErrInvalidDeleteScope      = errs.Mark(errs.New("delete scope must be single or group"), booking.ErrValidation)
)

type DeleteScope string

const (
	DeleteScopeSingle DeleteScope = "single"
	DeleteScopeGroup  DeleteScope = "group"
)

func ParseDeleteScope(s string) (DeleteScope, error) {
	switch DeleteScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", DeleteScopeSingle:
		return DeleteScopeSingle, nil
	case DeleteScopeGroup:
		return DeleteScopeGroup, nil
	default:
		return "", ErrInvalidDeleteScope
	}
}

type CreateBookingRequest struct {
	HallID    int64
	UserName  string
	UserPhone string
	Purpose   string
	Date      string
	StartTime string
	EndTime   string
}

type CreateRecurringRequest struct {
	HallID int64
	// UserName and UserPhone fall back to the policy defaults when blank
	UserName     string
	UserPhone    string
	Purpose      string
	BaseDate     string
	StartTime    string
	EndTime      string
	Mode         string
	WeeklyCount  int
	WeekOrdinals []int
}

type CreateBookingResult struct {
	BookingID int64
}

type CreateRecurringResult struct {
	BookingIDs []int64
	Dates      []time.Time
}

type DeleteBookingResult struct {
	DeletedIDs []int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
	CreateRecurringBookings(ctx context.Context, req CreateRecurringRequest) (*CreateRecurringResult, error)
	DeleteBooking(ctx context.Context, id int64, scope DeleteScope) (*DeleteBookingResult, error)
	CheckWindow(ctx context.Context, date string) (booking.Decision, error)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy BookingPolicy
	cache  shared.ScheduleInvalidator
	events shared.EventPublisher
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, policy BookingPolicy, cache shared.ScheduleInvalidator, events shared.EventPublisher) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
		cache:  cache,
		events: events,
	}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	date, err := booking.ParseDate(req.Date, uc.policy.Location)
	if err != nil {
		return nil, err
	}
	start, err := booking.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := booking.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, err
	}
	slot, err := booking.SlotOn(date, start, end)
	if err != nil {
		return nil, err
	}
	candidate, err := booking.NewBooking(req.HallID, req.UserName, req.UserPhone, req.Purpose, slot)
	if err != nil {
		return nil, err
	}

	if err := uc.policy.Window.Evaluate(uc.clock.Now(), date).Err(); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Bookings().LockHall(ctx, tx.DB(), candidate.HallID); derr != nil {
			return derr
		}

		day := booking.DayRange(date)
		existing, derr := tx.Reads().BookingsByHallInRange(ctx, candidate.HallID, day.Start, day.End)
		if derr != nil {
			return derr
		}
		if derr = booking.AdmitSingle(candidate, booking.Slots(existing)); derr != nil {
			return derr
		}

		id, derr := tx.Bookings().Create(ctx, tx.DB(), candidate)
		if derr != nil {
			return derr
		}
		candidate.ID = id
		return nil
	})
	if err != nil {
		return nil, translateWriteErr(err, ErrHallNotFound, date)
	}

	slog.Info("booking created", "booking_id", candidate.ID, "hall_id", candidate.HallID, "start", candidate.Slot.Start.Format(booking.LocalLayout))
	uc.afterWrite(ctx, shared.EventBookingCreated, []booking.Booking{candidate})
	return &CreateBookingResult{BookingID: candidate.ID}, nil
}

func (uc *bookingCommandsImpl) CreateRecurringBookings(ctx context.Context, req CreateRecurringRequest) (*CreateRecurringResult, error) {
	spec, err := uc.recurrenceSpec(req)
	if err != nil {
		return nil, err
	}
	dates, err := booking.ExpandDates(spec)
	if err != nil {
		return nil, err
	}
	horizon := booking.TimeSlot{
		Start: dates[0],
		End:   dates[len(dates)-1].AddDate(0, 0, 1),
	}

	var created []booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = nil
		if derr := tx.Bookings().LockHall(ctx, tx.DB(), spec.HallID); derr != nil {
			return derr
		}

		existing, derr := tx.Reads().BookingsByHallInRange(ctx, spec.HallID, horizon.Start, horizon.End)
		if derr != nil {
			return derr
		}
		drafts, derr := booking.AdmitBatch(spec, booking.Slots(existing))
		if derr != nil {
			return derr
		}

		for _, draft := range drafts {
			id, derr := tx.Bookings().Create(ctx, tx.DB(), draft)
			if derr != nil {
				if infra.IsKind(derr, infra.KindConflict) {
					return &booking.ConflictError{Date: draft.Date()}
				}
				return derr
			}
			draft.ID = id
			created = append(created, draft)
		}
		return nil
	})
	if err != nil {
		return nil, translateWriteErr(err, ErrHallNotFound, dates[0])
	}

	result := &CreateRecurringResult{
		BookingIDs: make([]int64, len(created)),
		Dates:      make([]time.Time, len(created)),
	}
	for i, b := range created {
		result.BookingIDs[i] = b.ID
		result.Dates[i] = b.Date()
	}

	slog.Info("recurring bookings created", "hall_id", spec.HallID, "mode", string(spec.Mode), "count", len(created))
	uc.afterWrite(ctx, shared.EventBookingCreated, created)
	return result, nil
}

func (uc *bookingCommandsImpl) DeleteBooking(ctx context.Context, id int64, scope DeleteScope) (*DeleteBookingResult, error) {
	if scope != DeleteScopeSingle && scope != DeleteScopeGroup {
		return nil, ErrInvalidDeleteScope
	}

	var deleted []booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted = nil
		ref, derr := tx.Reads().BookingByID(ctx, id)
		if derr != nil {
			return derr
		}

		if scope == DeleteScopeSingle {
			if derr = tx.Bookings().Delete(ctx, tx.DB(), id); derr != nil {
				return derr
			}
			deleted = []booking.Booking{ref}
			return nil
		}

		candidates, derr := tx.Reads().GroupCandidates(ctx, ref.HallID, ref.UserName, ref.Purpose)
		if derr != nil {
			return derr
		}
		ids := booking.FindRecurringGroup(ref, candidates)
		if _, derr = tx.Bookings().DeleteByIDs(ctx, tx.DB(), ids); derr != nil {
			return derr
		}
		deleted = pickByIDs(ref, candidates, ids)
		return nil
	})
	if err != nil {
		return nil, translateWriteErr(err, ErrBookingNotFound, time.Time{})
	}

	result := &DeleteBookingResult{DeletedIDs: make([]int64, len(deleted))}
	for i, b := range deleted {
		result.DeletedIDs[i] = b.ID
	}

	slog.Info("bookings deleted", "booking_id", id, "scope", string(scope), "count", len(deleted))
	uc.afterWrite(ctx, shared.EventBookingDeleted, deleted)
	return result, nil
}

func (uc *bookingCommandsImpl) CheckWindow(_ context.Context, date string) (booking.Decision, error) {
	target, err := booking.ParseDate(date, uc.policy.Location)
	if err != nil {
		return booking.Decision{}, err
	}
	return uc.policy.Window.Evaluate(uc.clock.Now(), target), nil
}

func (uc *bookingCommandsImpl) recurrenceSpec(req CreateRecurringRequest) (booking.RecurrenceSpec, error) {
	base, err := booking.ParseDate(req.BaseDate, uc.policy.Location)
	if err != nil {
		return booking.RecurrenceSpec{}, err
	}
	start, err := booking.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return booking.RecurrenceSpec{}, err
	}
	end, err := booking.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return booking.RecurrenceSpec{}, err
	}

	spec := booking.RecurrenceSpec{
		HallID:       req.HallID,
		UserName:     patch.OrDefault(strings.TrimSpace(req.UserName), uc.policy.RecurringUserName),
		UserPhone:    patch.OrDefault(strings.TrimSpace(req.UserPhone), uc.policy.RecurringUserPhone),
		Purpose:      req.Purpose,
		BaseDate:     base,
		StartTime:    start,
		EndTime:      end,
		Mode:         booking.RecurrenceMode(strings.ToLower(strings.TrimSpace(req.Mode))),
		WeeklyCount:  req.WeeklyCount,
		WeekOrdinals: req.WeekOrdinals,
	}
	if err := spec.Validate(); err != nil {
		return booking.RecurrenceSpec{}, err
	}
	if spec.Mode == booking.ModeWeekly && uc.policy.MaxWeeklyCount > 0 && spec.WeeklyCount > uc.policy.MaxWeeklyCount {
		return booking.RecurrenceSpec{}, ErrWeeklyCountExceedsLimit
	}
	return spec, nil
}

// afterWrite runs once the transaction has committed; failures are logged only.
func (uc *bookingCommandsImpl) afterWrite(ctx context.Context, eventType string, changed []booking.Booking) {
	if len(changed) == 0 {
		return
	}

	dates := make([]time.Time, len(changed))
	events := make([]shared.BookingEvent, len(changed))
	for i, b := range changed {
		dates[i] = b.Date()
		events[i] = shared.NewBookingEvent(eventType, b)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, dates)
	}
	if uc.events != nil {
		if err := uc.events.Publish(ctx, events); err != nil {
			slog.Warn("failed to publish booking events", "type", eventType, "count", len(events), "error", err.Error())
		}
	}
}

func translateWriteErr(err error, notFound error, date time.Time) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return notFound
	case infra.IsKind(err, infra.KindConflict):
		return &booking.ConflictError{Date: date}
	default:
		return err
	}
}

// pickByIDs returns the bookings named by the sorted ids, ordered by id.
func pickByIDs(ref booking.Booking, candidates []booking.Booking, ids []int64) []booking.Booking {
	picked := make([]booking.Booking, 0, len(ids))
	for _, b := range slices.Concat([]booking.Booking{ref}, candidates) {
		if _, found := slices.BinarySearch(ids, b.ID); !found {
			continue
		}
		if slices.ContainsFunc(picked, func(p booking.Booking) bool { return p.ID == b.ID }) {
			continue
		}
		picked = append(picked, b)
	}
	slices.SortFunc(picked, func(a, b booking.Booking) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return picked
}
