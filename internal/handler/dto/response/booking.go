package response

import (
	"fmt"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/pkg/ptr"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Timestamps are rendered as naive wall clock in the organization timezone.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, fmt.Errorf("expected time.Time, got %T", src)
				}
				return t.Format(booking.LocalLayout), nil
			},
		},
	},
}

type HallResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromHallViews(views []*queries.HallView) []*HallResponse {
	res := make([]*HallResponse, len(views))
	for i, v := range views {
		res[i] = &HallResponse{ID: v.ID, Name: v.Name}
	}
	return res
}

type BookingResponse struct {
	ID        int64  `json:"id"`
	HallID    int64  `json:"hall_id"`
	HallName  string `json:"hall_name"`
	UserName  string `json:"user_name"`
	UserPhone string `json:"user_phone"`
	Purpose   string `json:"purpose"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CreatedAt string `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, v, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res[i] = item
	}
	return res, nil
}

type HallScheduleResponse struct {
	HallID   int64              `json:"hall_id"`
	HallName string             `json:"hall_name"`
	Bookings []*BookingResponse `json:"bookings"`
}

type DayScheduleResponse struct {
	Date  string                  `json:"date"`
	Halls []*HallScheduleResponse `json:"halls"`
}

func FromDaySchedule(s *queries.DaySchedule) (*DayScheduleResponse, error) {
	res := &DayScheduleResponse{
		Date:  s.Date,
		Halls: make([]*HallScheduleResponse, len(s.Halls)),
	}
	for i, h := range s.Halls {
		items, err := FromBookingViews(h.Bookings)
		if err != nil {
			return nil, err
		}
		res.Halls[i] = &HallScheduleResponse{
			HallID:   h.HallID,
			HallName: h.HallName,
			Bookings: items,
		}
	}
	return res, nil
}

type WindowResponse struct {
	Date    string  `json:"date"`
	Allowed bool    `json:"allowed"`
	Reason  string  `json:"reason,omitempty"`
	OpensAt *string `json:"opens_at,omitempty"`
}

func FromDecision(date string, d booking.Decision) *WindowResponse {
	return &WindowResponse{
		Date:    date,
		Allowed: d.Allowed,
		Reason:  d.Reason,
		OpensAt: ptr.FormatTime(d.OpensAt, booking.LocalLayout),
	}
}

type CreateRecurringResponse struct {
	BookingIDs []int64  `json:"booking_ids"`
	Dates      []string `json:"dates"`
	Count      int      `json:"count"`
}

func FromRecurringResult(r *commands.CreateRecurringResult) *CreateRecurringResponse {
	dates := make([]string, len(r.Dates))
	for i, d := range r.Dates {
		dates[i] = d.Format(booking.DateLayout)
	}
	return &CreateRecurringResponse{
		BookingIDs: r.BookingIDs,
		Dates:      dates,
		Count:      len(r.BookingIDs),
	}
}

type DeleteBookingResponse struct {
	DeletedIDs []int64 `json:"deleted_ids"`
	Count      int     `json:"count"`
}

func FromDeleteResult(r *commands.DeleteBookingResult) *DeleteBookingResponse {
	return &DeleteBookingResponse{
		DeletedIDs: r.DeletedIDs,
		Count:      len(r.DeletedIDs),
	}
}
