package request

import (
	"hall-booking/internal/pkg/patch"
	"hall-booking/internal/usecase/commands"
)

// Dates are YYYY-MM-DD and times HH:MM in the organization's timezone.
type CreateBookingRequest struct {
	HallID    int64  `json:"hall_id" binding:"required,min=1"`
	UserName  string `json:"user_name" binding:"required,max=50"`
	UserPhone string `json:"user_phone" binding:"required,max=20"`
	Purpose   string `json:"purpose" binding:"required,max=200"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		HallID:    r.HallID,
		UserName:  r.UserName,
		UserPhone: r.UserPhone,
		Purpose:   r.Purpose,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type CreateRecurringRequest struct {
	HallID       int64   `json:"hall_id" binding:"required,min=1"`
	UserName     *string `json:"user_name" binding:"omitempty,max=50"`
	UserPhone    *string `json:"user_phone" binding:"omitempty,max=20"`
	Purpose      string  `json:"purpose" binding:"required,max=200"`
	BaseDate     string  `json:"base_date" binding:"required"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	Mode         string  `json:"mode" binding:"required,oneof=weekly monthly"`
	WeeklyCount  *int    `json:"weekly_count" binding:"omitempty,min=1"`
	WeekOrdinals []int   `json:"week_ordinals" binding:"omitempty,dive,min=1,max=5"`
}

func (r *CreateRecurringRequest) ToCommand() commands.CreateRecurringRequest {
	return commands.CreateRecurringRequest{
		HallID:       r.HallID,
		UserName:     patch.Coalesce(r.UserName, ""),
		UserPhone:    patch.Coalesce(r.UserPhone, ""),
		Purpose:      r.Purpose,
		BaseDate:     r.BaseDate,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Mode:         r.Mode,
		WeeklyCount:  patch.Coalesce(r.WeeklyCount, 0),
		WeekOrdinals: r.WeekOrdinals,
	}
}
