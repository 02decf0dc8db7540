package queries

import (
	"time"
)

// HallView represents read-optimized hall data
type HallView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingView represents a booking joined with its hall name.
// Times are in the organization location.
type BookingView struct {
	ID        int64     `json:"id"`
	HallID    int64     `json:"hall_id"`
	HallName  string    `json:"hall_name"`
	UserName  string    `json:"user_name"`
	UserPhone string    `json:"user_phone"`
	Purpose   string    `json:"purpose"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// DaySchedule is the board of one calendar day: every hall in id order,
// each with its bookings ordered by start time.
type DaySchedule struct {
	Date  string         `json:"date"`
	Halls []HallSchedule `json:"halls"`
}

type HallSchedule struct {
	HallID   int64          `json:"hall_id"`
	HallName string         `json:"hall_name"`
	Bookings []*BookingView `json:"bookings"`
}

type ListBookingsFilter struct {
	From *time.Time
}
