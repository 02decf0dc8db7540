package bootstrap

import (
	"fmt"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
		NewWindowPolicy,
		NewBookingPolicy,
	),
)

// NewLocation is the organization timezone every stored timestamp is read in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}

func NewWindowPolicy(cfg config.Config, loc *time.Location) (booking.WindowPolicy, error) {
	wd, err := cfg.Booking.OpenWeekday()
	if err != nil {
		return booking.WindowPolicy{}, err
	}
	if cfg.Booking.WindowOpenHour < 0 || cfg.Booking.WindowOpenHour > 23 {
		return booking.WindowPolicy{}, fmt.Errorf("invalid BOOKING_WINDOW_OPEN_HOUR %d", cfg.Booking.WindowOpenHour)
	}
	return booking.NewWindowPolicy(loc, wd, cfg.Booking.WindowOpenHour), nil
}

func NewBookingPolicy(cfg config.Config, loc *time.Location, window booking.WindowPolicy) commands.BookingPolicy {
	return commands.BookingPolicy{
		Location:           loc,
		Window:             window,
		MaxWeeklyCount:     cfg.Booking.MaxWeeklyCount,
		RecurringUserName:  cfg.Booking.RecurringUserName,
		RecurringUserPhone: cfg.Booking.RecurringUserPhone,
	}
}
