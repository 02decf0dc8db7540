package api

import (
	"errors"
	"net/http"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/pkg/ptr"

	"github.com/gin-gonic/gin"
)

type conflictDetail struct {
	Date string `json:"date"`
}

type windowDetail struct {
	OpensAt *string `json:"opens_at,omitempty"`
}

// abortWithUsecaseError maps command and query errors onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message.
func abortWithUsecaseError(c *gin.Context, err error) {
	var conflict *booking.ConflictError
	var closed *booking.WindowClosedError

	switch {
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "The hall is already booked for the requested time",
			conflictDetail{Date: conflict.Date.Format(booking.DateLayout)})
	case errors.As(err, &closed):
		httperr.AbortWithError(c, http.StatusForbidden, err, closed.Reason,
			windowDetail{OpensAt: ptr.FormatTime(closed.OpensAt, booking.LocalLayout)})
	case errs.Is(err, booking.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
	case errs.Is(err, errs.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case errs.Is(err, errs.ErrHallNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hall not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// Validation errors are created from fixed messages and safe to show.
func validationMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return "Invalid request"
	}
	return msg
}
