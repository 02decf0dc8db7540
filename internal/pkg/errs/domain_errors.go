package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	ErrHallNotFound    = errors.New("hall not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrInvalidCursor = errors.New("invalid cursor")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
