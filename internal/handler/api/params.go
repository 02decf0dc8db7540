package api

import (
	"net/http"
	"strconv"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidParam = errs.New("invalid path parameter")

func errOrInvalid(err error) error {
	if err != nil {
		return err
	}
	return errInvalidParam
}

// parseID reads the positive ":id" path parameter or aborts with 400 and msg.
func parseID(c *gin.Context, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errOrInvalid(err), msg, nil)
		return 0, false
	}
	return id, true
}

// optionalDate parses a YYYY-MM-DD query value. Absent yields the zero time.
// Only the calendar date matters; the usecase places it in the organization zone.
func optionalDate(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, true
	}
	d, err := booking.ParseDate(raw, time.UTC)
	if err != nil {
		abortWithUsecaseError(c, err)
		return time.Time{}, false
	}
	return d, true
}
