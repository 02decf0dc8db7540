package api

import (
	"net/http"
	"strconv"

	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the management pages: the booking list, series
// registration and deletion.
type AdminHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewAdminHandler(cmds commands.BookingCommands, q queries.BookingQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description List bookings ordered by start time with keyset pagination
// @Tags admin
// @Produce json
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from the previous page"
// @Param from query string false "Only bookings starting on or after this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	from, ok := optionalDate(c, "from")
	if !ok {
		return
	}

	filter := queries.ListBookingsFilter{}
	if !from.IsZero() {
		filter.From = &from
	}
	cursor := &queries.Cursor{After: c.Query("after")}

	views, next, err := h.q.ListBookings(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	items, err := resdto.FromBookingViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	var nextCursor *string
	if next != nil {
		nextCursor = &next.After
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":    items,
		"next_cursor": nextCursor,
	})
}

// @Summary Create recurring bookings
// @Description Register a weekly or monthly series; either every date is booked or none
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRecurringRequest true "Create recurring request"
// @Success 201 {object} resdto.CreateRecurringResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/recurring [post]
func (h *AdminHandler) CreateRecurring(c *gin.Context) {
	var req reqdto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateRecurringBookings(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRecurringResult(result))
}

// @Summary Delete booking
// @Description Delete one booking, or with scope=group every booking of its series
// @Tags admin
// @Produce json
// @Param id path int true "Booking ID"
// @Param scope query string false "single (default) or group"
// @Success 200 {object} resdto.DeleteBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking id")
	if !ok {
		return
	}
	scope, err := commands.ParseDeleteScope(c.Query("scope"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	result, err := h.cmds.DeleteBooking(c.Request.Context(), id, scope)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeleteResult(result))
}
