package api

import (
	"net/http"
	"time"

	"hall-booking/internal/domain/booking"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HallHandler struct {
	halls    queries.HallQueries
	bookings queries.BookingQueries
}

func NewHallHandler(halls queries.HallQueries, bookings queries.BookingQueries) *HallHandler {
	return &HallHandler{halls: halls, bookings: bookings}
}

// @Summary List halls
// @Description List every bookable hall in id order
// @Tags halls
// @Produce json
// @Success 200 {object} map[string][]resdto.HallResponse
// @Failure 500 {object} map[string]string
// @Router /halls [get]
func (h *HallHandler) List(c *gin.Context) {
	halls, err := h.halls.ListHalls(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"halls": resdto.FromHallViews(halls)})
}

// @Summary List hall bookings
// @Description List the bookings of one hall between two dates, both inclusive
// @Tags halls
// @Produce json
// @Param id path int true "Hall ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} map[string][]resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /halls/{id}/bookings [get]
func (h *HallHandler) ListBookings(c *gin.Context) {
	id, ok := parseID(c, "Invalid hall id")
	if !ok {
		return
	}
	from, err := booking.ParseDate(c.Query("from"), time.UTC)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	to, err := booking.ParseDate(c.Query("to"), time.UTC)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	views, err := h.bookings.ListByHallRange(c.Request.Context(), id, from, to)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	items, err := resdto.FromBookingViews(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": items})
}
