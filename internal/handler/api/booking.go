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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve a hall for one time range on one date
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.BookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, res)
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Day schedule
// @Description Every hall with its bookings for one date; today when date is omitted
// @Tags bookings
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /schedule [get]
func (h *BookingHandler) Schedule(c *gin.Context) {
	date, ok := optionalDate(c, "date")
	if !ok {
		return
	}
	schedule, err := h.q.DaySchedule(c.Request.Context(), date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromDaySchedule(schedule)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Booking window
// @Description Whether a single booking on the date is accepted right now
// @Tags bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.WindowResponse
// @Failure 400 {object} map[string]string
// @Router /booking-window [get]
func (h *BookingHandler) Window(c *gin.Context) {
	date := c.Query("date")
	decision, err := h.cmds.CheckWindow(c.Request.Context(), date)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDecision(date, decision))
}
