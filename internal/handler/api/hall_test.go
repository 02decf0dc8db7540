//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/handler/api"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/queries"
	"hall-booking/tests/common/builder"
	"hall-booking/tests/common/httptest"
	queriesmock "hall-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HallHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockHalls    *queriesmock.MockHallQueries
	mockBookings *queriesmock.MockBookingQueries
}

func (s *HallHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockHalls = queriesmock.NewMockHallQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	handler := api.NewHallHandler(s.mockHalls, s.mockBookings)

	s.router.GET("/halls", handler.List)
	s.router.GET("/halls/:id/bookings", handler.ListBookings)
}

func (s *HallHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHallHandlerSuite(t *testing.T) {
	suite.Run(t, new(HallHandlerTestSuite))
}

func (s *HallHandlerTestSuite) TestList() {
	s.mockHalls.EXPECT().ListHalls(gomock.Any()).Return([]*queries.HallView{
		{ID: 1, Name: "Main Hall"},
		{ID: 2, Name: "Education Hall"},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls", nil, "")

	var body struct {
		Halls []resdto.HallResponse `json:"halls"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Halls, 2)
	s.Equal("Education Hall", body.Halls[1].Name)
}

func (s *HallHandlerTestSuite) TestListBookings() {
	s.Run("success", func() {
		s.mockBookings.EXPECT().ListByHallRange(gomock.Any(), int64(2), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ int64, from, to time.Time) ([]*queries.BookingView, error) {
				s.Equal("2024-03-01", from.Format(booking.DateLayout))
				s.Equal("2024-03-31", to.Format(booking.DateLayout))
				return []*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls/2/bookings?from=2024-03-01&to=2024-03-31", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: missing range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls/2/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: unknown hall", func() {
		s.mockBookings.EXPECT().ListByHallRange(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).Return(nil, queries.ErrHallNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls/9/bookings?from=2024-03-01&to=2024-03-31", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hall not found")
	})

	s.Run("error: invalid hall id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls/x/bookings?from=2024-03-01&to=2024-03-31", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hall id")
	})
}
