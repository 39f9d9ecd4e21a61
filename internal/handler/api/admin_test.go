//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/handler/api"
	resdto "github.com/antoninkin/parkmate-app/internal/handler/dto/response"
	"github.com/antoninkin/parkmate-app/internal/handler/middleware"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"
	"github.com/antoninkin/parkmate-app/tests/common/builder"
	"github.com/antoninkin/parkmate-app/tests/common/httptest"
	queriesmock "github.com/antoninkin/parkmate-app/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *queriesmock.MockReservationQueries
	mockPayments     *queriesmock.MockPaymentQueries
	mockRevenue      *queriesmock.MockRevenueQueries
	mockCars         *queriesmock.MockCarQueries
	mockPaymentList  *queriesmock.MockPaymentQueries
	admin            user.Actor
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockPayments = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.mockRevenue = queriesmock.NewMockRevenueQueries(s.mockCtrl)
	s.mockCars = queriesmock.NewMockCarQueries(s.mockCtrl)
	s.mockPaymentList = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.admin = user.NewActor(uuid.New(), user.RoleAdmin)

	admin := api.NewAdminHandler(s.mockReservations, s.mockPayments, s.mockRevenue, s.mockCars)
	payments := api.NewPaymentHandler(s.mockPaymentList)

	withActor := func(c *gin.Context) {
		middleware.SetActor(c, s.admin)
		c.Next()
	}
	s.router.GET("/admin/revenue", withActor, admin.Revenue)
	s.router.GET("/admin/users/:id/reservations", withActor, admin.UserReservations)
	s.router.GET("/admin/users/:id/payments", withActor, admin.UserPayments)
	s.router.GET("/admin/users/:id/cars", withActor, admin.UserCars)
	s.router.GET("/payments", withActor, payments.List)
	s.router.GET("/payments/anonymous", payments.List)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestRevenue() {
	locationID := uuid.New()

	s.Run("success: yearly report with month filter and location", func() {
		month := 3
		s.mockRevenue.EXPECT().Revenue(gomock.Any(), s.admin, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, f queries.RevenueFilter) (*queries.RevenueReport, error) {
				s.Equal(2026, f.Year)
				s.Require().NotNil(f.Month)
				s.Equal(3, *f.Month)
				s.Require().NotNil(f.LocationID)
				s.Equal(locationID, *f.LocationID)
				return &queries.RevenueReport{
					Year:         2026,
					Month:        &month,
					LocationID:   &locationID,
					TotalCents:   4700,
					PaymentCount: 2,
					Months:       []queries.MonthlyRevenue{{Month: 3, TotalCents: 4700, PaymentCount: 2}},
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/revenue?year=2026&month=3&locationId="+locationID.String(), nil, "")

		var body resdto.RevenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("47.00", body.Total)
		s.Equal(2, body.PaymentCount)
		s.Require().Len(body.Months, 1)
		s.Equal("47.00", body.Months[0].Total)
	})

	s.Run("error: year is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/revenue?month=3", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: malformed location id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/revenue?year=2026&locationId=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid location id")
	})

	s.Run("error: month out of range", func() {
		s.mockRevenue.EXPECT().Revenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidRevenuePeriod)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/revenue?year=2026&month=13", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid revenue period")
	})

	s.Run("error: non-admin", func() {
		s.mockRevenue.EXPECT().Revenue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrAdminOnly)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/revenue?year=2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *AdminHandlerTestSuite) TestUserHistory() {
	userID := uuid.New()

	s.Run("reservations of the named user", func() {
		view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.UserID = userID }).BuildView()
		s.mockReservations.EXPECT().ListByUser(gomock.Any(), s.admin, userID).Return([]*queries.ReservationView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/"+userID.String()+"/reservations", nil, "")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(userID, body[0].UserID)
	})

	s.Run("payments of the named user", func() {
		s.mockPayments.EXPECT().ListByUser(gomock.Any(), s.admin, userID).Return([]*queries.PaymentView{{
			ID:           uuid.New(),
			UserID:       userID,
			LocationName: "Central Garage",
			AmountCents:  2350,
			Method:       "apple-pay",
			Status:       "completed",
		}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/"+userID.String()+"/payments", nil, "")

		var body []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("23.50", body[0].Amount)
		s.Equal("apple-pay", body[0].Method)
	})

	s.Run("cars of the named user", func() {
		view := builder.NewCarBuilder().OwnedBy(userID).BuildView()
		s.mockCars.EXPECT().ListByUser(gomock.Any(), s.admin, userID).Return([]*queries.CarView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/"+userID.String()+"/cars", nil, "")

		var body []resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(userID, body[0].UserID)
		s.Equal("KA-01-1234", body[0].LicensePlate)
	})

	s.Run("error: cars of another user without admin rights", func() {
		s.mockCars.EXPECT().ListByUser(gomock.Any(), gomock.Any(), userID).Return(nil, queries.ErrAccessDenied)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/"+userID.String()+"/cars", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: malformed user id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/me/payments", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})
}

func (s *AdminHandlerTestSuite) TestOwnPayments() {
	s.Run("lists the caller's payments", func() {
		s.mockPaymentList.EXPECT().ListByUser(gomock.Any(), s.admin, s.admin.ID).Return([]*queries.PaymentView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments", nil, "")

		var body []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: no actor in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/anonymous", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
