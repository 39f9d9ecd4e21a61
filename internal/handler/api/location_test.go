//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/handler/api"
	resdto "github.com/antoninkin/parkmate-app/internal/handler/dto/response"
	"github.com/antoninkin/parkmate-app/internal/handler/middleware"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"
	"github.com/antoninkin/parkmate-app/tests/common/builder"
	"github.com/antoninkin/parkmate-app/tests/common/httptest"
	"github.com/antoninkin/parkmate-app/tests/common/testutil"
	commandsmock "github.com/antoninkin/parkmate-app/tests/mock/commands"
	queriesmock "github.com/antoninkin/parkmate-app/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LocationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLocationCommands
	mockQueries  *queriesmock.MockLocationQueries
	admin        user.Actor
}

func (s *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLocationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLocationQueries(s.mockCtrl)
	h := api.NewLocationHandler(s.mockCommands, s.mockQueries)
	s.admin = user.NewActor(uuid.New(), user.RoleAdmin)

	s.router.GET("/locations", h.List)
	s.router.GET("/locations/:id", h.Get)
	s.router.POST("/admin/locations", func(c *gin.Context) {
		middleware.SetActor(c, s.admin)
		c.Next()
	}, h.Create)
}

func (s *LocationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLocationHandlerSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}

func (s *LocationHandlerTestSuite) TestList() {
	full := builder.NewLocationBuilder().WithSpots(0).BuildView()
	open := builder.NewLocationBuilder().BuildView()
	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.LocationView{open, full}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations", nil, "")

	var body []resdto.LocationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal(10, body[0].AvailableSpots)
	s.Equal(0, body[1].AvailableSpots)
}

func (s *LocationHandlerTestSuite) TestGet() {
	view := builder.NewLocationBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations/"+view.ID.String(), nil, "")

		var body resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
		s.Equal(view.Latitude, body.Latitude)
	})

	s.Run("error: unknown location", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrLocationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Location not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations/garage-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid location id")
	})
}

func (s *LocationHandlerTestSuite) TestCreate() {
	b := builder.NewLocationBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.admin, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, in commands.CreateLocationInput) (*commands.LocationResult, error) {
				s.Equal(b.Name, in.Name)
				s.Equal(b.Latitude, in.Latitude)
				return &commands.LocationResult{Location: b.BuildDomain()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/locations", reqBody, "")

		var body resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/locations/" + b.ID.String()})
	})

	validation := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing name", testutil.Field("name", nil)},
		{"missing latitude", testutil.Field("latitude", nil)},
		{"missing longitude", testutil.Field("longitude", nil)},
		{"negative capacity", testutil.Field("capacity", -1)},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/locations", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	domain := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"coordinates out of range", location.ErrInvalidCoordinates, http.StatusBadRequest, "Coordinates are out of range"},
		{"more spots than capacity", location.ErrInvalidAvailability, http.StatusBadRequest, "between 0 and capacity"},
		{"not an admin", commands.ErrAdminOnly, http.StatusForbidden, "Access denied"},
		{"store unreachable", errs.Mark(errs.New("conn reset"), errs.ErrGatewayUnavailable), http.StatusServiceUnavailable, "retry"},
	}
	for _, tc := range domain {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/locations", reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}
