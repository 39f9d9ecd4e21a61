package api

import (
	"net/http"

	"github.com/antoninkin/parkmate-app/internal/domain/user"
	reqdto "github.com/antoninkin/parkmate-app/internal/handler/dto/request"
	resdto "github.com/antoninkin/parkmate-app/internal/handler/dto/response"
	"github.com/antoninkin/parkmate-app/internal/handler/httperr"
	"github.com/antoninkin/parkmate-app/internal/handler/middleware"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	reservations queries.ReservationQueries
	payments     queries.PaymentQueries
	revenue      queries.RevenueQueries
	cars         queries.CarQueries
}

func NewAdminHandler(
	reservations queries.ReservationQueries,
	payments queries.PaymentQueries,
	revenue queries.RevenueQueries,
	cars queries.CarQueries,
) *AdminHandler {
	return &AdminHandler{reservations: reservations, payments: payments, revenue: revenue, cars: cars}
}

// @Summary Revenue report
// @Description Completed payments summed by month for a year, optionally one month and one location
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int false "Month (1-12)"
// @Param locationId query string false "Location ID"
// @Success 200 {object} resdto.RevenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/revenue [get]
func (h *AdminHandler) Revenue(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var query reqdto.RevenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location id", nil)
		return
	}
	report, err := h.revenue.Revenue(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueReport(report))
}

// @Summary User reservations
// @Description Reservation history of any user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/users/{id}/reservations [get]
func (h *AdminHandler) UserReservations(c *gin.Context) {
	actor, userID, ok := h.target(c)
	if !ok {
		return
	}
	views, err := h.reservations.ListByUser(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary User payments
// @Description Payment history of any user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/users/{id}/payments [get]
func (h *AdminHandler) UserPayments(c *gin.Context) {
	actor, userID, ok := h.target(c)
	if !ok {
		return
	}
	views, err := h.payments.ListByUser(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}

// @Summary User cars
// @Description Cars registered by any user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/users/{id}/cars [get]
func (h *AdminHandler) UserCars(c *gin.Context) {
	actor, userID, ok := h.target(c)
	if !ok {
		return
	}
	views, err := h.cars.ListByUser(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarViews(views))
}

// target resolves the caller and the user named in the path, aborting on failure.
func (h *AdminHandler) target(c *gin.Context) (user.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return user.Actor{}, uuid.Nil, false
	}
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return user.Actor{}, uuid.Nil, false
	}
	return actor, userID, true
}
