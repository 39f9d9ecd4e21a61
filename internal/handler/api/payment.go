package api

import (
	"net/http"

	resdto "github.com/antoninkin/parkmate-app/internal/handler/dto/response"
	"github.com/antoninkin/parkmate-app/internal/handler/httperr"
	"github.com/antoninkin/parkmate-app/internal/handler/middleware"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	q queries.PaymentQueries
}

func NewPaymentHandler(q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{q: q}
}

// @Summary List my payments
// @Description Payment history of the caller, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} httperr.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), actor, actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentViews(views))
}
