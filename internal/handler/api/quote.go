package api

import (
	"net/http"

	reqdto "github.com/antoninkin/parkmate-app/internal/handler/dto/request"
	resdto "github.com/antoninkin/parkmate-app/internal/handler/dto/response"
	"github.com/antoninkin/parkmate-app/internal/handler/httperr"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Price quote
// @Description Price an interval with the current rate table, split into day and night segments
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Interval"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	breakdown, err := h.q.Quote(req.Arrival, req.Exit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}
