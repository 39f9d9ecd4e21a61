//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/handler/api"
	resdto "github.com/antoninkin/parkmate-app/internal/handler/dto/response"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"
	"github.com/antoninkin/parkmate-app/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := api.NewQuoteHandler(queries.NewQuoteQueries(pricing.DefaultRateTable()))
	r.POST("/quotes", h.Quote)
	return r
}

func TestQuoteHandler_Quote(t *testing.T) {
	router := newQuoteRouter()

	t.Run("splits a stay across the evening boundary", func(t *testing.T) {
		body := map[string]any{
			"arrival": "2026-03-02T20:00:00Z",
			"exit":    "2026-03-02T22:00:00Z",
		}

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/quotes", body, "")

		var resp resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		require.Len(t, resp.Segments, 2)
		assert.Equal(t, "day", resp.Segments[0].Band)
		assert.Equal(t, 60, resp.Segments[0].Minutes)
		assert.Equal(t, "night", resp.Segments[1].Band)
		assert.Equal(t, resp.Segments[0].ChargeCents+resp.Segments[1].ChargeCents, resp.TotalCents)
	})

	t.Run("rejects exit before arrival", func(t *testing.T) {
		body := map[string]any{
			"arrival": "2026-03-02T12:00:00Z",
			"exit":    "2026-03-02T11:00:00Z",
		}
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/quotes", body, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Exit time must be after arrival time")
	})

	t.Run("rejects a stay longer than the maximum", func(t *testing.T) {
		body := map[string]any{
			"arrival": "2026-03-02T12:00:00Z",
			"exit":    "2226-03-02T12:00:00Z",
		}
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/quotes", body, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Bookings cannot be longer than 31 days")
	})

	t.Run("rejects missing exit", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/quotes", map[string]any{"arrival": "2026-03-02T12:00:00Z"}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})
}
