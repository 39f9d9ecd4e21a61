package api

import (
	"net/http"

	reqdto "github.com/antoninkin/parkmate-app/internal/handler/dto/request"
	resdto "github.com/antoninkin/parkmate-app/internal/handler/dto/response"
	"github.com/antoninkin/parkmate-app/internal/handler/httperr"
	"github.com/antoninkin/parkmate-app/internal/handler/middleware"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LocationHandler struct {
	cmds commands.LocationCommands
	q    queries.LocationQueries
}

func NewLocationHandler(cmds commands.LocationCommands, q queries.LocationQueries) *LocationHandler {
	return &LocationHandler{cmds: cmds, q: q}
}

// @Summary List locations
// @Description Parking locations with live availability for the map
// @Tags locations
// @Produce json
// @Success 200 {array} resdto.LocationResponse
// @Failure 503 {object} httperr.Response
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocationViews(views))
}

// @Summary Get location
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [get]
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocationView(view))
}

// @Summary Create location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location"
// @Success 201 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/locations/"+result.Location.ID().String())
	c.JSON(http.StatusCreated, resdto.FromLocation(result.Location))
}
