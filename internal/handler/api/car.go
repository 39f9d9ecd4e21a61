package api

import (
	"net/http"

	"github.com/antoninkin/parkmate-app/internal/domain/user"
	reqdto "github.com/antoninkin/parkmate-app/internal/handler/dto/request"
	resdto "github.com/antoninkin/parkmate-app/internal/handler/dto/response"
	"github.com/antoninkin/parkmate-app/internal/handler/httperr"
	"github.com/antoninkin/parkmate-app/internal/handler/middleware"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	cmds commands.CarCommands
	q    queries.CarQueries
}

func NewCarHandler(cmds commands.CarCommands, q queries.CarQueries) *CarHandler {
	return &CarHandler{cmds: cmds, q: q}
}

// @Summary List my cars
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CarResponse
// @Failure 401 {object} httperr.Response
// @Router /cars [get]
func (h *CarHandler) List(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromCarViews(views))
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	actor, id, ok := carTarget(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Register car
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CarRequest true "Car"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Router /cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/cars/"+result.Car.ID().String())
	c.JSON(http.StatusCreated, resdto.FromCar(result.Car))
}

// @Summary Update car
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.CarRequest true "Car"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	actor, id, ok := carTarget(c)
	if !ok {
		return
	}
	var req reqdto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCar(result.Car))
}

// @Summary Delete car
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	actor, id, ok := carTarget(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func carTarget(c *gin.Context) (user.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return user.Actor{}, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car id", nil)
		return user.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}
