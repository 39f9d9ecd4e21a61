package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/antoninkin/parkmate-app/internal/handler/api"
	"github.com/antoninkin/parkmate-app/internal/handler/middleware"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Quote       *api.QuoteHandler
	Location    *api.LocationHandler
	Payment     *api.PaymentHandler
	Admin       *api.AdminHandler
	Car         *api.CarHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Quote.Quote},
			{Method: http.MethodGet, Path: "/locations", Handler: h.Location.List},
			{Method: http.MethodGet, Path: "/locations/:id", Handler: h.Location.Get},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Reservation.ConfirmPayment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			})
		}

		cars := apiGroup.Group("/cars")
		cars.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cars, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Car.List},
				{Method: http.MethodPost, Path: "", Handler: h.Car.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Car.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Car.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Car.Delete},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Admin.Revenue, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/users/:id/reservations", Handler: h.Admin.UserReservations, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/users/:id/payments", Handler: h.Admin.UserPayments, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/users/:id/cars", Handler: h.Admin.UserCars, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/locations", Handler: h.Location.Create, Mw: adminOnly},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
