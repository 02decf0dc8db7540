package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hall-booking/internal/handler/api"
	"hall-booking/internal/handler/middleware"
	"hall-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Hall    *api.HallHandler
	Booking *api.BookingHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/halls", Handler: h.Hall.List},
			{Method: http.MethodGet, Path: "/halls/:id/bookings", Handler: h.Hall.ListBookings},
			{Method: http.MethodGet, Path: "/schedule", Handler: h.Booking.Schedule, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodGet, Path: "/booking-window", Handler: h.Booking.Window, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(middleware.NoStore())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.List},
				{Method: http.MethodPost, Path: "/bookings/recurring", Handler: h.Admin.CreateRecurring},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Admin.Delete},
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
