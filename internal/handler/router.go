package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nailbook/internal/domain/account"
	"nailbook/internal/handler/api"
	"nailbook/internal/handler/middleware"
	"nailbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	webhookHandler *api.WebhookHandler,
	productHandler *api.ProductHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, authHandler, bookingHandler, webhookHandler, productHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	webhookHandler *api.WebhookHandler,
	productHandler *api.ProductHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.Static("/uploads", cfg.Upload.Dir)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
		})

		products := apiGroup.Group("/products")
		addRoutes(products, []route{
			{Method: http.MethodGet, Path: "", Handler: productHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: productHandler.Get},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.TakenTimes},
			{Method: http.MethodGet, Path: "/mybookings", Handler: bookingHandler.MyBookings},
			// Legacy notification path kept alongside /payment/notification
			{Method: http.MethodPost, Path: "/notification", Handler: webhookHandler.Notification},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/mybookings", Handler: bookingHandler.MyBookings},
			{Method: http.MethodPost, Path: "/payment/notification", Handler: webhookHandler.Notification},
			{Method: http.MethodPost, Path: "/admin/login", Handler: authHandler.AdminLogin},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(account.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/products", Handler: adminHandler.ListProducts},
			{Method: http.MethodPost, Path: "/products", Handler: adminHandler.CreateProduct},
			{Method: http.MethodPut, Path: "/products/:id", Handler: adminHandler.UpdateProduct},
			{Method: http.MethodDelete, Path: "/products/:id", Handler: adminHandler.DeleteProduct},
			{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
			{Method: http.MethodPut, Path: "/bookings/:id", Handler: adminHandler.UpdateBookingStatus},
			{Method: http.MethodPut, Path: "/bookings/:id/status", Handler: adminHandler.UpdateBookingStatus},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: adminHandler.DeleteBooking},
			{Method: http.MethodGet, Path: "/total-pemasukan", Handler: adminHandler.TotalPemasukan},
		})
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
