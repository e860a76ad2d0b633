package router

import (
	"github.com/gescom/backend/internal/infrastructure/config"
	"github.com/gescom/backend/internal/infrastructure/logger"
	"github.com/gescom/backend/internal/interfaces/http/handler"
	"github.com/gescom/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the handlers wired into the router
type Handlers struct {
	Partner   *handler.PartnerHandler
	Client    *handler.ClientHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
	System    *handler.SystemHandler
}

// New builds the gin engine with middleware and all routes registered
func New(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg)))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.BodySizeLimit(cfg.HTTP.MaxBodyBytes))

	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	v1 := engine.Group("/api/v1")
	registerPartnerRoutes(v1, h.Partner)
	registerClientRoutes(v1, h.Client)
	registerProductRoutes(v1, h.Product)
	registerOrderRoutes(v1, h.Order)
	registerDashboardRoutes(v1, h.Dashboard)

	return engine
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	return corsCfg
}

func registerPartnerRoutes(rg *gin.RouterGroup, h *handler.PartnerHandler) {
	partners := rg.Group("/partenaires")
	{
		partners.GET("", h.List)
		partners.GET("/count", h.Count)
		partners.GET("/:id", h.Get)
		partners.POST("", h.Create)
		partners.PUT("/:id", h.Update)
		partners.PATCH("/:id/actif", h.SetActive)
		partners.DELETE("/:id", h.Delete)
	}
}

func registerClientRoutes(rg *gin.RouterGroup, h *handler.ClientHandler) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.List)
		clients.GET("/count", h.Count)
		clients.GET("/:id", h.Get)
		clients.POST("", h.Create)
		clients.PUT("/:id", h.Update)
		clients.PATCH("/:id/actif", h.SetActive)
		clients.DELETE("/:id", h.Delete)
	}
}

func registerProductRoutes(rg *gin.RouterGroup, h *handler.ProductHandler) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/count", h.Count)
		products.GET("/:id", h.Get)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

func registerOrderRoutes(rg *gin.RouterGroup, h *handler.OrderHandler) {
	orders := rg.Group("/commandes-fournisseurs")
	{
		orders.GET("", h.List)
		orders.GET("/count", h.Count)
		orders.GET("/:id", h.Get)
		orders.POST("", h.Create)
		orders.PUT("/:id/montant", h.UpdateAmount)
		orders.POST("/:id/confirmer", h.Confirm)
		orders.POST("/:id/recevoir", h.Receive)
		orders.POST("/:id/annuler", h.Cancel)
		orders.DELETE("/:id", h.Delete)
	}
}

func registerDashboardRoutes(rg *gin.RouterGroup, h *handler.DashboardHandler) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/counts", h.Counts)
		dashboard.GET("/modules", h.Modules)
	}
}
