package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// multipartOverhead is the room left for form fields around the image
const multipartOverhead = 1 << 20

// Handlers groups the HTTP handlers of the API
type Handlers struct {
	Enhancement *handler.EnhancementHandler
	User        *handler.UserHandler
	Purchase    *handler.PurchaseHandler
	Analytics   *handler.AnalyticsHandler
	Health      *handler.HealthHandler
	Metrics     http.Handler // nil disables GET /metrics
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, maxUploadBytes int64) {
	router.GET("/", h.Health.Health)
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	api := router.Group("/api")
	{
		uploads := api.Group("", middleware.BodyLimit(maxUploadBytes+multipartOverhead))
		uploads.POST("/enhance", h.Enhancement.Enhance)
		uploads.POST("/custom-edit", h.Enhancement.CustomEdit)

		api.GET("/image/*key", h.Enhancement.GetImage)
		api.GET("/enhancements/:userId", h.Enhancement.ListEnhancements)
		api.GET("/credits/:userId", h.User.GetCredits)

		api.POST("/purchase", h.Purchase.Purchase)
		api.POST("/restore", h.Purchase.Restore)
		api.POST("/analytics", h.Analytics.Track)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	observer middleware.HTTPObserver,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	if observer != nil {
		router.Use(middleware.Metrics(observer, timeProvider))
	}
}

// CORSConfig lists the origins allowed to call the API from a browser
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// WithCORS wraps the router with the CORS policy
func WithCORS(next http.Handler, config CORSConfig) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: config.AllowCredentials,
	}).Handler(next)
}
