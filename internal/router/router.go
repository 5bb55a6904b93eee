package router

import (
	"math"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"storefront/internal/auth"
	"storefront/internal/config"
	apperrors "storefront/internal/errors"
	"storefront/internal/handler"
	"storefront/internal/logging"
	"storefront/internal/metrics"
)

// Register wires routes and middleware. m may be nil to disable metrics.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	m *metrics.Metrics,
	verifier auth.TokenVerifier,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
) {
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler
	e.Validator = handler.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins(),
	}))
	if m != nil {
		e.Use(m.Middleware())
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	e.GET("/", healthHandler.Root)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	var authLimit []echo.MiddlewareFunc
	if cfg.AuthRateLimit > 0 {
		authLimit = append(authLimit, middleware.RateLimiter(
			middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:  rate.Limit(cfg.AuthRateLimit),
				Burst: int(math.Max(1, math.Ceil(cfg.AuthRateLimit))),
			}),
		))
	}
	e.POST("/user/signup", userHandler.Signup, authLimit...)
	e.POST("/user/login", userHandler.Login, authLimit...)

	e.POST("/product/add", productHandler.Add)
	e.GET("/product/search", productHandler.Search)
	e.GET("/product/get", productHandler.List)

	// Secured routes (require a bearer token)
	secured := e.Group("/order", auth.Middleware(verifier, log))
	secured.POST("/add", orderHandler.Add)
	secured.GET("/user/", orderHandler.ListForUser)
	secured.GET("/user", orderHandler.ListForUser)
}
