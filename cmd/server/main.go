package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "storefront/docs" // swagger docs

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/handler"
	"storefront/internal/logging"
	"storefront/internal/metrics"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
)

// store is the lifecycle surface shared by the supported backends.
type store interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// @title Storefront API
// @version 1.0
// @description E-commerce backend with user signup/login, product catalog and JWT protected orders.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, repos, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("store init", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	log.Info("store connected", zap.String("driver", cfg.StoreDriver))

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if cacheClient != nil {
		if err := cacheClient.Ping(ctx); err != nil {
			log.Warn("redis unreachable, product cache disabled until it recovers", zap.Error(err))
		}
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	userService := service.NewUserService(repos.Users, jwtService, cfg.BcryptCost)
	productService := service.NewProductService(repos.Products, productCache(cacheClient), cfg.ProductCacheTTL)
	orderService := service.NewOrderService(repos.Orders)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(
		e,
		cfg,
		log,
		metrics.New(),
		jwtService,
		handler.NewHealthHandler(st, log),
		handler.NewUserHandler(userService, cfg.RedactPasswordHash, log),
		handler.NewProductHandler(productService, log),
		handler.NewOrderHandler(orderService, log),
	)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("listening", zap.String("addr", addr), zap.String("swagger", "http://localhost"+addr+"/swagger/index.html"))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Error("store close", zap.Error(err))
	}
	if err := cacheClient.Close(); err != nil {
		log.Error("redis close", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store, repository.Repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreMySQL:
		mysql, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, repository.Repositories{}, err
		}
		return mysql, repository.NewGormRepositories(mysql.DB), nil
	default:
		mongo, err := db.NewMongo(ctx, cfg.MongoURL, cfg.MongoDatabase)
		if err != nil {
			return nil, repository.Repositories{}, err
		}
		return mongo, repository.NewMongoRepositories(mongo.DB), nil
	}
}

// productCache avoids handing the service a non-nil interface around a nil client.
func productCache(c *cache.Client) service.Cache {
	if c == nil {
		return nil
	}
	return c
}
