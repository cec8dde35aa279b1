package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"techshop/docs"
	"techshop/internal/auth"
	"techshop/internal/cache"
	"techshop/internal/config"
	"techshop/internal/db"
	"techshop/internal/events"
	"techshop/internal/handler"
	"techshop/internal/logger"
	"techshop/internal/repository"
	"techshop/internal/router"
	"techshop/internal/service"
)

// @title TechShop API
// @version 1.0
// @description Storefront backend: accounts, catalog, orders and a payment placeholder.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("techshop-api", cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, login throttling and seed lock disabled")
	}
	cancelPing()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitURL != "" {
		rabbit, err := events.NewRabbitPublisher(cfg.RabbitURL, cfg.EventsExchange)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbit connect")
		}
		publisher = rabbit
	}
	defer publisher.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	limiter := auth.NewLoginLimiter(cacheClient, cfg.LoginMaxAttempts, cfg.LoginWindow)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, limiter, log)
	userService := service.NewUserService(userRepo, orderRepo)
	catalogService := service.NewCatalogService(productRepo, cacheClient, log)
	orderService := service.NewOrderService(orderRepo, productRepo, publisher, log)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		cfg,
		log,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewProductHandler(catalogService),
		handler.NewOrderHandler(orderService, userService),
		handler.NewPaymentHandler(),
		handler.NewSeedHandler(catalogService, service.SeedPolicy(cfg.SeedPolicy)),
	)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Msg("http started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = e.Shutdown(shCtx)
}
