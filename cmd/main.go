package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fleetbay/fleetbay-server/internal/api/http/middleware"
	"github.com/fleetbay/fleetbay-server/internal/api/http/router"
	"github.com/fleetbay/fleetbay-server/internal/api/http/server"
	"github.com/fleetbay/fleetbay-server/internal/config"
	"github.com/fleetbay/fleetbay-server/internal/hash"
	"github.com/fleetbay/fleetbay-server/internal/logger"
	"github.com/fleetbay/fleetbay-server/internal/metrics"
	"github.com/fleetbay/fleetbay-server/internal/model"
	"github.com/fleetbay/fleetbay-server/internal/repository/postgres"
	"github.com/fleetbay/fleetbay-server/internal/service"
	"github.com/fleetbay/fleetbay-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)

	hasher, err := hash.NewBcrypt(cfg.Hash.BcryptCost)
	if err != nil {
		logger.Fatal("failed to create hasher", "error", err)
	}
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, logger)
	vehicleService := service.NewVehicle(vehicleRepo, logger)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	rateLimiter := middleware.NewRateLimiter(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst)
	defer rateLimiter.Stop()

	handler := router.New(&router.Deps{
		AuthService:    authService,
		UserService:    userService,
		VehicleService: vehicleService,
		TokenManager:   tokenManager,
		RateLimiter:    rateLimiter,
		Collector:      collector,
		Gatherer:       registry,
		DB:             db,
		Logger:         logger,
	})

	httpServer := server.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
