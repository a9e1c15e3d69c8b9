// Package router assembles the HTTP routes and middleware chain.
package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fleetbay/fleetbay-server/internal/api/http/handler"
	"github.com/fleetbay/fleetbay-server/internal/api/http/middleware"
	"github.com/fleetbay/fleetbay-server/internal/logger"
	"github.com/fleetbay/fleetbay-server/internal/metrics"
	"github.com/fleetbay/fleetbay-server/internal/model"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps holds everything New needs to build the route tree.
type Deps struct {
	AuthService    handler.AuthService
	UserService    handler.UserService
	VehicleService handler.VehicleService

	TokenManager model.TokenManager
	RateLimiter  *middleware.RateLimiter
	Collector    *metrics.Collector
	Gatherer     prometheus.Gatherer
	DB           Pinger
	Logger       *logger.Logger
}

// New builds the route tree. Login and user creation are open; every other
// API route requires a bearer token.
func New(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(deps.Logger))
	r.Use(deps.Collector.Middleware())
	r.Use(deps.RateLimiter.Middleware())

	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.AuthService, deps.UserService)
	vehicleHandler := handler.NewVehicleHandler(deps.VehicleService)

	r.Get("/healthz", health(deps.DB))
	r.Handle("/metrics", metrics.Handler(deps.Gatherer))

	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/users", userHandler.Create)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.TokenManager))

		// Registered per method so the open POST above keeps its own chain.
		r.Get("/api/users", userHandler.List)
		r.Get("/api/users/{id}", userHandler.Get)
		r.Put("/api/users/{id}", userHandler.Update)
		r.Delete("/api/users/{id}", userHandler.Delete)

		r.Route("/api/vehicles", func(r chi.Router) {
			r.Post("/", vehicleHandler.Create)
			r.Get("/", vehicleHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", vehicleHandler.Get)
				r.Put("/", vehicleHandler.Update)
				r.Delete("/", vehicleHandler.Delete)
			})
		})
	})

	return r
}

func health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
