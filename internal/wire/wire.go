// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"game-catalog/internal/adaptor"
	"game-catalog/internal/data/repository"
	"game-catalog/internal/usecase"
	"game-catalog/pkg/metrics"
	"game-catalog/pkg/middleware"
	"game-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger is the health probe of the backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the assembled router and the services background jobs need.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes.
func Wiring(repo *repository.Repository, db Pinger, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, db, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(config.HTTP.CORSAllowedOrigins))

	r.NotFound(utils.RouteNotFound)
	r.MethodNotAllowed(utils.MethodNotAllowed)

	// Operational endpoints stay outside the rate limit
	r.Get("/health", healthHandler(db))
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(config.HTTP.RateLimitRequests, config.HTTP.RateLimitWindow))

		wireCatalog(r, handler, repo, logger)
		wireAuth(r, handler.Auth, repo, logger)
		wireAdmin(r, handler, repo, logger)
	})

	return r
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("DB UNAVAILABLE"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
