package wire

import (
	"game-catalog/internal/adaptor"
	"game-catalog/internal/data/repository"
	"game-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/", handler.Catalog.Home)
	r.Get("/games", handler.Catalog.Games)
	r.Get("/games/", handler.Catalog.Games)
	r.Get("/games/{id}", handler.Game.GetGame)

	r.Get("/api/genres", handler.Taxonomy.GetGenres)
	r.Get("/api/companies", handler.Taxonomy.GetCompanies)
	r.Get("/api/platforms", handler.Taxonomy.GetPlatforms)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/games/{id}/reviews", handler.Review.CreateReview)
		r.Delete("/api/reviews/{id}", handler.Review.DeleteReview)
	})
}
