package wire

import (
	"game-catalog/internal/adaptor"
	"game-catalog/internal/data/repository"
	"game-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		// AuthSession → Admin
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/games", handler.Game.CreateGame)
		r.Put("/games/{id}", handler.Game.UpdateGame)
		r.Delete("/games/{id}", handler.Game.DeleteGame)

		r.Post("/genres", handler.Taxonomy.CreateGenre)
		r.Post("/companies", handler.Taxonomy.CreateCompany)
		r.Post("/platforms", handler.Taxonomy.CreatePlatform)
	})
}
