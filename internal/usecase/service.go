package usecase

import (
	"game-catalog/internal/data/repository"
	"game-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Home     HomeService
	Catalog  CatalogService
	Game     GameService
	Review   ReviewService
	Taxonomy TaxonomyService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Home:     NewHomeService(repo, config, log),
		Catalog:  NewCatalogService(repo, log),
		Game:     NewGameService(repo, log),
		Review:   NewReviewService(repo, log),
		Taxonomy: NewTaxonomyService(repo, log),
	}
}
