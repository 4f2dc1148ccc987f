package repository

import (
	"game-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Game     GameRepository
	Genre    GenreRepository
	Company  CompanyRepository
	Platform PlatformRepository
	Review   ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Game:     NewGameRepository(db, log),
		Genre:    NewGenreRepository(db, log),
		Company:  NewCompanyRepository(db, log),
		Platform: NewPlatformRepository(db, log),
		Review:   NewReviewRepository(db, log),
	}
}
