package usecase

import (
	"context"
	"fmt"

	"game-catalog/internal/data/entity"
	"game-catalog/internal/data/repository"
	"game-catalog/internal/dto/request"
	"game-catalog/internal/dto/response"
	"game-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GamesPerPage is the fixed page size of the /games/ listing.
const GamesPerPage = 16

type CatalogService interface {
	Search(ctx context.Context, req *request.GameSearchRequest) (*response.CatalogResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// Search filters by title substring and exact genre, orders by a whitelisted
// column and returns one page of 16. Out of range pages are clamped.
func (s *catalogService) Search(ctx context.Context, req *request.GameSearchRequest) (*response.CatalogResponse, error) {
	filter := repository.GameFilter{
		Search:  req.Search,
		Genre:   req.Genre,
		OrderBy: req.OrderBy,
	}

	// reject a bad sort key before touching the store
	if _, err := repository.OrderClause(filter.OrderBy); err != nil {
		s.log.Warn("Rejected sort key", zap.String("orderby", filter.OrderBy))
		return nil, err
	}

	total, err := s.repo.Game.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count games: %w", err)
	}

	page := utils.Paginate(total, GamesPerPage, req.Page)

	games, err := s.repo.Game.Search(ctx, filter, page.Limit(), page.Offset)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}

	if err := attachGenres(ctx, s.repo.Genre, games); err != nil {
		return nil, err
	}

	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	title := CatalogTitle(req.Search)
	s.log.Debug("Catalog page served",
		zap.String("search", req.Search),
		zap.String("genre", req.Genre),
		zap.Int("page", page.Number),
		zap.Int64("total", total),
	)

	return &response.CatalogResponse{
		PageTitle:  title,
		Heading:    title,
		Search:     req.Search,
		Genre:      req.Genre,
		OrderBy:    req.OrderBy,
		Games:      response.GamesToSummaries(games),
		Genres:     response.GenresToResponse(genres),
		Pagination: response.PageToMeta(page),
	}, nil
}

// CatalogTitle is the page title and heading of the listing.
func CatalogTitle(search string) string {
	if search == "" {
		return "Games"
	}
	return `Search results for "` + search + `"`
}

// attachGenres fills Genres on every game with a single batched query.
func attachGenres(ctx context.Context, genres repository.GenreRepository, games []*entity.Game) error {
	if len(games) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(games))
	ids := make([]uuid.UUID, 0, len(games))
	for _, g := range games {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		seen[g.ID] = struct{}{}
		ids = append(ids, g.ID)
	}

	byGame, err := genres.FindByGameIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load genres: %w", err)
	}
	for _, g := range games {
		g.Genres = byGame[g.ID]
	}
	return nil
}
