package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"game-catalog/internal/data/entity"
	"game-catalog/internal/data/repository"
	"game-catalog/internal/dto/request"
	"game-catalog/internal/dto/response"
	"game-catalog/pkg/metrics"
	"game-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RelatedGamesLimit caps the related list on the detail page.
const RelatedGamesLimit = 5

type GameService interface {
	Detail(ctx context.Context, gameID string) (*response.GameDetailResponse, error)
	Create(ctx context.Context, req *request.GameRequest) (*response.GameResponse, error)
	Update(ctx context.Context, gameID string, req *request.GameRequest) (*response.GameResponse, error)
	Delete(ctx context.Context, gameID string) error
}

type gameService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewGameService(repo *repository.Repository, log *zap.Logger) GameService {
	return &gameService{
		repo: repo,
		log:  log.With(zap.String("service", "game")),
		now:  time.Now,
	}
}

// Detail returns the game with its relations, its reviews oldest first and up
// to five games sharing a genre. Unknown or malformed ids are ErrNotFound.
func (s *gameService) Detail(ctx context.Context, gameID string) (*response.GameDetailResponse, error) {
	id, err := parseID(gameID)
	if err != nil {
		return nil, err
	}

	game, err := s.loadGame(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByGameID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	if err := s.attachReviewPlatforms(ctx, reviews); err != nil {
		return nil, err
	}

	related, err := s.repo.Game.FindRelated(ctx, id, RelatedGamesLimit)
	if err != nil {
		return nil, fmt.Errorf("load related games: %w", err)
	}
	if err := attachGenres(ctx, s.repo.Genre, related); err != nil {
		return nil, err
	}

	// view counters are advisory, a failed bump never fails the page
	if err := s.repo.Game.IncrementViews(ctx, id); err != nil {
		s.log.Warn("View counter not updated", zap.Error(err), zap.String("game_id", id.String()))
	}
	metrics.CatalogViews.Inc()

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	return &response.GameDetailResponse{
		Game:    response.GameToResponse(game),
		Reviews: reviewResponses,
		Related: response.GamesToSummaries(related),
	}, nil
}

func (s *gameService) Create(ctx context.Context, req *request.GameRequest) (*response.GameResponse, error) {
	now := s.now()
	game := &entity.Game{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	links, err := applyGameRequest(game, req)
	if err != nil {
		return nil, err
	}

	if err := game.Validate(); err != nil {
		s.log.Warn("Game rejected", zap.Error(err), zap.String("title", game.Title))
		return nil, err
	}

	if err := s.repo.Game.Create(ctx, game, links); err != nil {
		return nil, translateRepoError(err)
	}

	s.log.Info("Game created",
		zap.String("game_id", game.ID.String()),
		zap.String("title", game.Title),
	)

	return s.gameResponse(ctx, game.ID)
}

// Update replaces every field and link of the game.
func (s *gameService) Update(ctx context.Context, gameID string, req *request.GameRequest) (*response.GameResponse, error) {
	id, err := parseID(gameID)
	if err != nil {
		return nil, err
	}

	game, err := s.repo.Game.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find game: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
	}

	links, err := applyGameRequest(game, req)
	if err != nil {
		return nil, err
	}
	game.UpdatedAt = s.now()

	if err := game.Validate(); err != nil {
		s.log.Warn("Game update rejected", zap.Error(err), zap.String("game_id", id.String()))
		return nil, err
	}

	if err := s.repo.Game.Update(ctx, game, &links); err != nil {
		return nil, translateRepoError(err)
	}

	s.log.Info("Game updated", zap.String("game_id", id.String()))
	return s.gameResponse(ctx, id)
}

func (s *gameService) Delete(ctx context.Context, gameID string) error {
	id, err := parseID(gameID)
	if err != nil {
		return err
	}

	if err := s.repo.Game.Delete(ctx, id); err != nil {
		return translateRepoError(err)
	}
	return nil
}

// loadGame fetches the game and its genre, developer, publisher and platform
// lists concurrently.
func (s *gameService) loadGame(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	game, err := s.repo.Game.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find game: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		game.Genres, err = s.repo.Genre.FindByGameID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		game.Developers, err = s.repo.Company.FindDevelopersByGameID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		game.Publishers, err = s.repo.Company.FindPublishersByGameID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		game.Platforms, err = s.repo.Platform.FindByGameID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Failed to load game relations", zap.Error(err), zap.String("game_id", id.String()))
		return nil, fmt.Errorf("load game relations: %w", err)
	}

	return game, nil
}

func (s *gameService) gameResponse(ctx context.Context, id uuid.UUID) (*response.GameResponse, error) {
	game, err := s.loadGame(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.GameToResponse(game)
	return &resp, nil
}

func (s *gameService) attachReviewPlatforms(ctx context.Context, reviews []*entity.GameReview) error {
	if len(reviews) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(reviews))
	for i, r := range reviews {
		ids[i] = r.ID
	}

	byReview, err := s.repo.Platform.FindByReviewIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load review platforms: %w", err)
	}
	for _, r := range reviews {
		r.Platforms = byReview[r.ID]
	}
	return nil
}

// applyGameRequest copies the payload onto game and returns its links.
func applyGameRequest(game *entity.Game, req *request.GameRequest) (entity.GameLinks, error) {
	releaseDate, err := time.Parse(utils.DateLayout, req.ReleaseDate)
	if err != nil {
		return entity.GameLinks{}, utils.ValidationErrors{{Field: "release_date", Message: "Must be a date in format " + utils.DateLayout}}
	}

	var links entity.GameLinks
	var errs utils.ValidationErrors
	for _, f := range []struct {
		field string
		raw   []string
		dst   *[]uuid.UUID
	}{
		{"genre_ids", req.GenreIDs, &links.GenreIDs},
		{"developer_ids", req.DeveloperIDs, &links.DeveloperIDs},
		{"publisher_ids", req.PublisherIDs, &links.PublisherIDs},
		{"platform_ids", req.PlatformIDs, &links.PlatformIDs},
	} {
		ids, err := parseIDs(f.field, f.raw)
		if err != nil {
			var ve utils.ValidationErrors
			if errors.As(err, &ve) {
				errs = append(errs, ve...)
				continue
			}
			return entity.GameLinks{}, err
		}
		*f.dst = ids
	}
	if len(errs) > 0 {
		return entity.GameLinks{}, errs
	}

	game.Title = req.Title
	game.Subtitle = req.Subtitle
	game.Description = req.Description
	game.Rating = req.Rating
	game.UserRating = req.UserRating
	game.Cover = req.Cover
	game.Banner = req.Banner
	game.ReleaseDate = releaseDate
	game.Version = req.Version
	if game.Version == "" {
		game.Version = entity.DefaultGameVersion
	}
	game.GameplayDuration = req.GameplayDuration
	game.Online = req.Online
	game.Offline = req.Offline

	return links, nil
}
