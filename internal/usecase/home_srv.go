package usecase

import (
	"context"
	"fmt"

	"game-catalog/internal/data/entity"
	"game-catalog/internal/data/repository"
	"game-catalog/internal/dto/response"
	"game-catalog/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type HomeService interface {
	Home(ctx context.Context) (*response.HomeResponse, error)
}

type homeService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewHomeService(repo *repository.Repository, config *utils.Config, log *zap.Logger) HomeService {
	return &homeService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "home")),
	}
}

// homeSelectors in response order.
var homeSelectors = []repository.Selector{
	repository.SelectorTrending,
	repository.SelectorPopular,
	repository.SelectorMostView,
	repository.SelectorNew,
	repository.SelectorCarousel,
	repository.SelectorFeatured,
}

// Home runs the six selectors concurrently. Any failure fails the whole page.
func (s *homeService) Home(ctx context.Context) (*response.HomeResponse, error) {
	results := make([][]*entity.Game, len(homeSelectors))

	g, gctx := errgroup.WithContext(ctx)
	for i, sel := range homeSelectors {
		i, sel := i, sel
		g.Go(func() error {
			games, err := s.repo.Game.FindBySelector(gctx, sel)
			if err != nil {
				return fmt.Errorf("selector %s: %w", sel.Name, err)
			}
			results[i] = games
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("Failed to build home page", zap.Error(err))
		return nil, err
	}

	var all []*entity.Game
	for _, games := range results {
		all = append(all, games...)
	}
	if err := attachGenres(ctx, s.repo.Genre, all); err != nil {
		return nil, err
	}

	site := s.config.Site
	keywords := site.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return &response.HomeResponse{
		Site: response.SiteMeta{
			Name:        s.config.App.Name,
			Title:       site.Title,
			Author:      site.Author,
			Description: site.Description,
			Keywords:    keywords,
		},
		Trending:   response.GamesToSummaries(results[0]),
		Popular:    response.GamesToSummaries(results[1]),
		MostViewed: response.GamesToSummaries(results[2]),
		New:        response.GamesToSummaries(results[3]),
		Carousel:   response.GamesToSummaries(results[4]),
		Featured:   response.GamesToSummaries(results[5]),
	}, nil
}
