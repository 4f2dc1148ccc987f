package usecase

import (
	"context"
	"fmt"
	"time"

	"game-catalog/internal/data/entity"
	"game-catalog/internal/data/repository"
	"game-catalog/internal/dto/request"
	"game-catalog/internal/dto/response"
	"game-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaxonomyService manages the genres, companies and platforms games link to.
type TaxonomyService interface {
	ListGenres(ctx context.Context) ([]response.GenreResponse, error)
	ListCompanies(ctx context.Context) ([]response.CompanyResponse, error)
	ListPlatforms(ctx context.Context) ([]response.PlatformResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	CreateCompany(ctx context.Context, req *request.CompanyRequest) (*response.CompanyResponse, error)
	CreatePlatform(ctx context.Context, req *request.PlatformRequest) (*response.PlatformResponse, error)
}

type taxonomyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTaxonomyService(repo *repository.Repository, log *zap.Logger) TaxonomyService {
	return &taxonomyService{
		repo: repo,
		log:  log.With(zap.String("service", "taxonomy")),
	}
}

func (s *taxonomyService) ListGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return response.GenresToResponse(genres), nil
}

func (s *taxonomyService) ListCompanies(ctx context.Context) ([]response.CompanyResponse, error) {
	companies, err := s.repo.Company.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	out := make([]response.CompanyResponse, len(companies))
	for i, c := range companies {
		out[i] = response.CompanyToResponse(c)
	}
	return out, nil
}

func (s *taxonomyService) ListPlatforms(ctx context.Context) ([]response.PlatformResponse, error) {
	platforms, err := s.repo.Platform.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}

	ids := make([]uuid.UUID, len(platforms))
	for i, p := range platforms {
		ids[i] = p.ID
	}
	makers, err := s.repo.Company.FindByPlatformIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}

	out := make([]response.PlatformResponse, len(platforms))
	for i, p := range platforms {
		p.Manufacturers = makers[p.ID]
		out[i] = response.PlatformToResponse(p)
	}
	return out, nil
}

func (s *taxonomyService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       req.Name,
	}
	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		return nil, translateRepoError(err)
	}

	s.log.Info("Genre created", zap.String("genre_id", genre.ID.String()), zap.String("name", genre.Name))
	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *taxonomyService) CreateCompany(ctx context.Context, req *request.CompanyRequest) (*response.CompanyResponse, error) {
	openedAt, err := utils.ParseDate(req.OpenedAt)
	if err != nil {
		return nil, utils.ValidationErrors{{Field: "opened_at", Message: "Must be a date in format " + utils.DateLayout}}
	}
	closedAt, err := utils.ParseDate(req.ClosedAt)
	if err != nil {
		return nil, utils.ValidationErrors{{Field: "closed_at", Message: "Must be a date in format " + utils.DateLayout}}
	}

	company := &entity.Company{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       req.Name,
		IsDev:      req.IsDev,
		IsPub:      req.IsPub,
		OpenedAt:   openedAt,
		ClosedAt:   closedAt,
	}
	if err := s.repo.Company.Create(ctx, company); err != nil {
		s.log.Warn("Company not created", zap.Error(err), zap.String("name", company.Name))
		return nil, translateRepoError(err)
	}

	s.log.Info("Company created", zap.String("company_id", company.ID.String()), zap.String("name", company.Name))
	resp := response.CompanyToResponse(company)
	return &resp, nil
}

func (s *taxonomyService) CreatePlatform(ctx context.Context, req *request.PlatformRequest) (*response.PlatformResponse, error) {
	makerIDs, err := parseIDs("manufacturer_ids", req.ManufacturerIDs)
	if err != nil {
		return nil, err
	}

	platform := &entity.Platform{
		BaseSimple:      entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:            req.Name,
		ManufacturerIDs: makerIDs,
	}
	if err := s.repo.Platform.Create(ctx, platform); err != nil {
		return nil, translateRepoError(err)
	}

	makers, err := s.repo.Company.FindByPlatformIDs(ctx, []uuid.UUID{platform.ID})
	if err != nil {
		return nil, fmt.Errorf("load manufacturers: %w", err)
	}
	platform.Manufacturers = makers[platform.ID]

	s.log.Info("Platform created", zap.String("platform_id", platform.ID.String()), zap.String("name", platform.Name))
	resp := response.PlatformToResponse(platform)
	return &resp, nil
}
