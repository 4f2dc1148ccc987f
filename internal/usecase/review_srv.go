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

type ReviewService interface {
	CreateReview(ctx context.Context, authorID uuid.UUID, gameID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, authorID uuid.UUID, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
		now:  time.Now,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, authorID uuid.UUID, gameID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	var missing utils.ValidationErrors
	if req.Score == nil {
		missing = append(missing, utils.ValidationError{Field: "score", Message: "This field is required"})
	}
	if req.Status == nil {
		missing = append(missing, utils.ValidationError{Field: "status", Message: "This field is required"})
	}
	if len(missing) > 0 {
		return nil, missing
	}

	id, err := parseID(gameID)
	if err != nil {
		return nil, err
	}

	// Check if game exists
	game, err := s.repo.Game.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find game: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
	}

	platformIDs, err := parseIDs("platform_ids", req.PlatformIDs)
	if err != nil {
		return nil, err
	}

	recommend := true
	if req.Recommend != nil {
		recommend = *req.Recommend
	}

	review := &entity.GameReview{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		GameID:      id,
		AuthorID:    authorID,
		Score:       *req.Score,
		Recommend:   recommend,
		Text:        req.Text,
		Status:      entity.ReviewStatus(*req.Status),
		PlatformIDs: platformIDs,
	}

	if err := review.Validate(); err != nil {
		s.log.Warn("Review rejected", zap.Error(err), zap.String("game_id", id.String()))
		return nil, err
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, translateRepoError(err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("game_id", id.String()),
		zap.String("author_id", authorID.String()),
	)

	stored, err := s.repo.Review.FindByID(ctx, review.ID)
	if err != nil {
		return nil, fmt.Errorf("reload review: %w", err)
	}
	if stored == nil {
		stored = review
	}
	byReview, err := s.repo.Platform.FindByReviewIDs(ctx, []uuid.UUID{stored.ID})
	if err != nil {
		return nil, fmt.Errorf("load review platforms: %w", err)
	}
	stored.Platforms = byReview[stored.ID]

	resp := response.ReviewToResponse(stored)
	return &resp, nil
}

// DeleteReview removes a review. Only its author may do so.
func (s *reviewService) DeleteReview(ctx context.Context, authorID uuid.UUID, reviewID string) error {
	id, err := parseID(reviewID)
	if err != nil {
		return err
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %s: %w", id, ErrNotFound)
	}

	if review.AuthorID != authorID {
		s.log.Warn("Review delete by non-author",
			zap.String("review_id", id.String()),
			zap.String("user_id", authorID.String()),
		)
		return fmt.Errorf("review %s: %w", id, ErrForbidden)
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		return translateRepoError(err)
	}
	return nil
}
