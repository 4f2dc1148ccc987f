package repository

import (
	"context"
	"errors"
	"fmt"

	"game-catalog/internal/data/entity"
	"game-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Create writes the review and its platform links in one transaction.
	Create(ctx context.Context, review *entity.GameReview) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GameReview, error)
	FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.GameReview, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `r.id, r.game_id, r.author_id, r.score, r.recommend, r.text, r.status, r.created_at, u.username`

func scanReview(row pgx.Row) (*entity.GameReview, error) {
	var review entity.GameReview
	err := row.Scan(
		&review.ID,
		&review.GameID,
		&review.AuthorID,
		&review.Score,
		&review.Recommend,
		&review.Text,
		&review.Status,
		&review.CreatedAt,
		&review.AuthorName,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.GameReview) error {
	query := `
		INSERT INTO game_reviews (id, game_id, author_id, score, recommend, text, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			review.ID,
			review.GameID,
			review.AuthorID,
			review.Score,
			review.Recommend,
			review.Text,
			review.Status,
			review.CreatedAt,
		)
		if err != nil {
			return err
		}
		return reviewPlatforms.insert(ctx, tx, review.ID, review.PlatformIDs)
	})

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("author_id", review.AuthorID.String()),
			zap.String("game_id", review.GameID.String()),
		)
		if classified := classifyPgError(err); classified != nil && !errors.Is(err, classified) {
			return fmt.Errorf("create review for game %s: %w", review.GameID, classified)
		}
		return fmt.Errorf("create review for game %s by user %s: %w",
			review.GameID.String(), review.AuthorID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GameReview, error) {
	query := `SELECT ` + reviewColumns + `
		FROM game_reviews r
		INNER JOIN users u ON u.id = r.author_id
		WHERE r.id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

// FindByGameID returns every review of the game, oldest first.
func (r *reviewRepository) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.GameReview, error) {
	query := `SELECT ` + reviewColumns + `
		FROM game_reviews r
		INNER JOIN users u ON u.id = r.author_id
		WHERE r.game_id = $1
		ORDER BY r.created_at ASC, r.id`

	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		r.log.Error("Failed to find reviews by game ID",
			zap.Error(err),
			zap.String("game_id", gameID.String()),
		)
		return nil, fmt.Errorf("find reviews by game ID %s: %w", gameID.String(), err)
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.GameReview, error) {
		return scanReview(row)
	})
	if err != nil {
		r.log.Error("Failed to scan review row", zap.Error(err))
		return nil, fmt.Errorf("scan review row: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM game_reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}
