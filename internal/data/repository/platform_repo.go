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

type PlatformRepository interface {
	// Create writes the platform and its manufacturer links in one transaction.
	Create(ctx context.Context, platform *entity.Platform) error
	FindAll(ctx context.Context) ([]*entity.Platform, error)
	FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Platform, error)
	FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID][]*entity.Platform, error)
}

type platformRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlatformRepository(db database.PgxIface, log *zap.Logger) PlatformRepository {
	return &platformRepository{
		db:  db,
		log: log.With(zap.String("repository", "platform")),
	}
}

func (r *platformRepository) Create(ctx context.Context, platform *entity.Platform) error {
	query := `INSERT INTO platforms (id, name, created_at) VALUES ($1, $2, $3)`

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, platform.ID, platform.Name, platform.CreatedAt); err != nil {
			return err
		}
		return platformCompanies.insert(ctx, tx, platform.ID, platform.ManufacturerIDs)
	})
	if err != nil {
		r.log.Error("Failed to create platform",
			zap.Error(err),
			zap.String("name", platform.Name),
		)
		if classified := classifyPgError(err); classified != nil && !errors.Is(err, classified) {
			return fmt.Errorf("create platform %s: %w", platform.Name, classified)
		}
		return fmt.Errorf("create platform %s: %w", platform.Name, err)
	}

	return nil
}

func (r *platformRepository) FindAll(ctx context.Context) ([]*entity.Platform, error) {
	query := `SELECT p.id, p.name, p.created_at FROM platforms p ORDER BY p.name, p.id`
	return r.list(ctx, query)
}

func (r *platformRepository) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Platform, error) {
	query := `
		SELECT p.id, p.name, p.created_at
		FROM platforms p
		INNER JOIN game_platforms gp ON p.id = gp.platform_id
		WHERE gp.game_id = $1
		ORDER BY p.name
	`
	return r.list(ctx, query, gameID)
}

// FindByReviewIDs returns the platforms each review was played on.
func (r *platformRepository) FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID][]*entity.Platform, error) {
	result := make(map[uuid.UUID][]*entity.Platform, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT rp.review_id, p.id, p.name, p.created_at
		FROM platforms p
		INNER JOIN review_platforms rp ON p.id = rp.platform_id
		WHERE rp.review_id = ANY($1::uuid[])
		ORDER BY p.name
	`

	rows, err := r.db.Query(ctx, query, uuidStrings(reviewIDs))
	if err != nil {
		r.log.Error("Failed to find review platforms", zap.Error(err))
		return nil, fmt.Errorf("find review platforms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reviewID uuid.UUID
		var p entity.Platform
		if err := rows.Scan(&reviewID, &p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan platform row: %w", err)
		}
		result[reviewID] = append(result[reviewID], &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate platform rows: %w", err)
	}

	return result, nil
}

func (r *platformRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Platform, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list platforms", zap.Error(err))
		return nil, fmt.Errorf("find platforms: %w", err)
	}

	platforms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Platform, error) {
		var p entity.Platform
		if err := row.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		return &p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan platform row: %w", err)
	}
	return platforms, nil
}
