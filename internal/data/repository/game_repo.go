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

type GameRepository interface {
	// CRUD Game. Create and Update write the game row and its links atomically.
	Create(ctx context.Context, game *entity.Game, links entity.GameLinks) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)
	Update(ctx context.Context, game *entity.Game, links *entity.GameLinks) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Catalog queries
	Search(ctx context.Context, filter GameFilter, limit, offset int) ([]*entity.Game, error)
	Count(ctx context.Context, filter GameFilter) (int64, error)
	FindBySelector(ctx context.Context, selector Selector) ([]*entity.Game, error)
	FindRelated(ctx context.Context, gameID uuid.UUID, limit int) ([]*entity.Game, error)

	// View counters
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

type gameRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGameRepository(db database.PgxIface, log *zap.Logger) GameRepository {
	return &gameRepository{
		db:  db,
		log: log.With(zap.String("repository", "game")),
	}
}

func scanGame(row pgx.Row) (*entity.Game, error) {
	var game entity.Game
	err := row.Scan(
		&game.ID,
		&game.Title,
		&game.Subtitle,
		&game.Description,
		&game.Rating,
		&game.UserRating,
		&game.Cover,
		&game.Banner,
		&game.ReleaseDate,
		&game.Version,
		&game.GameplayDuration,
		&game.TotalViews,
		&game.MonthlyViews,
		&game.WeeklyViews,
		&game.Online,
		&game.Offline,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func collectGames(rows pgx.Rows) ([]*entity.Game, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Game, error) {
		return scanGame(row)
	})
}

func writeGameLinks(ctx context.Context, tx pgx.Tx, gameID uuid.UUID, links entity.GameLinks) error {
	if err := gameGenres.replace(ctx, tx, gameID, links.GenreIDs); err != nil {
		return err
	}
	if err := gameDevelopers.replace(ctx, tx, gameID, links.DeveloperIDs); err != nil {
		return err
	}
	if err := gamePublishers.replace(ctx, tx, gameID, links.PublisherIDs); err != nil {
		return err
	}
	return gamePlatforms.replace(ctx, tx, gameID, links.PlatformIDs)
}

func (r *gameRepository) Create(ctx context.Context, game *entity.Game, links entity.GameLinks) error {
	query := `
		INSERT INTO games (id, title, subtitle, description, rating, user_rating,
		                   cover, banner, release_date, version, gameplay_duration,
		                   total_views, monthly_views, weekly_views, online, offline,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			game.ID,
			game.Title,
			game.Subtitle,
			game.Description,
			game.Rating,
			game.UserRating,
			game.Cover,
			game.Banner,
			game.ReleaseDate,
			game.Version,
			game.GameplayDuration,
			game.TotalViews,
			game.MonthlyViews,
			game.WeeklyViews,
			game.Online,
			game.Offline,
			game.CreatedAt,
			game.UpdatedAt,
		)
		if err != nil {
			return err
		}
		return writeGameLinks(ctx, tx, game.ID, links)
	})

	if err != nil {
		r.log.Error("Failed to create game",
			zap.Error(err),
			zap.String("title", game.Title),
		)
		if classified := classifyPgError(err); classified != nil && !errors.Is(err, classified) {
			return fmt.Errorf("failed to create game: %w", classified)
		}
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

func (r *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games g WHERE g.id = $1`

	game, err := scanGame(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find game by ID",
			zap.Error(err),
			zap.String("game_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	return game, nil
}

func (r *gameRepository) Update(ctx context.Context, game *entity.Game, links *entity.GameLinks) error {
	query := `
		UPDATE games
		SET title = $2, subtitle = $3, description = $4, rating = $5, user_rating = $6,
		    cover = $7, banner = $8, release_date = $9, version = $10,
		    gameplay_duration = $11, online = $12, offline = $13, updated_at = $14
		WHERE id = $1
	`

	var notFound bool
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			game.ID,
			game.Title,
			game.Subtitle,
			game.Description,
			game.Rating,
			game.UserRating,
			game.Cover,
			game.Banner,
			game.ReleaseDate,
			game.Version,
			game.GameplayDuration,
			game.Online,
			game.Offline,
			game.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			notFound = true
			return nil
		}
		if links == nil {
			return nil
		}
		return writeGameLinks(ctx, tx, game.ID, *links)
	})

	if err != nil {
		r.log.Error("Failed to update game",
			zap.Error(err),
			zap.String("game_id", game.ID.String()),
		)
		if classified := classifyPgError(err); classified != nil && !errors.Is(err, classified) {
			return fmt.Errorf("failed to update game: %w", classified)
		}
		return fmt.Errorf("failed to update game: %w", err)
	}
	if notFound {
		return fmt.Errorf("game %s: %w", game.ID, ErrNotFound)
	}

	return nil
}

func (r *gameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// reviews and link rows go with it through ON DELETE CASCADE
	query := `DELETE FROM games WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete game",
			zap.Error(err),
			zap.String("game_id", id.String()),
		)
		return fmt.Errorf("failed to delete game: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("game %s: %w", id, ErrNotFound)
	}

	r.log.Info("Game deleted", zap.String("game_id", id.String()))
	return nil
}

func (r *gameRepository) Search(ctx context.Context, filter GameFilter, limit, offset int) ([]*entity.Game, error) {
	query, args, err := buildGameSearchQuery(filter, limit, offset)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search games",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.String("genre", filter.Genre),
			zap.String("orderby", filter.OrderBy),
		)
		return nil, fmt.Errorf("failed to search games: %w", err)
	}

	games, err := collectGames(rows)
	if err != nil {
		r.log.Error("Failed to scan game rows", zap.Error(err))
		return nil, fmt.Errorf("failed to scan games: %w", err)
	}

	r.log.Debug("Games found",
		zap.Int("count", len(games)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return games, nil
}

func (r *gameRepository) Count(ctx context.Context, filter GameFilter) (int64, error) {
	query, args := buildGameCountQuery(filter)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count games",
			zap.Error(err),
			zap.String("search", filter.Search),
			zap.String("genre", filter.Genre),
		)
		return 0, fmt.Errorf("failed to count games: %w", err)
	}

	return total, nil
}

func (r *gameRepository) FindBySelector(ctx context.Context, selector Selector) ([]*entity.Game, error) {
	rows, err := r.db.Query(ctx, buildSelectorQuery(selector), selector.Limit)
	if err != nil {
		r.log.Error("Failed to run selector",
			zap.Error(err),
			zap.String("selector", selector.Name),
		)
		return nil, fmt.Errorf("failed to run selector %s: %w", selector.Name, err)
	}

	games, err := collectGames(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan selector %s: %w", selector.Name, err)
	}
	return games, nil
}

func (r *gameRepository) FindRelated(ctx context.Context, gameID uuid.UUID, limit int) ([]*entity.Game, error) {
	query := `SELECT ` + gameColumns + `
		FROM games g
		WHERE g.id <> $1
		  AND EXISTS (
			SELECT 1 FROM game_genres gg
			JOIN game_genres target ON target.genre_id = gg.genre_id
			WHERE gg.game_id = g.id AND target.game_id = $1)
		ORDER BY g.user_rating DESC, g.id
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, gameID, limit)
	if err != nil {
		r.log.Error("Failed to find related games",
			zap.Error(err),
			zap.String("game_id", gameID.String()),
		)
		return nil, fmt.Errorf("failed to find related games: %w", err)
	}

	games, err := collectGames(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan related games: %w", err)
	}
	return games, nil
}

func (r *gameRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE games
		SET total_views = total_views + 1,
		    monthly_views = monthly_views + 1,
		    weekly_views = weekly_views + 1
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.log.Warn("Failed to increment game views",
			zap.Error(err),
			zap.String("game_id", id.String()),
		)
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}
