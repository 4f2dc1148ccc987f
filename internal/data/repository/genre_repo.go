package repository

import (
	"context"
	"fmt"

	"game-catalog/internal/data/entity"
	"game-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Genre, error)
	FindByGameIDs(ctx context.Context, gameIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	query := `INSERT INTO genres (id, name, created_at) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, genre.ID, genre.Name, genre.CreatedAt); err != nil {
		if classified := classifyPgError(err); classified != nil {
			return fmt.Errorf("genre %s: %w", genre.Name, classified)
		}
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return fmt.Errorf("create genre %s: %w", genre.Name, err)
	}

	return nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("find all genres: %w", err)
	}

	genres, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Genre])
	if err != nil {
		r.log.Error("Failed to scan genre row", zap.Error(err))
		return nil, fmt.Errorf("scan genre row: %w", err)
	}

	return genres, nil
}

func (r *genreRepository) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Genre, error) {
	byGame, err := r.FindByGameIDs(ctx, []uuid.UUID{gameID})
	if err != nil {
		return nil, err
	}
	return byGame[gameID], nil
}

// FindByGameIDs loads the genres of a whole page of games in one query.
func (r *genreRepository) FindByGameIDs(ctx context.Context, gameIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error) {
	result := make(map[uuid.UUID][]*entity.Genre, len(gameIDs))
	if len(gameIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT gg.game_id, ge.id, ge.name, ge.created_at
		FROM genres ge
		INNER JOIN game_genres gg ON ge.id = gg.genre_id
		WHERE gg.game_id = ANY($1::uuid[])
		ORDER BY ge.name
	`

	rows, err := r.db.Query(ctx, query, uuidStrings(gameIDs))
	if err != nil {
		r.log.Error("Failed to find genres by game IDs",
			zap.Error(err),
			zap.Int("games", len(gameIDs)),
		)
		return nil, fmt.Errorf("find genres by game ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var gameID uuid.UUID
		var genre entity.Genre
		if err := rows.Scan(&gameID, &genre.ID, &genre.Name, &genre.CreatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		result[gameID] = append(result[gameID], &genre)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genre rows: %w", err)
	}

	return result, nil
}
