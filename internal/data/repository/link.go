package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// execer is satisfied by both the pool and a pgx.Tx
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// linkTable is a bridge table of a many-to-many relation
type linkTable struct {
	name      string
	ownerCol  string
	targetCol string
}

var (
	gameGenres        = linkTable{"game_genres", "game_id", "genre_id"}
	gameDevelopers    = linkTable{"game_developers", "game_id", "company_id"}
	gamePublishers    = linkTable{"game_publishers", "game_id", "company_id"}
	gamePlatforms     = linkTable{"game_platforms", "game_id", "platform_id"}
	platformCompanies = linkTable{"platform_companies", "platform_id", "company_id"}
	reviewPlatforms   = linkTable{"review_platforms", "review_id", "platform_id"}
)

// insert links owner to every target in one statement. Duplicate ids are ignored.
func (l linkTable) insert(ctx context.Context, db execer, owner uuid.UUID, targets []uuid.UUID) error {
	if len(targets) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s) SELECT $1, t FROM unnest($2::uuid[]) AS t ON CONFLICT DO NOTHING`,
		l.name, l.ownerCol, l.targetCol)

	if _, err := db.Exec(ctx, query, owner, uuidStrings(targets)); err != nil {
		if classified := classifyPgError(err); classified != nil {
			return fmt.Errorf("link %s: %w", l.name, classified)
		}
		return fmt.Errorf("link %s: %w", l.name, err)
	}
	return nil
}

// replace swaps the owner's links for targets.
func (l linkTable) replace(ctx context.Context, db execer, owner uuid.UUID, targets []uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, l.name, l.ownerCol)
	if _, err := db.Exec(ctx, query, owner); err != nil {
		return fmt.Errorf("unlink %s: %w", l.name, err)
	}
	return l.insert(ctx, db, owner, targets)
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
