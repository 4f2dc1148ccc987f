package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"game-catalog/internal/data/entity"
	"game-catalog/pkg/database"
	"game-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// openTestDB connects with the regular DB_* settings. It only runs when
// GAME_CATALOG_PG_TESTS=1 so the default test run needs no database.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	if os.Getenv("GAME_CATALOG_PG_TESTS") != "1" {
		t.Skip("Postgres not configured, set GAME_CATALOG_PG_TESTS=1")
	}

	config, err := utils.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	db, err := database.InitDB(config.Database)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(db.Close)

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedGenreSplit stores 20 games, alternating between two fresh genres, and
// returns the genre names.
func seedGenreSplit(t *testing.T, db *database.DB) (string, string) {
	t.Helper()
	ctx := context.Background()
	suffix := uuid.NewString()[:8]
	genres := NewGenreRepository(db, zap.NewNop())
	games := NewGameRepository(db, zap.NewNop())

	a := &entity.Genre{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, Name: "Action " + suffix}
	b := &entity.Genre{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, Name: "RPG " + suffix}
	for _, g := range []*entity.Genre{a, b} {
		if err := genres.Create(ctx, g); err != nil {
			t.Fatalf("create genre: %v", err)
		}
	}

	var gameIDs []uuid.UUID
	t.Cleanup(func() {
		for _, id := range gameIDs {
			_ = games.Delete(context.Background(), id)
		}
		_, _ = db.Exec(context.Background(), `DELETE FROM genres WHERE id = ANY($1::uuid[])`, uuidStrings([]uuid.UUID{a.ID, b.ID}))
	})

	for i := 0; i < 20; i++ {
		now := time.Now()
		game := &entity.Game{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Title:       fmt.Sprintf("Game %d %s", i, suffix),
			Description: "Valid description for a seeded catalog entry. ",
			Rating:      float64((i*7)%10) + 0.5,
			UserRating:  5,
			Cover:       "covers/test.jpg",
			ReleaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Version:     "1.0.0",
		}
		genre := b.ID
		if i%2 == 0 {
			genre = a.ID
		}
		if err := games.Create(ctx, game, entity.GameLinks{GenreIDs: []uuid.UUID{genre}}); err != nil {
			t.Fatalf("create game: %v", err)
		}
		gameIDs = append(gameIDs, game.ID)
	}
	return a.Name, b.Name
}

func TestGameSearch_GenreFilterIsDistinct(t *testing.T) {
	db := openTestDB(t)
	genreA, _ := seedGenreSplit(t, db)
	repo := NewGameRepository(db, zap.NewNop())
	ctx := context.Background()

	filter := GameFilter{Genre: genreA}
	total, err := repo.Count(ctx, filter)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 10 {
		t.Errorf("Expected 10 games in genre, got %d", total)
	}

	found, err := repo.Search(ctx, filter, 16, 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	seen := make(map[uuid.UUID]bool)
	for _, g := range found {
		if seen[g.ID] {
			t.Errorf("Game %s returned twice", g.ID)
		}
		seen[g.ID] = true
	}
	if len(seen) != 10 {
		t.Errorf("Expected 10 distinct games, got %d", len(seen))
	}
}

func TestGameSearch_OrderByRating(t *testing.T) {
	db := openTestDB(t)
	genreA, genreB := seedGenreSplit(t, db)
	repo := NewGameRepository(db, zap.NewNop())

	for _, tt := range []struct {
		orderBy string
		desc    bool
	}{
		{"rating", false},
		{"-rating", true},
	} {
		for _, genre := range []string{genreA, genreB} {
			found, err := repo.Search(context.Background(), GameFilter{Genre: genre, OrderBy: tt.orderBy}, 16, 0)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			for i := 1; i < len(found); i++ {
				prev, cur := found[i-1].Rating, found[i].Rating
				if (!tt.desc && cur < prev) || (tt.desc && cur > prev) {
					t.Errorf("orderby=%s: rating %v follows %v", tt.orderBy, cur, prev)
				}
			}
		}
	}
}
