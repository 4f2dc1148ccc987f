package entity

import (
	"time"

	"game-catalog/pkg/utils"

	"github.com/google/uuid"
)

const DefaultGameVersion = "1.0.0"

type Game struct {
	Base
	Title            string    `db:"title"`
	Subtitle         *string   `db:"subtitle"`
	Description      string    `db:"description"`
	Rating           float64   `db:"rating"`
	UserRating       float64   `db:"user_rating"`
	Cover            string    `db:"cover"`
	Banner           *string   `db:"banner"`
	ReleaseDate      time.Time `db:"release_date"`
	Version          string    `db:"version"`
	GameplayDuration float64   `db:"gameplay_duration"`
	TotalViews       int64     `db:"total_views"`
	MonthlyViews     int64     `db:"monthly_views"`
	WeeklyViews      int64     `db:"weekly_views"`
	Online           bool      `db:"online"`
	Offline          bool      `db:"offline"`

	Genres     []*Genre    `db:"-"`
	Developers []*Company  `db:"-"`
	Publishers []*Company  `db:"-"`
	Platforms  []*Platform `db:"-"`
}

// GameLinks are the many-to-many associations written together with a game.
type GameLinks struct {
	GenreIDs     []uuid.UUID
	DeveloperIDs []uuid.UUID
	PublisherIDs []uuid.UUID
	PlatformIDs  []uuid.UUID
}

var (
	gameTitleLength       = utils.LengthRange(1, 250)
	gameSubtitleLength    = utils.LengthRange(0, 250)
	gameDescriptionLength = utils.LengthRange(100, 2000)
	gameVersionLength     = utils.LengthRange(1, 15)
	ratingRange           = utils.NumericRange(0, 10)
	nonNegative           = utils.MinValue(0)
)

var gameRules = utils.FieldRules[*Game]{
	"title":       func(g *Game) error { return gameTitleLength.Validate(g.Title) },
	"description": func(g *Game) error { return gameDescriptionLength.Validate(g.Description) },
	"rating":      func(g *Game) error { return ratingRange.Validate(g.Rating) },
	"user_rating": func(g *Game) error { return ratingRange.Validate(g.UserRating) },
	"version":     func(g *Game) error { return gameVersionLength.Validate(g.Version) },
	"subtitle": func(g *Game) error {
		if g.Subtitle == nil {
			return nil
		}
		return gameSubtitleLength.Validate(*g.Subtitle)
	},
	"cover": func(g *Game) error {
		if g.Cover == "" {
			return &utils.ValidationError{Message: "required"}
		}
		return nil
	},
	"release_date": func(g *Game) error {
		if g.ReleaseDate.IsZero() {
			return &utils.ValidationError{Message: "required"}
		}
		return nil
	},
	"gameplay_duration": func(g *Game) error { return nonNegative.Validate(g.GameplayDuration) },
	"total_views":       func(g *Game) error { return nonNegative.Validate(float64(g.TotalViews)) },
	"monthly_views":     func(g *Game) error { return nonNegative.Validate(float64(g.MonthlyViews)) },
	"weekly_views":      func(g *Game) error { return nonNegative.Validate(float64(g.WeeklyViews)) },
}

// Validate checks every field constraint. It must pass before any write.
func (g *Game) Validate() error {
	return gameRules.Check(g)
}

func (g *Game) GenreNames() []string {
	names := make([]string, 0, len(g.Genres))
	for _, genre := range g.Genres {
		names = append(names, genre.Name)
	}
	return names
}
