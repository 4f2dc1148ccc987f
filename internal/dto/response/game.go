package response

import (
	"time"

	"game-catalog/internal/data/entity"
	"game-catalog/pkg/utils"
)

// GameSummary is a game card: list pages, home sections and related games.
type GameSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     *string  `json:"subtitle,omitempty"`
	Rating       float64  `json:"rating"`
	UserRating   float64  `json:"user_rating"`
	Cover        string   `json:"cover"`
	Banner       *string  `json:"banner,omitempty"`
	ReleaseDate  string   `json:"release_date"`
	WeeklyViews  int64    `json:"weekly_views"`
	MonthlyViews int64    `json:"monthly_views"`
	TotalViews   int64    `json:"total_views"`
	Genres       []string `json:"genres"`
}

type GameResponse struct {
	GameSummary
	Description      string    `json:"description"`
	Version          string    `json:"version"`
	GameplayDuration float64   `json:"gameplay_duration"`
	Online           bool      `json:"online"`
	Offline          bool      `json:"offline"`
	Developers       []string  `json:"developers"`
	Publishers       []string  `json:"publishers"`
	Platforms        []string  `json:"platforms"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type GameDetailResponse struct {
	Game    GameResponse     `json:"game"`
	Reviews []ReviewResponse `json:"reviews"`
	Related []GameSummary    `json:"related"`
}

// CatalogResponse is the /games/ listing with the filter state echoed back.
type CatalogResponse struct {
	PageTitle  string          `json:"page_title"`
	Heading    string          `json:"heading"`
	Search     string          `json:"search"`
	Genre      string          `json:"genre"`
	OrderBy    string          `json:"orderby"`
	Games      []GameSummary   `json:"games"`
	Genres     []GenreResponse `json:"genres"`
	Pagination PaginationMeta  `json:"pagination"`
}

// Helper converters
func GameToSummary(game *entity.Game) GameSummary {
	return GameSummary{
		ID:           game.ID.String(),
		Title:        game.Title,
		Subtitle:     game.Subtitle,
		Rating:       game.Rating,
		UserRating:   game.UserRating,
		Cover:        game.Cover,
		Banner:       game.Banner,
		ReleaseDate:  game.ReleaseDate.Format(utils.DateLayout),
		WeeklyViews:  game.WeeklyViews,
		MonthlyViews: game.MonthlyViews,
		TotalViews:   game.TotalViews,
		Genres:       game.GenreNames(),
	}
}

func GamesToSummaries(games []*entity.Game) []GameSummary {
	out := make([]GameSummary, len(games))
	for i, g := range games {
		out[i] = GameToSummary(g)
	}
	return out
}

func GameToResponse(game *entity.Game) GameResponse {
	return GameResponse{
		GameSummary:      GameToSummary(game),
		Description:      game.Description,
		Version:          game.Version,
		GameplayDuration: game.GameplayDuration,
		Online:           game.Online,
		Offline:          game.Offline,
		Developers:       CompanyNames(game.Developers),
		Publishers:       CompanyNames(game.Publishers),
		Platforms:        PlatformNames(game.Platforms),
		CreatedAt:        game.CreatedAt,
		UpdatedAt:        game.UpdatedAt,
	}
}
