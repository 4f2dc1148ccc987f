package request

// GameSearchRequest carries the raw /games/ query string. Nothing is
// rejected here: page is clamped by the paginator and orderby is checked
// against the sort whitelist.
type GameSearchRequest struct {
	Search  string
	Genre   string
	OrderBy string
	Page    string
}

// GameRequest is used for both create and full update. Field ranges are
// enforced by entity.Game.Validate.
type GameRequest struct {
	Title            string   `json:"title" validate:"required"`
	Subtitle         *string  `json:"subtitle,omitempty"`
	Description      string   `json:"description" validate:"required"`
	Rating           float64  `json:"rating"`
	UserRating       float64  `json:"user_rating"`
	Cover            string   `json:"cover" validate:"required"`
	Banner           *string  `json:"banner,omitempty"`
	ReleaseDate      string   `json:"release_date" validate:"required,datetime=2006-01-02"`
	Version          string   `json:"version,omitempty"`
	GameplayDuration float64  `json:"gameplay_duration"`
	Online           bool     `json:"online"`
	Offline          bool     `json:"offline"`
	GenreIDs         []string `json:"genre_ids,omitempty" validate:"omitempty,dive,uuid"`
	DeveloperIDs     []string `json:"developer_ids,omitempty" validate:"omitempty,dive,uuid"`
	PublisherIDs     []string `json:"publisher_ids,omitempty" validate:"omitempty,dive,uuid"`
	PlatformIDs      []string `json:"platform_ids,omitempty" validate:"omitempty,dive,uuid"`
}
