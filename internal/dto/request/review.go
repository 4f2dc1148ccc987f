package request

// CreateReviewRequest only checks the payload shape. Score range, text length
// and status are checked by entity.GameReview.Validate.
type CreateReviewRequest struct {
	Score       *float64 `json:"score" validate:"required"`
	Recommend   *bool    `json:"recommend,omitempty"`
	Text        string   `json:"text" validate:"required"`
	Status      *int     `json:"status" validate:"required"`
	PlatformIDs []string `json:"platform_ids,omitempty" validate:"omitempty,dive,uuid"`
}
