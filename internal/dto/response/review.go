package response

import (
	"time"

	"game-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID          string    `json:"id"`
	GameID      string    `json:"game_id"`
	AuthorID    string    `json:"author_id"`
	Author      string    `json:"author,omitempty"`
	Score       float64   `json:"score"`
	Recommend   bool      `json:"recommend"`
	Text        string    `json:"text"`
	Status      int       `json:"status"`
	StatusLabel string    `json:"status_label"`
	Platforms   []string  `json:"platforms"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.GameReview) ReviewResponse {
	return ReviewResponse{
		ID:          review.ID.String(),
		GameID:      review.GameID.String(),
		AuthorID:    review.AuthorID.String(),
		Author:      review.AuthorName,
		Score:       review.Score,
		Recommend:   review.Recommend,
		Text:        review.Text,
		Status:      int(review.Status),
		StatusLabel: review.Status.Label(),
		Platforms:   PlatformNames(review.Platforms),
		CreatedAt:   review.CreatedAt,
	}
}
