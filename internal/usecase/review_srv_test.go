package usecase

import (
	"context"
	"errors"
	"testing"

	"game-catalog/internal/data/entity"
	"game-catalog/internal/dto/request"
	"game-catalog/pkg/utils"

	"github.com/google/uuid"
)

func reviewRequest(score float64, status int, text string) *request.CreateReviewRequest {
	return &request.CreateReviewRequest{
		Score:  &score,
		Text:   text,
		Status: &status,
	}
}

func TestCreateReview_Success(t *testing.T) {
	store := newFakeStore()
	game := makeGame("Hades")
	store.game.games[game.ID] = game
	author := uuid.New()

	svc := NewReviewService(store.repository(), testLogger())
	req := reviewRequest(9, int(entity.ReviewStatusCompleted), "Escaped the underworld at last, great run.")

	resp, err := svc.CreateReview(context.Background(), author, game.ID.String(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.review.reviews) != 1 {
		t.Fatalf("Expected one review stored, got %d", len(store.review.reviews))
	}
	if !resp.Recommend {
		t.Error("Expected recommend to default to true")
	}
	if resp.AuthorID != author.String() || resp.GameID != game.ID.String() {
		t.Errorf("Unexpected ownership %s / %s", resp.AuthorID, resp.GameID)
	}
	if resp.StatusLabel != "Completed" {
		t.Errorf("Expected status label 'Completed', got %q", resp.StatusLabel)
	}
}

func TestCreateReview_UnknownGame(t *testing.T) {
	store := newFakeStore()
	svc := NewReviewService(store.repository(), testLogger())
	req := reviewRequest(5, 1, "Could not even find this game anywhere.")

	_, err := svc.CreateReview(context.Background(), uuid.New(), uuid.NewString(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if len(store.review.reviews) != 0 {
		t.Error("Expected nothing stored")
	}
}

func TestCreateReview_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		req   *request.CreateReviewRequest
		field string
	}{
		{"short text", reviewRequest(5, 1, "meh"), "text"},
		{"score too high", reviewRequest(12, 1, "Far too generous a score for this."), "score"},
		{"unknown status", reviewRequest(5, 9, "Status value nobody has defined."), "status"},
		{"missing score", &request.CreateReviewRequest{Text: "No score supplied with this one."}, "score"},
		{"missing status", func() *request.CreateReviewRequest {
			r := reviewRequest(5, 1, "Status left out of this payload.")
			r.Status = nil
			return r
		}(), "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			game := makeGame("Hades")
			store.game.games[game.ID] = game
			svc := NewReviewService(store.repository(), testLogger())

			_, err := svc.CreateReview(context.Background(), uuid.New(), game.ID.String(), tt.req)
			var errs utils.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Expected ValidationErrors, got %v", err)
			}
			if _, ok := errs.Fields()[tt.field]; !ok {
				t.Errorf("Expected error on %s, got %v", tt.field, errs.Fields())
			}
			if len(store.review.reviews) != 0 {
				t.Error("Expected nothing stored")
			}
		})
	}
}

func TestDeleteReview(t *testing.T) {
	author := uuid.New()
	review := &entity.GameReview{BaseSimple: entity.BaseSimple{ID: uuid.New()}, AuthorID: author}

	tests := []struct {
		name     string
		userID   uuid.UUID
		reviewID string
		wantErr  error
	}{
		{"author deletes", author, review.ID.String(), nil},
		{"someone else", uuid.New(), review.ID.String(), ErrForbidden},
		{"unknown review", author, uuid.NewString(), ErrNotFound},
		{"malformed id", author, "42", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.review.reviews = []*entity.GameReview{review}
			svc := NewReviewService(store.repository(), testLogger())

			err := svc.DeleteReview(context.Background(), tt.userID, tt.reviewID)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(store.review.deleted) != 1 {
					t.Error("Expected review deleted")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if len(store.review.deleted) != 0 {
				t.Error("Expected nothing deleted")
			}
		})
	}
}
