package entity

import (
	"game-catalog/pkg/utils"

	"github.com/google/uuid"
)

// ReviewStatus is how far the author got with the game.
type ReviewStatus int

const (
	ReviewStatusPlanning ReviewStatus = iota
	ReviewStatusPlaying
	ReviewStatusFinishedMain
	ReviewStatusCompleted
	ReviewStatusDropped
)

var reviewStatusLabels = map[ReviewStatus]string{
	ReviewStatusPlanning:     "Planning to play",
	ReviewStatusPlaying:      "Playing",
	ReviewStatusFinishedMain: "Finished main game",
	ReviewStatusCompleted:    "Completed",
	ReviewStatusDropped:      "Dropped",
}

func (s ReviewStatus) Valid() bool {
	_, ok := reviewStatusLabels[s]
	return ok
}

func (s ReviewStatus) Label() string {
	return reviewStatusLabels[s]
}

type GameReview struct {
	BaseSimple
	GameID    uuid.UUID    `db:"game_id"`
	AuthorID  uuid.UUID    `db:"author_id"`
	Score     float64      `db:"score"`
	Recommend bool         `db:"recommend"`
	Text      string       `db:"text"`
	Status    ReviewStatus `db:"status"`

	AuthorName  string      `db:"-"`
	Platforms   []*Platform `db:"-"`
	PlatformIDs []uuid.UUID `db:"-"`
}

var reviewTextLength = utils.LengthRange(20, 2000)

var reviewRules = utils.FieldRules[*GameReview]{
	"text":  func(r *GameReview) error { return reviewTextLength.Validate(r.Text) },
	"score": func(r *GameReview) error { return ratingRange.Validate(r.Score) },
	"status": func(r *GameReview) error {
		if !r.Status.Valid() {
			return &utils.ValidationError{Message: utils.MsgInvalid}
		}
		return nil
	},
}

// Validate checks text length, score range and status before any write.
func (r *GameReview) Validate() error {
	return reviewRules.Check(r)
}
