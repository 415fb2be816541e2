package history

import (
	"errors"
	"time"

	"github.com/flashdeck/backend/internal/domain/flashcard"
	"github.com/flashdeck/backend/internal/id"
)

// Record is the stored summary of one finished study pass over a deck.
type Record struct {
	ID               string
	DeckID           string
	StudiedAt        time.Time
	TotalTimeSpent   int // seconds
	CorrectAnswers   int
	IncorrectAnswers int
}

func New(deckID string, timeSpent, correct, incorrect int) (*Record, error) {
	if timeSpent < 0 || correct < 0 || incorrect < 0 {
		return nil, errors.New("session totals cannot be negative")
	}
	if correct+incorrect == 0 {
		return nil, errors.New("session must contain at least one answer")
	}
	return &Record{
		ID:               id.GenerateID(),
		DeckID:           deckID,
		StudiedAt:        time.Now().UTC(),
		TotalTimeSpent:   timeSpent,
		CorrectAnswers:   correct,
		IncorrectAnswers: incorrect,
	}, nil
}

// StudyCount is the number of cards answered in the pass.
func (r Record) StudyCount() int {
	return r.CorrectAnswers + r.IncorrectAnswers
}

// Accuracy is the rounded percentage of correct answers in the pass.
func (r Record) Accuracy() int {
	return flashcard.Percent(r.CorrectAnswers, r.StudyCount())
}
