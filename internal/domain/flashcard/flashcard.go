package flashcard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flashdeck/backend/internal/id"
)

var (
	ErrEmptyFront        = errors.New("flashcard front cannot be empty")
	ErrEmptyBack         = errors.New("flashcard back cannot be empty")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty accepts "", which maps to Medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Medium, nil
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
}

type Flashcard struct {
	ID         string
	DeckID     string
	Front      string
	Back       string
	Difficulty Difficulty
	StudyStats StudyStats
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func New(deckID, front, back string, difficulty Difficulty) (*Flashcard, error) {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" {
		return nil, ErrEmptyFront
	}
	if back == "" {
		return nil, ErrEmptyBack
	}
	d, err := ParseDifficulty(string(difficulty))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Flashcard{
		ID:         id.GenerateID(),
		DeckID:     deckID,
		Front:      front,
		Back:       back,
		Difficulty: d,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Edit applies a partial update. Nil fields are left untouched; provided
// text fields must not be blank.
func (f *Flashcard) Edit(front, back *string, difficulty *Difficulty) error {
	if front != nil {
		v := strings.TrimSpace(*front)
		if v == "" {
			return ErrEmptyFront
		}
		f.Front = v
	}
	if back != nil {
		v := strings.TrimSpace(*back)
		if v == "" {
			return ErrEmptyBack
		}
		f.Back = v
	}
	if difficulty != nil {
		d, err := ParseDifficulty(string(*difficulty))
		if err != nil {
			return err
		}
		f.Difficulty = d
	}
	f.UpdatedAt = time.Now().UTC()
	return nil
}
