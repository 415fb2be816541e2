package deck

import (
	"errors"
	"strings"
	"time"

	"github.com/flashdeck/backend/internal/domain/flashcard"
	"github.com/flashdeck/backend/internal/id"
)

var ErrEmptyName = errors.New("deck name cannot be empty")

type Deck struct {
	ID          string
	Name        string
	Description string
	UserID      string
	Flashcards  []flashcard.Flashcard
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func New(userID, name, description string) (*Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now().UTC()
	return &Deck{
		ID:          id.GenerateID(),
		Name:        name,
		Description: description,
		UserID:      userID,
		Flashcards:  []flashcard.Flashcard{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Rename applies a partial update. Nil fields are left untouched.
func (d *Deck) Rename(name, description *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		d.Name = trimmed
	}
	if description != nil {
		d.Description = *description
	}
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// AddFlashcard builds a card owned by this deck and appends it.
func (d *Deck) AddFlashcard(front, back string, difficulty flashcard.Difficulty) (flashcard.Flashcard, error) {
	card, err := flashcard.New(d.ID, front, back, difficulty)
	if err != nil {
		return flashcard.Flashcard{}, err
	}
	d.Flashcards = append(d.Flashcards, *card)
	return *card, nil
}
