package store

import (
	"context"
	"errors"
	"time"

	"github.com/flashdeck/backend/internal/domain/deck"
	"github.com/flashdeck/backend/internal/domain/flashcard"
	"github.com/flashdeck/backend/internal/domain/history"
	"github.com/flashdeck/backend/internal/domain/user"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// DeckSummary is a deck without its cards, plus how many cards it holds.
type DeckSummary struct {
	Deck      *deck.Deck
	CardCount int
}

// Store is the persistence layer consumed by the HTTP handlers.
type Store interface {
	SaveUser(ctx context.Context, u *user.User) error
	GetUser(ctx context.Context, id string) (*user.User, error)

	SaveDeck(ctx context.Context, d *deck.Deck) error
	GetDeck(ctx context.Context, id string) (*deck.Deck, error)
	ListDecks(ctx context.Context) ([]DeckSummary, error)
	ListDecksByUser(ctx context.Context, userID string) ([]DeckSummary, error)
	UpdateDeck(ctx context.Context, d *deck.Deck) error
	DeleteDeck(ctx context.Context, id string) error

	AddFlashcards(ctx context.Context, cards ...flashcard.Flashcard) error
	GetFlashcard(ctx context.Context, id string) (*flashcard.Flashcard, error)
	ListFlashcards(ctx context.Context, deckID string) ([]flashcard.Flashcard, error)
	UpdateFlashcard(ctx context.Context, card *flashcard.Flashcard) error
	DeleteFlashcard(ctx context.Context, id string) error
	RecordAnswer(ctx context.Context, cardID string, correct bool, at time.Time) (flashcard.StudyStats, error)

	SaveHistory(ctx context.Context, rec *history.Record) error
	ListHistory(ctx context.Context, deckID string) ([]history.Record, error)

	Close() error
}
