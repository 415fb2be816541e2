package studysession

import (
	"context"

	"github.com/flashdeck/backend/internal/domain/flashcard"
)

// DeckInfo is the deck metadata shown in the session header.
type DeckInfo struct {
	ID          string
	Name        string
	Description string
}

// CardSource returns a deck's cards in study order. The order is treated
// as fixed for the lifetime of a session.
type CardSource interface {
	FetchCards(ctx context.Context, deckID string) ([]flashcard.Flashcard, error)
}

// DeckSource returns deck metadata. It is display-only.
type DeckSource interface {
	FetchDeck(ctx context.Context, deckID string) (DeckInfo, error)
}

// StatsSink persists the outcome of a single answer for a card.
type StatsSink interface {
	RecordAnswer(ctx context.Context, cardID string, correct bool) error
}

// HistorySink stores the summary of a finished pass.
type HistorySink interface {
	RecordSession(ctx context.Context, summary Summary) error
}
