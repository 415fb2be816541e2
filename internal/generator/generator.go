package generator

import "context"

// Card is a generated front/back pair, not yet attached to a deck.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Generator turns free text into flashcards.
// Implementations may call an LLM or return canned results (for tests).
type Generator interface {
	// Generate returns at most maxCards cards built from text.
	Generate(ctx context.Context, text string, maxCards int) ([]Card, error)
}
