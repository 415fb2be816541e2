package studysession

// Config holds optional constraints for a study session.
type Config struct {
	MaxCards *int // nil = every card in the deck
}

// DefaultConfig returns a config with no constraints.
func DefaultConfig() Config {
	return Config{MaxCards: nil}
}
