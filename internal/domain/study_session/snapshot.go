package studysession

// Snapshot is a serialisable view of a session, used by the terminal client
// for rendering and by tests for whole-state comparisons.
type Snapshot struct {
	DeckID       string   `json:"deck_id"`
	DeckName     string   `json:"deck_name"`
	State        State    `json:"state"`
	Index        int      `json:"current_index"`
	Length       int      `json:"length"`
	Flipped      bool     `json:"flipped"`
	Stats        Stats    `json:"stats"`
	Accuracy     int      `json:"accuracy"`
	Elapsed      int      `json:"elapsed_seconds"`
	Complete     bool     `json:"complete"`
	IncorrectIDs []string `json:"incorrect_card_ids"`
	Error        string   `json:"error,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		DeckID:       s.deckID,
		DeckName:     s.deck.Name,
		State:        s.state,
		Index:        s.index,
		Length:       len(s.cards),
		Flipped:      s.state == Flipped,
		Stats:        s.stats,
		Accuracy:     s.stats.Accuracy(),
		Elapsed:      s.elapsed,
		Complete:     s.state == Complete,
		IncorrectIDs: s.Summary().Incorrect,
	}
	if s.loadErr != nil {
		snap.Error = s.loadErr.Error()
	}
	return snap
}
