package deck

import "github.com/flashdeck/backend/internal/domain/flashcard"

// Stats aggregates lifetime study statistics over a deck's cards.
type Stats struct {
	DeckID       string
	TotalCards   int
	StudiedCards int
	TotalStudies int
	TotalCorrect int
	Accuracy     int // 0-100, rounded
}

// ComputeStats derives deck totals from per-card study stats, which are the
// canonical representation.
func ComputeStats(deckID string, cards []flashcard.Flashcard) Stats {
	s := Stats{DeckID: deckID, TotalCards: len(cards)}
	for _, c := range cards {
		if c.StudyStats.StudyCount > 0 {
			s.StudiedCards++
		}
		s.TotalStudies += c.StudyStats.StudyCount
		s.TotalCorrect += c.StudyStats.CorrectCount
	}
	s.Accuracy = flashcard.Percent(s.TotalCorrect, s.TotalStudies)
	return s
}
