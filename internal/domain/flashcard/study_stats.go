package flashcard

import "time"

// StudyStats tracks lifetime study statistics for a single card.
type StudyStats struct {
	LastStudied  *time.Time
	StudyCount   int
	CorrectCount int
}

// RecordAnswer counts one more study of the card. The correct count only
// moves when the answer was correct.
func (s *StudyStats) RecordAnswer(correct bool, now time.Time) {
	s.StudyCount++
	if correct {
		s.CorrectCount++
	}
	t := now.UTC()
	s.LastStudied = &t
}

// Accuracy is the lifetime percentage of correct answers for the card.
func (s StudyStats) Accuracy() int {
	return Percent(s.CorrectCount, s.StudyCount)
}

// Percent returns round(part/total*100), rounding halves up, or 0 when
// total is not positive.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}
