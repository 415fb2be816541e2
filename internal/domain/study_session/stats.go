package studysession

import "github.com/flashdeck/backend/internal/domain/flashcard"

// Stats holds the running counters of one session pass.
// Total always equals Correct + Incorrect.
type Stats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Total     int `json:"total"`
}

// Update returns the counters after one more answer. The receiver is not
// modified.
func (s Stats) Update(correct bool) Stats {
	if correct {
		s.Correct++
	} else {
		s.Incorrect++
	}
	s.Total++
	return s
}

// Accuracy is round(correct/total*100), or 0 before the first answer.
func (s Stats) Accuracy() int {
	return flashcard.Percent(s.Correct, s.Total)
}
