package studysession_test

import (
	"testing"

	studysession "github.com/flashdeck/backend/internal/domain/study_session"
)

func TestStats_Update(t *testing.T) {
	start := studysession.Stats{Correct: 2, Incorrect: 1, Total: 3}

	got := start.Update(true)

	want := studysession.Stats{Correct: 3, Incorrect: 1, Total: 4}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if start.Total != 3 {
		t.Errorf("Update must not modify the receiver, got %+v", start)
	}
}

func TestStats_UpdateIncorrect(t *testing.T) {
	got := studysession.Stats{}.Update(false)

	want := studysession.Stats{Correct: 0, Incorrect: 1, Total: 1}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestStats_TotalInvariant(t *testing.T) {
	answers := []bool{true, false, false, true, true, false, true}

	var s studysession.Stats
	for i, a := range answers {
		s = s.Update(a)
		if s.Total != s.Correct+s.Incorrect {
			t.Fatalf("after answer %d: total %d != correct %d + incorrect %d", i, s.Total, s.Correct, s.Incorrect)
		}
		if s.Total != i+1 {
			t.Fatalf("after answer %d: expected total %d, got %d", i, i+1, s.Total)
		}
	}
}

func TestStats_Accuracy(t *testing.T) {
	tests := []struct {
		name  string
		stats studysession.Stats
		want  int
	}{
		{"no answers", studysession.Stats{}, 0},
		{"two of three", studysession.Stats{Correct: 2, Incorrect: 1, Total: 3}, 67},
		{"one of three", studysession.Stats{Correct: 1, Incorrect: 2, Total: 3}, 33},
		{"half", studysession.Stats{Correct: 1, Incorrect: 1, Total: 2}, 50},
		{"all wrong", studysession.Stats{Incorrect: 4, Total: 4}, 0},
		{"all right", studysession.Stats{Correct: 5, Total: 5}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.Accuracy(); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
