package flashcard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/flashdeck/backend/internal/domain/flashcard"
)

func TestNew_DefaultsToMedium(t *testing.T) {
	card, err := flashcard.New("deck-1", " What is a goroutine? ", "A lightweight thread", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if card.Difficulty != flashcard.Medium {
		t.Errorf("expected difficulty %q, got %q", flashcard.Medium, card.Difficulty)
	}
	if card.Front != "What is a goroutine?" {
		t.Errorf("expected trimmed front, got %q", card.Front)
	}
	if card.StudyStats.LastStudied != nil || card.StudyStats.StudyCount != 0 {
		t.Errorf("expected zero study stats, got %+v", card.StudyStats)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		front      string
		back       string
		difficulty flashcard.Difficulty
		wantErr    error
	}{
		{"empty front", "", "back", "", flashcard.ErrEmptyFront},
		{"blank back", "front", "   ", "", flashcard.ErrEmptyBack},
		{"bad difficulty", "front", "back", "brutal", flashcard.ErrInvalidDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := flashcard.New("deck-1", tt.front, tt.back, tt.difficulty)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]flashcard.Difficulty{
		"":       flashcard.Medium,
		"easy":   flashcard.Easy,
		" HARD ": flashcard.Hard,
	} {
		got, err := flashcard.ParseDifficulty(in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): unexpected error %v", in, err)
		}
		if got != want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEdit(t *testing.T) {
	card, _ := flashcard.New("deck-1", "front", "back", flashcard.Easy)

	back := "new back"
	hard := flashcard.Hard
	if err := card.Edit(nil, &back, &hard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Front != "front" || card.Back != "new back" || card.Difficulty != flashcard.Hard {
		t.Errorf("unexpected card after edit: %+v", card)
	}

	blank := " "
	if err := card.Edit(&blank, nil, nil); !errors.Is(err, flashcard.ErrEmptyFront) {
		t.Errorf("expected ErrEmptyFront, got %v", err)
	}
	if card.Front != "front" {
		t.Errorf("front changed by rejected edit: %q", card.Front)
	}
}

func TestStudyStats_RecordAnswer(t *testing.T) {
	var stats flashcard.StudyStats
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	stats.RecordAnswer(true, now)
	stats.RecordAnswer(false, now.Add(time.Minute))

	if stats.StudyCount != 2 {
		t.Errorf("expected study count 2, got %d", stats.StudyCount)
	}
	if stats.CorrectCount != 1 {
		t.Errorf("expected correct count 1, got %d", stats.CorrectCount)
	}
	if stats.LastStudied == nil || !stats.LastStudied.Equal(now.Add(time.Minute)) {
		t.Errorf("expected last studied to be the latest answer, got %v", stats.LastStudied)
	}
	if stats.Accuracy() != 50 {
		t.Errorf("expected accuracy 50, got %d", stats.Accuracy())
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{2, 3, 67},
		{1, 3, 33},
		{1, 8, 13}, // 12.5 rounds up
		{3, 3, 100},
		{5, -1, 0},
	}

	for _, tt := range tests {
		if got := flashcard.Percent(tt.part, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}
