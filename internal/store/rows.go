package store

import (
	"database/sql"
	"time"

	"github.com/flashdeck/backend/internal/domain/deck"
	"github.com/flashdeck/backend/internal/domain/flashcard"
	"github.com/flashdeck/backend/internal/domain/history"
	"github.com/flashdeck/backend/internal/domain/user"
)

// Timestamps are stored as RFC 3339 text in UTC.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

type userRow struct {
	ID        string `db:"id"`
	Username  string `db:"username"`
	CreatedAt string `db:"created_at"`
}

func (r userRow) toDomain() *user.User {
	return &user.User{ID: r.ID, Username: r.Username, CreatedAt: parseTime(r.CreatedAt)}
}

type deckRow struct {
	ID          string `db:"id"`
	UserID      string `db:"user_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
	CardCount   int    `db:"card_count"`
}

func (r deckRow) toDomain() *deck.Deck {
	return &deck.Deck{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Flashcards:  []flashcard.Flashcard{},
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

type flashcardRow struct {
	ID           string         `db:"id"`
	DeckID       string         `db:"deck_id"`
	Front        string         `db:"front"`
	Back         string         `db:"back"`
	Difficulty   string         `db:"difficulty"`
	LastStudied  sql.NullString `db:"last_studied"`
	StudyCount   int            `db:"study_count"`
	CorrectCount int            `db:"correct_count"`
	CreatedAt    string         `db:"created_at"`
	UpdatedAt    string         `db:"updated_at"`
}

func (r flashcardRow) toDomain() flashcard.Flashcard {
	card := flashcard.Flashcard{
		ID:         r.ID,
		DeckID:     r.DeckID,
		Front:      r.Front,
		Back:       r.Back,
		Difficulty: flashcard.Difficulty(r.Difficulty),
		StudyStats: flashcard.StudyStats{
			StudyCount:   r.StudyCount,
			CorrectCount: r.CorrectCount,
		},
		CreatedAt: parseTime(r.CreatedAt),
		UpdatedAt: parseTime(r.UpdatedAt),
	}
	if r.LastStudied.Valid {
		t := parseTime(r.LastStudied.String)
		card.StudyStats.LastStudied = &t
	}
	return card
}

type studyStatsRow struct {
	StudyCount   int            `db:"study_count"`
	CorrectCount int            `db:"correct_count"`
	LastStudied  sql.NullString `db:"last_studied"`
}

func (r studyStatsRow) toDomain() flashcard.StudyStats {
	stats := flashcard.StudyStats{
		StudyCount:   r.StudyCount,
		CorrectCount: r.CorrectCount,
	}
	if r.LastStudied.Valid {
		t := parseTime(r.LastStudied.String)
		stats.LastStudied = &t
	}
	return stats
}

type historyRow struct {
	ID               string `db:"id"`
	DeckID           string `db:"deck_id"`
	StudiedAt        string `db:"studied_at"`
	TotalTimeSpent   int    `db:"total_time_spent"`
	CorrectAnswers   int    `db:"correct_answers"`
	IncorrectAnswers int    `db:"incorrect_answers"`
}

func (r historyRow) toDomain() history.Record {
	return history.Record{
		ID:               r.ID,
		DeckID:           r.DeckID,
		StudiedAt:        parseTime(r.StudiedAt),
		TotalTimeSpent:   r.TotalTimeSpent,
		CorrectAnswers:   r.CorrectAnswers,
		IncorrectAnswers: r.IncorrectAnswers,
	}
}
