// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/flashdeck/backend/internal/domain/deck"
	"github.com/flashdeck/backend/internal/domain/flashcard"
	"github.com/flashdeck/backend/internal/domain/history"
	"github.com/flashdeck/backend/internal/domain/user"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS flashcards (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL,
    front TEXT NOT NULL,
    back TEXT NOT NULL,
    difficulty TEXT NOT NULL DEFAULT 'medium',
    position INTEGER NOT NULL,
    last_studied TEXT,
    study_count INTEGER NOT NULL DEFAULT 0,
    correct_count INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (deck_id) REFERENCES decks(id)
);

CREATE INDEX IF NOT EXISTS idx_flashcards_deck ON flashcards(deck_id, position);

CREATE TABLE IF NOT EXISTS study_sessions (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL,
    studied_at TEXT NOT NULL,
    total_time_spent INTEGER NOT NULL,
    correct_answers INTEGER NOT NULL DEFAULT 0,
    incorrect_answers INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (deck_id) REFERENCES decks(id)
);
`

const (
	selectDeck = `SELECT id, user_id, name, description, created_at, updated_at FROM decks`

	selectDeckSummary = `
SELECT d.id, d.user_id, d.name, d.description, d.created_at, d.updated_at, COUNT(f.id) AS card_count
FROM decks d LEFT JOIN flashcards f ON f.deck_id = d.id`

	selectFlashcard = `
SELECT id, deck_id, front, back, difficulty, last_studied, study_count, correct_count, created_at, updated_at
FROM flashcards`
)

type SQLiteStore struct {
	db *sqlx.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Users
// ============================================================================

func (s *SQLiteStore) SaveUser(ctx context.Context, u *user.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, created_at) VALUES (?, ?, ?)",
		u.ID, u.Username, formatTime(u.CreatedAt),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("user %q: %w", u.Username, ErrConflict)
	}
	return err
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*user.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, "SELECT id, username, created_at FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// ============================================================================
// Decks
// ============================================================================

func (s *SQLiteStore) SaveDeck(ctx context.Context, d *deck.Deck) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO decks (id, user_id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		d.ID, d.UserID, d.Name, d.Description, formatTime(d.CreatedAt), formatTime(d.UpdatedAt),
	)
	return err
}

// GetDeck returns the deck with its flashcards in study order.
func (s *SQLiteStore) GetDeck(ctx context.Context, id string) (*deck.Deck, error) {
	var row deckRow
	err := s.db.GetContext(ctx, &row, selectDeck+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	d := row.toDomain()
	cards, err := s.listFlashcards(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	d.Flashcards = cards
	return d, nil
}

func (s *SQLiteStore) ListDecks(ctx context.Context) ([]DeckSummary, error) {
	return s.listDeckSummaries(ctx, selectDeckSummary+" GROUP BY d.id ORDER BY d.created_at, d.id")
}

func (s *SQLiteStore) ListDecksByUser(ctx context.Context, userID string) ([]DeckSummary, error) {
	return s.listDeckSummaries(ctx,
		selectDeckSummary+" WHERE d.user_id = ? GROUP BY d.id ORDER BY d.created_at, d.id",
		userID,
	)
}

func (s *SQLiteStore) listDeckSummaries(ctx context.Context, query string, args ...any) ([]DeckSummary, error) {
	var rows []deckRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	decks := make([]DeckSummary, len(rows))
	for i, r := range rows {
		decks[i] = DeckSummary{Deck: r.toDomain(), CardCount: r.CardCount}
	}
	return decks, nil
}

func (s *SQLiteStore) UpdateDeck(ctx context.Context, d *deck.Deck) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE decks SET name = ?, description = ?, updated_at = ? WHERE id = ?",
		d.Name, d.Description, formatTime(d.UpdatedAt), d.ID,
	)
	return checkAffected(result, err)
}

// DeleteDeck removes the deck together with its flashcards and history.
func (s *SQLiteStore) DeleteDeck(ctx context.Context, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM study_sessions WHERE deck_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM flashcards WHERE deck_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM decks WHERE id = ?", id)
	if err := checkAffected(result, err); err != nil {
		return err
	}

	return tx.Commit()
}

// ============================================================================
// Flashcards
// ============================================================================

// AddFlashcards inserts cards atomically, appending each to the end of its
// deck's study order.
func (s *SQLiteStore) AddFlashcards(ctx context.Context, cards ...flashcard.Flashcard) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range cards {
		_, err := tx.ExecContext(ctx, `
INSERT INTO flashcards (id, deck_id, front, back, difficulty, position, study_count, correct_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM flashcards WHERE deck_id = ?), ?, ?, ?, ?)`,
			c.ID, c.DeckID, c.Front, c.Back, string(c.Difficulty), c.DeckID,
			c.StudyStats.StudyCount, c.StudyStats.CorrectCount,
			formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert flashcard %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetFlashcard(ctx context.Context, id string) (*flashcard.Flashcard, error) {
	card, err := getFlashcard(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *SQLiteStore) ListFlashcards(ctx context.Context, deckID string) ([]flashcard.Flashcard, error) {
	return s.listFlashcards(ctx, s.db, deckID)
}

func (s *SQLiteStore) listFlashcards(ctx context.Context, q sqlx.QueryerContext, deckID string) ([]flashcard.Flashcard, error) {
	var rows []flashcardRow
	if err := sqlx.SelectContext(ctx, q, &rows, selectFlashcard+" WHERE deck_id = ? ORDER BY position, id", deckID); err != nil {
		return nil, err
	}

	cards := make([]flashcard.Flashcard, len(rows))
	for i, r := range rows {
		cards[i] = r.toDomain()
	}
	return cards, nil
}

func (s *SQLiteStore) UpdateFlashcard(ctx context.Context, card *flashcard.Flashcard) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE flashcards SET front = ?, back = ?, difficulty = ?, updated_at = ? WHERE id = ?",
		card.Front, card.Back, string(card.Difficulty), formatTime(card.UpdatedAt), card.ID,
	)
	return checkAffected(result, err)
}

func (s *SQLiteStore) DeleteFlashcard(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM flashcards WHERE id = ?", id)
	return checkAffected(result, err)
}

// RecordAnswer applies one answer to a card's study stats and returns the
// stats as stored. The increment is a single statement so concurrent answers
// for the same card are never lost.
func (s *SQLiteStore) RecordAnswer(ctx context.Context, cardID string, correct bool, at time.Time) (flashcard.StudyStats, error) {
	correctDelta := 0
	if correct {
		correctDelta = 1
	}

	var row studyStatsRow
	err := s.db.GetContext(ctx, &row, `
UPDATE flashcards
SET study_count = study_count + 1, correct_count = correct_count + ?, last_studied = ?
WHERE id = ?
RETURNING study_count, correct_count, last_studied`,
		correctDelta, formatTime(at), cardID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return flashcard.StudyStats{}, ErrNotFound
	}
	if err != nil {
		return flashcard.StudyStats{}, err
	}
	return row.toDomain(), nil
}

func getFlashcard(ctx context.Context, q sqlx.QueryerContext, id string) (flashcard.Flashcard, error) {
	var row flashcardRow
	err := sqlx.GetContext(ctx, q, &row, selectFlashcard+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return flashcard.Flashcard{}, ErrNotFound
	}
	if err != nil {
		return flashcard.Flashcard{}, err
	}
	return row.toDomain(), nil
}

// ============================================================================
// Study history
// ============================================================================

func (s *SQLiteStore) SaveHistory(ctx context.Context, rec *history.Record) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO study_sessions (id, deck_id, studied_at, total_time_spent, correct_answers, incorrect_answers) VALUES (?, ?, ?, ?, ?, ?)",
		rec.ID, rec.DeckID, formatTime(rec.StudiedAt), rec.TotalTimeSpent, rec.CorrectAnswers, rec.IncorrectAnswers,
	)
	return err
}

// ListHistory returns a deck's study sessions, most recent first.
func (s *SQLiteStore) ListHistory(ctx context.Context, deckID string) ([]history.Record, error) {
	var rows []historyRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT id, deck_id, studied_at, total_time_spent, correct_answers, incorrect_answers FROM study_sessions WHERE deck_id = ? ORDER BY studied_at DESC, id",
		deckID,
	)
	if err != nil {
		return nil, err
	}

	records := make([]history.Record, len(rows))
	for i, r := range rows {
		records[i] = r.toDomain()
	}
	return records, nil
}

func checkAffected(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
