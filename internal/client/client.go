package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flashdeck/backend/internal/api"
	"github.com/flashdeck/backend/internal/domain/flashcard"
	studysession "github.com/flashdeck/backend/internal/domain/study_session"
)

var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response other than 404.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

// Client talks to the flashdeck HTTP API. It implements the study session
// ports so a session can be driven against a remote server.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ studysession.CardSource  = (*Client)(nil)
	_ studysession.DeckSource  = (*Client)(nil)
	_ studysession.StatsSink   = (*Client)(nil)
	_ studysession.HistorySink = (*Client)(nil)
)

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchCards returns the deck's cards in study order.
func (c *Client) FetchCards(ctx context.Context, deckID string) ([]flashcard.Flashcard, error) {
	var resp []api.FlashcardResponse
	if err := c.do(ctx, http.MethodGet, "/decks/"+url.PathEscape(deckID)+"/flashcards", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch cards for deck %s: %w", deckID, err)
	}

	cards := make([]flashcard.Flashcard, len(resp))
	for i, r := range resp {
		cards[i] = flashcard.Flashcard{
			ID:         r.ID,
			DeckID:     r.DeckID,
			Front:      r.Front,
			Back:       r.Back,
			Difficulty: flashcard.Difficulty(r.Difficulty),
			StudyStats: flashcard.StudyStats{
				LastStudied:  r.StudyStats.LastStudied,
				StudyCount:   r.StudyStats.StudyCount,
				CorrectCount: r.StudyStats.CorrectCount,
			},
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
	}
	return cards, nil
}

func (c *Client) FetchDeck(ctx context.Context, deckID string) (studysession.DeckInfo, error) {
	var resp api.DeckResponse
	if err := c.do(ctx, http.MethodGet, "/decks/"+url.PathEscape(deckID), nil, &resp); err != nil {
		return studysession.DeckInfo{}, fmt.Errorf("fetch deck %s: %w", deckID, err)
	}
	return studysession.DeckInfo{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
	}, nil
}

func (c *Client) RecordAnswer(ctx context.Context, cardID string, correct bool) error {
	body := api.StudyStatsRequest{IsCorrect: &correct}
	if err := c.do(ctx, http.MethodPatch, "/flashcards/"+url.PathEscape(cardID)+"/study-stats", body, nil); err != nil {
		return fmt.Errorf("record answer for card %s: %w", cardID, err)
	}
	return nil
}

func (c *Client) RecordSession(ctx context.Context, summary studysession.Summary) error {
	body := api.CreateStudySessionRequest{
		TotalTimeSpent:   summary.Elapsed,
		CorrectAnswers:   summary.Stats.Correct,
		IncorrectAnswers: summary.Stats.Incorrect,
	}
	if err := c.do(ctx, http.MethodPost, "/decks/"+url.PathEscape(summary.DeckID)+"/sessions", body, nil); err != nil {
		return fmt.Errorf("record session for deck %s: %w", summary.DeckID, err)
	}
	return nil
}

// ListDecks returns every deck, or only userID's when it is set.
func (c *Client) ListDecks(ctx context.Context, userID string) ([]api.DeckResponse, error) {
	path := "/decks"
	if userID != "" {
		path = "/users/" + url.PathEscape(userID) + "/decks"
	}
	var resp []api.DeckResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return resp, nil
}

func (c *Client) ListHistory(ctx context.Context, deckID string) ([]api.StudySessionResponse, error) {
	var resp []api.StudySessionResponse
	if err := c.do(ctx, http.MethodGet, "/decks/"+url.PathEscape(deckID)+"/sessions", nil, &resp); err != nil {
		return nil, fmt.Errorf("list history for deck %s: %w", deckID, err)
	}
	return resp, nil
}

// do sends a JSON request and decodes a JSON response into out, if given.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Error)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
