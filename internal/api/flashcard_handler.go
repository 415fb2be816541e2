package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flashdeck/backend/internal/domain/flashcard"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateFlashcardRequest struct {
	Front      string `json:"front" validate:"required" example:"hablar"`
	Back       string `json:"back" validate:"required" example:"to speak"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard" example:"medium"`
}

type UpdateFlashcardRequest struct {
	Front      *string `json:"front,omitempty" example:"hablar"`
	Back       *string `json:"back,omitempty" example:"to speak"`
	Difficulty *string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard" example:"hard"`
}

func (r *UpdateFlashcardRequest) Validate() error {
	if r.Front == nil && r.Back == nil && r.Difficulty == nil {
		return errors.New("nothing to update")
	}
	return nil
}

type StudyStatsRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required" example:"true"`
}

type StudyStatsResponse struct {
	LastStudied  *time.Time `json:"last_studied"`
	StudyCount   int        `json:"study_count" example:"4"`
	CorrectCount int        `json:"correct_count" example:"3"`
	Accuracy     int        `json:"accuracy" example:"75"`
}

type FlashcardResponse struct {
	ID         string             `json:"id" example:"f1a2s3h4c5a6r7d8"`
	DeckID     string             `json:"deck_id" example:"d1e2c3k4d5e6c7k8"`
	Front      string             `json:"front" example:"hablar"`
	Back       string             `json:"back" example:"to speak"`
	Difficulty string             `json:"difficulty" example:"medium"`
	StudyStats StudyStatsResponse `json:"study_stats"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type BulkCreateResponse struct {
	AddedCount int                 `json:"added_count" example:"2"`
	Flashcards []FlashcardResponse `json:"flashcards"`
}

func newStudyStatsResponse(s flashcard.StudyStats) StudyStatsResponse {
	return StudyStatsResponse{
		LastStudied:  s.LastStudied,
		StudyCount:   s.StudyCount,
		CorrectCount: s.CorrectCount,
		Accuracy:     s.Accuracy(),
	}
}

func newFlashcardResponse(c flashcard.Flashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:         c.ID,
		DeckID:     c.DeckID,
		Front:      c.Front,
		Back:       c.Back,
		Difficulty: string(c.Difficulty),
		StudyStats: newStudyStatsResponse(c.StudyStats),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func newFlashcardListResponse(cards []flashcard.Flashcard) []FlashcardResponse {
	resp := make([]FlashcardResponse, len(cards))
	for i, c := range cards {
		resp[i] = newFlashcardResponse(c)
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listFlashcards returns a deck's cards in study order.
// @Summary      List flashcards
// @Description  Cards come back in the order they were added. An empty deck yields [].
// @Tags         Flashcards
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {array}   FlashcardResponse
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/flashcards [get]
func (h *Handler) listFlashcards(w http.ResponseWriter, r *http.Request) {
	d, err := h.store.GetDeck(r.Context(), r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}
	respondJSON(w, http.StatusOK, newFlashcardListResponse(d.Flashcards))
}

// addFlashcard appends one card to a deck.
// @Summary      Add a flashcard
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string                  true  "Deck ID"
// @Param        body    body      CreateFlashcardRequest  true  "Card to add"
// @Success      201     {object}  FlashcardResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/flashcards [post]
func (h *Handler) addFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateFlashcardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.store.GetDeck(ctx, r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}

	card, err := d.AddFlashcard(req.Front, req.Back, flashcard.Difficulty(req.Difficulty))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.AddFlashcards(ctx, card), "flashcard") {
		return
	}

	respondJSON(w, http.StatusCreated, newFlashcardResponse(card))
}

// addFlashcardsBulk appends several cards at once, all or nothing.
// @Summary      Add flashcards in bulk
// @Description  Body is a non-empty JSON array; every card needs front and back.
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        deckID  path      string                    true  "Deck ID"
// @Param        body    body      []CreateFlashcardRequest  true  "Cards to add"
// @Success      201     {object}  BulkCreateResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/flashcards/bulk [post]
func (h *Handler) addFlashcardsBulk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req []CreateFlashcardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req) == 0 {
		respondError(w, http.StatusBadRequest, "request body must be a non-empty array of flashcards")
		return
	}

	d, err := h.store.GetDeck(ctx, r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}

	cards := make([]flashcard.Flashcard, 0, len(req))
	for i, c := range req {
		card, err := d.AddFlashcard(c.Front, c.Back, flashcard.Difficulty(c.Difficulty))
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("flashcard %d: %v", i, err))
			return
		}
		cards = append(cards, card)
	}

	if h.handleStoreError(w, h.store.AddFlashcards(ctx, cards...), "flashcard") {
		return
	}

	respondJSON(w, http.StatusCreated, BulkCreateResponse{
		AddedCount: len(cards),
		Flashcards: newFlashcardListResponse(cards),
	})
}

// updateFlashcard edits a card's text or difficulty.
// @Summary      Update a flashcard
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        flashcardID  path      string                  true  "Flashcard ID"
// @Param        body         body      UpdateFlashcardRequest  true  "Fields to change"
// @Success      200          {object}  FlashcardResponse
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /flashcards/{flashcardID} [patch]
func (h *Handler) updateFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateFlashcardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.store.GetFlashcard(ctx, r.PathValue("flashcardID"))
	if h.handleStoreError(w, err, "flashcard") {
		return
	}

	var difficulty *flashcard.Difficulty
	if req.Difficulty != nil {
		d := flashcard.Difficulty(*req.Difficulty)
		difficulty = &d
	}
	if err := card.Edit(req.Front, req.Back, difficulty); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.UpdateFlashcard(ctx, card), "flashcard") {
		return
	}

	respondJSON(w, http.StatusOK, newFlashcardResponse(*card))
}

// deleteFlashcard removes a card from its deck.
// @Summary      Delete a flashcard
// @Tags         Flashcards
// @Param        flashcardID  path  string  true  "Flashcard ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /flashcards/{flashcardID} [delete]
func (h *Handler) deleteFlashcard(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteFlashcard(r.Context(), r.PathValue("flashcardID")), "flashcard") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// recordStudyStats applies one answer to a card's lifetime stats.
// @Summary      Record an answer
// @Description  Increments study_count, and correct_count when is_correct is true; sets last_studied to now.
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        flashcardID  path      string             true  "Flashcard ID"
// @Param        body         body      StudyStatsRequest  true  "Answer outcome"
// @Success      200          {object}  StudyStatsResponse
// @Failure      400          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /flashcards/{flashcardID}/study-stats [patch]
func (h *Handler) recordStudyStats(w http.ResponseWriter, r *http.Request) {
	var req StudyStatsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stats, err := h.store.RecordAnswer(r.Context(), r.PathValue("flashcardID"), *req.IsCorrect, time.Now())
	if h.handleStoreError(w, err, "flashcard") {
		return
	}

	respondJSON(w, http.StatusOK, newStudyStatsResponse(stats))
}
