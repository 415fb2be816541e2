package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/flashdeck/backend/internal/domain/deck"
	"github.com/flashdeck/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateDeckRequest struct {
	UserID      string `json:"user_id" validate:"required" example:"u1v2w3x4y5z6a7b8"`
	Name        string `json:"name" validate:"required" example:"Spanish verbs"`
	Description string `json:"description" example:"Irregular verbs in the present tense"`
}

type UpdateDeckRequest struct {
	Name        *string `json:"name,omitempty" example:"Spanish verbs"`
	Description *string `json:"description,omitempty" example:"Irregular verbs"`
}

func (r *UpdateDeckRequest) Validate() error {
	if r.Name == nil && r.Description == nil {
		return errors.New("nothing to update")
	}
	return nil
}

type DeckResponse struct {
	ID          string    `json:"id" example:"d1e2c3k4d5e6c7k8"`
	UserID      string    `json:"user_id" example:"u1v2w3x4y5z6a7b8"`
	Name        string    `json:"name" example:"Spanish verbs"`
	Description string    `json:"description" example:"Irregular verbs in the present tense"`
	CardCount   int       `json:"card_count" example:"12"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DeckStatsResponse struct {
	DeckID       string `json:"deck_id" example:"d1e2c3k4d5e6c7k8"`
	TotalCards   int    `json:"total_cards" example:"12"`
	StudiedCards int    `json:"studied_cards" example:"9"`
	TotalStudies int    `json:"total_studies" example:"30"`
	TotalCorrect int    `json:"total_correct" example:"21"`
	Accuracy     int    `json:"accuracy" example:"70"`
}

func newDeckResponse(d *deck.Deck, cardCount int) DeckResponse {
	return DeckResponse{
		ID:          d.ID,
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		CardCount:   cardCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newDeckListResponse(decks []store.DeckSummary) []DeckResponse {
	resp := make([]DeckResponse, len(decks))
	for i, d := range decks {
		resp[i] = newDeckResponse(d.Deck, d.CardCount)
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createDeck creates an empty deck for a user.
// @Summary      Create a deck
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateDeckRequest  true  "Deck to create"
// @Success      201   {object}  DeckResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "user not found"
// @Router       /decks [post]
func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateDeckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.store.GetUser(ctx, req.UserID); h.handleStoreError(w, err, "user") {
		return
	}

	d, err := deck.New(req.UserID, req.Name, req.Description)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveDeck(ctx, d); err != nil {
		h.logger.Error("failed to save deck", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}

	respondJSON(w, http.StatusCreated, newDeckResponse(d, 0))
}

// listDecks returns every deck with its card count.
// @Summary      List decks
// @Tags         Decks
// @Produce      json
// @Success      200  {array}  DeckResponse
// @Router       /decks [get]
func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.store.ListDecks(r.Context())
	if h.handleStoreError(w, err, "deck") {
		return
	}
	respondJSON(w, http.StatusOK, newDeckListResponse(decks))
}

// getDeck returns deck metadata.
// @Summary      Get a deck
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {object}  DeckResponse
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID} [get]
func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	d, err := h.store.GetDeck(r.Context(), r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}
	respondJSON(w, http.StatusOK, newDeckResponse(d, len(d.Flashcards)))
}

// updateDeck renames a deck or changes its description.
// @Summary      Update a deck
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        deckID  path      string             true  "Deck ID"
// @Param        body    body      UpdateDeckRequest  true  "Fields to change"
// @Success      200     {object}  DeckResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID} [patch]
func (h *Handler) updateDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateDeckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.store.GetDeck(ctx, r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}

	if err := d.Rename(req.Name, req.Description); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.UpdateDeck(ctx, d), "deck") {
		return
	}

	respondJSON(w, http.StatusOK, newDeckResponse(d, len(d.Flashcards)))
}

// deleteDeck removes a deck with its flashcards and study history.
// @Summary      Delete a deck
// @Tags         Decks
// @Param        deckID  path  string  true  "Deck ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /decks/{deckID} [delete]
func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteDeck(r.Context(), r.PathValue("deckID")), "deck") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getDeckStats aggregates lifetime study stats over a deck's cards.
// @Summary      Deck statistics
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {object}  DeckStatsResponse
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/stats [get]
func (h *Handler) getDeckStats(w http.ResponseWriter, r *http.Request) {
	d, err := h.store.GetDeck(r.Context(), r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}

	s := deck.ComputeStats(d.ID, d.Flashcards)
	respondJSON(w, http.StatusOK, DeckStatsResponse{
		DeckID:       s.DeckID,
		TotalCards:   s.TotalCards,
		StudiedCards: s.StudiedCards,
		TotalStudies: s.TotalStudies,
		TotalCorrect: s.TotalCorrect,
		Accuracy:     s.Accuracy,
	})
}
