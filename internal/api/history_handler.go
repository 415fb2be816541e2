package api

import (
	"net/http"
	"time"

	"github.com/flashdeck/backend/internal/domain/history"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateStudySessionRequest struct {
	TotalTimeSpent   int `json:"total_time_spent" validate:"min=0" example:"95"`
	CorrectAnswers   int `json:"correct_answers" validate:"min=0" example:"8"`
	IncorrectAnswers int `json:"incorrect_answers" validate:"min=0" example:"2"`
}

type StudySessionResponse struct {
	ID               string    `json:"id" example:"s1e2s3s4i5o6n7i8"`
	DeckID           string    `json:"deck_id" example:"d1e2c3k4d5e6c7k8"`
	StudiedAt        time.Time `json:"studied_at"`
	TotalTimeSpent   int       `json:"total_time_spent" example:"95"`
	CorrectAnswers   int       `json:"correct_answers" example:"8"`
	IncorrectAnswers int       `json:"incorrect_answers" example:"2"`
	Accuracy         int       `json:"accuracy" example:"80"`
}

func newStudySessionResponse(rec history.Record) StudySessionResponse {
	return StudySessionResponse{
		ID:               rec.ID,
		DeckID:           rec.DeckID,
		StudiedAt:        rec.StudiedAt,
		TotalTimeSpent:   rec.TotalTimeSpent,
		CorrectAnswers:   rec.CorrectAnswers,
		IncorrectAnswers: rec.IncorrectAnswers,
		Accuracy:         rec.Accuracy(),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createStudySession stores the summary of a finished study pass.
// @Summary      Record a study session
// @Tags         Study sessions
// @Accept       json
// @Produce      json
// @Param        deckID  path      string                     true  "Deck ID"
// @Param        body    body      CreateStudySessionRequest  true  "Session totals"
// @Success      201     {object}  StudySessionResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/sessions [post]
func (h *Handler) createStudySession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateStudySessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deckID := r.PathValue("deckID")
	if _, err := h.store.GetDeck(ctx, deckID); h.handleStoreError(w, err, "deck") {
		return
	}

	rec, err := history.New(deckID, req.TotalTimeSpent, req.CorrectAnswers, req.IncorrectAnswers)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.SaveHistory(ctx, rec), "study session") {
		return
	}

	respondJSON(w, http.StatusCreated, newStudySessionResponse(*rec))
}

// listStudySessions returns a deck's study history, most recent first.
// @Summary      List study sessions
// @Tags         Study sessions
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {array}   StudySessionResponse
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/sessions [get]
func (h *Handler) listStudySessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	deckID := r.PathValue("deckID")

	if _, err := h.store.GetDeck(ctx, deckID); h.handleStoreError(w, err, "deck") {
		return
	}

	records, err := h.store.ListHistory(ctx, deckID)
	if h.handleStoreError(w, err, "study session") {
		return
	}

	resp := make([]StudySessionResponse, len(records))
	for i, rec := range records {
		resp[i] = newStudySessionResponse(rec)
	}
	respondJSON(w, http.StatusOK, resp)
}
