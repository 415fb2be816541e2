package api

import (
	"errors"
	"net/http"

	"github.com/flashdeck/backend/internal/generator"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateRequest struct {
	Text          string `json:"text" validate:"required" example:"Hola means hello. Adiós means goodbye."`
	MaxFlashcards int    `json:"max_flashcards,omitempty" validate:"min=0,max=100" example:"10"`
}

type GeneratedFlashcard struct {
	Front string `json:"front" example:"hola"`
	Back  string `json:"back" example:"hello"`
}

const defaultMaxFlashcards = 10

// ── Handlers ────────────────────────────────────────────────────────────────

// generateFlashcards asks the LLM for flashcards built from free text.
// Nothing is saved; the caller bulk-adds the cards it keeps.
// @Summary      Generate flashcards
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateRequest  true  "Source text"
// @Success      200   {array}   GeneratedFlashcard
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string  "model failed"
// @Router       /generate [post]
func (h *Handler) generateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	limit := req.MaxFlashcards
	if limit == 0 {
		limit = defaultMaxFlashcards
	}

	cards, err := h.generator.Generate(r.Context(), req.Text, limit)
	if err != nil {
		h.logger.Error("flashcard generation failed", "error", err)
		var genErr *generator.GenerateError
		if errors.As(err, &genErr) {
			respondError(w, http.StatusBadGateway, "failed to generate flashcards")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to generate flashcards")
		return
	}

	resp := make([]GeneratedFlashcard, len(cards))
	for i, c := range cards {
		resp[i] = GeneratedFlashcard{Front: c.Front, Back: c.Back}
	}
	respondJSON(w, http.StatusOK, resp)
}
