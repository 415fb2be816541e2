package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flashdeck/backend/internal/domain/deck"
	"github.com/flashdeck/backend/internal/domain/flashcard"
	"github.com/flashdeck/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportFlashcard struct {
	Front      string `json:"front" yaml:"front"`
	Back       string `json:"back" yaml:"back"`
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

type ExportDeck struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Flashcards  []ExportFlashcard `json:"flashcards" yaml:"flashcards"`
}

type ExportData struct {
	Version    string       `json:"version" yaml:"version"`
	ExportedAt string       `json:"exported_at" yaml:"exported_at"`
	Decks      []ExportDeck `json:"decks" yaml:"decks"`
}

type ImportResult struct {
	DecksCreated      int `json:"decks_created"`
	FlashcardsCreated int `json:"flashcards_created"`
}

const exportVersion = "1.0"

func wantsYAML(r *http.Request) bool {
	if f := r.URL.Query().Get("format"); f != "" {
		return f == "yaml" || f == "yml"
	}
	ct := r.Header.Get("Content-Type")
	return strings.Contains(ct, "yaml")
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll dumps decks and their cards. Study stats are not exported.
// @Summary      Export decks
// @Tags         Export
// @Produce      json
// @Produce      application/yaml
// @Param        format   query     string  false  "json (default) or yaml"
// @Param        user_id  query     string  false  "Only export this user's decks"
// @Success      200      {object}  ExportData
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		decks []store.DeckSummary
		err   error
	)
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		decks, err = h.store.ListDecksByUser(ctx, userID)
	} else {
		decks, err = h.store.ListDecks(ctx)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load decks")
		return
	}

	exportData := ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Decks:      make([]ExportDeck, 0, len(decks)),
	}

	for _, summary := range decks {
		cards, err := h.store.ListFlashcards(ctx, summary.Deck.ID)
		if err != nil {
			h.logger.Error("failed to load flashcards", "deck_id", summary.Deck.ID, "error", err)
			continue
		}

		exportDeck := ExportDeck{
			Name:        summary.Deck.Name,
			Description: summary.Deck.Description,
			Flashcards:  make([]ExportFlashcard, len(cards)),
		}
		for i, c := range cards {
			exportDeck.Flashcards[i] = ExportFlashcard{
				Front:      c.Front,
				Back:       c.Back,
				Difficulty: string(c.Difficulty),
			}
		}

		exportData.Decks = append(exportData.Decks, exportDeck)
	}

	if wantsYAML(r) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Header().Set("Content-Disposition", "attachment; filename=flashdeck-export.yaml")
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		enc.Encode(exportData)
		enc.Close()
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=flashdeck-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// importAll recreates exported decks under a user. Decks that fail to save
// are logged and skipped.
// @Summary      Import decks
// @Tags         Export
// @Accept       json
// @Accept       application/yaml
// @Produce      json
// @Param        user_id  query     string      true  "Owner of the imported decks"
// @Param        body     body      ExportData  true  "Export document"
// @Success      201      {object}  ImportResult
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string  "user not found"
// @Router       /import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	var importData ExportData
	if wantsYAML(r) {
		if err := yaml.NewDecoder(r.Body).Decode(&importData); err != nil {
			respondError(w, http.StatusBadRequest, "invalid YAML body")
			return
		}
	} else if !decodeJSON(w, r, &importData) {
		return
	}

	if _, err := h.store.GetUser(ctx, userID); h.handleStoreError(w, err, "user") {
		return
	}

	result := ImportResult{}

	for _, ed := range importData.Decks {
		d, err := deck.New(userID, ed.Name, ed.Description)
		if err != nil {
			h.logger.Error("skipping deck", "name", ed.Name, "error", err)
			continue
		}

		for _, ef := range ed.Flashcards {
			if _, err := d.AddFlashcard(ef.Front, ef.Back, flashcard.Difficulty(ef.Difficulty)); err != nil {
				h.logger.Error("skipping flashcard", "deck", ed.Name, "error", err)
			}
		}

		if err := h.store.SaveDeck(ctx, d); err != nil {
			h.logger.Error("failed to create deck", "name", ed.Name, "error", err)
			continue
		}
		result.DecksCreated++

		if len(d.Flashcards) == 0 {
			continue
		}
		if err := h.store.AddFlashcards(ctx, d.Flashcards...); err != nil {
			h.logger.Error("failed to save flashcards", "deck", ed.Name, "error", err)
			continue
		}
		result.FlashcardsCreated += len(d.Flashcards)
	}

	respondJSON(w, http.StatusCreated, result)
}
