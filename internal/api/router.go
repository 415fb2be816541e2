package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Users
	mux.HandleFunc("POST /users", h.createUser)
	mux.HandleFunc("GET /users/{userID}", h.getUser)
	mux.HandleFunc("GET /users/{userID}/decks", h.listUserDecks)

	// Decks
	mux.HandleFunc("POST /decks", h.createDeck)
	mux.HandleFunc("GET /decks", h.listDecks)
	mux.HandleFunc("GET /decks/{deckID}", h.getDeck)
	mux.HandleFunc("PATCH /decks/{deckID}", h.updateDeck)
	mux.HandleFunc("DELETE /decks/{deckID}", h.deleteDeck)
	mux.HandleFunc("GET /decks/{deckID}/stats", h.getDeckStats)

	// Flashcards
	mux.HandleFunc("GET /decks/{deckID}/flashcards", h.listFlashcards)
	mux.HandleFunc("POST /decks/{deckID}/flashcards", h.addFlashcard)
	mux.HandleFunc("POST /decks/{deckID}/flashcards/bulk", h.addFlashcardsBulk)
	mux.HandleFunc("PATCH /flashcards/{flashcardID}", h.updateFlashcard)
	mux.HandleFunc("DELETE /flashcards/{flashcardID}", h.deleteFlashcard)
	mux.HandleFunc("PATCH /flashcards/{flashcardID}/study-stats", h.recordStudyStats)

	// Study history
	mux.HandleFunc("POST /decks/{deckID}/sessions", h.createStudySession)
	mux.HandleFunc("GET /decks/{deckID}/sessions", h.listStudySessions)

	// Generation
	mux.HandleFunc("POST /generate", h.generateFlashcards)

	// Export / Import
	mux.HandleFunc("GET /export", h.exportAll)
	mux.HandleFunc("POST /import", h.importAll)
}

// health reports liveness.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
