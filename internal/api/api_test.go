package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/backend/internal/api"
	"github.com/flashdeck/backend/internal/generator"
	"github.com/flashdeck/backend/internal/store"
)

type fakeGenerator struct {
	cards     []generator.Card
	err       error
	lastLimit int
}

func (g *fakeGenerator) Generate(_ context.Context, _ string, maxCards int) ([]generator.Card, error) {
	g.lastLimit = maxCards
	if g.err != nil {
		return nil, g.err
	}
	if len(g.cards) > maxCards {
		return g.cards[:maxCards], nil
	}
	return g.cards, nil
}

type testEnv struct {
	mux   *http.ServeMux
	store *store.SQLiteStore
	gen   *fakeGenerator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	gen := &fakeGenerator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(s, gen, logger))
	return &testEnv{mux: mux, store: s, gen: gen}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (e *testEnv) createUser(t *testing.T, name string) api.UserResponse {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/users", api.CreateUserRequest{Username: name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.UserResponse](t, rec)
}

func (e *testEnv) createDeck(t *testing.T, userID, name string) api.DeckResponse {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/decks", api.CreateDeckRequest{UserID: userID, Name: name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.DeckResponse](t, rec)
}

func (e *testEnv) addCards(t *testing.T, deckID string, pairs ...string) []api.FlashcardResponse {
	t.Helper()
	req := make([]api.CreateFlashcardRequest, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		req = append(req, api.CreateFlashcardRequest{Front: pairs[i], Back: pairs[i+1]})
	}
	rec := e.do(t, http.MethodPost, "/decks/"+deckID+"/flashcards/bulk", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[api.BulkCreateResponse](t, rec).Flashcards
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t)
	rec := e.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUsers(t *testing.T) {
	e := newTestEnv(t)

	u := e.createUser(t, "ada")
	assert.NotEmpty(t, u.ID)

	rec := e.do(t, http.MethodGet, "/users/"+u.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ada", decode[api.UserResponse](t, rec).Username)

	rec = e.do(t, http.MethodPost, "/users", api.CreateUserRequest{Username: "ada"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = e.do(t, http.MethodPost, "/users", api.CreateUserRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodGet, "/users/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", errorMessage(t, rec))
}

func TestDecks(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")

	rec := e.do(t, http.MethodPost, "/decks", api.CreateDeckRequest{UserID: "nobody", Name: "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(t, http.MethodPost, "/decks", api.CreateDeckRequest{UserID: u.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	d := e.createDeck(t, u.ID, "Spanish")
	e.addCards(t, d.ID, "hola", "hello", "adiós", "goodbye")

	rec = e.do(t, http.MethodGet, "/decks/"+d.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.DeckResponse](t, rec)
	assert.Equal(t, "Spanish", got.Name)
	assert.Equal(t, 2, got.CardCount)

	rec = e.do(t, http.MethodGet, "/users/"+u.ID+"/decks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]api.DeckResponse](t, rec), 1)

	rec = e.do(t, http.MethodGet, "/decks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]api.DeckResponse](t, rec), 1)

	rec = e.do(t, http.MethodGet, "/decks/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateDeck(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")

	rec := e.do(t, http.MethodPatch, "/decks/"+d.ID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "nothing to update", errorMessage(t, rec))

	rec = e.do(t, http.MethodPatch, "/decks/"+d.ID, map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPatch, "/decks/"+d.ID, map[string]string{"name": "Verbs", "description": "present tense"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.DeckResponse](t, rec)
	assert.Equal(t, "Verbs", got.Name)
	assert.Equal(t, "present tense", got.Description)

	rec = e.do(t, http.MethodPatch, "/decks/missing", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDeck(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	e.addCards(t, d.ID, "hola", "hello")

	rec := e.do(t, http.MethodDelete, "/decks/"+d.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(t, http.MethodGet, "/decks/"+d.ID+"/flashcards", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(t, http.MethodDelete, "/decks/"+d.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFlashcards(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")

	rec := e.do(t, http.MethodGet, "/decks/"+d.ID+"/flashcards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	e.addCards(t, d.ID, "uno", "one", "dos", "two")
	rec = e.do(t, http.MethodPost, "/decks/"+d.ID+"/flashcards",
		api.CreateFlashcardRequest{Front: "tres", Back: "three", Difficulty: "hard"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(t, http.MethodGet, "/decks/"+d.ID+"/flashcards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cards := decode[[]api.FlashcardResponse](t, rec)
	require.Len(t, cards, 3)
	assert.Equal(t, []string{"uno", "dos", "tres"}, []string{cards[0].Front, cards[1].Front, cards[2].Front})
	assert.Equal(t, "medium", cards[0].Difficulty)
	assert.Equal(t, "hard", cards[2].Difficulty)
	assert.Nil(t, cards[0].StudyStats.LastStudied)
}

func TestAddFlashcard_Validation(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	path := "/decks/" + d.ID + "/flashcards"

	tests := []struct {
		name string
		body any
	}{
		{"missing back", api.CreateFlashcardRequest{Front: "hola"}},
		{"bad difficulty", api.CreateFlashcardRequest{Front: "a", Back: "b", Difficulty: "extreme"}},
		{"blank front", api.CreateFlashcardRequest{Front: "   ", Back: "b"}},
		{"malformed json", `{"front":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.do(t, http.MethodPost, path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	rec := e.do(t, http.MethodPost, "/decks/missing/flashcards", api.CreateFlashcardRequest{Front: "a", Back: "b"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddFlashcardsBulk_Validation(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	path := "/decks/" + d.ID + "/flashcards/bulk"

	rec := e.do(t, http.MethodPost, path, `[]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, path, `{"front":"a","back":"b"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, path, `[{"front":"a","back":"b"},{"front":"c"}]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "flashcard 1")

	// Nothing from the rejected batch was stored.
	rec = e.do(t, http.MethodGet, "/decks/"+d.ID+"/flashcards", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = e.do(t, http.MethodPost, path, `[{"front":"a","back":"b"},{"front":"c","back":"d"}]`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, decode[api.BulkCreateResponse](t, rec).AddedCount)
}

func TestUpdateAndDeleteFlashcard(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	card := e.addCards(t, d.ID, "hola", "hello")[0]

	rec := e.do(t, http.MethodPatch, "/flashcards/"+card.ID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPatch, "/flashcards/"+card.ID, map[string]string{"back": "hi", "difficulty": "easy"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.FlashcardResponse](t, rec)
	assert.Equal(t, "hola", got.Front)
	assert.Equal(t, "hi", got.Back)
	assert.Equal(t, "easy", got.Difficulty)

	rec = e.do(t, http.MethodPatch, "/flashcards/"+card.ID, map[string]string{"difficulty": "extreme"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodDelete, "/flashcards/"+card.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(t, http.MethodPatch, "/flashcards/"+card.ID, map[string]string{"back": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordStudyStats(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	card := e.addCards(t, d.ID, "hola", "hello")[0]
	path := "/flashcards/" + card.ID + "/study-stats"

	rec := e.do(t, http.MethodPatch, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPatch, path, `{"is_correct":"yes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPatch, path, `{"is_correct":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[api.StudyStatsResponse](t, rec)
	assert.Equal(t, 1, stats.StudyCount)
	assert.Equal(t, 1, stats.CorrectCount)
	require.NotNil(t, stats.LastStudied)

	rec = e.do(t, http.MethodPatch, path, `{"is_correct":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	stats = decode[api.StudyStatsResponse](t, rec)
	assert.Equal(t, 2, stats.StudyCount)
	assert.Equal(t, 1, stats.CorrectCount)
	assert.Equal(t, 50, stats.Accuracy)

	rec = e.do(t, http.MethodPatch, "/flashcards/missing/study-stats", `{"is_correct":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeckStats(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	cards := e.addCards(t, d.ID, "a", "1", "b", "2", "c", "3")

	for _, correct := range []bool{true, true, false} {
		body := map[string]bool{"is_correct": correct}
		rec := e.do(t, http.MethodPatch, "/flashcards/"+cards[0].ID+"/study-stats", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := e.do(t, http.MethodPatch, "/flashcards/"+cards[1].ID+"/study-stats", map[string]bool{"is_correct": true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodGet, "/decks/"+d.ID+"/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.DeckStatsResponse{
		DeckID:       d.ID,
		TotalCards:   3,
		StudiedCards: 2,
		TotalStudies: 4,
		TotalCorrect: 3,
		Accuracy:     75,
	}, decode[api.DeckStatsResponse](t, rec))
}

func TestStudySessions(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	path := "/decks/" + d.ID + "/sessions"

	rec := e.do(t, http.MethodPost, path, api.CreateStudySessionRequest{TotalTimeSpent: 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, path, api.CreateStudySessionRequest{TotalTimeSpent: -1, CorrectAnswers: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, path, api.CreateStudySessionRequest{TotalTimeSpent: 42, CorrectAnswers: 2, IncorrectAnswers: 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[api.StudySessionResponse](t, rec)
	assert.Equal(t, 67, created.Accuracy)

	rec = e.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]api.StudySessionResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = e.do(t, http.MethodGet, "/decks/missing/sessions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerate(t *testing.T) {
	e := newTestEnv(t)
	e.gen.cards = []generator.Card{{Front: "hola", Back: "hello"}, {Front: "adiós", Back: "goodbye"}}

	rec := e.do(t, http.MethodPost, "/generate", api.GenerateRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, "/generate", api.GenerateRequest{Text: "spanish greetings"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, e.gen.lastLimit)
	assert.Len(t, decode[[]api.GeneratedFlashcard](t, rec), 2)

	rec = e.do(t, http.MethodPost, "/generate", api.GenerateRequest{Text: "x", MaxFlashcards: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]api.GeneratedFlashcard](t, rec), 1)

	e.gen.err = &generator.GenerateError{Reason: "no JSON array found in LLM response"}
	rec = e.do(t, http.MethodPost, "/generate", api.GenerateRequest{Text: "x"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	e.gen.err = context.DeadlineExceeded
	rec = e.do(t, http.MethodPost, "/generate", api.GenerateRequest{Text: "x"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExportImport_JSON(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	e.addCards(t, d.ID, "hola", "hello", "adiós", "goodbye")

	rec := e.do(t, http.MethodGet, "/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decode[api.ExportData](t, rec)
	require.Len(t, data.Decks, 1)
	assert.Equal(t, "Spanish", data.Decks[0].Name)
	assert.Len(t, data.Decks[0].Flashcards, 2)

	other := e.createUser(t, "grace")
	rec = e.do(t, http.MethodPost, "/import?user_id="+other.ID, data)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, api.ImportResult{DecksCreated: 1, FlashcardsCreated: 2}, decode[api.ImportResult](t, rec))

	rec = e.do(t, http.MethodGet, "/users/"+other.ID+"/decks", nil)
	decks := decode[[]api.DeckResponse](t, rec)
	require.Len(t, decks, 1)
	assert.Equal(t, 2, decks[0].CardCount)

	rec = e.do(t, http.MethodPost, "/import", data)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, "/import?user_id=nobody", data)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportImport_YAML(t *testing.T) {
	e := newTestEnv(t)
	u := e.createUser(t, "ada")
	d := e.createDeck(t, u.ID, "Spanish")
	e.addCards(t, d.ID, "hola", "hello")

	rec := e.do(t, http.MethodGet, "/export?format=yaml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "name: Spanish")
	assert.Contains(t, body, "front: hola")

	req := httptest.NewRequest(http.MethodPost, "/import?user_id="+u.ID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/yaml")
	rec = httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, api.ImportResult{DecksCreated: 1, FlashcardsCreated: 1}, decode[api.ImportResult](t, rec))
}
