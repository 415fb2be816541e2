package api

import (
	"net/http"
	"time"

	"github.com/flashdeck/backend/internal/domain/user"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateUserRequest struct {
	Username string `json:"username" validate:"required" example:"ada"`
}

type UserResponse struct {
	ID        string    `json:"id" example:"u1v2w3x4y5z6a7b8"`
	Username  string    `json:"username" example:"ada"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createUser registers a deck owner.
// @Summary      Create a user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "User to create"
// @Success      201   {object}  UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "username taken"
// @Router       /users [post]
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := user.New(req.Username)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.SaveUser(r.Context(), u), "user") {
		return
	}

	respondJSON(w, http.StatusCreated, newUserResponse(u))
}

// getUser returns a single user.
// @Summary      Get a user
// @Tags         Users
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {object}  UserResponse
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID} [get]
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.GetUser(r.Context(), r.PathValue("userID"))
	if h.handleStoreError(w, err, "user") {
		return
	}
	respondJSON(w, http.StatusOK, newUserResponse(u))
}

// listUserDecks returns the decks owned by a user.
// @Summary      List a user's decks
// @Tags         Users
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {array}   DeckResponse
// @Failure      404     {object}  map[string]string
// @Router       /users/{userID}/decks [get]
func (h *Handler) listUserDecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userID")

	if _, err := h.store.GetUser(ctx, userID); h.handleStoreError(w, err, "user") {
		return
	}

	decks, err := h.store.ListDecksByUser(ctx, userID)
	if h.handleStoreError(w, err, "deck") {
		return
	}

	respondJSON(w, http.StatusOK, newDeckListResponse(decks))
}
