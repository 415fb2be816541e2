package user

import (
	"errors"
	"strings"
	"time"

	"github.com/flashdeck/backend/internal/id"
)

// User owns decks. There is no credential data here; accounts only exist
// so decks can be grouped per owner.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

func New(username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	return &User{
		ID:        id.GenerateID(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}, nil
}
