package studysession

import (
	"encoding"
	"fmt"
)

// State is the position of a session in its lifecycle.
type State int

const (
	Loading State = iota // waiting for the card sequence
	Failed               // fetching cards failed; Retry goes back to Loading
	Empty                // the deck has no cards
	Ready                // front of the current card shown
	Flipped              // back of the current card shown, awaiting an answer
	Complete             // every card answered
)

var stateNames = [...]string{
	Loading:  "loading",
	Failed:   "failed",
	Empty:    "empty",
	Ready:    "ready",
	Flipped:  "flipped",
	Complete: "complete",
}

var (
	_ fmt.Stringer           = State(0)
	_ encoding.TextMarshaler = State(0)
)

func (s State) String() string {
	if s >= Loading && s <= Complete {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler so snapshots encode the
// state by name.
func (s State) MarshalText() ([]byte, error) {
	if s < Loading || s > Complete {
		return nil, fmt.Errorf("studysession: invalid state: %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

// active reports whether the session clock is running.
func (s State) active() bool {
	return s == Ready || s == Flipped
}
