package studysession

import (
	"errors"
	"fmt"

	"github.com/flashdeck/backend/internal/domain/flashcard"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed in the
	// session's current state. The session is left unchanged.
	ErrInvalidTransition = errors.New("studysession: invalid transition")
	ErrNothingToReview   = errors.New("studysession: no incorrect cards to review")
)

// Session drives one study pass over a fixed card sequence. It is not safe
// for concurrent use: every transition is expected to come from a single
// event loop.
type Session struct {
	deckID string
	deck   DeckInfo
	config Config

	cards     []flashcard.Flashcard
	index     int
	state     State
	stats     Stats
	elapsed   int
	incorrect []flashcard.Flashcard
	loadErr   error
}

// AnswerEvent describes an accepted answer. Callers forward it to the stats
// sink; the session does not wait for that call.
type AnswerEvent struct {
	CardID    string
	Correct   bool
	Completed bool
}

// Summary is the result of a finished pass.
type Summary struct {
	DeckID    string
	Stats     Stats
	Accuracy  int
	Elapsed   int
	Incorrect []string
}

// New creates a session in the Loading state.
func New(deckID string, config Config) *Session {
	return &Session{
		deckID: deckID,
		deck:   DeckInfo{ID: deckID},
		config: config,
		state:  Loading,
	}
}

// Load snapshots the card sequence. A deck with no cards moves the session
// to Empty instead of Ready.
func (s *Session) Load(cards []flashcard.Flashcard) error {
	if s.state != Loading {
		return s.reject("load")
	}

	snapshot := make([]flashcard.Flashcard, len(cards))
	copy(snapshot, cards)
	if limit := s.config.MaxCards; limit != nil && *limit > 0 && *limit < len(snapshot) {
		snapshot = snapshot[:*limit]
	}

	s.cards = snapshot
	s.loadErr = nil
	if len(s.cards) == 0 {
		s.state = Empty
		return nil
	}
	s.reset()
	return nil
}

// SetDeck records header metadata. It may arrive in any state.
func (s *Session) SetDeck(info DeckInfo) {
	if info.ID == "" {
		info.ID = s.deckID
	}
	s.deck = info
}

// Fail records a fetch error. The session stays unusable until Retry.
func (s *Session) Fail(err error) error {
	if s.state != Loading {
		return s.reject("fail")
	}
	s.state = Failed
	s.loadErr = err
	return nil
}

// Retry returns a failed session to Loading so the cards can be fetched
// again.
func (s *Session) Retry() error {
	if s.state != Failed {
		return s.reject("retry")
	}
	s.state = Loading
	s.loadErr = nil
	return nil
}

// Flip reveals the back of the current card.
func (s *Session) Flip() error {
	if s.state != Ready {
		return s.reject("flip")
	}
	s.state = Flipped
	return nil
}

// Answer scores the current card and advances. It is only accepted once the
// card has been flipped, so a card can never be counted twice.
func (s *Session) Answer(correct bool) (AnswerEvent, error) {
	if s.state != Flipped {
		return AnswerEvent{}, s.reject("answer")
	}

	card := s.cards[s.index]
	s.stats = s.stats.Update(correct)
	if !correct {
		s.incorrect = append(s.incorrect, card)
	}

	event := AnswerEvent{CardID: card.ID, Correct: correct}
	if s.index+1 < len(s.cards) {
		s.index++
		s.state = Ready
	} else {
		s.state = Complete
		event.Completed = true
	}
	return event, nil
}

// Tick advances the session clock by one second while a pass is running.
// It reports whether the clock moved.
func (s *Session) Tick() bool {
	if !s.state.active() {
		return false
	}
	s.elapsed++
	return true
}

// Restart begins the same card sequence again from the first card with all
// counters cleared.
func (s *Session) Restart() error {
	switch s.state {
	case Ready, Flipped, Complete:
		s.reset()
		return nil
	default:
		return s.reject("restart")
	}
}

// Review starts a new session over the cards answered incorrectly in this
// finished pass.
func (s *Session) Review() (*Session, error) {
	if s.state != Complete {
		return nil, s.reject("review")
	}
	if len(s.incorrect) == 0 {
		return nil, ErrNothingToReview
	}
	next := New(s.deckID, DefaultConfig())
	next.deck = s.deck
	if err := next.Load(s.incorrect); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *Session) reset() {
	s.index = 0
	s.stats = Stats{}
	s.elapsed = 0
	s.incorrect = nil
	s.state = Ready
}

func (s *Session) reject(action string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, action, s.state)
}

// ── Accessors ───────────────────────────────────────────────────────────────

func (s *Session) DeckID() string { return s.deckID }
func (s *Session) Deck() DeckInfo { return s.deck }
func (s *Session) State() State { return s.state }
func (s *Session) Stats() Stats { return s.stats }
func (s *Session) Elapsed() int { return s.elapsed }
func (s *Session) Index() int { return s.index }
func (s *Session) Len() int { return len(s.cards) }
func (s *Session) Err() error { return s.loadErr }

// Current returns the card being studied. ok is false when no card is on
// screen.
func (s *Session) Current() (card flashcard.Flashcard, ok bool) {
	if !s.state.active() {
		return flashcard.Flashcard{}, false
	}
	return s.cards[s.index], true
}

// Cards returns a copy of the session's card sequence.
func (s *Session) Cards() []flashcard.Flashcard {
	out := make([]flashcard.Flashcard, len(s.cards))
	copy(out, s.cards)
	return out
}

// IncorrectCards returns a copy of the cards answered incorrectly so far.
func (s *Session) IncorrectCards() []flashcard.Flashcard {
	out := make([]flashcard.Flashcard, len(s.incorrect))
	copy(out, s.incorrect)
	return out
}

// Progress is the share of the sequence already answered, 0-100.
func (s *Session) Progress() int {
	return flashcard.Percent(s.stats.Total, len(s.cards))
}

// Summary reports the pass totals.
func (s *Session) Summary() Summary {
	ids := make([]string, len(s.incorrect))
	for i, c := range s.incorrect {
		ids[i] = c.ID
	}
	return Summary{
		DeckID:    s.deckID,
		Stats:     s.stats,
		Accuracy:  s.stats.Accuracy(),
		Elapsed:   s.elapsed,
		Incorrect: ids,
	}
}
