package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flashdeck/backend/internal/domain/flashcard"
	studysession "github.com/flashdeck/backend/internal/domain/study_session"
)

const fetchTimeout = 15 * time.Second

// ─── ports ───────────────────────────────────────────────────────────────────

// Recorder persists outcomes without blocking the event loop.
type Recorder interface {
	RecordAnswer(cardID string, correct bool)
	RecordSession(summary studysession.Summary)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CardsLoadedMsg struct {
	Cards []flashcard.Flashcard
	Err   error
}

type DeckLoadedMsg struct {
	Deck studysession.DeckInfo
	Err  error
}

// TickMsg fires once a second and drives the session clock.
type TickMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	deckID   string
	config   studysession.Config
	cards    studysession.CardSource
	decks    studysession.DeckSource
	recorder Recorder
	logger   *slog.Logger

	session *studysession.Session
	review  bool
	notice  string

	keys     keyMap
	help     help.Model
	progress progress.Model
	spinner  spinner.Model
	width    int
}

func New(
	deckID string,
	config studysession.Config,
	cards studysession.CardSource,
	decks studysession.DeckSource,
	recorder Recorder,
	logger *slog.Logger,
) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return Model{
		deckID:   deckID,
		config:   config,
		cards:    cards,
		decks:    decks,
		recorder: recorder,
		logger:   logger,
		session:  studysession.New(deckID, config),
		keys:     defaultKeys(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCardsCmd(), m.fetchDeckCmd(), m.spinner.Tick, tick())
}

// Session exposes the underlying state machine, mainly for tests.
func (m Model) Session() *studysession.Session {
	return m.session
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(max(msg.Width-8, 10), 60)
		return m, nil

	case CardsLoadedMsg:
		m.handleCards(msg)
		return m, nil

	case DeckLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("failed to load deck metadata", "deck_id", m.deckID, "error", msg.Err)
			return m, nil
		}
		m.session.SetDeck(msg.Deck)
		return m, nil

	case TickMsg:
		m.session.Tick()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleCards(msg CardsLoadedMsg) {
	if msg.Err != nil {
		if err := m.session.Fail(msg.Err); err != nil {
			m.logger.Debug("ignoring stale fetch result", "error", err)
			return
		}
		m.logger.Error("failed to load cards", "deck_id", m.deckID, "error", msg.Err)
		return
	}
	if err := m.session.Load(msg.Cards); err != nil {
		m.logger.Debug("ignoring stale fetch result", "error", err)
		return
	}
	m.logger.Info("session loaded", "deck_id", m.deckID, "cards", m.session.Len(), "state", m.session.State())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	s := m.session

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Flip):
		m.apply("flip", s.Flip())

	case key.Matches(msg, m.keys.Correct):
		m.answer(true)

	case key.Matches(msg, m.keys.Wrong):
		m.answer(false)

	case key.Matches(msg, m.keys.Restart):
		if s.State() == studysession.Failed {
			if err := s.Retry(); err != nil {
				m.apply("retry", err)
				return m, nil
			}
			m.logger.Info("retrying fetch", "deck_id", m.deckID)
			return m, m.fetchCardsCmd()
		}
		if err := s.Restart(); err == nil {
			m.review = false
			m.logger.Info("session restarted", "deck_id", m.deckID)
		} else {
			m.apply("restart", err)
		}

	case key.Matches(msg, m.keys.Review):
		next, err := s.Review()
		if errors.Is(err, studysession.ErrNothingToReview) {
			m.notice = "Nothing to review, every card was correct."
			return m, nil
		}
		if err != nil {
			m.apply("review", err)
			return m, nil
		}
		m.session = next
		m.review = true
		m.logger.Info("review started", "deck_id", m.deckID, "cards", next.Len())
	}

	return m, nil
}

func (m *Model) answer(correct bool) {
	ev, err := m.session.Answer(correct)
	if err != nil {
		m.apply("answer", err)
		return
	}
	m.recorder.RecordAnswer(ev.CardID, ev.Correct)
	if ev.Completed {
		summary := m.session.Summary()
		m.logger.Info("pass complete",
			"deck_id", summary.DeckID,
			"correct", summary.Stats.Correct,
			"incorrect", summary.Stats.Incorrect,
			"elapsed", summary.Elapsed,
		)
		m.recorder.RecordSession(summary)
	}
}

// apply logs rejected transitions. They are expected when a key does not
// apply to the current screen.
func (m *Model) apply(action string, err error) {
	if err != nil {
		m.logger.Debug("key ignored", "action", action, "error", err)
	}
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) fetchCardsCmd() tea.Cmd {
	src, deckID := m.cards, m.deckID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		cards, err := src.FetchCards(ctx, deckID)
		return CardsLoadedMsg{Cards: cards, Err: err}
	}
}

func (m Model) fetchDeckCmd() tea.Cmd {
	src, deckID := m.decks, m.deckID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		info, err := src.FetchDeck(ctx, deckID)
		return DeckLoadedMsg{Deck: info, Err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	s := m.session
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch s.State() {
	case studysession.Loading:
		b.WriteString(m.spinner.View() + " Loading flashcards…")

	case studysession.Failed:
		b.WriteString(errorStyle.Render("Could not load flashcards"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(s.Err().Error()))
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{retryBinding(m.keys.Restart), m.keys.Quit}))

	case studysession.Empty:
		b.WriteString("This deck has no flashcards yet.")
		b.WriteString("\n\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Quit}))

	case studysession.Ready, studysession.Flipped:
		b.WriteString(m.studyView())

	case studysession.Complete:
		b.WriteString(m.summaryView())
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}

	return appStyle.Render(b.String())
}

func (m Model) header() string {
	info := m.session.Deck()
	name := info.Name
	if name == "" {
		name = info.ID
	}
	title := titleStyle.Render(name)
	if m.review {
		title += " " + noticeStyle.Render("(review)")
	}
	if info.Description != "" {
		title += "\n" + mutedStyle.Render(info.Description)
	}
	return title
}

func (m Model) studyView() string {
	s := m.session
	card, _ := s.Current()
	stats := s.Stats()

	status := fmt.Sprintf("Card %d of %d   %s   %s  %s",
		s.Index()+1, s.Len(),
		formatElapsed(s.Elapsed()),
		correctStyle.Render(fmt.Sprintf("✓ %d", stats.Correct)),
		wrongStyle.Render(fmt.Sprintf("✗ %d", stats.Incorrect)),
	)

	var face string
	var bindings []key.Binding
	if s.State() == studysession.Flipped {
		face = cardFlippedStyle.Render(card.Front + "\n\n" + titleStyle.Render(card.Back))
		bindings = []key.Binding{m.keys.Correct, m.keys.Wrong, m.keys.Restart, m.keys.Quit}
	} else {
		face = cardStyle.Render(card.Front)
		bindings = []key.Binding{m.keys.Flip, m.keys.Restart, m.keys.Quit}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		m.progress.ViewAs(float64(s.Progress())/100),
		"",
		face,
		"",
		m.help.ShortHelpView(bindings),
	)
}

func (m Model) summaryView() string {
	sum := m.session.Summary()

	lines := []string{
		titleStyle.Render("Session complete"),
		"",
		fmt.Sprintf("Correct:   %s", correctStyle.Render(fmt.Sprint(sum.Stats.Correct))),
		fmt.Sprintf("Incorrect: %s", wrongStyle.Render(fmt.Sprint(sum.Stats.Incorrect))),
		fmt.Sprintf("Accuracy:  %d%%", sum.Accuracy),
		fmt.Sprintf("Time:      %s", formatElapsed(sum.Elapsed)),
		"",
	}

	bindings := []key.Binding{m.keys.Restart}
	if len(sum.Incorrect) > 0 {
		bindings = append(bindings, m.keys.Review)
	}
	bindings = append(bindings, m.keys.Quit)
	lines = append(lines, m.help.ShortHelpView(bindings))

	return strings.Join(lines, "\n")
}

func retryBinding(b key.Binding) key.Binding {
	b.SetHelp("r", "retry")
	return b
}

func formatElapsed(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
