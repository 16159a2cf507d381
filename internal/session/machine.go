package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// State is the lifecycle position of the machine's live session.
type State int

const (
	// NoSession means no conversation is running and none has ended here.
	NoSession State = iota
	// Active means a conversation is running and the clock is ticking.
	Active
	// Ended is terminal for the current session identity; a later Start
	// produces a new, unrelated session.
	Ended
)

func (s State) String() string {
	switch s {
	case NoSession:
		return "no_session"
	case Active:
		return "active"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Machine drives one topic's practice session: Load binds it to a topic and
// resumes any unfinished conversation, Start/Send/Stop walk the lifecycle,
// and the history accessors browse past attempts without touching the live
// session. All operations on one machine are serialized by an internal
// mutex: a second call issued while one is in flight blocks and then runs,
// it never interleaves.
type Machine struct {
	mu        sync.Mutex
	gw        Gateway
	scorer    Scorer
	responder Responder
	clock     *Stopwatch
	log       *slog.Logger
	now       func() time.Time

	userID  uuid.UUID
	topicID uuid.UUID
	topic   *domain.Topic

	state      State
	session    *domain.Conversation
	history    []*domain.Conversation
	selectedID uuid.UUID
	displayed  []domain.Exchange
	closed     bool
}

// NewMachine creates a machine in NoSession. Load must be called before any
// lifecycle operation.
func NewMachine(log *slog.Logger, gw Gateway, scorer Scorer, responder Responder) *Machine {
	return &Machine{
		gw:        gw,
		scorer:    scorer,
		responder: responder,
		clock:     NewStopwatch(),
		now:       time.Now,
		log:       log.With("component", "session"),
	}
}

// Load binds the machine to a topic: it resolves the signed-in user, fetches
// the topic and the conversation history, pre-selects the most recent entry,
// and resumes an unfinished conversation if one exists. Loading again while
// the same conversation is still running refreshes the history and leaves
// the live state untouched.
func (m *Machine) Load(ctx context.Context, topicID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	userID, err := m.gw.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("session load: %w", err)
	}

	topic, err := m.gw.GetTopic(ctx, topicID)
	if err != nil {
		return fmt.Errorf("session load topic: %w", err)
	}

	history, err := m.gw.ConversationHistory(ctx, userID, topicID)
	if err != nil {
		return fmt.Errorf("session load history: %w", err)
	}

	m.userID = userID
	m.topicID = topicID
	m.topic = topic
	m.history = sortHistory(history)
	m.preselectNewestLocked()

	if unended := findUnended(m.history); unended != nil {
		m.resumeLocked(unended)
	}
	return nil
}

// Start begins a conversation, or reattaches to the unfinished one when it
// exists; it never creates a second running conversation for the same
// (user, topic). Starting while already Active is a no-op.
func (m *Machine) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.userID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if m.state == Active {
		return nil
	}

	if unended := findUnended(m.history); unended != nil {
		m.resumeLocked(unended)
		return nil
	}

	conv, err := m.gw.CreateSession(ctx, m.userID, m.topicID)
	if err != nil {
		return fmt.Errorf("session start: %w", err)
	}

	m.session = conv
	m.state = Active
	m.displayed = slices.Clone(conv.Exchanges)
	m.selectedID = conv.ID
	if !containsSession(m.history, conv.ID) {
		m.history = append([]*domain.Conversation{conv}, m.history...)
	}
	m.clock.Stop()
	m.clock.Start(conv.ElapsedSeconds(m.now()))

	m.log.InfoContext(ctx, "session started",
		slog.String("session_id", conv.ID.String()),
		slog.String("topic_id", m.topicID.String()),
	)
	return nil
}

// Send records one student turn: the message is scored, persisted together
// with the tutor's reply, and only then reflected in the ledger. A
// whitespace-only message or a Send outside Active is a silent no-op. On a
// persistence failure the ledger is left unchanged.
func (m *Machine) Send(ctx context.Context, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	message = strings.TrimSpace(message)
	if message == "" || m.state != Active {
		return nil
	}

	accuracy, feedback, err := m.scorer.Score(ctx, message)
	if err != nil {
		return fmt.Errorf("session send score: %w", err)
	}
	reply, err := m.responder.Reply(ctx, message)
	if err != nil {
		return fmt.Errorf("session send reply: %w", err)
	}

	student, err := m.gw.AppendExchange(ctx, &domain.Exchange{
		ConversationID: m.session.ID,
		Role:           domain.RoleStudent,
		Message:        message,
		Timestamp:      m.now(),
		Accuracy:       &accuracy,
		Feedback:       &feedback,
	})
	if err != nil {
		return fmt.Errorf("session send student turn: %w", err)
	}

	tutor, err := m.gw.AppendExchange(ctx, &domain.Exchange{
		ConversationID: m.session.ID,
		Role:           domain.RoleAI,
		Message:        reply,
		Timestamp:      m.now(),
	})
	if err != nil {
		return fmt.Errorf("session send tutor turn: %w", err)
	}

	m.session.Exchanges = append(m.session.Exchanges, *student, *tutor)
	if m.selectedID == m.session.ID {
		m.displayed = append(m.displayed, *student, *tutor)
	}
	return nil
}

// Stop ends the running conversation: the elapsed seconds and the mean
// accuracy over scored student turns are persisted together, the clock
// freezes at its current value, and the history is refreshed with the
// finished session pre-selected. The displayed ledger is kept. Stop outside
// Active is a no-op; on failure the machine stays Active.
func (m *Machine) Stop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.state != Active {
		return nil
	}

	endedAt := m.now()
	duration := m.clock.Seconds()
	aggregate := m.session.AggregateAccuracy()

	stored, err := m.gw.CloseSession(ctx, m.session.ID, endedAt, duration, aggregate)
	if err != nil {
		return fmt.Errorf("session stop: %w", err)
	}

	m.clock.Stop()
	m.state = Ended
	m.session.EndedAt = stored.EndedAt
	m.session.Duration = stored.Duration
	m.session.Accuracy = stored.Accuracy

	// A failed refresh does not un-end the session; the local copy stands
	// in until the next Load.
	if history, histErr := m.gw.ConversationHistory(ctx, m.userID, m.topicID); histErr == nil {
		m.history = sortHistory(history)
	} else {
		m.log.WarnContext(ctx, "history refresh failed after stop",
			slog.String("error", histErr.Error()))
	}
	m.selectedID = m.session.ID

	m.log.InfoContext(ctx, "session stopped",
		slog.String("session_id", m.session.ID.String()),
		slog.Int("duration_seconds", duration),
	)
	return nil
}

// SelectHistory swaps the displayed ledger to a past conversation's stored
// exchanges. It never resumes or ends anything.
func (m *Machine) SelectHistory(sessionID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	for _, conv := range m.history {
		if conv.ID == sessionID {
			m.selectedID = sessionID
			m.displayed = slices.Clone(conv.Exchanges)
			return nil
		}
	}
	return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
}

// Close tears the machine down: the clock stops deterministically and every
// later operation fails with ErrClosed, so nothing touches discarded state.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.clock.Stop()
}

// State returns the lifecycle state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SessionID returns the live session's identity, if the machine has one.
func (m *Machine) SessionID() (uuid.UUID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return uuid.Nil, false
	}
	return m.session.ID, true
}

// Topic returns the topic the machine is bound to, nil before Load.
func (m *Machine) Topic() *domain.Topic {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.topic
}

// Elapsed returns the clock's current whole-second reading.
func (m *Machine) Elapsed() int {
	return m.clock.Seconds()
}

// Ledger returns a snapshot of the live session's exchanges.
func (m *Machine) Ledger() []domain.Exchange {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	return slices.Clone(m.session.Exchanges)
}

// Displayed returns a snapshot of the exchanges currently shown, which is
// the selected history entry's ledger.
func (m *Machine) Displayed() []domain.Exchange {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.displayed)
}

// Aggregate returns the live session's mean accuracy over scored student
// turns, nil when there is no session or no scored turn.
func (m *Machine) Aggregate() *float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	return m.session.AggregateAccuracy()
}

// History returns a snapshot of the known conversations, newest first.
func (m *Machine) History() []*domain.Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.history)
}

// Selected returns the history entry whose ledger is displayed, uuid.Nil
// when the history is empty.
func (m *Machine) Selected() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectedID
}

// resumeLocked reattaches to an unfinished conversation. Resuming the
// conversation that is already live keeps the clock baseline, so a double
// resume is a no-op.
func (m *Machine) resumeLocked(conv *domain.Conversation) {
	if m.state == Active && m.session != nil && m.session.ID == conv.ID {
		return
	}
	m.session = conv
	m.state = Active
	m.displayed = slices.Clone(conv.Exchanges)
	m.selectedID = conv.ID
	m.clock.Stop()
	m.clock.Start(conv.ElapsedSeconds(m.now()))
}

func (m *Machine) preselectNewestLocked() {
	if len(m.history) == 0 {
		m.selectedID = uuid.Nil
		m.displayed = nil
		return
	}
	m.selectedID = m.history[0].ID
	m.displayed = slices.Clone(m.history[0].Exchanges)
}

// sortHistory orders conversations by start time descending. The store
// already returns them that way, but the order is not part of the contract.
func sortHistory(history []*domain.Conversation) []*domain.Conversation {
	out := slices.Clone(history)
	slices.SortStableFunc(out, func(a, b *domain.Conversation) int {
		return b.StartedAt.Compare(a.StartedAt)
	})
	return out
}

func findUnended(history []*domain.Conversation) *domain.Conversation {
	for _, conv := range history {
		if !conv.IsEnded() {
			return conv
		}
	}
	return nil
}

func containsSession(history []*domain.Conversation, id uuid.UUID) bool {
	for _, conv := range history {
		if conv.ID == id {
			return true
		}
	}
	return false
}
