package v1

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
)

// DefaultReplyDelay simulates the assistant thinking before it answers.
const DefaultReplyDelay = time.Second

// Chat is the Q&A store: chat sessions, the messages of the current
// session, and a typing flag. The assistant is simulated: SendMessage waits
// the reply delay, then appends a canned reply. The real chat endpoint is
// not wired.
type Chat struct {
	logger     zerolog.Logger
	replyDelay time.Duration

	mu       sync.Mutex
	sessions []domain.ChatSession
	current  *domain.ChatSession
	messages []domain.ChatMessage
	typing   bool
	loading  bool
}

// ChatOption configures a Chat store.
type ChatOption func(*Chat)

// WithReplyDelay overrides the simulated assistant reply delay.
func WithReplyDelay(d time.Duration) ChatOption {
	return func(c *Chat) {
		c.replyDelay = d
	}
}

// NewChat creates an empty chat store.
func NewChat(logger zerolog.Logger, opts ...ChatOption) *Chat {
	c := &Chat{
		logger:     logger,
		replyDelay: DefaultReplyDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateSession starts a new conversation and selects it. An empty title
// becomes "New conversation".
func (c *Chat) CreateSession(ctx context.Context, title string) (*domain.ChatSession, error) {
	if title == "" {
		title = "New conversation"
	}
	now := time.Now()
	session := domain.ChatSession{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	c.mu.Lock()
	c.sessions = append([]domain.ChatSession{session}, c.sessions...)
	c.current = &c.sessions[0]
	c.messages = nil
	c.mu.Unlock()

	c.logger.Debug().Str("session_id", session.ID).Msg("Chat session created")
	out := session
	return &out, nil
}

// FetchSessions adopts the backend's session list. With the endpoint
// unwired the mock result is empty, so the local list resets.
func (c *Chat) FetchSessions(ctx context.Context) ([]domain.ChatSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions = nil
	return nil, nil
}

// SwitchSession selects an existing conversation and clears the loaded
// message history (the history endpoint is not wired).
func (c *Chat) SwitchSession(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.sessions {
		if c.sessions[i].ID == id {
			c.current = &c.sessions[i]
			c.messages = nil
			return nil
		}
	}
	return fmt.Errorf("switch to session %q: %w", id, ErrChatSessionNotFound)
}

// SendMessage appends the user's message to the current session — creating
// one when none is selected — then waits the reply delay with the typing
// flag raised and appends the simulated assistant reply, which it returns.
func (c *Chat) SendMessage(ctx context.Context, content string) (*domain.ChatMessage, error) {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		if _, err := c.CreateSession(ctx, ""); err != nil {
			return nil, err
		}
		c.mu.Lock()
	}
	sessionID := c.current.ID

	c.messages = append(c.messages, domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	})
	c.typing = true
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.typing = false
		c.loading = false
		c.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("send message: %w", ctx.Err())
	case <-time.After(c.replyDelay):
	}

	reply := domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   assistantReply(content),
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.messages = append(c.messages, reply)
	c.mu.Unlock()

	out := reply
	return &out, nil
}

// DeleteSession removes a conversation. Deleting an unknown id is not an
// error; when the current session is deleted, the selection and loaded
// messages are cleared.
func (c *Chat) DeleteSession(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.sessions[:0]
	for _, s := range c.sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	c.sessions = kept

	if c.current != nil && c.current.ID == id {
		c.current = nil
		c.messages = nil
	}
	return nil
}

// ClearCurrent drops the loaded messages without touching the session list.
func (c *Chat) ClearCurrent() {
	c.mu.Lock()
	c.messages = nil
	c.mu.Unlock()
}

// Sessions returns a snapshot of the conversation list, newest first.
func (c *Chat) Sessions() []domain.ChatSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ChatSession, len(c.sessions))
	copy(out, c.sessions)
	return out
}

// Current returns a copy of the selected session, or nil.
func (c *Chat) Current() *domain.ChatSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	out := *c.current
	return &out
}

// Messages returns a snapshot of the loaded message history.
func (c *Chat) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// IsTyping reports whether the simulated assistant is composing a reply.
func (c *Chat) IsTyping() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}

func assistantReply(question string) string {
	return fmt.Sprintf("I understand your question is: %q. As your AI travel "+
		"assistant I can help you with:\n\n"+
		"1. Destination weather and the best season to visit\n"+
		"2. Popular attractions and hidden gems\n"+
		"3. Detailed day-by-day itineraries\n"+
		"4. Practical tips on visas, currency, and connectivity\n\n"+
		"Is there anything else you would like to know?", question)
}
