package v1_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
	v1 "github.com/arx-shy/AI-Travel-Planner-Pro/internal/logic/v1"
)

func newChat(opts ...v1.ChatOption) *v1.Chat {
	opts = append([]v1.ChatOption{v1.WithReplyDelay(0)}, opts...)
	return v1.NewChat(zerolog.Nop(), opts...)
}

func TestChat_CreateSession(t *testing.T) {
	c := newChat()

	session, err := c.CreateSession(context.Background(), "Japan questions")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "Japan questions", session.Title)

	current := c.Current()
	require.NotNil(t, current)
	assert.Equal(t, session.ID, current.ID)

	untitled, err := c.CreateSession(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "New conversation", untitled.Title)

	sessions := c.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, untitled.ID, sessions[0].ID, "newest first")
}

func TestChat_SendMessage(t *testing.T) {
	c := newChat()
	session, err := c.CreateSession(context.Background(), "Trip")
	require.NoError(t, err)

	reply, err := c.SendMessage(context.Background(), "What's the weather in Kyoto?")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAssistant, reply.Role)
	assert.Equal(t, session.ID, reply.SessionID)
	assert.Contains(t, reply.Content, "What's the weather in Kyoto?")

	messages := c.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, domain.RoleUser, messages[0].Role)
	assert.Equal(t, "What's the weather in Kyoto?", messages[0].Content)
	assert.Equal(t, domain.RoleAssistant, messages[1].Role)
	assert.False(t, c.IsTyping())
}

func TestChat_SendMessageAutoCreatesSession(t *testing.T) {
	c := newChat()
	require.Nil(t, c.Current())

	_, err := c.SendMessage(context.Background(), "Hello")
	require.NoError(t, err)

	current := c.Current()
	require.NotNil(t, current)
	assert.Equal(t, "New conversation", current.Title)
	assert.Len(t, c.Messages(), 2)
}

func TestChat_SendMessageCanceled(t *testing.T) {
	c := newChat(v1.WithReplyDelay(time.Minute))
	_, err := c.CreateSession(context.Background(), "Trip")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.SendMessage(ctx, "Hello")
	require.ErrorIs(t, err, context.Canceled)

	// The user message stays; only the reply is missing.
	messages := c.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, domain.RoleUser, messages[0].Role)
	assert.False(t, c.IsTyping())
}

func TestChat_SwitchSession(t *testing.T) {
	c := newChat()
	first, err := c.CreateSession(context.Background(), "First")
	require.NoError(t, err)
	_, err = c.CreateSession(context.Background(), "Second")
	require.NoError(t, err)
	_, err = c.SendMessage(context.Background(), "Hello")
	require.NoError(t, err)

	require.NoError(t, c.SwitchSession(context.Background(), first.ID))
	current := c.Current()
	require.NotNil(t, current)
	assert.Equal(t, first.ID, current.ID)
	assert.Empty(t, c.Messages(), "switching clears the loaded history")

	err = c.SwitchSession(context.Background(), "no-such-id")
	require.ErrorIs(t, err, v1.ErrChatSessionNotFound)
}

func TestChat_DeleteSession(t *testing.T) {
	c := newChat()
	first, err := c.CreateSession(context.Background(), "First")
	require.NoError(t, err)
	second, err := c.CreateSession(context.Background(), "Second")
	require.NoError(t, err)
	_, err = c.SendMessage(context.Background(), "Hello")
	require.NoError(t, err)

	require.NoError(t, c.DeleteSession(context.Background(), second.ID))
	assert.Nil(t, c.Current(), "deleting the selected session clears the selection")
	assert.Empty(t, c.Messages())

	sessions := c.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, first.ID, sessions[0].ID)

	require.NoError(t, c.DeleteSession(context.Background(), "no-such-id"))
}

func TestChat_FetchSessionsResets(t *testing.T) {
	c := newChat()
	_, err := c.CreateSession(context.Background(), "Trip")
	require.NoError(t, err)

	sessions, err := c.FetchSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
	assert.Empty(t, c.Sessions())
}

func TestChat_ClearCurrent(t *testing.T) {
	c := newChat()
	_, err := c.SendMessage(context.Background(), "Hello")
	require.NoError(t, err)

	c.ClearCurrent()
	assert.Empty(t, c.Messages())
	assert.NotNil(t, c.Current(), "the session itself survives a clear")
}
