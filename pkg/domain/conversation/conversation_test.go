package conversation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New(" Deposit not credited ", "Ana", "Ana@Mail.com")
	require.NoError(t, err)
	assert.Equal(t, "Deposit not credited", c.Subject)
	assert.Equal(t, "ana@mail.com", c.CustomerEmail)
	assert.Equal(t, StatusOpen, c.Status)

	_, err = New("  ", "", "")
	assert.Error(t, err)
}

func TestClosedIsTerminal(t *testing.T) {
	c, err := New("subject", "", "")
	require.NoError(t, err)
	now := time.Now()

	require.NoError(t, c.SetStatus(StatusClosed, now))
	assert.ErrorIs(t, c.SetStatus(StatusOpen, now), ErrConversationClosed)
	assert.ErrorIs(t, c.Assign(uuid.New(), now), ErrConversationClosed)
	assert.NoError(t, c.SetStatus(StatusClosed, now))
}

func TestTouch(t *testing.T) {
	c, err := New("subject", "", "")
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, c.SetStatus(StatusSolved, now))

	c.Touch(AuthorAgent, now)
	assert.Equal(t, 0, c.UnreadCount)
	assert.Equal(t, StatusSolved, c.Status)

	c.Touch(AuthorCustomer, now)
	c.Touch(AuthorCustomer, now)
	assert.Equal(t, 2, c.UnreadCount)
	assert.Equal(t, StatusOpen, c.Status)

	c.MarkRead(now)
	assert.Equal(t, 0, c.UnreadCount)
}

func TestFromZendeskStatus(t *testing.T) {
	t.Parallel()
	tests := map[string]Status{
		"new":     StatusOpen,
		"open":    StatusOpen,
		"pending": StatusPending,
		"hold":    StatusPending,
		"solved":  StatusSolved,
		"closed":  StatusClosed,
	}
	for in, want := range tests {
		got, ok := FromZendeskStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := FromZendeskStatus("deleted")
	assert.False(t, ok)
}

func TestNewMessage(t *testing.T) {
	id := uuid.New()
	_, err := NewMessage(id, AuthorAgent, nil, "", "  ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = NewMessage(id, AuthorKind("bot"), nil, "", "hi")
	assert.ErrorIs(t, err, ErrInvalidAuthor)

	m, err := NewMessage(id, AuthorCustomer, nil, "Ana", " hello ")
	require.NoError(t, err)
	assert.Equal(t, "hello", m.Body)
	assert.Equal(t, id, m.ConversationID)
}
