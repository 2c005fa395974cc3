package events

import (
	"encoding/json"
	"testing"

	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTypesDecode(t *testing.T) {
	c, err := conversation.New("Refund", "Ana", "ana@mail.com")
	require.NoError(t, err)
	author := uuid.New()
	m, err := conversation.NewMessage(c.ID, conversation.AuthorAgent, &author, "Agent", "on it")
	require.NoError(t, err)

	raw, err := json.Marshal(NewMessageCreated(c, m))
	require.NoError(t, err)

	factory, ok := EventTypes[MessageCreated]
	require.True(t, ok)
	evt := factory()
	require.NoError(t, json.Unmarshal(raw, evt))

	got, ok := evt.(*ConversationEvent)
	require.True(t, ok)
	assert.Equal(t, MessageCreated, got.Type())
	assert.Equal(t, c.ID, got.ConversationID)
	require.NotNil(t, got.Message)
	assert.Equal(t, "on it", got.Message.Body)
}

func TestEveryTypeHasFactory(t *testing.T) {
	for name, factory := range EventTypes {
		assert.Equal(t, name, factory().Type(), name)
	}
	for _, name := range ConversationEventTypes {
		assert.Contains(t, EventTypes, name)
	}
}
