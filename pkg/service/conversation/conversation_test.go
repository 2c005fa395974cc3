package conversation_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/backoffice/internal/fixtures/mocks"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	convrepo "github.com/amirasaad/backoffice/pkg/repository/conversation"
	userrepo "github.com/amirasaad/backoffice/pkg/repository/user"
	convsvc "github.com/amirasaad/backoffice/pkg/service/conversation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     *convsvc.Service
	convs   *mocks.MockConversationRepository
	msgs    *mocks.MockMessageRepository
	users   *mocks.MockUserRepository
	zendesk *mocks.MockZendesk
	bus     *mocks.MockBus
}

func newFixture(t *testing.T, withZendesk bool) *fixture {
	t.Helper()
	f := &fixture{
		convs: mocks.NewMockConversationRepository(t),
		msgs:  mocks.NewMockMessageRepository(t),
		users: mocks.NewMockUserRepository(t),
		bus:   mocks.NewMockBus(t),
	}
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().GetRepository(repository.TypeOf[convrepo.Repository]()).Return(f.convs, nil).Maybe()
	uow.EXPECT().GetRepository(repository.TypeOf[convrepo.MessageRepository]()).Return(f.msgs, nil).Maybe()
	uow.EXPECT().GetRepository(repository.TypeOf[userrepo.Repository]()).Return(f.users, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	if withZendesk {
		f.zendesk = mocks.NewMockZendesk(t)
		f.svc = convsvc.New(uow, f.zendesk, f.bus, slog.Default())
	} else {
		f.svc = convsvc.New(uow, nil, f.bus, slog.Default())
	}
	return f
}

func emitted(eventType string) any {
	return mock.MatchedBy(func(e events.Event) bool { return e.Type() == eventType })
}

func newConversation(t *testing.T) *conversation.Conversation {
	t.Helper()
	c, err := conversation.New("Deposit not credited", "Ana", "ana@example.com")
	require.NoError(t, err)
	return c
}

func linked(t *testing.T, ticketID int64) *conversation.Conversation {
	c := newConversation(t)
	c.ZendeskTicketID = &ticketID
	return c
}

func TestCreate_WithFirstMessageAndTicket(t *testing.T) {
	t.Parallel()
	f := newFixture(t, true)

	f.zendesk.EXPECT().CreateTicket(mock.Anything, mock.MatchedBy(func(in dto.TicketCreate) bool {
		return in.Subject == "Deposit not credited" && in.Comment == "I sent 500 yesterday" &&
			in.RequesterEmail == "ana@example.com"
	})).Return(&dto.Ticket{ID: 321}, nil).Once()
	f.convs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.msgs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.ConversationCreated)).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.MessageCreated)).Return(nil).Once()

	c, err := f.svc.Create(context.Background(), dto.ConversationCreate{
		Subject:       "Deposit not credited",
		CustomerName:  "Ana",
		CustomerEmail: "Ana@Example.com",
		Message:       "I sent 500 yesterday",
		OpenTicket:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, c.ZendeskTicketID)
	assert.Equal(t, int64(321), *c.ZendeskTicketID)
	assert.Equal(t, 1, c.UnreadCount)
	assert.NotNil(t, c.LastMessageAt)
}

func TestCreate_TicketFailureKeepsConversation(t *testing.T) {
	t.Parallel()
	f := newFixture(t, true)

	f.zendesk.EXPECT().CreateTicket(mock.Anything, mock.Anything).Return(nil, errors.New("503")).Once()
	f.convs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.ConversationCreated)).Return(nil).Once()

	c, err := f.svc.Create(context.Background(), dto.ConversationCreate{Subject: "Help", OpenTicket: true})
	require.NoError(t, err)
	assert.Nil(t, c.ZendeskTicketID)
}

func TestCreate_EmptySubject(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	_, err := f.svc.Create(context.Background(), dto.ConversationCreate{Subject: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	id := uuid.New()
	f.convs.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

	_, err := f.svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, conversation.ErrConversationNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	f.convs.EXPECT().List(mock.Anything, mock.MatchedBy(func(filter dto.ConversationFilter) bool {
		return filter.Status == "open" && filter.Page == 1 && filter.PageSize == 20
	})).Return([]*conversation.Conversation{newConversation(t)}, 1, nil).Once()

	got, total, err := f.svc.List(context.Background(), dto.ConversationFilter{Status: "Open"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), total)

	_, _, err = f.svc.List(context.Background(), dto.ConversationFilter{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate_StatusSyncsTicket(t *testing.T) {
	t.Parallel()
	f := newFixture(t, true)
	c := linked(t, 55)
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Once()
	f.convs.EXPECT().Update(mock.Anything, c).Return(nil).Once()
	f.zendesk.EXPECT().UpdateTicket(mock.Anything, int64(55), mock.MatchedBy(func(in dto.TicketUpdate) bool {
		return in.Status != nil && *in.Status == "pending"
	})).Return(&dto.Ticket{ID: 55}, nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.ConversationUpdated)).Return(nil).Once()

	status, subject := "pending", "Deposit of 500 not credited"
	got, err := f.svc.Update(context.Background(), c.ID, dto.ConversationUpdate{Status: &status, Subject: &subject})
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusPending, got.Status)
	assert.Equal(t, subject, got.Subject)
}

func TestUpdate_ReopenClosedFails(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	c := newConversation(t)
	c.Status = conversation.StatusClosed
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Once()

	status := "open"
	_, err := f.svc.Update(context.Background(), c.ID, dto.ConversationUpdate{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestAssign(t *testing.T) {
	t.Parallel()

	t.Run("agent", func(t *testing.T) {
		f := newFixture(t, false)
		c := newConversation(t)
		agent, err := user.New("bob", "bob@example.com", "password", user.RoleAgent)
		require.NoError(t, err)
		f.users.EXPECT().Get(mock.Anything, agent.ID).Return(agent, nil).Once()
		f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Once()
		f.convs.EXPECT().Update(mock.Anything, c).Return(nil).Once()
		f.bus.EXPECT().Emit(mock.Anything, emitted(events.ConversationUpdated)).Return(nil).Once()

		got, err := f.svc.Assign(context.Background(), c.ID, dto.ConversationAssign{AgentID: agent.ID})
		require.NoError(t, err)
		assert.Equal(t, agent.ID, *got.AssigneeID)
	})

	t.Run("viewer", func(t *testing.T) {
		f := newFixture(t, false)
		viewer, err := user.New("vic", "vic@example.com", "password", user.RoleViewer)
		require.NoError(t, err)
		f.users.EXPECT().Get(mock.Anything, viewer.ID).Return(viewer, nil).Once()

		_, err = f.svc.Assign(context.Background(), uuid.New(), dto.ConversationAssign{AgentID: viewer.ID})
		assert.ErrorIs(t, err, convsvc.ErrNotAgent)
	})

	t.Run("unknown agent", func(t *testing.T) {
		f := newFixture(t, false)
		id := uuid.New()
		f.users.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

		_, err := f.svc.Assign(context.Background(), uuid.New(), dto.ConversationAssign{AgentID: id})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestClose(t *testing.T) {
	t.Parallel()
	f := newFixture(t, true)
	c := linked(t, 9)
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Twice()
	f.convs.EXPECT().Update(mock.Anything, c).Return(nil).Twice()
	f.zendesk.EXPECT().UpdateTicket(mock.Anything, int64(9), mock.Anything).Return(&dto.Ticket{ID: 9}, nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.ConversationClosed)).Return(nil).Once()

	got, err := f.svc.Close(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, got.IsClosed())

	// closing again is a no-op for Zendesk and subscribers
	_, err = f.svc.Close(context.Background(), c.ID)
	require.NoError(t, err)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	c := newConversation(t)
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Once()
	f.convs.EXPECT().Delete(mock.Anything, c.ID).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.ConversationDeleted)).Return(nil).Once()

	require.NoError(t, f.svc.Delete(context.Background(), c.ID))

	missing := uuid.New()
	f.convs.EXPECT().Get(mock.Anything, missing).Return(nil, domain.ErrNotFound).Once()
	assert.ErrorIs(t, f.svc.Delete(context.Background(), missing), conversation.ErrConversationNotFound)
}

func TestAddMessage_AgentMirrorsToTicket(t *testing.T) {
	t.Parallel()
	f := newFixture(t, true)
	c := linked(t, 77)
	agentID := uuid.New()
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Twice()
	f.zendesk.EXPECT().AddComment(mock.Anything, int64(77), dto.CommentCreate{Body: "Checking now", Public: true}).
		Return(&dto.TicketComment{ID: 9001}, nil).Once()
	f.msgs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(m *conversation.Message) bool {
		return m.ZendeskCommentID != nil && *m.ZendeskCommentID == 9001
	})).Return(nil).Once()
	f.convs.EXPECT().Update(mock.Anything, c).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.MessageCreated)).Return(nil).Once()

	m, err := f.svc.AddMessage(context.Background(), c.ID,
		convsvc.Author{Kind: conversation.AuthorAgent, ID: &agentID, Name: "Bob"},
		dto.MessageCreate{Body: " Checking now "})
	require.NoError(t, err)
	assert.Equal(t, "Checking now", m.Body)
	assert.Equal(t, 0, c.UnreadCount)
	assert.NotNil(t, c.LastMessageAt)
}

func TestAddMessage_ZendeskFailureStoresNothing(t *testing.T) {
	t.Parallel()
	f := newFixture(t, true)
	c := linked(t, 77)
	agentID := uuid.New()
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Once()
	f.zendesk.EXPECT().AddComment(mock.Anything, int64(77), dto.CommentCreate{Body: "Checking now", Public: true}).
		Return(nil, errors.New("zendesk 503")).Once()

	m, err := f.svc.AddMessage(context.Background(), c.ID,
		convsvc.Author{Kind: conversation.AuthorAgent, ID: &agentID, Name: "Bob"},
		dto.MessageCreate{Body: "Checking now"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Nil(t, m)
	f.msgs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.convs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Nil(t, c.LastMessageAt)
}

func TestAddMessage_CustomerIsNotMirrored(t *testing.T) {
	t.Parallel()
	f := newFixture(t, true)
	c := linked(t, 77)
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Twice()
	f.msgs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.convs.EXPECT().Update(mock.Anything, c).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.MessageCreated)).Return(errors.New("bus down")).Once()

	_, err := f.svc.AddMessage(context.Background(), c.ID,
		convsvc.Author{Kind: conversation.AuthorCustomer, Name: "Ana"},
		dto.MessageCreate{Body: "any news?"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.UnreadCount)
}

func TestAddMessage_Rejections(t *testing.T) {
	t.Parallel()

	t.Run("closed", func(t *testing.T) {
		f := newFixture(t, false)
		c := newConversation(t)
		c.Status = conversation.StatusClosed
		f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Once()

		_, err := f.svc.AddMessage(context.Background(), c.ID,
			convsvc.Author{Kind: conversation.AuthorAgent}, dto.MessageCreate{Body: "hi"})
		assert.ErrorIs(t, err, conversation.ErrConversationClosed)
	})

	t.Run("empty body", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.svc.AddMessage(context.Background(), uuid.New(),
			convsvc.Author{Kind: conversation.AuthorAgent}, dto.MessageCreate{Body: " "})
		assert.ErrorIs(t, err, conversation.ErrEmptyMessage)
	})
}

func TestListMessages(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	c := newConversation(t)
	m, err := conversation.NewMessage(c.ID, conversation.AuthorCustomer, nil, "Ana", "hello")
	require.NoError(t, err)
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Once()
	f.msgs.EXPECT().ListByConversation(mock.Anything, c.ID).Return([]*conversation.Message{m}, nil).Once()

	got, err := f.svc.ListMessages(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, []*conversation.Message{m}, got)
}

func TestMarkRead(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	c := newConversation(t)
	c.UnreadCount = 4
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Once()
	f.convs.EXPECT().Update(mock.Anything, c).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.ConversationUpdated)).Return(nil).Once()

	got, err := f.svc.MarkRead(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UnreadCount)
}

func TestApplyZendeskUpdate_StatusAndComment(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	c := linked(t, 12)
	commentID := int64(500)
	f.convs.EXPECT().GetByZendeskTicketID(mock.Anything, int64(12)).Return(c, nil).Once()
	f.convs.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Twice()
	f.convs.EXPECT().Update(mock.Anything, c).Return(nil).Twice()
	f.msgs.EXPECT().ExistsByZendeskCommentID(mock.Anything, commentID).Return(false, nil).Once()
	f.msgs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(m *conversation.Message) bool {
		return m.AuthorKind == conversation.AuthorAgent && m.AuthorName == "Zoe" && *m.ZendeskCommentID == commentID
	})).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.ConversationUpdated)).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, emitted(events.MessageCreated)).Return(nil).Once()

	got, err := f.svc.ApplyZendeskUpdate(context.Background(), dto.ZendeskTicketUpdate{
		TicketID:    12,
		Status:      "hold",
		CommentID:   &commentID,
		CommentBody: "We found your transfer",
		AuthorName:  "Zoe",
		AuthorRole:  "agent",
		Public:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusPending, got.Status)
}

func TestApplyZendeskUpdate_DuplicateComment(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	c := linked(t, 12)
	commentID := int64(500)
	f.convs.EXPECT().GetByZendeskTicketID(mock.Anything, int64(12)).Return(c, nil).Once()
	f.msgs.EXPECT().ExistsByZendeskCommentID(mock.Anything, commentID).Return(true, nil).Once()

	got, err := f.svc.ApplyZendeskUpdate(context.Background(), dto.ZendeskTicketUpdate{
		TicketID: 12, Status: "open", CommentID: &commentID, CommentBody: "echo", Public: true,
	})
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestApplyZendeskUpdate_ClosedStaysClosed(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	c := linked(t, 12)
	c.Status = conversation.StatusClosed
	f.convs.EXPECT().GetByZendeskTicketID(mock.Anything, int64(12)).Return(c, nil).Once()

	got, err := f.svc.ApplyZendeskUpdate(context.Background(), dto.ZendeskTicketUpdate{TicketID: 12, Status: "open"})
	require.NoError(t, err)
	assert.True(t, got.IsClosed())
}

func TestApplyZendeskUpdate_UnknownTicket(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)
	f.convs.EXPECT().GetByZendeskTicketID(mock.Anything, int64(1)).Return(nil, domain.ErrNotFound).Once()

	_, err := f.svc.ApplyZendeskUpdate(context.Background(), dto.ZendeskTicketUpdate{TicketID: 1})
	assert.ErrorIs(t, err, conversation.ErrConversationNotFound)
}
