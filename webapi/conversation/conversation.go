package conversation

import (
	"github.com/amirasaad/backoffice/pkg/config"
	conv "github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/middleware"
	conversationsvc "github.com/amirasaad/backoffice/pkg/service/conversation"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes mounts the conversation API. Viewers may read; writes need an
// agent or admin.
func Routes(app fiber.Router, convSvc *conversationsvc.Service, cfg *config.App) {
	app.Post("/webhooks/zendesk", ZendeskWebhook(convSvc, cfg.Zendesk))

	group := app.Group("/conversations", middleware.JwtProtected(cfg.Auth.Jwt))
	staff := middleware.RequireRole(user.RoleAgent, user.RoleAdmin)
	group.Post("/", staff, CreateConversation(convSvc))
	group.Get("/", ListConversations(convSvc))
	group.Get("/:id", GetConversation(convSvc))
	group.Put("/:id", staff, UpdateConversation(convSvc))
	group.Delete("/:id", middleware.RequireRole(user.RoleAdmin), DeleteConversation(convSvc))
	group.Post("/:id/assign", staff, AssignConversation(convSvc))
	group.Post("/:id/close", staff, CloseConversation(convSvc))
	group.Get("/:id/messages", ListMessages(convSvc))
	group.Post("/:id/messages", staff, AddMessage(convSvc))
	group.Post("/:id/read", staff, MarkRead(convSvc))
}

// CreateConversation opens a conversation.
// @Summary Create conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param request body dto.ConversationCreate true "Conversation"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /conversations [post]
// @Security Bearer
func CreateConversation(convSvc *conversationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ConversationCreate](c)
		if input == nil {
			return err
		}
		conversation, err := convSvc.Create(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create conversation", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Conversation created", conversationsvc.ToRead(conversation))
	}
}

// ListConversations returns one page of conversations.
// @Summary List conversations
// @Tags conversations
// @Produce json
// @Param status query string false "open, pending, solved or closed"
// @Param assignee query string false "Agent ID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Router /conversations [get]
// @Security Bearer
func ListConversations(convSvc *conversationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignee, err := common.QueryUUID(c, "assignee")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid assignee", err, fiber.StatusBadRequest)
		}
		filter := dto.ConversationFilter{Status: c.Query("status"), AssigneeID: assignee}
		filter.Page, filter.PageSize = dto.NormalizePage(common.Paging(c))
		items, total, err := convSvc.List(c.UserContext(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list conversations", err)
		}
		out := make([]dto.ConversationRead, 0, len(items))
		for _, item := range items {
			out = append(out, conversationsvc.ToRead(item))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversations", dto.Page[dto.ConversationRead]{
			Items:    out,
			Page:     filter.Page,
			PageSize: filter.PageSize,
			Total:    total,
		})
	}
}

// GetConversation returns one conversation.
// @Summary Get conversation
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /conversations/{id} [get]
// @Security Bearer
func GetConversation(convSvc *conversationsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		conversation, err := convSvc.Get(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Conversation not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation found", conversationsvc.ToRead(conversation))
	})
}

// UpdateConversation changes status and/or subject.
// @Summary Update conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.ConversationUpdate true "Fields to change"
// @Success 200 {object} common.Response
// @Router /conversations/{id} [put]
// @Security Bearer
func UpdateConversation(convSvc *conversationsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		input, err := common.BindAndValidate[dto.ConversationUpdate](c)
		if input == nil {
			return err
		}
		conversation, err := convSvc.Update(c.UserContext(), id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update conversation", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation updated", conversationsvc.ToRead(conversation))
	})
}

// DeleteConversation removes a conversation and its messages.
// @Summary Delete conversation
// @Tags conversations
// @Param id path string true "Conversation ID"
// @Success 204
// @Router /conversations/{id} [delete]
// @Security Bearer
func DeleteConversation(convSvc *conversationsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		if err := convSvc.Delete(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete conversation", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// AssignConversation hands a conversation to an agent.
// @Summary Assign conversation
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.ConversationAssign true "Agent"
// @Success 200 {object} common.Response
// @Router /conversations/{id}/assign [post]
// @Security Bearer
func AssignConversation(convSvc *conversationsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		input, err := common.BindAndValidate[dto.ConversationAssign](c)
		if input == nil {
			return err
		}
		conversation, err := convSvc.Assign(c.UserContext(), id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't assign conversation", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation assigned", conversationsvc.ToRead(conversation))
	})
}

// CloseConversation closes a conversation.
// @Summary Close conversation
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} common.Response
// @Router /conversations/{id}/close [post]
// @Security Bearer
func CloseConversation(convSvc *conversationsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		conversation, err := convSvc.Close(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't close conversation", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation closed", conversationsvc.ToRead(conversation))
	})
}

// ListMessages returns a conversation's messages, oldest first.
// @Summary List messages
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} common.Response
// @Router /conversations/{id}/messages [get]
// @Security Bearer
func ListMessages(convSvc *conversationsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		msgs, err := convSvc.ListMessages(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list messages", err)
		}
		out := make([]dto.MessageRead, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, conversationsvc.ToMessageRead(m))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Messages", out)
	})
}

// AddMessage posts a message as the calling agent.
// @Summary Add message
// @Tags conversations
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.MessageCreate true "Message"
// @Success 201 {object} common.Response
// @Failure 409 {object} common.ProblemDetails
// @Router /conversations/{id}/messages [post]
// @Security Bearer
func AddMessage(convSvc *conversationsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		input, err := common.BindAndValidate[dto.MessageCreate](c)
		if input == nil {
			return err
		}
		p, _ := middleware.GetPrincipal(c)
		author := conversationsvc.Author{Kind: conv.AuthorAgent, ID: &p.UserID, Name: p.Username}
		m, err := convSvc.AddMessage(c.UserContext(), id, author, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't add message", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Message added", conversationsvc.ToMessageRead(m))
	})
}

// MarkRead resets the unread counter.
// @Summary Mark conversation read
// @Tags conversations
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} common.Response
// @Router /conversations/{id}/read [post]
// @Security Bearer
func MarkRead(convSvc *conversationsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		conversation, err := convSvc.MarkRead(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't mark conversation read", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation read", conversationsvc.ToRead(conversation))
	})
}

func withID(h func(*fiber.Ctx, uuid.UUID) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid conversation ID", err, "Conversation ID must be a valid UUID", fiber.StatusBadRequest)
		}
		return h(c, id)
	}
}
