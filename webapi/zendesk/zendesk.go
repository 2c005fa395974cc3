package zendesk

import (
	"strconv"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/middleware"
	zendesksvc "github.com/amirasaad/backoffice/pkg/service/zendesk"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app fiber.Router, zdSvc *zendesksvc.Service, cfg *config.App) {
	group := app.Group("/zendesk",
		middleware.JwtProtected(cfg.Auth.Jwt),
		middleware.RequireRole(user.RoleAgent, user.RoleAdmin),
	)
	group.Get("/tickets", ListTickets(zdSvc))
	group.Post("/tickets", CreateTicket(zdSvc))
	group.Get("/tickets/:id", GetTicket(zdSvc))
	group.Put("/tickets/:id", UpdateTicket(zdSvc))
	group.Get("/tickets/:id/comments", ListComments(zdSvc))
	group.Post("/tickets/:id/comments", AddComment(zdSvc))
	group.Get("/agents", ListAgents(zdSvc))
	group.Get("/users", SearchUsers(zdSvc))
	group.Post("/users", CreateUser(zdSvc))
	group.Get("/users/:id", GetUser(zdSvc))
	group.Get("/chats/:ticketId", GetChat(zdSvc))
}

// ListTickets proxies the ticket listing.
// @Summary List Zendesk tickets
// @Tags zendesk
// @Produce json
// @Param status query string false "Ticket status"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 503 {object} common.ProblemDetails
// @Router /zendesk/tickets [get]
// @Security Bearer
func ListTickets(zdSvc *zendesksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := tickets(c, zdSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list tickets", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Tickets", page)
	}
}

func tickets(c *fiber.Ctx, zdSvc *zendesksvc.Service) (*dto.TicketPage, error) {
	return zdSvc.ListTickets(c.UserContext(), dto.TicketQuery{
		Status:  c.Query("status"),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 0),
	})
}

// CreateTicket opens a ticket.
// @Summary Create Zendesk ticket
// @Tags zendesk
// @Accept json
// @Produce json
// @Param request body dto.TicketCreate true "Ticket"
// @Success 201 {object} common.Response
// @Router /zendesk/tickets [post]
// @Security Bearer
func CreateTicket(zdSvc *zendesksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.TicketCreate](c)
		if input == nil {
			return err
		}
		t, err := zdSvc.CreateTicket(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create ticket", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Ticket created", t)
	}
}

// GetTicket returns one ticket.
// @Summary Get Zendesk ticket
// @Tags zendesk
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} common.Response
// @Router /zendesk/tickets/{id} [get]
// @Security Bearer
func GetTicket(zdSvc *zendesksvc.Service) fiber.Handler {
	return withID("id", func(c *fiber.Ctx, id int64) error {
		t, err := zdSvc.GetTicket(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get ticket", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Ticket found", t)
	})
}

// UpdateTicket changes status, priority or assignee.
// @Summary Update Zendesk ticket
// @Tags zendesk
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body dto.TicketUpdate true "Fields to change"
// @Success 200 {object} common.Response
// @Router /zendesk/tickets/{id} [put]
// @Security Bearer
func UpdateTicket(zdSvc *zendesksvc.Service) fiber.Handler {
	return withID("id", func(c *fiber.Ctx, id int64) error {
		input, err := common.BindAndValidate[dto.TicketUpdate](c)
		if input == nil {
			return err
		}
		t, err := zdSvc.UpdateTicket(c.UserContext(), id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update ticket", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Ticket updated", t)
	})
}

// ListComments returns a ticket's comments.
// @Summary List ticket comments
// @Tags zendesk
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} common.Response
// @Router /zendesk/tickets/{id}/comments [get]
// @Security Bearer
func ListComments(zdSvc *zendesksvc.Service) fiber.Handler {
	return withID("id", func(c *fiber.Ctx, id int64) error {
		comments, err := zdSvc.ListComments(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list comments", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Comments", comments)
	})
}

// AddComment posts a comment on a ticket.
// @Summary Add ticket comment
// @Tags zendesk
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body dto.CommentCreate true "Comment"
// @Success 201 {object} common.Response
// @Router /zendesk/tickets/{id}/comments [post]
// @Security Bearer
func AddComment(zdSvc *zendesksvc.Service) fiber.Handler {
	return withID("id", func(c *fiber.Ctx, id int64) error {
		input, err := common.BindAndValidate[dto.CommentCreate](c)
		if input == nil {
			return err
		}
		comment, err := zdSvc.AddComment(c.UserContext(), id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't add comment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Comment added", comment)
	})
}

// ListAgents returns Zendesk agents and admins.
// @Summary List Zendesk agents
// @Tags zendesk
// @Produce json
// @Success 200 {object} common.Response
// @Router /zendesk/agents [get]
// @Security Bearer
func ListAgents(zdSvc *zendesksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		agents, err := zdSvc.ListAgents(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list agents", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Agents", agents)
	}
}

// SearchUsers searches Zendesk users by ?query.
// @Summary Search Zendesk users
// @Tags zendesk
// @Produce json
// @Param query query string true "Name or email"
// @Success 200 {object} common.Response
// @Router /zendesk/users [get]
// @Security Bearer
func SearchUsers(zdSvc *zendesksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := zdSvc.SearchUsers(c.UserContext(), c.Query("query"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't search users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users", users)
	}
}

// CreateUser creates an end-user.
// @Summary Create Zendesk user
// @Tags zendesk
// @Accept json
// @Produce json
// @Param request body dto.ZendeskUserCreate true "User"
// @Success 201 {object} common.Response
// @Router /zendesk/users [post]
// @Security Bearer
func CreateUser(zdSvc *zendesksvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.ZendeskUserCreate](c)
		if input == nil {
			return err
		}
		u, err := zdSvc.CreateUser(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", u)
	}
}

// GetUser returns one Zendesk user.
// @Summary Get Zendesk user
// @Tags zendesk
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} common.Response
// @Router /zendesk/users/{id} [get]
// @Security Bearer
func GetUser(zdSvc *zendesksvc.Service) fiber.Handler {
	return withID("id", func(c *fiber.Ctx, id int64) error {
		u, err := zdSvc.GetUser(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	})
}

// GetChat returns a ticket as a chat transcript.
// @Summary Get ticket chat
// @Tags zendesk
// @Produce json
// @Param ticketId path int true "Ticket ID"
// @Success 200 {object} common.Response
// @Router /zendesk/chats/{ticketId} [get]
// @Security Bearer
func GetChat(zdSvc *zendesksvc.Service) fiber.Handler {
	return withID("ticketId", func(c *fiber.Ctx, id int64) error {
		chat, err := zdSvc.GetChat(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get chat", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Chat", chat)
	})
}

func withID(param string, h func(*fiber.Ctx, int64) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params(param), 10, 64)
		if err != nil || id <= 0 {
			return common.ProblemDetailsJSON(c, "Invalid ID", err, "ID must be a positive integer", fiber.StatusBadRequest)
		}
		return h(c, id)
	}
}
