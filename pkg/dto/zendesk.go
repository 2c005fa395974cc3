package dto

import "time"

// Ticket is a Zendesk ticket.
type Ticket struct {
	ID          int64     `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority,omitempty"`
	RequesterID int64     `json:"requester_id,omitempty"`
	AssigneeID  *int64    `json:"assignee_id,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TicketQuery filters the ticket listing.
type TicketQuery struct {
	Status  string
	Page    int
	PerPage int
}

// TicketPage is one page of tickets.
type TicketPage struct {
	Tickets  []Ticket `json:"tickets"`
	Count    int      `json:"count"`
	NextPage bool     `json:"next_page"`
}

// TicketCreate opens a ticket on behalf of a requester.
type TicketCreate struct {
	Subject        string   `json:"subject" validate:"required,max=200"`
	Comment        string   `json:"comment" validate:"required"`
	RequesterName  string   `json:"requester_name" validate:"max=150"`
	RequesterEmail string   `json:"requester_email" validate:"omitempty,email"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Tags           []string `json:"tags"`
}

// TicketUpdate changes ticket fields. Nil means unchanged.
type TicketUpdate struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=new open pending hold solved closed"`
	Priority   *string `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	AssigneeID *int64  `json:"assignee_id,omitempty"`
}

// CommentCreate adds a comment to a ticket.
type CommentCreate struct {
	Body     string `json:"body" validate:"required"`
	Public   bool   `json:"public"`
	AuthorID *int64 `json:"author_id,omitempty"`
}

// TicketComment is a comment on a ticket.
type TicketComment struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
}

// Agent is a Zendesk user with agent or admin role.
type Agent struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ZendeskUser is a Zendesk user of any role.
type ZendeskUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ZendeskUserCreate creates an end-user.
type ZendeskUserCreate struct {
	Name  string `json:"name" validate:"required,max=150"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"max=32"`
}

// ChatMessage is a ticket comment seen as a chat line.
type ChatMessage struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	FromAgent bool      `json:"from_agent"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Chat is the conversation-style view of a ticket.
type Chat struct {
	TicketID int64         `json:"ticket_id"`
	Subject  string        `json:"subject"`
	Status   string        `json:"status"`
	Messages []ChatMessage `json:"messages"`
}
