package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateRange bounds a report. To is exclusive.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// StatusCount is a count grouped by a status-like column.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DailyCount is a count per calendar day (YYYY-MM-DD, UTC).
type DailyCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// DailyAuthorCount is messages per day per author kind.
type DailyAuthorCount struct {
	Day        string `json:"day"`
	AuthorKind string `json:"author_kind"`
	Count      int64  `json:"count"`
}

// AgentWorkload is the number of open conversations assigned to an agent.
type AgentWorkload struct {
	AgentID  uuid.UUID `json:"agent_id"`
	Username string    `json:"username"`
	Open     int64     `json:"open"`
}

// RoleCount is users per role.
type RoleCount struct {
	Role   string `json:"role"`
	Active int64  `json:"active"`
	Total  int64  `json:"total"`
}

// DailyAmount is transactions per day per kind.
type DailyAmount struct {
	Day   string          `json:"day"`
	Kind  string          `json:"kind"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// MethodCount is reconciled deposits per match method.
type MethodCount struct {
	Method string `json:"method"`
	Count  int64  `json:"count"`
}

// TicketReport groups conversation stats.
type TicketReport struct {
	Range    DateRange     `json:"range"`
	ByStatus []StatusCount `json:"by_status"`
	Opened   []DailyCount  `json:"opened_per_day"`
}

// ReconciliationReport summarizes IPN outcomes.
type ReconciliationReport struct {
	Range   DateRange     `json:"range"`
	Events  []StatusCount `json:"events"`
	Methods []MethodCount `json:"methods"`
	Pending int64         `json:"pending_deposits"`
}

// Dashboard bundles every report.
type Dashboard struct {
	Range          DateRange             `json:"range"`
	Tickets        *TicketReport         `json:"tickets"`
	Messages       []DailyAuthorCount    `json:"messages"`
	Agents         []AgentWorkload       `json:"agents"`
	Users          []RoleCount           `json:"users"`
	Transactions   []DailyAmount         `json:"transactions"`
	Reconciliation *ReconciliationReport `json:"reconciliation"`
}
