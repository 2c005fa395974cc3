package report

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/dto"
)

// Repository runs read-only aggregation queries for dashboards.
type Repository interface {
	ConversationsByStatus(ctx context.Context, r dto.DateRange) ([]dto.StatusCount, error)
	ConversationsPerDay(ctx context.Context, r dto.DateRange) ([]dto.DailyCount, error)
	MessagesPerDay(ctx context.Context, r dto.DateRange) ([]dto.DailyAuthorCount, error)
	AgentWorkload(ctx context.Context) ([]dto.AgentWorkload, error)
	UsersByRole(ctx context.Context) ([]dto.RoleCount, error)
	TransactionsPerDay(ctx context.Context, r dto.DateRange) ([]dto.DailyAmount, error)
	IPNEventsByStatus(ctx context.Context, r dto.DateRange) ([]dto.StatusCount, error)
	MatchMethods(ctx context.Context, r dto.DateRange) ([]dto.MethodCount, error)
	PendingDeposits(ctx context.Context) (int64, error)
}
