// Package report runs the dashboard aggregation queries.
package report

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	repo "github.com/amirasaad/backoffice/pkg/repository/report"
	"gorm.io/gorm"
)

const dayExpr = "to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"

type reportRepository struct {
	db *gorm.DB
}

// New creates a report repository on db.
func New(db *gorm.DB) repo.Repository {
	return &reportRepository{db: db}
}

func (r *reportRepository) ConversationsByStatus(ctx context.Context, rng dto.DateRange) ([]dto.StatusCount, error) {
	var out []dto.StatusCount
	err := r.db.WithContext(ctx).Table("conversations").
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", rng.From, rng.To).
		Group("status").
		Order("status").
		Scan(&out).Error
	return out, err
}

func (r *reportRepository) ConversationsPerDay(ctx context.Context, rng dto.DateRange) ([]dto.DailyCount, error) {
	var out []dto.DailyCount
	err := r.db.WithContext(ctx).Table("conversations").
		Select(dayExpr+" AS day, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", rng.From, rng.To).
		Group("day").
		Order("day").
		Scan(&out).Error
	return out, err
}

func (r *reportRepository) MessagesPerDay(ctx context.Context, rng dto.DateRange) ([]dto.DailyAuthorCount, error) {
	var out []dto.DailyAuthorCount
	err := r.db.WithContext(ctx).Table("messages").
		Select(dayExpr+" AS day, author_kind, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", rng.From, rng.To).
		Group("day, author_kind").
		Order("day, author_kind").
		Scan(&out).Error
	return out, err
}

// AgentWorkload counts conversations that are not solved or closed per assignee.
func (r *reportRepository) AgentWorkload(ctx context.Context) ([]dto.AgentWorkload, error) {
	var out []dto.AgentWorkload
	err := r.db.WithContext(ctx).Table("conversations AS c").
		Select("c.assignee_id AS agent_id, u.username, COUNT(*) AS open").
		Joins("JOIN users u ON u.id = c.assignee_id").
		Where("c.status IN ?", []string{string(conversation.StatusOpen), string(conversation.StatusPending)}).
		Group("c.assignee_id, u.username").
		Order("open DESC").
		Scan(&out).Error
	return out, err
}

func (r *reportRepository) UsersByRole(ctx context.Context) ([]dto.RoleCount, error) {
	var out []dto.RoleCount
	err := r.db.WithContext(ctx).Table("users").
		Select("role, COUNT(*) FILTER (WHERE active) AS active, COUNT(*) AS total").
		Group("role").
		Order("role").
		Scan(&out).Error
	return out, err
}

func (r *reportRepository) TransactionsPerDay(ctx context.Context, rng dto.DateRange) ([]dto.DailyAmount, error) {
	var out []dto.DailyAmount
	err := r.db.WithContext(ctx).Table("transactions").
		Select(dayExpr+" AS day, kind, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("created_at >= ? AND created_at < ? AND status = ?", rng.From, rng.To, string(transaction.StatusCompleted)).
		Group("day, kind").
		Order("day, kind").
		Scan(&out).Error
	return out, err
}

func (r *reportRepository) IPNEventsByStatus(ctx context.Context, rng dto.DateRange) ([]dto.StatusCount, error) {
	var out []dto.StatusCount
	err := r.db.WithContext(ctx).Table("ipn_events").
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", rng.From, rng.To).
		Group("status").
		Order("status").
		Scan(&out).Error
	return out, err
}

func (r *reportRepository) MatchMethods(ctx context.Context, rng dto.DateRange) ([]dto.MethodCount, error) {
	var out []dto.MethodCount
	err := r.db.WithContext(ctx).Table("transactions").
		Select("match_method AS method, COUNT(*) AS count").
		Where("kind = ? AND match_method <> '' AND matched_at >= ? AND matched_at < ?",
			string(transaction.KindDeposit), rng.From, rng.To).
		Group("match_method").
		Order("match_method").
		Scan(&out).Error
	return out, err
}

func (r *reportRepository) PendingDeposits(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("transactions").
		Where("kind = ? AND status = ?", string(transaction.KindDeposit), string(transaction.StatusPending)).
		Count(&count).Error
	return count, err
}

var _ repo.Repository = (*reportRepository)(nil)
