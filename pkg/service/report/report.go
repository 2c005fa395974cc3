// Package report serves read-only aggregations for dashboard charts.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	reportrepo "github.com/amirasaad/backoffice/pkg/repository/report"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSpan is the range used when the caller gives no start.
	DefaultSpan = 30 * 24 * time.Hour
	// MaxSpan bounds every range.
	MaxSpan = 366 * 24 * time.Hour
)

// ErrRangeTooLong is returned for ranges longer than MaxSpan.
var ErrRangeTooLong = fmt.Errorf("date range longer than 366 days: %w", domain.ErrValidation)

// Service runs report queries.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Range resolves optional bounds. A missing end is the end of today (UTC), a
// missing start is DefaultSpan before the end.
func (s *Service) Range(from, to *time.Time) (dto.DateRange, error) {
	var r dto.DateRange
	if to != nil {
		r.To = to.UTC()
	} else {
		r.To = s.now().Truncate(24 * time.Hour).Add(24 * time.Hour)
	}
	if from != nil {
		r.From = from.UTC()
	} else {
		r.From = r.To.Add(-DefaultSpan)
	}
	if !r.From.Before(r.To) {
		return r, fmt.Errorf("from must be before to: %w", domain.ErrValidation)
	}
	if r.To.Sub(r.From) > MaxSpan {
		return r, ErrRangeTooLong
	}
	return r, nil
}

func (s *Service) repo() (reportrepo.Repository, error) {
	return repository.Repo[reportrepo.Repository](s.uow)
}

// Tickets reports conversations by status and opened per day.
func (s *Service) Tickets(ctx context.Context, r dto.DateRange) (*dto.TicketReport, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	report := &dto.TicketReport{Range: r}
	if report.ByStatus, err = repo.ConversationsByStatus(ctx, r); err != nil {
		return nil, err
	}
	if report.Opened, err = repo.ConversationsPerDay(ctx, r); err != nil {
		return nil, err
	}
	return report, nil
}

// Messages reports messages per day by author kind.
func (s *Service) Messages(ctx context.Context, r dto.DateRange) ([]dto.DailyAuthorCount, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.MessagesPerDay(ctx, r)
}

// Agents reports open conversations per agent.
func (s *Service) Agents(ctx context.Context) ([]dto.AgentWorkload, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.AgentWorkload(ctx)
}

// Users reports users by role.
func (s *Service) Users(ctx context.Context) ([]dto.RoleCount, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.UsersByRole(ctx)
}

// Transactions reports deposits and withdrawals per day.
func (s *Service) Transactions(ctx context.Context, r dto.DateRange) ([]dto.DailyAmount, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	return repo.TransactionsPerDay(ctx, r)
}

// Reconciliation summarizes IPN outcomes and match methods.
func (s *Service) Reconciliation(ctx context.Context, r dto.DateRange) (*dto.ReconciliationReport, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}
	report := &dto.ReconciliationReport{Range: r}
	if report.Events, err = repo.IPNEventsByStatus(ctx, r); err != nil {
		return nil, err
	}
	if report.Methods, err = repo.MatchMethods(ctx, r); err != nil {
		return nil, err
	}
	if report.Pending, err = repo.PendingDeposits(ctx); err != nil {
		return nil, err
	}
	return report, nil
}

// Dashboard runs every report concurrently.
func (s *Service) Dashboard(ctx context.Context, r dto.DateRange) (*dto.Dashboard, error) {
	log := s.logger.With("from", r.From, "to", r.To)
	log.Debug("Dashboard called")
	d := &dto.Dashboard{Range: r}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Tickets, err = s.Tickets(ctx, r)
		return err
	})
	g.Go(func() (err error) {
		d.Messages, err = s.Messages(ctx, r)
		return err
	})
	g.Go(func() (err error) {
		d.Agents, err = s.Agents(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Users, err = s.Users(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Transactions, err = s.Transactions(ctx, r)
		return err
	})
	g.Go(func() (err error) {
		d.Reconciliation, err = s.Reconciliation(ctx, r)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("Dashboard failed", "error", err)
		return nil, err
	}
	return d, nil
}
