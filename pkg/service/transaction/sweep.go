package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	txrepo "github.com/amirasaad/backoffice/pkg/repository/transaction"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the sweep every five minutes.
const DefaultSchedule = "@every 5m"

const sweepTimeout = 2 * time.Minute

// Sweep retries unmatched or failed notifications and expires deposits
// nobody could reconcile.
func (s *Service) Sweep(ctx context.Context) (dto.SweepResult, error) {
	log := s.logger.With("context", "Sweep")
	log.Debug("Sweep called")
	var result dto.SweepResult

	ipns, err := repository.Repo[txrepo.IPNRepository](s.uow)
	if err != nil {
		return result, err
	}
	pending, err := ipns.ListRetryable(ctx, transaction.MaxAttempts, s.cfg.BatchSize)
	if err != nil {
		log.Error("Sweep failed to list events", "error", err)
		return result, err
	}
	for _, event := range pending {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		result.Retried++
		matched, err := s.retryEvent(ctx, event)
		if err != nil {
			log.Warn("retry failed", "eventID", event.ID, "error", err)
			continue
		}
		if matched {
			result.Matched++
		}
	}

	now := s.now()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txs, err := repository.Repo[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		n, err := txs.ExpirePendingDeposits(ctx, now.Add(-s.cfg.ExpireAfter), now)
		result.Expired = int(n)
		return err
	})
	if err != nil {
		log.Error("Sweep failed to expire deposits", "error", err)
		return result, err
	}
	log.Info("Sweep finished", "retried", result.Retried, "matched", result.Matched, "expired", result.Expired)
	return result, nil
}

// Scheduler runs Sweep on a cron schedule. Overlapping runs are skipped.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler registers the sweep under schedule (cron spec or @every).
func NewScheduler(svc *Service, schedule string, logger *slog.Logger) (*Scheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, err := svc.Sweep(ctx); err != nil {
			logger.Error("scheduled sweep failed", "error", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return &Scheduler{cron: c, logger: logger}, nil
}

// Start runs the scheduler in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("reconciliation sweep scheduled")
}

// Stop prevents new runs and returns a context done when the running one ends.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
