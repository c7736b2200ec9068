// Package scheduler runs the periodic billing jobs: generating invoices for
// due recurring schedules and flagging unpaid invoices past their due date.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/metrics"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Job names used in logs and metrics
const (
	JobRecurringInvoices = "recurring-invoices"
	JobOverdueInvoices   = "overdue-invoices"
)

const jobTimeout = 5 * time.Minute

// Scheduler wraps a cron runner whose jobs never overlap with themselves
type Scheduler struct {
	cron     *cron.Cron
	invoices billing.InvoiceService
	metrics  *metrics.Metrics
	logger   logger.Logger
	now      func() time.Time
}

// NewScheduler registers the billing jobs from settings. Nothing runs until Start.
// A disabled scheduler has no cron entries but its jobs can still be run directly.
func NewScheduler(settings *config.SchedulerSettings, invoices billing.InvoiceService, m *metrics.Metrics, logger logger.Logger) (*Scheduler, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &Scheduler{
		invoices: invoices,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
	s.cron = cron.New(cron.WithChain(
		cron.Recover(cron.DiscardLogger),
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	if !settings.Enabled {
		return s, nil
	}

	if _, err := s.cron.AddFunc(settings.RecurringInvoices, func() { s.run(JobRecurringInvoices, s.GenerateRecurring) }); err != nil {
		return nil, fmt.Errorf("failed to schedule %s: %w", JobRecurringInvoices, err)
	}
	if _, err := s.cron.AddFunc(settings.OverdueInvoices, func() { s.run(JobOverdueInvoices, s.MarkOverdue) }); err != nil {
		return nil, fmt.Errorf("failed to schedule %s: %w", JobOverdueInvoices, err)
	}
	return s, nil
}

// Start runs the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started with ", len(s.cron.Entries()), " jobs")
}

// Stop prevents new runs and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// GenerateRecurring issues the next invoice of every due recurring schedule
func (s *Scheduler) GenerateRecurring(ctx context.Context) (int, error) {
	n, err := s.invoices.GenerateRecurring(ctx, s.now())
	if err != nil {
		return n, err
	}
	s.metrics.InvoicesGenerated(n)
	return n, nil
}

// MarkOverdue flags unpaid invoices whose due date has passed
func (s *Scheduler) MarkOverdue(ctx context.Context) (int, error) {
	return s.invoices.MarkOverdue(ctx, s.now())
}

func (s *Scheduler) run(name string, job func(ctx context.Context) (int, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	n, err := job(ctx)
	s.metrics.JobRun(name, err == nil, time.Since(start))
	log := s.logger.With("job", name)
	if err != nil {
		log.Error("Job failed: ", err)
		return
	}
	log.Info("Job processed ", n, " invoices")
}
