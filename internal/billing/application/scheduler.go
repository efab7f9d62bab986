package application

import (
	"context"
	"log"
	"time"

	billing "rental-billing/internal/billing/domain"
	"rental-billing/internal/observability/metrics"
)

// ReminderNotifier receives overdue and due-today evaluation results.
type ReminderNotifier interface {
	Notify(ctx context.Context, result Result)
}

// Scheduler runs the daily evaluation pass and forwards contracts that need
// a payment reminder. The engine itself stays on demand; only this loop has
// a notion of schedule.
type Scheduler struct {
	service  *EvaluationService
	notifier ReminderNotifier
	dailyAt  string
	logger   *log.Logger
}

// NewScheduler constructs a Scheduler.
func NewScheduler(service *EvaluationService, notifier ReminderNotifier, dailyAt string, logger *log.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		notifier: notifier,
		dailyAt:  dailyAt,
		logger:   logger,
	}
}

// Start begins the scheduler loop.
func (s *Scheduler) Start(ctx context.Context) {
	if s == nil || s.service == nil {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !s.shouldRun(now.UTC()) {
				continue
			}
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single evaluation pass and dispatches reminders.
func (s *Scheduler) RunOnce(ctx context.Context) {
	start := time.Now()
	results, err := s.service.EvaluateAll(ctx)
	metrics.ObserveEvaluationPass(time.Since(start), err)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("billing evaluation error: %v", err)
		}
		return
	}
	for _, result := range results {
		if result.Err != nil {
			if s.logger != nil {
				s.logger.Printf("billing evaluation: contract=%s err=%v", result.Contract.ID, result.Err)
			}
			continue
		}
		if s.notifier == nil {
			continue
		}
		switch result.Cycle.Status {
		case billing.StatusOverdue, billing.StatusDueToday:
			s.notifier.Notify(ctx, result)
		}
	}
}

func (s *Scheduler) shouldRun(now time.Time) bool {
	hour, minute, err := parseDailyAt(s.dailyAt)
	if err != nil {
		return false
	}
	return now.Hour() == hour && now.Minute() == minute
}

func parseDailyAt(value string) (int, int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}
