package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	app "rental-billing/internal/billing/application"
	billing "rental-billing/internal/billing/domain"
	"rental-billing/internal/observability/metrics"
)

// Clock provides time for cooldown tracking.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Notifier sends payment reminders through a channel, at most once per
// contract and status within the cooldown window.
type Notifier struct {
	channel        Channel
	template       *Template
	logger         *log.Logger
	clock          Clock
	cooldown       time.Duration
	requestTimeout time.Duration

	mu   sync.Mutex
	sent map[string]time.Time
}

// Option configures the notifier.
type Option func(*Notifier)

// WithCooldown sets the minimum interval between reminders for the same
// contract and status.
func WithCooldown(interval time.Duration) Option {
	return func(n *Notifier) {
		if interval > 0 {
			n.cooldown = interval
		}
	}
}

// WithClock overrides the default clock.
func WithClock(clock Clock) Option {
	return func(n *Notifier) {
		if clock != nil {
			n.clock = clock
		}
	}
}

// WithRequestTimeout bounds each delivery attempt.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(n *Notifier) {
		if timeout > 0 {
			n.requestTimeout = timeout
		}
	}
}

// NewNotifier constructs a reminder notifier.
func NewNotifier(channel Channel, template *Template, logger *log.Logger, opts ...Option) (*Notifier, error) {
	if channel == nil {
		return nil, fmt.Errorf("reminder notifier: nil channel")
	}
	if template == nil {
		defaultTemplate, err := NewTemplate("")
		if err != nil {
			return nil, err
		}
		template = defaultTemplate
	}
	n := &Notifier{
		channel:        channel,
		template:       template,
		logger:         logger,
		clock:          systemClock{},
		requestTimeout: 5 * time.Second,
		sent:           make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Notify implements application.ReminderNotifier.
func (n *Notifier) Notify(ctx context.Context, result app.Result) {
	if n == nil || n.channel == nil || result.Err != nil {
		return
	}
	key := result.Contract.ID + "|" + string(result.Cycle.Status)
	if !n.shouldSend(key) {
		return
	}

	content, err := n.template.Render(templateData(result))
	if err != nil {
		if n.logger != nil {
			n.logger.Printf("reminder render error: contract=%s err=%v", result.Contract.ID, err)
		}
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, n.requestTimeout)
	defer cancel()
	if err := n.channel.Send(sendCtx, content); err != nil {
		metrics.IncReminder(string(result.Cycle.Status), false)
		if n.logger != nil {
			n.logger.Printf("reminder send error: contract=%s err=%v", result.Contract.ID, err)
		}
		return
	}
	metrics.IncReminder(string(result.Cycle.Status), true)
	n.markSent(key)
}

func (n *Notifier) shouldSend(key string) bool {
	if n.cooldown <= 0 {
		return true
	}
	n.mu.Lock()
	last, ok := n.sent[key]
	n.mu.Unlock()
	if !ok {
		return true
	}
	return n.clock.Now().Sub(last) >= n.cooldown
}

func (n *Notifier) markSent(key string) {
	n.mu.Lock()
	n.sent[key] = n.clock.Now()
	n.mu.Unlock()
}

func templateData(result app.Result) TemplateData {
	return TemplateData{
		ClientID:    result.Contract.ClientID,
		ContractID:  result.Contract.ID,
		Status:      string(result.Cycle.Status),
		StatusLabel: statusLabel(result.Cycle.Status),
		DueDate:     result.Cycle.NextDueDate.Format("2006-01-02"),
		DaysLate:    result.Cycle.DaysLate(),
		Amount:      fmt.Sprintf("%.2f", result.Contract.Rate()),
		PeriodPaid:  result.PeriodPaid,
	}
}

func statusLabel(status billing.Status) string {
	switch status {
	case billing.StatusOverdue:
		return "Overdue"
	case billing.StatusDueToday:
		return "Due Today"
	case billing.StatusPending:
		return "Pending"
	default:
		return string(status)
	}
}
