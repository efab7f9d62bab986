package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	billing "rental-billing/internal/billing/domain"
	contract "rental-billing/internal/contract/domain"
	payment "rental-billing/internal/payment/domain"
)

// ContractSource supplies the active contracts to evaluate.
type ContractSource interface {
	ListActive(ctx context.Context) ([]contract.Contract, error)
}

// PaymentSource supplies a client's payment history.
type PaymentSource interface {
	ListByClient(ctx context.Context, clientID string) ([]payment.Payment, error)
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock uses time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Result is the outcome of evaluating a single contract. Err is set when
// the contract could not be evaluated; the rest of the pass is unaffected.
type Result struct {
	Contract   contract.Contract
	Cycle      billing.Cycle
	PeriodPaid bool
	Err        error
}

// EvaluationService computes billing cycles for every active contract.
// Per-contract evaluations are independent, so the pass fans out over a
// bounded worker pool.
type EvaluationService struct {
	contracts ContractSource
	payments  PaymentSource
	clock     Clock
	workers   int
}

// Option configures the evaluation service.
type Option func(*EvaluationService)

// WithWorkers bounds the evaluation fan-out.
func WithWorkers(n int) Option {
	return func(s *EvaluationService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithClock overrides the default clock.
func WithClock(clock Clock) Option {
	return func(s *EvaluationService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewEvaluationService constructs the service.
func NewEvaluationService(contracts ContractSource, payments PaymentSource, opts ...Option) (*EvaluationService, error) {
	if contracts == nil {
		return nil, errors.New("evaluation service: nil contract source")
	}
	if payments == nil {
		return nil, errors.New("evaluation service: nil payment source")
	}
	s := &EvaluationService{
		contracts: contracts,
		payments:  payments,
		clock:     SystemClock{},
		workers:   4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// EvaluateAll runs one evaluation pass over all active contracts, as of the
// service clock's current day. Results keep the contract listing order; a
// failing contract yields a Result with Err set instead of aborting the pass.
func (s *EvaluationService) EvaluateAll(ctx context.Context) ([]Result, error) {
	contracts, err := s.contracts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluation service: list active contracts: %w", err)
	}
	return s.evaluate(ctx, contracts, billing.NormalizeDate(s.clock.Now())), nil
}

// EvaluateContract evaluates a single contract as of today.
func (s *EvaluationService) EvaluateContract(ctx context.Context, c contract.Contract) Result {
	return s.evaluateOne(ctx, c, billing.NormalizeDate(s.clock.Now()))
}

func (s *EvaluationService) evaluate(ctx context.Context, contracts []contract.Contract, today time.Time) []Result {
	results := make([]Result, len(contracts))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := s.workers
	if workers > len(contracts) {
		workers = len(contracts)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = s.evaluateOne(ctx, contracts[idx], today)
			}
		}()
	}

	for idx := range contracts {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

func (s *EvaluationService) evaluateOne(ctx context.Context, c contract.Contract, today time.Time) Result {
	result := Result{Contract: c}

	payments, err := s.payments.ListByClient(ctx, c.ClientID)
	if err != nil {
		result.Err = fmt.Errorf("list payments for client %s: %w", c.ClientID, err)
		return result
	}

	cycle, err := billing.Evaluate(c, payments, today)
	if err != nil {
		result.Err = fmt.Errorf("evaluate contract %s: %w", c.ID, err)
		return result
	}
	result.Cycle = cycle

	paid, err := billing.PeriodPaid(payments, cycle.NextDueDate, c.Recurrence)
	if err != nil {
		result.Err = fmt.Errorf("period check for contract %s: %w", c.ID, err)
		return result
	}
	result.PeriodPaid = paid
	return result
}
