package memory

import (
	"context"
	"sync"

	payment "rental-billing/internal/payment/domain"
)

// PaymentRepository is an in-memory payment store.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments []payment.Payment
}

// NewPaymentRepository constructs a repository.
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// Add stores a payment.
func (r *PaymentRepository) Add(p payment.Payment) {
	r.mu.Lock()
	r.payments = append(r.payments, p)
	r.mu.Unlock()
}

// ListByClient returns a client's payments in insertion order.
func (r *PaymentRepository) ListByClient(ctx context.Context, clientID string) ([]payment.Payment, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]payment.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListApproved returns every approved payment.
func (r *PaymentRepository) ListApproved(ctx context.Context) ([]payment.Payment, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]payment.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		if p.IsApproved() {
			out = append(out, p)
		}
	}
	return out, nil
}
