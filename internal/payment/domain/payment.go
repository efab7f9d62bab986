package payment

import "time"

// Status is the lifecycle state of a payment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusInProcess Status = "in_process"
)

// Payment is a client payment record. Approved payments are immutable
// except for status transitions performed by external collaborators.
type Payment struct {
	ID        string
	ClientID  string
	Amount    float64
	Status    Status
	CreatedAt time.Time
}

// IsApproved reports whether the payment counts toward billing.
func (p Payment) IsApproved() bool { return p.Status == StatusApproved }

// Approved filters a payment slice down to approved payments.
func Approved(payments []Payment) []Payment {
	out := make([]Payment, 0, len(payments))
	for _, p := range payments {
		if p.IsApproved() {
			out = append(out, p)
		}
	}
	return out
}
