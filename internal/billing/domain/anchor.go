package billing

import (
	"time"

	contract "rental-billing/internal/contract/domain"
	payment "rental-billing/internal/payment/domain"
)

// ResolveAnchor picks the date the next due date is projected from: the most
// recent approved payment, or the contract start when no approved payment
// exists. Ties on created-at keep the later entry in input order.
func ResolveAnchor(c contract.Contract, payments []payment.Payment) (time.Time, error) {
	var latest time.Time
	found := false
	for _, p := range payments {
		if !p.IsApproved() {
			continue
		}
		if !found || !p.CreatedAt.Before(latest) {
			latest = p.CreatedAt
			found = true
		}
	}
	if found {
		return NormalizeDate(latest), nil
	}
	if c.StartDate.IsZero() {
		return time.Time{}, ErrMissingAnchor
	}
	return NormalizeDate(c.StartDate), nil
}
