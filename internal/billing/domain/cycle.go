package billing

import (
	"time"

	contract "rental-billing/internal/contract/domain"
	payment "rental-billing/internal/payment/domain"
)

// Cycle is the derived billing state of a contract at a point in time.
// It is computed fresh on every evaluation and never stored.
type Cycle struct {
	AnchorDate    time.Time
	NextDueDate   time.Time
	DaysRemaining int
	Status        Status
}

// DaysLate returns the positive day count a cycle is overdue by, 0 otherwise.
func (c Cycle) DaysLate() int {
	if c.DaysRemaining < 0 {
		return -c.DaysRemaining
	}
	return 0
}

// Evaluate resolves the anchor, projects one interval and classifies the
// result against today. Pure: identical inputs yield identical cycles.
func Evaluate(c contract.Contract, payments []payment.Payment, today time.Time) (Cycle, error) {
	anchor, err := ResolveAnchor(c, payments)
	if err != nil {
		return Cycle{}, err
	}
	nextDue, err := ProjectDueDate(anchor, c.Recurrence)
	if err != nil {
		return Cycle{}, err
	}
	status, days := Classify(nextDue, today)
	return Cycle{
		AnchorDate:    anchor,
		NextDueDate:   nextDue,
		DaysRemaining: days,
		Status:        status,
	}, nil
}
