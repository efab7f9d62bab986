package contract

import "time"

// Recurrence is the billing cadence of a contract.
type Recurrence string

const (
	// RecurrenceWeekly bills every 7 calendar days.
	RecurrenceWeekly Recurrence = "weekly"
	// RecurrenceMonthly bills every calendar month.
	RecurrenceMonthly Recurrence = "monthly"
)

// IsValid reports whether the recurrence is a known cadence.
func (r Recurrence) IsValid() bool {
	return r == RecurrenceWeekly || r == RecurrenceMonthly
}

// Contract is an active rental agreement between a client and the platform.
// At most one active contract per client is assumed by call sites; this
// package does not enforce it.
type Contract struct {
	ID         string
	ClientID   string
	StartDate  time.Time
	Recurrence Recurrence
	Active     bool
	Rental     Rental
}

// Rental carries the monetary rates linked to exactly one contract.
type Rental struct {
	ID          string
	ContractID  string
	WeeklyRate  float64
	MonthlyRate float64
}

// Rate returns the rate matching the contract recurrence.
func (c Contract) Rate() float64 {
	if c.Recurrence == RecurrenceWeekly {
		return c.Rental.WeeklyRate
	}
	return c.Rental.MonthlyRate
}
