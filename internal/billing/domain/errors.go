package billing

import "errors"

var (
	// ErrMissingAnchor is returned when a contract has no approved payment
	// and no start date to anchor the cycle on.
	ErrMissingAnchor = errors.New("billing: no approved payment and no contract start date")
	// ErrInvalidRecurrence is returned for a recurrence that is neither
	// weekly nor monthly. Never defaulted silently.
	ErrInvalidRecurrence = errors.New("billing: invalid recurrence type")
	// ErrDueDateNotAdvanced is returned when projecting one interval did not
	// move the due date strictly past the anchor.
	ErrDueDateNotAdvanced = errors.New("billing: due date did not advance past anchor")
)
