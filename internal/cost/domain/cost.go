package cost

import (
	"errors"
	"time"
)

// PaymentType says how a cost was paid.
type PaymentType string

const (
	// PaymentTypeAvista is a single upfront payment.
	PaymentTypeAvista PaymentType = "avista"
	// PaymentTypeParcelado is an installment payment.
	PaymentTypeParcelado PaymentType = "parcelado"
)

// ErrInvalidInstallments is returned for parcelado costs without a
// positive installment count.
var ErrInvalidInstallments = errors.New("cost: parcelado requires installments > 0")

// Cost is an operational expense, optionally tied to a client.
// Consumed only by the dashboard profit rollups.
type Cost struct {
	ID               string
	ClientID         string // empty when not tied to a client
	Value            float64
	Date             time.Time
	Category         string
	PaymentType      PaymentType
	Installments     int
	InstallmentValue float64
}

// Validate checks installment fields for parcelado costs.
func (c Cost) Validate() error {
	if c.PaymentType == PaymentTypeParcelado && c.Installments <= 0 {
		return ErrInvalidInstallments
	}
	return nil
}
