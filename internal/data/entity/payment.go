package entity

import (
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is a row of the payments table. Status only ever moves from
// pending to completed.
type Payment struct {
	ID          int64           `db:"id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Description string          `db:"description"`
	Status      PaymentStatus   `db:"status"`
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted:
		return true
	}
	return false
}
