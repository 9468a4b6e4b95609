package request

import "github.com/shopspring/decimal"

// MaxAmountExponent bounds the decimal exponent of an amount. Larger exponents
// make formatting the value cost time and memory proportional to 10^exp.
const MaxAmountExponent = 1000

// CreatePaymentRequest accepts amount as a JSON number or a numeric string.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    string          `json:"currency" validate:"required"`
	Description string          `json:"description"`
}

// AmountInRange reports whether the amount's exponent is small enough to be
// stored and rendered.
func (r *CreatePaymentRequest) AmountInRange() bool {
	exp := r.Amount.Exponent()
	return exp >= -MaxAmountExponent && exp <= MaxAmountExponent
}
