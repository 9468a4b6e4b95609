package response

import (
	"payments-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type PaymentResponse struct {
	ID          int64                `json:"id"`
	Amount      decimal.Decimal      `json:"amount"`
	Currency    string               `json:"currency"`
	Description string               `json:"description"`
	Status      entity.PaymentStatus `json:"status"`
}

func PaymentToResponse(payment *entity.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          payment.ID,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Description: payment.Description,
		Status:      payment.Status,
	}
}
