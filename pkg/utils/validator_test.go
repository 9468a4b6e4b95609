package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type amountPayload struct {
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Currency string          `json:"currency" validate:"required"`
	Note     string          `json:"note,omitempty"`
}

func TestValidateStructDecimalRequired(t *testing.T) {
	tests := []struct {
		name    string
		payload amountPayload
		fields  []string
	}{
		{
			name:    "valid",
			payload: amountPayload{Amount: decimal.NewFromInt(100), Currency: "USD"},
		},
		{
			name:    "zero amount is missing",
			payload: amountPayload{Currency: "USD"},
			fields:  []string{"amount"},
		},
		{
			name:    "negative amount passes",
			payload: amountPayload{Amount: decimal.NewFromInt(-5), Currency: "USD"},
		},
		{
			name:    "both missing",
			payload: amountPayload{},
			fields:  []string{"amount", "currency"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.payload)
			if len(tt.fields) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.fields))
			for _, field := range tt.fields {
				assert.Equal(t, "This field is required", errs[field])
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"amount": "This field is required"})
	assert.Equal(t, "amount: This field is required", msg)
}
