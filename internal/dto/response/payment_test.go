package response

import (
	"encoding/json"
	"testing"

	"payments-api/internal/data/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentResponseJSON(t *testing.T) {
	body, err := json.Marshal(PaymentToResponse(&entity.Payment{
		ID:       1,
		Amount:   decimal.RequireFromString("100.25"),
		Currency: "USD",
		Status:   entity.PaymentStatusPending,
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"amount":100.25,"currency":"USD","description":"","status":"pending"}`, string(body))
}
