package adaptor

import (
	"payments-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Payment *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Payment: NewPaymentHandler(service.Payment, log),
	}
}
