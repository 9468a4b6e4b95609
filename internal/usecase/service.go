package usecase

import (
	"payments-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Payment PaymentService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Payment: NewPaymentService(repo.Payment, log),
	}
}
