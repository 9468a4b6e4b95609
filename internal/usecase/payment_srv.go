package usecase

import (
	"context"
	"errors"
	"fmt"

	"payments-api/internal/data/entity"
	"payments-api/internal/data/repository"
	"payments-api/internal/dto/request"
	"payments-api/internal/dto/response"
	"payments-api/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*response.PaymentResponse, error)
	CompletePayment(ctx context.Context, id string) error
}

type paymentService struct {
	repo repository.PaymentRepository
	log  *zap.Logger
}

func NewPaymentService(repo repository.PaymentRepository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, utils.FormatValidationErrors(errs))
	}

	payment := &entity.Payment{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment created",
		zap.Int64("payment_id", payment.ID),
		zap.String("currency", payment.Currency),
	)

	return response.PaymentToResponse(payment), nil
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*response.PaymentResponse, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", id, err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s: %w", id, ErrPaymentNotFound)
	}

	return response.PaymentToResponse(payment), nil
}

func (s *paymentService) CompletePayment(ctx context.Context, id string) error {
	err := s.repo.MarkCompleted(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("payment %s: %w", id, ErrPaymentNotFound)
	}
	if err != nil {
		return fmt.Errorf("complete payment %s: %w", id, err)
	}

	s.log.Info("Payment completed", zap.String("payment_id", id))
	return nil
}
