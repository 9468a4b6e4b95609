package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"payments-api/internal/dto/request"
	"payments-api/internal/usecase"
	"payments-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgInvalidBody      = "Invalid request body"
	msgMissingFields    = "Missing required fields"
	msgPaymentNotFound  = "Payment not found"
	msgDatabaseError    = "Database error"
	msgPaymentCompleted = "Payment marked as completed"

	maxCreateBodyBytes = 1 << 20
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCreateBodyBytes)

	var req request.CreatePaymentRequest
	// an empty body is treated like {} and fails on the required fields
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("Create payment with malformed body", zap.Error(err))
		utils.ResponseBadRequest(w, msgInvalidBody)
		return
	}
	if !req.AmountInRange() {
		h.log.Warn("Create payment with out of range amount",
			zap.Int32("exponent", req.Amount.Exponent()))
		utils.ResponseBadRequest(w, msgInvalidBody)
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "create payment")
		return
	}

	utils.ResponseCreated(w, payment)
}

// GetPayment handles GET /payments/{id}
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")

	payment, err := h.service.GetPayment(r.Context(), paymentID)
	if err != nil {
		h.handleServiceError(w, r, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, payment)
}

// CompletePayment handles POST /payments/{id}/complete
func (h *PaymentHandler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")

	if err := h.service.CompletePayment(r.Context(), paymentID); err != nil {
		h.handleServiceError(w, r, err, "complete payment")
		return
	}

	utils.ResponseMessage(w, msgPaymentCompleted)
}

// handleServiceError maps service errors to responses. Storage details are
// logged and never sent to the caller.
func (h *PaymentHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("request_id", requestID))
		utils.ResponseBadRequest(w, msgMissingFields)

	case errors.Is(err, usecase.ErrPaymentNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("request_id", requestID))
		utils.ResponseNotFound(w, msgPaymentNotFound)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("request_id", requestID))
		utils.ResponseInternalError(w, msgDatabaseError)
	}
}
