package wire

import (
	"payments-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Route("/payments", func(r chi.Router) {
		// POST /payments - Create a pending payment
		r.Post("/", paymentHandler.CreatePayment)

		// GET /payments/{id} - Fetch one payment
		r.Get("/{id}", paymentHandler.GetPayment)

		// POST /payments/{id}/complete - Mark a payment completed
		r.Post("/{id}/complete", paymentHandler.CompletePayment)
	})
}
