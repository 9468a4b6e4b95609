package repository

import (
	"errors"

	"payments-api/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a statement matched no row
var ErrNotFound = errors.New("not found")

type Repository struct {
	Payment PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Payment: NewPaymentRepository(db, log),
	}
}
