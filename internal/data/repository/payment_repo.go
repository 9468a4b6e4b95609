package repository

import (
	"context"
	"errors"
	"fmt"

	"payments-api/internal/data/entity"
	"payments-api/pkg/database"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id string) (*entity.Payment, error)
	MarkCompleted(ctx context.Context, id string) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

// Create inserts payment and fills in the ID and status assigned by the database.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (amount, currency, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status
	`

	var status string
	err := r.db.QueryRow(ctx, query,
		payment.Amount.String(),
		payment.Currency,
		payment.Description,
		string(entity.PaymentStatusPending),
	).Scan(&payment.ID, &status)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("amount", payment.Amount.String()),
			zap.String("currency", payment.Currency),
		)
		return fmt.Errorf("create payment: %w", err)
	}

	payment.Status = entity.PaymentStatus(status)
	return nil
}

// FindByID returns nil, nil when no row matches. The id is bound as given and
// Postgres decides whether it is a valid key.
func (r *paymentRepository) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	query := `
		SELECT id, amount::text, currency, description, status
		FROM payments
		WHERE id = $1
	`

	var (
		payment entity.Payment
		amount  string
		status  string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&amount,
		&payment.Currency,
		&payment.Description,
		&status,
	)

	if errors.Is(err, pgx.ErrNoRows) || isInvalidKey(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id, err)
	}

	payment.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount of payment %s: %w", id, err)
	}

	payment.Status = entity.PaymentStatus(status)
	if !payment.Status.IsValid() {
		r.log.Warn("Payment has unknown status",
			zap.String("payment_id", id),
			zap.String("status", status),
		)
	}

	return &payment, nil
}

// MarkCompleted sets the status unconditionally, so repeating it is harmless.
func (r *paymentRepository) MarkCompleted(ctx context.Context, id string) error {
	query := `
		UPDATE payments
		SET status = $2
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, string(entity.PaymentStatusCompleted))
	if isInvalidKey(err) {
		return fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to mark payment completed",
			zap.Error(err),
			zap.String("payment_id", id),
		)
		return fmt.Errorf("mark payment %s completed: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}

	return nil
}

// isInvalidKey reports whether Postgres rejected the bound id as not convertible
// to the key column type. Such an id can never match a row.
func isInvalidKey(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange:
		return true
	}
	return false
}
