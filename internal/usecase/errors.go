package usecase

import "errors"

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrPaymentNotFound = errors.New("payment not found")
)
