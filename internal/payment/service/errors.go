package service

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrCannotRefund    = errors.New("cannot refund a payment that is not completed")
	ErrInvalidAmount   = errors.New("amount must be positive")
)
