package service

import "errors"

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrInvalidItem  = errors.New("invalid cart item")
)
