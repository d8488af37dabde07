package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")

	ErrTableNotFound       = errors.New("table not found")
	ErrTableNumberMismatch = errors.New("table number does not match")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrEmptyOrder          = errors.New("at least one item is required")
	ErrInvalidQty          = errors.New("quantity must be at least 1")
)
