package services

import (
	"errors"
	"fmt"
)

// Failure taxonomy surfaced to callers. Each maps to a single human-readable
// message; handlers translate them to HTTP statuses.
var (
	ErrDuplicateCode   = errors.New("a product with that code already exists")
	ErrNotFound        = errors.New("product not found")
	ErrValidation      = errors.New("one or more product fields are invalid")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrStorage         = errors.New("could not persist changes")
)

// InsufficientStockError reports a sale that asked for more units than remain.
type InsufficientStockError struct {
	Code      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (available %d)", e.Code, e.Available)
}
